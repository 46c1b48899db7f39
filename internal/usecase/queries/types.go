package queries

import (
	"time"
)

// Read-side views consumed by the handler layer.

type ShopView struct {
	ID            int64
	Name          string
	Address       string
	Lat           float64
	Lng           float64
	Phone         string
	Website       string
	DistanceMiles *float64
}

type QueueStatusView struct {
	ShopID               int64
	BarberID             int64
	QueueSize            int
	EstimatedWaitMinutes int
	LastUpdated          time.Time
}

type PositionView struct {
	ShopID   int64
	Position int
	JoinedAt time.Time
}

type BookingView struct {
	ID            int64
	ShopID        int64
	Service       string
	RequestedTime *time.Time
	Notes         string
	Status        string
	ConfirmedAt   time.Time
}
