package response

import (
	"time"

	"barberbook/internal/usecase/queries"
)

type QueueStatusResponse struct {
	ShopID               int64     `json:"shopId"`
	BarberID             int64     `json:"barberId"`
	QueueSize            int       `json:"queueSize"`
	EstimatedWaitMinutes int       `json:"estimatedWaitMinutes"`
	LastUpdated          time.Time `json:"lastUpdated"`
	Stale                bool      `json:"stale,omitempty"`
}

type PositionResponse struct {
	ShopID   int64     `json:"shopId"`
	Position int       `json:"position"`
	JoinedAt time.Time `json:"joinedAt"`
}

func FromQueueStatusView(view *queries.QueueStatusView, stale bool) *QueueStatusResponse {
	return &QueueStatusResponse{
		ShopID:               view.ShopID,
		BarberID:             view.BarberID,
		QueueSize:            view.QueueSize,
		EstimatedWaitMinutes: view.EstimatedWaitMinutes,
		LastUpdated:          view.LastUpdated,
		Stale:                stale,
	}
}

func FromPositionView(view *queries.PositionView) *PositionResponse {
	return &PositionResponse{
		ShopID:   view.ShopID,
		Position: view.Position,
		JoinedAt: view.JoinedAt,
	}
}
