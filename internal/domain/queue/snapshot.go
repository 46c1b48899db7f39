package queue

import (
	"errors"
	"time"
)

var (
	ErrNegativeQueueSize = errors.New("queue size cannot be negative")
	ErrNegativeWait      = errors.New("estimated wait cannot be negative")
	ErrInvalidPosition   = errors.New("queue position must be positive")
)

// Snapshot is the latest known state of one shop's service queue. One per
// (shop, barber) pair; replaced wholesale on every successful fetch.
type Snapshot struct {
	ShopID               int64
	BarberID             int64
	QueueSize            int
	EstimatedWaitMinutes int
	LastUpdated          time.Time
}

// NewSnapshot applies the wait-estimate rule: a server-provided estimate
// always wins; otherwise the wait is derived from the queue size and the
// assumed per-customer service time.
func NewSnapshot(shopID, barberID int64, queueSize int, serverEstimate *int, avgServiceMinutes int, lastUpdated time.Time) (Snapshot, error) {
	if queueSize < 0 {
		return Snapshot{}, ErrNegativeQueueSize
	}

	wait := EstimateWaitMinutes(queueSize, avgServiceMinutes)
	if serverEstimate != nil {
		wait = *serverEstimate
	}
	if wait < 0 {
		return Snapshot{}, ErrNegativeWait
	}

	return Snapshot{
		ShopID:               shopID,
		BarberID:             barberID,
		QueueSize:            queueSize,
		EstimatedWaitMinutes: wait,
		LastUpdated:          lastUpdated,
	}, nil
}

// EstimateWaitMinutes mirrors the queue estimation used across the platform:
// each waiting customer is assumed to take avgServiceMinutes.
func EstimateWaitMinutes(queueSize, avgServiceMinutes int) int {
	if queueSize <= 0 {
		return 0
	}
	return queueSize * avgServiceMinutes
}

// Position is one user's place in a shop's queue. One per (shop, user);
// superseded, never merged, on re-join.
type Position struct {
	ShopID   int64
	UserID   string
	Position int
	JoinedAt time.Time
}

func NewPosition(shopID int64, userID string, position int, joinedAt time.Time) (Position, error) {
	if position <= 0 {
		return Position{}, ErrInvalidPosition
	}
	return Position{
		ShopID:   shopID,
		UserID:   userID,
		Position: position,
		JoinedAt: joinedAt,
	}, nil
}
