//go:build unit || e2e

package builder

import (
	"time"

	"barberbook/internal/domain/queue"
)

type SnapshotBuilder struct {
	ShopID            int64
	BarberID          int64
	QueueSize         int
	ServerEstimate    *int
	AvgServiceMinutes int
	LastUpdated       time.Time
}

func NewSnapshotBuilder() *SnapshotBuilder {
	return &SnapshotBuilder{
		ShopID:            42,
		BarberID:          7,
		QueueSize:         3,
		AvgServiceMinutes: 30,
		LastUpdated:       time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
	}
}

func (b *SnapshotBuilder) WithQueueSize(n int) *SnapshotBuilder {
	b.QueueSize = n
	return b
}

func (b *SnapshotBuilder) WithServerEstimate(minutes int) *SnapshotBuilder {
	b.ServerEstimate = &minutes
	return b
}

func (b *SnapshotBuilder) Build() queue.Snapshot {
	snap, err := queue.NewSnapshot(b.ShopID, b.BarberID, b.QueueSize, b.ServerEstimate, b.AvgServiceMinutes, b.LastUpdated)
	if err != nil {
		panic(err)
	}
	return snap
}
