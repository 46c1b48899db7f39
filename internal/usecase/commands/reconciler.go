package commands

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"barberbook/internal/domain/booking"
)

// QueueReconciler forces a queue refresh for the booked shop after each
// confirmed booking, since the booking changes queue occupancy. The refresh
// is fire-and-forget: it starts only after the submit has completed, and its
// failure is logged and discarded so a booking success is never rolled back
// by a refresh failure.
type QueueReconciler struct {
	queues  QueueCommands
	timeout time.Duration
	wg      sync.WaitGroup
}

func NewQueueReconciler(queues QueueCommands, timeout time.Duration) *QueueReconciler {
	return &QueueReconciler{
		queues:  queues,
		timeout: timeout,
	}
}

func (r *QueueReconciler) OnBookingConfirmed(rec booking.Record) {
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
		defer cancel()

		if _, err := r.queues.Refresh(ctx, rec.ShopID); err != nil {
			slog.Warn("queue refresh after booking failed, stale snapshot retained",
				"shop_id", rec.ShopID,
				"booking_id", rec.ID,
				"error", err)
		}
	}()
}

// Wait blocks until every in-flight refresh has finished. Used on shutdown
// and in tests.
func (r *QueueReconciler) Wait() {
	r.wg.Wait()
}
