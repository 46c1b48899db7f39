package state

import (
	"sync"

	"barberbook/internal/domain/booking"

	"github.com/jinzhu/copier"
)

// BookingHistory is the ordered, append-only record of confirmed bookings
// for this session. It is never mutated on a failed submission.
type BookingHistory struct {
	mu      sync.RWMutex
	records []booking.Record
}

func NewBookingHistory() *BookingHistory {
	return &BookingHistory{}
}

func (h *BookingHistory) Append(rec booking.Record) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.records = append(h.records, rec)
}

// Load replaces the history with the given records, keeping their order.
// Used when resuming a session whose bookings live on the server.
func (h *BookingHistory) Load(recs []booking.Record) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.records = append([]booking.Record(nil), recs...)
}

// All returns the history in confirmation order. Records are deep-copied so
// callers cannot alias the stored entries.
func (h *BookingHistory) All() []booking.Record {
	h.mu.RLock()
	defer h.mu.RUnlock()

	out := make([]booking.Record, 0, len(h.records))
	for _, rec := range h.records {
		var cp booking.Record
		if err := copier.CopyWithOption(&cp, &rec, copier.Option{DeepCopy: true}); err != nil {
			cp = rec
		}
		out = append(out, cp)
	}
	return out
}

func (h *BookingHistory) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.records)
}

// MarkCancelled flips the status of the matching record. The entry stays in
// the history; only its status changes.
func (h *BookingHistory) MarkCancelled(appointmentID int64) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	for i := range h.records {
		if h.records[i].ID == appointmentID {
			h.records[i].Status = booking.StatusCancelled
			return true
		}
	}
	return false
}
