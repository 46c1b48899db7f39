package queries

import (
	"context"
	"time"

	"barberbook/internal/gateway"
	"barberbook/internal/pkg/errs"
	"barberbook/internal/state"
)

// SlotReader looks up bookable slots from the external API.
type SlotReader interface {
	AvailableSlots(ctx context.Context, token string, shopID int64, date time.Time) ([]time.Time, error)
}

// TokenReader exposes the session token for outbound reads.
type TokenReader interface {
	Token() string
}

type BookingQueries interface {
	History() []BookingView
	Slots(ctx context.Context, shopID int64, date time.Time) ([]time.Time, error)
}

type bookingQueriesImpl struct {
	history *state.BookingHistory
	slots   SlotReader
	tokens  TokenReader
}

func NewBookingQueries(history *state.BookingHistory, slots SlotReader, tokens TokenReader) BookingQueries {
	return &bookingQueriesImpl{
		history: history,
		slots:   slots,
		tokens:  tokens,
	}
}

// History returns this session's confirmed bookings in confirmation order.
func (b *bookingQueriesImpl) History() []BookingView {
	records := b.history.All()
	views := make([]BookingView, 0, len(records))
	for _, rec := range records {
		views = append(views, BookingView{
			ID:            rec.ID,
			ShopID:        rec.ShopID,
			Service:       rec.Service.String(),
			RequestedTime: rec.RequestedTime,
			Notes:         rec.Notes,
			Status:        rec.Status.String(),
			ConfirmedAt:   rec.ConfirmedAt,
		})
	}
	return views
}

func (b *bookingQueriesImpl) Slots(ctx context.Context, shopID int64, date time.Time) ([]time.Time, error) {
	slots, err := b.slots.AvailableSlots(ctx, b.tokens.Token(), shopID, date)
	if err != nil {
		if gateway.IsKind(err, gateway.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrShopNotFound)
		}
		return nil, errs.Mark(err, errs.ErrTransport)
	}
	return slots, nil
}
