package commands

import (
	"context"

	"barberbook/internal/domain/booking"
	"barberbook/internal/gateway"
	reqdto "barberbook/internal/handler/dto/request"
	"barberbook/internal/pkg/clock"
	"barberbook/internal/pkg/errs"
	"barberbook/internal/state"
)

type BookingCommands interface {
	Submit(ctx context.Context, req reqdto.CreateBookingRequest) (booking.Record, error)
	Cancel(ctx context.Context, appointmentID int64) error
	Sync(ctx context.Context) error
}

type bookingCommandsImpl struct {
	bookingGateway BookingGateway
	history        *state.BookingHistory
	gate           SessionGate
	reconciler     Reconciler
	clock          clock.Clock
}

func NewBookingCommands(
	bookingGateway BookingGateway,
	history *state.BookingHistory,
	gate SessionGate,
	reconciler Reconciler,
	clk clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		bookingGateway: bookingGateway,
		history:        history,
		gate:           gate,
		reconciler:     reconciler,
		clock:          clk,
	}
}

// Submit runs one booking attempt. The identity gate and input validation
// happen before any network call; only a confirmed booking mutates the
// history and triggers reconciliation. A failed submission is terminal for
// the attempt, retrying is the caller's decision.
//
// No idempotency key is attached: a double submit produces duplicate
// records server-side.
func (b *bookingCommandsImpl) Submit(ctx context.Context, req reqdto.CreateBookingRequest) (booking.Record, error) {
	_, ok := b.gate.Current()
	if !ok {
		return booking.Record{}, errs.ErrUnauthenticated
	}

	request, err := req.ToDomain(b.clock.Now())
	if err != nil {
		return booking.Record{}, errs.Mark(err, errs.ErrInvalidInput)
	}

	rec, err := b.bookingGateway.CreateAppointment(ctx, b.gate.Token(), request)
	if err != nil {
		// History is untouched. The server's own message wins when present.
		return booking.Record{}, errs.Mark(err, errs.ErrBookingFailed)
	}

	b.history.Append(rec)
	b.reconciler.OnBookingConfirmed(rec)
	return rec, nil
}

// Cancel asks the server to drop the appointment, then flips the local
// record's status. The history entry itself stays; the history is
// append-only.
func (b *bookingCommandsImpl) Cancel(ctx context.Context, appointmentID int64) error {
	_, ok := b.gate.Current()
	if !ok {
		return errs.ErrUnauthenticated
	}

	if err := b.bookingGateway.CancelAppointment(ctx, b.gate.Token(), appointmentID); err != nil {
		if gateway.IsKind(err, gateway.KindNotFound) {
			return errs.Mark(err, errs.ErrAppointmentNotFound)
		}
		if gateway.IsNetwork(err) {
			return errs.Mark(err, errs.ErrTransport)
		}
		return errs.Mark(err, errs.ErrBookingFailed)
	}

	b.history.MarkCancelled(appointmentID)
	return nil
}

// Sync reloads the history from the server's appointment list, replacing
// whatever was accumulated locally. Used after a session restore, where the
// in-memory history starts empty but the account may already have bookings.
func (b *bookingCommandsImpl) Sync(ctx context.Context) error {
	_, ok := b.gate.Current()
	if !ok {
		return errs.ErrUnauthenticated
	}

	recs, err := b.bookingGateway.ListAppointments(ctx, b.gate.Token())
	if err != nil {
		return errs.Mark(err, errs.ErrTransport)
	}

	b.history.Load(recs)
	return nil
}
