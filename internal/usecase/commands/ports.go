package commands

import (
	"context"
	"time"

	"barberbook/internal/domain/booking"
	"barberbook/internal/domain/identity"
	"barberbook/internal/domain/queue"
)

// Gateway ports over the external booking API server. Implemented by
// gateway/bookingapi; mocked in tests.

type AuthGateway interface {
	Login(ctx context.Context, credentials identity.Credentials) (identity.Identity, string, error)
	Register(ctx context.Context, credentials identity.Credentials, name string) (identity.Identity, error)
	Me(ctx context.Context, token string) (identity.Identity, error)
}

type QueueGateway interface {
	FetchQueue(ctx context.Context, shopID int64) (queue.Snapshot, error)
	JoinQueue(ctx context.Context, token string, shopID int64, userID string) (queue.Position, error)
}

type BookingGateway interface {
	CreateAppointment(ctx context.Context, token string, request booking.Request) (booking.Record, error)
	ListAppointments(ctx context.Context, token string) ([]booking.Record, error)
	CancelAppointment(ctx context.Context, token string, appointmentID int64) error
}

// SessionGate is the identity check every gated operation performs before
// touching the network.
type SessionGate interface {
	Current() (identity.Identity, bool)
	Token() string
}

// SessionState additionally covers lifecycle, owned by the auth commands.
type SessionState interface {
	SessionGate
	Init(ident identity.Identity, token string)
	Clear()
	RestoreToken() (string, bool)
}

// Reconciler keeps the queue cache consistent with booking outcomes. Called
// exactly once per confirmed booking, never on failure.
type Reconciler interface {
	OnBookingConfirmed(rec booking.Record)
}

// SlotGateway looks up bookable slots for a shop and date.
type SlotGateway interface {
	AvailableSlots(ctx context.Context, token string, shopID int64, date time.Time) ([]time.Time, error)
}
