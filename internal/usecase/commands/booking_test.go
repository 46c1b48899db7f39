//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"barberbook/internal/domain/booking"
	"barberbook/internal/domain/identity"
	"barberbook/internal/gateway"
	"barberbook/internal/pkg/clock"
	"barberbook/internal/pkg/errs"
	"barberbook/internal/state"
	"barberbook/internal/usecase/commands"
	"barberbook/tests/common/builder"
	commandsmock "barberbook/tests/mock/commands"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingCommandsTestSuite struct {
	suite.Suite
	mockCtrl       *gomock.Controller
	mockGateway    *commandsmock.MockBookingGateway
	mockGate       *commandsmock.MockSessionGate
	mockReconciler *commandsmock.MockReconciler
	history        *state.BookingHistory
	bookings       commands.BookingCommands
}

func (s *BookingCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockGateway = commandsmock.NewMockBookingGateway(s.mockCtrl)
	s.mockGate = commandsmock.NewMockSessionGate(s.mockCtrl)
	s.mockReconciler = commandsmock.NewMockReconciler(s.mockCtrl)
	s.history = state.NewBookingHistory()
	clk := clock.NewMockClock(time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC))
	s.bookings = commands.NewBookingCommands(s.mockGateway, s.history, s.mockGate, s.mockReconciler, clk)
}

func (s *BookingCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingCommandsSuite(t *testing.T) {
	suite.Run(t, new(BookingCommandsTestSuite))
}

func (s *BookingCommandsTestSuite) TestSubmit() {
	ctx := context.Background()
	ident := identity.NewIdentity("user-1", "fade@example.com")

	s.Run("unauthenticated: zero gateway calls, no history entry", func() {
		s.mockGate.EXPECT().Current().Return(identity.Identity{}, false).Times(1)
		s.mockGateway.EXPECT().CreateAppointment(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
		s.mockReconciler.EXPECT().OnBookingConfirmed(gomock.Any()).Times(0)

		_, err := s.bookings.Submit(ctx, builder.NewBookingBuilder().BuildDTO())
		s.ErrorIs(err, errs.ErrUnauthenticated)
		s.Equal(0, s.history.Len())
	})

	s.Run("invalid input: rejected before any network call", func() {
		s.mockGate.EXPECT().Current().Return(ident, true).Times(1)
		s.mockGateway.EXPECT().CreateAppointment(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := s.bookings.Submit(ctx, builder.NewBookingBuilder().WithService("perm").BuildDTO())
		s.ErrorIs(err, errs.ErrInvalidInput)
		s.Equal(0, s.history.Len())
	})

	s.Run("success: appends to history and triggers reconciliation once", func() {
		rec := builder.NewBookingBuilder().BuildRecord()
		s.mockGate.EXPECT().Current().Return(ident, true).Times(1)
		s.mockGate.EXPECT().Token().Return("tok").Times(1)
		s.mockGateway.EXPECT().CreateAppointment(gomock.Any(), "tok", gomock.Any()).Return(rec, nil).Times(1)
		s.mockReconciler.EXPECT().OnBookingConfirmed(rec).Times(1)

		got, err := s.bookings.Submit(ctx, builder.NewBookingBuilder().BuildDTO())
		s.NoError(err)
		s.Equal(rec.ID, got.ID)
		s.Equal(1, s.history.Len())
		s.Equal(booking.StatusScheduled, s.history.All()[0].Status)
	})

	s.Run("rejection: history untouched, reconciler never invoked, server message kept", func() {
		s.mockGate.EXPECT().Current().Return(ident, true).Times(1)
		s.mockGate.EXPECT().Token().Return("tok").Times(1)
		s.mockGateway.EXPECT().CreateAppointment(gomock.Any(), "tok", gomock.Any()).
			Return(booking.Record{}, gateway.RejectedErr("create appointment: server returned 422", "barber fully booked that day")).
			Times(1)
		s.mockReconciler.EXPECT().OnBookingConfirmed(gomock.Any()).Times(0)

		_, err := s.bookings.Submit(ctx, builder.NewBookingBuilder().BuildDTO())
		s.ErrorIs(err, errs.ErrBookingFailed)
		s.Equal("barber fully booked that day", gateway.ServerMessage(err))
		s.Equal(0, s.history.Len())
	})

	s.Run("network failure: also terminal for the attempt, history untouched", func() {
		s.mockGate.EXPECT().Current().Return(ident, true).Times(1)
		s.mockGate.EXPECT().Token().Return("tok").Times(1)
		s.mockGateway.EXPECT().CreateAppointment(gomock.Any(), "tok", gomock.Any()).
			Return(booking.Record{}, gateway.WrapErr(gateway.KindTransport, "create appointment: request failed", context.DeadlineExceeded)).
			Times(1)
		s.mockReconciler.EXPECT().OnBookingConfirmed(gomock.Any()).Times(0)

		_, err := s.bookings.Submit(ctx, builder.NewBookingBuilder().BuildDTO())
		s.ErrorIs(err, errs.ErrBookingFailed)
		s.Equal(0, s.history.Len())
	})
}

func (s *BookingCommandsTestSuite) TestCancel() {
	ctx := context.Background()
	ident := identity.NewIdentity("user-1", "fade@example.com")

	s.Run("success: flips the local record to cancelled", func() {
		rec := builder.NewBookingBuilder().BuildRecord()
		s.history.Append(rec)

		s.mockGate.EXPECT().Current().Return(ident, true).Times(1)
		s.mockGate.EXPECT().Token().Return("tok").Times(1)
		s.mockGateway.EXPECT().CancelAppointment(gomock.Any(), "tok", rec.ID).Return(nil).Times(1)

		s.NoError(s.bookings.Cancel(ctx, rec.ID))
		s.Equal(booking.StatusCancelled, s.history.All()[0].Status)
		s.Equal(1, s.history.Len())
	})

	s.Run("unknown appointment: not found, history untouched", func() {
		rec := builder.NewBookingBuilder().BuildRecord()
		s.history.Append(rec)

		s.mockGate.EXPECT().Current().Return(ident, true).Times(1)
		s.mockGate.EXPECT().Token().Return("tok").Times(1)
		s.mockGateway.EXPECT().CancelAppointment(gomock.Any(), "tok", int64(999)).
			Return(gateway.WrapErr(gateway.KindNotFound, "cancel appointment: not found", nil)).
			Times(1)

		err := s.bookings.Cancel(ctx, 999)
		s.ErrorIs(err, errs.ErrAppointmentNotFound)
		s.Equal(booking.StatusScheduled, s.history.All()[0].Status)
	})

	s.Run("unauthenticated: no gateway call", func() {
		s.mockGate.EXPECT().Current().Return(identity.Identity{}, false).Times(1)
		s.mockGateway.EXPECT().CancelAppointment(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		s.ErrorIs(s.bookings.Cancel(ctx, 1), errs.ErrUnauthenticated)
	})
}

func (s *BookingCommandsTestSuite) TestSync() {
	ctx := context.Background()
	ident := identity.NewIdentity("user-1", "fade@example.com")

	s.Run("success: replaces the local history with the server's list", func() {
		s.history.Append(builder.NewBookingBuilder().BuildRecord())

		serverRecs := []booking.Record{
			builder.NewBookingBuilder().BuildRecord(),
			builder.NewBookingBuilder().WithService("shave").BuildRecord(),
		}
		s.mockGate.EXPECT().Current().Return(ident, true).Times(1)
		s.mockGate.EXPECT().Token().Return("tok").Times(1)
		s.mockGateway.EXPECT().ListAppointments(gomock.Any(), "tok").Return(serverRecs, nil).Times(1)

		s.NoError(s.bookings.Sync(ctx))
		s.Equal(2, s.history.Len())
		s.Equal(booking.Service("shave"), s.history.All()[1].Service)
	})

	s.Run("error: fetch failure leaves the history alone", func() {
		s.mockGate.EXPECT().Current().Return(ident, true).Times(1)
		s.mockGate.EXPECT().Token().Return("tok").Times(1)
		s.mockGateway.EXPECT().ListAppointments(gomock.Any(), "tok").
			Return(nil, gateway.WrapErr(gateway.KindTimeout, "list appointments: request failed", context.DeadlineExceeded)).
			Times(1)

		before := s.history.Len()
		err := s.bookings.Sync(ctx)
		s.ErrorIs(err, errs.ErrTransport)
		s.Equal(before, s.history.Len())
	})

	s.Run("unauthenticated: no gateway call", func() {
		s.mockGate.EXPECT().Current().Return(identity.Identity{}, false).Times(1)
		s.mockGateway.EXPECT().ListAppointments(gomock.Any(), gomock.Any()).Times(0)

		s.ErrorIs(s.bookings.Sync(ctx), errs.ErrUnauthenticated)
	})
}
