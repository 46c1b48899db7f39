//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"barberbook/internal/domain/identity"
	"barberbook/internal/domain/queue"
	"barberbook/internal/gateway"
	"barberbook/internal/pkg/errs"
	"barberbook/internal/state"
	"barberbook/internal/usecase/commands"
	"barberbook/tests/common/builder"
	commandsmock "barberbook/tests/mock/commands"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type QueueCommandsTestSuite struct {
	suite.Suite
	mockCtrl    *gomock.Controller
	mockGateway *commandsmock.MockQueueGateway
	mockGate    *commandsmock.MockSessionGate
	cache       *state.QueueCache
	queues      commands.QueueCommands
}

func (s *QueueCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockGateway = commandsmock.NewMockQueueGateway(s.mockCtrl)
	s.mockGate = commandsmock.NewMockSessionGate(s.mockCtrl)
	s.cache = state.NewQueueCache()
	s.queues = commands.NewQueueCommands(s.mockGateway, s.cache, s.mockGate)
}

func (s *QueueCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestQueueCommandsSuite(t *testing.T) {
	suite.Run(t, new(QueueCommandsTestSuite))
}

func (s *QueueCommandsTestSuite) TestRefresh() {
	ctx := context.Background()

	s.Run("success: caches the fetched snapshot", func() {
		snap := builder.NewSnapshotBuilder().Build()
		s.mockGateway.EXPECT().FetchQueue(gomock.Any(), int64(42)).Return(snap, nil).Times(1)

		got, err := s.queues.Refresh(ctx, 42)
		s.NoError(err)
		s.Equal(snap, got)

		cached, ok := s.cache.Snapshot(42)
		s.True(ok)
		s.Equal(snap, cached)
	})

	s.Run("failure: cached snapshot stays byte-for-byte unchanged", func() {
		previous := builder.NewSnapshotBuilder().WithQueueSize(4).Build()
		s.cache.SetSnapshot(previous)

		s.mockGateway.EXPECT().FetchQueue(gomock.Any(), int64(42)).
			Return(queue.Snapshot{}, gateway.WrapErr(gateway.KindTimeout, "fetch queue: request failed", context.DeadlineExceeded)).
			Times(1)

		_, err := s.queues.Refresh(ctx, 42)
		s.ErrorIs(err, errs.ErrTransport)

		cached, ok := s.cache.Snapshot(42)
		s.True(ok)
		if diff := cmp.Diff(previous, cached); diff != "" {
			s.T().Errorf("cached snapshot changed after failed refresh (-want +got):\n%s", diff)
		}
	})

	s.Run("failure: unknown shop maps to not found", func() {
		s.mockGateway.EXPECT().FetchQueue(gomock.Any(), int64(999)).
			Return(queue.Snapshot{}, gateway.WrapErr(gateway.KindNotFound, "fetch queue: not found", nil)).
			Times(1)

		_, err := s.queues.Refresh(ctx, 999)
		s.ErrorIs(err, errs.ErrShopNotFound)
	})

	s.Run("failure: new refresh overwrites older snapshot, last write wins", func() {
		first := builder.NewSnapshotBuilder().WithQueueSize(2).Build()
		second := builder.NewSnapshotBuilder().WithQueueSize(9).Build()

		s.mockGateway.EXPECT().FetchQueue(gomock.Any(), int64(42)).Return(first, nil).Times(1)
		s.mockGateway.EXPECT().FetchQueue(gomock.Any(), int64(42)).Return(second, nil).Times(1)

		_, err := s.queues.Refresh(ctx, 42)
		s.NoError(err)
		_, err = s.queues.Refresh(ctx, 42)
		s.NoError(err)

		cached, _ := s.cache.Snapshot(42)
		s.Equal(9, cached.QueueSize)
	})
}

func (s *QueueCommandsTestSuite) TestJoin() {
	ctx := context.Background()
	ident := identity.NewIdentity("user-1", "fade@example.com")
	joined := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	s.Run("unauthenticated: fails before any network call", func() {
		s.mockGate.EXPECT().Current().Return(identity.Identity{}, false).Times(1)
		s.mockGateway.EXPECT().JoinQueue(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := s.queues.Join(ctx, 42)
		s.ErrorIs(err, errs.ErrUnauthenticated)
	})

	s.Run("success: caches the granted position", func() {
		pos, _ := queue.NewPosition(42, "user-1", 3, joined)
		s.mockGate.EXPECT().Current().Return(ident, true).Times(1)
		s.mockGate.EXPECT().Token().Return("tok").Times(1)
		s.mockGateway.EXPECT().JoinQueue(gomock.Any(), "tok", int64(42), "user-1").Return(pos, nil).Times(1)

		got, err := s.queues.Join(ctx, 42)
		s.NoError(err)
		s.Equal(3, got.Position)

		cached, ok := s.cache.Position(42, "user-1")
		s.True(ok)
		s.Equal(3, cached.Position)
	})

	s.Run("re-join supersedes the prior position", func() {
		first, _ := queue.NewPosition(42, "user-1", 5, joined)
		second, _ := queue.NewPosition(42, "user-1", 1, joined.Add(time.Minute))

		s.mockGate.EXPECT().Current().Return(ident, true).Times(2)
		s.mockGate.EXPECT().Token().Return("tok").Times(2)
		gomock.InOrder(
			s.mockGateway.EXPECT().JoinQueue(gomock.Any(), "tok", int64(42), "user-1").Return(first, nil),
			s.mockGateway.EXPECT().JoinQueue(gomock.Any(), "tok", int64(42), "user-1").Return(second, nil),
		)

		_, err := s.queues.Join(ctx, 42)
		s.NoError(err)
		_, err = s.queues.Join(ctx, 42)
		s.NoError(err)

		cached, _ := s.cache.Position(42, "user-1")
		s.Equal(1, cached.Position)
		s.Equal(1, s.cache.PositionCount(42))
	})

	s.Run("server-side 401 maps to unauthenticated", func() {
		s.mockGate.EXPECT().Current().Return(ident, true).Times(1)
		s.mockGate.EXPECT().Token().Return("stale").Times(1)
		s.mockGateway.EXPECT().JoinQueue(gomock.Any(), "stale", int64(42), "user-1").
			Return(queue.Position{}, gateway.WrapErr(gateway.KindUnauthorized, "join queue: rejected as unauthorized", nil)).
			Times(1)

		_, err := s.queues.Join(ctx, 42)
		s.ErrorIs(err, errs.ErrUnauthenticated)
	})
}
