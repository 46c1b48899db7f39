//go:build unit

package queries_test

import (
	"testing"
	"time"

	"barberbook/internal/domain/identity"
	"barberbook/internal/domain/queue"
	"barberbook/internal/state"
	"barberbook/internal/usecase/queries"
	"barberbook/tests/common/builder"
	queriesmock "barberbook/tests/mock/queries"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type QueueQueriesTestSuite struct {
	suite.Suite
	mockCtrl *gomock.Controller
	mockGate *queriesmock.MockIdentityReader
	cache    *state.QueueCache
	queues   queries.QueueQueries
}

func (s *QueueQueriesTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockGate = queriesmock.NewMockIdentityReader(s.mockCtrl)
	s.cache = state.NewQueueCache()
	s.queues = queries.NewQueueQueries(s.cache, s.mockGate)
}

func (s *QueueQueriesTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestQueueQueriesSuite(t *testing.T) {
	suite.Run(t, new(QueueQueriesTestSuite))
}

func (s *QueueQueriesTestSuite) TestStatus() {
	s.Run("uncached shop has no status", func() {
		_, ok := s.queues.Status(42)
		s.False(ok)
	})

	s.Run("cached snapshot is served as-is", func() {
		snap := builder.NewSnapshotBuilder().WithQueueSize(5).Build()
		s.cache.SetSnapshot(snap)

		view, ok := s.queues.Status(42)
		s.Require().True(ok)
		s.Equal(5, view.QueueSize)
		s.Equal(150, view.EstimatedWaitMinutes)
		s.Equal(snap.LastUpdated, view.LastUpdated)
	})
}

func (s *QueueQueriesTestSuite) TestMyPosition() {
	joined := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	ident := identity.NewIdentity("user-1", "fade@example.com")

	s.Run("no identity means no position", func() {
		s.mockGate.EXPECT().Current().Return(identity.Identity{}, false).Times(1)

		_, ok := s.queues.MyPosition(42)
		s.False(ok)
	})

	s.Run("identity without a stored position", func() {
		s.mockGate.EXPECT().Current().Return(ident, true).Times(1)

		_, ok := s.queues.MyPosition(42)
		s.False(ok)
	})

	s.Run("returns the stored position for the current user", func() {
		pos, _ := queue.NewPosition(42, "user-1", 3, joined)
		s.cache.SetPosition(pos)
		s.mockGate.EXPECT().Current().Return(ident, true).Times(1)

		view, ok := s.queues.MyPosition(42)
		s.Require().True(ok)
		s.Equal(3, view.Position)
		s.Equal(joined, view.JoinedAt)
	})

	s.Run("does not leak another user's position", func() {
		pos, _ := queue.NewPosition(42, "someone-else", 1, joined)
		s.cache.SetPosition(pos)
		s.mockGate.EXPECT().Current().Return(ident, true).Times(1)

		view, ok := s.queues.MyPosition(42)
		s.Require().True(ok)
		s.Equal(3, view.Position)
	})
}
