//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"barberbook/internal/domain/queue"
	"barberbook/internal/gateway"
	"barberbook/internal/handler/api"
	resdto "barberbook/internal/handler/dto/response"
	"barberbook/internal/pkg/errs"
	"barberbook/internal/usecase/queries"
	"barberbook/tests/common/builder"
	"barberbook/tests/common/httptest"
	commandsmock "barberbook/tests/mock/commands"
	queriesmock "barberbook/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type QueueHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockQueueCommands
	mockQueries  *queriesmock.MockQueueQueries
	handler      *api.QueueHandler
}

func (s *QueueHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockQueueCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockQueueQueries(s.mockCtrl)
	s.handler = api.NewQueueHandler(s.mockCommands, s.mockQueries)

	s.router.GET("/queue/:shopId", s.handler.GetStatus)
	s.router.POST("/queue/:shopId/join", s.handler.Join)
	s.router.GET("/queue/:shopId/position", s.handler.MyPosition)
}

func (s *QueueHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestQueueHandlerSuite(t *testing.T) {
	suite.Run(t, new(QueueHandlerTestSuite))
}

func (s *QueueHandlerTestSuite) TestGetStatus() {
	statusView := &queries.QueueStatusView{
		ShopID:               42,
		BarberID:             7,
		QueueSize:            5,
		EstimatedWaitMinutes: 150,
		LastUpdated:          time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
	}

	s.Run("success: refreshes and serves the fresh snapshot", func() {
		s.mockCommands.EXPECT().Refresh(gomock.Any(), int64(42)).
			Return(builder.NewSnapshotBuilder().WithQueueSize(5).Build(), nil).Times(1)
		s.mockQueries.EXPECT().Status(int64(42)).Return(statusView, true).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/queue/42", nil, "")

		var response resdto.QueueStatusResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &response)
		s.Equal(5, response.QueueSize)
		s.Equal(150, response.EstimatedWaitMinutes)
		s.False(response.Stale)
	})

	s.Run("refresh failure with a cached snapshot serves it marked stale", func() {
		s.mockCommands.EXPECT().Refresh(gomock.Any(), int64(42)).
			Return(queue.Snapshot{}, errs.Mark(
				gateway.WrapErr(gateway.KindTimeout, "fetch queue: request failed", errs.New("timeout")),
				errs.ErrTransport)).
			Times(1)
		s.mockQueries.EXPECT().Status(int64(42)).Return(statusView, true).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/queue/42", nil, "")

		var response resdto.QueueStatusResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &response)
		s.True(response.Stale)
		s.Equal(5, response.QueueSize)
	})

	s.Run("refresh failure with an empty cache is a 502", func() {
		s.mockCommands.EXPECT().Refresh(gomock.Any(), int64(42)).
			Return(queue.Snapshot{}, errs.Mark(
				gateway.WrapErr(gateway.KindTransport, "fetch queue: request failed", errs.New("dial refused")),
				errs.ErrTransport)).
			Times(1)
		s.mockQueries.EXPECT().Status(int64(42)).Return(nil, false).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/queue/42", nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadGateway, "Queue service is unreachable")
	})

	s.Run("unknown shop is a 404", func() {
		s.mockCommands.EXPECT().Refresh(gomock.Any(), int64(999)).
			Return(queue.Snapshot{}, errs.Mark(
				gateway.WrapErr(gateway.KindNotFound, "fetch queue", errs.New("shop not found")),
				errs.ErrShopNotFound)).
			Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/queue/999", nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Shop not found")
	})

	s.Run("non-numeric shop id is a 400", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/queue/abc", nil, "")
		s.Equal(http.StatusBadRequest, w.Code)
	})
}

func (s *QueueHandlerTestSuite) TestJoin() {
	s.Run("success: returns the granted position", func() {
		pos, _ := queue.NewPosition(42, "user-1", 3, time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC))
		s.mockCommands.EXPECT().Join(gomock.Any(), int64(42)).Return(pos, nil).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/queue/42/join", nil, "")

		var response resdto.PositionResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &response)
		s.Equal(3, response.Position)
		s.Equal(int64(42), response.ShopID)
	})

	s.Run("error: 401 without a session", func() {
		s.mockCommands.EXPECT().Join(gomock.Any(), int64(42)).
			Return(queue.Position{}, errs.ErrUnauthenticated).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/queue/42/join", nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Authentication required")
	})
}

func (s *QueueHandlerTestSuite) TestMyPosition() {
	s.Run("success: serves the cached position", func() {
		view := &queries.PositionView{ShopID: 42, Position: 3, JoinedAt: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)}
		s.mockQueries.EXPECT().MyPosition(int64(42)).Return(view, true).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/queue/42/position", nil, "")

		var response resdto.PositionResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &response)
		s.Equal(3, response.Position)
	})

	s.Run("error: 404 when nothing is cached", func() {
		s.mockQueries.EXPECT().MyPosition(int64(42)).Return(nil, false).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/queue/42/position", nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "No queue position")
	})
}
