//go:build e2e

package e2e

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"time"

	"barberbook/cmd/bootstrap"
	"barberbook/cmd/bootstrap/components"
	"barberbook/internal/handler/dto/response"
	"barberbook/internal/pkg/config"
	"barberbook/internal/usecase/commands"
	"barberbook/tests/common/builder"
	commonhttptest "barberbook/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/fx"
)

// ------------------------------------------------------------
// Stub of the external booking API server
// ------------------------------------------------------------

// StubAPI fakes the upstream booking server. Behavior is mutable per test:
// the queue can be taken down and bookings set to reject, and every queue
// fetch is counted so tests can observe the post-booking refresh.
type StubAPI struct {
	Server *httptest.Server

	mu            sync.Mutex
	queueSize     int
	queueDown     bool
	rejectMessage string
	queueFetches  map[int64]int
	nextID        int64
	appointments  []map[string]any
}

func NewStubAPI() *StubAPI {
	s := &StubAPI{
		queueSize:    3,
		queueFetches: map[int64]int{},
		nextID:       100,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/login", s.handleLogin)
	mux.HandleFunc("GET /queue/{shopId}", s.handleQueue)
	mux.HandleFunc("POST /queue/{shopId}/join", s.handleJoin)
	mux.HandleFunc("POST /appointments", s.handleCreateAppointment)
	mux.HandleFunc("GET /appointments", s.handleListAppointments)
	mux.HandleFunc("DELETE /appointments/{id}", s.handleCancelAppointment)

	s.Server = httptest.NewServer(mux)
	return s
}

func (s *StubAPI) Close() {
	s.Server.Close()
}

func (s *StubAPI) SetQueueSize(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queueSize = n
}

func (s *StubAPI) SetQueueDown(down bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queueDown = down
}

// RejectBookings makes every appointment creation fail with the given
// server-side message. Empty restores normal acceptance.
func (s *StubAPI) RejectBookings(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rejectMessage = message
}

func (s *StubAPI) QueueFetchCount(shopID int64) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.queueFetches[shopID]
}

func (s *StubAPI) handleLogin(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"message": "bad request"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"token": "e2e-session-token",
		"user":  map[string]any{"id": "user-e2e", "email": body.Email},
	})
}

func (s *StubAPI) handleQueue(w http.ResponseWriter, r *http.Request) {
	shopID, _ := strconv.ParseInt(r.PathValue("shopId"), 10, 64)

	s.mu.Lock()
	s.queueFetches[shopID]++
	down, size := s.queueDown, s.queueSize
	s.mu.Unlock()

	if down {
		writeJSON(w, http.StatusServiceUnavailable, map[string]any{"message": "queue service unavailable"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"barber_id":    7,
		"queue_size":   size,
		"last_updated": time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *StubAPI) handleJoin(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	position := s.queueSize + 1
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, map[string]any{"position": position})
}

func (s *StubAPI) handleCreateAppointment(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	reject := s.rejectMessage
	s.mu.Unlock()
	if reject != "" {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"message": reject})
		return
	}

	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"message": "bad request"})
		return
	}

	s.mu.Lock()
	s.nextID++
	appt := map[string]any{
		"id":         s.nextID,
		"shop_id":    body["shopId"],
		"service":    body["service"],
		"date":       body["date"],
		"notes":      body["notes"],
		"status":     "scheduled",
		"created_at": time.Now().UTC().Format(time.RFC3339),
	}
	s.appointments = append(s.appointments, appt)
	s.mu.Unlock()

	writeJSON(w, http.StatusCreated, appt)
}

func (s *StubAPI) handleListAppointments(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	appts := append([]map[string]any{}, s.appointments...)
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, appts)
}

func (s *StubAPI) handleCancelAppointment(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.ParseInt(r.PathValue("id"), 10, 64)

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, appt := range s.appointments {
		if apptID, ok := appt["id"].(int64); ok && apptID == id {
			appt["status"] = "cancelled"
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	writeJSON(w, http.StatusNotFound, map[string]any{"message": "appointment not found"})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// ------------------------------------------------------------
// Application assembly against the stub
// ------------------------------------------------------------

func buildE2EApp(apiURL, geoURL string) (*gin.Engine, *commands.QueueReconciler, *fx.App) {
	var router *gin.Engine
	var reconciler *commands.QueueReconciler

	testConfigModule := fx.Module("testconfig",
		fx.Provide(func() config.Config {
			cfg := config.NewTestConfig()
			cfg.API.BaseURL = apiURL
			cfg.Geo.BaseURL = geoURL
			return cfg
		}),
	)

	app := fx.New(
		testConfigModule,
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.SessionModule,
		bootstrap.StateModule,
		components.GatewayModule,
		components.UseCaseModule,
		components.HandlerModule,

		fx.Populate(&router, &reconciler),

		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		panic(fmt.Sprintf("failed to start fx app: %v", err))
	}

	return router, reconciler, app
}

// ------------------------------------------------------------
// Shared test suite
// ------------------------------------------------------------

// SharedSuite stands up a fresh application and stub server per test so
// session and cache state never leaks between test methods.
type SharedSuite struct {
	suite.Suite
	Router     *gin.Engine
	Reconciler *commands.QueueReconciler
	API        *StubAPI
}

func (s *SharedSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	s.API = NewStubAPI()
	s.T().Cleanup(s.API.Close)

	router, reconciler, app := buildE2EApp(s.API.Server.URL, s.API.Server.URL)
	s.Router = router
	s.Reconciler = reconciler

	s.T().Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = app.Stop(ctx)
	})
}

// Login authenticates against the stub and leaves the session live.
func (s *SharedSuite) Login() {
	t := s.T()
	w := commonhttptest.PerformRequest(t, s.Router, http.MethodPost, "/api/auth/login", builder.NewAuthBuilder().BuildDTO(), "")

	var loginResp response.LoginResponse
	commonhttptest.AssertSuccessResponse(t, w, http.StatusOK, &loginResp)
	require.Equal(t, "user-e2e", loginResp.User.ID)
}

// CreateBooking posts a default booking request and returns the response.
func (s *SharedSuite) CreateBooking() *httptest.ResponseRecorder {
	reqBody := builder.NewBookingBuilder().BuildDTO()
	return commonhttptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/bookings", reqBody, "")
}
