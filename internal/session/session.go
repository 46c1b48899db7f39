package session

import (
	"log/slog"
	"sync"

	"barberbook/internal/domain/identity"
	"barberbook/internal/pkg/clock"
	"barberbook/internal/pkg/tokenstore"

	"github.com/golang-jwt/jwt/v5"
)

// Session is the process-wide identity state, set by login and destroyed by
// logout. It replaces the ambient auth context of the browser original with
// an explicit, injected object: gated operations ask Current() first and
// fail fast when no identity is present.
type Session struct {
	mu    sync.RWMutex
	ident identity.Identity
	token string

	store tokenstore.Store
	clock clock.Clock
}

func New(store tokenstore.Store, clk clock.Clock) *Session {
	return &Session{
		store: store,
		clock: clk,
	}
}

// Init installs the authenticated identity and persists its token under the
// well-known key. Called on successful login.
func (s *Session) Init(ident identity.Identity, token string) {
	s.mu.Lock()
	s.ident = ident
	s.token = token
	s.mu.Unlock()

	if err := s.store.Save(token); err != nil {
		slog.Warn("failed to persist session token", "error", err)
	}
}

// Clear destroys the identity and removes the persisted token. Called on
// logout.
func (s *Session) Clear() {
	s.mu.Lock()
	s.ident = identity.Identity{}
	s.token = ""
	s.mu.Unlock()

	if err := s.store.Clear(); err != nil {
		slog.Warn("failed to clear persisted session token", "error", err)
	}
}

// Current returns the authenticated identity, or false when none is present.
// A bearer token that has visibly expired counts as no identity.
func (s *Session) Current() (identity.Identity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.ident.IsZero() || s.token == "" {
		return identity.Identity{}, false
	}
	if s.tokenExpired(s.token) {
		return identity.Identity{}, false
	}
	return s.ident, true
}

// Token returns the raw bearer token for outbound calls. Empty when logged
// out.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// RestoreToken loads the token persisted by a previous run, if any. The
// identity itself is not durable; callers re-fetch it from the auth
// endpoint before calling Init.
func (s *Session) RestoreToken() (string, bool) {
	token, err := s.store.Load()
	if err != nil {
		slog.Warn("failed to load persisted session token", "error", err)
		return "", false
	}
	if token == "" {
		return "", false
	}
	if s.tokenExpired(token) {
		return "", false
	}
	return token, true
}

// tokenExpired inspects the token's exp claim without verifying the
// signature (verification is the server's job). Opaque tokens pass through.
func (s *Session) tokenExpired(token string) bool {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return false
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Time.Before(s.clock.Now())
}
