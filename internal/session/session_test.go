//go:build unit

package session_test

import (
	"testing"
	"time"

	"barberbook/internal/domain/identity"
	"barberbook/internal/pkg/clock"
	"barberbook/internal/pkg/tokenstore"
	"barberbook/internal/session"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "user-1",
		"exp": exp.Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func TestSession_Lifecycle(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	ident := identity.NewIdentity("user-1", "fade@example.com")

	t.Run("starts logged out", func(t *testing.T) {
		sess := session.New(tokenstore.NewMemoryStore(), clock.NewMockClock(now))
		_, ok := sess.Current()
		assert.False(t, ok)
		assert.Empty(t, sess.Token())
	})

	t.Run("init installs identity and persists token", func(t *testing.T) {
		store := tokenstore.NewMemoryStore()
		sess := session.New(store, clock.NewMockClock(now))
		token := signedToken(t, now.Add(time.Hour))

		sess.Init(ident, token)

		got, ok := sess.Current()
		require.True(t, ok)
		assert.Equal(t, ident, got)
		assert.Equal(t, token, sess.Token())

		persisted, err := store.Load()
		require.NoError(t, err)
		assert.Equal(t, token, persisted)
	})

	t.Run("clear destroys identity and persisted token", func(t *testing.T) {
		store := tokenstore.NewMemoryStore()
		sess := session.New(store, clock.NewMockClock(now))
		sess.Init(ident, signedToken(t, now.Add(time.Hour)))

		sess.Clear()

		_, ok := sess.Current()
		assert.False(t, ok)
		assert.Empty(t, sess.Token())

		persisted, err := store.Load()
		require.NoError(t, err)
		assert.Empty(t, persisted)
	})
}

func TestSession_TokenExpiry(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	ident := identity.NewIdentity("user-1", "fade@example.com")

	t.Run("expired token means no identity", func(t *testing.T) {
		clk := clock.NewMockClock(now)
		sess := session.New(tokenstore.NewMemoryStore(), clk)
		sess.Init(ident, signedToken(t, now.Add(time.Hour)))

		clk.Add(2 * time.Hour)

		_, ok := sess.Current()
		assert.False(t, ok)
	})

	t.Run("opaque token never expires locally", func(t *testing.T) {
		clk := clock.NewMockClock(now)
		sess := session.New(tokenstore.NewMemoryStore(), clk)
		sess.Init(ident, "opaque-session-token")

		clk.Add(1000 * time.Hour)

		_, ok := sess.Current()
		assert.True(t, ok)
	})
}

func TestSession_RestoreToken(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	t.Run("restores a live persisted token", func(t *testing.T) {
		store := tokenstore.NewMemoryStore()
		token := signedToken(t, now.Add(time.Hour))
		require.NoError(t, store.Save(token))

		sess := session.New(store, clock.NewMockClock(now))
		got, ok := sess.RestoreToken()
		require.True(t, ok)
		assert.Equal(t, token, got)
	})

	t.Run("expired persisted token is discarded", func(t *testing.T) {
		store := tokenstore.NewMemoryStore()
		require.NoError(t, store.Save(signedToken(t, now.Add(-time.Hour))))

		sess := session.New(store, clock.NewMockClock(now))
		_, ok := sess.RestoreToken()
		assert.False(t, ok)
	})

	t.Run("empty store restores nothing", func(t *testing.T) {
		sess := session.New(tokenstore.NewMemoryStore(), clock.NewMockClock(now))
		_, ok := sess.RestoreToken()
		assert.False(t, ok)
	})
}
