package middleware

import (
	"net/http"

	"barberbook/internal/domain/identity"

	"github.com/gin-gonic/gin"
)

const ctxIdentityKey = "identity"

// IdentityReader is the read-only view of the session the middleware needs.
type IdentityReader interface {
	Current() (identity.Identity, bool)
}

// SessionMiddleware gates UI routes on the presence of an authenticated
// identity. The usecase layer repeats the check; this one just spares a
// doomed request the trip through the handler.
type SessionMiddleware struct {
	gate IdentityReader
}

func NewSessionMiddleware(gate IdentityReader) *SessionMiddleware {
	return &SessionMiddleware{gate: gate}
}

func (m *SessionMiddleware) RequireIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		ident, ok := m.gate.Current()
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Authentication required",
			})
			c.Abort()
			return
		}

		c.Set(ctxIdentityKey, ident)
		c.Next()
	}
}

func GetIdentity(c *gin.Context) (identity.Identity, bool) {
	v, exists := c.Get(ctxIdentityKey)
	if !exists {
		return identity.Identity{}, false
	}

	ident, ok := v.(identity.Identity)
	return ident, ok
}
