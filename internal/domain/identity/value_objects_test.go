//go:build unit

package identity_test

import (
	"strings"
	"testing"

	"barberbook/internal/domain/identity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmail(t *testing.T) {
	cases := []struct {
		name  string
		input string
		errIs error
	}{
		{name: "valid email", input: "fade@example.com"},
		{name: "trims surrounding whitespace", input: "  fade@example.com  "},
		{name: "missing at sign", input: "fadeexample.com", errIs: identity.ErrInvalidEmail},
		{name: "missing domain", input: "fade@", errIs: identity.ErrInvalidEmail},
		{name: "empty", input: "", errIs: identity.ErrInvalidEmail},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			email, err := identity.NewEmail(tc.input)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, strings.TrimSpace(tc.input), email.Value())
		})
	}
}

func TestNewPassword(t *testing.T) {
	t.Run("eight characters is enough", func(t *testing.T) {
		_, err := identity.NewPassword("12345678")
		assert.NoError(t, err)
	})

	t.Run("seven characters is not", func(t *testing.T) {
		_, err := identity.NewPassword("1234567")
		assert.ErrorIs(t, err, identity.ErrPasswordTooWeak)
	})
}

func TestNewCredentials(t *testing.T) {
	t.Run("valid pair", func(t *testing.T) {
		creds, err := identity.NewCredentials("fade@example.com", "password123")
		require.NoError(t, err)
		assert.Equal(t, "fade@example.com", creds.Email().Value())
		assert.Equal(t, "password123", creds.Password().Value())
	})

	t.Run("bad email fails first", func(t *testing.T) {
		_, err := identity.NewCredentials("not-an-email", "password123")
		assert.ErrorIs(t, err, identity.ErrInvalidEmail)
	})

	t.Run("weak password fails", func(t *testing.T) {
		_, err := identity.NewCredentials("fade@example.com", "short")
		assert.ErrorIs(t, err, identity.ErrPasswordTooWeak)
	})
}
