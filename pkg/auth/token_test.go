package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenManager(t *testing.T) {
	secret := "test-secret-key-12345678901234567890123456789012"
	m := NewTokenManager(secret, 0)

	t.Run("Round trip keeps identity", func(t *testing.T) {
		token, exp, err := m.Issue("u-1", "acme", "EMPLOYER")
		require.NoError(t, err)
		assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), exp, time.Minute)

		claims, err := m.Parse(token)
		require.NoError(t, err)
		assert.Equal(t, "u-1", claims.UserID)
		assert.Equal(t, "acme", claims.Username)
		assert.Equal(t, "EMPLOYER", claims.Role)
	})

	t.Run("Expired token is rejected", func(t *testing.T) {
		past := NewTokenManager(secret, time.Hour)
		past.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
		token, _, err := past.Issue("u-1", "acme", "EMPLOYER")
		require.NoError(t, err)

		_, err = m.Parse(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Wrong secret is rejected", func(t *testing.T) {
		other := NewTokenManager("another-secret", 0)
		token, _, err := other.Issue("u-1", "acme", "EMPLOYER")
		require.NoError(t, err)

		_, err = m.Parse(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Malformed token is rejected", func(t *testing.T) {
		_, err := m.Parse("malformed.token.here")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Token without exp is rejected", func(t *testing.T) {
		claims := jwt.MapClaims{"id": "u-1", "username": "acme", "role": "EMPLOYER"}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
		require.NoError(t, err)

		_, err = m.Parse(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Unsigned token is rejected", func(t *testing.T) {
		claims := jwt.MapClaims{"id": "u-1", "exp": time.Now().Add(time.Hour).Unix()}
		token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = m.Parse(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
