package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, expiresAt time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "010-1234-5678",
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func TestIsExpired(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("future expiry is usable", func(t *testing.T) {
		token := signedToken(t, now.Add(time.Hour))
		assert.False(t, IsExpired(token, now))
	})

	t.Run("past expiry is expired", func(t *testing.T) {
		token := signedToken(t, now.Add(-time.Minute))
		assert.True(t, IsExpired(token, now))
	})

	t.Run("token without exp claim is left to the server", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "x"})
		signed, err := token.SignedString([]byte("test-secret"))
		require.NoError(t, err)
		assert.False(t, IsExpired(signed, now))
	})

	t.Run("opaque token is left to the server", func(t *testing.T) {
		assert.False(t, IsExpired("not-a-jwt", now))
	})
}
