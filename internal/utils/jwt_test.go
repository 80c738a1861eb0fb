package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)
	return raw
}

func TestTokenExpired(t *testing.T) {
	past := signedToken(t, jwt.MapClaims{"exp": time.Now().Add(-time.Minute).Unix()})
	assert.True(t, TokenExpired(past))

	future := signedToken(t, jwt.MapClaims{"exp": time.Now().Add(time.Hour).Unix()})
	assert.False(t, TokenExpired(future))
}

func TestTokenExpiredWithoutExpClaim(t *testing.T) {
	noExp := signedToken(t, jwt.MapClaims{"sub": "user@example.com"})
	assert.False(t, TokenExpired(noExp), "a JWT without exp is left to the backend")
}

func TestTokenExpiredOpaqueToken(t *testing.T) {
	assert.False(t, TokenExpired("not-a-jwt"), "opaque tokens are never expired locally")
	assert.False(t, TokenExpired(""))
}
