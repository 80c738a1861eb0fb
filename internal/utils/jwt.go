package utils // package utils provides token helper functions shared across the app

import (
	"time"

	"github.com/golang-jwt/jwt/v5" // JWT library used to read claims without verifying
)

// TokenExpired reports whether a bearer token is a JWT whose exp claim
// lies in the past. The backend signs its tokens, so this check parses
// the claims WITHOUT verifying the signature: it exists only to drop
// sessions locally before wasting a backend round-trip that would come
// back 401. Tokens that are not JWT-shaped, or JWTs without an exp
// claim, are treated as opaque and reported as not expired; the
// backend remains the authority on their validity.
func TokenExpired(raw string) bool {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(raw, claims); err != nil {
		return false // opaque token, let the backend decide
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
