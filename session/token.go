package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// IsExpired inspects the token's exp claim without verifying its
// signature; verification is the server's job, the client only wants to
// skip a guaranteed 401 and send the user straight to login. Tokens that
// cannot be parsed or carry no expiry are treated as usable and left for
// the server to judge.
func IsExpired(token string, now time.Time) bool {
	claims := &jwt.RegisteredClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return false
	}
	if claims.ExpiresAt == nil {
		return false
	}
	return claims.ExpiresAt.Before(now)
}
