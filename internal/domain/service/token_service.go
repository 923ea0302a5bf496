// Package service declares the domain-level service interfaces implemented
// by the infrastructure layer.
package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims carried by the session token.
// The token is identity proof only: role and account status are
// re-resolved from the user store on every request so that a role change
// or suspension takes effect immediately, not at token expiry.
type Claims struct {
	Email string
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and verifying session tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Issue creates a signed, time-limited token embedding the user's email.
	Issue(email string) (token string, err error)

	// Verify checks the signature and expiry of a token string and
	// returns its claims.
	Verify(token string) (*Claims, error)

	// TokenDuration returns the configured token lifetime, used to set
	// the cookie max-age alongside the token itself.
	TokenDuration() time.Duration
}
