package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims carried by an access token.
// Email is the token subject; expiry rides the registered claims.
type Claims struct {
	Email string
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and verifying access tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Issue creates a signed token for the given subject email, expiring
	// after the configured TTL.
	Issue(email string) (string, error)

	// Verify checks signature and expiry and returns the decoded claims.
	// Tampered, malformed and expired tokens all fail with the same error.
	Verify(tokenString string) (*Claims, error)

	// AccessTokenDuration returns the configured token lifetime.
	AccessTokenDuration() time.Duration
}
