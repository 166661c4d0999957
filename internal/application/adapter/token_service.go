package adapter

import (
	"context"
	"time"
)

// TokenClaims represents the claims of a verified identity provider token.
type TokenClaims struct {
	Subject   string
	Email     string
	ExpiresAt time.Time
}

// TokenService verifies bearer tokens issued by the external identity provider.
type TokenService interface {
	// ValidateAccessToken validates an access token and returns its claims.
	ValidateAccessToken(ctx context.Context, token string) (*TokenClaims, error)
}
