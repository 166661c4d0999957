// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/finanzas-pro/backend/internal/application/adapter"
	domainerror "github.com/finanzas-pro/backend/internal/domain/error"
)

// CustomClaims represents the claims read from identity provider tokens.
type CustomClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// tokenService implements the adapter.TokenService interface.
// It only verifies tokens; issuing them is the identity provider's job.
type tokenService struct {
	secret   []byte
	issuer   string
	audience string
}

// NewTokenService creates a new token service instance. Empty issuer or
// audience disables that check.
func NewTokenService(secret, issuer, audience string) adapter.TokenService {
	return &tokenService{
		secret:   []byte(secret),
		issuer:   issuer,
		audience: audience,
	}
}

// ValidateAccessToken validates an access token and returns its claims.
func (s *tokenService) ValidateAccessToken(_ context.Context, token string) (*adapter.TokenClaims, error) {
	options := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if s.issuer != "" {
		options = append(options, jwt.WithIssuer(s.issuer))
	}
	if s.audience != "" {
		options = append(options, jwt.WithAudience(s.audience))
	}

	claims := &CustomClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	}, options...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domainerror.NewAuthError(domainerror.ErrCodeExpiredToken, "token has expired", domainerror.ErrExpiredToken)
		}
		return nil, domainerror.NewAuthError(domainerror.ErrCodeInvalidToken, "invalid token", fmt.Errorf("%w: %v", domainerror.ErrInvalidToken, err))
	}
	if !parsed.Valid || claims.Subject == "" {
		return nil, domainerror.NewAuthError(domainerror.ErrCodeInvalidToken, "token has no subject", domainerror.ErrInvalidToken)
	}

	return &adapter.TokenClaims{
		Subject:   claims.Subject,
		Email:     claims.Email,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
