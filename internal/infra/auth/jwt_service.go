// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"checats/config"
	"checats/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
// Tokens are signed with a single symmetric secret shared between issuer and validator.
type jwtService struct {
	secret string        // Secret key for HMAC-SHA256 signing.
	ttl    time.Duration // Time-to-live for issued tokens.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.JWT == nil || cfg.JWT.Secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}
	if cfg.JWT.ExpiresHours <= 0 {
		return nil, errors.New("jwt expiresHours must be positive")
	}

	return &jwtService{
		secret: cfg.JWT.Secret,
		ttl:    time.Duration(cfg.JWT.ExpiresHours) * time.Hour,
	}, nil
}

// Issue creates a signed token carrying the user identifier as its only
// custom claim. Roles are not embedded; authorization re-fetches the user.
func (s *jwtService) Issue(userID uuid.UUID) (string, error) {
	now := time.Now()
	claims := &service.Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(s.secret))
}

// ValidateToken checks the signature and expiry of a token string.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}

	return claims, nil
}

// TokenTTL returns the configured token lifetime.
func (s *jwtService) TokenTTL() time.Duration {
	return s.ttl
}
