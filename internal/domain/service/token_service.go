package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the claim set carried by issued tokens. The only custom claim
// is the user identifier; roles are deliberately absent, so every authorization
// decision re-fetches the user record.
type Claims struct {
	UserID uuid.UUID `json:"userId"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Issue creates a signed, time-bounded token for the given user.
	Issue(userID uuid.UUID) (string, error)

	// ValidateToken checks the signature and expiry of a token string.
	ValidateToken(tokenString string) (*Claims, error)

	// TokenTTL returns the configured token lifetime.
	TokenTTL() time.Duration
}
