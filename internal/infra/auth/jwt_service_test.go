package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"checats/config"
	"checats/internal/domain/service"
)

func newTestJWTConfig(expiresHours int) *config.Config {
	return &config.Config{
		JWT: &config.JWTConfig{
			Secret:       "test_secret_key_very_long_for_testing",
			ExpiresHours: expiresHours,
			CookieName:   "checats_token",
		},
	}
}

func TestJWTService_IssueAndValidate(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig(12))
	require.NoError(t, err)

	userID := uuid.New()
	token, err := svc.Issue(userID)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
}

func TestJWTService_ExpiryMatchesConfiguredTTL(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig(12))
	require.NoError(t, err)

	before := time.Now()
	token, err := svc.Issue(uuid.New())
	require.NoError(t, err)
	after := time.Now()

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)

	// The expiry must land at issuance time plus exactly twelve hours.
	assert.Equal(t, 12*time.Hour, svc.TokenTTL())
	expiry := claims.ExpiresAt.Time
	assert.False(t, expiry.Before(before.Add(12*time.Hour).Truncate(time.Second)))
	assert.False(t, expiry.After(after.Add(12*time.Hour).Add(time.Second)))
}

func TestJWTService_ExpiredTokenRejected(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig(1))
	require.NoError(t, err)

	// Sign an already-expired token with the same secret.
	expired := &service.Claims{
		UserID: uuid.New(),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}
	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, expired).
		SignedString([]byte("test_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	claims, err := svc.ValidateToken(tokenString)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWTService_WrongSecretRejected(t *testing.T) {
	issuer, err := NewJWTService(newTestJWTConfig(1))
	require.NoError(t, err)

	other := newTestJWTConfig(1)
	other.JWT.Secret = "a_completely_different_secret_key"
	validator, err := NewJWTService(other)
	require.NoError(t, err)

	token, err := issuer.Issue(uuid.New())
	require.NoError(t, err)

	claims, err := validator.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_NonHMACSigningRejected(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig(1))
	require.NoError(t, err)

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, &service.Claims{UserID: uuid.New()})
	tokenString, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(tokenString)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_GarbageTokenRejected(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig(1))
	require.NoError(t, err)

	claims, err := svc.ValidateToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_RequiresSecretAndTTL(t *testing.T) {
	svc, err := NewJWTService(&config.Config{JWT: &config.JWTConfig{Secret: "", ExpiresHours: 1}})
	assert.Error(t, err)
	assert.Nil(t, svc)

	svc, err = NewJWTService(&config.Config{JWT: &config.JWTConfig{Secret: "s", ExpiresHours: 0}})
	assert.Error(t, err)
	assert.Nil(t, svc)
}
