package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"checats/config"
)

func newTestHasher() *bcryptHasher {
	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: 4}} // MinCost keeps tests fast
	return NewBcryptHasher(cfg).(*bcryptHasher)
}

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := newTestHasher()

	password := "Secret123"
	hash, err := hasher.Hash(password)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	assert.True(t, hasher.Check(password, hash))
	assert.False(t, hasher.Check("wrong", hash))
	assert.False(t, hasher.Check("", hash))
}

func TestBcryptHasher_SaltedHashesDiffer(t *testing.T) {
	hasher := newTestHasher()

	first, err := hasher.Hash("Secret123")
	assert.NoError(t, err)
	second, err := hasher.Hash("Secret123")
	assert.NoError(t, err)

	// bcrypt embeds a fresh salt per call, so equal inputs never collide.
	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check("Secret123", first))
	assert.True(t, hasher.Check("Secret123", second))
}

func TestBcryptHasher_MalformedStoredHash(t *testing.T) {
	hasher := newTestHasher()

	// A corrupted stored hash must report a mismatch, never panic or error out.
	assert.False(t, hasher.Check("Secret123", "not-a-bcrypt-hash"))
	assert.False(t, hasher.Check("Secret123", ""))
}

func TestBcryptHasher_DefaultCostFallback(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{}).(*bcryptHasher)
	assert.Equal(t, 10, hasher.cost) // bcrypt.DefaultCost

	hasher = NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: 99}}).(*bcryptHasher)
	assert.Equal(t, 10, hasher.cost)
}
