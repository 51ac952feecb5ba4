package auth

import (
	"strings"
	"testing"

	"pos/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)
	password := "Abcdef1@"

	hash, err := hasher.Hash(password)
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	assert.True(t, hasher.Check(password, hash))
	assert.False(t, hasher.Check("Abcdef1#", hash))
	assert.False(t, hasher.Check("", hash))
	assert.False(t, hasher.Check(password, "invalid_hash"))
}

func TestBcryptHasher_SaltsEveryHash(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	first, err := hasher.Hash("Abcdef1@")
	require.NoError(t, err)
	second, err := hasher.Hash("Abcdef1@")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check("Abcdef1@", first))
	assert.True(t, hasher.Check("Abcdef1@", second))
}

func TestBcryptHasher_WithCustomCost(t *testing.T) {
	customCost := 6 // Lower cost for faster testing
	hasher := NewBcryptHasherWithCost(customCost)

	hash, err := hasher.Hash("StrongPass123@")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, customCost, cost)
}

func TestBcryptHasher_InvalidCostFallsBackToDefault(t *testing.T) {
	for _, cost := range []int{0, bcrypt.MaxCost + 1} {
		hasher, ok := NewBcryptHasherWithCost(cost).(*bcryptHasher)
		require.True(t, ok)
		assert.Equal(t, bcrypt.DefaultCost, hasher.cost)
	}
}

func TestBcryptHasher_FromConfig(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: 5}}

	hasher, ok := NewBcryptHasher(cfg).(*bcryptHasher)
	require.True(t, ok)
	assert.Equal(t, 5, hasher.cost)
}

func TestBcryptHasher_RejectsOverlongPassword(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	_, err := hasher.Hash(strings.Repeat("Aa1@", 19))
	assert.Error(t, err)
}
