package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"coach/config"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	t.Parallel()

	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	hash, err := hasher.Hash("correct horse battery staple")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	assert.True(t, hasher.Check("correct horse battery staple", hash))
	assert.False(t, hasher.Check("incorrect horse", hash))
	assert.False(t, hasher.Check("", hash))
}

func TestBcryptHasher_HashIsSalted(t *testing.T) {
	t.Parallel()

	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	first, err := hasher.Hash("same-password")
	require.NoError(t, err)
	second, err := hasher.Hash("same-password")
	require.NoError(t, err)

	// Each hash carries a fresh salt, so the digests must differ.
	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check("same-password", first))
	assert.True(t, hasher.Check("same-password", second))
}

func TestBcryptHasher_LongPasswordsTruncate(t *testing.T) {
	t.Parallel()

	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	long := strings.Repeat("a", 100)
	hash, err := hasher.Hash(long)
	require.NoError(t, err)

	// Only the first 72 bytes participate, so any password sharing that
	// prefix verifies against the same digest.
	assert.True(t, hasher.Check(long, hash))
	assert.True(t, hasher.Check(strings.Repeat("a", 72), hash))
	assert.True(t, hasher.Check(strings.Repeat("a", 72)+"different tail", hash))
	assert.False(t, hasher.Check(strings.Repeat("a", 71), hash))
}

func TestBcryptHasher_CheckRejectsGarbageHash(t *testing.T) {
	t.Parallel()

	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	assert.False(t, hasher.Check("whatever", "not-a-bcrypt-hash"))
	assert.False(t, hasher.Check("whatever", ""))
}

func TestNewBcryptHasher_CostFromConfig(t *testing.T) {
	t.Parallel()

	hasher := NewBcryptHasher(&config.Config{
		Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost},
	})

	hash, err := hasher.Hash("configured-cost")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)
}
