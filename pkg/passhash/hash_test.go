package passhash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := HashPasswordWithCost("password", bcrypt.MinCost)
	require.NoError(t, err)
	assert.NotEqual(t, "password", hash)

	ok, err := VerifyPassword("password", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = VerifyPassword("wrong", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyMalformedHash(t *testing.T) {
	ok, err := VerifyPassword("password", "not-a-hash")
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestHashEmpty(t *testing.T) {
	_, err := HashPassword("")
	assert.ErrorIs(t, err, ErrEmptyPassword)
}
