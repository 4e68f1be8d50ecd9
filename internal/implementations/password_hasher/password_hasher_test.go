package passwordhasher

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashAndValidate(t *testing.T) {
	hasher := NewBcrypt("test-secret", 4)

	hash, err := hasher.HashPassword("top-secret")

	assert := require.New(t)
	assert.Nil(err)
	assert.NotEqual("top-secret", string(hash))
	assert.True(hasher.ValidatePassword("top-secret", hash))
	assert.False(hasher.ValidatePassword("wrong", hash))
}

func TestSecretIsPartOfHash(t *testing.T) {
	hasher := NewBcrypt("test-secret", 4)
	otherHasher := NewBcrypt("other-secret", 4)

	hash, err := hasher.HashPassword("top-secret")

	assert := require.New(t)
	assert.Nil(err)
	assert.False(otherHasher.ValidatePassword("top-secret", hash))
}
