package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSHA256Hasher_Hash(t *testing.T) {
	hasher := NewSHA256Hasher("test-salt")

	t.Run("deterministic for the same input", func(t *testing.T) {
		first, err := hasher.Hash("secret123")
		require.NoError(t, err)

		second, err := hasher.Hash("secret123")
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.NotEqual(t, "secret123", first)
	})

	t.Run("different passwords produce different hashes", func(t *testing.T) {
		first, err := hasher.Hash("secret123")
		require.NoError(t, err)

		second, err := hasher.Hash("secret124")
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
	})

	t.Run("salt changes the hash", func(t *testing.T) {
		first, err := hasher.Hash("secret123")
		require.NoError(t, err)

		second, err := NewSHA256Hasher("other-salt").Hash("secret123")
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
	})
}
