package cryptox_test

import (
	"testing"

	"github.com/stackledger/stackledger/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyAPIKey(t *testing.T) {
	t.Parallel()

	key := cryptox.MustGenerateToken(cryptox.TokenSize256)

	hash, err := cryptox.HashAPIKey(key)
	require.NoError(t, err)
	require.NotEqual(t, key, hash)

	t.Run("accepts the original key", func(t *testing.T) {
		require.True(t, cryptox.VerifyAPIKey(key, hash))
	})

	t.Run("rejects a different key", func(t *testing.T) {
		require.False(t, cryptox.VerifyAPIKey("wrong-key", hash))
	})

	t.Run("rejects a malformed hash", func(t *testing.T) {
		require.False(t, cryptox.VerifyAPIKey(key, "not-a-bcrypt-hash"))
	})
}

func TestGenerateToken(t *testing.T) {
	t.Parallel()

	t.Run("rejects non-positive sizes", func(t *testing.T) {
		_, err := cryptox.GenerateToken(0)
		require.Error(t, err)
	})

	t.Run("produces distinct tokens", func(t *testing.T) {
		a := cryptox.MustGenerateToken(cryptox.TokenSize128)
		b := cryptox.MustGenerateToken(cryptox.TokenSize128)
		require.NotEqual(t, a, b)
	})
}
