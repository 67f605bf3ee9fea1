package authutils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateCredentials(t *testing.T) {
	t.Run("username", func(t *testing.T) {
		username, err := GenerateUsername("Anna Maria")
		require.NoError(t, err)
		require.Len(t, username, len("annamaria")+3)
		require.True(t, strings.HasPrefix(username, "annamaria"))
		for _, c := range username[len("annamaria"):] {
			require.True(t, c >= '0' && c <= '9')
		}
	})
	t.Run("password", func(t *testing.T) {
		password, err := GeneratePassword(8)
		require.NoError(t, err)
		require.Len(t, password, 8)
		for _, c := range password {
			require.True(t, strings.ContainsRune(passwordAlphabet, c))
		}
	})
	t.Run("hash", func(t *testing.T) {
		hash, err := HashPassword("S3cret!")
		require.NoError(t, err)
		require.NotEqual(t, "S3cret!", hash)
		require.True(t, CheckPassword(hash, "S3cret!"))
		require.False(t, CheckPassword(hash, "other"))
	})
}
