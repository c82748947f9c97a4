package utils

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateOTPCode(t *testing.T) {
	seen := make(map[string]bool)

	for i := 0; i < 100; i++ {
		code, err := GenerateOTPCode()
		require.NoError(t, err)
		require.Len(t, code, 6)
		for _, r := range code {
			assert.True(t, r >= '0' && r <= '9')
		}
		seen[code] = true
	}

	// 100 draws from a million-value space colliding into a handful of
	// values would point at a broken source
	assert.Greater(t, len(seen), 90)
}

func TestGenerateRefreshSecret(t *testing.T) {
	first, err := GenerateRefreshSecret()
	require.NoError(t, err)
	second, err := GenerateRefreshSecret()
	require.NoError(t, err)

	// 32 bytes as unpadded base64url
	assert.Len(t, first, 43)
	assert.NotEqual(t, first, second)
}

func TestHashRefreshSecret(t *testing.T) {
	hash := HashRefreshSecret("some-secret", "server-key")

	// Deterministic under the same key
	assert.Equal(t, hash, HashRefreshSecret("some-secret", "server-key"))

	// hex-encoded SHA-256 output
	raw, err := hex.DecodeString(hash)
	require.NoError(t, err)
	assert.Len(t, raw, 32)

	// Different secret or different key changes the hash
	assert.NotEqual(t, hash, HashRefreshSecret("other-secret", "server-key"))
	assert.NotEqual(t, hash, HashRefreshSecret("some-secret", "other-key"))
}

func TestHashRefreshSecret_HashIsNotAValidSecret(t *testing.T) {
	// A leaked stored hash must not verify as a presented token
	hash := HashRefreshSecret("some-secret", "server-key")
	assert.NotEqual(t, hash, HashRefreshSecret(hash, "server-key"))
}
