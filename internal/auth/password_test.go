package auth_test

import (
	"testing"

	"github.com/rbarbosa/accounts-api/internal/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		password string
	}{
		{name: "simple password", password: "pw1"},
		{name: "long password", password: "a-fairly-long-password-with-punctuation!?"},
		{name: "unicode password", password: "senha-çãé-123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := auth.HashPassword(tt.password)
			require.NoError(t, err)
			assert.NotEqual(t, tt.password, hash)

			assert.True(t, auth.CheckPassword(tt.password, hash))
			assert.False(t, auth.CheckPassword(tt.password+"x", hash))
		})
	}
}

func TestHashPassword_SaltedHashesDiffer(t *testing.T) {
	first, err := auth.HashPassword("samepassword")
	require.NoError(t, err)
	second, err := auth.HashPassword("samepassword")
	require.NoError(t, err)

	// Random salt: same input, different hashes, both verify
	assert.NotEqual(t, first, second)
	assert.True(t, auth.CheckPassword("samepassword", first))
	assert.True(t, auth.CheckPassword("samepassword", second))
}

func TestCheckPassword_MalformedHash(t *testing.T) {
	assert.False(t, auth.CheckPassword("anything", ""))
	assert.False(t, auth.CheckPassword("anything", "not-a-bcrypt-hash"))
}
