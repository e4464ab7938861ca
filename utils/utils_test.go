package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_NeverStoresPlaintext(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("secur3ty")
	require.NoError(t, err)
	require.NotEqual(t, "secur3ty", hash)

	assert.True(t, CheckPasswordHash("secur3ty", hash))
	assert.False(t, CheckPasswordHash("secur3tY", hash))
	assert.False(t, CheckPasswordHash("", hash))
}

func TestCheckPasswordPolicy(t *testing.T) {
	t.Parallel()

	// 6 caractères : refusé. 7 : accepté.
	assert.Error(t, CheckPasswordPolicy("abc123"))
	assert.NoError(t, CheckPasswordPolicy("abcd123"))

	// « password » interdit, quelle que soit la casse.
	assert.Error(t, CheckPasswordPolicy("password1"))
	assert.Error(t, CheckPasswordPolicy("PASSWORD1"))
	assert.Error(t, CheckPasswordPolicy("xxPassWordxx"))

	assert.NoError(t, CheckPasswordPolicy("secur3ty"))
}
