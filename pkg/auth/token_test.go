package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenServiceGenerate(t *testing.T) {
	tokenService := &TokenService{}

	token, err := tokenService.Generate()
	require.NoError(t, err)
	assert.Len(t, token, 53)
}

func TestTokenServiceGenerateUnique(t *testing.T) {
	tokenService := &TokenService{}

	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		token, err := tokenService.Generate()
		require.NoError(t, err)

		_, dup := seen[token]
		require.False(t, dup, "token %q generated twice", token)
		seen[token] = struct{}{}
	}
}
