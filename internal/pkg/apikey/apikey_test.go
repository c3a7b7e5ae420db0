//go:build unit

package apikey_test

import (
	"regexp"
	"testing"

	"swimapi/internal/pkg/apikey"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var hexKeyPattern = regexp.MustCompile(`^[0-9a-f]{64}$`)

func TestGenerate(t *testing.T) {
	t.Run("produces a 64 character lowercase hex key", func(t *testing.T) {
		key, err := apikey.Generate()
		require.NoError(t, err)
		assert.Regexp(t, hexKeyPattern, key)
	})

	t.Run("successive keys differ", func(t *testing.T) {
		a, err := apikey.Generate()
		require.NoError(t, err)
		b, err := apikey.Generate()
		require.NoError(t, err)
		assert.NotEqual(t, a, b)
	})
}

func TestEqual(t *testing.T) {
	key, err := apikey.Generate()
	require.NoError(t, err)

	assert.True(t, apikey.Equal(key, key))
	assert.False(t, apikey.Equal("", key))
	assert.False(t, apikey.Equal(key[:63], key))
	assert.False(t, apikey.Equal(key+"0", key))

	// Empty stored key never matches, not even an empty token
	assert.False(t, apikey.Equal("", ""))
}
