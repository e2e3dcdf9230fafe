package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParse(t *testing.T) {
	signed, err := Generate("secreto", "user-123", "despensa-test", 60)
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	userID, err := Parse("secreto", signed)
	require.NoError(t, err)
	assert.Equal(t, "user-123", userID)
}

func TestParseRejects(t *testing.T) {
	signed, err := Generate("secreto", "user-123", "despensa-test", 60)
	require.NoError(t, err)

	t.Run("firma con otro secret", func(t *testing.T) {
		_, err := Parse("otro-secreto", signed)
		assert.Error(t, err)
	})

	t.Run("token expirado", func(t *testing.T) {
		expired, err := Generate("secreto", "user-123", "despensa-test", -1)
		require.NoError(t, err)
		_, err = Parse("secreto", expired)
		assert.Error(t, err)
	})

	t.Run("cadena arbitraria", func(t *testing.T) {
		_, err := Parse("secreto", "no.es.jwt")
		assert.Error(t, err)
	})
}

func TestGenerateRequiresSecret(t *testing.T) {
	_, err := Generate("", "user-123", "despensa-test", 60)
	assert.Error(t, err)
}

func TestHash(t *testing.T) {
	a := Hash("mismo-token")
	b := Hash("mismo-token")
	c := Hash("otro-token")

	assert.Equal(t, a, b, "determinístico")
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 64, "SHA-256 en hex")
}
