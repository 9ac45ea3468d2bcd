package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJWTRoundTrip(t *testing.T) {
	t.Run("TestGenerateAndParse", func(t *testing.T) {
		token, err := GenerateJWT("64f0c2a9e13b5a0001a1b2c3", "host@example.com")
		assert.NoError(t, err)
		assert.NotEmpty(t, token)

		claims, err := ParseJWT(token)
		assert.NoError(t, err)
		assert.Equal(t, "64f0c2a9e13b5a0001a1b2c3", claims.HostID)
		assert.Equal(t, "host@example.com", claims.Email)
	})

	t.Run("TestEmptyToken", func(t *testing.T) {
		_, err := ParseJWT("")
		assert.Error(t, err)
	})

	t.Run("TestGarbageToken", func(t *testing.T) {
		_, err := ParseJWT("not.a.jwt")
		assert.Error(t, err)
	})

	t.Run("TestTamperedToken", func(t *testing.T) {
		token, err := GenerateJWT("64f0c2a9e13b5a0001a1b2c3", "host@example.com")
		assert.NoError(t, err)

		_, err = ParseJWT(token + "x")
		assert.Error(t, err)
	})
}
