package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCreateAndParseToken(t *testing.T) {
	secret := "test-secret"

	tokenString, err := CreateToken(secret, "Asha", "9876543210", "USER")
	assert.NoError(t, err)
	assert.NotEmpty(t, tokenString)

	claims, err := ParseToken(secret, tokenString)
	assert.NoError(t, err)
	assert.Equal(t, "Asha", claims["name"])
	assert.Equal(t, "9876543210", claims["phone"])
	assert.Equal(t, "USER", claims["role"])

	exp, ok := claims["exp"].(float64)
	assert.True(t, ok)
	expiry := time.Unix(int64(exp), 0)
	assert.WithinDuration(t, time.Now().Add(TokenTTL), expiry, time.Minute)
}

func TestParseTokenWrongSecret(t *testing.T) {
	tokenString, err := CreateToken("right-secret", "Asha", "9876543210", "USER")
	assert.NoError(t, err)

	_, err = ParseToken("wrong-secret", tokenString)
	assert.Error(t, err)
}

func TestParseTokenGarbage(t *testing.T) {
	_, err := ParseToken("secret", "not-a-token")
	assert.Error(t, err)
}
