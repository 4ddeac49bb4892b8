package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParse(t *testing.T) {
	secret := []byte("test-secret")

	tokenStr, err := Generate("user-123", secret, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, tokenStr)

	claims, err := Parse(tokenStr, secret)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "blog-api", claims.Issuer)
}

func TestParse_WrongSecret(t *testing.T) {
	tokenStr, err := Generate("user-123", []byte("secret-a"), time.Hour)
	require.NoError(t, err)

	_, err = Parse(tokenStr, []byte("secret-b"))
	assert.Error(t, err)
}

func TestParse_Expired(t *testing.T) {
	tokenStr, err := Generate("user-123", []byte("secret"), -time.Minute)
	require.NoError(t, err)

	_, err = Parse(tokenStr, []byte("secret"))
	assert.Error(t, err)
}

func TestParse_Garbage(t *testing.T) {
	_, err := Parse("not.a.token", []byte("secret"))
	assert.Error(t, err)
}

func TestGenerate_EmptySecret(t *testing.T) {
	_, err := Generate("user-123", nil, time.Hour)
	assert.Error(t, err)
}
