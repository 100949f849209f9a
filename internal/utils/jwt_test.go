package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signTestToken(t *testing.T, claims jwt.Claims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("platform-secret"))
	require.NoError(t, err)
	return signed
}

func TestParseTokenExpiry_Success(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	token := signTestToken(t, jwt.RegisteredClaims{
		Subject:   "42",
		ExpiresAt: jwt.NewNumericDate(exp),
	})

	got, err := ParseTokenExpiry(token)

	require.NoError(t, err)
	assert.True(t, exp.Equal(got), "expected %v, got %v", exp, got)
}

func TestParseTokenExpiry_NoExpiry(t *testing.T) {
	token := signTestToken(t, jwt.RegisteredClaims{Subject: "42"})

	_, err := ParseTokenExpiry(token)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoExpiry)
}

func TestParseTokenExpiry_NotAJWT(t *testing.T) {
	_, err := ParseTokenExpiry("opaque-session-token")

	require.Error(t, err)
}
