package api

import (
	"crypto/sha256"
	"encoding/hex"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "unit-test-secret"

func signToken(t *testing.T, secret, subject string, method jwt.SigningMethod) string {
	t.Helper()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestAuthenticatorUserID(t *testing.T) {
	auth := NewAuthenticator(testSecret, "")

	t.Run("valid token", func(t *testing.T) {
		userID, err := auth.UserID(signToken(t, testSecret, "user-42", jwt.SigningMethodHS256))
		require.NoError(t, err)
		assert.Equal(t, "user-42", userID)
	})

	t.Run("empty token", func(t *testing.T) {
		_, err := auth.UserID("")
		assert.Error(t, err)
	})

	t.Run("wrong secret", func(t *testing.T) {
		_, err := auth.UserID(signToken(t, "other-secret", "user-42", jwt.SigningMethodHS256))
		assert.Error(t, err)
	})

	t.Run("missing subject", func(t *testing.T) {
		_, err := auth.UserID(signToken(t, testSecret, "", jwt.SigningMethodHS256))
		assert.Error(t, err)
	})

	t.Run("expired token", func(t *testing.T) {
		claims := jwt.RegisteredClaims{
			Subject:   "user-42",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
		require.NoError(t, err)
		_, err = auth.UserID(token)
		assert.Error(t, err)
	})
}

func TestVerifyRunnerToken(t *testing.T) {
	sum := sha256.Sum256([]byte("runner-secret"))
	auth := NewAuthenticator(testSecret, hex.EncodeToString(sum[:]))

	assert.True(t, auth.VerifyRunnerToken("runner-secret"))
	assert.False(t, auth.VerifyRunnerToken("wrong"))
	assert.False(t, auth.VerifyRunnerToken(""))

	noHash := NewAuthenticator(testSecret, "")
	assert.False(t, noHash.VerifyRunnerToken("runner-secret"), "unset hash rejects everything")
}

func TestRequestToken(t *testing.T) {
	t.Run("authorization header", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/api/wallet", nil)
		r.Header.Set("Authorization", "Bearer abc123")
		assert.Equal(t, "abc123", requestToken(r))
	})

	t.Run("query parameter for websocket upgrades", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/ws/chat/s/t?token=abc123", nil)
		assert.Equal(t, "abc123", requestToken(r))
	})

	t.Run("header wins over query", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/ws/chat/s/t?token=fromquery", nil)
		r.Header.Set("Authorization", "Bearer fromheader")
		assert.Equal(t, "fromheader", requestToken(r))
	})
}
