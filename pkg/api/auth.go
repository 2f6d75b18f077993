package api

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Authenticator validates bearer JWTs (HS256, sub = user id) and the static
// runner token.
type Authenticator struct {
	secret          []byte
	runnerTokenHash string // hex SHA-256 of the accepted runner token
}

// NewAuthenticator creates an Authenticator.
func NewAuthenticator(jwtSecret, runnerTokenHash string) *Authenticator {
	return &Authenticator{
		secret:          []byte(jwtSecret),
		runnerTokenHash: strings.ToLower(runnerTokenHash),
	}
}

// UserID parses and validates a JWT, returning its subject.
func (a *Authenticator) UserID(token string) (string, error) {
	if token == "" {
		return "", fmt.Errorf("missing token")
	}
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return a.secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("invalid token: %w", err)
	}
	sub, err := parsed.Claims.GetSubject()
	if err != nil || sub == "" {
		return "", fmt.Errorf("token has no subject")
	}
	return sub, nil
}

// VerifyRunnerToken checks the static runner token against the configured
// hash in constant time.
func (a *Authenticator) VerifyRunnerToken(token string) bool {
	if a.runnerTokenHash == "" || token == "" {
		return false
	}
	sum := sha256.Sum256([]byte(token))
	got := hex.EncodeToString(sum[:])
	return subtle.ConstantTimeCompare([]byte(got), []byte(a.runnerTokenHash)) == 1
}

// requestToken extracts the auth token from the Authorization header or the
// token query parameter. WebSocket clients can't set headers from the
// browser, so the query form is accepted on upgrade endpoints.
func requestToken(r *http.Request) string {
	if h := r.Header.Get("Authorization"); h != "" {
		return strings.TrimPrefix(h, "Bearer ")
	}
	return r.URL.Query().Get("token")
}

// contextUserKey is the gin context key holding the authenticated user id.
const contextUserKey = "auth_user_id"

// AuthRequired is the REST middleware: valid JWT or 401.
func (a *Authenticator) AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := a.UserID(requestToken(c.Request))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or missing token"})
			return
		}
		c.Set(contextUserKey, userID)
		c.Next()
	}
}

// currentUser returns the authenticated user id set by AuthRequired.
func currentUser(c *gin.Context) string {
	v, _ := c.Get(contextUserKey)
	userID, _ := v.(string)
	return userID
}
