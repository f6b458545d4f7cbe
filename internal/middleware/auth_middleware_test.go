package middleware

import (
	"crypto/rand"
	"crypto/rsa"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shreyansh404/attendanceManagment/internal/shared/contextutil"
	"github.com/shreyansh404/attendanceManagment/internal/token"
)

func newTestTokenManager(t *testing.T, ttl time.Duration) *token.Manager {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	return token.NewManager(key, &key.PublicKey, ttl, 4)
}

func newAuthRouter(tokens *token.Manager, handler gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", AuthMiddleware(tokens), handler)
	return r
}

func TestAuthMiddlewarePropagatesIdentity(t *testing.T) {
	tokens := newTestTokenManager(t, time.Minute)
	signed, err := tokens.IssueToken("jane@example.com", "staff", "uid-42")
	require.NoError(t, err)

	var seenEmail, seenRole, seenGinUID, seenCtxUID string
	router := newAuthRouter(tokens, func(c *gin.Context) {
		seenEmail = c.GetString("email")
		seenRole = c.GetString("role")
		seenGinUID = c.GetString("user_id")
		seenCtxUID = contextutil.GetUserID(c.Request.Context())
		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "jane@example.com", seenEmail)
	assert.Equal(t, "staff", seenRole)
	assert.Equal(t, "uid-42", seenGinUID)

	// downstream middleware and services read the id from the request context
	assert.Equal(t, "uid-42", seenCtxUID)
}

func TestAuthMiddlewareCookieFallback(t *testing.T) {
	tokens := newTestTokenManager(t, time.Minute)
	signed, err := tokens.IssueToken("jane@example.com", "staff", "uid-42")
	require.NoError(t, err)

	router := newAuthRouter(tokens, func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "access_token", Value: signed})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestAuthMiddlewareRejects(t *testing.T) {
	tokens := newTestTokenManager(t, time.Minute)
	otherKey := newTestTokenManager(t, time.Minute)

	router := newAuthRouter(tokens, func(c *gin.Context) {
		t.Fatal("handler must not run without a valid token")
	})

	t.Run("missing token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("token signed with another key", func(t *testing.T) {
		signed, err := otherKey.IssueToken("jane@example.com", "staff", "uid-42")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+signed)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer not-a-jwt")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
