package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"booktracker-backend/pkg/jwt"
)

func testManager() *jwt.Manager {
	return jwt.NewManager("auth-middleware-test-secret", time.Minute, time.Hour)
}

func authedRequest(t *testing.T, manager *jwt.Manager, userID uuid.UUID) *http.Request {
	t.Helper()
	token, err := manager.GenerateAccessToken(userID.String(), "reader")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func TestRequireAuthValidToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	manager := testManager()
	userID := uuid.New()

	router := gin.New()
	called := false
	router.GET("/", RequireAuth(manager), func(c *gin.Context) {
		called = true
		assert.Equal(t, userID, UserID(c))
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authedRequest(t, manager, userID))

	assert.True(t, called)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestRequireAuthRejections(t *testing.T) {
	gin.SetMode(gin.TestMode)
	manager := testManager()

	tests := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "not bearer", header: "Basic abc123"},
		{name: "garbage token", header: "Bearer not-a-jwt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				c.Request.Header.Set("Authorization", tt.header)
			}

			RequireAuth(manager)(c)

			assert.True(t, c.IsAborted())
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestRequireAuthRejectsRefreshToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	manager := testManager()

	refresh, err := manager.GenerateRefreshToken(uuid.New().String())
	require.NoError(t, err)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.Header.Set("Authorization", "Bearer "+refresh)

	RequireAuth(manager)(c)

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestOptionalAuthAnonymous(t *testing.T) {
	gin.SetMode(gin.TestMode)
	manager := testManager()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	OptionalAuth(manager)(c)

	assert.False(t, c.IsAborted())
	assert.Equal(t, uuid.Nil, UserID(c))
}

func TestOptionalAuthWithToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	manager := testManager()
	userID := uuid.New()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = authedRequest(t, manager, userID)

	OptionalAuth(manager)(c)

	assert.False(t, c.IsAborted())
	assert.Equal(t, userID, UserID(c))
}
