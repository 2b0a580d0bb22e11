//go:build unit

package middleware_test

import (
	"net/http"
	"testing"
	"time"

	"scratch-win/internal/handler/middleware"
	"scratch-win/internal/pkg/jwt"
	"scratch-win/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequireAdminStoresClaims(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tokens := jwt.NewService("test-secret", time.Hour)
	auth := middleware.NewAuthMiddleware(tokens)

	router := gin.New()
	router.GET("/whoami", auth.RequireAdmin(), func(c *gin.Context) {
		claims, ok := middleware.ClaimsFromContext(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"role": claims.Role})
	})

	token, err := tokens.GenerateAdminToken()
	require.NoError(t, err)

	rec := httptest.PerformRequest(t, router, http.MethodGet, "/whoami", nil, token)

	var response struct {
		Role string `json:"role"`
	}
	httptest.AssertSuccessResponse(t, rec, http.StatusOK, &response)
	assert.Equal(t, jwt.RoleAdmin, response.Role)
}

func TestClaimsFromContextWithoutAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/anon", func(c *gin.Context) {
		_, ok := middleware.ClaimsFromContext(c)
		assert.False(t, ok)
		c.Status(http.StatusNoContent)
	})

	rec := httptest.PerformRequest(t, router, http.MethodGet, "/anon", nil, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
