//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"testing"

	"scratch-win/internal/handler/httperr"
	"scratch-win/internal/handler/middleware"
	"scratch-win/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newErrorTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.ErrorHandler())
	return engine
}

func TestAbortWithError(t *testing.T) {
	t.Run("writes the flat error body and aborts", func(t *testing.T) {
		router := newErrorTestRouter()
		router.GET("/conflict", func(c *gin.Context) {
			httperr.AbortWithError(c, http.StatusConflict, errors.New("duplicate row"), "Already exists")
		})

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/conflict", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusConflict, "Already exists")
	})

	t.Run("tolerates a nil cause", func(t *testing.T) {
		router := newErrorTestRouter()
		router.GET("/denied", func(c *gin.Context) {
			httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Access token required")
		})

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/denied", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Access token required")
	})
}

func TestErrorHandler(t *testing.T) {
	t.Run("emits the recorded public error when the handler wrote nothing", func(t *testing.T) {
		router := newErrorTestRouter()
		router.GET("/deferred", func(c *gin.Context) {
			resp := httperr.Response{Status: http.StatusUnprocessableEntity, Error: "Cannot process order"}
			_ = c.Error(&gin.Error{
				Err:  errors.New("validation failed downstream"),
				Type: gin.ErrorTypePublic,
				Meta: resp,
			})
		})

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/deferred", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusUnprocessableEntity, "Cannot process order")
	})

	t.Run("does not overwrite a response the handler already sent", func(t *testing.T) {
		router := newErrorTestRouter()
		router.GET("/written", func(c *gin.Context) {
			httperr.AbortWithError(c, http.StatusNotFound, errors.New("missing"), "Order not found")
		})

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/written", nil, "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		httptest.AssertErrorResponse(t, rec, http.StatusNotFound, "Order not found")
	})
}

func TestCustomRecovery(t *testing.T) {
	router := newErrorTestRouter()
	router.GET("/panic", func(_ *gin.Context) {
		panic("boom")
	})

	rec := httptest.PerformRequest(t, router, http.MethodGet, "/panic", nil, "")
	httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
}
