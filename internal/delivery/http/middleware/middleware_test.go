package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/FarazAhsan11/candidate-management/internal/delivery/http/middleware"
	"github.com/FarazAhsan11/candidate-management/pkg/apperror"
	"github.com/FarazAhsan11/candidate-management/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestErrorHandler(t *testing.T) {
	newRouter := func(err error) *gin.Engine {
		r := gin.New()
		r.Use(middleware.ErrorHandler())
		r.GET("/boom", func(c *gin.Context) { c.Error(err) })
		return r
	}

	t.Run("Should render validation failures with per-field errors", func(t *testing.T) {
		r := newRouter(apperror.ValidationFailed([]validation.FieldIssue{
			{Path: "email", Message: "email is required"},
		}))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t,
			`{"message":"Invalid request data","errors":[{"path":"email","message":"email is required"}]}`,
			w.Body.String())
	})

	t.Run("Should render a not-found as a bare message", func(t *testing.T) {
		r := newRouter(apperror.NotFound("Candidate not found"))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"message":"Candidate not found"}`, w.Body.String())
	})

	t.Run("Should attach the detail of a storage failure", func(t *testing.T) {
		r := newRouter(apperror.Storage("Error adding candidate", assert.AnError))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "Error adding candidate")
		assert.Contains(t, w.Body.String(), "error")
	})

	t.Run("Should hide unexpected errors behind a generic message", func(t *testing.T) {
		r := newRouter(assert.AnError)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), assert.AnError.Error())
	})
}

func TestCORSMiddleware(t *testing.T) {
	newRouter := func() *gin.Engine {
		r := gin.New()
		r.Use(middleware.CORSMiddleware("https://dash.example.com"))
		r.GET("/ping", func(c *gin.Context) { c.String(200, "ok") })
		return r
	}

	t.Run("Should allow the configured frontend origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("Origin", "https://dash.example.com")

		w := httptest.NewRecorder()
		newRouter().ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "https://dash.example.com", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Should answer preflight from the dev server", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/ping", nil)
		req.Header.Set("Origin", "http://localhost:5173")

		w := httptest.NewRecorder()
		newRouter().ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("Should refuse preflight from an unknown origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/ping", nil)
		req.Header.Set("Origin", "https://evil.example.com")

		w := httptest.NewRecorder()
		newRouter().ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestRateLimitMiddleware(t *testing.T) {
	newRouter := func(limit int, prefix string) *gin.Engine {
		r := gin.New()
		r.Use(middleware.RateLimitMiddleware(middleware.RateLimitConfig{
			Limit:     limit,
			Window:    time.Minute,
			KeyPrefix: prefix,
			KeyFunc:   func(c *gin.Context) string { return "test-client" },
		}))
		r.GET("/ping", func(c *gin.Context) { c.String(200, "ok") })
		return r
	}

	t.Run("Should reject the request over the limit", func(t *testing.T) {
		r := newRouter(2, "rl:test:over:")

		for i := 0; i < 2; i++ {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
			assert.Equal(t, http.StatusOK, w.Code)
		}

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
		assert.NotEmpty(t, w.Header().Get("Retry-After"))
	})

	t.Run("Should expose the remaining budget in headers", func(t *testing.T) {
		r := newRouter(5, "rl:test:budget:")

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

		assert.Equal(t, "5", w.Header().Get("X-RateLimit-Limit"))
		assert.Equal(t, "4", w.Header().Get("X-RateLimit-Remaining"))
	})
}

func TestRequestID(t *testing.T) {
	newRouter := func() *gin.Engine {
		r := gin.New()
		r.Use(middleware.RequestID())
		r.GET("/ping", func(c *gin.Context) { c.String(200, "ok") })
		return r
	}

	t.Run("Should echo an inbound request id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("X-Request-ID", "req-123")

		w := httptest.NewRecorder()
		newRouter().ServeHTTP(w, req)

		assert.Equal(t, "req-123", w.Header().Get("X-Request-ID"))
	})

	t.Run("Should assign one when absent", func(t *testing.T) {
		w := httptest.NewRecorder()
		newRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	})
}
