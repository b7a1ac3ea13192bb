package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newMiddlewareRouter(mw gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	router.Use(mw)
	router.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	return router
}

func TestCORSMiddleware(t *testing.T) {
	t.Run("wildcard allows any origin", func(t *testing.T) {
		router := newMiddlewareRouter(CORSMiddleware([]string{"*"}))

		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("Origin", "http://example.com")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "http://example.com", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("prefix wildcard matches localhost ports", func(t *testing.T) {
		router := newMiddlewareRouter(CORSMiddleware([]string{"http://localhost:*"}))

		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("disallowed origin gets no CORS headers", func(t *testing.T) {
		router := newMiddlewareRouter(CORSMiddleware([]string{"http://allowed.example"}))

		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("Origin", "http://evil.example")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight short-circuits with 204", func(t *testing.T) {
		router := newMiddlewareRouter(CORSMiddleware([]string{"*"}))
		router.OPTIONS("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

		req := httptest.NewRequest(http.MethodOptions, "/ping", nil)
		req.Header.Set("Origin", "http://example.com")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}

func TestIsAllowedOrigin(t *testing.T) {
	testCases := []struct {
		origin  string
		allowed []string
		want    bool
	}{
		{"http://example.com", []string{"*"}, true},
		{"http://example.com", []string{"http://example.com"}, true},
		{"http://example.com", []string{"http://other.com"}, false},
		{"http://localhost:5173", []string{"http://localhost:*"}, true},
		{"https://localhost:5173", []string{"http://localhost:*"}, false},
		{"", []string{"http://example.com"}, false},
	}

	for _, tc := range testCases {
		got := isAllowedOrigin(tc.origin, tc.allowed)
		assert.Equal(t, tc.want, got, "origin=%q allowed=%v", tc.origin, tc.allowed)
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	t.Run("requests beyond the burst are rejected", func(t *testing.T) {
		router := newMiddlewareRouter(RateLimitMiddleware(3))

		codes := make([]int, 0, 4)
		for i := 0; i < 4; i++ {
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			req.RemoteAddr = "10.0.0.1:1234"
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			codes = append(codes, w.Code)
		}

		assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
	})

	t.Run("limits are tracked per client IP", func(t *testing.T) {
		router := newMiddlewareRouter(RateLimitMiddleware(1))

		first := httptest.NewRequest(http.MethodGet, "/ping", nil)
		first.RemoteAddr = "10.0.0.1:1234"
		w := httptest.NewRecorder()
		router.ServeHTTP(w, first)
		assert.Equal(t, http.StatusOK, w.Code)

		second := httptest.NewRequest(http.MethodGet, "/ping", nil)
		second.RemoteAddr = "10.0.0.2:1234"
		w = httptest.NewRecorder()
		router.ServeHTTP(w, second)
		assert.Equal(t, http.StatusOK, w.Code, "a fresh IP gets its own bucket")
	})

	t.Run("non-positive limit disables rate limiting", func(t *testing.T) {
		router := newMiddlewareRouter(RateLimitMiddleware(0))

		for i := 0; i < 50; i++ {
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			req.RemoteAddr = "10.0.0.1:1234"
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, http.StatusOK, w.Code)
		}
	})
}
