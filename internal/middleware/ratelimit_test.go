package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"cloudpillers-api/internal/middleware"
)

func rateLimitedRouter(maxRequests int, window time.Duration) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.RateLimit(maxRequests, window))
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})
	return router
}

func TestRateLimit_AllowsWithinBudget(t *testing.T) {
	router := rateLimitedRouter(5, time.Minute)

	for i := 0; i < 5; i++ {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = "203.0.113.10:1234"
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code, "request %d should pass", i+1)
	}
}

func TestRateLimit_RejectsOverBudget(t *testing.T) {
	router := rateLimitedRouter(3, time.Minute)

	var last *httptest.ResponseRecorder
	for i := 0; i < 4; i++ {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = "203.0.113.10:1234"
		last = httptest.NewRecorder()
		router.ServeHTTP(last, req)
	}

	assert.Equal(t, http.StatusTooManyRequests, last.Code)
	assert.Contains(t, last.Body.String(), "Too many requests from this IP")
}

func TestRateLimit_TracksClientsSeparately(t *testing.T) {
	router := rateLimitedRouter(1, time.Minute)

	first := httptest.NewRequest(http.MethodGet, "/ping", nil)
	first.RemoteAddr = "203.0.113.10:1234"
	w1 := httptest.NewRecorder()
	router.ServeHTTP(w1, first)
	assert.Equal(t, http.StatusOK, w1.Code)

	// Same client again is limited
	again := httptest.NewRequest(http.MethodGet, "/ping", nil)
	again.RemoteAddr = "203.0.113.10:1234"
	w2 := httptest.NewRecorder()
	router.ServeHTTP(w2, again)
	assert.Equal(t, http.StatusTooManyRequests, w2.Code)

	// A different client still gets through
	other := httptest.NewRequest(http.MethodGet, "/ping", nil)
	other.RemoteAddr = "198.51.100.7:1234"
	w3 := httptest.NewRecorder()
	router.ServeHTTP(w3, other)
	assert.Equal(t, http.StatusOK, w3.Code)
}
