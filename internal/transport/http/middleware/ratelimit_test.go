package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"taskflow-api/internal/core/ratelimit"
)

func limitedRouter(max int64, skip ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RateLimit(ratelimit.NewLocal(15*time.Minute, max), skip...))
	handler := func(c *gin.Context) { c.Status(http.StatusOK) }
	r.GET("/api", handler)
	r.GET("/health", handler)
	return r
}

func get(r *gin.Engine, path string) int {
	req, _ := http.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimitBlocksAfterMax(t *testing.T) {
	r := limitedRouter(3)
	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, get(r, "/api"), "request %d inside the window", i+1)
	}
	assert.Equal(t, http.StatusTooManyRequests, get(r, "/api"))
}

func TestRateLimitSkipsExemptPaths(t *testing.T) {
	r := limitedRouter(1, "/health")
	assert.Equal(t, http.StatusOK, get(r, "/api"))
	assert.Equal(t, http.StatusTooManyRequests, get(r, "/api"))
	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, get(r, "/health"))
	}
}

func TestLocalLimiterIsolatesClients(t *testing.T) {
	lim := ratelimit.NewLocal(15*time.Minute, 1)
	ctx := context.Background()
	ok, err := lim.Allow(ctx, "rl:1.1.1.1")
	assert.NoError(t, err)
	assert.True(t, ok)
	ok, _ = lim.Allow(ctx, "rl:1.1.1.1")
	assert.False(t, ok)
	ok, _ = lim.Allow(ctx, "rl:2.2.2.2")
	assert.True(t, ok)
}
