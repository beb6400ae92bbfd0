package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskflow-api/internal/core/ratelimit"
	"taskflow-api/internal/transport/http/response"
)

// RateLimit applies a per-client sliding window. Paths in skip (health, docs,
// metrics) are exempt. A failing limiter store fails open rather than taking
// the API down with it.
func RateLimit(lim ratelimit.Limiter, skip ...string) gin.HandlerFunc {
	exempt := make(map[string]struct{}, len(skip))
	for _, p := range skip {
		exempt[p] = struct{}{}
	}
	return func(c *gin.Context) {
		if _, ok := exempt[c.Request.URL.Path]; ok {
			c.Next()
			return
		}
		ok, err := lim.Allow(c.Request.Context(), "rl:"+c.ClientIP())
		if err == nil && !ok {
			response.Abort(c, http.StatusTooManyRequests, "Too many requests, please try again later")
			return
		}
		c.Next()
	}
}
