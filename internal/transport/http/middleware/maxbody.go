package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskflow-api/internal/transport/http/response"
)

func MaxBodyBytes(n int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, n)
		c.Next()
		if c.Err() != nil && !c.Writer.Written() {
			response.Abort(c, http.StatusRequestEntityTooLarge, "Request body too large")
		}
	}
}
