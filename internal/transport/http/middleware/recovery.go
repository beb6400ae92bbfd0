package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskflow-api/internal/transport/http/response"
)

func SimpleRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				response.Abort(c, http.StatusInternalServerError, "Something went wrong")
			}
		}()
		c.Next()
	}
}
