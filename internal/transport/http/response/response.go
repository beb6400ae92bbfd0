// Package response centralizes payload shapes and the error-to-status mapping
// for the HTTP surface.
package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"taskflow-api/internal/core/auth"
	"taskflow-api/internal/domain"
)

func Message(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"message": msg})
}

func Abort(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"message": msg})
}

// MapError translates service failures to HTTP statuses. Missing and not-owned
// resources both surface as 404; anything untyped becomes a 500 with the error
// text and no stack trace.
func MapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrUserNotFound), errors.Is(err, domain.ErrTaskNotFound):
		Message(c, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrInvalidPassword):
		Message(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, domain.ErrEmailInUse):
		Message(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Message(c, http.StatusUnauthorized, "Invalid token")
	default:
		Message(c, http.StatusInternalServerError, err.Error())
	}
}
