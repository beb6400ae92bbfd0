package router

import (
	"net/http"
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskflow-api/internal/core/auth"
	"taskflow-api/internal/domain"
	"taskflow-api/internal/transport/http/handler"
	mdw "taskflow-api/internal/transport/http/middleware"
)

func NewAdminEngine(l *zap.Logger, adminH *handler.AdminHandler, jwter *auth.JWTer) *gin.Engine {
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		ginzap.Ginzap(l, time.RFC3339, true),
		ginzap.RecoveryWithZap(l, true),
		mdw.Metrics(),
	)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Server is healthy"})
	})

	admin := r.Group("/admin/v1")
	admin.Use(mdw.Auth(jwter), mdw.RequireRole(domain.RoleAdmin))
	admin.GET("/users", adminH.ListUsers)
	admin.POST("/users/:id/ban", adminH.BanUser)

	return r
}
