package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"taskflow-api/internal/core/auth"
	"taskflow-api/internal/core/ratelimit"
	"taskflow-api/internal/transport/http/handler"
	mdw "taskflow-api/internal/transport/http/middleware"
)

const docsPath = "/api-doc"

func NewAPIEngine(l *zap.Logger, lim ratelimit.Limiter, jwter *auth.JWTer, userH *handler.UserHandler, taskH *handler.TaskHandler) *gin.Engine {
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(lim, "/health", "/metrics", docsPath),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(16<<20),
		mdw.Timeout(10*time.Second),
		mdw.SimpleRecovery(),
		mdw.Metrics(),
		mdw.AccessLog(l),
		cors.Default(),
	)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Server is healthy"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api/v1")

	users := api.Group("/users")
	users.POST("/create", userH.Create)
	users.POST("/login", userH.Login)

	usersAuth := users.Group("", mdw.Auth(jwter))
	usersAuth.GET("", userH.List)
	usersAuth.GET("/:id", userH.GetByID)
	usersAuth.PUT("/:id", userH.Update)
	usersAuth.DELETE("/:id", userH.Delete)

	tasks := api.Group("/tasks", mdw.Auth(jwter))
	tasks.POST("/create", taskH.Create)
	tasks.GET("", taskH.List)
	// static routes before the :id wildcard
	tasks.GET("/report-time", taskH.TimeSpentReport)
	tasks.GET("/report", taskH.CompletionReport)
	tasks.GET("/:id", taskH.GetByID)
	tasks.PUT("/:id", taskH.Update)
	tasks.DELETE("/:id", taskH.Delete)

	return r
}
