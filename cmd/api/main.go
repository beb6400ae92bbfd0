package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "go.uber.org/automaxprocs"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"taskflow-api/internal/core/auth"
	"taskflow-api/internal/core/config"
	"taskflow-api/internal/core/database"
	"taskflow-api/internal/core/logger"
	"taskflow-api/internal/core/ratelimit"
	"taskflow-api/internal/core/server"
	"taskflow-api/internal/domain"
	"taskflow-api/internal/repo"
	"taskflow-api/internal/service"
	"taskflow-api/internal/transport/http/handler"
	"taskflow-api/internal/transport/http/router"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load(os.Getenv("CONFIG_PATH"))
	log, cleanup := logger.New(cfg.Log.Level, cfg.Log.JSON)
	defer cleanup()

	db := mustOpenDB(cfg, log)
	log.Info("database connected", zap.String("driver", cfg.DB.Driver))

	if cfg.DB.AutoMigrate {
		if err := db.AutoMigrate(&domain.User{}, &domain.Task{}); err != nil {
			log.Fatal("automigrate failed", zap.Error(err))
		}
		log.Info("automigrate done")
	}

	jwter := &auth.JWTer{
		Secret:   []byte(cfg.JWT.Secret),
		Issuer:   cfg.JWT.Issuer,
		LoginTTL: time.Duration(cfg.JWT.LoginTTLHours) * time.Hour,
		TTL:      time.Duration(cfg.JWT.TTLHours) * time.Hour,
	}

	userRepo := repo.NewUserRepo(db)
	taskRepo := repo.NewTaskRepo(db)
	userSvc := service.NewUserService(userRepo, jwter)
	taskSvc := service.NewTaskService(taskRepo)
	userH := handler.NewUserHandler(userSvc)
	taskH := handler.NewTaskHandler(taskSvc)

	lim := buildLimiter(cfg, log)

	r := router.NewAPIEngine(log, lim, jwter, userH, taskH)

	addr := server.Addr(cfg.App.HTTP.Host, cfg.App.HTTP.Port)
	srv := server.BuildServer(
		addr, r,
		time.Duration(cfg.App.HTTP.ReadTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.WriteTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.IdleTimeoutSec)*time.Second,
	)

	host4human := cfg.App.HTTP.Host
	if host4human == "" || host4human == "0.0.0.0" {
		host4human = "127.0.0.1"
	}
	baseURL := "http://" + host4human + ":" + fmt.Sprint(cfg.App.HTTP.Port)
	log.Info("api starting",
		zap.String("addr", addr),
		zap.String("health", baseURL+"/health"),
		zap.String("api_v1", baseURL+"/api/v1"),
	)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("api start FAILED", zap.Error(err))
		}
	}()
	log.Info("api started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	log.Info("api stopped gracefully")
}

func buildLimiter(cfg *config.Config, l *zap.Logger) ratelimit.Limiter {
	window := time.Duration(cfg.RateLimit.WindowMin) * time.Minute
	max := int64(cfg.RateLimit.Max)
	if cfg.Redis.Addr != "" {
		l.Info("rate limit backed by redis", zap.String("addr", cfg.Redis.Addr))
		return ratelimit.NewRedis(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, window, max)
	}
	l.Info("rate limit in-process")
	return ratelimit.NewLocal(window, max)
}

func mustOpenDB(cfg *config.Config, l *zap.Logger) *gorm.DB {
	db, err := database.NewGorm(database.Opts{
		Driver:             cfg.DB.Driver,
		DSN:                cfg.DB.DSN,
		MaxOpenConns:       cfg.DB.MaxOpenConns,
		MaxIdleConns:       cfg.DB.MaxIdleConns,
		ConnMaxLifetimeMin: cfg.DB.ConnMaxLifetimeMin,
		LogLevel:           cfg.DB.LogLevel,
	})
	if err != nil {
		l.Fatal("db open", zap.Error(err))
	}
	return db
}
