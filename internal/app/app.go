package app

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/shreyansh404/attendanceManagment/internal/config"
	"github.com/shreyansh404/attendanceManagment/internal/shared/connection"
	"github.com/shreyansh404/attendanceManagment/internal/shared/response"
	"github.com/shreyansh404/attendanceManagment/internal/storage"
)

// BuildApp connects the backing services and assembles the HTTP engine.
func BuildApp(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*gin.Engine, error) {
	db, err := connection.ConnectGORMWithRetry(cfg.Postgres, 5)
	if err != nil {
		return nil, err
	}

	rdb, err := connection.ConnectRedisWithRetry(cfg.Redis, 5)
	if err != nil {
		return nil, err
	}

	media, err := storage.NewS3Sink(ctx, cfg.S3)
	if err != nil {
		return nil, err
	}

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())

	engine.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	api := engine.Group("/api/v1")
	if err := registerModules(api, cfg, db, rdb, media, logger); err != nil {
		return nil, err
	}

	return engine, nil
}
