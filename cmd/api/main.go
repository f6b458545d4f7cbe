package main

import (
	"context"

	"go.uber.org/zap"

	"github.com/shreyansh404/attendanceManagment/internal/app"
	"github.com/shreyansh404/attendanceManagment/internal/bootstrap"
	"github.com/shreyansh404/attendanceManagment/internal/config"
	"github.com/shreyansh404/attendanceManagment/internal/shared/apperror"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := newLogger(cfg.App.Env)
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	apperror.Init()

	engine, err := app.BuildApp(context.Background(), cfg, logger)
	if err != nil {
		logger.Fatal("build app failed", zap.Error(err))
	}

	audit := bootstrap.NewZapAuditLogger(logger)
	if err := bootstrap.Serve(":"+cfg.App.Port, engine, logger, audit); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}

func newLogger(env string) *zap.Logger {
	if env == "production" {
		logger, err := zap.NewProduction()
		if err != nil {
			panic(err)
		}
		return logger
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	return logger
}
