package main

import (
	"log"
	"time"

	"go-gift-api/internal/app"
	"go-gift-api/internal/config"
	"go-gift-api/internal/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	l, err := logger.New(cfg.AppEnv)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = l.Sync() }()

	if cfg.EphemeralJWTSecret {
		l.Warn("JWT_SECRET is not set: using a random per-process secret, tokens will not survive a restart",
			zap.String("app_env", cfg.AppEnv))
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	// build dependency + routes
	a, err := app.BuildApp(r, cfg, l)
	if err != nil {
		l.Fatal("failed to build app", zap.Error(err))
	}
	defer a.Close()

	if err := app.StartHTTPServer(r, app.ServerConfig{
		Port:            cfg.Port,
		ReadTimeout:     5 * time.Second,
		WriteTimeout:    10 * time.Second,
		IdleTimeout:     60 * time.Second,
		ShutdownTimeout: 10 * time.Second,
	}, l); err != nil {
		l.Error("http server failed", zap.Error(err))
	}
}
