package main

import (
	"log"

	"go-gift-api/internal/app"
	"go-gift-api/internal/config"
	"go-gift-api/internal/pkg/logger"

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

	if err := app.RunWorker(cfg, l); err != nil {
		l.Fatal("worker failed", zap.Error(err))
	}
}
