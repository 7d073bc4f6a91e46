package app

import (
	"database/sql"
	"go-gift-api/internal/config"
	"go-gift-api/internal/middleware"
	"go-gift-api/internal/shared/connection"
	"go-gift-api/internal/shared/database/migrate"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// App holds the long-lived resources behind the HTTP router.
type App struct {
	DB    *sql.DB
	Redis *redis.Client
}

func (a *App) Close() {
	if a.Redis != nil {
		_ = a.Redis.Close()
	}
	if a.DB != nil {
		_ = a.DB.Close()
	}
}

func BuildApp(router *gin.Engine, cfg *config.Config, logger *zap.Logger) (*App, error) {
	// 1. Setup Infrastructure
	db, err := connection.ConnectDBWithRetry(cfg.DBURL, cfg.DBMaxRetries, logger)
	if err != nil {
		return nil, err
	}

	if err := migrate.Up(db, cfg.MigrationsPath, logger); err != nil {
		_ = db.Close()
		return nil, err
	}

	a := &App{DB: db}

	// idempotency keys are optional; run without them if redis is down
	var idem middleware.IdempotencyStore
	redisClient, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, cfg.DBMaxRetries, logger)
	if err != nil {
		logger.Warn("redis unavailable, idempotency keys disabled", zap.Error(err))
	} else {
		a.Redis = redisClient
		idem = redisClient
	}

	// 2. Register Modules & Routes
	router.Use(middleware.RequestLogger(logger))
	registerModules(router, db, cfg, idem, logger)

	return a, nil
}
