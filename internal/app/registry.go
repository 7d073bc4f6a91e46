package app

import (
	"database/sql"
	"net/http"

	"go-gift-api/internal/auth"
	"go-gift-api/internal/config"
	"go-gift-api/internal/gift"
	"go-gift-api/internal/membership"
	"go-gift-api/internal/middleware"
	"go-gift-api/internal/outbox"
	"go-gift-api/internal/pkg/response"
	"go-gift-api/internal/shared/database/dbgen"
	"go-gift-api/internal/wishlist"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func registerModules(router *gin.Engine, db *sql.DB, cfg *config.Config, idem middleware.IdempotencyStore, logger *zap.Logger) {
	queries := dbgen.New(db)

	// --- Repositories ---
	authRepo := auth.NewRepository(queries)
	giftRepo := gift.NewRepository(queries)
	wishlistRepo := wishlist.NewRepository(queries)
	outboxRepo := outbox.NewRepository(queries)

	// --- Services ---
	authService := auth.NewService(authRepo, cfg.JWTSecret, logger)
	giftService := gift.NewService(giftRepo, logger)
	wishlistService := wishlist.NewService(wishlistRepo, logger)
	membershipService := membership.NewService(membership.Deps{
		DB:        db,
		Wishlists: wishlistRepo,
		Gifts:     giftRepo,
		Outbox:    outboxRepo,
		Logger:    logger,
	})

	// --- Handlers ---
	authHandler := auth.NewHandler(authService, cfg.IsProduction(), logger)
	giftHandler := gift.NewHandler(giftService, logger)
	wishlistHandler := wishlist.NewHandler(wishlistService, logger)
	membershipHandler := membership.NewHandler(membershipService, logger)

	authMW := middleware.AuthMiddleware(cfg.JWTSecret)

	router.GET("/health", func(c *gin.Context) {
		if err := db.PingContext(c.Request.Context()); err != nil {
			response.Error(c, http.StatusServiceUnavailable, "UNAVAILABLE", "database unreachable", nil)
			return
		}
		response.Success(c, http.StatusOK, "ok", nil)
	})

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler, authMW)
		gift.RegisterRoutes(api, giftHandler, authMW)
		wishlists := wishlist.RegisterRoutes(api, wishlistHandler, authMW)
		membership.RegisterRoutes(wishlists, membershipHandler, idem)
	}
}
