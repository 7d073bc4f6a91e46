package membership

import (
	"go-gift-api/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes nests membership endpoints under an authenticated
// /wishlists group.
func RegisterRoutes(wishlists *gin.RouterGroup, handler *Handler, idem middleware.IdempotencyStore) {
	gifts := wishlists.Group("/:id/gifts")
	{
		gifts.GET("",
			middleware.RateLimitByUser(5, 10),
			handler.List,
		)

		// attach/detach touch the join table; keep clients from hammering it
		itemActionLimit := middleware.RateLimitByUser(1, 3)

		gifts.POST("",
			itemActionLimit,
			middleware.Idempotency(idem),
			handler.Attach,
		)
		gifts.POST("/new",
			itemActionLimit,
			middleware.Idempotency(idem),
			handler.CreateAndAttach,
		)
		gifts.DELETE("/:giftId",
			itemActionLimit,
			handler.Detach,
		)
	}
}
