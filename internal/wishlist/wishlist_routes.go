package wishlist

import (
	"go-gift-api/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts wishlist CRUD and returns the /wishlists group so
// membership routes can be nested under it.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler, authMW gin.HandlerFunc) *gin.RouterGroup {
	wishlists := r.Group("/wishlists")
	wishlists.Use(authMW)
	{
		wishlists.GET("",
			middleware.RateLimitByUser(5, 10),
			handler.List,
		)
		wishlists.GET("/:id",
			middleware.RateLimitByUser(5, 10),
			handler.Detail,
		)

		writeLimit := middleware.RateLimitByUser(1, 3)

		wishlists.POST("", writeLimit, handler.Create)
		wishlists.PATCH("/:id", writeLimit, handler.Rename)
		wishlists.DELETE("/:id", writeLimit, handler.Delete)
	}
	return wishlists
}
