package gift

import (
	"go-gift-api/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, authMW gin.HandlerFunc) {
	gifts := r.Group("/gifts")
	gifts.Use(authMW)
	gifts.Use(middleware.RateLimitByUser(5, 10))
	{
		gifts.GET("", handler.List)
		gifts.GET("/:id", handler.Detail)

		// writes get a tighter bucket than reads
		writeLimit := middleware.RateLimitByUser(2, 5)
		gifts.POST("", writeLimit, handler.Create)
		gifts.PATCH("/:id", writeLimit, handler.Update)
		gifts.DELETE("/:id", writeLimit, handler.Delete)
	}
}
