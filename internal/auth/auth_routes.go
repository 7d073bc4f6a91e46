package auth

import (
	"go-gift-api/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, authMW gin.HandlerFunc) {
	auth := r.Group("/auth")
	{
		// register and login are limited per IP against account spam and brute force
		auth.POST("/register",
			middleware.RateLimitByIP(0.05, 1),
			handler.Register,
		)
		auth.POST("/login",
			middleware.RateLimitByIP(0.1, 3),
			handler.Login,
		)

		authenticated := auth.Group("/")
		authenticated.Use(authMW)
		{
			authenticated.GET("/me",
				middleware.RateLimitByUser(5, 10),
				handler.Me,
			)
			authenticated.POST("/logout",
				middleware.RateLimitByUser(1, 2),
				handler.Logout,
			)
			authenticated.POST("/change-password",
				middleware.RateLimitByUser(0.1, 3),
				handler.ChangePassword,
			)
		}
	}
}
