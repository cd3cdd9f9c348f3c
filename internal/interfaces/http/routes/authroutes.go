package routes

import (
	"github.com/gin-gonic/gin"

	authhandlers "mesaayuda/internal/interfaces/http/handlers/auth"
	"mesaayuda/internal/interfaces/http/middleware"
)

type AuthRouteConfig struct {
	AuthHandler *authhandlers.AuthHandler
	RateLimiter *middleware.RateLimiter
}

func SetupAuthRoutes(api *gin.RouterGroup, config *AuthRouteConfig) {
	auth := api.Group("/auth")
	{
		auth.POST("/login", config.RateLimiter.Limit(), config.AuthHandler.Login)
		auth.POST("/logout", config.AuthHandler.Logout)
	}
}
