package routes

import (
	"github.com/gin-gonic/gin"

	vo "mesaayuda/internal/domain/profile/valueobjects"
	userhandlers "mesaayuda/internal/interfaces/http/handlers/user"
	"mesaayuda/internal/interfaces/http/middleware"
)

type UserRouteConfig struct {
	UserHandler       *userhandlers.UserHandler
	AuthMiddleware    *middleware.AuthMiddleware
	SectionMiddleware *middleware.SectionMiddleware
}

func SetupUserRoutes(api *gin.RouterGroup, config *UserRouteConfig) {
	users := api.Group("/users")
	users.Use(config.AuthMiddleware.RequireAuth())
	users.Use(config.SectionMiddleware.ResolveProfile())
	{
		// Any authenticated identity can read its own profile; the "usuarios"
		// section gate only covers administering other accounts.
		users.GET("/profile", config.UserHandler.GetProfile)

		admin := users.Group("")
		admin.Use(config.SectionMiddleware.RequireSection(vo.SectionUsuarios))
		{
			admin.GET("", config.UserHandler.ListUsers)
			admin.PATCH("/:userId", config.UserHandler.UpdateUserProfile)
		}
	}
}
