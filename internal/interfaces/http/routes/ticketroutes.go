package routes

import (
	"github.com/gin-gonic/gin"

	tickethandlers "mesaayuda/internal/interfaces/http/handlers/ticket"
	"mesaayuda/internal/interfaces/http/middleware"
)

type TicketRouteConfig struct {
	TicketHandler     *tickethandlers.TicketHandler
	AuthMiddleware    *middleware.AuthMiddleware
	SectionMiddleware *middleware.SectionMiddleware
}

func SetupTicketRoutes(api *gin.RouterGroup, config *TicketRouteConfig) {
	tickets := api.Group("/tickets")
	tickets.Use(config.AuthMiddleware.RequireAuth())
	tickets.Use(config.SectionMiddleware.ResolveProfile())
	{
		// Specific paths register before parameterized paths so that
		// /tickets/stats never matches /:id.
		tickets.GET("/stats", config.TicketHandler.GetStats)

		tickets.POST("", config.TicketHandler.CreateTicket)
		tickets.GET("", config.TicketHandler.ListTickets)

		tickets.GET("/:id", config.TicketHandler.GetTicket)
		tickets.PATCH("/:id", config.TicketHandler.UpdateTicket)
		tickets.DELETE("/:id", config.TicketHandler.DeleteTicket)
	}
}
