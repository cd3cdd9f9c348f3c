package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	authUsecases "mesaayuda/internal/application/auth/usecases"
	ticketUsecases "mesaayuda/internal/application/ticket/usecases"
	userUsecases "mesaayuda/internal/application/user/usecases"
	"mesaayuda/internal/infrastructure/config"
	"mesaayuda/internal/infrastructure/identity"
	"mesaayuda/internal/infrastructure/repository"
	authhandlers "mesaayuda/internal/interfaces/http/handlers/auth"
	tickethandlers "mesaayuda/internal/interfaces/http/handlers/ticket"
	userhandlers "mesaayuda/internal/interfaces/http/handlers/user"
	"mesaayuda/internal/interfaces/http/middleware"
	"mesaayuda/internal/interfaces/http/routes"
	"mesaayuda/internal/shared/logger"
)

// Router wires repositories, use cases, handlers, and middleware into a
// gin engine.
type Router struct {
	engine            *gin.Engine
	cfg               *config.Config
	ticketHandler     *tickethandlers.TicketHandler
	userHandler       *userhandlers.UserHandler
	authHandler       *authhandlers.AuthHandler
	authMiddleware    *middleware.AuthMiddleware
	sectionMiddleware *middleware.SectionMiddleware
	rateLimiter       *middleware.RateLimiter
}

// NewRouter creates a new HTTP router with all dependencies.
func NewRouter(db *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) (*Router, error) {
	engine := gin.New()

	verifier, err := identity.NewTokenVerifier(cfg.Auth.Identity.JWTSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to create token verifier: %w", err)
	}

	identityClient, err := identity.NewClient(&cfg.Auth.Identity, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create identity client: %w", err)
	}

	ticketRepo := repository.NewTicketRepository(db)
	profileRepo := repository.NewUserProfileRepository(db)

	createTicketUC := ticketUsecases.NewCreateTicketUseCase(ticketRepo, log)
	getTicketUC := ticketUsecases.NewGetTicketUseCase(ticketRepo, log)
	listTicketsUC := ticketUsecases.NewListTicketsUseCase(ticketRepo, log)
	updateTicketUC := ticketUsecases.NewUpdateTicketUseCase(ticketRepo, log)
	deleteTicketUC := ticketUsecases.NewDeleteTicketUseCase(ticketRepo, log)
	getStatsUC := ticketUsecases.NewGetTicketStatsUseCase(ticketRepo, log)

	resolveProfileUC := userUsecases.NewResolveProfileUseCase(profileRepo, cfg.Auth.SuperAdminEmail, log)
	listUsersUC := userUsecases.NewListUsersUseCase(identityClient, profileRepo, log)
	updateUserProfileUC := userUsecases.NewUpdateUserProfileUseCase(profileRepo, log)

	loginUC := authUsecases.NewLoginUseCase(identityClient, log)
	logoutUC := authUsecases.NewLogoutUseCase(identityClient, log)

	ticketHandler := tickethandlers.NewTicketHandler(
		createTicketUC, getTicketUC, listTicketsUC, updateTicketUC, deleteTicketUC, getStatsUC, log,
	)
	userHandler := userhandlers.NewUserHandler(resolveProfileUC, listUsersUC, updateUserProfileUC, log)
	authHandler := authhandlers.NewAuthHandler(loginUC, logoutUC, cfg.Auth.Cookie, log)

	authMiddleware := middleware.NewAuthMiddleware(verifier, log)
	sectionMiddleware := middleware.NewSectionMiddleware(resolveProfileUC, log)
	rateLimiter := middleware.NewRateLimiter(redisClient, cfg.Auth.LoginRateLimit, 1*time.Minute)

	return &Router{
		engine:            engine,
		cfg:               cfg,
		ticketHandler:     ticketHandler,
		userHandler:       userHandler,
		authHandler:       authHandler,
		authMiddleware:    authMiddleware,
		sectionMiddleware: sectionMiddleware,
		rateLimiter:       rateLimiter,
	}, nil
}

// SetupRoutes configures all HTTP routes.
func (r *Router) SetupRoutes(log logger.Interface) {
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.RequestLogger(log))
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.engine.Group("/api")

	routes.SetupAuthRoutes(api, &routes.AuthRouteConfig{
		AuthHandler: r.authHandler,
		RateLimiter: r.rateLimiter,
	})

	routes.SetupTicketRoutes(api, &routes.TicketRouteConfig{
		TicketHandler:     r.ticketHandler,
		AuthMiddleware:    r.authMiddleware,
		SectionMiddleware: r.sectionMiddleware,
	})

	routes.SetupUserRoutes(api, &routes.UserRouteConfig{
		UserHandler:       r.userHandler,
		AuthMiddleware:    r.authMiddleware,
		SectionMiddleware: r.sectionMiddleware,
	})
}

// GetEngine returns the Gin engine.
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
