package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"mesaayuda/internal/infrastructure/identity"
	"mesaayuda/internal/shared/logger"
	"mesaayuda/internal/shared/utils"
)

// Context keys set by RequireAuth.
const (
	ContextKeyUserID = "user_id"
	ContextKeyEmail  = "email"
)

type AuthMiddleware struct {
	verifier *identity.TokenVerifier
	logger   logger.Interface
}

func NewAuthMiddleware(verifier *identity.TokenVerifier, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		verifier: verifier,
		logger:   logger,
	}
}

// RequireAuth authenticates the request from the access token cookie,
// falling back to a Bearer Authorization header. The token is the
// identity provider's JWT, verified locally with the shared secret.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := utils.GetTokenFromCookie(c, utils.AccessTokenCookie)

		if token == "" {
			authHeader := c.GetHeader("Authorization")
			if authHeader == "" {
				utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
				c.Abort()
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				utils.ErrorResponse(c, http.StatusUnauthorized, "invalid authorization header format")
				c.Abort()
				return
			}

			token = parts[1]
		}

		claims, err := m.verifier.Verify(token)
		if err != nil {
			m.logger.Warnw("failed to verify token", "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set(ContextKeyUserID, claims.Subject)
		c.Set(ContextKeyEmail, claims.Email)

		c.Next()
	}
}
