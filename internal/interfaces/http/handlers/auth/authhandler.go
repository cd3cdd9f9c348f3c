package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"mesaayuda/internal/application/auth/usecases"
	"mesaayuda/internal/shared/config"
	"mesaayuda/internal/shared/logger"
	"mesaayuda/internal/shared/utils"
)

type AuthHandler struct {
	loginUC      usecases.LoginExecutor
	logoutUC     usecases.LogoutExecutor
	cookieConfig config.CookieConfig
	logger       logger.Interface
}

func NewAuthHandler(
	loginUC usecases.LoginExecutor,
	logoutUC usecases.LogoutExecutor,
	cookieConfig config.CookieConfig,
	logger logger.Interface,
) *AuthHandler {
	return &AuthHandler{
		loginUC:      loginUC,
		logoutUC:     logoutUC,
		cookieConfig: cookieConfig,
		logger:       logger,
	}
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for login", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SetAccessTokenCookie(c, h.cookieConfig, result.AccessToken, result.ExpiresIn)

	utils.SuccessResponse(c, http.StatusOK, "Login successful", LoginResponse{
		UserID: result.UserID,
		Email:  result.Email,
	})
}

// Logout handles POST /auth/logout. The cookie is cleared even when no
// session token can be found, so a stale client always lands logged out.
func (h *AuthHandler) Logout(c *gin.Context) {
	token := utils.GetTokenFromCookie(c, utils.AccessTokenCookie)
	if token == "" {
		authHeader := c.GetHeader("Authorization")
		if strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimPrefix(authHeader, "Bearer ")
		}
	}

	if err := h.logoutUC.Execute(c.Request.Context(), usecases.LogoutCommand{AccessToken: token}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ClearAccessTokenCookie(c, h.cookieConfig)

	utils.SuccessResponse(c, http.StatusOK, "Logout successful", nil)
}
