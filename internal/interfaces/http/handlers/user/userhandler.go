package user

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mesaayuda/internal/application/user/usecases"
	"mesaayuda/internal/interfaces/http/middleware"
	"mesaayuda/internal/shared/logger"
	"mesaayuda/internal/shared/utils"
)

type UserHandler struct {
	resolveProfileUC    usecases.ResolveProfileExecutor
	listUsersUC         usecases.ListUsersExecutor
	updateUserProfileUC usecases.UpdateUserProfileExecutor
	logger              logger.Interface
}

func NewUserHandler(
	resolveProfileUC usecases.ResolveProfileExecutor,
	listUsersUC usecases.ListUsersExecutor,
	updateUserProfileUC usecases.UpdateUserProfileExecutor,
	logger logger.Interface,
) *UserHandler {
	return &UserHandler{
		resolveProfileUC:    resolveProfileUC,
		listUsersUC:         listUsersUC,
		updateUserProfileUC: updateUserProfileUC,
		logger:              logger,
	}
}

// GetProfile handles GET /users/profile. The profile middleware usually
// resolves it already; falling back to the use case keeps the route
// usable when mounted without that middleware.
func (h *UserHandler) GetProfile(c *gin.Context) {
	if resolved := middleware.ProfileFromContext(c); resolved != nil {
		utils.SuccessResponse(c, http.StatusOK, "", resolved)
		return
	}

	userID := c.GetString(middleware.ContextKeyUserID)
	email := c.GetString(middleware.ContextKeyEmail)

	result, err := h.resolveProfileUC.Execute(c.Request.Context(), usecases.ResolveProfileCommand{
		UserID: userID,
		Email:  email,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListUsers handles GET /users
func (h *UserHandler) ListUsers(c *gin.Context) {
	result, err := h.listUsersUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdateUserProfile handles PATCH /users/:userId
func (h *UserHandler) UpdateUserProfile(c *gin.Context) {
	userID, err := parseUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateUserProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update user profile", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateUserProfileUC.Execute(c.Request.Context(), req.ToCommand(userID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "User profile updated successfully", result)
}
