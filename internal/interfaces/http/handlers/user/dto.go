package user

import (
	"strings"

	"github.com/gin-gonic/gin"

	"mesaayuda/internal/application/user/usecases"
	"mesaayuda/internal/shared/errors"
)

// UpdateUserProfileRequest carries the editable profile fields. Both are
// optional; a present permissions list replaces the stored one wholesale.
type UpdateUserProfileRequest struct {
	Role        *string   `json:"role" validate:"omitempty,max=50"`
	Permissions *[]string `json:"permissions" validate:"omitempty,dive,max=50"`
}

func (r *UpdateUserProfileRequest) ToCommand(userID string) usecases.UpdateUserProfileCommand {
	return usecases.UpdateUserProfileCommand{
		UserID:      userID,
		Role:        r.Role,
		Permissions: r.Permissions,
	}
}

func parseUserID(c *gin.Context) (string, error) {
	userID := strings.TrimSpace(c.Param("userId"))
	if userID == "" {
		return "", errors.NewValidationError("invalid user ID")
	}
	return userID, nil
}
