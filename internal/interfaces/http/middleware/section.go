package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	userDto "mesaayuda/internal/application/user/dto"
	"mesaayuda/internal/application/user/usecases"
	"mesaayuda/internal/domain/profile"
	vo "mesaayuda/internal/domain/profile/valueobjects"
	"mesaayuda/internal/shared/logger"
	"mesaayuda/internal/shared/utils"
)

// ContextKeyProfile holds the resolved *dto.UserProfileDTO.
const ContextKeyProfile = "profile"

type SectionMiddleware struct {
	resolveProfileUC usecases.ResolveProfileExecutor
	logger           logger.Interface
}

func NewSectionMiddleware(resolveProfileUC usecases.ResolveProfileExecutor, logger logger.Interface) *SectionMiddleware {
	return &SectionMiddleware{
		resolveProfileUC: resolveProfileUC,
		logger:           logger,
	}
}

// ResolveProfile maps the authenticated identity to its stored profile,
// provisioning one with defaults on first sight. Must run after
// RequireAuth.
func (m *SectionMiddleware) ResolveProfile() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString(ContextKeyUserID)
		email := c.GetString(ContextKeyEmail)

		resolved, err := m.resolveProfileUC.Execute(c.Request.Context(), usecases.ResolveProfileCommand{
			UserID: userID,
			Email:  email,
		})
		if err != nil {
			m.logger.Errorw("failed to resolve profile", "error", err, "user_id", userID)
			utils.ErrorResponseWithError(c, err)
			c.Abort()
			return
		}

		c.Set(ContextKeyProfile, resolved)

		c.Next()
	}
}

// RequireSection gates a route group behind a section permission. The
// super_admin role passes every gate. Must run after ResolveProfile.
func (m *SectionMiddleware) RequireSection(section vo.Section) gin.HandlerFunc {
	return func(c *gin.Context) {
		resolved := ProfileFromContext(c)
		if resolved == nil {
			utils.ErrorResponse(c, http.StatusUnauthorized, "profile not resolved")
			c.Abort()
			return
		}

		role, err := vo.NewRole(resolved.Role)
		if err != nil {
			m.logger.Errorw("stored profile carries unknown role", "role", resolved.Role)
			utils.ErrorResponse(c, http.StatusForbidden, "access to this section is not allowed")
			c.Abort()
			return
		}

		permissions, err := vo.NewPermissions(resolved.Permissions)
		if err != nil {
			m.logger.Errorw("stored profile carries unknown section", "permissions", resolved.Permissions)
			utils.ErrorResponse(c, http.StatusForbidden, "access to this section is not allowed")
			c.Abort()
			return
		}

		if !profile.CanAccess(permissions, role, section) {
			utils.ErrorResponse(c, http.StatusForbidden, "access to this section is not allowed")
			c.Abort()
			return
		}

		c.Next()
	}
}

// ProfileFromContext returns the resolved profile DTO, or nil when
// ResolveProfile has not run.
func ProfileFromContext(c *gin.Context) *userDto.UserProfileDTO {
	value, exists := c.Get(ContextKeyProfile)
	if !exists {
		return nil
	}
	resolved, ok := value.(*userDto.UserProfileDTO)
	if !ok {
		return nil
	}
	return resolved
}
