package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"mesaayuda/internal/domain/profile"
	vo "mesaayuda/internal/domain/profile/valueobjects"
	"mesaayuda/internal/infrastructure/persistence/models"
)

// UserProfileMapper handles the conversion between Profile domain entities and persistence models.
type UserProfileMapper interface {
	ToModel(p *profile.Profile) (*models.UserProfileModel, error)
	ToDomain(model *models.UserProfileModel) (*profile.Profile, error)
}

type UserProfileMapperImpl struct{}

func NewUserProfileMapper() UserProfileMapper {
	return &UserProfileMapperImpl{}
}

func (m *UserProfileMapperImpl) ToModel(p *profile.Profile) (*models.UserProfileModel, error) {
	permsJSON, err := json.Marshal(p.Permissions().Strings())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal permissions (user_id=%s): %w", p.UserID(), err)
	}

	return &models.UserProfileModel{
		ID:          p.ID(),
		UserID:      p.UserID(),
		Email:       p.Email(),
		Role:        p.Role().String(),
		Permissions: datatypes.JSON(permsJSON),
		CreatedAt:   p.CreatedAt().UnixMilli(),
		UpdatedAt:   p.UpdatedAt().UnixMilli(),
	}, nil
}

func (m *UserProfileMapperImpl) ToDomain(model *models.UserProfileModel) (*profile.Profile, error) {
	role, err := vo.NewRole(model.Role)
	if err != nil {
		return nil, err
	}

	var sections []string
	if len(model.Permissions) > 0 {
		if err := json.Unmarshal(model.Permissions, &sections); err != nil {
			return nil, fmt.Errorf("failed to unmarshal permissions (user_id=%s): %w", model.UserID, err)
		}
	}

	permissions, err := vo.NewPermissions(sections)
	if err != nil {
		return nil, err
	}

	return profile.ReconstructProfile(
		model.ID,
		model.UserID,
		model.Email,
		role,
		permissions,
		convertMillisToTime(model.CreatedAt),
		convertMillisToTime(model.UpdatedAt),
	)
}
