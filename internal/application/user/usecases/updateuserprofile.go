package usecases

import (
	"context"

	"mesaayuda/internal/application/user/dto"
	"mesaayuda/internal/domain/profile"
	vo "mesaayuda/internal/domain/profile/valueobjects"
	"mesaayuda/internal/shared/errors"
	"mesaayuda/internal/shared/logger"
)

// UpdateUserProfileCommand replaces role and/or permissions wholesale.
// nil means "leave unchanged"; a non-nil permission list overwrites the
// stored set entirely.
type UpdateUserProfileCommand struct {
	UserID      string
	Role        *string
	Permissions *[]string
}

type UpdateUserProfileUseCase struct {
	profileRepo profile.ProfileRepository
	logger      logger.Interface
}

func NewUpdateUserProfileUseCase(
	profileRepo profile.ProfileRepository,
	logger logger.Interface,
) *UpdateUserProfileUseCase {
	return &UpdateUserProfileUseCase{
		profileRepo: profileRepo,
		logger:      logger,
	}
}

func (uc *UpdateUserProfileUseCase) Execute(
	ctx context.Context,
	cmd UpdateUserProfileCommand,
) (*dto.UserProfileDTO, error) {
	if cmd.UserID == "" {
		return nil, errors.NewValidationError("user ID is required")
	}

	// Editing never auto-creates: a missing row means the user has not
	// signed in yet and there is nothing to edit.
	p, err := uc.profileRepo.GetByUserID(ctx, cmd.UserID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to load profile for update", "error", err, "user_id", cmd.UserID)
		return nil, errors.NewInternalError("failed to update profile")
	}

	if cmd.Role != nil {
		role, err := vo.NewRole(*cmd.Role)
		if err != nil {
			return nil, errors.NewValidationError("invalid role", err.Error())
		}
		if err := p.ChangeRole(role); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if cmd.Permissions != nil {
		perms, err := vo.NewPermissions(*cmd.Permissions)
		if err != nil {
			return nil, errors.NewValidationError("invalid permissions", err.Error())
		}
		p.ReplacePermissions(perms)
	}

	if err := uc.profileRepo.Update(ctx, p); err != nil {
		uc.logger.Errorw("failed to update profile", "error", err, "user_id", cmd.UserID)
		return nil, errors.NewInternalError("failed to update profile")
	}

	uc.logger.Infow("profile updated",
		"user_id", p.UserID(),
		"role", p.Role().String())

	result := dto.FromEntity(p)
	return &result, nil
}
