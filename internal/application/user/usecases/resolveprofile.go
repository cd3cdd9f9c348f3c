package usecases

import (
	"context"

	"mesaayuda/internal/application/user/dto"
	"mesaayuda/internal/domain/profile"
	"mesaayuda/internal/shared/errors"
	"mesaayuda/internal/shared/logger"
)

type ResolveProfileCommand struct {
	UserID string
	Email  string
}

// ResolveProfileUseCase maps an authenticated identity to its stored
// profile, creating one with default role and permissions on first
// sight. This is the only path that persists a profile implicitly.
type ResolveProfileUseCase struct {
	profileRepo     profile.ProfileRepository
	superAdminEmail string
	logger          logger.Interface
}

func NewResolveProfileUseCase(
	profileRepo profile.ProfileRepository,
	superAdminEmail string,
	logger logger.Interface,
) *ResolveProfileUseCase {
	return &ResolveProfileUseCase{
		profileRepo:     profileRepo,
		superAdminEmail: superAdminEmail,
		logger:          logger,
	}
}

func (uc *ResolveProfileUseCase) Execute(
	ctx context.Context,
	cmd ResolveProfileCommand,
) (*dto.UserProfileDTO, error) {
	if cmd.UserID == "" {
		return nil, errors.NewValidationError("user ID is required")
	}

	candidate, err := profile.NewDefaultProfile(cmd.UserID, cmd.Email, uc.superAdminEmail)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	resolved, err := uc.profileRepo.GetOrCreate(ctx, candidate)
	if err != nil {
		uc.logger.Errorw("failed to resolve profile", "error", err, "user_id", cmd.UserID)
		return nil, errors.NewInternalError("failed to resolve profile")
	}

	result := dto.FromEntity(resolved)
	return &result, nil
}
