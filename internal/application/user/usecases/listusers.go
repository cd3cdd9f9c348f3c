package usecases

import (
	"context"
	"time"

	"mesaayuda/internal/application/user/dto"
	"mesaayuda/internal/domain/profile"
	vo "mesaayuda/internal/domain/profile/valueobjects"
	"mesaayuda/internal/shared/errors"
	"mesaayuda/internal/shared/logger"
)

// IdentityUser is one account as reported by the identity provider's
// admin listing.
type IdentityUser struct {
	ID           string
	Email        string
	CreatedAt    time.Time
	LastSignInAt *time.Time
}

type IdentityDirectory interface {
	ListUsers(ctx context.Context) ([]IdentityUser, error)
}

// ListUsersUseCase joins the identity provider's account listing with
// the stored profiles. Accounts with no profile row are rendered with
// the default role and permissions but are NOT persisted; a profile
// row only appears once the user's own first request resolves it.
type ListUsersUseCase struct {
	directory   IdentityDirectory
	profileRepo profile.ProfileRepository
	logger      logger.Interface
}

func NewListUsersUseCase(
	directory IdentityDirectory,
	profileRepo profile.ProfileRepository,
	logger logger.Interface,
) *ListUsersUseCase {
	return &ListUsersUseCase{
		directory:   directory,
		profileRepo: profileRepo,
		logger:      logger,
	}
}

func (uc *ListUsersUseCase) Execute(ctx context.Context) ([]dto.UserListItemDTO, error) {
	accounts, err := uc.directory.ListUsers(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list identity accounts", "error", err)
		return nil, errors.NewInternalError("failed to list users")
	}

	profiles, err := uc.profileRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list profiles", "error", err)
		return nil, errors.NewInternalError("failed to list users")
	}

	byUserID := make(map[string]*profile.Profile, len(profiles))
	for _, p := range profiles {
		byUserID[p.UserID()] = p
	}

	items := make([]dto.UserListItemDTO, 0, len(accounts))
	for _, account := range accounts {
		item := dto.UserListItemDTO{
			UserID:       account.ID,
			Email:        account.Email,
			CreatedAt:    account.CreatedAt,
			LastSignInAt: account.LastSignInAt,
		}

		if p, ok := byUserID[account.ID]; ok {
			item.HasProfile = true
			item.Role = p.Role().String()
			item.Permissions = p.Permissions().Strings()
		} else {
			item.Role = vo.RoleSoporte.String()
			item.Permissions = vo.Permissions{vo.SectionTickets}.Strings()
		}

		items = append(items, item)
	}

	return items, nil
}
