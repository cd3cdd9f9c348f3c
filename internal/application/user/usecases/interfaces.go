package usecases

import (
	"context"

	"mesaayuda/internal/application/user/dto"
)

type ResolveProfileExecutor interface {
	Execute(ctx context.Context, cmd ResolveProfileCommand) (*dto.UserProfileDTO, error)
}

type ListUsersExecutor interface {
	Execute(ctx context.Context) ([]dto.UserListItemDTO, error)
}

type UpdateUserProfileExecutor interface {
	Execute(ctx context.Context, cmd UpdateUserProfileCommand) (*dto.UserProfileDTO, error)
}
