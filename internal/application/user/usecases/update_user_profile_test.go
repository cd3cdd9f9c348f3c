package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mesaayuda/internal/domain/profile"
	vo "mesaayuda/internal/domain/profile/valueobjects"
	apperrors "mesaayuda/internal/shared/errors"
)

func storedProfile(t *testing.T) *profile.Profile {
	t.Helper()
	p, err := profile.ReconstructProfile(
		3, "uid-3", "agente@mesaayuda.example",
		vo.RoleSoporte, vo.Permissions{vo.SectionTickets},
		time.Now().UTC(), time.Now().UTC(),
	)
	require.NoError(t, err)
	return p
}

func TestUpdateUserProfileUseCase_Execute_ReplacesRoleAndPermissions(t *testing.T) {
	role := "admin"
	perms := []string{"tickets", "usuarios"}

	var updated *profile.Profile
	mockRepo := &mockProfileRepository{
		GetByUserIDFunc: func(ctx context.Context, userID string) (*profile.Profile, error) {
			assert.Equal(t, "uid-3", userID)
			return storedProfile(t), nil
		},
		UpdateFunc: func(ctx context.Context, p *profile.Profile) error {
			updated = p
			return nil
		},
	}

	useCase := NewUpdateUserProfileUseCase(mockRepo, &mockLogger{})
	result, err := useCase.Execute(context.Background(), UpdateUserProfileCommand{
		UserID:      "uid-3",
		Role:        &role,
		Permissions: &perms,
	})

	require.NoError(t, err)
	assert.Equal(t, "admin", result.Role)
	assert.Equal(t, []string{"tickets", "usuarios"}, result.Permissions)

	require.NotNil(t, updated)
	assert.Equal(t, vo.RoleAdmin, updated.Role())
}

func TestUpdateUserProfileUseCase_Execute_PermissionsReplacedWholesale(t *testing.T) {
	// An empty list clears every permission rather than being a no-op.
	perms := []string{}

	mockRepo := &mockProfileRepository{
		GetByUserIDFunc: func(ctx context.Context, userID string) (*profile.Profile, error) {
			return storedProfile(t), nil
		},
	}

	useCase := NewUpdateUserProfileUseCase(mockRepo, &mockLogger{})
	result, err := useCase.Execute(context.Background(), UpdateUserProfileCommand{
		UserID:      "uid-3",
		Permissions: &perms,
	})

	require.NoError(t, err)
	assert.Empty(t, result.Permissions)
	assert.Equal(t, "soporte", result.Role)
}

func TestUpdateUserProfileUseCase_Execute_ValidationErrors(t *testing.T) {
	badRole := "root"
	badPerms := []string{"tickets", "facturacion"}

	tests := []struct {
		name    string
		command UpdateUserProfileCommand
	}{
		{"missing user id", UpdateUserProfileCommand{}},
		{"unknown role", UpdateUserProfileCommand{UserID: "uid-3", Role: &badRole}},
		{"unknown section", UpdateUserProfileCommand{UserID: "uid-3", Permissions: &badPerms}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := &mockProfileRepository{
				GetByUserIDFunc: func(ctx context.Context, userID string) (*profile.Profile, error) {
					return storedProfile(t), nil
				},
				UpdateFunc: func(ctx context.Context, p *profile.Profile) error {
					t.Fatal("update should not be called on validation failure")
					return nil
				},
			}

			useCase := NewUpdateUserProfileUseCase(mockRepo, &mockLogger{})
			result, err := useCase.Execute(context.Background(), tt.command)

			assert.Nil(t, result)
			assert.True(t, apperrors.IsValidationError(err))
		})
	}
}

func TestUpdateUserProfileUseCase_Execute_NotFound(t *testing.T) {
	mockRepo := &mockProfileRepository{
		GetByUserIDFunc: func(ctx context.Context, userID string) (*profile.Profile, error) {
			return nil, apperrors.NewNotFoundError("profile not found")
		},
	}

	useCase := NewUpdateUserProfileUseCase(mockRepo, &mockLogger{})
	result, err := useCase.Execute(context.Background(), UpdateUserProfileCommand{UserID: "uid-absent"})

	assert.Nil(t, result)
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestUpdateUserProfileUseCase_Execute_UpdateFailure(t *testing.T) {
	role := "admin"
	mockRepo := &mockProfileRepository{
		GetByUserIDFunc: func(ctx context.Context, userID string) (*profile.Profile, error) {
			return storedProfile(t), nil
		},
		UpdateFunc: func(ctx context.Context, p *profile.Profile) error {
			return errors.New("deadlock")
		},
	}

	useCase := NewUpdateUserProfileUseCase(mockRepo, &mockLogger{})
	result, err := useCase.Execute(context.Background(), UpdateUserProfileCommand{
		UserID: "uid-3",
		Role:   &role,
	})

	assert.Nil(t, result)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeInternal, appErr.Type)
}
