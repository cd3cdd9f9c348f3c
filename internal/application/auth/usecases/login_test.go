package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "mesaayuda/internal/shared/errors"
)

func TestLoginUseCase_Execute_Success(t *testing.T) {
	auth := &mockAuthenticator{
		SignInWithPasswordFunc: func(ctx context.Context, email, password string) (*IdentitySession, error) {
			assert.Equal(t, "agente@mesaayuda.example", email)
			assert.Equal(t, "secreto", password)
			return &IdentitySession{
				AccessToken: "jwt-token",
				TokenType:   "bearer",
				ExpiresIn:   3600,
				UserID:      "uid-1",
				Email:       email,
			}, nil
		},
	}

	useCase := NewLoginUseCase(auth, &mockLogger{})
	result, err := useCase.Execute(context.Background(), LoginCommand{
		Email:    "agente@mesaayuda.example",
		Password: "secreto",
	})

	require.NoError(t, err)
	assert.Equal(t, "jwt-token", result.AccessToken)
	assert.Equal(t, 3600, result.ExpiresIn)
	assert.Equal(t, "uid-1", result.UserID)
}

func TestLoginUseCase_Execute_MissingCredentials(t *testing.T) {
	tests := []struct {
		name    string
		command LoginCommand
	}{
		{"missing email", LoginCommand{Password: "secreto"}},
		{"missing password", LoginCommand{Email: "a@b.c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useCase := NewLoginUseCase(&mockAuthenticator{}, &mockLogger{})
			result, err := useCase.Execute(context.Background(), tt.command)

			assert.Nil(t, result)
			assert.True(t, apperrors.IsValidationError(err))
		})
	}
}

func TestLoginUseCase_Execute_BadCredentialsPassThrough(t *testing.T) {
	auth := &mockAuthenticator{
		SignInWithPasswordFunc: func(ctx context.Context, email, password string) (*IdentitySession, error) {
			return nil, apperrors.NewUnauthorizedError("invalid login credentials")
		},
	}

	useCase := NewLoginUseCase(auth, &mockLogger{})
	result, err := useCase.Execute(context.Background(), LoginCommand{
		Email:    "agente@mesaayuda.example",
		Password: "wrong",
	})

	assert.Nil(t, result)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeUnauthorized, appErr.Type)
}

func TestLoginUseCase_Execute_ProviderDown(t *testing.T) {
	auth := &mockAuthenticator{
		SignInWithPasswordFunc: func(ctx context.Context, email, password string) (*IdentitySession, error) {
			return nil, errors.New("dial tcp: connection refused")
		},
	}

	useCase := NewLoginUseCase(auth, &mockLogger{})
	result, err := useCase.Execute(context.Background(), LoginCommand{
		Email:    "agente@mesaayuda.example",
		Password: "secreto",
	})

	assert.Nil(t, result)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeInternal, appErr.Type)
}

func TestLogoutUseCase_Execute(t *testing.T) {
	t.Run("revokes the session upstream", func(t *testing.T) {
		var revoked string
		auth := &mockAuthenticator{
			SignOutFunc: func(ctx context.Context, accessToken string) error {
				revoked = accessToken
				return nil
			},
		}

		useCase := NewLogoutUseCase(auth, &mockLogger{})
		err := useCase.Execute(context.Background(), LogoutCommand{AccessToken: "jwt-token"})

		require.NoError(t, err)
		assert.Equal(t, "jwt-token", revoked)
	})

	t.Run("upstream failure is swallowed", func(t *testing.T) {
		auth := &mockAuthenticator{
			SignOutFunc: func(ctx context.Context, accessToken string) error {
				return errors.New("upstream 502")
			},
		}

		useCase := NewLogoutUseCase(auth, &mockLogger{})
		assert.NoError(t, useCase.Execute(context.Background(), LogoutCommand{AccessToken: "jwt-token"}))
	})

	t.Run("no token is a no-op", func(t *testing.T) {
		auth := &mockAuthenticator{
			SignOutFunc: func(ctx context.Context, accessToken string) error {
				t.Fatal("sign-out should not be called without a token")
				return nil
			},
		}

		useCase := NewLogoutUseCase(auth, &mockLogger{})
		assert.NoError(t, useCase.Execute(context.Background(), LogoutCommand{}))
	})
}
