package usecases

import (
	"context"

	"mesaayuda/internal/shared/errors"
	"mesaayuda/internal/shared/logger"
)

// IdentitySession is the provider-issued session returned on a
// successful password grant.
type IdentitySession struct {
	AccessToken  string
	TokenType    string
	ExpiresIn    int
	RefreshToken string
	UserID       string
	Email        string
}

// IdentityAuthenticator is the outbound port to the identity
// provider's session endpoints.
type IdentityAuthenticator interface {
	SignInWithPassword(ctx context.Context, email, password string) (*IdentitySession, error)
	SignOut(ctx context.Context, accessToken string) error
}

type LoginCommand struct {
	Email    string
	Password string
}

type LoginResult struct {
	AccessToken string
	ExpiresIn   int
	UserID      string
	Email       string
}

type LoginUseCase struct {
	authenticator IdentityAuthenticator
	logger        logger.Interface
}

func NewLoginUseCase(
	authenticator IdentityAuthenticator,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		authenticator: authenticator,
		logger:        logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	if cmd.Email == "" || cmd.Password == "" {
		return nil, errors.NewValidationError("email and password are required")
	}

	session, err := uc.authenticator.SignInWithPassword(ctx, cmd.Email, cmd.Password)
	if err != nil {
		if appErr := errors.GetAppError(err); appErr != nil {
			return nil, err
		}
		uc.logger.Errorw("identity provider sign-in failed", "error", err)
		return nil, errors.NewInternalError("login failed")
	}

	uc.logger.Infow("user logged in", "user_id", session.UserID)

	return &LoginResult{
		AccessToken: session.AccessToken,
		ExpiresIn:   session.ExpiresIn,
		UserID:      session.UserID,
		Email:       session.Email,
	}, nil
}
