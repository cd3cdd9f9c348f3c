package usecases

import (
	"context"

	"mesaayuda/internal/shared/logger"
)

type LogoutCommand struct {
	AccessToken string
}

// LogoutUseCase revokes the session at the identity provider. Failures
// are logged but not surfaced: the cookie is cleared regardless, and a
// dead upstream must not wedge clients into a session they cannot end.
type LogoutUseCase struct {
	authenticator IdentityAuthenticator
	logger        logger.Interface
}

func NewLogoutUseCase(
	authenticator IdentityAuthenticator,
	logger logger.Interface,
) *LogoutUseCase {
	return &LogoutUseCase{
		authenticator: authenticator,
		logger:        logger,
	}
}

func (uc *LogoutUseCase) Execute(ctx context.Context, cmd LogoutCommand) error {
	if cmd.AccessToken == "" {
		return nil
	}

	if err := uc.authenticator.SignOut(ctx, cmd.AccessToken); err != nil {
		uc.logger.Warnw("identity provider sign-out failed", "error", err)
	}

	return nil
}
