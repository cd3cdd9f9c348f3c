package auth

import "mesaayuda/internal/application/auth/usecases"

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (r *LoginRequest) ToCommand() usecases.LoginCommand {
	return usecases.LoginCommand{
		Email:    r.Email,
		Password: r.Password,
	}
}

// LoginResponse deliberately omits the access token. The token travels
// in an HttpOnly cookie only, keeping it out of reach of page scripts.
type LoginResponse struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}
