package dto

import (
	"time"

	"mesaayuda/internal/domain/profile"
)

// UserProfileDTO is the stored authorization profile of one identity.
type UserProfileDTO struct {
	ID          uint      `json:"id"`
	UserID      string    `json:"user_id"`
	Email       string    `json:"email"`
	Role        string    `json:"role"`
	Permissions []string  `json:"permissions"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromEntity(p *profile.Profile) UserProfileDTO {
	return UserProfileDTO{
		ID:          p.ID(),
		UserID:      p.UserID(),
		Email:       p.Email(),
		Role:        p.Role().String(),
		Permissions: p.Permissions().Strings(),
		CreatedAt:   p.CreatedAt(),
		UpdatedAt:   p.UpdatedAt(),
	}
}

// UserListItemDTO merges an identity-provider account with its stored
// profile. Accounts without a profile row carry the default role and
// permissions and HasProfile false.
type UserListItemDTO struct {
	UserID       string     `json:"user_id"`
	Email        string     `json:"email"`
	Role         string     `json:"role"`
	Permissions  []string   `json:"permissions"`
	HasProfile   bool       `json:"has_profile"`
	CreatedAt    time.Time  `json:"created_at"`
	LastSignInAt *time.Time `json:"last_sign_in_at,omitempty"`
}
