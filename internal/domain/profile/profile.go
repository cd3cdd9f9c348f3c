package profile

import (
	"fmt"
	"strings"
	"time"

	vo "mesaayuda/internal/domain/profile/valueobjects"
)

// Profile is the locally stored authorization record for an externally
// authenticated identity. The identity provider owns credentials and
// sessions; this entity only carries role and section permissions.
type Profile struct {
	id          uint
	userID      string
	email       string
	role        vo.Role
	permissions vo.Permissions
	createdAt   time.Time
	updatedAt   time.Time
}

func NewProfile(userID, email string, role vo.Role, permissions vo.Permissions) (*Profile, error) {
	if len(userID) == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	now := time.Now().UTC()

	return &Profile{
		userID:      userID,
		email:       email,
		role:        role,
		permissions: permissions,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// NewDefaultProfile builds the profile assigned to a first-seen
// identity. The designated super-admin email (matched
// case-insensitively) gets the super_admin role with every section;
// everyone else starts as soporte with tickets only.
func NewDefaultProfile(userID, email, superAdminEmail string) (*Profile, error) {
	if superAdminEmail != "" && strings.EqualFold(email, superAdminEmail) {
		return NewProfile(userID, email, vo.RoleSuperAdmin, vo.AllSections())
	}
	return NewProfile(userID, email, vo.RoleSoporte, vo.Permissions{vo.SectionTickets})
}

func ReconstructProfile(
	id uint,
	userID string,
	email string,
	role vo.Role,
	permissions vo.Permissions,
	createdAt, updatedAt time.Time,
) (*Profile, error) {
	if id == 0 {
		return nil, fmt.Errorf("profile ID cannot be zero")
	}
	if len(userID) == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	return &Profile{
		id:          id,
		userID:      userID,
		email:       email,
		role:        role,
		permissions: permissions,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (p *Profile) ID() uint {
	return p.id
}

func (p *Profile) UserID() string {
	return p.userID
}

func (p *Profile) Email() string {
	return p.email
}

func (p *Profile) Role() vo.Role {
	return p.role
}

func (p *Profile) Permissions() vo.Permissions {
	permsCopy := make(vo.Permissions, len(p.permissions))
	copy(permsCopy, p.permissions)
	return permsCopy
}

func (p *Profile) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Profile) UpdatedAt() time.Time {
	return p.updatedAt
}

func (p *Profile) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("profile ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("profile ID cannot be zero")
	}
	p.id = id
	return nil
}

// CanAccess reports whether this profile may view a section. The
// super_admin role always passes, independent of the stored permission
// set; every other role needs the section in its permissions.
func (p *Profile) CanAccess(section vo.Section) bool {
	return CanAccess(p.permissions, p.role, section)
}

// CanAccess is the section-access decision as a pure function, usable
// against merged listings that carry default role and permissions
// without a stored profile.
func CanAccess(permissions vo.Permissions, role vo.Role, section vo.Section) bool {
	if role.IsSuperAdmin() {
		return true
	}
	return permissions.Contains(section)
}

// ChangeRole replaces the role.
func (p *Profile) ChangeRole(role vo.Role) error {
	if !role.IsValid() {
		return fmt.Errorf("invalid role: %s", role)
	}
	p.role = role
	p.updatedAt = time.Now().UTC()
	return nil
}

// ReplacePermissions swaps the whole permission set. Assignment is a
// full replacement, never an incremental add or remove.
func (p *Profile) ReplacePermissions(permissions vo.Permissions) {
	p.permissions = permissions
	p.updatedAt = time.Now().UTC()
}
