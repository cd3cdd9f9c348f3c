package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "mesaayuda/internal/domain/profile/valueobjects"
)

const superAdminEmail = "admin@example.com"

func TestNewDefaultProfile(t *testing.T) {
	t.Run("designated super admin gets every section", func(t *testing.T) {
		p, err := NewDefaultProfile("user-1", "admin@example.com", superAdminEmail)
		require.NoError(t, err)

		assert.Equal(t, vo.RoleSuperAdmin, p.Role())
		assert.ElementsMatch(t, vo.AllSections(), []vo.Section(p.Permissions()))
	})

	t.Run("email match is case-insensitive", func(t *testing.T) {
		p, err := NewDefaultProfile("user-1", "ADMIN@Example.COM", superAdminEmail)
		require.NoError(t, err)
		assert.Equal(t, vo.RoleSuperAdmin, p.Role())
	})

	t.Run("everyone else starts as soporte with tickets", func(t *testing.T) {
		p, err := NewDefaultProfile("user-2", "agent@example.com", superAdminEmail)
		require.NoError(t, err)

		assert.Equal(t, vo.RoleSoporte, p.Role())
		assert.Equal(t, vo.Permissions{vo.SectionTickets}, p.Permissions())
	})

	t.Run("empty configured email never elevates", func(t *testing.T) {
		p, err := NewDefaultProfile("user-3", "", "")
		require.NoError(t, err)
		assert.Equal(t, vo.RoleSoporte, p.Role())
	})
}

func TestCanAccess(t *testing.T) {
	tests := []struct {
		name        string
		permissions vo.Permissions
		role        vo.Role
		section     vo.Section
		expected    bool
	}{
		{
			name:        "super admin passes with empty permissions",
			permissions: vo.Permissions{},
			role:        vo.RoleSuperAdmin,
			section:     vo.SectionUsuarios,
			expected:    true,
		},
		{
			name:        "soporte without usuarios is denied",
			permissions: vo.Permissions{vo.SectionTickets},
			role:        vo.RoleSoporte,
			section:     vo.SectionUsuarios,
			expected:    false,
		},
		{
			name:        "admin needs the section in its set",
			permissions: vo.Permissions{vo.SectionTickets, vo.SectionUsuarios},
			role:        vo.RoleAdmin,
			section:     vo.SectionUsuarios,
			expected:    true,
		},
		{
			name:        "invitado with nothing",
			permissions: vo.Permissions{},
			role:        vo.RoleInvitado,
			section:     vo.SectionTickets,
			expected:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CanAccess(tt.permissions, tt.role, tt.section))
		})
	}
}

func TestProfile_CanAccess(t *testing.T) {
	p, err := NewProfile("user-1", "agent@example.com", vo.RoleSoporte, vo.Permissions{vo.SectionTickets})
	require.NoError(t, err)

	assert.True(t, p.CanAccess(vo.SectionTickets))
	assert.False(t, p.CanAccess(vo.SectionReportes))
}

func TestProfile_Mutation(t *testing.T) {
	p, err := NewProfile("user-1", "agent@example.com", vo.RoleSoporte, vo.Permissions{vo.SectionTickets})
	require.NoError(t, err)

	require.NoError(t, p.ChangeRole(vo.RoleAdmin))
	assert.Equal(t, vo.RoleAdmin, p.Role())
	assert.Error(t, p.ChangeRole(vo.Role("jefe")))

	p.ReplacePermissions(vo.Permissions{vo.SectionReportes})
	assert.Equal(t, vo.Permissions{vo.SectionReportes}, p.Permissions())
	assert.False(t, p.CanAccess(vo.SectionTickets))
}

func TestNewProfile_Validation(t *testing.T) {
	_, err := NewProfile("", "a@b.c", vo.RoleSoporte, nil)
	assert.Error(t, err)

	_, err = NewProfile("user-1", "a@b.c", vo.Role("jefe"), nil)
	assert.Error(t, err)
}
