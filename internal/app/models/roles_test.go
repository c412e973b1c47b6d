package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func rolesPtr(values ...string) *[]string { return &values }

func TestUserRoles(t *testing.T) {
	t.Run("Should return no roles for nil profile", func(t *testing.T) {
		assert.Empty(t, UserRoles(nil))
	})
	t.Run("Should prefer multi-role list over legacy role", func(t *testing.T) {
		p := &Profile{Role: strPtr("mentor"), Roles: rolesPtr("student")}
		assert.Equal(t, []Role{RoleStudent}, UserRoles(p))
	})
	t.Run("Should treat empty multi-role list as authoritative", func(t *testing.T) {
		p := &Profile{Role: strPtr("mentor"), Roles: rolesPtr()}
		assert.Empty(t, UserRoles(p))
	})
	t.Run("Should filter unknown roles and duplicates", func(t *testing.T) {
		p := &Profile{Roles: rolesPtr("mentor", "admin", "student", "mentor", "")}
		assert.Equal(t, []Role{RoleMentor, RoleStudent}, UserRoles(p))
	})
	t.Run("Should fall back to legacy role", func(t *testing.T) {
		assert.Equal(t, []Role{RoleMentor}, UserRoles(&Profile{Role: strPtr("mentor")}))
	})
	t.Run("Should ignore invalid legacy role", func(t *testing.T) {
		assert.Empty(t, UserRoles(&Profile{Role: strPtr("admin")}))
		assert.Empty(t, UserRoles(&Profile{}))
	})
}

func TestPrimaryRole(t *testing.T) {
	for _, roles := range [][]string{{"mentor", "student"}, {"student", "mentor"}} {
		role, ok := PrimaryRole(&Profile{Roles: rolesPtr(roles...)})
		assert.True(t, ok)
		assert.Equal(t, RoleMentor, role)
	}

	role, ok := PrimaryRole(&Profile{Role: strPtr("student")})
	assert.True(t, ok)
	assert.Equal(t, RoleStudent, role)

	_, ok = PrimaryRole(nil)
	assert.False(t, ok)
}

func TestIsMultiRoleAndHasRole(t *testing.T) {
	both := &Profile{Roles: rolesPtr("student", "mentor", "student")}
	assert.True(t, IsMultiRole(both))
	assert.True(t, HasRole(both, RoleMentor))

	legacy := &Profile{Role: strPtr("student")}
	assert.False(t, IsMultiRole(legacy))
	assert.False(t, HasRole(legacy, RoleMentor))
}

func TestParseRole(t *testing.T) {
	role, ok := ParseRole("mentor")
	assert.True(t, ok)
	assert.Equal(t, RoleMentor, role)

	_, ok = ParseRole("Mentor")
	assert.False(t, ok)
}
