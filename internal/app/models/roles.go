package models

// Role is a marketplace role a user can hold
type Role string

const (
	RoleStudent Role = "student"
	RoleMentor  Role = "mentor"
)

// IsValid reports whether r is one of the known roles
func (r Role) IsValid() bool {
	return r == RoleStudent || r == RoleMentor
}

// ParseRole converts a raw value into a Role
func ParseRole(value string) (Role, bool) {
	role := Role(value)
	return role, role.IsValid()
}

// roleClaim is the role information a profile row carries. Rows written before
// multi-role support only have the legacy column.
type roleClaim interface {
	roles() []Role
}

// multiRoleClaim is authoritative whenever the roles column is non-null
type multiRoleClaim struct {
	values []string
}

func (c multiRoleClaim) roles() []Role {
	out := make([]Role, 0, len(c.values))
	seen := make(map[Role]struct{}, len(c.values))
	for _, value := range c.values {
		role, ok := ParseRole(value)
		if !ok {
			continue
		}
		if _, dup := seen[role]; dup {
			continue
		}
		seen[role] = struct{}{}
		out = append(out, role)
	}
	return out
}

type legacyRoleClaim struct {
	value *string
}

func (c legacyRoleClaim) roles() []Role {
	if c.value == nil {
		return []Role{}
	}
	if role, ok := ParseRole(*c.value); ok {
		return []Role{role}
	}
	return []Role{}
}

func claimOf(p *Profile) roleClaim {
	if p.Roles != nil {
		return multiRoleClaim{values: *p.Roles}
	}
	return legacyRoleClaim{value: p.Role}
}

// UserRoles returns the normalized role set of a profile. A nil profile has no roles.
func UserRoles(p *Profile) []Role {
	if p == nil {
		return []Role{}
	}
	return claimOf(p).roles()
}

// HasRole reports whether the profile holds role
func HasRole(p *Profile, role Role) bool {
	for _, r := range UserRoles(p) {
		if r == role {
			return true
		}
	}
	return false
}

// PrimaryRole returns the operative role: mentor wins over student.
// The boolean is false when the profile holds no role.
func PrimaryRole(p *Profile) (Role, bool) {
	roles := UserRoles(p)
	for _, candidate := range []Role{RoleMentor, RoleStudent} {
		for _, r := range roles {
			if r == candidate {
				return candidate, true
			}
		}
	}
	return "", false
}

// IsMultiRole reports whether the profile holds more than one role
func IsMultiRole(p *Profile) bool {
	return len(UserRoles(p)) > 1
}
