// Package identity resolves portal roles and designer rank tiers.
package identity

// Role is a portal role stored in the user_roles table. A user may hold
// several; resolution always picks the highest privilege.
type Role string

const (
	RoleDesigner   Role = "designer"
	RoleAdmin      Role = "admin"
	RoleSuperadmin Role = "superadmin"
)

var rolePrivilege = map[Role]int{
	RoleDesigner:   1,
	RoleAdmin:      2,
	RoleSuperadmin: 3,
}

// ValidRole reports whether s names a known role.
func ValidRole(s string) bool {
	_, ok := rolePrivilege[Role(s)]
	return ok
}

// Resolve picks the highest-privilege role out of the rows stored for a
// user. Unknown role strings are ignored. No usable rows yields ("", false):
// an authenticated user without a role row has no portal access.
func Resolve(roles []string) (Role, bool) {
	best := 0
	var resolved Role
	for _, r := range roles {
		if p, ok := rolePrivilege[Role(r)]; ok && p > best {
			best = p
			resolved = Role(r)
		}
	}
	return resolved, best > 0
}
