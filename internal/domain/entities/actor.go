package entities

import "strings"

// Role is the staff role of whoever triggers an action.
type Role string

const (
	RoleOwner   Role = "OWNER"
	RoleManager Role = "MANAGER"
	RoleSales   Role = "SALES"
)

func (r Role) String() string { return string(r) }

// ParseRole accepts any casing; unknown roles return false.
func ParseRole(s string) (Role, bool) {
	switch r := Role(strings.ToUpper(strings.TrimSpace(s))); r {
	case RoleOwner, RoleManager, RoleSales:
		return r, true
	}
	return "", false
}

// Actor is the already-authenticated staff member behind a call.
type Actor struct {
	StaffID string
	Role    Role
}
