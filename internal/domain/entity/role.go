package entity

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleViewer can browse and record laboratory data. It is the default role.
	RoleViewer Role = "viewer"
	// RoleAdmin manages the laboratory account.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleViewer, RoleAdmin:
		return true
	default:
		return false
	}
}

// RoleOrDefault parses s and falls back to RoleViewer for empty or unknown values.
func RoleOrDefault(s string) Role {
	role := Role(s)
	if !role.IsValid() {
		return RoleViewer
	}

	return role
}
