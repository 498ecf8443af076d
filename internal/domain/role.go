package domain

// Role enumerates the account types known to the platform. The set is
// closed: every switch over Role must carry a default branch that treats an
// unknown value as an integrity error, never as a silent deny.
type Role string

const (
	RoleStudent     Role = "STUDENT"
	RoleInstructor  Role = "INSTRUCTOR"
	RoleAdmin       Role = "ADMIN"
	RoleDataAnalyst Role = "DATA_ANALYST"
)

// Roles lists all valid roles in declaration order.
func Roles() []Role {
	return []Role{RoleStudent, RoleInstructor, RoleAdmin, RoleDataAnalyst}
}

// ParseRole converts a raw string into a Role.
func ParseRole(raw string) (Role, bool) {
	switch Role(raw) {
	case RoleStudent, RoleInstructor, RoleAdmin, RoleDataAnalyst:
		return Role(raw), true
	default:
		return "", false
	}
}

// Valid reports whether the role belongs to the known enumeration.
func (r Role) Valid() bool {
	_, ok := ParseRole(string(r))
	return ok
}
