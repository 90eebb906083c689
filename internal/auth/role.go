package auth

// Role is the closed set of user roles a session can carry.
// Role claims come from the persisted user record; anything that fails to
// parse lands on RoleUnknown, which carries no privileges.
type Role string

const (
	RoleStudent Role = "STUDENT"
	RoleParent  Role = "PARENT"
	RoleTeacher Role = "TEACHER"
	RoleUnknown Role = "UNKNOWN"
)

// AllRoles returns the assignable roles in display order.
// RoleUnknown is a degraded state, never assigned directly.
func AllRoles() []Role {
	return []Role{RoleStudent, RoleParent, RoleTeacher}
}

// ParseRole maps a stored role string to a Role.
// Unrecognized or empty values degrade to RoleUnknown.
func ParseRole(s string) Role {
	switch s {
	case string(RoleStudent):
		return RoleStudent
	case string(RoleParent):
		return RoleParent
	case string(RoleTeacher):
		return RoleTeacher
	default:
		return RoleUnknown
	}
}

// DisplayName returns a human-readable label for the role.
func (r Role) DisplayName() string {
	switch r {
	case RoleStudent:
		return "Student"
	case RoleParent:
		return "Parent"
	case RoleTeacher:
		return "Teacher"
	default:
		return "Unknown"
	}
}
