package console

// UserRole is the practitioner's console role
type UserRole = string

const (
	// RoleAssistant is front-desk staff (ie. view)
	RoleAssistant UserRole = "assistant"
	// RoleDoctor is a practitioner (i.e. view, edit, create)
	RoleDoctor UserRole = "doctor"
	// RoleAdmin is a practice administrator (i.e. view, edit, create, delete)
	RoleAdmin UserRole = "admin"
)

// IsValid checks if the role is one of the predefined valid roles
func IsValidRole(r UserRole) bool {
	switch r {
	case RoleAssistant, RoleDoctor, RoleAdmin:
		return true
	default:
		return false
	}
}

// RoleAtLeast checks if the role meets the minimum required level. Role
// checks gate which console pages render; they are UI hints derived from an
// unverified token, never an authorization decision.
func RoleAtLeast(r, minRole UserRole) bool {
	roleHierarchy := map[UserRole]int{
		RoleAssistant: 0,
		RoleDoctor:    1,
		RoleAdmin:     2,
	}

	currentLevel, exists := roleHierarchy[r]
	if !exists {
		return false
	}

	minLevel, exists := roleHierarchy[minRole]
	if !exists {
		return false
	}

	return currentLevel >= minLevel
}

// GetAllRoles returns all predefined roles in hierarchical order
func GetAllRoles() []UserRole {
	return []UserRole{
		RoleAssistant,
		RoleDoctor,
		RoleAdmin,
	}
}

// ParseRole safely parses a string into a UserRole type
func ParseRole(roleStr string) (UserRole, bool) {
	role := UserRole(roleStr)
	return role, IsValidRole(role)
}
