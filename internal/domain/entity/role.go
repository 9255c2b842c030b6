// Package entity contains the core business objects of the project.
package entity

// Role represents the permission tier a user holds in the system.
type Role string

const (
	// RoleUser indicates a regular user role.
	RoleUser Role = "user"
	// RoleAdmin indicates an administrator role, required for post creation.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	default:
		return false
	}
}
