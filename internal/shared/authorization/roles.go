// Package authorization defines user roles used by the auth middleware.
package authorization

// UserRole represents the role of a platform user.
type UserRole string

const (
	RoleStudent UserRole = "student"
	RoleParent  UserRole = "parent"
	RoleAdmin   UserRole = "admin"
)

// IsValid checks if the role is a known role.
func (r UserRole) IsValid() bool {
	switch r {
	case RoleStudent, RoleParent, RoleAdmin:
		return true
	default:
		return false
	}
}

// String returns the string representation of the role.
func (r UserRole) String() string {
	return string(r)
}
