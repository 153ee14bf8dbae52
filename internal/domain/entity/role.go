// Package entity contains the core business objects of the project.
package entity

import "authsvc/internal/errors"

// Role represents the type of role an account can have in the system.
type Role string

const (
	// RoleUser indicates a regular account.
	RoleUser Role = "User"
	// RoleAdmin indicates an administrative account.
	RoleAdmin Role = "Admin"
)

// ErrInvalidRole is returned by ParseRole for values outside the enumeration.
var ErrInvalidRole = errors.New("invalid role")

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

// ParseRole converts untrusted input into a Role. Matching is exact.
func ParseRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", errors.Wrapf(ErrInvalidRole, "%q", s)
	}

	return role, nil
}
