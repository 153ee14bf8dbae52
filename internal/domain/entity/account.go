// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Account is a registered identity that can log in.
type Account struct {
	ID           uuid.UUID // Generated at signup.
	Name         string    // Display name.
	Identifier   string    // Login identifier (e-mail), unique across all accounts.
	PasswordHash string    // bcrypt hash; the raw password is never stored.
	Role         Role      // Coarse-grained authorization role.
	CreatedAt    time.Time // Timestamp of when the account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to the account.
}

// PublicAccount is the projection of an Account that is safe to return to clients.
type PublicAccount struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Identifier string    `json:"identifier"`
	Role       Role      `json:"role"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Public returns the account without its password hash.
func (a *Account) Public() *PublicAccount {
	if a == nil {
		return nil
	}

	return &PublicAccount{
		ID:         a.ID,
		Name:       a.Name,
		Identifier: a.Identifier,
		Role:       a.Role,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
}

// HasRole reports whether the account holds the given role.
func (p *PublicAccount) HasRole(role Role) bool {
	return p != nil && p.Role == role
}

// NormalizeIdentifier canonicalises a login identifier so lookups and the
// uniqueness constraint are case-insensitive.
func NormalizeIdentifier(identifier string) string {
	return strings.ToLower(strings.TrimSpace(identifier))
}
