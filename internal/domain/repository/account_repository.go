// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"authsvc/internal/domain/entity"
	"authsvc/internal/errors"

	"github.com/google/uuid"
)

// ErrAccountNotFound is a domain-specific error returned when an account is not found.
var ErrAccountNotFound = errors.New("account not found")

// AccountRepository defines the standard operations for account persistence.
// The application layer will depend on this interface, not the concrete implementation.
type AccountRepository interface {
	// FindByID retrieves a single account by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindByIdentifier retrieves a single account by its login identifier.
	FindByIdentifier(ctx context.Context, identifier string) (*entity.Account, error)

	// Create persists a new account. It returns domainerrors.ErrAccountAlreadyExists
	// when the identifier violates the store's uniqueness constraint.
	Create(ctx context.Context, account *entity.Account) error
}
