// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"authsvc/internal/domain/entity"
)

// --- Input DTOs ---

// SignupInput defines the data required to register a new account.
type SignupInput struct {
	Name       string `json:"name" validate:"required,max=100"`
	Identifier string `json:"identifier" validate:"required,email,max=255"`
	Password   string `json:"password" validate:"min=8,max=72"`
	Role       string `json:"role" validate:"required,oneof=User Admin"`
}

// LoginInput defines the credentials submitted to log in.
type LoginInput struct {
	Identifier string `json:"identifier" validate:"required,email"`
	Password   string `json:"password" validate:"required"`
}

// --- Output DTOs ---

// SignupOutput returns the newly created account's public projection.
type SignupOutput struct {
	Account *entity.PublicAccount
}

// LoginOutput returns the signed token and the account it was issued for.
type LoginOutput struct {
	Token     string                `json:"token"`
	ExpiresAt time.Time             `json:"expiresAt"`
	Account   *entity.PublicAccount `json:"account"`
}

// AuthUsecase defines the account-facing authentication operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// Signup validates the input and creates an account. No token is issued.
	Signup(ctx context.Context, input *SignupInput) (*SignupOutput, error)

	// Login checks credentials and issues a token. An unknown identifier and a
	// wrong password fail with the same domainerrors.ErrInvalidCredentials.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// Authenticate verifies a bearer token and returns the current state of
	// the account it names.
	Authenticate(ctx context.Context, token string) (*entity.PublicAccount, error)
}
