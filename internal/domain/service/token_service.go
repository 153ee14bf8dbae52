package service

import (
	"time"

	"authsvc/internal/domain/entity"
	"authsvc/internal/errors"

	"github.com/google/uuid"
)

// ErrInvalidToken is the only error Verify returns. Structural, signature and
// expiry failures are deliberately indistinguishable.
var ErrInvalidToken = errors.New("invalid token")

// IdentityClaims is the identity a token asserts.
type IdentityClaims struct {
	AccountID uuid.UUID
	Name      string
	Role      entity.Role
}

// Claims is a verified token's content.
type Claims struct {
	IdentityClaims
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenService defines the interface for issuing and verifying signed identity tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Issue signs the identity with the configured secret and expiry.
	Issue(identity IdentityClaims) (token string, claims *Claims, err error)

	// Verify checks structure, signature and expiry, in that order.
	Verify(token string) (*Claims, error)

	// TokenTTL returns the configured token lifetime.
	TokenTTL() time.Duration
}
