// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"authsvc/config"
	"authsvc/internal/domain/entity"
	"authsvc/internal/domain/service"
	"authsvc/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// DefaultTokenTTL is used when no lifetime is configured.
const DefaultTokenTTL = 7 * 24 * time.Hour

// jwtClaims is the wire form of a token: registered claims plus identity.
type jwtClaims struct {
	Name string `json:"name"`
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret []byte           // Secret key for signing tokens, immutable after construction.
	ttl    time.Duration    // Time-to-live for tokens.
	now    func() time.Time // Wall clock; replaceable in tests.
	parser *jwt.Parser
}

// Option configures a jwtService.
type Option func(*jwtService)

// WithClock overrides the wall clock used for iat/exp and verification.
func WithClock(now func() time.Time) Option {
	return func(s *jwtService) {
		s.now = now
	}
}

// NewJWTService is the constructor used by the application wiring.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	ttl := DefaultTokenTTL
	if cfg.Auth != nil && cfg.Auth.TokenTTL != 0 {
		ttl = cfg.Auth.TokenTTL
	}

	return NewTokenService(cfg.SecretKey.Access, ttl)
}

// NewTokenService builds an HS256 token service for the given secret and lifetime.
func NewTokenService(secret string, ttl time.Duration, opts ...Option) (service.TokenService, error) {
	if secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}
	if len(secret) < config.MinSecretLength {
		return nil, errors.Errorf("jwt secret must be at least %d characters", config.MinSecretLength)
	}
	if ttl <= 0 {
		return nil, errors.New("token ttl must be positive")
	}

	s := &jwtService{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.parser = jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(s.now),
	)

	return s, nil
}

// Issue creates a signed token for the identity, valid for the configured TTL.
func (s *jwtService) Issue(identity service.IdentityClaims) (string, *service.Claims, error) {
	if identity.AccountID == uuid.Nil {
		return "", nil, errors.New("token subject must be set")
	}
	if !identity.Role.IsValid() {
		return "", nil, errors.Wrapf(entity.ErrInvalidRole, "token role %q", identity.Role)
	}

	now := s.now()
	issuedAt := jwt.NewNumericDate(now)
	expiresAt := jwt.NewNumericDate(now.Add(s.ttl))

	claims := &jwtClaims{
		Name: identity.Name,
		Role: identity.Role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.AccountID.String(), // Subject (who the token is for)
			IssuedAt:  issuedAt,                    // Issued At
			ExpiresAt: expiresAt,                   // Expiration Time
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", nil, errors.Wrap(err, "failed to sign token")
	}

	return signed, &service.Claims{
		IdentityClaims: identity,
		IssuedAt:       issuedAt.Time,
		ExpiresAt:      expiresAt.Time,
	}, nil
}

// Verify parses the token and checks, in order, its structure, its HMAC
// signature and its expiry. Every failure yields service.ErrInvalidToken.
func (s *jwtService) Verify(tokenString string) (*service.Claims, error) {
	claims := &jwtClaims{}
	token, err := s.parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, service.ErrInvalidToken
	}

	accountID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, service.ErrInvalidToken
	}

	role := entity.Role(claims.Role)
	if !role.IsValid() {
		return nil, service.ErrInvalidToken
	}

	if claims.IssuedAt == nil || !claims.ExpiresAt.After(claims.IssuedAt.Time) {
		return nil, service.ErrInvalidToken
	}

	return &service.Claims{
		IdentityClaims: service.IdentityClaims{
			AccountID: accountID,
			Name:      claims.Name,
			Role:      role,
		},
		IssuedAt:  claims.IssuedAt.Time,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// TokenTTL returns the configured token lifetime.
func (s *jwtService) TokenTTL() time.Duration {
	return s.ttl
}
