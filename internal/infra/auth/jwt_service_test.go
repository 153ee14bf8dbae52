package auth

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"authsvc/config"
	"authsvc/internal/domain/entity"
	"authsvc/internal/domain/service"
	"authsvc/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret      = "test_access_secret_key_very_long_for_testing"
	otherTestSecret = "another_secret_key_that_is_also_long_enough"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func newTestTokenService(t *testing.T, secret string, clock *fakeClock) service.TokenService {
	t.Helper()

	svc, err := NewTokenService(secret, DefaultTokenTTL, WithClock(clock.Now))
	require.NoError(t, err)

	return svc
}

func adaIdentity() service.IdentityClaims {
	return service.IdentityClaims{
		AccountID: uuid.New(),
		Name:      "Ada",
		Role:      entity.RoleAdmin,
	}
}

func TestJWTService_IssueAndVerify(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	svc := newTestTokenService(t, testSecret, clock)
	identity := adaIdentity()

	token, issued, err := svc.Issue(identity)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.True(t, clock.now.Equal(issued.IssuedAt))
	assert.True(t, clock.now.Add(7*24*time.Hour).Equal(issued.ExpiresAt))
	assert.True(t, issued.ExpiresAt.After(issued.IssuedAt))

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, identity, claims.IdentityClaims)
	assert.True(t, claims.IssuedAt.Equal(issued.IssuedAt))
	assert.True(t, claims.ExpiresAt.Equal(issued.ExpiresAt))
}

func TestJWTService_ExpiryWindow(t *testing.T) {
	issuedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	clock := &fakeClock{now: issuedAt}
	svc := newTestTokenService(t, testSecret, clock)

	token, _, err := svc.Issue(adaIdentity())
	require.NoError(t, err)

	clock.now = issuedAt.Add(time.Hour)
	_, err = svc.Verify(token)
	assert.NoError(t, err, "token must be valid one hour after issuance")

	clock.now = issuedAt.Add(7*24*time.Hour - time.Second)
	_, err = svc.Verify(token)
	assert.NoError(t, err, "token must be valid one second before expiry")

	clock.now = issuedAt.Add(7*24*time.Hour + time.Second)
	_, err = svc.Verify(token)
	assert.True(t, errors.Is(err, service.ErrInvalidToken), "token must be rejected after expiry")
}

func TestJWTService_DifferentSecretRejected(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	issuer := newTestTokenService(t, testSecret, clock)
	verifier := newTestTokenService(t, otherTestSecret, clock)

	for _, role := range []entity.Role{entity.RoleUser, entity.RoleAdmin} {
		token, _, err := issuer.Issue(service.IdentityClaims{AccountID: uuid.New(), Name: "x", Role: role})
		require.NoError(t, err)

		claims, err := verifier.Verify(token)
		assert.Nil(t, claims)
		assert.True(t, errors.Is(err, service.ErrInvalidToken))
	}
}

func TestJWTService_TamperedAndMalformedTokens(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	svc := newTestTokenService(t, testSecret, clock)

	token, _, err := svc.Issue(adaIdentity())
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	signature := []byte(parts[2])
	mid := len(signature) / 2
	if signature[mid] == 'A' {
		signature[mid] = 'B'
	} else {
		signature[mid] = 'A'
	}
	tamperedSignature := parts[0] + "." + parts[1] + "." + string(signature)

	forgedPayload := parts[0] + "." + base64.RawURLEncoding.EncodeToString([]byte(`{"sub":"`+uuid.NewString()+`","name":"Eve","role":"Admin","iat":1,"exp":9999999999}`)) + "." + parts[2]

	cases := map[string]string{
		"empty":              "",
		"not a jwt":          "clearly-not-a-jwt-token-format",
		"truncated":          token[:len(token)-1],
		"tampered signature": tamperedSignature,
		"forged payload":     forgedPayload,
		"two segments":       parts[0] + "." + parts[1],
	}

	for name, candidate := range cases {
		t.Run(name, func(t *testing.T) {
			claims, err := svc.Verify(candidate)
			assert.Nil(t, claims)
			assert.Equal(t, service.ErrInvalidToken, err)
		})
	}
}

func TestJWTService_RejectsOtherAlgorithmsAndBadClaims(t *testing.T) {
	now := time.Now()
	clock := &fakeClock{now: now}
	svc := newTestTokenService(t, testSecret, clock)

	valid := jwtClaims{
		Name: "Ada",
		Role: entity.RoleAdmin.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	}

	sign := func(t *testing.T, method jwt.SigningMethod, key any, claims jwtClaims) string {
		t.Helper()
		signed, err := jwt.NewWithClaims(method, claims).SignedString(key)
		require.NoError(t, err)

		return signed
	}

	t.Run("baseline", func(t *testing.T) {
		_, err := svc.Verify(sign(t, jwt.SigningMethodHS256, []byte(testSecret), valid))
		assert.NoError(t, err)
	})

	t.Run("none algorithm", func(t *testing.T) {
		_, err := svc.Verify(sign(t, jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType, valid))
		assert.Equal(t, service.ErrInvalidToken, err)
	})

	t.Run("hs512", func(t *testing.T) {
		_, err := svc.Verify(sign(t, jwt.SigningMethodHS512, []byte(testSecret), valid))
		assert.Equal(t, service.ErrInvalidToken, err)
	})

	t.Run("unknown role", func(t *testing.T) {
		claims := valid
		claims.Role = "Root"
		_, err := svc.Verify(sign(t, jwt.SigningMethodHS256, []byte(testSecret), claims))
		assert.Equal(t, service.ErrInvalidToken, err)
	})

	t.Run("subject not a uuid", func(t *testing.T) {
		claims := valid
		claims.Subject = "42"
		_, err := svc.Verify(sign(t, jwt.SigningMethodHS256, []byte(testSecret), claims))
		assert.Equal(t, service.ErrInvalidToken, err)
	})

	t.Run("missing expiry", func(t *testing.T) {
		claims := valid
		claims.ExpiresAt = nil
		_, err := svc.Verify(sign(t, jwt.SigningMethodHS256, []byte(testSecret), claims))
		assert.Equal(t, service.ErrInvalidToken, err)
	})

	t.Run("expiry not after issued-at", func(t *testing.T) {
		claims := valid
		claims.IssuedAt = jwt.NewNumericDate(now.Add(-time.Minute))
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(-time.Minute))
		_, err := svc.Verify(sign(t, jwt.SigningMethodHS256, []byte(testSecret), claims))
		assert.Equal(t, service.ErrInvalidToken, err)
	})
}

func TestJWTService_IssueRejectsIncompleteIdentity(t *testing.T) {
	svc := newTestTokenService(t, testSecret, &fakeClock{now: time.Now()})

	_, _, err := svc.Issue(service.IdentityClaims{Name: "Ada", Role: entity.RoleUser})
	assert.Error(t, err)

	_, _, err = svc.Issue(service.IdentityClaims{AccountID: uuid.New(), Name: "Ada", Role: "Root"})
	assert.True(t, errors.Is(err, entity.ErrInvalidRole))
}

func TestNewTokenService_Validation(t *testing.T) {
	_, err := NewTokenService("", time.Hour)
	assert.ErrorContains(t, err, "jwt secret must be provided")

	_, err = NewTokenService("short", time.Hour)
	assert.ErrorContains(t, err, "at least 32 characters")

	_, err = NewTokenService(testSecret, 0)
	assert.ErrorContains(t, err, "token ttl must be positive")
}

func TestNewJWTService_FromConfig(t *testing.T) {
	cfg := &config.Config{}
	cfg.SecretKey.Access = testSecret

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)
	assert.Equal(t, 7*24*time.Hour, svc.TokenTTL())

	cfg.Auth = &config.AuthConfig{TokenTTL: 2 * time.Hour}
	svc, err = NewJWTService(cfg)
	require.NoError(t, err)
	assert.Equal(t, 2*time.Hour, svc.TokenTTL())
}
