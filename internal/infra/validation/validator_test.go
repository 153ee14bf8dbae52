package validation

import (
	"testing"

	domainerrors "authsvc/internal/domain/errors"
	"authsvc/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"identifier" validate:"required,email"`
	Password string `json:"password" validate:"min=8,max=72"`
	Role     string `json:"role,omitempty" validate:"oneof=User Admin"`
	Internal string `json:"-" validate:"required"`
}

func detailsOf(t *testing.T, err error) []string {
	t.Helper()

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	assert.Equal(t, 400, appErr.HTTPCode())

	return appErr.Details()
}

func TestValidator_Valid(t *testing.T) {
	v := New()
	err := v.Validate(&sample{
		Name:     "Ada",
		Email:    "ada@x.com",
		Password: "longenough1",
		Role:     "Admin",
		Internal: "x",
	})
	assert.NoError(t, err)
}

func TestValidator_ReportsEveryField(t *testing.T) {
	v := New()
	err := v.Validate(&sample{Email: "not-an-email", Password: "short", Role: "Root"})

	assert.Equal(t, []string{
		"name is required",
		"identifier must be a valid email address",
		"password must be at least 8 characters",
		"role must be one of: User, Admin",
		"Internal is required",
	}, detailsOf(t, err))
}

func TestValidator_MaxLength(t *testing.T) {
	v := New()
	long := make([]byte, 73)
	for i := range long {
		long[i] = 'a'
	}

	err := v.Validate(&sample{Name: "Ada", Email: "ada@x.com", Password: string(long), Role: "User", Internal: "x"})
	assert.Equal(t, []string{"password must be at most 72 characters"}, detailsOf(t, err))
}

func TestValidator_NilInput(t *testing.T) {
	v := New()
	var s *sample

	assert.Equal(t, []string{"request body is required"}, detailsOf(t, v.Validate(s)))
}
