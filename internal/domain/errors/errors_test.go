package errors

import (
	"net/http"
	"testing"

	"authsvc/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_WithDetailsStillMatchesSentinel(t *testing.T) {
	err := NewValidationError("name is required", "role must be one of [User Admin]")

	assert.True(t, errors.Is(err, ErrValidationFailed))
	assert.False(t, errors.Is(err, ErrAccountAlreadyExists))
	assert.Equal(t, []string{"name is required", "role must be one of [User Admin]"}, err.Details())
	assert.Empty(t, ErrValidationFailed.Details(), "sentinel must not be mutated")
}

func TestBaseError_WrapMessageKeepsAppError(t *testing.T) {
	wrapped := ErrInvalidCredentials.WrapMessage("login failed")

	var appErr AppError
	assert.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, http.StatusUnauthorized, appErr.HTTPCode())
	assert.Equal(t, "INVALID_CREDENTIALS", appErr.ErrorCode())
	assert.True(t, errors.Is(wrapped, ErrInvalidCredentials))
}

func TestDatabaseExecuteError_HidesDriverMessage(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewDatabaseExecuteError(cause, "failed to create account")

	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Nil(t, err.Details())
	assert.Equal(t, "internal server error", err.Message())
	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "connection refused")
}

func TestNewErrorResponse(t *testing.T) {
	body := NewErrorResponse(NewValidationError("identifier must be a valid email address"))

	assert.Equal(t, "validation failed", body.Error)
	assert.Equal(t, []string{"identifier must be a valid email address"}, body.Details)

	body = NewErrorResponse(ErrUnauthorized)
	assert.Equal(t, "unauthorized", body.Error)
	assert.Nil(t, body.Details)
}
