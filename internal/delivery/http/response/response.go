// Package response writes the JSON bodies of the HTTP API.
// Successful responses carry the resource itself; failures carry
// {"error": string, "details"?: [string]}.
package response

import (
	"net/http"

	domainerrors "authsvc/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// JSON writes a successful response.
func JSON(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, data)
}

// Error writes the error body. An empty message falls back to the status text.
func Error(c echo.Context, statusCode int, message string, details []string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, domainerrors.ErrorResponse{
		Error:   message,
		Details: details,
	})
}

// AppError writes an application error using its own status, message and details.
func AppError(c echo.Context, err domainerrors.AppError) error {
	return c.JSON(err.HTTPCode(), domainerrors.NewErrorResponse(err))
}

// InternalServerError writes a 500 with no detail.
func InternalServerError(c echo.Context) error {
	return Error(c, http.StatusInternalServerError, "internal server error", nil)
}
