// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "authsvc/internal/delivery/context"
	"authsvc/internal/delivery/http/response"
	domainerrors "authsvc/internal/domain/errors"
	"authsvc/internal/errors"
	"authsvc/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AuthHandler holds dependencies for the /auth endpoints.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		logger: logger,
	}
}

// Signup handles account registration. It answers 201 with the public account.
func (h *AuthHandler) Signup(c echo.Context) error {
	input := new(usecase.SignupInput)
	if err := c.Bind(input); err != nil {
		return bindError(c, h.logger, err)
	}

	output, err := h.uc.Signup(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusCreated, output.Account)
}

// Login exchanges credentials for a token.
func (h *AuthHandler) Login(c echo.Context) error {
	input := new(usecase.LoginInput)
	if err := c.Bind(input); err != nil {
		return bindError(c, h.logger, err)
	}

	output, err := h.uc.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, output)
}

// Me returns the account resolved by the auth middleware.
func (h *AuthHandler) Me(c echo.Context) error {
	account, ok := deliverycontext.GetAccount(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	return response.JSON(c, http.StatusOK, account)
}

// bindError turns a body that cannot be decoded into a validation failure.
func bindError(c echo.Context, logger *slog.Logger, err error) error {
	deliverycontext.GetLoggerOrDefault(c.Request().Context(), logger).
		Debug("Failed to bind request body", slog.Any("error", err))

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) && httpErr.Code == http.StatusUnsupportedMediaType {
		return domainerrors.NewValidationError("request body must be application/json")
	}

	return domainerrors.NewValidationError("request body is not valid JSON")
}
