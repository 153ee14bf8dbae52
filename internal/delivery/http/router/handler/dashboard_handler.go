package handler

import (
	"net/http"

	deliverycontext "authsvc/internal/delivery/context"
	"authsvc/internal/delivery/http/response"
	"authsvc/internal/domain/entity"
	domainerrors "authsvc/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// DashboardView is what the dashboards show about the signed-in account.
type DashboardView struct {
	Name string      `json:"name"`
	Role entity.Role `json:"role"`
}

// Dashboard shows the caller's name and role.
func Dashboard(c echo.Context) error {
	account, ok := deliverycontext.GetAccount(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	return response.JSON(c, http.StatusOK, DashboardView{Name: account.Name, Role: account.Role})
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.JSON(c, http.StatusOK, map[string]string{"status": "ok"})
}
