package http

import (
	"net/http"

	"tradecredit-backend/internal/domain/profile"
	"tradecredit-backend/internal/usecase/dashboard"

	"github.com/labstack/echo/v4"
)

type DashboardHandler struct{ uc *dashboard.Usecase }

func NewDashboardHandler(uc *dashboard.Usecase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Stats dispatches on the caller's role: suppliers and retailers see
// different rollups, other roles have no dashboard.
func (h *DashboardHandler) Stats(c echo.Context) error {
	caller := Caller(c)
	switch caller.Role {
	case profile.RoleSupplier:
		out, err := h.uc.SupplierStats(c.Request().Context(), caller)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusOK, out)
	case profile.RoleRetailer:
		out, err := h.uc.RetailerStats(c.Request().Context(), caller)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusOK, out)
	}
	return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid_user_type"})
}

func (h *DashboardHandler) Analytics(c echo.Context) error {
	out, err := h.uc.SupplierAnalytics(c.Request().Context(), Caller(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
