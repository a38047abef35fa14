package http

import (
	"errors"
	"net/http"
	"strings"

	"tradecredit-backend/internal/adapter/middleware"
	"tradecredit-backend/internal/domain/apperr"
	"tradecredit-backend/internal/domain/profile"

	"github.com/labstack/echo/v4"
)

// CallerKey is where the auth middleware stores the resolved profile.
const CallerKey = middleware.CallerKey

// Caller returns the authenticated profile placed in context by the auth
// middleware, nil when the route is unauthenticated.
func Caller(c echo.Context) *profile.Profile {
	p, _ := c.Get(CallerKey).(*profile.Profile)
	return p
}

// respondError translates the error taxonomy to the wire: permission → 403,
// validation/conflict → 400, not found → 404, anything else → 500.
func respondError(c echo.Context, err error) error {
	var e *apperr.Error
	if errors.As(err, &e) {
		switch e.Kind {
		case apperr.Permission:
			return c.JSON(http.StatusForbidden, ErrorResponse{Error: e.Reason})
		case apperr.Validation, apperr.Conflict:
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: e.Reason})
		case apperr.NotFound:
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: e.Reason})
		}
	}
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal_error"})
}

// ---- test helpers ----

func containsFieldMsg(list []FieldError, field, substr string) bool {
	for _, e := range list {
		if e.Field == field && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}
