package middleware

import (
	"net/http"
	"strings"

	"tradecredit-backend/internal/domain/profile"
	"tradecredit-backend/internal/usecase/identity"

	"github.com/labstack/echo/v4"
)

// CallerKey is the echo context key for the authenticated profile.
const CallerKey = "caller"

// Auth resolves a bearer token to a profile and stores it in context.
// Usecases never see credentials, only the resolved caller.
func Auth(ids *identity.Usecase, profiles profile.Repository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if !strings.HasPrefix(header, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing_bearer_token"})
			}
			profileID, err := ids.ParseToken(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid_token"})
			}
			p, err := profiles.GetByProfileID(c.Request().Context(), profileID)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unknown_profile"})
			}
			c.Set(CallerKey, p)
			return next(c)
		}
	}
}
