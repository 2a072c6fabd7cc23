package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type AuthChecker interface {
	IsAuthenticated() bool
}

// RequireAuth rejects requests with 401 while the dashboard is logged out.
func RequireAuth(a AuthChecker) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !a.IsAuthenticated() {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "login required", "code": "unauthenticated"})
			}
			return next(c)
		}
	}
}
