package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/labstack/echo/v4"
)

// AdminKey guards admin-only routes with a static API key supplied in
// the X-Admin-Key header. The key is injected from configuration at
// startup; an empty configured key disables the routes entirely.
func AdminKey(key string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if key == "" {
				return echo.NewHTTPError(http.StatusForbidden, "admin access disabled")
			}
			supplied := c.Request().Header.Get("X-Admin-Key")
			if subtle.ConstantTimeCompare([]byte(supplied), []byte(key)) != 1 {
				return echo.NewHTTPError(http.StatusForbidden, "forbidden")
			}
			return next(c)
		}
	}
}
