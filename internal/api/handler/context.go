package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxStudentID extracts the student identity injected by the Auth
// middleware. The signup subject always comes from here, never from
// the request body, so a caller cannot register a third party.
func ctxStudentID(c echo.Context) (string, error) {
	id, _ := c.Get("student_id").(string)
	if id == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return id, nil
}
