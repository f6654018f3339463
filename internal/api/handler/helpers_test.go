package handler

import (
	"errors"

	"github.com/labstack/echo/v4"
)

func asHTTPError(err error, target **echo.HTTPError) bool {
	return errors.As(err, target)
}
