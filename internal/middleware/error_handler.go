package middleware

import (
	"net/http"

	"github.com/eventku/eventku-api/internal/dto"
	"github.com/labstack/echo/v4"
)

// ErrorHandler renders every error as {"message": ..., "cause": ...}, the
// shape the web client reads from failed responses.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	msg := err.Error()
	cause := ""

	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		if m, ok := he.Message.(string); ok {
			msg = m
		}
		if he.Internal != nil {
			cause = he.Internal.Error()
		}
	}

	_ = c.JSON(code, dto.ErrorResponse{Message: msg, Cause: cause})
}
