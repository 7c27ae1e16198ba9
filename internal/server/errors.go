package server

import (
	"errors"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"

	"github.com/flashcode/flashweb/internal/handlers"
	"github.com/flashcode/flashweb/internal/middleware"
)

// setupErrorHandling installs the HTTP error handler. Errors that are not
// echo.HTTPErrors are logged with a stack trace and answered with a 500.
func setupErrorHandling(e *echo.Echo) {
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		logger := middleware.FromContext(c.Request().Context())

		code := http.StatusInternalServerError
		message := http.StatusText(code)

		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			if m, ok := he.Message.(string); ok {
				message = m
			} else {
				message = http.StatusText(code)
			}
			if code >= http.StatusInternalServerError {
				logger.Error("Server error", "status", code, "error", err, "path", c.Request().URL.Path)
			} else {
				logger.Warn("Client error", "status", code, "error", err, "path", c.Request().URL.Path)
			}
		} else {
			logger.Error("Internal Server Error (Unhandled)",
				"error", err,
				"path", c.Request().URL.Path,
				"stack_trace", string(debug.Stack()),
			)
		}

		var respErr error
		switch {
		case c.Request().Method == http.MethodHead:
			respErr = c.NoContent(code)
		case handlers.IsHTMX(c):
			respErr = c.String(code, message)
		default:
			respErr = c.JSON(code, handlers.NewErrorResponse(code, message))
		}
		if respErr != nil {
			logger.Error("Failed to write error response", "error", respErr)
		}
	}
}
