package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the body of error responses to non-HTMX clients.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NewErrorResponse builds an ErrorResponse from an HTTP status.
func NewErrorResponse(status int, message string) ErrorResponse {
	code := http.StatusText(status)
	if code == "" {
		code = "Unknown"
	}
	return ErrorResponse{Code: code, Message: message}
}

// IsHTMX reports whether the request was issued by htmx.
func IsHTMX(c echo.Context) bool {
	return c.Request().Header.Get("HX-Request") == "true"
}
