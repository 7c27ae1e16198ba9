package middleware

import (
	"log/slog"

	"github.com/labstack/echo/v4"

	"github.com/flashcode/flashweb/internal/view"
)

// VisitorContextKey is the echo context key holding the visitor ID.
const VisitorContextKey = "visitor_id"

// Visitor tags every request with the anonymous visitor ID kept in the session
// cookie. It must run after the session middleware. A broken session never
// blocks the page; the request just goes untagged.
func Visitor(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := view.EnsureVisitor(c)
		if err != nil {
			slog.Warn("Visitor session unavailable", "error", err, "path", c.Path())
			return next(c)
		}
		c.Set(VisitorContextKey, id)
		return next(c)
	}
}
