package view

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

const (
	visitorSessionName = "flashweb-visitor"
	visitorKey         = "id"
	visitorMaxAge      = 30 * 24 * 60 * 60
)

// EnsureVisitor returns the anonymous visitor ID stored in the session cookie,
// minting and saving a new one on the first visit.
func EnsureVisitor(c echo.Context) (string, error) {
	sess, err := session.Get(visitorSessionName, c)
	if sess == nil {
		return "", fmt.Errorf("load visitor session: %w", err)
	}

	// An undecodable cookie yields a fresh session, which is then overwritten.
	if id, ok := sess.Values[visitorKey].(string); ok && id != "" {
		return id, nil
	}

	id := uuid.NewString()
	sess.Values[visitorKey] = id
	sess.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   visitorMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		return "", fmt.Errorf("save visitor session: %w", err)
	}
	return id, nil
}

// VisitorID returns the visitor ID already present in the session, if any.
func VisitorID(c echo.Context) (string, bool) {
	sess, _ := session.Get(visitorSessionName, c)
	if sess == nil {
		return "", false
	}
	id, ok := sess.Values[visitorKey].(string)
	return id, ok && id != ""
}
