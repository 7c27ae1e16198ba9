package view_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flashcode/flashweb/internal/view"
)

const testSessionSecret = "a-very-secret-key-for-testing-!"

func setupTestContext(req *http.Request) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	rec := httptest.NewRecorder()

	store := sessions.NewCookieStore([]byte(testSessionSecret))
	sessionMiddleware := session.Middleware(store)

	// Run a dummy handler through the middleware so the store is on the context.
	var c echo.Context
	handler := func(ctx echo.Context) error { c = ctx; return nil }
	_ = sessionMiddleware(handler)(e.NewContext(req, rec))

	return c, rec
}

func TestEnsureVisitor(t *testing.T) {
	t.Run("mints and persists an id", func(t *testing.T) {
		c, rec := setupTestContext(httptest.NewRequest(http.MethodGet, "/", nil))

		_, ok := view.VisitorID(c)
		assert.False(t, ok)

		id, err := view.EnsureVisitor(c)
		require.NoError(t, err)
		_, err = uuid.Parse(id)
		assert.NoError(t, err)

		again, err := view.EnsureVisitor(c)
		require.NoError(t, err)
		assert.Equal(t, id, again)

		cookies := rec.Result().Cookies()
		require.NotEmpty(t, cookies)
		assert.Equal(t, "flashweb-visitor", cookies[0].Name)
		assert.True(t, cookies[0].HttpOnly)
	})

	t.Run("reads the id back from the cookie", func(t *testing.T) {
		c, rec := setupTestContext(httptest.NewRequest(http.MethodGet, "/", nil))
		id, err := view.EnsureVisitor(c)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		for _, cookie := range rec.Result().Cookies() {
			req.AddCookie(cookie)
		}
		c2, _ := setupTestContext(req)

		got, ok := view.VisitorID(c2)
		require.True(t, ok)
		assert.Equal(t, id, got)
	})

	t.Run("fails without a session store", func(t *testing.T) {
		e := echo.New()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

		_, err := view.EnsureVisitor(c)
		assert.Error(t, err)
	})
}
