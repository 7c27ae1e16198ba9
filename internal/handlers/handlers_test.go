package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthGet(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), rec)

	require.NoError(t, HealthGet(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}

func TestCustomValidator(t *testing.T) {
	type request struct {
		Offset string `validate:"required,numeric"`
	}
	v := NewValidator()

	assert.NoError(t, v.Validate(&request{Offset: "12.5"}))
	assert.Error(t, v.Validate(&request{Offset: "abc"}))
	assert.Error(t, v.Validate(&request{}))
}

func TestNewErrorResponse(t *testing.T) {
	assert.Equal(t, ErrorResponse{Code: "Gone", Message: "view is not mounted"}, NewErrorResponse(http.StatusGone, "view is not mounted"))
	assert.Equal(t, "Unknown", NewErrorResponse(999, "x").Code)
}

func TestIsHTMX(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/ui/scroll", nil)
	assert.False(t, IsHTMX(e.NewContext(req, httptest.NewRecorder())))

	req.Header.Set("HX-Request", "true")
	assert.True(t, IsHTMX(e.NewContext(req, httptest.NewRecorder())))
}
