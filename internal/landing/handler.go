package landing

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/flashcode/flashweb/internal/content"
	"github.com/flashcode/flashweb/internal/domain"
	"github.com/flashcode/flashweb/internal/effects"
	"github.com/flashcode/flashweb/internal/landing/components"
	"github.com/flashcode/flashweb/internal/middleware"
	"github.com/flashcode/flashweb/internal/rendering"
	"github.com/flashcode/flashweb/web/src/templates/pages"
)

// Handler serves the landing page and its HTMX endpoints.
type Handler struct {
	page      content.Page
	views     *ViewStore
	assetBase string
	renderer  rendering.Renderer
}

// NewHandler creates a handler.
func NewHandler(page content.Page, views *ViewStore, renderer rendering.Renderer, assetBase string) *Handler {
	if renderer == nil {
		renderer = rendering.NewUniversalRenderer()
	}
	return &Handler{
		page:      page,
		views:     views,
		assetBase: assetBase,
		renderer:  renderer,
	}
}

// PageGet registers a view and renders the document. The view's controllers
// start when the page first makes contact. When no view can be registered
// the page is rendered without interactivity.
func (h *Handler) PageGet(c echo.Context) error {
	logger := middleware.FromContext(c.Request().Context())

	st := components.StaticState()

	v, err := h.views.Mount()
	switch {
	case err == nil:
		st = v.Snapshot()
		logger.Debug("View registered", "view_id", v.ID(), "views", h.views.Len())
	case errors.Is(err, domain.ErrTooManyViews):
		logger.Warn("View cap reached, serving a static page", "views", h.views.Len())
	default:
		return err
	}

	return h.renderer.RenderPage(c, http.StatusOK, pages.Landing(h.page, st, h.assetBase))
}

// ToggleFAQ toggles one accordion entry and returns the re-rendered #faq-list.
func (h *Handler) ToggleFAQ(c echo.Context) error {
	var req ToggleRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	v, err := h.view(c)
	if err != nil {
		return err
	}
	if _, err := v.ToggleFAQ(c.Request().Context(), req.Index); err != nil {
		return toHTTPError(err)
	}

	return h.renderer.RenderPage(c, http.StatusOK, components.FAQList(h.page.FAQ.Entries, v.Snapshot()))
}

// Scroll records the window offset. The header is returned only when the
// scrolled flag flipped; otherwise the response is 204 and nothing is swapped.
func (h *Handler) Scroll(c echo.Context) error {
	var req ScrollRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	offset, err := req.OffsetValue()
	if err != nil {
		return toHTTPError(err)
	}

	v, err := h.view(c)
	if err != nil {
		return err
	}
	_, changed, err := v.Scroll(c.Request().Context(), offset)
	if err != nil {
		return toHTTPError(err)
	}
	if !changed {
		return c.NoContent(http.StatusNoContent)
	}

	return h.renderer.RenderPage(c, http.StatusOK, components.SiteHeader(h.page, v.Snapshot()))
}

// Reveal latches a reveal block and returns its latch span. A view that is
// gone can no longer latch anything, so the block is shown as visible rather
// than left hidden.
func (h *Handler) Reveal(c echo.Context) error {
	var req RevealRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	ratio, err := req.RatioValue()
	if err != nil {
		return toHTTPError(err)
	}

	id, err := viewID(c)
	if err != nil {
		return err
	}
	v, err := h.views.Get(id)
	if err != nil {
		return h.revealGone(c, id, err)
	}
	visible, err := v.Reveal(c.Request().Context(), req.Section, ratio)
	if errors.Is(err, effects.ErrUnmounted) {
		return h.revealGone(c, id, err)
	}
	if err != nil {
		return toHTTPError(err)
	}

	return h.renderer.RenderPage(c, http.StatusOK, components.RevealLatch(visible))
}

func (h *Handler) revealGone(c echo.Context, id string, err error) error {
	if !errors.Is(err, domain.ErrUnknownView) && !errors.Is(err, effects.ErrUnmounted) {
		return toHTTPError(err)
	}
	middleware.FromContext(c.Request().Context()).Debug("Reveal for a view that is gone", "view_id", id)
	return h.renderer.RenderPage(c, http.StatusOK, components.RevealLatch(true))
}

func viewID(c echo.Context) (string, error) {
	id := c.Request().Header.Get(components.ViewHeader)
	if id == "" {
		return "", echo.NewHTTPError(http.StatusBadRequest, "missing "+components.ViewHeader+" header")
	}
	return id, nil
}

func (h *Handler) view(c echo.Context) (*View, error) {
	id, err := viewID(c)
	if err != nil {
		return nil, err
	}
	v, err := h.views.Get(id)
	if err != nil {
		return nil, toHTTPError(err)
	}
	return v, nil
}

func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return err
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error()).SetInternal(err)
	}
	return nil
}

// toHTTPError maps controller and store errors to HTTP errors.
func toHTTPError(err error) error {
	switch {
	case errors.Is(err, domain.ErrUnknownView), errors.Is(err, effects.ErrUnmounted):
		return echo.NewHTTPError(http.StatusGone, "view is not mounted").SetInternal(err)
	case errors.Is(err, domain.ErrIndexOutOfRange), errors.Is(err, domain.ErrUnknownSection):
		return echo.NewHTTPError(http.StatusNotFound, err.Error()).SetInternal(err)
	case errors.Is(err, domain.ErrInvalidParameter):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error()).SetInternal(err)
	default:
		return err
	}
}
