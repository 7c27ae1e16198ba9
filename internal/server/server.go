package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/flashcode/flashweb/internal/config"
	"github.com/flashcode/flashweb/internal/handlers"
	appmiddleware "github.com/flashcode/flashweb/internal/middleware"
	"github.com/flashcode/flashweb/internal/module"
	"github.com/flashcode/flashweb/internal/registry"
	"github.com/flashcode/flashweb/internal/rendering"
)

// Server holds the HTTP server and the modules mounted on it.
type Server struct {
	E        *echo.Echo
	Cfg      config.Provider
	Registry *registry.Registry

	renderer rendering.Renderer
	modules  []module.Module
	booted   []module.Module
}

// New creates the echo instance with the shared middleware stack. Modules are
// registered and booted by Boot.
func New(cfg config.Provider, renderer rendering.Renderer, modules []module.Module) *Server {
	if renderer == nil {
		renderer = rendering.NewUniversalRenderer()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handlers.NewValidator()
	if r, ok := renderer.(echo.Renderer); ok {
		e.Renderer = r
	}

	e.Use(middleware.RequestID())
	e.Use(middleware.Recover())

	store := sessions.NewCookieStore([]byte(cfg.GetSessionSecret()))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 30,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	e.Use(session.Middleware(store))
	e.Use(appmiddleware.Visitor)
	e.Use(appmiddleware.Logger)

	setupErrorHandling(e)

	return &Server{
		E:        e,
		Cfg:      cfg,
		Registry: registry.New(cfg),
		renderer: renderer,
		modules:  modules,
	}
}

// Boot registers every module, then boots them in order and mounts the
// framework routes.
func (s *Server) Boot(ctx context.Context) error {
	for _, mod := range s.modules {
		slog.Debug("Registering module", "module", mod.Name())
		if err := mod.Register(s.Registry); err != nil {
			return fmt.Errorf("register module %s: %w", mod.Name(), err)
		}
	}

	root := s.E.Group("")
	for _, mod := range s.modules {
		if err := mod.Boot(ctx, root, s.Registry); err != nil {
			return fmt.Errorf("boot module %s: %w", mod.Name(), err)
		}
		s.booted = append(s.booted, mod)
	}

	s.RegisterRoutes()
	return nil
}
