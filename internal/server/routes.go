package server

import (
	"github.com/labstack/echo/v4"

	"github.com/flashcode/flashweb/internal/handlers"
	"github.com/flashcode/flashweb/web"
)

// RegisterRoutes sets up the routes that do not belong to a module.
func (s *Server) RegisterRoutes() {
	s.E.StaticFS("/static", echo.MustSubFS(web.FS, "static"))
	s.E.GET("/health", handlers.HealthGet)
}
