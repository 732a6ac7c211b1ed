package server

import (
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// SetupSPA serves the built frontend from STATIC_DIR. It must be registered
// after the API routes so they take precedence.
func (s *Server) SetupSPA(app *fiber.App) {
	app.Static("/", s.config.StaticDir)
	app.Get("/*", s.SPAFallback)
}

// SPAFallback answers client-side routes with index.html so the frontend router
// can resolve them. API paths and anything that looks like a file stay 404.
func (s *Server) SPAFallback(c *fiber.Ctx) error {
	if !isClientRoute(c.Path()) {
		return fiber.ErrNotFound
	}
	return c.SendFile(filepath.Join(s.config.StaticDir, "index.html"))
}

func isClientRoute(path string) bool {
	if path == "/api" || strings.HasPrefix(path, "/api/") {
		return false
	}
	return !strings.Contains(path, ".")
}
