package router

import (
	"github.com/JRebertt/Cursos/internal/handler"
	"github.com/JRebertt/Cursos/internal/middleware"

	"github.com/labstack/echo/v4"
)

// registerSystemRoutes registers the endpoints that are not business logic:
// health, metrics and the API docs.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers, m *middleware.Middlewares) {
	r.GET("/status", h.Health.CheckHealth)

	r.GET("/metrics", echo.WrapHandler(m.Metrics.Handler()))

	// openapi.json and openapi.html
	r.Static("/static", handler.StaticDir)

	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)
}
