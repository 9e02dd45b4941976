package middleware

import (
	"github.com/JRebertt/Cursos/internal/server"
)

// Middlewares groups every middleware component used by the HTTP server so
// they are built once with their shared dependencies.
type Middlewares struct {
	Global          *GlobalMiddlewares
	Session         *SessionMiddleware
	ContextEnhancer *ContextEnhancer
	Tracing         *TracingMiddleware
	RateLimit       *RateLimitMiddleware
	Metrics         *MetricsMiddleware
}

// NewMiddlewares constructs all middleware components using the application container.
// Tracing degrades into a no-op when New Relic is not configured.
func NewMiddlewares(s *server.Server) *Middlewares {
	return &Middlewares{
		Global:          NewGlobalMiddlewares(s),
		Session:         NewSessionMiddleware(s),
		ContextEnhancer: NewContextEnhancer(s),
		Tracing:         NewTracingMiddleware(s, s.LoggerService.GetApplication()),
		RateLimit:       NewRateLimitMiddleware(s),
		Metrics:         NewMetricsMiddleware(),
	}
}
