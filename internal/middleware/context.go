package middleware

import (
	"github.com/JRebertt/Cursos/internal/logger"
	"github.com/JRebertt/Cursos/internal/server"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/rs/zerolog"
)

// LoggerKey is used as the key for storing the request-scoped logger.
const LoggerKey = "logger"

// ContextEnhancer builds the request-scoped logger (request_id, method,
// path, ip and trace ids) and stores it in both the Echo context and the
// request's context.Context, where zerolog.Ctx finds it.
type ContextEnhancer struct {
	server *server.Server
}

func NewContextEnhancer(s *server.Server) *ContextEnhancer {
	return &ContextEnhancer{server: s}
}

func (ce *ContextEnhancer) EnhanceContext() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			contextLogger := ce.server.Logger.With().
				Str("request_id", GetRequestID(c)).
				Str("method", c.Request().Method).
				Str("path", c.Path()).
				Str("ip", c.RealIP()).
				Logger()

			if txn := newrelic.FromContext(c.Request().Context()); txn != nil {
				contextLogger = logger.WithTraceContext(contextLogger, txn)
			}

			storeLogger(c, &contextLogger)
			return next(c)
		}
	}
}

func storeLogger(c echo.Context, l *zerolog.Logger) {
	c.Set(LoggerKey, l)

	c.SetRequest(c.Request().WithContext(l.WithContext(c.Request().Context())))
}

// enrichLogger adds fields to the request-scoped logger, if there is one.
func enrichLogger(c echo.Context, with func(zerolog.Context) zerolog.Context) {
	current, ok := c.Get(LoggerKey).(*zerolog.Logger)
	if !ok {
		return
	}

	enriched := with(current.With()).Logger()
	storeLogger(c, &enriched)
}

// GetLogger retrieves the request-scoped logger from Echo context.
// If EnhanceContext didn't run, it returns a no-op logger.
func GetLogger(c echo.Context) *zerolog.Logger {
	if logger, ok := c.Get(LoggerKey).(*zerolog.Logger); ok {
		return logger
	}

	logger := zerolog.Nop()
	return &logger
}
