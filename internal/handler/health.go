package handler

import (
	"context"
	"fmt"
	"net/http"
	"slices"
	"time"

	"github.com/JRebertt/Cursos/internal/middleware"
	"github.com/JRebertt/Cursos/internal/server"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// HealthHandler answers GET /status for load balancers and uptime monitors.
type HealthHandler struct {
	Handler
}

func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
	}
}

// dependencyCheck pings one dependency within ctx.
type dependencyCheck func(ctx context.Context) error

// CheckHealth reports the configured dependency checks.
//
// It returns 200 when every check passes and 503 otherwise. Checks are
// skipped entirely when health checks are disabled in the configuration.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()

	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	checks := make(map[string]any)
	response := map[string]any{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"environment": h.server.Config.Primary.Env,
		"checks":      checks,
	}

	isHealthy := true

	for name, check := range h.dependencyChecks() {
		result, err := h.runCheck(c.Request().Context(), &logger, name, check)
		checks[name] = result
		if err != nil {
			isHealthy = false
		}
	}

	if !isHealthy {
		response["status"] = "unhealthy"

		logger.Warn().
			Dur("total_duration", time.Since(start)).
			Msg("health check failed")

		h.recordHealthEvent(map[string]any{
			"check_type":        "overall",
			"operation":         "health_check",
			"error_type":        "overall_unhealthy",
			"total_duration_ms": time.Since(start).Milliseconds(),
		})

		return c.JSON(http.StatusServiceUnavailable, response)
	}

	logger.Info().
		Dur("total_duration", time.Since(start)).
		Msg("health check passed")

	if err := c.JSON(http.StatusOK, response); err != nil {
		logger.Error().Err(err).Msg("failed to write JSON response")

		h.recordHealthEvent(map[string]any{
			"check_type":    "response",
			"operation":     "health_check",
			"error_type":    "json_response_error",
			"error_message": err.Error(),
		})

		return fmt.Errorf("failed to write JSON response: %w", err)
	}

	return nil
}

func (h *HealthHandler) dependencyChecks() map[string]dependencyCheck {
	cfg := h.server.Config.Observability
	if cfg == nil || !cfg.HealthChecks.Enabled {
		return nil
	}

	checks := make(map[string]dependencyCheck)

	if slices.Contains(cfg.HealthChecks.Checks, "database") && h.server.DB != nil {
		checks["database"] = func(ctx context.Context) error {
			return h.server.DB.Pool.Ping(ctx)
		}
	}

	if slices.Contains(cfg.HealthChecks.Checks, "redis") && h.server.Redis != nil {
		checks["redis"] = func(ctx context.Context) error {
			return h.server.Redis.Ping(ctx).Err()
		}
	}

	return checks
}

func (h *HealthHandler) runCheck(parent context.Context, logger *zerolog.Logger, name string, check dependencyCheck) (map[string]any, error) {
	timeout := 5 * time.Second
	if cfg := h.server.Config.Observability; cfg != nil && cfg.HealthChecks.Timeout > 0 {
		timeout = cfg.HealthChecks.Timeout
	}

	ctx, cancel := context.WithTimeout(parent, timeout)
	defer cancel()

	checkStart := time.Now()
	err := check(ctx)
	elapsed := time.Since(checkStart)

	if err != nil {
		logger.Error().
			Err(err).
			Str("check", name).
			Dur("response_time", elapsed).
			Msg("dependency health check failed")

		h.recordHealthEvent(map[string]any{
			"check_type":       name,
			"operation":        "health_check",
			"error_type":       name + "_unhealthy",
			"response_time_ms": elapsed.Milliseconds(),
			"error_message":    err.Error(),
		})

		return map[string]any{
			"status":        "unhealthy",
			"response_time": elapsed.String(),
			"error":         err.Error(),
		}, err
	}

	logger.Debug().
		Str("check", name).
		Dur("response_time", elapsed).
		Msg("dependency health check passed")

	return map[string]any{
		"status":        "healthy",
		"response_time": elapsed.String(),
	}, nil
}

func (h *HealthHandler) recordHealthEvent(attrs map[string]any) {
	if app := h.server.LoggerService.GetApplication(); app != nil {
		app.RecordCustomEvent("HealthCheckError", attrs)
	}
}
