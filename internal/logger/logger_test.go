package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/JRebertt/Cursos/internal/config"

	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerJSON(t *testing.T) {
	cfg := config.DefaultObservabilityConfig()
	cfg.Environment = config.EnvProduction

	var buf bytes.Buffer
	log := newLogger(cfg, NewLoggerService(cfg), &buf)

	log.Debug().Msg("hidden")
	log.Info().Str("session_id", "abc").Msg("meal created")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "meal created", line["message"])
	assert.Equal(t, "ignite", line["service"])
	assert.Equal(t, "production", line["environment"])
	assert.Equal(t, "abc", line["session_id"])
	assert.Equal(t, "info", line["level"])
}

func TestNewLoggerLevelFromEnvironment(t *testing.T) {
	cfg := config.DefaultObservabilityConfig()
	cfg.Environment = config.EnvTest

	var buf bytes.Buffer
	log := newLogger(cfg, nil, &buf)

	log.Info().Msg("quiet")
	assert.Empty(t, buf.String())

	log.Warn().Msg("loud")
	assert.Contains(t, buf.String(), "loud")
}

func TestLoggerServiceDisabled(t *testing.T) {
	svc := NewLoggerService(config.DefaultObservabilityConfig())
	assert.Nil(t, svc.GetApplication())
	svc.Shutdown()

	var nilSvc *LoggerService
	assert.Nil(t, nilSvc.GetApplication())
}

func TestWithTraceContextNilTransaction(t *testing.T) {
	var buf bytes.Buffer
	base := zerolog.New(&buf)

	traced := WithTraceContext(base, nil)
	traced.Info().Msg("no trace")
	assert.NotContains(t, buf.String(), "trace.id")
}

func TestGetPgxTraceLogLevel(t *testing.T) {
	assert.Equal(t, tracelog.LogLevelDebug, GetPgxTraceLogLevel(zerolog.DebugLevel))
	assert.Equal(t, tracelog.LogLevelInfo, GetPgxTraceLogLevel(zerolog.InfoLevel))
	assert.Equal(t, tracelog.LogLevelWarn, GetPgxTraceLogLevel(zerolog.WarnLevel))
	assert.Equal(t, tracelog.LogLevelError, GetPgxTraceLogLevel(zerolog.ErrorLevel))
	assert.Equal(t, tracelog.LogLevelNone, GetPgxTraceLogLevel(zerolog.Disabled))
}
