package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/JRebertt/Cursos/internal/config"
	"github.com/JRebertt/Cursos/internal/errs"
	"github.com/JRebertt/Cursos/internal/server"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(env string) *server.Server {
	logger := zerolog.Nop()
	return &server.Server{
		Config: &config.Config{
			Primary: config.Primary{Env: env},
			Server: config.ServerConfig{
				Port:               3333,
				CORSAllowedOrigins: []string{"*"},
				RateLimit:          1,
			},
		},
		Logger: &logger,
	}
}

func newContext(req *http.Request) (echo.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()
	return echo.New().NewContext(req, rec), rec
}

func TestRequireSessionRejectsMissingCookie(t *testing.T) {
	sm := NewSessionMiddleware(newTestServer(config.EnvTest))

	for _, cookie := range []*http.Cookie{nil, {Name: SessionCookieName, Value: ""}} {
		req := httptest.NewRequest(http.MethodGet, "/meals", nil)
		if cookie != nil {
			req.AddCookie(cookie)
		}
		c, _ := newContext(req)

		called := false
		err := sm.RequireSession(func(c echo.Context) error {
			called = true
			return nil
		})(c)

		var httpErr *errs.HTTPError
		require.True(t, errors.As(err, &httpErr))
		assert.Equal(t, http.StatusUnauthorized, httpErr.Status)
		assert.False(t, called, "handler must not run without a session")
	}
}

func TestRequireSessionPassesCookieThrough(t *testing.T) {
	sm := NewSessionMiddleware(newTestServer(config.EnvTest))

	req := httptest.NewRequest(http.MethodGet, "/meals", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "not-even-a-uuid"})
	c, _ := newContext(req)

	var seen string
	err := sm.RequireSession(func(c echo.Context) error {
		seen = GetSessionID(c)
		return nil
	})(c)

	require.NoError(t, err)
	assert.Equal(t, "not-even-a-uuid", seen)
}

func TestEnsureSessionMintsCookie(t *testing.T) {
	sm := NewSessionMiddleware(newTestServer(config.EnvProduction))

	c, rec := newContext(httptest.NewRequest(http.MethodPost, "/users", nil))
	sessionID := sm.EnsureSession(c)
	require.NotEmpty(t, sessionID)
	assert.Equal(t, sessionID, GetSessionID(c))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	cookie := cookies[0]
	assert.Equal(t, SessionCookieName, cookie.Name)
	assert.Equal(t, sessionID, cookie.Value)
	assert.Equal(t, "/", cookie.Path)
	assert.Equal(t, 604800, cookie.MaxAge)
	assert.True(t, cookie.HttpOnly)
	assert.True(t, cookie.Secure)
}

func TestEnsureSessionKeepsExistingCookie(t *testing.T) {
	sm := NewSessionMiddleware(newTestServer(config.EnvDevelopment))

	req := httptest.NewRequest(http.MethodPost, "/users", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "existing"})
	c, rec := newContext(req)

	assert.Equal(t, "existing", sm.EnsureSession(c))
	assert.Empty(t, rec.Header().Values("Set-Cookie"))
}

func TestSessionIsAddedToRequestLogger(t *testing.T) {
	var buf strings.Builder
	logger := zerolog.New(&buf)
	s := newTestServer(config.EnvTest)
	s.Logger = &logger

	e := echo.New()
	e.Use(RequestID(), NewContextEnhancer(s).EnhanceContext())
	e.GET("/meals", func(c echo.Context) error {
		zerolog.Ctx(c.Request().Context()).Info().Msg("inside")
		return c.NoContent(http.StatusOK)
	}, NewSessionMiddleware(s).RequireSession)

	req := httptest.NewRequest(http.MethodGet, "/meals", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "abc"})
	e.ServeHTTP(httptest.NewRecorder(), req)

	var line map[string]any
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(buf.String())), &line))
	assert.Equal(t, "abc", line["session_id"])
	assert.NotEmpty(t, line["request_id"])
}

func TestGlobalErrorHandler(t *testing.T) {
	s := newTestServer(config.EnvTest)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"http error", errs.NewUnauthorizedError("Unauthorized", false), http.StatusUnauthorized, "UNAUTHORIZED"},
		{"route not found", echo.ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"unique violation", &pgconn.PgError{Code: "23505", TableName: "users", ConstraintName: "users_name_key"}, http.StatusBadRequest, "USER_ALREADY_EXISTS"},
		{"unknown", errors.New("connection reset"), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newContext(httptest.NewRequest(http.MethodGet, "/", nil))
			NewGlobalMiddlewares(s).GlobalErrorHandler(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var body errs.HTTPError
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, body.Code)
			assert.Equal(t, tt.wantStatus, body.Status)
			assert.Equal(t, body.Message, body.Text, "error must repeat message")
			assert.NotContains(t, rec.Body.String(), "connection reset")
		})
	}
}

func TestRateLimitAndMetrics(t *testing.T) {
	s := newTestServer(config.EnvTest)
	metrics := NewMetricsMiddleware()

	e := echo.New()
	e.HTTPErrorHandler = NewGlobalMiddlewares(s).GlobalErrorHandler
	e.Use(metrics.Instrument(), NewRateLimitMiddleware(s).Limit())
	e.GET("/ping", func(c echo.Context) error { return c.String(http.StatusOK, "pong") })
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))

	codes := map[int]int{}
	for i := 0; i < 5; i++ {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
		codes[rec.Code]++
	}
	assert.Positive(t, codes[http.StatusOK])
	assert.Positive(t, codes[http.StatusTooManyRequests])

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body := rec.Body.String()
	assert.Contains(t, body, `ignite_http_requests_total{method="GET",route="/ping",status="200"}`)
	assert.Contains(t, body, `ignite_http_requests_total{method="GET",route="/ping",status="429"}`)
}
