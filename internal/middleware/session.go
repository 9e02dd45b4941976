package middleware

import (
	"net/http"
	"time"

	"github.com/JRebertt/Cursos/internal/errs"
	"github.com/JRebertt/Cursos/internal/server"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

const (
	// SessionCookieName is the cookie correlating anonymous requests.
	SessionCookieName = "sessionId"

	// SessionDuration is how long a minted session cookie lives.
	SessionDuration = 7 * 24 * time.Hour

	// SessionIDKey stores the caller's session id in the Echo context.
	SessionIDKey = "session_id"
)

// SessionMiddleware guards routes with the sessionId cookie and mints it
// for the routes that create one.
type SessionMiddleware struct {
	server *server.Server
}

func NewSessionMiddleware(s *server.Server) *SessionMiddleware {
	return &SessionMiddleware{server: s}
}

// RequireSession rejects requests without a sessionId cookie with 401. The
// value is never checked against stored users; it is passed on unchanged.
func (sm *SessionMiddleware) RequireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		sessionID := readSessionCookie(c)
		if sessionID == "" {
			GetLogger(c).Warn().
				Str("function", "RequireSession").
				Msg("request without session cookie")

			return errs.NewUnauthorizedError("Unauthorized", false)
		}

		setSessionID(c, sessionID)
		return next(c)
	}
}

// EnsureSession returns the caller's session id, minting a new one and
// setting the cookie when the request has none. An existing cookie is
// never overwritten.
func (sm *SessionMiddleware) EnsureSession(c echo.Context) string {
	if sessionID := readSessionCookie(c); sessionID != "" {
		setSessionID(c, sessionID)
		return sessionID
	}

	sessionID := uuid.New().String()
	c.SetCookie(&http.Cookie{
		Name:     SessionCookieName,
		Value:    sessionID,
		Path:     "/",
		MaxAge:   int(SessionDuration.Seconds()),
		Expires:  time.Now().Add(SessionDuration),
		HttpOnly: true,
		Secure:   sm.server.Config.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	})

	GetLogger(c).Info().
		Str("function", "EnsureSession").
		Str("session_id", sessionID).
		Msg("issued new session")

	setSessionID(c, sessionID)
	return sessionID
}

// GetSessionID returns the session id stored by RequireSession or EnsureSession.
func GetSessionID(c echo.Context) string {
	if sessionID, ok := c.Get(SessionIDKey).(string); ok {
		return sessionID
	}
	return ""
}

func readSessionCookie(c echo.Context) string {
	cookie, err := c.Cookie(SessionCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

func setSessionID(c echo.Context, sessionID string) {
	c.Set(SessionIDKey, sessionID)
	enrichLogger(c, func(l zerolog.Context) zerolog.Context {
		return l.Str(SessionIDKey, sessionID)
	})
}
