package handler

import (
	"github.com/JRebertt/Cursos/internal/middleware"
	"github.com/JRebertt/Cursos/internal/model"
	"github.com/JRebertt/Cursos/internal/server"
	"github.com/JRebertt/Cursos/internal/service"

	"github.com/labstack/echo/v4"
)

type UserHandler struct {
	Handler
	userService *service.UserService
	sessions    *middleware.SessionMiddleware
}

func NewUserHandler(s *server.Server, userService *service.UserService, sessions *middleware.SessionMiddleware) *UserHandler {
	return &UserHandler{
		Handler:     NewHandler(s),
		userService: userService,
		sessions:    sessions,
	}
}

// CreateUser binds the new user to the caller's session, issuing the
// sessionId cookie first when the request carries none.
func (h *UserHandler) CreateUser(c echo.Context, payload *model.CreateUserPayload) error {
	sessionID := h.sessions.EnsureSession(c)

	_, err := h.userService.CreateUser(c.Request().Context(), sessionID, payload)
	return err
}
