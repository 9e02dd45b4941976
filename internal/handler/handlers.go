package handler

import (
	"github.com/JRebertt/Cursos/internal/middleware"
	"github.com/JRebertt/Cursos/internal/server"
	"github.com/JRebertt/Cursos/internal/service"
)

// Handlers groups every HTTP handler so the router receives a single object.
type Handlers struct {
	Health      *HealthHandler
	OpenAPI     *OpenAPIHandler
	User        *UserHandler
	Meal        *MealHandler
	Transaction *TransactionHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	sessions := middleware.NewSessionMiddleware(s)

	return &Handlers{
		Health:      NewHealthHandler(s),
		OpenAPI:     NewOpenAPIHandler(s),
		User:        NewUserHandler(s, services.User, sessions),
		Meal:        NewMealHandler(s, services.Meal),
		Transaction: NewTransactionHandler(s, services.Transaction, sessions),
	}
}
