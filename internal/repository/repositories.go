package repository

import (
	"github.com/JRebertt/Cursos/internal/server"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	Users        *UserRepository
	Meals        *MealRepository
	Transactions *TransactionRepository
	Activity     *ActivityRepository
}

// NewRepositories constructs the repository container on top of the shared
// pool held by s.DB.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Users:        NewUserRepository(s),
		Meals:        NewMealRepository(s),
		Transactions: NewTransactionRepository(s),
		Activity:     NewActivityRepository(s),
	}
}
