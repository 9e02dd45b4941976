// Package service contains the business logic.
//
// It sits between the handler and repository layers.
// It receives validated data from the handler, performs
// business operations, and calls repository methods to interact
// with the data
package service

import (
	"github.com/JRebertt/Cursos/internal/lib/job"
	"github.com/JRebertt/Cursos/internal/repository"
	"github.com/JRebertt/Cursos/internal/server"
)

type Services struct {
	User        *UserService
	Meal        *MealService
	Transaction *TransactionService
	Job         *job.JobService
}

func NewService(s *server.Server, repos *repository.Repositories) (*Services, error) {
	activity := NewJobActivityRecorder(s.Job)

	return &Services{
		User:        NewUserService(repos.Users, activity),
		Meal:        NewMealService(repos.Users, repos.Meals, activity),
		Transaction: NewTransactionService(repos.Transactions, activity),
		Job:         s.Job,
	}, nil
}
