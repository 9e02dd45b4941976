package service

import (
	"context"

	"github.com/JRebertt/Cursos/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UserStore is the persistence the user and meal services need for users.
type UserStore interface {
	ExistsByName(ctx context.Context, name string) (bool, error)
	CreateUser(ctx context.Context, name, sessionID string) (*model.User, error)
	FindBySessionID(ctx context.Context, sessionID string) (*model.User, error)
}

type MealStore interface {
	CreateMeal(ctx context.Context, userID uuid.UUID, input model.MealInput) (*model.Meal, error)
	ListMeals(ctx context.Context, userID uuid.UUID) ([]model.Meal, error)
	GetMeal(ctx context.Context, userID, mealID uuid.UUID) (*model.Meal, error)
	UpdateMeal(ctx context.Context, userID, mealID uuid.UUID, input model.MealInput) (bool, error)
	DeleteMeal(ctx context.Context, userID, mealID uuid.UUID) (bool, error)
	CountMeals(ctx context.Context, userID uuid.UUID) (total, diet, noDiet int64, err error)
	ListDietMeals(ctx context.Context, userID uuid.UUID) ([]model.Meal, error)
}

type TransactionStore interface {
	CreateTransaction(ctx context.Context, sessionID, title string, amount decimal.Decimal) (*model.Transaction, error)
	ListTransactions(ctx context.Context, sessionID string) ([]model.Transaction, error)
	GetTransaction(ctx context.Context, sessionID string, id uuid.UUID) (*model.Transaction, error)
	SumAmount(ctx context.Context, sessionID string) (decimal.Decimal, error)
}
