// Package servicetest provides in-memory implementations of the service
// stores for tests that exercise the HTTP stack without PostgreSQL.
package servicetest

import (
	"context"
	"sync"
	"time"

	"github.com/JRebertt/Cursos/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
)

// Store keeps users, meals and transactions in memory. It mirrors the
// PostgreSQL constraints the services rely on: unique user names and
// session scoping.
type Store struct {
	mu           sync.Mutex
	users        []model.User
	meals        []model.Meal
	transactions []model.Transaction
}

func NewStore() *Store {
	return &Store{}
}

func newBase() model.Base {
	return model.Base{ID: uuid.New(), CreatedAt: time.Now().UTC()}
}

// ------------------------------------------------------------ users

func (s *Store) ExistsByName(_ context.Context, name string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) CreateUser(ctx context.Context, name, sessionID string) (*model.User, error) {
	if exists, _ := s.ExistsByName(ctx, name); exists {
		return nil, &pgconn.PgError{
			Code:           "23505",
			Severity:       "ERROR",
			Message:        "duplicate key value violates unique constraint \"users_name_key\"",
			TableName:      "users",
			ConstraintName: "users_name_key",
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sid := sessionID
	user := model.User{Base: newBase(), Name: name, SessionID: &sid}
	s.users = append(s.users, user)
	return &user, nil
}

func (s *Store) FindBySessionID(_ context.Context, sessionID string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.SessionID != nil && *u.SessionID == sessionID {
			user := u
			return &user, nil
		}
	}
	return nil, nil
}

// UserCount reports how many users are stored.
func (s *Store) UserCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.users)
}

// ------------------------------------------------------------ meals

func (s *Store) CreateMeal(_ context.Context, userID uuid.UUID, input model.MealInput) (*model.Meal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	meal := model.Meal{
		Base:        newBase(),
		UserID:      userID,
		Name:        input.Name,
		Description: input.Description,
		Diet:        input.Diet,
	}
	s.meals = append(s.meals, meal)
	return &meal, nil
}

func (s *Store) ListMeals(_ context.Context, userID uuid.UUID) ([]model.Meal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var meals []model.Meal
	for _, m := range s.meals {
		if m.UserID == userID {
			meals = append(meals, m)
		}
	}
	return meals, nil
}

func (s *Store) GetMeal(_ context.Context, userID, mealID uuid.UUID) (*model.Meal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, m := range s.meals {
		if m.ID == mealID && m.UserID == userID {
			meal := m
			return &meal, nil
		}
	}
	return nil, nil
}

func (s *Store) UpdateMeal(_ context.Context, userID, mealID uuid.UUID, input model.MealInput) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, m := range s.meals {
		if m.ID == mealID && m.UserID == userID {
			s.meals[i].Name = input.Name
			s.meals[i].Description = input.Description
			s.meals[i].Diet = input.Diet
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) DeleteMeal(_ context.Context, userID, mealID uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, m := range s.meals {
		if m.ID == mealID && m.UserID == userID {
			s.meals = append(s.meals[:i], s.meals[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) CountMeals(_ context.Context, userID uuid.UUID) (total, diet, noDiet int64, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, m := range s.meals {
		if m.UserID != userID {
			continue
		}
		total++
		if m.Diet {
			diet++
		} else {
			noDiet++
		}
	}
	return total, diet, noDiet, nil
}

func (s *Store) ListDietMeals(_ context.Context, userID uuid.UUID) ([]model.Meal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var meals []model.Meal
	for i := len(s.meals) - 1; i >= 0; i-- {
		if m := s.meals[i]; m.UserID == userID && m.Diet {
			meals = append(meals, m)
		}
	}
	return meals, nil
}

// ------------------------------------------------------------ transactions

func (s *Store) CreateTransaction(_ context.Context, sessionID, title string, amount decimal.Decimal) (*model.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sid := sessionID
	transaction := model.Transaction{Base: newBase(), Title: title, Amount: amount, SessionID: &sid}
	s.transactions = append(s.transactions, transaction)
	return &transaction, nil
}

func (s *Store) ListTransactions(_ context.Context, sessionID string) ([]model.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var transactions []model.Transaction
	for _, t := range s.transactions {
		if t.SessionID != nil && *t.SessionID == sessionID {
			transactions = append(transactions, t)
		}
	}
	return transactions, nil
}

func (s *Store) GetTransaction(_ context.Context, sessionID string, id uuid.UUID) (*model.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range s.transactions {
		if t.ID == id && t.SessionID != nil && *t.SessionID == sessionID {
			transaction := t
			return &transaction, nil
		}
	}
	return nil, nil
}

func (s *Store) SumAmount(_ context.Context, sessionID string) (decimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sum := decimal.Zero
	for _, t := range s.transactions {
		if t.SessionID != nil && *t.SessionID == sessionID {
			sum = sum.Add(t.Amount)
		}
	}
	return sum, nil
}

// ------------------------------------------------------------ activity

// Activity is one call to Recorder.Record.
type Activity struct {
	SessionID string
	Kind      model.ActivityKind
	EntityID  *uuid.UUID
}

// Recorder captures recorded activity instead of enqueueing jobs.
type Recorder struct {
	mu     sync.Mutex
	events []Activity
}

func (r *Recorder) Record(_ context.Context, sessionID string, kind model.ActivityKind, entityID *uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, Activity{SessionID: sessionID, Kind: kind, EntityID: entityID})
}

// Events returns a copy of everything recorded so far.
func (r *Recorder) Events() []Activity {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Activity(nil), r.events...)
}
