package repository

import (
	"context"
	"os"
	"testing"

	"github.com/JRebertt/Cursos/internal/database"
	"github.com/JRebertt/Cursos/internal/model"
	"github.com/JRebertt/Cursos/internal/server"
	"github.com/JRebertt/Cursos/internal/sqlerr"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// RepositorySuite runs against a real PostgreSQL database and is skipped
// unless TEST_DATABASE_URL is set.
type RepositorySuite struct {
	suite.Suite
	ctx   context.Context
	pool  *pgxpool.Pool
	repos *Repositories
}

func TestRepositorySuite(t *testing.T) {
	if os.Getenv("TEST_DATABASE_URL") == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	suite.Run(t, new(RepositorySuite))
}

func (s *RepositorySuite) SetupSuite() {
	s.ctx = context.Background()
	dsn := os.Getenv("TEST_DATABASE_URL")

	logger := zerolog.Nop()
	s.Require().NoError(database.Migrate(s.ctx, &logger, dsn))

	pool, err := pgxpool.New(s.ctx, dsn)
	s.Require().NoError(err)
	s.pool = pool

	s.repos = NewRepositories(&server.Server{DB: &database.Database{Pool: pool}})
}

func (s *RepositorySuite) TearDownSuite() {
	if s.pool != nil {
		s.pool.Close()
	}
}

func (s *RepositorySuite) newUser(sessionID string) *model.User {
	user, err := s.repos.Users.CreateUser(s.ctx, "user-"+uuid.NewString(), sessionID)
	s.Require().NoError(err)
	return user
}

func (s *RepositorySuite) TestUserNameIsUnique() {
	name := "unique-" + uuid.NewString()
	_, err := s.repos.Users.CreateUser(s.ctx, name, uuid.NewString())
	s.Require().NoError(err)

	exists, err := s.repos.Users.ExistsByName(s.ctx, name)
	s.Require().NoError(err)
	s.True(exists)

	_, err = s.repos.Users.CreateUser(s.ctx, name, uuid.NewString())
	s.Require().Error(err)

	httpErr := sqlerr.HandleError(err)
	s.Contains(httpErr.Error(), "Name")
}

func (s *RepositorySuite) TestFindBySessionID() {
	sessionID := uuid.NewString()
	user := s.newUser(sessionID)

	found, err := s.repos.Users.FindBySessionID(s.ctx, sessionID)
	s.Require().NoError(err)
	s.Require().NotNil(found)
	s.Equal(user.ID, found.ID)

	missing, err := s.repos.Users.FindBySessionID(s.ctx, uuid.NewString())
	s.Require().NoError(err)
	s.Nil(missing)
}

func (s *RepositorySuite) TestMealLifecycle() {
	owner := s.newUser(uuid.NewString())
	other := s.newUser(uuid.NewString())

	meal, err := s.repos.Meals.CreateMeal(s.ctx, owner.ID, model.MealInput{Name: "Salad", Description: "Lunch", Diet: true})
	s.Require().NoError(err)

	meals, err := s.repos.Meals.ListMeals(s.ctx, owner.ID)
	s.Require().NoError(err)
	s.Require().Len(meals, 1)
	s.Equal(meal.ID, meals[0].ID)

	otherMeals, err := s.repos.Meals.ListMeals(s.ctx, other.ID)
	s.Require().NoError(err)
	s.Empty(otherMeals)

	updated, err := s.repos.Meals.UpdateMeal(s.ctx, owner.ID, meal.ID, model.MealInput{Name: "Pizza", Description: "Dinner", Diet: false})
	s.Require().NoError(err)
	s.True(updated)

	got, err := s.repos.Meals.GetMeal(s.ctx, owner.ID, meal.ID)
	s.Require().NoError(err)
	s.Require().NotNil(got)
	s.Equal("Pizza", got.Name)
	s.Equal("Dinner", got.Description)
	s.False(got.Diet)

	foreign, err := s.repos.Meals.GetMeal(s.ctx, other.ID, meal.ID)
	s.Require().NoError(err)
	s.Nil(foreign)

	deleted, err := s.repos.Meals.DeleteMeal(s.ctx, owner.ID, meal.ID)
	s.Require().NoError(err)
	s.True(deleted)

	gone, err := s.repos.Meals.GetMeal(s.ctx, owner.ID, meal.ID)
	s.Require().NoError(err)
	s.Nil(gone)
}

func (s *RepositorySuite) TestMealCounts() {
	owner := s.newUser(uuid.NewString())
	for _, diet := range []bool{false, true, false} {
		_, err := s.repos.Meals.CreateMeal(s.ctx, owner.ID, model.MealInput{Name: "m", Description: "d", Diet: diet})
		s.Require().NoError(err)
	}

	total, diet, noDiet, err := s.repos.Meals.CountMeals(s.ctx, owner.ID)
	s.Require().NoError(err)
	s.Equal(int64(3), total)
	s.Equal(int64(1), diet)
	s.Equal(int64(2), noDiet)

	best, err := s.repos.Meals.ListDietMeals(s.ctx, owner.ID)
	s.Require().NoError(err)
	s.Len(best, 1)
	s.True(best[0].Diet)
}

func (s *RepositorySuite) TestTransactionsScopedBySession() {
	sessionID := uuid.NewString()

	credit, err := s.repos.Transactions.CreateTransaction(s.ctx, sessionID, "salary", decimal.NewFromInt(100))
	s.Require().NoError(err)
	_, err = s.repos.Transactions.CreateTransaction(s.ctx, sessionID, "rent", decimal.NewFromInt(-40))
	s.Require().NoError(err)

	list, err := s.repos.Transactions.ListTransactions(s.ctx, sessionID)
	s.Require().NoError(err)
	s.Len(list, 2)

	got, err := s.repos.Transactions.GetTransaction(s.ctx, sessionID, credit.ID)
	s.Require().NoError(err)
	s.Require().NotNil(got)
	s.True(got.Amount.Equal(decimal.NewFromInt(100)))

	foreign, err := s.repos.Transactions.GetTransaction(s.ctx, uuid.NewString(), credit.ID)
	s.Require().NoError(err)
	s.Nil(foreign)

	sum, err := s.repos.Transactions.SumAmount(s.ctx, sessionID)
	s.Require().NoError(err)
	s.True(sum.Equal(decimal.NewFromInt(60)), "sum = %s", sum)

	empty, err := s.repos.Transactions.SumAmount(s.ctx, uuid.NewString())
	s.Require().NoError(err)
	s.True(empty.IsZero())
}

func (s *RepositorySuite) TestActivity() {
	sessionID := uuid.NewString()
	entityID := uuid.New()

	s.Require().NoError(s.repos.Activity.InsertActivity(s.ctx, sessionID, model.ActivityMealCreated, &entityID))
	s.Require().NoError(s.repos.Activity.InsertActivity(s.ctx, sessionID, model.ActivityUserCreated, nil))

	events, err := s.repos.Activity.ListActivity(s.ctx, sessionID)
	s.Require().NoError(err)
	s.Require().Len(events, 2)
	s.Equal(model.ActivityMealCreated, events[0].Kind)
	s.Require().NotNil(events[0].EntityID)
	s.Equal(entityID, *events[0].EntityID)
	s.Nil(events[1].EntityID)
}

func TestNewRepositories(t *testing.T) {
	repos := NewRepositories(&server.Server{})
	require.NotNil(t, repos)
	assert.NotNil(t, repos.Users)
	assert.NotNil(t, repos.Meals)
	assert.NotNil(t, repos.Transactions)
	assert.NotNil(t, repos.Activity)
}
