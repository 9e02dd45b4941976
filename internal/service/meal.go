package service

import (
	"context"
	"fmt"

	"github.com/JRebertt/Cursos/internal/errs"
	"github.com/JRebertt/Cursos/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const userNotFoundCode = "USER_NOT_FOUND"

// MealService scopes every operation to the user owning the caller's session.
// The user is looked up again on every call.
type MealService struct {
	users    UserStore
	meals    MealStore
	activity ActivityRecorder
}

func NewMealService(users UserStore, meals MealStore, activity ActivityRecorder) *MealService {
	return &MealService{users: users, meals: meals, activity: activity}
}

func (s *MealService) owner(ctx context.Context, sessionID string) (*model.User, error) {
	user, err := s.users.FindBySessionID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("resolve session user: %w", err)
	}
	return user, nil
}

// CreateMeal fails with 404 when no user was created under sessionID.
func (s *MealService) CreateMeal(ctx context.Context, sessionID string, input model.MealInput) (*model.Meal, error) {
	user, err := s.owner(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		code := userNotFoundCode
		return nil, errs.NewNotFoundError("No user found for this session", true, &code)
	}

	meal, err := s.meals.CreateMeal(ctx, user.ID, input)
	if err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Info().
		Str("event", "meal_created").
		Str("meal_id", meal.ID.String()).
		Str("user_id", user.ID.String()).
		Bool("diet", meal.Diet).
		Msg("Meal created successfully")

	s.activity.Record(ctx, sessionID, model.ActivityMealCreated, &meal.ID)

	return meal, nil
}

// ListMeals returns an empty list when the session has no user.
func (s *MealService) ListMeals(ctx context.Context, sessionID string) ([]model.Meal, error) {
	user, err := s.owner(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return []model.Meal{}, nil
	}

	meals, err := s.meals.ListMeals(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if meals == nil {
		meals = []model.Meal{}
	}

	return meals, nil
}

// GetMeal returns nil, not an error, when nothing matches.
func (s *MealService) GetMeal(ctx context.Context, sessionID string, mealID uuid.UUID) (*model.Meal, error) {
	user, err := s.owner(ctx, sessionID)
	if err != nil || user == nil {
		return nil, err
	}

	return s.meals.GetMeal(ctx, user.ID, mealID)
}

// UpdateMeal replaces name, description and diet together. A meal that does
// not exist for the session is left alone without error.
func (s *MealService) UpdateMeal(ctx context.Context, sessionID string, mealID uuid.UUID, input model.MealInput) error {
	user, err := s.owner(ctx, sessionID)
	if err != nil || user == nil {
		return err
	}

	updated, err := s.meals.UpdateMeal(ctx, user.ID, mealID, input)
	if err != nil {
		return err
	}
	if !updated {
		zerolog.Ctx(ctx).Debug().Str("meal_id", mealID.String()).Msg("no meal to update")
		return nil
	}

	s.activity.Record(ctx, sessionID, model.ActivityMealUpdated, &mealID)
	return nil
}

// DeleteMeal removes the meal if the session owns it; otherwise it is a no-op.
func (s *MealService) DeleteMeal(ctx context.Context, sessionID string, mealID uuid.UUID) error {
	user, err := s.owner(ctx, sessionID)
	if err != nil || user == nil {
		return err
	}

	deleted, err := s.meals.DeleteMeal(ctx, user.ID, mealID)
	if err != nil {
		return err
	}
	if !deleted {
		zerolog.Ctx(ctx).Debug().Str("meal_id", mealID.String()).Msg("no meal to delete")
		return nil
	}

	s.activity.Record(ctx, sessionID, model.ActivityMealDeleted, &mealID)
	return nil
}

func (s *MealService) GetMealSummary(ctx context.Context, sessionID string) (*model.MealSummary, error) {
	summary := &model.MealSummary{
		DietMeal:   []model.DietMealCount{{}},
		NoDietMeal: []model.NoDietMealCount{{}},
		BestMeal:   []model.Meal{},
	}

	user, err := s.owner(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return summary, nil
	}

	total, diet, noDiet, err := s.meals.CountMeals(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	best, err := s.meals.ListDietMeals(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	summary.Count.TotalMeals = total
	summary.DietMeal[0].TotalDietMeals = diet
	summary.NoDietMeal[0].TotalNoDietMeals = noDiet
	if best != nil {
		summary.BestMeal = best
	}

	return summary, nil
}
