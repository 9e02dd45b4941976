package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/JRebertt/Cursos/internal/model"
	"github.com/JRebertt/Cursos/internal/server"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type MealRepository struct {
	server *server.Server
}

func NewMealRepository(s *server.Server) *MealRepository {
	return &MealRepository{server: s}
}

func (r *MealRepository) CreateMeal(ctx context.Context, userID uuid.UUID, input model.MealInput) (*model.Meal, error) {
	stmt := `
		INSERT INTO meals (user_id, name, description, diet)
		VALUES (@user_id, @name, @description, @diet)
		RETURNING *
	`

	rows, err := r.server.DB.Pool.Query(ctx, stmt, pgx.NamedArgs{
		"user_id":     userID,
		"name":        input.Name,
		"description": input.Description,
		"diet":        input.Diet,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to execute create meal query for user_id=%s: %w", userID, err)
	}

	meal, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Meal])
	if err != nil {
		return nil, fmt.Errorf("failed to collect row from table:meals for user_id=%s: %w", userID, err)
	}

	return &meal, nil
}

func (r *MealRepository) ListMeals(ctx context.Context, userID uuid.UUID) ([]model.Meal, error) {
	stmt := `
		SELECT *
		FROM meals
		WHERE user_id = @user_id
		ORDER BY created_at ASC
	`

	rows, err := r.server.DB.Pool.Query(ctx, stmt, pgx.NamedArgs{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("failed to execute list meals query for user_id=%s: %w", userID, err)
	}

	meals, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Meal])
	if err != nil {
		return nil, fmt.Errorf("failed to collect rows from table:meals for user_id=%s: %w", userID, err)
	}

	return meals, nil
}

// GetMeal returns nil when the meal does not exist or belongs to another user.
func (r *MealRepository) GetMeal(ctx context.Context, userID, mealID uuid.UUID) (*model.Meal, error) {
	stmt := `
		SELECT *
		FROM meals
		WHERE id = @id AND user_id = @user_id
	`

	rows, err := r.server.DB.Pool.Query(ctx, stmt, pgx.NamedArgs{
		"id":      mealID,
		"user_id": userID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to execute get meal query for id=%s: %w", mealID, err)
	}

	meal, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Meal])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to collect row from table:meals for id=%s: %w", mealID, err)
	}

	return &meal, nil
}

// UpdateMeal replaces name, description and diet in a single statement and
// reports whether a row matched.
func (r *MealRepository) UpdateMeal(ctx context.Context, userID, mealID uuid.UUID, input model.MealInput) (bool, error) {
	stmt := `
		UPDATE meals
		SET name = @name, description = @description, diet = @diet
		WHERE id = @id AND user_id = @user_id
	`

	tag, err := r.server.DB.Pool.Exec(ctx, stmt, pgx.NamedArgs{
		"id":          mealID,
		"user_id":     userID,
		"name":        input.Name,
		"description": input.Description,
		"diet":        input.Diet,
	})
	if err != nil {
		return false, fmt.Errorf("failed to update meal id=%s: %w", mealID, err)
	}

	return tag.RowsAffected() > 0, nil
}

func (r *MealRepository) DeleteMeal(ctx context.Context, userID, mealID uuid.UUID) (bool, error) {
	stmt := `DELETE FROM meals WHERE id = @id AND user_id = @user_id`

	tag, err := r.server.DB.Pool.Exec(ctx, stmt, pgx.NamedArgs{
		"id":      mealID,
		"user_id": userID,
	})
	if err != nil {
		return false, fmt.Errorf("failed to delete meal id=%s: %w", mealID, err)
	}

	return tag.RowsAffected() > 0, nil
}

// CountMeals returns the total, diet and off-diet meal counts for a user.
func (r *MealRepository) CountMeals(ctx context.Context, userID uuid.UUID) (total, diet, noDiet int64, err error) {
	stmt := `
		SELECT
			COUNT(id),
			COUNT(id) FILTER (WHERE diet),
			COUNT(id) FILTER (WHERE NOT diet)
		FROM meals
		WHERE user_id = @user_id
	`

	err = r.server.DB.Pool.QueryRow(ctx, stmt, pgx.NamedArgs{"user_id": userID}).Scan(&total, &diet, &noDiet)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("failed to count meals for user_id=%s: %w", userID, err)
	}

	return total, diet, noDiet, nil
}

// ListDietMeals returns the user's diet meals, newest first.
func (r *MealRepository) ListDietMeals(ctx context.Context, userID uuid.UUID) ([]model.Meal, error) {
	stmt := `
		SELECT *
		FROM meals
		WHERE user_id = @user_id AND diet = TRUE
		ORDER BY created_at DESC
	`

	rows, err := r.server.DB.Pool.Query(ctx, stmt, pgx.NamedArgs{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("failed to execute list diet meals query for user_id=%s: %w", userID, err)
	}

	meals, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Meal])
	if err != nil {
		return nil, fmt.Errorf("failed to collect rows from table:meals for user_id=%s: %w", userID, err)
	}

	return meals, nil
}
