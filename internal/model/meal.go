package model

import "github.com/google/uuid"

type Meal struct {
	Base
	UserID      uuid.UUID `json:"user_id" db:"user_id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	Diet        bool      `json:"diet" db:"diet"`
}

// MealInput is the validated, service-level form of a meal write.
type MealInput struct {
	Name        string
	Description string
	Diet        bool
}

// ------------------------------------------------------------

type CreateMealPayload struct {
	Name        string `json:"name" validate:"required,max=255"`
	Description string `json:"description" validate:"required"`
	Diet        *bool  `json:"diet" validate:"required"`
}

func (p *CreateMealPayload) Validate() error {
	return validate.Struct(p)
}

func (p *CreateMealPayload) Input() MealInput {
	return MealInput{Name: p.Name, Description: p.Description, Diet: *p.Diet}
}

// ------------------------------------------------------------

// UpdateMealPayload replaces every mutable field of a meal.
type UpdateMealPayload struct {
	ID          string `param:"id" json:"-" validate:"required,uuid_rfc4122"`
	Name        string `json:"name" validate:"required,max=255"`
	Description string `json:"description" validate:"required"`
	Diet        *bool  `json:"diet" validate:"required"`
}

func (p *UpdateMealPayload) Validate() error {
	return validate.Struct(p)
}

func (p *UpdateMealPayload) Input() MealInput {
	return MealInput{Name: p.Name, Description: p.Description, Diet: *p.Diet}
}

// ------------------------------------------------------------

type MealIDParams struct {
	ID string `param:"id" validate:"required,uuid_rfc4122"`
}

func (p *MealIDParams) Validate() error {
	return validate.Struct(p)
}

// ------------------------------------------------------------

type MealCount struct {
	TotalMeals int64 `json:"totalMeals"`
}

type DietMealCount struct {
	TotalDietMeals int64 `json:"totalDietMeals"`
}

type NoDietMealCount struct {
	TotalNoDietMeals int64 `json:"totalNoDietMeals"`
}

// MealSummary keeps the response shape clients already consume: a plain
// object for the total, single-row arrays for the diet split and the full
// rows of diet meals.
type MealSummary struct {
	Count      MealCount         `json:"count"`
	DietMeal   []DietMealCount   `json:"dietMeal"`
	NoDietMeal []NoDietMealCount `json:"noDietMeal"`
	BestMeal   []Meal            `json:"bestMeal"`
}
