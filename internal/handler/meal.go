package handler

import (
	"github.com/JRebertt/Cursos/internal/middleware"
	"github.com/JRebertt/Cursos/internal/model"
	"github.com/JRebertt/Cursos/internal/server"
	"github.com/JRebertt/Cursos/internal/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const mealDeletedMessage = "Meal deleted successfully"

type MealsResponse struct {
	Meals []model.Meal `json:"meals"`
}

// MealResponse carries a null meal when nothing matched.
type MealResponse struct {
	Meal *model.Meal `json:"meal"`
}

// MealHandler serves /meals. Every route sits behind RequireSession.
type MealHandler struct {
	Handler
	mealService *service.MealService
}

func NewMealHandler(s *server.Server, mealService *service.MealService) *MealHandler {
	return &MealHandler{
		Handler:     NewHandler(s),
		mealService: mealService,
	}
}

func (h *MealHandler) CreateMeal(c echo.Context, payload *model.CreateMealPayload) error {
	_, err := h.mealService.CreateMeal(c.Request().Context(), middleware.GetSessionID(c), payload.Input())
	return err
}

func (h *MealHandler) ListMeals(c echo.Context, _ *model.SessionScopedRequest) (*MealsResponse, error) {
	meals, err := h.mealService.ListMeals(c.Request().Context(), middleware.GetSessionID(c))
	if err != nil {
		return nil, err
	}
	return &MealsResponse{Meals: meals}, nil
}

func (h *MealHandler) GetMeal(c echo.Context, params *model.MealIDParams) (*MealResponse, error) {
	meal, err := h.mealService.GetMeal(c.Request().Context(), middleware.GetSessionID(c), uuid.MustParse(params.ID))
	if err != nil {
		return nil, err
	}
	return &MealResponse{Meal: meal}, nil
}

func (h *MealHandler) UpdateMeal(c echo.Context, payload *model.UpdateMealPayload) error {
	return h.mealService.UpdateMeal(
		c.Request().Context(),
		middleware.GetSessionID(c),
		uuid.MustParse(payload.ID),
		payload.Input(),
	)
}

func (h *MealHandler) DeleteMeal(c echo.Context, params *model.MealIDParams) (string, error) {
	err := h.mealService.DeleteMeal(c.Request().Context(), middleware.GetSessionID(c), uuid.MustParse(params.ID))
	if err != nil {
		return "", err
	}
	return mealDeletedMessage, nil
}

func (h *MealHandler) GetMealSummary(c echo.Context, _ *model.SessionScopedRequest) (*model.MealSummary, error) {
	return h.mealService.GetMealSummary(c.Request().Context(), middleware.GetSessionID(c))
}
