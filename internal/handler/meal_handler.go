package handler

import (
	"io"
	"strings"
	"time"

	"github.com/dheeraj1922d/Fitkit.ai-Backend/internal/domain"
	"github.com/dheeraj1922d/Fitkit.ai-Backend/internal/middleware"
	"github.com/dheeraj1922d/Fitkit.ai-Backend/internal/service"
	"github.com/gofiber/fiber/v2"
)

// MealHandler handles meal logging endpoints
type MealHandler struct {
	mealService *service.MealService
}

// NewMealHandler creates a new meal handler
func NewMealHandler(mealService *service.MealService) *MealHandler {
	return &MealHandler{mealService: mealService}
}

type foodEntryRequest struct {
	Food          string  `json:"food" validate:"required"`
	Calories      float64 `json:"calories" validate:"gte=0"`
	Protein       float64 `json:"protein" validate:"gte=0"`
	Carbs         float64 `json:"carbs" validate:"gte=0"`
	Fat           float64 `json:"fat" validate:"gte=0"`
	QuantityGrams float64 `json:"quantity_g" validate:"gte=0"`
}

type addMealRequest struct {
	ClientID      string             `json:"clientId" validate:"omitempty,max=64"`
	MealType      string             `json:"mealType" validate:"required,oneof=breakfast lunch dinner snack"`
	Items         []foodEntryRequest `json:"items" validate:"required,min=1,dive"`
	TotalCalories float64            `json:"totalCalories" validate:"gte=0"`
	ImageURL      string             `json:"imageUrl"`
	CreatedAt     *time.Time         `json:"createdAt"`
}

// UploadImage handles POST /api/meal/upload-image (multipart field "image")
func (h *MealHandler) UploadImage(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, CodeValidation, "No image file provided")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return handleError(c, err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return handleError(c, err)
	}

	contentType := fileHeader.Header.Get(fiber.HeaderContentType)
	res, err := h.mealService.UploadMealImage(c.UserContext(), middleware.GetUserID(c), data, contentType)
	if err != nil {
		return handleError(c, err)
	}
	return ok(c, fiber.StatusOK, res, "")
}

// AddMeal handles POST /api/meal/add
func (h *MealHandler) AddMeal(c *fiber.Ctx) error {
	var req addMealRequest
	if err := parseBody(c, &req); err != nil {
		return handleError(c, err)
	}

	items := make([]domain.FoodEntry, len(req.Items))
	for i, it := range req.Items {
		items[i] = domain.FoodEntry{
			Name:          it.Food,
			Calories:      it.Calories,
			Protein:       it.Protein,
			Carbs:         it.Carbs,
			Fat:           it.Fat,
			QuantityGrams: it.QuantityGrams,
		}
	}

	meal, created, err := h.mealService.AddMeal(c.UserContext(), middleware.GetUserID(c), service.MealInput{
		ClientID:      req.ClientID,
		MealType:      domain.MealType(req.MealType),
		Items:         items,
		TotalCalories: req.TotalCalories,
		ImageURL:      req.ImageURL,
		CreatedAt:     req.CreatedAt,
	})
	if err != nil {
		return handleError(c, err)
	}

	if !created {
		return ok(c, fiber.StatusOK, meal, "Meal already recorded")
	}
	return ok(c, fiber.StatusCreated, meal, "Meal added successfully")
}

// GetMealsForDay handles GET /api/meal/day/:date
func (h *MealHandler) GetMealsForDay(c *fiber.Ctx) error {
	day, err := parseDate(c.Params("date"))
	if err != nil {
		return fail(c, fiber.StatusBadRequest, CodeValidation, "Invalid date, expected YYYY-MM-DD")
	}

	meals, err := h.mealService.GetMealsForDay(c.UserContext(), middleware.GetUserID(c), day)
	if err != nil {
		return handleError(c, err)
	}
	return ok(c, fiber.StatusOK, nonNil(meals), "")
}

// GetMealsForRange handles GET /api/meal/week?startDate&endDate. Without
// parameters it covers the last seven days up to today.
func (h *MealHandler) GetMealsForRange(c *fiber.Ctx) error {
	now := time.Now().UTC()
	end, start := now, now.AddDate(0, 0, -7)

	var err error
	if s := c.Query("endDate"); s != "" {
		if end, err = parseDate(s); err != nil {
			return fail(c, fiber.StatusBadRequest, CodeValidation, "Invalid endDate, expected YYYY-MM-DD")
		}
	}
	if s := c.Query("startDate"); s != "" {
		if start, err = parseDate(s); err != nil {
			return fail(c, fiber.StatusBadRequest, CodeValidation, "Invalid startDate, expected YYYY-MM-DD")
		}
	}

	meals, err := h.mealService.GetMealsForRange(c.UserContext(), middleware.GetUserID(c), start, end)
	if err != nil {
		return handleError(c, err)
	}
	return ok(c, fiber.StatusOK, nonNil(meals), "")
}

// DeleteMeal handles DELETE /api/meal/:id
func (h *MealHandler) DeleteMeal(c *fiber.Ctx) error {
	err := h.mealService.DeleteMeal(c.UserContext(), middleware.GetUserID(c), c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return ok(c, fiber.StatusOK, nil, "Meal deleted successfully")
}

// SearchFood handles GET /api/meal/search?q=
func (h *MealHandler) SearchFood(c *fiber.Ctx) error {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		return fail(c, fiber.StatusBadRequest, CodeValidation, "Search query is required")
	}

	foods, err := h.mealService.SearchFood(c.UserContext(), q)
	if err != nil {
		return handleError(c, err)
	}
	return ok(c, fiber.StatusOK, nonNil(foods), "")
}

// parseDate accepts YYYY-MM-DD or a full RFC 3339 timestamp
func parseDate(s string) (time.Time, error) {
	if t, err := service.ParseDay(s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// nonNil makes empty lists render as [] instead of null
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
