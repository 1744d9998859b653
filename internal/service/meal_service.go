package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dheeraj1922d/Fitkit.ai-Backend/internal/domain"
	"github.com/dheeraj1922d/Fitkit.ai-Backend/internal/logger"
	"github.com/dheeraj1922d/Fitkit.ai-Backend/internal/telemetry"
	"github.com/oklog/ulid/v2"
	"go.opentelemetry.io/otel/attribute"
)

// FoodSearchLimit caps catalogue search results
const FoodSearchLimit = 20

// MealService handles meal logging, photo recognition and food search
type MealService struct {
	mealRepo       domain.MealRepository
	foodRepo       domain.FoodRepository
	predictionRepo domain.PredictionRepository
	fileRepo       domain.FileRepository
	predictor      domain.FoodPredictor
	mealsLogged    *telemetry.Counter
}

// NewMealService creates a new meal service
func NewMealService(
	mealRepo domain.MealRepository,
	foodRepo domain.FoodRepository,
	predictionRepo domain.PredictionRepository,
	fileRepo domain.FileRepository,
	predictor domain.FoodPredictor,
) *MealService {
	return &MealService{
		mealRepo:       mealRepo,
		foodRepo:       foodRepo,
		predictionRepo: predictionRepo,
		fileRepo:       fileRepo,
		predictor:      predictor,
		mealsLogged:    telemetry.NewCounter("fitkit.meals.logged", "Meals logged by meal type"),
	}
}

// UploadResult is returned after a meal photo was recognised
type UploadResult struct {
	Items      []domain.PredictedItem `json:"items"`
	ImageURL   string                 `json:"imageUrl"`
	Confidence float64                `json:"confidence"`
}

// UploadMealImage stores the photo, asks the predictor what is on it and
// records the prediction
func (s *MealService) UploadMealImage(ctx context.Context, userID string, image []byte, contentType string) (*UploadResult, error) {
	ext, ok := domain.MealImageContentTypes[contentType]
	if !ok {
		return nil, domain.ErrUnsupportedImage
	}

	key := fmt.Sprintf("meals/%s/%s%s", userID, ulid.Make().String(), ext)
	imageURL, err := s.fileRepo.Upload(ctx, image, key, contentType)
	if err != nil {
		return nil, fmt.Errorf("failed to store image: %w", err)
	}

	result, err := s.predictor.Predict(ctx, imageURL)
	if err != nil {
		return nil, err
	}

	prediction := &domain.Prediction{
		UserID:      userID,
		ImageURL:    imageURL,
		Predictions: result.Items,
		RawOutput:   *result,
		Confidence:  result.Confidence,
	}
	if err := s.predictionRepo.Create(ctx, prediction); err != nil {
		return nil, err
	}

	logger.WithFields("user_id", userID, "image_key", key).
		Info("meal image recognised", "items", len(result.Items), "confidence", result.Confidence)

	return &UploadResult{
		Items:      result.Items,
		ImageURL:   imageURL,
		Confidence: result.Confidence,
	}, nil
}

// MealInput is a validated meal logging request
type MealInput struct {
	ClientID      string
	MealType      domain.MealType
	Items         []domain.FoodEntry
	TotalCalories float64
	ImageURL      string
	CreatedAt     *time.Time
}

// AddMeal logs a meal. The supplied total is stored as is. A repeated
// ClientID returns the meal logged the first time and created=false.
func (s *MealService) AddMeal(ctx context.Context, userID string, in MealInput) (meal *domain.Meal, created bool, err error) {
	if err := validateMeal(in); err != nil {
		return nil, false, err
	}

	if in.ClientID != "" {
		existing, err := s.mealRepo.GetByClientID(ctx, userID, in.ClientID)
		if err == nil {
			return existing, false, nil
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, false, fmt.Errorf("failed to look up meal: %w", err)
		}
	} else {
		in.ClientID = ulid.Make().String()
	}

	createdAt := time.Now().UTC()
	if in.CreatedAt != nil && !in.CreatedAt.IsZero() {
		createdAt = in.CreatedAt.UTC()
	}

	meal = &domain.Meal{
		ClientID:      in.ClientID,
		UserID:        userID,
		MealType:      in.MealType,
		Items:         in.Items,
		TotalCalories: in.TotalCalories,
		ImageURL:      in.ImageURL,
		CreatedAt:     createdAt,
	}
	if err := s.mealRepo.Create(ctx, meal); err != nil {
		if !errors.Is(err, domain.ErrDuplicateMeal) {
			return nil, false, err
		}
		// a concurrent request with the same ClientID won the insert
		existing, getErr := s.mealRepo.GetByClientID(ctx, userID, in.ClientID)
		if getErr != nil {
			return nil, false, fmt.Errorf("failed to look up meal: %w", getErr)
		}
		return existing, false, nil
	}
	s.mealsLogged.Inc(ctx, attribute.String("meal_type", string(meal.MealType)))
	return meal, true, nil
}

func validateMeal(in MealInput) error {
	if !in.MealType.Valid() {
		return fmt.Errorf("%w: unknown meal type %q", domain.ErrInvalidMeal, in.MealType)
	}
	if len(in.Items) == 0 {
		return fmt.Errorf("%w: at least one item is required", domain.ErrInvalidMeal)
	}
	if in.TotalCalories < 0 {
		return fmt.Errorf("%w: total calories must not be negative", domain.ErrInvalidMeal)
	}
	for i, it := range in.Items {
		if it.Calories < 0 || it.Protein < 0 || it.Carbs < 0 || it.Fat < 0 || it.QuantityGrams < 0 {
			return fmt.Errorf("%w: item %d has negative values", domain.ErrInvalidMeal, i)
		}
	}
	return nil
}

// GetMealsForDay lists the meals of one UTC day, newest first
func (s *MealService) GetMealsForDay(ctx context.Context, userID string, day time.Time) ([]domain.Meal, error) {
	w := DayWindow(day)
	return s.mealRepo.FindByUserAndRange(ctx, userID, w.Start, w.End)
}

// GetMealsForRange lists meals from the start of start's day to the end of
// end's day, newest first
func (s *MealService) GetMealsForRange(ctx context.Context, userID string, start, end time.Time) ([]domain.Meal, error) {
	w, err := NewWindow(StartOfDay(start), EndOfDay(end))
	if err != nil {
		return nil, err
	}
	return s.mealRepo.FindByUserAndRange(ctx, userID, w.Start, w.End)
}

// DeleteMeal removes one of the user's meals
func (s *MealService) DeleteMeal(ctx context.Context, userID, mealID string) error {
	return s.mealRepo.DeleteByIDAndUser(ctx, mealID, userID)
}

// SearchFood looks up the food catalogue
func (s *MealService) SearchFood(ctx context.Context, query string) ([]domain.FoodItem, error) {
	return s.foodRepo.Search(ctx, strings.TrimSpace(query), FoodSearchLimit)
}
