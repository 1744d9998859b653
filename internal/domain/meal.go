package domain

import (
	"context"
	"time"
)

// MealType is the closed set of meal slots. The declaration order is the
// tie-break order used when looking for the heaviest meal.
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

// MealTypes lists every meal type in declaration order
var MealTypes = [...]MealType{MealBreakfast, MealLunch, MealDinner, MealSnack}

// Index returns the position of t in MealTypes, or -1 for unknown values
func (t MealType) Index() int {
	for i, mt := range MealTypes {
		if mt == t {
			return i
		}
	}
	return -1
}

// Valid reports whether t is one of the known meal types
func (t MealType) Valid() bool {
	return t.Index() >= 0
}

// FoodEntry is a single item eaten as part of a meal
type FoodEntry struct {
	Name          string  `bson:"food" json:"food"`
	Calories      float64 `bson:"calories" json:"calories"`
	Protein       float64 `bson:"protein" json:"protein"`
	Carbs         float64 `bson:"carbs" json:"carbs"`
	Fat           float64 `bson:"fat" json:"fat"`
	QuantityGrams float64 `bson:"quantity_g" json:"quantity_g"`
}

// Meal is a logged meal. TotalCalories is supplied by the client and is not
// reconciled against the item calories; macros are always read from items.
type Meal struct {
	ID            string      `bson:"_id,omitempty" json:"id"`
	ClientID      string      `bson:"client_id,omitempty" json:"clientId,omitempty"` // ULID for offline dedupe
	UserID        string      `bson:"user_id" json:"userId"`
	MealType      MealType    `bson:"meal_type" json:"mealType"`
	Items         []FoodEntry `bson:"items" json:"items"`
	TotalCalories float64     `bson:"total_calories" json:"totalCalories"`
	ImageURL      string      `bson:"image_url,omitempty" json:"imageUrl,omitempty"`
	CreatedAt     time.Time   `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time   `bson:"updated_at" json:"updatedAt"`
}

// MacroTotals sums protein, carbs and fat over the meal's items
func (m *Meal) MacroTotals() (protein, carbs, fat float64) {
	for _, item := range m.Items {
		protein += item.Protein
		carbs += item.Carbs
		fat += item.Fat
	}
	return protein, carbs, fat
}

// MealRepository handles persistence for the meals collection
type MealRepository interface {
	Create(ctx context.Context, meal *Meal) error
	GetByID(ctx context.Context, id string) (*Meal, error)
	// GetByClientID looks a meal up by the ULID the client generated offline
	GetByClientID(ctx context.Context, userID, clientID string) (*Meal, error)
	// FindByUserAndRange returns the user's meals with start <= created_at <= end,
	// newest first. Callers must not rely on the order.
	FindByUserAndRange(ctx context.Context, userID string, start, end time.Time) ([]Meal, error)
	// DeleteByIDAndUser removes a meal owned by userID, ErrNotFound otherwise
	DeleteByIDAndUser(ctx context.Context, id, userID string) error
}
