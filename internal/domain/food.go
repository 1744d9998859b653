package domain

import (
	"context"
	"errors"
	"time"
)

var ErrDuplicateFood = errors.New("food item already exists")

// FoodItem is an entry of the static food catalogue, values per serving
type FoodItem struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Calories    float64   `bson:"calories" json:"calories"`
	Protein     float64   `bson:"protein" json:"protein"`
	Carbs       float64   `bson:"carbs" json:"carbs"`
	Fat         float64   `bson:"fat" json:"fat"`
	ServingSize float64   `bson:"serving_size" json:"servingSize"`
	Unit        string    `bson:"unit" json:"unit"`         // g, ml, oz, cup, piece
	Category    string    `bson:"category" json:"category"` // protein, carbs, vegetables, fruits, dairy, snacks, beverages, other
	Brand       string    `bson:"brand,omitempty" json:"brand,omitempty"`
	CreatedAt   time.Time `bson:"created_at" json:"-"`
	UpdatedAt   time.Time `bson:"updated_at" json:"-"`
}

// FoodRepository handles the food_items collection
type FoodRepository interface {
	Create(ctx context.Context, food *FoodItem) error
	Count(ctx context.Context) (int64, error)
	// Search matches query case-insensitively against name and brand
	Search(ctx context.Context, query string, limit int) ([]FoodItem, error)
}
