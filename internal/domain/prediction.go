package domain

import (
	"context"
	"time"
)

// PredictedItem is one food recognised on a meal photo
type PredictedItem struct {
	Name          string  `bson:"name" json:"name"`
	QuantityGrams float64 `bson:"quantity_g" json:"quantity_g"`
	Calories      float64 `bson:"calories" json:"calories"`
	Protein       float64 `bson:"protein" json:"protein"`
	Carbs         float64 `bson:"carbs" json:"carbs"`
	Fat           float64 `bson:"fat" json:"fat"`
	Confidence    float64 `bson:"confidence,omitempty" json:"confidence,omitempty"`
}

// PredictionResult is the response of the food recognition service
type PredictionResult struct {
	Items      []PredictedItem `bson:"items" json:"items"`
	Confidence float64         `bson:"confidence,omitempty" json:"confidence,omitempty"`
}

// Prediction is the audit record of a recognition request
type Prediction struct {
	ID          string           `bson:"_id,omitempty" json:"id"`
	UserID      string           `bson:"user_id" json:"userId"`
	ImageURL    string           `bson:"image_url" json:"imageUrl"`
	Predictions []PredictedItem  `bson:"predictions" json:"predictions"`
	RawOutput   PredictionResult `bson:"raw_output" json:"rawOutput"`
	Confidence  float64          `bson:"confidence,omitempty" json:"confidence,omitempty"`
	CreatedAt   time.Time        `bson:"created_at" json:"createdAt"`
}

// FoodPredictor turns a meal photo into a list of food items
type FoodPredictor interface {
	Predict(ctx context.Context, imageURL string) (*PredictionResult, error)
}

// PredictionRepository stores recognition results
type PredictionRepository interface {
	Create(ctx context.Context, prediction *Prediction) error
}
