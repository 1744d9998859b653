package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/dheeraj1922d/Fitkit.ai-Backend/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoPredictionRepository stores food recognition results
type MongoPredictionRepository struct {
	collection *mongo.Collection
}

func NewMongoPredictionRepository(db *mongo.Database) *MongoPredictionRepository {
	coll := db.Collection("predictions")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, _ = coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}},
	})

	return &MongoPredictionRepository{collection: coll}
}

func (r *MongoPredictionRepository) Create(ctx context.Context, p *domain.Prediction) error {
	p.CreatedAt = time.Now().UTC()
	objID := primitive.NewObjectID()

	doc := bson.M{
		"_id":         objID,
		"user_id":     p.UserID,
		"image_url":   p.ImageURL,
		"predictions": p.Predictions,
		"raw_output":  p.RawOutput,
		"confidence":  p.Confidence,
		"created_at":  p.CreatedAt,
	}
	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("failed to store prediction: %w", err)
	}
	p.ID = objID.Hex()
	return nil
}
