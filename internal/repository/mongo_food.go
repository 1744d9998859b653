package repository

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/dheeraj1922d/Fitkit.ai-Backend/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoFoodRepository implements domain.FoodRepository over food_items
type MongoFoodRepository struct {
	collection *mongo.Collection
}

func NewMongoFoodRepository(db *mongo.Database) *MongoFoodRepository {
	coll := db.Collection("food_items")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, _ = coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "name", Value: 1}, {Key: "brand", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "category", Value: 1}}},
	})

	return &MongoFoodRepository{collection: coll}
}

func (r *MongoFoodRepository) Create(ctx context.Context, food *domain.FoodItem) error {
	now := time.Now().UTC()
	food.CreatedAt = now
	food.UpdatedAt = now
	objID := primitive.NewObjectID()

	doc := bson.M{
		"_id":          objID,
		"name":         food.Name,
		"calories":     food.Calories,
		"protein":      food.Protein,
		"carbs":        food.Carbs,
		"fat":          food.Fat,
		"serving_size": food.ServingSize,
		"unit":         food.Unit,
		"category":     food.Category,
		"brand":        food.Brand,
		"created_at":   now,
		"updated_at":   now,
	}

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDuplicateFood
		}
		return fmt.Errorf("failed to create food item: %w", err)
	}
	food.ID = objID.Hex()
	return nil
}

func (r *MongoFoodRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

// Search matches the literal query case-insensitively against name and brand
func (r *MongoFoodRepository) Search(ctx context.Context, query string, limit int) ([]domain.FoodItem, error) {
	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"}
	filter := bson.M{
		"$or": bson.A{
			bson.M{"name": pattern},
			bson.M{"brand": pattern},
		},
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "name", Value: 1}}).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to search food items: %w", err)
	}
	defer cursor.Close(ctx)

	foods := make([]domain.FoodItem, 0)
	if err := cursor.All(ctx, &foods); err != nil {
		return nil, fmt.Errorf("failed to decode food items: %w", err)
	}
	return foods, nil
}
