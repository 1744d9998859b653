package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dheeraj1922d/Fitkit.ai-Backend/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mealDocument struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	ClientID      string             `bson:"client_id,omitempty"`
	UserID        string             `bson:"user_id"`
	MealType      domain.MealType    `bson:"meal_type"`
	Items         []domain.FoodEntry `bson:"items"`
	TotalCalories float64            `bson:"total_calories"`
	ImageURL      string             `bson:"image_url,omitempty"`
	CreatedAt     time.Time          `bson:"created_at"`
	UpdatedAt     time.Time          `bson:"updated_at"`
}

func (d *mealDocument) toDomain() domain.Meal {
	return domain.Meal{
		ID:            d.ID.Hex(),
		ClientID:      d.ClientID,
		UserID:        d.UserID,
		MealType:      d.MealType,
		Items:         d.Items,
		TotalCalories: d.TotalCalories,
		ImageURL:      d.ImageURL,
		CreatedAt:     d.CreatedAt.UTC(),
		UpdatedAt:     d.UpdatedAt.UTC(),
	}
}

// MongoMealRepository implements domain.MealRepository
type MongoMealRepository struct {
	collection *mongo.Collection
}

func NewMongoMealRepository(db *mongo.Database) *MongoMealRepository {
	coll := db.Collection("meals")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, _ = coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}}},
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "client_id", Value: 1}},
			Options: options.Index().SetUnique(true).SetPartialFilterExpression(bson.M{"client_id": bson.M{"$exists": true}}),
		},
	})

	return &MongoMealRepository{collection: coll}
}

func (r *MongoMealRepository) Create(ctx context.Context, meal *domain.Meal) error {
	now := time.Now().UTC()
	if meal.CreatedAt.IsZero() {
		meal.CreatedAt = now
	}
	meal.UpdatedAt = now
	objID := primitive.NewObjectID()

	doc := mealDocument{
		ID:            objID,
		ClientID:      meal.ClientID,
		UserID:        meal.UserID,
		MealType:      meal.MealType,
		Items:         meal.Items,
		TotalCalories: meal.TotalCalories,
		ImageURL:      meal.ImageURL,
		CreatedAt:     meal.CreatedAt.UTC(),
		UpdatedAt:     meal.UpdatedAt,
	}

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDuplicateMeal
		}
		return fmt.Errorf("failed to create meal: %w", err)
	}
	meal.ID = objID.Hex()
	return nil
}

func (r *MongoMealRepository) GetByID(ctx context.Context, id string) (*domain.Meal, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrInvalidID
	}
	return r.findOne(ctx, bson.M{"_id": objID})
}

func (r *MongoMealRepository) GetByClientID(ctx context.Context, userID, clientID string) (*domain.Meal, error) {
	return r.findOne(ctx, bson.M{"user_id": userID, "client_id": clientID})
}

func (r *MongoMealRepository) findOne(ctx context.Context, filter bson.M) (*domain.Meal, error) {
	var doc mealDocument
	if err := r.collection.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get meal: %w", err)
	}
	meal := doc.toDomain()
	return &meal, nil
}

// FindByUserAndRange returns meals with start <= created_at <= end, newest first
func (r *MongoMealRepository) FindByUserAndRange(ctx context.Context, userID string, start, end time.Time) ([]domain.Meal, error) {
	filter := bson.M{
		"user_id": userID,
		"created_at": bson.M{
			"$gte": start,
			"$lte": end,
		},
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list meals: %w", err)
	}
	defer cursor.Close(ctx)

	meals := make([]domain.Meal, 0)
	for cursor.Next(ctx) {
		var doc mealDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		meals = append(meals, doc.toDomain())
	}
	return meals, cursor.Err()
}

func (r *MongoMealRepository) DeleteByIDAndUser(ctx context.Context, id, userID string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrInvalidID
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objID, "user_id": userID})
	if err != nil {
		return fmt.Errorf("failed to delete meal: %w", err)
	}
	if result.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}
