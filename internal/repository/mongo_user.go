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

type userDocument struct {
	ID                 primitive.ObjectID   `bson:"_id,omitempty"`
	Name               string               `bson:"name"`
	Email              string               `bson:"email"`
	Password           string               `bson:"password"`
	Age                int                  `bson:"age"`
	Weight             float64              `bson:"weight"`
	Height             float64              `bson:"height"`
	Gender             domain.Gender        `bson:"gender"`
	ActivityLevel      domain.ActivityLevel `bson:"activity_level"`
	Goal               domain.Goal          `bson:"goal"`
	DailyCalorieTarget int                  `bson:"daily_calorie_target"`
	CreatedAt          time.Time            `bson:"created_at"`
	UpdatedAt          time.Time            `bson:"updated_at"`
}

func (d *userDocument) toDomain() *domain.User {
	return &domain.User{
		ID:                 d.ID.Hex(),
		Name:               d.Name,
		Email:              d.Email,
		PasswordHash:       d.Password,
		Age:                d.Age,
		WeightKg:           d.Weight,
		HeightCm:           d.Height,
		Gender:             d.Gender,
		ActivityLevel:      d.ActivityLevel,
		Goal:               d.Goal,
		DailyCalorieTarget: d.DailyCalorieTarget,
		CreatedAt:          d.CreatedAt,
		UpdatedAt:          d.UpdatedAt,
	}
}

// MongoUserRepository implements domain.UserRepository
type MongoUserRepository struct {
	collection *mongo.Collection
}

func NewMongoUserRepository(db *mongo.Database) *MongoUserRepository {
	coll := db.Collection("users")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, _ = coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})

	return &MongoUserRepository{
		collection: coll,
	}
}

func (r *MongoUserRepository) Create(ctx context.Context, user *domain.User) error {
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now
	objID := primitive.NewObjectID()

	doc := userDocument{
		ID:                 objID,
		Name:               user.Name,
		Email:              user.Email,
		Password:           user.PasswordHash,
		Age:                user.Age,
		Weight:             user.WeightKg,
		Height:             user.HeightCm,
		Gender:             user.Gender,
		ActivityLevel:      user.ActivityLevel,
		Goal:               user.Goal,
		DailyCalorieTarget: user.DailyCalorieTarget,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrEmailTaken
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	user.ID = objID.Hex()
	return nil
}

func (r *MongoUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrInvalidID
	}
	return r.findOne(ctx, bson.M{"_id": objID})
}

func (r *MongoUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *MongoUserRepository) findOne(ctx context.Context, filter bson.M) (*domain.User, error) {
	var doc userDocument
	if err := r.collection.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return doc.toDomain(), nil
}

// Update writes the profile fields. Email and password are immutable here.
func (r *MongoUserRepository) Update(ctx context.Context, user *domain.User) error {
	objID, err := primitive.ObjectIDFromHex(user.ID)
	if err != nil {
		return domain.ErrInvalidID
	}

	user.UpdatedAt = time.Now().UTC()
	update := bson.M{
		"$set": bson.M{
			"name":                 user.Name,
			"age":                  user.Age,
			"weight":               user.WeightKg,
			"height":               user.HeightCm,
			"gender":               user.Gender,
			"activity_level":       user.ActivityLevel,
			"goal":                 user.Goal,
			"daily_calorie_target": user.DailyCalorieTarget,
			"updated_at":           user.UpdatedAt,
		},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": objID}, update)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if result.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *MongoUserRepository) GetAll(ctx context.Context) ([]*domain.User, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer cursor.Close(ctx)

	var users []*domain.User
	for cursor.Next(ctx) {
		var doc userDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		users = append(users, doc.toDomain())
	}
	return users, cursor.Err()
}
