package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/dheeraj1922d/Fitkit.ai-Backend/internal/domain"
	"github.com/dheeraj1922d/Fitkit.ai-Backend/internal/logger"
	"github.com/dheeraj1922d/Fitkit.ai-Backend/internal/repository"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func main() {
	_ = godotenv.Load()

	userID := flag.String("user", "", "User ID to recalculate (default: all users)")
	mongoURI := flag.String("mongo", envOr("MONGODB_URI", "mongodb://localhost:27017"), "MongoDB connection URI")
	dbName := flag.String("db", envOr("MONGODB_DATABASE", "fitkit"), "Database name")
	dryRun := flag.Bool("dry-run", false, "Show what would change without writing")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(*mongoURI))
	if err != nil {
		logger.Fatal("failed to connect to MongoDB", "error", err)
	}
	defer client.Disconnect(context.Background())

	repo := repository.NewMongoUserRepository(client.Database(*dbName))

	var users []*domain.User
	if *userID != "" {
		u, err := repo.GetByID(ctx, *userID)
		if err != nil {
			logger.Fatal("failed to load user", "user_id", *userID, "error", err)
		}
		users = []*domain.User{u}
	} else {
		users, err = repo.GetAll(ctx)
		if err != nil {
			logger.Fatal("failed to list users", "error", err)
		}
	}

	changed := 0
	for _, u := range users {
		before := u.DailyCalorieTarget
		u.RecalculateTarget()
		if u.DailyCalorieTarget == before {
			continue
		}
		changed++
		fmt.Printf("%s  %-30s  %5d -> %5d\n", u.ID, u.Email, before, u.DailyCalorieTarget)

		if *dryRun {
			continue
		}
		if err := repo.Update(ctx, u); err != nil {
			logger.Error("failed to update user", "user_id", u.ID, "error", err)
		}
	}

	mode := "updated"
	if *dryRun {
		mode = "would update"
	}
	fmt.Printf("\n%s %d of %d users\n", mode, changed, len(users))
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
