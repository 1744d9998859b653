package main

import (
	"context"
	"errors"
	"time"

	"github.com/dheeraj1922d/Fitkit.ai-Backend/internal/config"
	"github.com/dheeraj1922d/Fitkit.ai-Backend/internal/domain"
	"github.com/dheeraj1922d/Fitkit.ai-Backend/internal/logger"
	"github.com/dheeraj1922d/Fitkit.ai-Backend/internal/repository"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load config", "error", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoDB.URI))
	if err != nil {
		logger.Fatal("failed to connect to MongoDB", "error", err)
	}
	defer client.Disconnect(context.Background())

	repo := repository.NewMongoFoodRepository(client.Database(cfg.MongoDB.Database))

	count, err := repo.Count(ctx)
	if err != nil {
		logger.Fatal("failed to count food items", "error", err)
	}
	if count > 0 {
		logger.Info("food database already seeded", "count", count)
		return
	}

	inserted := 0
	for i := range catalogue {
		food := catalogue[i]
		if err := repo.Create(ctx, &food); err != nil {
			if errors.Is(err, domain.ErrDuplicateFood) {
				continue
			}
			logger.Fatal("failed to insert food item", "name", food.Name, "error", err)
		}
		inserted++
	}

	logger.Info("seeded food database", "inserted", inserted)
}
