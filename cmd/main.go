package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dheeraj1922d/Fitkit.ai-Backend/internal/config"
	"github.com/dheeraj1922d/Fitkit.ai-Backend/internal/logger"
	"github.com/dheeraj1922d/Fitkit.ai-Backend/internal/server"
	"github.com/dheeraj1922d/Fitkit.ai-Backend/internal/telemetry"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.opentelemetry.io/contrib/instrumentation/go.mongodb.org/mongo-driver/mongo/otelmongo"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load config", "error", err)
	}

	if err := logger.Init(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	}); err != nil {
		logger.Fatal("failed to initialize logger", "error", err)
	}

	logger.Info("starting Fitkit.ai API", "environment", cfg.OTEL.Environment)

	ctx := context.Background()

	otelProvider, err := telemetry.Initialize(ctx, telemetry.Config{
		ServiceName:  cfg.OTEL.ServiceName,
		Environment:  cfg.OTEL.Environment,
		OTLPEndpoint: cfg.OTEL.Endpoint,
		OTLPHeaders:  telemetry.BasicAuthHeaders(cfg.OTEL.InstanceID, cfg.OTEL.Token),
		Enabled:      cfg.OTEL.Enabled,
	})
	if err != nil {
		logger.Warn("failed to initialize OpenTelemetry", "error", err)
	}
	if otelProvider != nil {
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = otelProvider.Shutdown(shutdownCtx)
		}()
	}

	// MongoDB
	ctxMongo, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	mongoOpts := options.Client().ApplyURI(cfg.MongoDB.URI)
	if cfg.OTEL.Enabled {
		mongoOpts.SetMonitor(otelmongo.NewMonitor())
	}

	mongoClient, err := mongo.Connect(ctxMongo, mongoOpts)
	if err != nil {
		logger.Fatal("failed to connect to MongoDB", "error", err)
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			logger.Error("error disconnecting from MongoDB", "error", err)
		}
	}()

	if err := mongoClient.Ping(ctxMongo, nil); err != nil {
		logger.Fatal("failed to ping MongoDB", "error", err)
	}
	logger.Info("MongoDB connected", "database", cfg.MongoDB.Database)

	// Redis
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       0,
	})
	defer redisClient.Close()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Fatal("failed to connect to Redis", "error", err)
	}
	logger.Info("Redis connected", "addr", cfg.Redis.Addr)

	app := server.NewApp(server.AppDependencies{
		Config:      cfg,
		MongoDB:     mongoClient.Database(cfg.MongoDB.Database),
		RedisClient: redisClient,
	})

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan
		logger.Info("shutting down gracefully")
		_ = app.Shutdown()
	}()

	logger.Info("server starting", "port", cfg.Server.Port)
	if err := app.Listen(":" + cfg.Server.Port); err != nil {
		logger.Fatal("failed to start server", "error", err)
	}
}
