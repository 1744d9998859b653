package server

import (
	"context"
	"time"

	"github.com/dheeraj1922d/Fitkit.ai-Backend/internal/config"
	"github.com/dheeraj1922d/Fitkit.ai-Backend/internal/domain"
	"github.com/dheeraj1922d/Fitkit.ai-Backend/internal/handler"
	applogger "github.com/dheeraj1922d/Fitkit.ai-Backend/internal/logger"
	"github.com/dheeraj1922d/Fitkit.ai-Backend/internal/middleware"
	"github.com/dheeraj1922d/Fitkit.ai-Backend/internal/repository"
	"github.com/dheeraj1922d/Fitkit.ai-Backend/internal/service"
	"github.com/dheeraj1922d/Fitkit.ai-Backend/internal/telemetry"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

// idempotencyTTL bounds how long a replayed meal response is kept
const idempotencyTTL = 24 * time.Hour

// AppDependencies holds the dependencies required to start the application.
// FileRepo and Predictor are built from Config when nil.
type AppDependencies struct {
	Config      *config.Config
	MongoDB     *mongo.Database
	RedisClient *redis.Client
	FileRepo    domain.FileRepository
	Predictor   domain.FoodPredictor
}

// NewApp creates and configures the Fiber application with the given dependencies
func NewApp(deps AppDependencies) *fiber.App {
	cfg := deps.Config

	// Repositories
	userRepo := repository.NewMongoUserRepository(deps.MongoDB)
	mealRepo := repository.NewMongoMealRepository(deps.MongoDB)
	predictionRepo := repository.NewMongoPredictionRepository(deps.MongoDB)
	refreshTokenRepo := repository.NewMongoRefreshTokenRepository(deps.MongoDB)
	cacheRepo := repository.NewRedisCacheRepository(deps.RedisClient)
	foodRepo := repository.NewCachedFoodRepository(repository.NewMongoFoodRepository(deps.MongoDB), cacheRepo)

	fileRepo := deps.FileRepo
	if fileRepo == nil {
		fileRepo = newFileRepository(cfg)
	}

	predictor := deps.Predictor
	if predictor == nil {
		predictor = service.NewMLServicePredictor(cfg.MLService.URL, cfg.MLService.Timeout)
	}

	// Services
	tokenService := service.NewTokenService(cfg.JWT, refreshTokenRepo, userRepo)
	authService := service.NewAuthService(userRepo, tokenService)
	mealService := service.NewMealService(mealRepo, foodRepo, predictionRepo, fileRepo, predictor)
	analyticsService := service.NewAnalyticsService(mealRepo, userRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(authService, tokenService, cfg.JWT.RefreshTokenExpiry)
	mealHandler := handler.NewMealHandler(mealService)
	analyticsHandler := handler.NewAnalyticsHandler(analyticsService)

	bodyLimitMB := cfg.Server.MaxUploadSizeMB
	if bodyLimitMB <= 0 {
		bodyLimitMB = 10
	}

	app := fiber.New(fiber.Config{
		AppName:      "Fitkit.ai API",
		BodyLimit:    int(bodyLimitMB * 1024 * 1024),
		ErrorHandler: customErrorHandler,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(helmet.New(helmet.Config{CrossOriginResourcePolicy: "cross-origin"}))
	app.Use(telemetry.FiberMiddleware())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins(cfg.Server.FrontendURL),
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Correlation-ID",
		AllowMethods:     "GET, POST, PUT, DELETE, OPTIONS",
		AllowCredentials: cfg.Server.FrontendURL != "",
	}))

	if _, local := fileRepo.(*repository.LocalFileRepository); local {
		app.Static("/uploads", cfg.Server.UploadDir)
	}

	api := app.Group("/api")
	api.Use(limiter.New(limiter.Config{
		Max:        rateLimitMax(cfg),
		Expiration: rateLimitWindow(cfg),
		LimitReached: func(c *fiber.Ctx) error {
			return fiber.NewError(fiber.StatusTooManyRequests, "Too many requests from this IP, please try again later.")
		},
	}))

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"success": true,
			"message": "Server is running",
			"data": fiber.Map{
				"status":    "healthy",
				"service":   "fitkit-api",
				"timestamp": time.Now().UTC(),
			},
		})
	})

	requireAuth := middleware.VerifyAccessToken(cfg.JWT.Secret)

	// Auth
	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)
	auth.Post("/logout", authHandler.Logout)
	auth.Post("/logout-all", requireAuth, authHandler.LogoutAll)
	auth.Get("/profile", requireAuth, authHandler.GetProfile)
	auth.Put("/profile", requireAuth, authHandler.UpdateProfile)

	// Meals
	meal := api.Group("/meal", requireAuth)
	meal.Post("/upload-image", mealHandler.UploadImage)
	meal.Post("/add", middleware.IdempotencyMiddleware(deps.RedisClient, idempotencyTTL), mealHandler.AddMeal)
	meal.Get("/day/:date", mealHandler.GetMealsForDay)
	meal.Get("/week", mealHandler.GetMealsForRange)
	meal.Get("/search", mealHandler.SearchFood)
	meal.Delete("/:id", mealHandler.DeleteMeal)

	// Analytics
	analytics := api.Group("/analytics", requireAuth)
	analytics.Get("/weekly", analyticsHandler.GetWeekly)
	analytics.Get("/macros", analyticsHandler.GetMacros)
	analytics.Get("/insights", analyticsHandler.GetInsights)

	app.Use(handler.NotFound)

	return app
}

// newFileRepository picks S3 when enabled and falls back to local disk
func newFileRepository(cfg *config.Config) domain.FileRepository {
	if cfg.S3.Enabled {
		s3Repo, err := repository.NewS3FileRepository(context.Background(), cfg.S3)
		if err == nil {
			return s3Repo
		}
		applogger.Warn("failed to initialize S3 repository, using local storage", "error", err)
	}

	uploadDir := cfg.Server.UploadDir
	if uploadDir == "" {
		uploadDir = "uploads"
		cfg.Server.UploadDir = uploadDir
	}
	localRepo, err := repository.NewLocalFileRepository(uploadDir, cfg.Server.PublicURL+"/uploads")
	if err != nil {
		applogger.Fatal("failed to initialize local file storage", "error", err)
	}
	return localRepo
}

func allowedOrigins(frontendURL string) string {
	if frontendURL == "" {
		return "*"
	}
	return frontendURL
}

func rateLimitMax(cfg *config.Config) int {
	if cfg.Server.RateLimitMax <= 0 {
		return 100
	}
	return cfg.Server.RateLimitMax
}

func rateLimitWindow(cfg *config.Config) time.Duration {
	if cfg.Server.RateLimitWindow <= 0 {
		return 15 * time.Minute
	}
	return cfg.Server.RateLimitWindow
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	applogger.Debug("request error", "method", c.Method(), "path", c.Path(), "error", err)
	return handler.ErrorHandler(c, err)
}
