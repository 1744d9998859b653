package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/dheeraj1922d/Fitkit.ai-Backend/internal/config"
	"github.com/dheeraj1922d/Fitkit.ai-Backend/internal/domain"
	"github.com/dheeraj1922d/Fitkit.ai-Backend/internal/repository"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   *struct {
		Code    string   `json:"code"`
		Details []string `json:"details"`
	} `json:"error"`
}

type recordingFileRepo struct{ keys []string }

func (r *recordingFileRepo) Upload(ctx context.Context, data []byte, key, contentType string) (string, error) {
	r.keys = append(r.keys, key)
	return "https://cdn.test/" + key, nil
}

type fixedPredictor struct{}

func (fixedPredictor) Predict(ctx context.Context, imageURL string) (*domain.PredictionResult, error) {
	return &domain.PredictionResult{
		Items:      []domain.PredictedItem{{Name: "Poha", QuantityGrams: 150, Calories: 250, Protein: 5, Carbs: 45, Fat: 6}},
		Confidence: 0.8,
	}, nil
}

func setupTestDB(t *testing.T) *mongo.Database {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping end-to-end test in short mode")
	}
	ctx := context.Background()

	container, err := mongodb.Run(ctx, "mongo:7")
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	endpoint, err := container.ConnectionString(ctx)
	require.NoError(t, err)

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(endpoint))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Disconnect(ctx) })

	return client.Database("fitkit_e2e")
}

func TestGoldenPath(t *testing.T) {
	db := setupTestDB(t)
	mr := miniredis.RunT(t)
	redisClient := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer redisClient.Close()

	cfg := &config.Config{}
	cfg.Server.MaxUploadSizeMB = 10
	cfg.JWT.Secret = "test-secret-key-123"
	cfg.JWT.AccessTokenExpiry = time.Hour
	cfg.JWT.RefreshTokenExpiry = 24 * time.Hour

	files := &recordingFileRepo{}
	app := NewApp(AppDependencies{
		Config:      cfg,
		MongoDB:     db,
		RedisClient: redisClient,
		FileRepo:    files,
		Predictor:   fixedPredictor{},
	})

	do := func(req *http.Request, token string) (*http.Response, envelope) {
		t.Helper()
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		raw, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		var env envelope
		require.NoError(t, json.Unmarshal(raw, &env), string(raw))
		return resp, env
	}
	request := func(method, path, token string, body any, headers ...string) (*http.Response, envelope) {
		t.Helper()
		var r io.Reader
		if body != nil {
			b, _ := json.Marshal(body)
			r = bytes.NewReader(b)
		}
		req, _ := http.NewRequest(method, path, r)
		req.Header.Set("Content-Type", "application/json")
		for i := 0; i+1 < len(headers); i += 2 {
			req.Header.Set(headers[i], headers[i+1])
		}
		return do(req, token)
	}

	// health and unknown routes
	resp, env := request(http.MethodGet, "/api/health", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, env.Success)

	resp, env = request(http.MethodGet, "/api/nope", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.NotNil(t, env.Error)
	assert.Equal(t, "ROUTE_NOT_FOUND", env.Error.Code)

	// register
	resp, env = request(http.MethodPost, "/api/auth/register", "", fiber.Map{"name": "x"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
	assert.NotEmpty(t, env.Error.Details)

	registerBody := fiber.Map{
		"name": "Meera", "email": "meera@example.com", "password": "secret123",
		"age": 25, "weight": 70, "height": 175, "activityLevel": "moderate", "goal": "maintain",
	}
	resp, env = request(http.MethodPost, "/api/auth/register", "", registerBody)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var auth struct {
		User   domain.User      `json:"user"`
		Tokens domain.TokenPair `json:"tokens"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &auth))
	assert.Equal(t, 2595, auth.User.DailyCalorieTarget)
	assert.Equal(t, domain.GenderMale, auth.User.Gender)

	resp, env = request(http.MethodPost, "/api/auth/register", "", registerBody)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "DUPLICATE_ERROR", env.Error.Code)

	// login
	resp, _ = request(http.MethodPost, "/api/auth/login", "", fiber.Map{"email": "meera@example.com", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, env = request(http.MethodPost, "/api/auth/login", "", fiber.Map{"email": "MEERA@example.com", "password": "secret123"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(env.Data, &auth))
	token := auth.Tokens.AccessToken

	// protected routes need a token
	resp, _ = request(http.MethodGet, "/api/analytics/weekly", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// profile update recalculates the target
	resp, env = request(http.MethodPut, "/api/auth/profile", token, fiber.Map{"goal": "loss"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var profile domain.User
	require.NoError(t, json.Unmarshal(env.Data, &profile))
	assert.Equal(t, 2095, profile.DailyCalorieTarget)

	// upload image
	var form bytes.Buffer
	mw := multipart.NewWriter(&form)
	part, err := mw.CreatePart(textproto.MIMEHeader{
		"Content-Disposition": {`form-data; name="image"; filename="lunch.jpg"`},
		"Content-Type":        {"image/jpeg"},
	})
	require.NoError(t, err)
	_, _ = part.Write([]byte("fake-jpeg"))
	require.NoError(t, mw.Close())
	req, _ := http.NewRequest(http.MethodPost, "/api/meal/upload-image", &form)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	resp, env = do(req, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, files.keys, 1)
	assert.Contains(t, string(env.Data), "Poha")

	// add meal, replayed with the same correlation id
	now := time.Now().UTC()
	mealBody := fiber.Map{
		"mealType":      "lunch",
		"totalCalories": 600,
		"createdAt":     now.Format(time.RFC3339),
		"items": []fiber.Map{
			{"food": "Rice", "calories": 300, "protein": 6, "carbs": 66, "fat": 1, "quantity_g": 200},
			{"food": "Dal", "calories": 300, "protein": 18, "carbs": 40, "fat": 8, "quantity_g": 250},
		},
	}
	resp, env = request(http.MethodPost, "/api/meal/add", token, mealBody, "X-Correlation-ID", "corr-1")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var meal domain.Meal
	require.NoError(t, json.Unmarshal(env.Data, &meal))

	require.Eventually(t, func() bool { return len(mr.Keys()) > 0 }, time.Second, 10*time.Millisecond)
	resp, _ = request(http.MethodPost, "/api/meal/add", token, mealBody, "X-Correlation-ID", "corr-1")
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "true", resp.Header.Get("X-Idempotent-Replay"))

	resp, env = request(http.MethodGet, "/api/meal/day/"+now.Format("2006-01-02"), token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var meals []domain.Meal
	require.NoError(t, json.Unmarshal(env.Data, &meals))
	assert.Len(t, meals, 1)

	resp, _ = request(http.MethodGet, "/api/meal/day/yesterday", token, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// analytics
	resp, env = request(http.MethodGet, "/api/analytics/weekly", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var weekly domain.WeeklyAnalytics
	require.NoError(t, json.Unmarshal(env.Data, &weekly))
	require.Len(t, weekly.DailyStats, 7)
	assert.Equal(t, 600.0, weekly.DailyStats[6].TotalCalories)
	assert.Equal(t, 600.0, weekly.TotalCalories)

	resp, env = request(http.MethodGet, "/api/analytics/macros?period=month", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var dist domain.MacroDistribution
	require.NoError(t, json.Unmarshal(env.Data, &dist))
	assert.InDelta(t, 0.8, dist.Protein.Grams, 1e-9) // 24 g over 30 days

	resp, env = request(http.MethodGet, "/api/analytics/insights", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var report domain.InsightReport
	require.NoError(t, json.Unmarshal(env.Data, &report))
	assert.NotEmpty(t, report.Insights)

	// food search
	foodRepo := repository.NewMongoFoodRepository(db)
	require.NoError(t, foodRepo.Create(context.Background(), &domain.FoodItem{Name: "Paneer Tikka", Calories: 260, ServingSize: 100, Unit: "g"}))
	resp, env = request(http.MethodGet, "/api/meal/search?q=paneer", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(env.Data), "Paneer Tikka")

	resp, _ = request(http.MethodGet, "/api/meal/search", token, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// delete
	resp, env = request(http.MethodDelete, "/api/meal/"+meal.ID, token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp, env = request(http.MethodDelete, "/api/meal/"+meal.ID, token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp, env = request(http.MethodDelete, "/api/meal/not-an-id", token, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_ID", env.Error.Code)

	// refresh rotates, logout revokes
	resp, env = request(http.MethodPost, "/api/auth/refresh", "", fiber.Map{"refreshToken": auth.Tokens.RefreshToken})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var pair domain.TokenPair
	require.NoError(t, json.Unmarshal(env.Data, &pair))

	resp, _ = request(http.MethodPost, "/api/auth/refresh", "", fiber.Map{"refreshToken": auth.Tokens.RefreshToken})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, _ = request(http.MethodPost, "/api/auth/logout", "", fiber.Map{"refreshToken": pair.RefreshToken})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp, _ = request(http.MethodPost, "/api/auth/refresh", "", fiber.Map{"refreshToken": pair.RefreshToken})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// logout-all ends every remaining session
	resp, env = request(http.MethodPost, "/api/auth/login", "", fiber.Map{"email": registerBody["email"], "password": registerBody["password"]})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(env.Data, &auth))

	resp, _ = request(http.MethodPost, "/api/auth/logout-all", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp, env = request(http.MethodPost, "/api/auth/logout-all", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Logged out from all devices", env.Message)
	resp, _ = request(http.MethodPost, "/api/auth/refresh", "", fiber.Map{"refreshToken": auth.Tokens.RefreshToken})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
