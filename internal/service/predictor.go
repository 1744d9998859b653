package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"syscall"
	"time"

	"github.com/dheeraj1922d/Fitkit.ai-Backend/internal/domain"
	"github.com/dheeraj1922d/Fitkit.ai-Backend/internal/logger"
	"github.com/dheeraj1922d/Fitkit.ai-Backend/internal/telemetry"
	"go.opentelemetry.io/otel/attribute"
)

// MLServicePredictor calls the food recognition service over HTTP
type MLServicePredictor struct {
	baseURL     string
	httpClient  *http.Client
	predictions *telemetry.Counter
}

// NewMLServicePredictor creates a predictor for baseURL
func NewMLServicePredictor(baseURL string, timeout time.Duration) *MLServicePredictor {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &MLServicePredictor{
		baseURL:     strings.TrimRight(baseURL, "/"),
		httpClient:  &http.Client{Timeout: timeout},
		predictions: telemetry.NewCounter("fitkit.ml.predictions", "Food recognition requests by outcome"),
	}
}

type predictRequest struct {
	ImageURL string `json:"image_url"`
}

// Predict posts the image URL to /predict. When the service cannot be
// reached (refused or timed out) a fixed sample prediction is returned so
// the upload flow keeps working in development.
func (p *MLServicePredictor) Predict(ctx context.Context, imageURL string) (*domain.PredictionResult, error) {
	payload, err := json.Marshal(predictRequest{ImageURL: imageURL})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/predict", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		if isUnreachable(err) {
			logger.Warn("ML service unavailable, returning mock prediction", "error", err)
			p.record(ctx, "mock")
			return mockPrediction(), nil
		}
		logger.Error("ML service request failed", "error", err)
		p.record(ctx, "error")
		return nil, domain.ErrPredictionUnavailable
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		p.record(ctx, "error")
		return nil, fmt.Errorf("%w: %v", domain.ErrPredictionUnavailable, err)
	}

	if resp.StatusCode != http.StatusOK {
		logger.Error("ML service returned error", "status", resp.StatusCode, "body", string(body))
		p.record(ctx, "error")
		return nil, domain.ErrPredictionUnavailable
	}

	var result domain.PredictionResult
	if err := json.Unmarshal(body, &result); err != nil {
		p.record(ctx, "error")
		return nil, fmt.Errorf("%w: %v", domain.ErrPredictionUnavailable, err)
	}
	p.record(ctx, "ok")
	return &result, nil
}

func (p *MLServicePredictor) record(ctx context.Context, outcome string) {
	p.predictions.Inc(ctx, attribute.String("outcome", outcome))
}

func isUnreachable(err error) bool {
	if errors.Is(err, syscall.ECONNREFUSED) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func mockPrediction() *domain.PredictionResult {
	return &domain.PredictionResult{
		Items: []domain.PredictedItem{
			{Name: "Rice", QuantityGrams: 150, Calories: 195, Protein: 4.2, Carbs: 42.6, Fat: 0.4, Confidence: 0.85},
			{Name: "Chicken Breast", QuantityGrams: 120, Calories: 198, Protein: 37.2, Carbs: 0, Fat: 4.3, Confidence: 0.90},
			{Name: "Broccoli", QuantityGrams: 80, Calories: 27, Protein: 2.3, Carbs: 5.5, Fat: 0.3, Confidence: 0.75},
		},
		Confidence: 0.83,
	}
}
