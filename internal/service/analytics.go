package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dheeraj1922d/Fitkit.ai-Backend/internal/domain"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

// AnalyticsService serves the weekly report, macro distribution and
// insights. Every call recomputes from the meals of its own window.
type AnalyticsService struct {
	mealRepo domain.MealRepository
	userRepo domain.UserRepository
	tracer   trace.Tracer
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(mealRepo domain.MealRepository, userRepo domain.UserRepository) *AnalyticsService {
	return &AnalyticsService{
		mealRepo: mealRepo,
		userRepo: userRepo,
		tracer:   otel.Tracer("analytics"),
	}
}

// GetWeeklyAnalytics returns seven zero-filled daily stats ending today plus
// the week's summary
func (s *AnalyticsService) GetWeeklyAnalytics(ctx context.Context, userID string, now time.Time) (*domain.WeeklyAnalytics, error) {
	ctx, span := s.tracer.Start(ctx, "analytics.GetWeeklyAnalytics",
		trace.WithAttributes(attribute.String("user.id", userID)),
	)
	defer span.End()

	window := CalendarWeek(now)
	meals, err := s.mealRepo.FindByUserAndRange(ctx, userID, window.Start, window.End)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to fetch meals: %w", err)
	}
	span.SetAttributes(attribute.Int("meals.count", len(meals)))

	stats := ComputeDailyStats(meals, window.Start)
	return &domain.WeeklyAnalytics{
		DailyStats:    stats,
		PeriodSummary: ComputePeriodSummary(stats),
	}, nil
}

// GetMacroDistribution averages macros over the trailing week or month
func (s *AnalyticsService) GetMacroDistribution(ctx context.Context, userID string, period domain.AnalyticsPeriod, now time.Time) (*domain.MacroDistribution, error) {
	ctx, span := s.tracer.Start(ctx, "analytics.GetMacroDistribution",
		trace.WithAttributes(
			attribute.String("user.id", userID),
			attribute.String("analytics.period", string(period)),
		),
	)
	defer span.End()

	days := period.Days()
	window := TrailingWindow(now, days)
	meals, err := s.mealRepo.FindByUserAndRange(ctx, userID, window.Start, window.End)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to fetch meals: %w", err)
	}

	dist := ComputeMacroDistribution(meals, days)
	return &dist, nil
}

// GetInsights loads the profile and the trailing week concurrently and runs
// the insight engine over them
func (s *AnalyticsService) GetInsights(ctx context.Context, userID string, now time.Time) (*domain.InsightReport, error) {
	ctx, span := s.tracer.Start(ctx, "analytics.GetInsights",
		trace.WithAttributes(attribute.String("user.id", userID)),
	)
	defer span.End()

	window := TrailingWindow(now, DaysPerWeek)

	var (
		user  *domain.User
		meals []domain.Meal
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		u, err := s.userRepo.GetByID(gCtx, userID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrInvalidID) {
				return domain.ErrProfileNotFound
			}
			return fmt.Errorf("failed to fetch profile: %w", err)
		}
		user = u
		return nil
	})

	g.Go(func() error {
		m, err := s.mealRepo.FindByUserAndRange(gCtx, userID, window.Start, window.End)
		if err != nil {
			return fmt.Errorf("failed to fetch meals: %w", err)
		}
		meals = m
		return nil
	})

	if err := g.Wait(); err != nil {
		span.RecordError(err)
		return nil, err
	}

	profile := user.Profile()
	insights, err := GenerateInsights(meals, profile)
	if err != nil {
		return nil, err
	}
	trends, err := ComputeTrends(meals, profile, now)
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("insights.count", len(insights)))
	return &domain.InsightReport{
		Insights: insights,
		Trends:   trends,
	}, nil
}
