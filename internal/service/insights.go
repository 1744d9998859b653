package service

import (
	"fmt"
	"math"
	"time"

	"github.com/dheeraj1922d/Fitkit.ai-Backend/internal/domain"
)

const (
	calorieUpperBand = 1.10
	calorieLowerBand = 0.90

	// A single meal type holding more than this share of the daily average
	// triggers a distribution warning.
	mealTypeShareLimit = 0.40

	proteinPerKg        = 1.6
	proteinLowThreshold = 0.8

	trendBand = 0.10
)

// halfWeek splits the insight window for trend detection
const halfWeek = 84 * time.Hour

// GenerateInsights returns, in order: one calorie insight, at most one
// meal-type warning, and at most one protein insight.
func GenerateInsights(meals []domain.Meal, profile domain.UserProfile) ([]domain.Insight, error) {
	if profile.DailyCalorieTarget <= 0 {
		return nil, domain.ErrInvalidProfile
	}

	target := float64(profile.DailyCalorieTarget)
	avgCalories := averageDailyCalories(meals)

	insights := make([]domain.Insight, 0, 3)

	switch {
	case avgCalories > target*calorieUpperBand:
		over := math.Round((avgCalories - target) / target * 100)
		insights = append(insights, domain.Insight{
			Type: domain.InsightWarning,
			Message: fmt.Sprintf("Your average daily intake (%d cal) is %d%% above your target. Consider smaller portions.",
				int(math.Round(avgCalories)), int(over)),
			Icon: domain.IconWarning,
		})
	case avgCalories < target*calorieLowerBand:
		insights = append(insights, domain.Insight{
			Type: domain.InsightInfo,
			Message: fmt.Sprintf("Your average daily intake (%d cal) is below your target. You might need to eat more to reach your goals.",
				int(math.Round(avgCalories))),
			Icon: domain.IconIdea,
		})
	default:
		insights = append(insights, domain.Insight{
			Type:    domain.InsightSuccess,
			Message: "Great job! You're consistently meeting your calorie targets.",
			Icon:    domain.IconCheck,
		})
	}

	if heaviest, total := heaviestMealType(meals); total > avgCalories*mealTypeShareLimit {
		insights = append(insights, domain.Insight{
			Type:    domain.InsightWarning,
			Message: fmt.Sprintf("Your %s calories are consistently high. Consider distributing calories more evenly throughout the day.", heaviest),
			Icon:    domain.IconWarning,
		})
	}

	var totalProtein float64
	for i := range meals {
		p, _, _ := meals[i].MacroTotals()
		totalProtein += p
	}
	avgProtein := totalProtein / DaysPerWeek
	recommended := profile.WeightKg * proteinPerKg

	switch {
	case avgProtein < recommended*proteinLowThreshold:
		insights = append(insights, domain.Insight{
			Type:    domain.InsightInfo,
			Message: fmt.Sprintf("Increase protein intake by %dg to optimize muscle growth and satiety.", int(math.Round(recommended-avgProtein))),
			Icon:    domain.IconMuscle,
		})
	case avgProtein >= recommended:
		insights = append(insights, domain.Insight{
			Type:    domain.InsightSuccess,
			Message: "Great job! You're meeting your protein goals.",
			Icon:    domain.IconCheck,
		})
	}

	return insights, nil
}

// ComputeTrends compares the two halves of the week and reports progress
// towards the daily target.
func ComputeTrends(meals []domain.Meal, profile domain.UserProfile, now time.Time) (domain.TrendReport, error) {
	if profile.DailyCalorieTarget <= 0 {
		return domain.TrendReport{}, domain.ErrInvalidProfile
	}

	split := now.Add(-halfWeek)
	var firstHalf, secondHalf float64
	for i := range meals {
		if meals[i].CreatedAt.Before(split) {
			firstHalf += meals[i].TotalCalories
		} else {
			secondHalf += meals[i].TotalCalories
		}
	}
	halfDays := halfWeek.Hours() / 24
	firstAvg := firstHalf / halfDays
	secondAvg := secondHalf / halfDays

	trend := domain.TrendStable
	switch {
	case secondAvg > firstAvg*(1+trendBand):
		trend = domain.TrendIncreasing
	case secondAvg < firstAvg*(1-trendBand):
		trend = domain.TrendDecreasing
	}

	progress := math.Round(averageDailyCalories(meals) / float64(profile.DailyCalorieTarget) * 100)
	progress = math.Max(0, math.Min(progress, 100))

	return domain.TrendReport{
		CaloriesTrend: trend,
		// Not derived from data yet
		ProteinTrend: domain.TrendStable,
		GoalProgress: int(progress),
	}, nil
}

func averageDailyCalories(meals []domain.Meal) float64 {
	var total float64
	for i := range meals {
		total += meals[i].TotalCalories
	}
	return total / DaysPerWeek
}

// heaviestMealType folds left to right over domain.MealTypes so the earlier
// type wins ties. Unknown meal types are not counted.
func heaviestMealType(meals []domain.Meal) (domain.MealType, float64) {
	var totals [len(domain.MealTypes)]float64
	for i := range meals {
		if idx := meals[i].MealType.Index(); idx >= 0 {
			totals[idx] += meals[i].TotalCalories
		}
	}

	best := 0
	for i := 1; i < len(totals); i++ {
		if totals[i] > totals[best] {
			best = i
		}
	}
	return domain.MealTypes[best], totals[best]
}
