package service

import (
	"strings"
	"testing"
	"time"

	"github.com/dheeraj1922d/Fitkit.ai-Backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var insightNow = time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

func testProfile(target int, weight float64) domain.UserProfile {
	return domain.UserProfile{WeightKg: weight, HeightCm: 175, Age: 30, Gender: domain.GenderMale, DailyCalorieTarget: target}
}

// spreadMeals logs one meal per day for seven days, rotating meal types
func spreadMeals(perDay float64, protein float64) []domain.Meal {
	var meals []domain.Meal
	for i := 0; i < 7; i++ {
		meals = append(meals, meal(insightNow.AddDate(0, 0, -i), domain.MealTypes[i%4], perDay, item(protein, 0, 0)))
	}
	return meals
}

func isCalorieInsight(in domain.Insight) bool {
	return strings.Contains(in.Message, "calorie targets") ||
		strings.Contains(in.Message, "average daily intake")
}

func TestGenerateInsights_OverTarget(t *testing.T) {
	// 17780 kcal over the week, 2540/day against 2000
	meals := spreadMeals(2540, 120)

	insights, err := GenerateInsights(meals, testProfile(2000, 70))
	require.NoError(t, err)

	require.NotEmpty(t, insights)
	assert.Equal(t, domain.InsightWarning, insights[0].Type)
	assert.Contains(t, insights[0].Message, "27% above your target")
	assert.Contains(t, insights[0].Message, "(2540 cal)")
	assert.Equal(t, domain.IconWarning, insights[0].Icon)

	last := insights[len(insights)-1]
	assert.Equal(t, domain.InsightSuccess, last.Type)
	assert.Equal(t, "Great job! You're meeting your protein goals.", last.Message)
	assert.Equal(t, domain.IconCheck, last.Icon)
}

func TestGenerateInsights_ProteinGap(t *testing.T) {
	// recommended 112g, eating 50g/day
	meals := spreadMeals(2000, 50)

	insights, err := GenerateInsights(meals, testProfile(2000, 70))
	require.NoError(t, err)

	last := insights[len(insights)-1]
	assert.Equal(t, domain.InsightInfo, last.Type)
	assert.Equal(t, "Increase protein intake by 62g to optimize muscle growth and satiety.", last.Message)
	assert.Equal(t, domain.IconMuscle, last.Icon)
}

func TestGenerateInsights_ProteinBetweenThresholds(t *testing.T) {
	// 100g/day sits between 80% (89.6g) and 100% (112g) of the recommendation
	insights, err := GenerateInsights(spreadMeals(2000, 100), testProfile(2000, 70))
	require.NoError(t, err)

	for _, in := range insights {
		assert.NotContains(t, in.Message, "protein")
	}
}

func TestGenerateInsights_CalorieInsightIsExclusive(t *testing.T) {
	tests := []struct {
		perDay float64
		want   domain.InsightType
	}{
		{2201, domain.InsightWarning},
		{2200, domain.InsightSuccess},
		{1800, domain.InsightSuccess},
		{1799, domain.InsightInfo},
		{0, domain.InsightInfo},
	}

	for _, tt := range tests {
		insights, err := GenerateInsights(spreadMeals(tt.perDay, 0), testProfile(2000, 70))
		require.NoError(t, err)

		count := 0
		for _, in := range insights {
			if isCalorieInsight(in) {
				count++
			}
		}
		assert.Equal(t, tt.want, insights[0].Type, "perDay=%v", tt.perDay)
		assert.Equal(t, 1, count, "perDay=%v", tt.perDay)
		assert.GreaterOrEqual(t, len(insights), 2)
		assert.LessOrEqual(t, len(insights), 4)
	}
}

func TestGenerateInsights_EmptyMeals(t *testing.T) {
	insights, err := GenerateInsights(nil, testProfile(2000, 70))
	require.NoError(t, err)

	require.Len(t, insights, 2)
	assert.Equal(t, domain.InsightInfo, insights[0].Type)
	assert.Contains(t, insights[0].Message, "(0 cal) is below your target")
	assert.Equal(t, "Increase protein intake by 112g to optimize muscle growth and satiety.", insights[1].Message)
}

func TestGenerateInsights_MealTypeTieBreak(t *testing.T) {
	meals := []domain.Meal{
		meal(insightNow, domain.MealDinner, 700),
		meal(insightNow, domain.MealLunch, 700),
		meal(insightNow, domain.MealSnack, 100),
	}

	insights, err := GenerateInsights(meals, testProfile(2000, 0))
	require.NoError(t, err)

	require.Len(t, insights, 3)
	assert.Equal(t, domain.InsightWarning, insights[1].Type)
	assert.Equal(t, "Your lunch calories are consistently high. Consider distributing calories more evenly throughout the day.", insights[1].Message)
}

func TestHeaviestMealType(t *testing.T) {
	mt, total := heaviestMealType([]domain.Meal{
		meal(insightNow, domain.MealSnack, 300),
		meal(insightNow, domain.MealBreakfast, 300),
		meal(insightNow, "brunch", 5000),
	})
	assert.Equal(t, domain.MealBreakfast, mt)
	assert.Equal(t, 300.0, total)

	mt, total = heaviestMealType(nil)
	assert.Equal(t, domain.MealBreakfast, mt)
	assert.Zero(t, total)
}

func TestGenerateInsights_InvalidProfile(t *testing.T) {
	_, err := GenerateInsights(nil, testProfile(0, 70))
	assert.ErrorIs(t, err, domain.ErrInvalidProfile)

	_, err = ComputeTrends(nil, testProfile(-5, 70), insightNow)
	assert.ErrorIs(t, err, domain.ErrInvalidProfile)
}

func TestComputeTrends(t *testing.T) {
	early := insightNow.Add(-5 * 24 * time.Hour)
	late := insightNow.Add(-24 * time.Hour)

	tests := []struct {
		name        string
		first, last float64
		want        domain.Trend
	}{
		{"increasing", 1000, 1200, domain.TrendIncreasing},
		{"decreasing", 1000, 800, domain.TrendDecreasing},
		{"stable", 1000, 1050, domain.TrendStable},
		{"empty first half", 0, 500, domain.TrendIncreasing},
		{"empty", 0, 0, domain.TrendStable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meals := []domain.Meal{
				meal(early, domain.MealLunch, tt.first),
				meal(late, domain.MealLunch, tt.last),
			}
			report, err := ComputeTrends(meals, testProfile(2000, 70), insightNow)
			require.NoError(t, err)
			assert.Equal(t, tt.want, report.CaloriesTrend)
			assert.Equal(t, domain.TrendStable, report.ProteinTrend)
		})
	}
}

func TestComputeTrends_SplitBoundary(t *testing.T) {
	split := insightNow.Add(-84 * time.Hour)
	meals := []domain.Meal{meal(split, domain.MealLunch, 700)}

	report, err := ComputeTrends(meals, testProfile(2000, 70), insightNow)
	require.NoError(t, err)
	assert.Equal(t, domain.TrendIncreasing, report.CaloriesTrend)
}

func TestComputeTrends_GoalProgress(t *testing.T) {
	tests := []struct {
		perDay float64
		want   int
	}{
		{0, 0},
		{1000, 50},
		{1999, 100},
		{6000, 100},
	}

	for _, tt := range tests {
		report, err := ComputeTrends(spreadMeals(tt.perDay, 0), testProfile(2000, 70), insightNow)
		require.NoError(t, err)
		assert.Equal(t, tt.want, report.GoalProgress, "perDay=%v", tt.perDay)
	}
}
