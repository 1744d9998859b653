package domain

// DailyStat is the rollup of one calendar day (UTC)
type DailyStat struct {
	Date          string  `json:"date"` // 2006-01-02
	TotalCalories float64 `json:"totalCalories"`
	Protein       float64 `json:"protein"`
	Carbs         float64 `json:"carbs"`
	Fat           float64 `json:"fat"`
}

// MacroAverages holds average daily grams per macro
type MacroAverages struct {
	Protein float64 `json:"protein"`
	Carbs   float64 `json:"carbs"`
	Fat     float64 `json:"fat"`
}

// PeriodSummary is the whole-week rollup of the daily stats
type PeriodSummary struct {
	AverageCalories   float64       `json:"averageCalories"`
	TotalCalories     float64       `json:"totalCalories"`
	MacroDistribution MacroAverages `json:"macroDistribution"`
}

// WeeklyAnalytics is the response of the weekly report
type WeeklyAnalytics struct {
	DailyStats []DailyStat `json:"dailyStats"`
	PeriodSummary
}

// MacroShare describes one macro's daily average
type MacroShare struct {
	Grams      float64 `json:"grams"`
	Calories   float64 `json:"calories"`
	Percentage float64 `json:"percentage"`
}

// MacroDistribution is the per-macro split of average daily macro calories
type MacroDistribution struct {
	Protein MacroShare `json:"protein"`
	Carbs   MacroShare `json:"carbs"`
	Fat     MacroShare `json:"fat"`
}

// AnalyticsPeriod selects the macro distribution window
type AnalyticsPeriod string

const (
	PeriodWeek  AnalyticsPeriod = "week"
	PeriodMonth AnalyticsPeriod = "month"
)

// ParseAnalyticsPeriod maps a query value onto a period, defaulting to week
func ParseAnalyticsPeriod(s string) AnalyticsPeriod {
	if AnalyticsPeriod(s) == PeriodMonth {
		return PeriodMonth
	}
	return PeriodWeek
}

// Days returns the number of days the period averages over
func (p AnalyticsPeriod) Days() int {
	if p == PeriodMonth {
		return 30
	}
	return 7
}

// InsightType classifies an insight for display
type InsightType string

const (
	InsightWarning InsightType = "warning"
	InsightInfo    InsightType = "info"
	InsightSuccess InsightType = "success"
)

// Insight icons
const (
	IconWarning = "⚠️"
	IconIdea    = "💡"
	IconMuscle  = "💪"
	IconCheck   = "✅"
)

// Insight is one qualitative observation about the user's week
type Insight struct {
	Type    InsightType `json:"type"`
	Message string      `json:"message"`
	Icon    string      `json:"icon"`
}

// Trend direction values
type Trend string

const (
	TrendIncreasing Trend = "increasing"
	TrendDecreasing Trend = "decreasing"
	TrendStable     Trend = "stable"
)

// TrendReport compares the two halves of the week and the target
type TrendReport struct {
	CaloriesTrend Trend `json:"caloriesTrend"`
	ProteinTrend  Trend `json:"proteinTrend"`
	GoalProgress  int   `json:"goalProgress"` // 0-100
}

// InsightReport is the response of the insights endpoint
type InsightReport struct {
	Insights []Insight   `json:"insights"`
	Trends   TrendReport `json:"trends"`
}
