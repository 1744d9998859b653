package service

import (
	"math"
	"time"

	"github.com/dheeraj1922d/Fitkit.ai-Backend/internal/domain"
)

// DaysPerWeek is the fixed divisor for weekly averages. Days without meals
// count as zero.
const DaysPerWeek = 7

// ComputeDailyStats buckets meals into the seven UTC days starting at start.
// Every day is present even without meals; meals outside the seven days are
// ignored. Calories come from Meal.TotalCalories, macros from the items.
func ComputeDailyStats(meals []domain.Meal, start time.Time) []domain.DailyStat {
	first := StartOfDay(start)
	stats := make([]domain.DailyStat, DaysPerWeek)
	index := make(map[string]int, DaysPerWeek)
	for i := range stats {
		key := DayKey(first.AddDate(0, 0, i))
		stats[i].Date = key
		index[key] = i
	}

	for i := range meals {
		meal := &meals[i]
		pos, ok := index[DayKey(meal.CreatedAt)]
		if !ok {
			continue
		}
		protein, carbs, fat := meal.MacroTotals()
		stats[pos].TotalCalories += meal.TotalCalories
		stats[pos].Protein += protein
		stats[pos].Carbs += carbs
		stats[pos].Fat += fat
	}

	for i := range stats {
		stats[i].TotalCalories = math.Round(stats[i].TotalCalories)
		stats[i].Protein = domain.Round1(stats[i].Protein)
		stats[i].Carbs = domain.Round1(stats[i].Carbs)
		stats[i].Fat = domain.Round1(stats[i].Fat)
	}

	return stats
}

// ComputePeriodSummary rolls the daily stats up into weekly totals and averages
func ComputePeriodSummary(stats []domain.DailyStat) domain.PeriodSummary {
	var total, protein, carbs, fat float64
	for _, s := range stats {
		total += s.TotalCalories
		protein += s.Protein
		carbs += s.Carbs
		fat += s.Fat
	}

	return domain.PeriodSummary{
		TotalCalories:   total,
		AverageCalories: math.Round(total / DaysPerWeek),
		MacroDistribution: domain.MacroAverages{
			Protein: domain.Round1(protein / DaysPerWeek),
			Carbs:   domain.Round1(carbs / DaysPerWeek),
			Fat:     domain.Round1(fat / DaysPerWeek),
		},
	}
}

// ComputeMacroDistribution averages macro grams over periodDays and splits
// the resulting macro calories into percentages. All values are zero when
// the meals carry no macros.
func ComputeMacroDistribution(meals []domain.Meal, periodDays int) domain.MacroDistribution {
	if periodDays <= 0 {
		periodDays = DaysPerWeek
	}

	var protein, carbs, fat float64
	for i := range meals {
		p, c, f := meals[i].MacroTotals()
		protein += p
		carbs += c
		fat += f
	}

	days := float64(periodDays)
	protein /= days
	carbs /= days
	fat /= days

	proteinCal := protein * domain.CaloriesPerGramProtein
	carbsCal := carbs * domain.CaloriesPerGramCarbs
	fatCal := fat * domain.CaloriesPerGramFat
	totalCal := proteinCal + carbsCal + fatCal

	share := func(grams, cal float64) domain.MacroShare {
		s := domain.MacroShare{
			Grams:    domain.Round1(grams),
			Calories: math.Round(cal),
		}
		if totalCal > 0 {
			s.Percentage = domain.Round1(cal / totalCal * 100)
		}
		return s
	}

	return domain.MacroDistribution{
		Protein: share(protein, proteinCal),
		Carbs:   share(carbs, carbsCal),
		Fat:     share(fat, fatCal),
	}
}
