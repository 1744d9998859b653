package domain

import "math"

// Energy per gram of each macro (kcal)
const (
	CaloriesPerGramProtein = 4.0
	CaloriesPerGramCarbs   = 4.0
	CaloriesPerGramFat     = 9.0
)

var activityMultipliers = map[ActivityLevel]float64{
	ActivitySedentary:  1.2,
	ActivityLight:      1.375,
	ActivityModerate:   1.55,
	ActivityActive:     1.725,
	ActivityVeryActive: 1.9,
}

var goalAdjustments = map[Goal]int{
	GoalLoss:     -500,
	GoalMaintain: 0,
	GoalGain:     500,
}

// ValidActivityLevel reports whether level has a TDEE multiplier
func ValidActivityLevel(level ActivityLevel) bool {
	_, ok := activityMultipliers[level]
	return ok
}

// ValidGoal reports whether goal has a calorie adjustment
func ValidGoal(goal Goal) bool {
	_, ok := goalAdjustments[goal]
	return ok
}

// CalculateBMR estimates resting energy expenditure with Mifflin-St Jeor.
// An empty gender is treated as male.
func CalculateBMR(weightKg, heightCm float64, age int, gender Gender) int {
	bmr := 10*weightKg + 6.25*heightCm - 5*float64(age)
	if gender == GenderFemale {
		bmr -= 161
	} else {
		bmr += 5
	}
	return int(math.Round(bmr))
}

// CalculateTDEE scales BMR by the activity multiplier. Unknown levels use
// the moderate multiplier, the registration default.
func CalculateTDEE(bmr int, level ActivityLevel) int {
	mult, ok := activityMultipliers[level]
	if !ok {
		mult = activityMultipliers[ActivityModerate]
	}
	return int(math.Round(float64(bmr) * mult))
}

// CalculateDailyCalorieTarget derives the daily target from a body profile
func CalculateDailyCalorieTarget(p UserProfile) int {
	bmr := CalculateBMR(p.WeightKg, p.HeightCm, p.Age, p.Gender)
	tdee := CalculateTDEE(bmr, p.ActivityLevel)
	return tdee + goalAdjustments[p.Goal]
}

// CalculateBMI returns weight / height(m)^2 rounded to one decimal
func CalculateBMI(weightKg, heightCm float64) float64 {
	if heightCm <= 0 {
		return 0
	}
	h := heightCm / 100
	return Round1(weightKg / (h * h))
}

// BMICategory buckets a BMI value
func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25:
		return "Normal"
	case bmi < 30:
		return "Overweight"
	default:
		return "Obese"
	}
}

// Round1 rounds to one decimal place, half away from zero
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}
