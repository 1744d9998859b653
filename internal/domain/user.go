package domain

import (
	"context"
	"time"
)

// Gender is the sex used by the Mifflin-St Jeor constant
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// ActivityLevel scales BMR into TDEE
type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very_active"
)

// Goal adjusts TDEE into the daily calorie target
type Goal string

const (
	GoalLoss     Goal = "loss"
	GoalMaintain Goal = "maintain"
	GoalGain     Goal = "gain"
)

// User is a registered account together with the body profile the
// analytics are computed against.
type User struct {
	ID                 string        `bson:"_id,omitempty" json:"id"`
	Name               string        `bson:"name" json:"name"`
	Email              string        `bson:"email" json:"email"`
	PasswordHash       string        `bson:"password" json:"-"`
	Age                int           `bson:"age" json:"age"`
	WeightKg           float64       `bson:"weight" json:"weight"`
	HeightCm           float64       `bson:"height" json:"height"`
	Gender             Gender        `bson:"gender" json:"gender"`
	ActivityLevel      ActivityLevel `bson:"activity_level" json:"activityLevel"`
	Goal               Goal          `bson:"goal" json:"goal"`
	DailyCalorieTarget int           `bson:"daily_calorie_target" json:"dailyCalorieTarget"`
	CreatedAt          time.Time     `bson:"created_at" json:"createdAt"`
	UpdatedAt          time.Time     `bson:"updated_at" json:"updatedAt"`
}

// Profile returns the read-only body profile used by the insight engine
func (u *User) Profile() UserProfile {
	return UserProfile{
		WeightKg:           u.WeightKg,
		HeightCm:           u.HeightCm,
		Age:                u.Age,
		Gender:             u.Gender,
		ActivityLevel:      u.ActivityLevel,
		Goal:               u.Goal,
		DailyCalorieTarget: u.DailyCalorieTarget,
	}
}

// RecalculateTarget refreshes DailyCalorieTarget from the current body fields
func (u *User) RecalculateTarget() {
	u.DailyCalorieTarget = CalculateDailyCalorieTarget(u.Profile())
}

// UserProfile is the subset of a user the nutrition formulas need
type UserProfile struct {
	WeightKg           float64
	HeightCm           float64
	Age                int
	Gender             Gender
	ActivityLevel      ActivityLevel
	Goal               Goal
	DailyCalorieTarget int
}

// UserRepository defines operations for managing users
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	// GetByEmail returns the user including the password hash
	GetByEmail(ctx context.Context, email string) (*User, error)
	Update(ctx context.Context, user *User) error
	GetAll(ctx context.Context) ([]*User, error)
}
