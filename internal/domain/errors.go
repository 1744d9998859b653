package domain

import "errors"

// Common errors
var (
	ErrNotFound  = errors.New("record not found")
	ErrInvalidID = errors.New("invalid id format")

	// Analytics
	ErrProfileNotFound = errors.New("user profile not found")
	ErrInvalidProfile  = errors.New("user profile has no usable daily calorie target")
	ErrInvalidWindow   = errors.New("invalid window: end is before start")

	// Auth
	ErrEmailTaken         = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")

	// Meals
	ErrInvalidMeal           = errors.New("invalid meal")
	ErrDuplicateMeal         = errors.New("meal with this client id already exists")
	ErrUnsupportedImage      = errors.New("only jpeg, png and webp images are allowed")
	ErrPredictionUnavailable = errors.New("failed to get predictions from ML service")
)
