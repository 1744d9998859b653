package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dheeraj1922d/Fitkit.ai-Backend/internal/domain"
	"github.com/dheeraj1922d/Fitkit.ai-Backend/internal/logger"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = bcrypt.DefaultCost

// dummyHash is compared against when the email is unknown so both failure
// paths take the same time.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("dummy"), bcryptCost)

// AuthService handles registration, login and the user's body profile
type AuthService struct {
	userRepo     domain.UserRepository
	tokenService *TokenService
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo domain.UserRepository, tokenService *TokenService) *AuthService {
	return &AuthService{
		userRepo:     userRepo,
		tokenService: tokenService,
	}
}

// RegisterInput carries a validated registration request
type RegisterInput struct {
	Name          string
	Email         string
	Password      string
	Age           int
	WeightKg      float64
	HeightCm      float64
	Gender        domain.Gender
	ActivityLevel domain.ActivityLevel
	Goal          domain.Goal
}

// ProfileUpdate lists the fields a user may change; nil means unchanged
type ProfileUpdate struct {
	Name          *string
	Age           *int
	WeightKg      *float64
	HeightCm      *float64
	Gender        *domain.Gender
	ActivityLevel *domain.ActivityLevel
	Goal          *domain.Goal
}

// AuthResult is returned on register and login
type AuthResult struct {
	User   *domain.User      `json:"user"`
	Tokens *domain.TokenPair `json:"tokens"`
}

// Register creates the account and derives its daily calorie target
func (s *AuthService) Register(ctx context.Context, in RegisterInput, client ClientInfo) (*AuthResult, error) {
	email := normalizeEmail(in.Email)

	if _, err := s.userRepo.GetByEmail(ctx, email); err == nil {
		return nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	gender := in.Gender
	if gender == "" {
		gender = domain.GenderMale
	}

	user := &domain.User{
		Name:          strings.TrimSpace(in.Name),
		Email:         email,
		PasswordHash:  string(hash),
		Age:           in.Age,
		WeightKg:      in.WeightKg,
		HeightCm:      in.HeightCm,
		Gender:        gender,
		ActivityLevel: in.ActivityLevel,
		Goal:          in.Goal,
	}
	user.RecalculateTarget()

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	tokens, err := s.tokenService.GenerateTokenPair(ctx, user, client)
	if err != nil {
		return nil, err
	}

	logger.Info("user registered", "user_id", user.ID, "daily_calorie_target", user.DailyCalorieTarget)
	return &AuthResult{User: user, Tokens: tokens}, nil
}

// Login checks the password. Unknown emails and wrong passwords fail the same way.
func (s *AuthService) Login(ctx context.Context, email, password string, client ClientInfo) (*AuthResult, error) {
	user, lookupErr := s.userRepo.GetByEmail(ctx, normalizeEmail(email))
	if lookupErr != nil && !errors.Is(lookupErr, domain.ErrNotFound) {
		return nil, fmt.Errorf("failed to find user: %w", lookupErr)
	}

	hashToCheck := dummyHash
	if lookupErr == nil {
		hashToCheck = []byte(user.PasswordHash)
	}
	compareErr := bcrypt.CompareHashAndPassword(hashToCheck, []byte(password))
	if lookupErr != nil || compareErr != nil {
		return nil, domain.ErrInvalidCredentials
	}

	tokens, err := s.tokenService.GenerateTokenPair(ctx, user, client)
	if err != nil {
		return nil, err
	}

	return &AuthResult{User: user, Tokens: tokens}, nil
}

// GetProfile returns the user
func (s *AuthService) GetProfile(ctx context.Context, userID string) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

// UpdateProfile applies the changed fields and recomputes the calorie
// target when any body field changed
func (s *AuthService) UpdateProfile(ctx context.Context, userID string, upd ProfileUpdate) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if upd.Name != nil {
		user.Name = strings.TrimSpace(*upd.Name)
	}

	bodyChanged := false
	if upd.Age != nil {
		user.Age = *upd.Age
		bodyChanged = true
	}
	if upd.WeightKg != nil {
		user.WeightKg = *upd.WeightKg
		bodyChanged = true
	}
	if upd.HeightCm != nil {
		user.HeightCm = *upd.HeightCm
		bodyChanged = true
	}
	if upd.Gender != nil {
		user.Gender = *upd.Gender
		bodyChanged = true
	}
	if upd.ActivityLevel != nil {
		user.ActivityLevel = *upd.ActivityLevel
		bodyChanged = true
	}
	if upd.Goal != nil {
		user.Goal = *upd.Goal
		bodyChanged = true
	}

	if bodyChanged {
		if user.Gender == "" {
			user.Gender = domain.GenderMale
		}
		user.RecalculateTarget()
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return user, nil
}

// Logout revokes the presented refresh token
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	return s.tokenService.Revoke(ctx, refreshToken)
}

// LogoutAll revokes every refresh token the user holds
func (s *AuthService) LogoutAll(ctx context.Context, userID string) error {
	if err := s.tokenService.RevokeAll(ctx, userID); err != nil {
		return fmt.Errorf("failed to revoke sessions: %w", err)
	}
	logger.Info("all sessions revoked", "user_id", userID)
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
