package service

import (
	"context"
	"testing"

	"github.com/dheeraj1922d/Fitkit.ai-Backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthService() (*AuthService, *memUserRepo) {
	users, tokens := newMemUserRepo(), newMemRefreshRepo()
	return NewAuthService(users, newTestTokenService(users, tokens)), users
}

func registerInput() RegisterInput {
	return RegisterInput{
		Name:          "  Ravi  ",
		Email:         " Ravi@Example.COM ",
		Password:      "secret123",
		Age:           25,
		WeightKg:      70,
		HeightCm:      175,
		ActivityLevel: domain.ActivityModerate,
		Goal:          domain.GoalMaintain,
	}
}

func TestAuthService_Register(t *testing.T) {
	svc, users := newTestAuthService()
	ctx := context.Background()

	res, err := svc.Register(ctx, registerInput(), ClientInfo{})
	require.NoError(t, err)

	assert.Equal(t, "Ravi", res.User.Name)
	assert.Equal(t, "ravi@example.com", res.User.Email)
	assert.Equal(t, domain.GenderMale, res.User.Gender)
	assert.Equal(t, 2595, res.User.DailyCalorieTarget)
	assert.NotEqual(t, "secret123", res.User.PasswordHash)
	assert.NotEmpty(t, res.Tokens.AccessToken)

	stored, err := users.GetByEmail(ctx, "ravi@example.com")
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, stored.ID)

	_, err = svc.Register(ctx, registerInput(), ClientInfo{})
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestAuthService_Login(t *testing.T) {
	svc, _ := newTestAuthService()
	ctx := context.Background()

	_, err := svc.Register(ctx, registerInput(), ClientInfo{})
	require.NoError(t, err)

	res, err := svc.Login(ctx, "RAVI@example.com", "secret123", ClientInfo{})
	require.NoError(t, err)
	assert.Equal(t, "ravi@example.com", res.User.Email)

	_, err = svc.Login(ctx, "ravi@example.com", "wrong", ClientInfo{})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = svc.Login(ctx, "nobody@example.com", "secret123", ClientInfo{})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_UpdateProfile(t *testing.T) {
	svc, _ := newTestAuthService()
	ctx := context.Background()

	res, err := svc.Register(ctx, registerInput(), ClientInfo{})
	require.NoError(t, err)

	t.Run("name only keeps target", func(t *testing.T) {
		name := "Ravi K"
		user, err := svc.UpdateProfile(ctx, res.User.ID, ProfileUpdate{Name: &name})
		require.NoError(t, err)
		assert.Equal(t, "Ravi K", user.Name)
		assert.Equal(t, 2595, user.DailyCalorieTarget)
	})

	t.Run("goal change recalculates", func(t *testing.T) {
		goal := domain.GoalLoss
		user, err := svc.UpdateProfile(ctx, res.User.ID, ProfileUpdate{Goal: &goal})
		require.NoError(t, err)
		assert.Equal(t, 2095, user.DailyCalorieTarget)

		fetched, err := svc.GetProfile(ctx, res.User.ID)
		require.NoError(t, err)
		assert.Equal(t, 2095, fetched.DailyCalorieTarget)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := svc.UpdateProfile(ctx, "missing", ProfileUpdate{})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestAuthService_Logout(t *testing.T) {
	svc, _ := newTestAuthService()
	ctx := context.Background()

	res, err := svc.Register(ctx, registerInput(), ClientInfo{})
	require.NoError(t, err)
	require.NoError(t, svc.Logout(ctx, res.Tokens.RefreshToken))

	_, err = svc.tokenService.Refresh(ctx, res.Tokens.RefreshToken, ClientInfo{})
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestAuthService_LogoutAll(t *testing.T) {
	svc, _ := newTestAuthService()
	ctx := context.Background()

	reg, err := svc.Register(ctx, registerInput(), ClientInfo{UserAgent: "phone"})
	require.NoError(t, err)
	login, err := svc.Login(ctx, "ravi@example.com", "secret123", ClientInfo{UserAgent: "laptop"})
	require.NoError(t, err)

	require.NoError(t, svc.LogoutAll(ctx, reg.User.ID))

	for _, token := range []string{reg.Tokens.RefreshToken, login.Tokens.RefreshToken} {
		_, err = svc.tokenService.Refresh(ctx, token, ClientInfo{})
		assert.ErrorIs(t, err, domain.ErrInvalidToken)
	}

	// a fresh login still works
	_, err = svc.Login(ctx, "ravi@example.com", "secret123", ClientInfo{})
	require.NoError(t, err)
}
