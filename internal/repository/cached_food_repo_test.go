package repository

import (
	"context"
	"testing"

	"github.com/dheeraj1922d/Fitkit.ai-Backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFoodRepo struct {
	foods    []domain.FoodItem
	searches int
}

func (s *stubFoodRepo) Create(ctx context.Context, food *domain.FoodItem) error {
	s.foods = append(s.foods, *food)
	return nil
}

func (s *stubFoodRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(s.foods)), nil
}

func (s *stubFoodRepo) Search(ctx context.Context, query string, limit int) ([]domain.FoodItem, error) {
	s.searches++
	return s.foods, nil
}

func TestCachedFoodRepository_SearchHitsCache(t *testing.T) {
	cache, _ := newTestCache(t)
	stub := &stubFoodRepo{foods: []domain.FoodItem{{Name: "Oatmeal", Calories: 150}}}
	repo := NewCachedFoodRepository(stub, cache)
	ctx := context.Background()

	first, err := repo.Search(ctx, "oat", 20)
	require.NoError(t, err)
	second, err := repo.Search(ctx, " OAT ", 20)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, stub.searches)
}

func TestCachedFoodRepository_CreateFlushesSearches(t *testing.T) {
	cache, _ := newTestCache(t)
	stub := &stubFoodRepo{}
	repo := NewCachedFoodRepository(stub, cache)
	ctx := context.Background()

	_, err := repo.Search(ctx, "egg", 20)
	require.NoError(t, err)

	require.NoError(t, repo.Create(ctx, &domain.FoodItem{Name: "Egg"}))

	got, err := repo.Search(ctx, "egg", 20)
	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, 2, stub.searches)
}
