package repository

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/dheeraj1922d/Fitkit.ai-Backend/internal/domain"
)

const (
	foodSearchKeyPrefix = "food:search:"
	foodSearchCacheTTL  = 10 * time.Minute
)

// CachedFoodRepository wraps MongoFoodRepository with Redis caching of
// search results. The catalogue is near-static so writes only flush the
// search keys.
type CachedFoodRepository struct {
	mongo domain.FoodRepository
	cache *RedisCacheRepository
}

// NewCachedFoodRepository creates a new cached food repository
func NewCachedFoodRepository(mongo domain.FoodRepository, cache *RedisCacheRepository) *CachedFoodRepository {
	return &CachedFoodRepository{
		mongo: mongo,
		cache: cache,
	}
}

func foodSearchKey(query string, limit int) string {
	sum := sha1.Sum([]byte(strings.ToLower(strings.TrimSpace(query))))
	return fmt.Sprintf("%s%d:%s", foodSearchKeyPrefix, limit, hex.EncodeToString(sum[:]))
}

// Search serves from cache when possible
func (r *CachedFoodRepository) Search(ctx context.Context, query string, limit int) ([]domain.FoodItem, error) {
	key := foodSearchKey(query, limit)

	var foods []domain.FoodItem
	if err := r.cache.Get(ctx, key, &foods); err == nil {
		return foods, nil
	}

	result, err := r.mongo.Search(ctx, query, limit)
	if err != nil {
		return nil, err
	}

	// Store in cache (ignore cache errors)
	_ = r.cache.Set(ctx, key, result, foodSearchCacheTTL)

	return result, nil
}

// Create inserts a food item and flushes cached searches
func (r *CachedFoodRepository) Create(ctx context.Context, food *domain.FoodItem) error {
	if err := r.mongo.Create(ctx, food); err != nil {
		return err
	}
	_ = r.cache.DeleteByPattern(ctx, foodSearchKeyPrefix+"*")
	return nil
}

func (r *CachedFoodRepository) Count(ctx context.Context) (int64, error) {
	return r.mongo.Count(ctx)
}
