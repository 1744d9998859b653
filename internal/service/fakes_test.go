package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/dheeraj1922d/Fitkit.ai-Backend/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type memMealRepo struct {
	mu    sync.Mutex
	meals []domain.Meal
	err   error
	// lookupErr fails GetByClientID; onCreate runs before the unique check
	lookupErr error
	onCreate  func(r *memMealRepo)
	// last range requested, for window assertions
	lastStart, lastEnd time.Time
}

func (r *memMealRepo) Create(ctx context.Context, m *domain.Meal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.onCreate != nil {
		r.onCreate(r)
	}
	for i := range r.meals {
		if m.ClientID != "" && r.meals[i].UserID == m.UserID && r.meals[i].ClientID == m.ClientID {
			return domain.ErrDuplicateMeal
		}
	}
	m.ID = primitive.NewObjectID().Hex()
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}
	r.meals = append(r.meals, *m)
	return nil
}

func (r *memMealRepo) GetByID(ctx context.Context, id string) (*domain.Meal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.meals {
		if r.meals[i].ID == id {
			m := r.meals[i]
			return &m, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *memMealRepo) GetByClientID(ctx context.Context, userID, clientID string) (*domain.Meal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.lookupErr != nil {
		return nil, r.lookupErr
	}
	for i := range r.meals {
		if r.meals[i].UserID == userID && r.meals[i].ClientID == clientID {
			m := r.meals[i]
			return &m, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *memMealRepo) FindByUserAndRange(ctx context.Context, userID string, start, end time.Time) ([]domain.Meal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastStart, r.lastEnd = start, end
	if r.err != nil {
		return nil, r.err
	}
	var out []domain.Meal
	for _, m := range r.meals {
		if m.UserID == userID && !m.CreatedAt.Before(start) && !m.CreatedAt.After(end) {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *memMealRepo) DeleteByIDAndUser(ctx context.Context, id, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.meals {
		if r.meals[i].ID == id && r.meals[i].UserID == userID {
			r.meals = append(r.meals[:i], r.meals[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

type memUserRepo struct {
	mu    sync.Mutex
	users map[string]*domain.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*domain.User)}
}

func (r *memUserRepo) Create(ctx context.Context, u *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return domain.ErrEmailTaken
		}
	}
	u.ID = primitive.NewObjectID().Hex()
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *memUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *memUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *memUserRepo) Update(ctx context.Context, u *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[u.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *memUserRepo) GetAll(ctx context.Context) ([]*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.User
	for _, u := range r.users {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

type memRefreshRepo struct {
	mu     sync.Mutex
	tokens map[string]*domain.RefreshToken
}

func newMemRefreshRepo() *memRefreshRepo {
	return &memRefreshRepo{tokens: make(map[string]*domain.RefreshToken)}
}

func (r *memRefreshRepo) Create(ctx context.Context, t *domain.RefreshToken) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t.CreatedAt = time.Now()
	cp := *t
	r.tokens[t.TokenHash] = &cp
	return nil
}

func (r *memRefreshRepo) FindByHash(ctx context.Context, hash string) (*domain.RefreshToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tokens[hash]
	if !ok || t.Revoked {
		return nil, domain.ErrNotFound
	}
	cp := *t
	return &cp, nil
}

func (r *memRefreshRepo) RevokeByHash(ctx context.Context, hash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if t, ok := r.tokens[hash]; ok {
		t.Revoked = true
	}
	return nil
}

func (r *memRefreshRepo) RevokeAllByUserID(ctx context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.tokens {
		if t.UserID == userID {
			t.Revoked = true
		}
	}
	return nil
}

type memFileRepo struct {
	keys []string
	err  error
}

func (r *memFileRepo) Upload(ctx context.Context, data []byte, key string, contentType string) (string, error) {
	if r.err != nil {
		return "", r.err
	}
	r.keys = append(r.keys, key)
	return "https://cdn.test/" + key, nil
}

type memPredictionRepo struct {
	saved []domain.Prediction
}

func (r *memPredictionRepo) Create(ctx context.Context, p *domain.Prediction) error {
	p.ID = primitive.NewObjectID().Hex()
	r.saved = append(r.saved, *p)
	return nil
}

type stubPredictor struct {
	result *domain.PredictionResult
	err    error
}

func (p *stubPredictor) Predict(ctx context.Context, imageURL string) (*domain.PredictionResult, error) {
	return p.result, p.err
}

type memFoodRepo struct {
	foods []domain.FoodItem
	limit int
}

func (r *memFoodRepo) Create(ctx context.Context, f *domain.FoodItem) error {
	r.foods = append(r.foods, *f)
	return nil
}

func (r *memFoodRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.foods)), nil
}

func (r *memFoodRepo) Search(ctx context.Context, query string, limit int) ([]domain.FoodItem, error) {
	r.limit = limit
	return r.foods, nil
}

var errBoom = errors.New("boom")
