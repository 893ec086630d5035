// Package testutils provides mock implementations for testing
package testutils

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/nutriplan/v1/internal/domain/catalog"
	"github.com/nutriplan/v1/internal/domain/insights"
	"github.com/nutriplan/v1/internal/domain/mealplan"
	"github.com/nutriplan/v1/internal/domain/user"
)

// MockUserRepository provides a mock implementation of UserRepository
type MockUserRepository struct {
	mock.Mock
}

// Create stores a new user
func (m *MockUserRepository) Create(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

// Update persists user changes
func (m *MockUserRepository) Update(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

// FindByID finds a user by ID
func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

// FindByEmail finds a user by email
func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

// ExistsByEmail reports whether an account with the email exists
func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

// MockFoodItemRepository provides a mock implementation of FoodItemRepository
type MockFoodItemRepository struct {
	mock.Mock
}

// ReplaceAll swaps the stored food reference data
func (m *MockFoodItemRepository) ReplaceAll(ctx context.Context, records []catalog.FoodRecord) error {
	args := m.Called(ctx, records)
	return args.Error(0)
}

// FindAll returns every stored food record
func (m *MockFoodItemRepository) FindAll(ctx context.Context) ([]catalog.FoodRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.FoodRecord), args.Error(1)
}

// Search finds foods matching the query
func (m *MockFoodItemRepository) Search(ctx context.Context, query string, limit int) ([]catalog.FoodRecord, error) {
	args := m.Called(ctx, query, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.FoodRecord), args.Error(1)
}

// Count returns the number of stored foods
func (m *MockFoodItemRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockFoodLogRepository provides a mock implementation of FoodLogRepository
type MockFoodLogRepository struct {
	mock.Mock
}

// Create stores a food log entry
func (m *MockFoodLogRepository) Create(ctx context.Context, log *insights.FoodLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

// FindByID finds a food log entry by ID
func (m *MockFoodLogRepository) FindByID(ctx context.Context, id uuid.UUID) (*insights.FoodLog, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*insights.FoodLog), args.Error(1)
}

// FindByUser returns a user's food logs within the time range
func (m *MockFoodLogRepository) FindByUser(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]insights.FoodLog, error) {
	args := m.Called(ctx, userID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]insights.FoodLog), args.Error(1)
}

// Delete removes a food log entry
func (m *MockFoodLogRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockMealPlanRepository provides a mock implementation of MealPlanRepository
type MockMealPlanRepository struct {
	mock.Mock
}

// Create stores a meal plan
func (m *MockMealPlanRepository) Create(ctx context.Context, plan *mealplan.PlanRecord) error {
	args := m.Called(ctx, plan)
	return args.Error(0)
}

// FindByID finds a meal plan by ID
func (m *MockMealPlanRepository) FindByID(ctx context.Context, id uuid.UUID) (*mealplan.PlanRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mealplan.PlanRecord), args.Error(1)
}

// FindByUser returns a user's meal plans, newest first
func (m *MockMealPlanRepository) FindByUser(ctx context.Context, userID uuid.UUID, limit int) ([]mealplan.PlanRecord, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]mealplan.PlanRecord), args.Error(1)
}

// Delete removes a meal plan
func (m *MockMealPlanRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockCacheRepository provides a mock implementation of CacheRepository
type MockCacheRepository struct {
	mock.Mock
}

// Get returns the cached value, nil on a miss
func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// Set stores a value with the given TTL
func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, expiration time.Duration) error {
	args := m.Called(ctx, key, value, expiration)
	return args.Error(0)
}

// Delete removes a cached value
func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

// Exists reports whether a key is cached
func (m *MockCacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}
