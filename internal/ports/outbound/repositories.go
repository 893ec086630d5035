// Package outbound defines the outbound ports (interfaces) for external dependencies
package outbound

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/nutriplan/v1/internal/domain/catalog"
	"github.com/nutriplan/v1/internal/domain/insights"
	"github.com/nutriplan/v1/internal/domain/mealplan"
	"github.com/nutriplan/v1/internal/domain/user"
)

// UserRepository defines the interface for user persistence
type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	Update(ctx context.Context, u *user.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	FindByEmail(ctx context.Context, email string) (*user.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// FoodItemRepository defines the interface for the food reference data store
type FoodItemRepository interface {
	ReplaceAll(ctx context.Context, records []catalog.FoodRecord) error
	FindAll(ctx context.Context) ([]catalog.FoodRecord, error)
	Search(ctx context.Context, query string, limit int) ([]catalog.FoodRecord, error)
	Count(ctx context.Context) (int64, error)
}

// FoodLogRepository defines the interface for food log persistence
type FoodLogRepository interface {
	Create(ctx context.Context, log *insights.FoodLog) error
	FindByID(ctx context.Context, id uuid.UUID) (*insights.FoodLog, error)
	FindByUser(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]insights.FoodLog, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// MealPlanRepository defines the interface for meal plan persistence
type MealPlanRepository interface {
	Create(ctx context.Context, plan *mealplan.PlanRecord) error
	FindByID(ctx context.Context, id uuid.UUID) (*mealplan.PlanRecord, error)
	FindByUser(ctx context.Context, userID uuid.UUID, limit int) ([]mealplan.PlanRecord, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, expiration time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}
