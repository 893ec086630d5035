package gorm

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nutriplan/v1/internal/domain/insights"
	"github.com/nutriplan/v1/internal/ports/outbound"
)

// ErrFoodLogNotFound is returned when a food log entry does not exist
var ErrFoodLogNotFound = errors.New("food log not found")

// FoodLogRepository implements food log persistence using GORM
type FoodLogRepository struct {
	db *gorm.DB
}

// NewFoodLogRepository creates a new food log repository
func NewFoodLogRepository(db *gorm.DB) outbound.FoodLogRepository {
	return &FoodLogRepository{db: db}
}

// Create persists a new food log entry
func (r *FoodLogRepository) Create(ctx context.Context, log *insights.FoodLog) error {
	model := FoodLogToModel(log)
	return r.db.WithContext(ctx).Create(model).Error
}

// FindByID retrieves a food log entry by ID
func (r *FoodLogRepository) FindByID(ctx context.Context, id uuid.UUID) (*insights.FoodLog, error) {
	var model FoodLogModel
	err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFoodLogNotFound
		}
		return nil, err
	}
	return ModelToFoodLog(&model), nil
}

// FindByUser retrieves a user's log entries within the time range
func (r *FoodLogRepository) FindByUser(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]insights.FoodLog, error) {
	var models []FoodLogModel
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND logged_at >= ? AND logged_at <= ?", userID, from, to).
		Order("logged_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	logs := make([]insights.FoodLog, 0, len(models))
	for i := range models {
		logs = append(logs, *ModelToFoodLog(&models[i]))
	}
	return logs, nil
}

// Delete removes a food log entry
func (r *FoodLogRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&FoodLogModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrFoodLogNotFound
	}
	return nil
}
