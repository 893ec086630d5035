package gorm

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nutriplan/v1/internal/domain/mealplan"
	"github.com/nutriplan/v1/internal/ports/outbound"
)

// MealPlanRepository implements meal plan persistence using GORM
type MealPlanRepository struct {
	db *gorm.DB
}

// NewMealPlanRepository creates a new meal plan repository
func NewMealPlanRepository(db *gorm.DB) outbound.MealPlanRepository {
	return &MealPlanRepository{db: db}
}

// Create persists a new meal plan
func (r *MealPlanRepository) Create(ctx context.Context, plan *mealplan.PlanRecord) error {
	model, err := PlanToModel(plan)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(model).Error
}

// FindByID retrieves a meal plan by ID
func (r *MealPlanRepository) FindByID(ctx context.Context, id uuid.UUID) (*mealplan.PlanRecord, error) {
	var model MealPlanModel
	err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, mealplan.ErrPlanNotFound
		}
		return nil, err
	}
	return ModelToPlan(&model)
}

// FindByUser retrieves a user's meal plans, most recent first
func (r *MealPlanRepository) FindByUser(ctx context.Context, userID uuid.UUID, limit int) ([]mealplan.PlanRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	var models []MealPlanModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	plans := make([]mealplan.PlanRecord, 0, len(models))
	for i := range models {
		record, err := ModelToPlan(&models[i])
		if err != nil {
			return nil, err
		}
		plans = append(plans, *record)
	}
	return plans, nil
}

// Delete removes a meal plan (soft delete)
func (r *MealPlanRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&MealPlanModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return mealplan.ErrPlanNotFound
	}
	return nil
}
