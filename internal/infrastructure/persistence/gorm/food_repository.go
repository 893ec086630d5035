package gorm

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/nutriplan/v1/internal/domain/catalog"
	"github.com/nutriplan/v1/internal/ports/outbound"
)

// FoodItemRepository implements the food reference data store using GORM
type FoodItemRepository struct {
	db *gorm.DB
}

// NewFoodItemRepository creates a new food item repository
func NewFoodItemRepository(db *gorm.DB) outbound.FoodItemRepository {
	return &FoodItemRepository{db: db}
}

// ReplaceAll swaps the stored reference data for the given records
func (r *FoodItemRepository) ReplaceAll(ctx context.Context, records []catalog.FoodRecord) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&FoodItemModel{}).Error; err != nil {
			return err
		}

		models := make([]*FoodItemModel, 0, len(records))
		for _, record := range records {
			models = append(models, FoodRecordToModel(record))
		}
		if len(models) == 0 {
			return nil
		}

		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			UpdateAll: true,
		}).CreateInBatches(models, 100).Error
	})
}

// FindAll returns every stored food record
func (r *FoodItemRepository) FindAll(ctx context.Context) ([]catalog.FoodRecord, error) {
	var models []FoodItemModel
	if err := r.db.WithContext(ctx).Order("name").Find(&models).Error; err != nil {
		return nil, err
	}

	records := make([]catalog.FoodRecord, 0, len(models))
	for i := range models {
		records = append(records, ModelToFoodRecord(&models[i]))
	}
	return records, nil
}

// Search returns foods whose name contains the query, case-insensitively
func (r *FoodItemRepository) Search(ctx context.Context, query string, limit int) ([]catalog.FoodRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	var models []FoodItemModel
	err := r.db.WithContext(ctx).
		Where("LOWER(name) LIKE LOWER(?)", "%"+query+"%").
		Order("name").
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	records := make([]catalog.FoodRecord, 0, len(models))
	for i := range models {
		records = append(records, ModelToFoodRecord(&models[i]))
	}
	return records, nil
}

// Count returns the number of stored food records
func (r *FoodItemRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&FoodItemModel{}).Count(&count).Error
	return count, err
}
