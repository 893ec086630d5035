// Package gorm provides mapping between domain entities and GORM models
package gorm

import (
	"encoding/json"
	"fmt"

	"github.com/nutriplan/v1/internal/domain/catalog"
	"github.com/nutriplan/v1/internal/domain/insights"
	"github.com/nutriplan/v1/internal/domain/mealplan"
	"github.com/nutriplan/v1/internal/domain/nutrition"
	"github.com/nutriplan/v1/internal/domain/user"
)

// UserToModel converts a domain user to a GORM model
func UserToModel(u *user.User) *UserModel {
	profile := u.Profile()
	return &UserModel{
		ID:           u.ID(),
		Email:        u.Email(),
		FullName:     u.FullName(),
		PasswordHash: u.PasswordHash(),
		IsActive:     u.IsActive(),
		Profile: ProfileModel{
			WeightKG:           profile.WeightKG,
			HeightCM:           profile.HeightCM,
			Age:                profile.Age,
			Gender:             string(profile.Gender),
			ActivityLevel:      string(profile.ActivityLevel),
			Goals:              profile.Goals,
			DietaryPreferences: profile.DietaryPreferences,
		},
		CreatedAt:   u.CreatedAt(),
		UpdatedAt:   u.UpdatedAt(),
		LastLoginAt: u.LastLoginAt(),
	}
}

// ModelToUser converts a GORM model to a domain user
func ModelToUser(model *UserModel) *user.User {
	profile := nutrition.Profile{
		WeightKG:           model.Profile.WeightKG,
		HeightCM:           model.Profile.HeightCM,
		Age:                model.Profile.Age,
		Gender:             nutrition.Gender(model.Profile.Gender),
		ActivityLevel:      nutrition.ActivityLevel(model.Profile.ActivityLevel),
		Goals:              model.Profile.Goals,
		DietaryPreferences: model.Profile.DietaryPreferences,
	}

	return user.Reconstitute(
		model.ID,
		model.Email,
		model.FullName,
		model.PasswordHash,
		model.IsActive,
		profile,
		model.CreatedAt,
		model.UpdatedAt,
		model.LastLoginAt,
	)
}

// FoodRecordToModel converts a catalog record to a GORM model
func FoodRecordToModel(record catalog.FoodRecord) *FoodItemModel {
	return &FoodItemModel{
		Name:               record.Name,
		Category:           record.Category,
		Calories:           record.Calories,
		Protein:            record.Protein,
		Carbs:              record.Carbs,
		Fat:                record.Fat,
		Fiber:              record.Fiber,
		Sugar:              record.Sugar,
		ServingWeightGrams: record.ServingWeightGrams,
	}
}

// ModelToFoodRecord converts a GORM model to a catalog record
func ModelToFoodRecord(model *FoodItemModel) catalog.FoodRecord {
	return catalog.FoodRecord{
		Name:               model.Name,
		Category:           model.Category,
		Calories:           model.Calories,
		Protein:            model.Protein,
		Carbs:              model.Carbs,
		Fat:                model.Fat,
		Fiber:              model.Fiber,
		Sugar:              model.Sugar,
		ServingWeightGrams: model.ServingWeightGrams,
	}
}

// FoodLogToModel converts a domain food log to a GORM model
func FoodLogToModel(entry *insights.FoodLog) *FoodLogModel {
	return &FoodLogModel{
		ID:          entry.ID,
		UserID:      entry.UserID,
		FoodName:    entry.FoodName,
		MealType:    entry.MealType,
		Calories:    entry.Calories,
		Protein:     entry.Protein,
		Carbs:       entry.Carbs,
		Fat:         entry.Fat,
		Fiber:       entry.Fiber,
		Sugar:       entry.Sugar,
		ServingSize: entry.ServingSize,
		Servings:    entry.Servings,
		LoggedAt:    entry.LoggedAt,
	}
}

// ModelToFoodLog converts a GORM model to a domain food log
func ModelToFoodLog(model *FoodLogModel) *insights.FoodLog {
	return &insights.FoodLog{
		ID:          model.ID,
		UserID:      model.UserID,
		FoodName:    model.FoodName,
		MealType:    model.MealType,
		Calories:    model.Calories,
		Protein:     model.Protein,
		Carbs:       model.Carbs,
		Fat:         model.Fat,
		Fiber:       model.Fiber,
		Sugar:       model.Sugar,
		ServingSize: model.ServingSize,
		Servings:    model.Servings,
		LoggedAt:    model.LoggedAt,
	}
}

// PlanToModel converts a plan record to a GORM model
func PlanToModel(record *mealplan.PlanRecord) (*MealPlanModel, error) {
	payload, err := json.Marshal(record.Week)
	if err != nil {
		return nil, fmt.Errorf("encode plan data: %w", err)
	}

	var data JSONField
	if err := json.Unmarshal(payload, &data); err != nil {
		return nil, fmt.Errorf("encode plan data: %w", err)
	}

	return &MealPlanModel{
		ID:        record.ID,
		UserID:    record.UserID,
		Name:      record.Name,
		PlanData:  data,
		StartDate: record.StartDate,
		EndDate:   record.EndDate,
		IsActive:  record.IsActive,
		CreatedAt: record.CreatedAt,
	}, nil
}

// ModelToPlan converts a GORM model to a plan record
func ModelToPlan(model *MealPlanModel) (*mealplan.PlanRecord, error) {
	payload, err := json.Marshal(model.PlanData)
	if err != nil {
		return nil, fmt.Errorf("decode plan data: %w", err)
	}

	var week mealplan.WeekPlan
	if err := json.Unmarshal(payload, &week); err != nil {
		return nil, fmt.Errorf("decode plan data: %w", err)
	}

	return &mealplan.PlanRecord{
		ID:        model.ID,
		UserID:    model.UserID,
		Name:      model.Name,
		Week:      &week,
		StartDate: model.StartDate,
		EndDate:   model.EndDate,
		IsActive:  model.IsActive,
		CreatedAt: model.CreatedAt,
	}, nil
}
