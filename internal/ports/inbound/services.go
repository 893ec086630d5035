// Package inbound defines the inbound ports (use case interfaces) for the application
package inbound

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/nutriplan/v1/internal/domain/insights"
	"github.com/nutriplan/v1/internal/domain/mealplan"
	"github.com/nutriplan/v1/internal/domain/nutrition"
	"github.com/nutriplan/v1/internal/domain/user"
)

// UserService defines the use cases for account management
type UserService interface {
	Register(ctx context.Context, cmd RegisterUserCommand) (*user.User, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	GetUser(ctx context.Context, userID uuid.UUID) (*user.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, profile nutrition.Profile) (*user.User, error)
	ValidateToken(ctx context.Context, token string) (uuid.UUID, error)
}

// RegisterUserCommand carries the data needed to register a user
type RegisterUserCommand struct {
	Email    string
	FullName string
	Password string
}

// AuthResult is returned from a successful login
type AuthResult struct {
	User        *user.User
	AccessToken string
	ExpiresAt   time.Time
}

// PlannerService defines the use cases for calorie targets and meal plans
type PlannerService interface {
	NutritionTargets(ctx context.Context, userID uuid.UUID) (*NutritionTargets, error)
	GenerateWeekPlan(ctx context.Context, cmd GeneratePlanCommand) (*mealplan.PlanRecord, error)
	PlanHistory(ctx context.Context, userID uuid.UUID, limit int) ([]mealplan.PlanRecord, error)
	GetPlan(ctx context.Context, userID, planID uuid.UUID) (*mealplan.PlanRecord, error)
	DeletePlan(ctx context.Context, userID, planID uuid.UUID) error
}

// NutritionTargets bundles the daily calorie estimate with its macro allocation
type NutritionTargets struct {
	DailyCalories int                    `json:"daily_calories"`
	Macros        nutrition.MacroTargets `json:"macros"`
}

// GeneratePlanCommand carries the data needed to generate a meal plan
type GeneratePlanCommand struct {
	UserID    uuid.UUID
	Name      string
	Days      int
	StartDate time.Time
}

// AnalyticsService defines the use cases for food logging and nutrition analysis
type AnalyticsService interface {
	LogFood(ctx context.Context, cmd LogFoodCommand) (*insights.FoodLog, error)
	FoodLogs(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]insights.FoodLog, error)
	DeleteFoodLog(ctx context.Context, userID, logID uuid.UUID) error
	NutritionInsights(ctx context.Context, userID uuid.UUID, days int) (*insights.Report, error)
	NutritionSummary(ctx context.Context, userID uuid.UUID, from, to time.Time) (*NutritionSummary, error)
}

// LogFoodCommand carries the data needed to record a food log entry
type LogFoodCommand struct {
	UserID      uuid.UUID
	FoodName    string
	MealType    string
	Calories    float64
	Protein     float64
	Carbs       float64
	Fat         float64
	Fiber       *float64
	Sugar       *float64
	ServingSize string
	Servings    float64
	LoggedAt    time.Time
}

// NutritionSummary aggregates logged intake over a date range
type NutritionSummary struct {
	From          time.Time              `json:"from"`
	To            time.Time              `json:"to"`
	DaysInRange   int                    `json:"days_in_range"`
	TotalCalories float64                `json:"total_calories"`
	TotalProtein  float64                `json:"total_protein"`
	TotalCarbs    float64                `json:"total_carbs"`
	TotalFat      float64                `json:"total_fat"`
	DailyAverages insights.DailyAverages `json:"daily_averages"`
	EntryCount    int                    `json:"entry_count"`
}
