// Package insights contains the nutrition analytics engine. It aggregates
// historical food logs into macro ratios and daily averages, and maps them
// through fixed threshold rules into categorized insights and food
// recommendations.
package insights

import (
	"time"

	"github.com/google/uuid"
)

// Category classifies an insight.
type Category string

const (
	CategoryProtein   Category = "protein"
	CategoryCarbs     Category = "carbs"
	CategoryFat       Category = "fat"
	CategoryFiber     Category = "fiber"
	CategorySugar     Category = "sugar"
	CategoryCalories  Category = "calories"
	CategoryGeneral   Category = "general"
	CategoryHydration Category = "hydration"
)

// Priority indicates how urgent an insight is.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// FoodLog is one logged intake event. Fiber and sugar are nil when not
// recorded; the engine treats them as zero.
type FoodLog struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	FoodName    string    `json:"food_name"`
	MealType    string    `json:"meal_type,omitempty"`
	Calories    float64   `json:"calories"`
	Protein     float64   `json:"protein"`
	Carbs       float64   `json:"carbs"`
	Fat         float64   `json:"fat"`
	Fiber       *float64  `json:"fiber,omitempty"`
	Sugar       *float64  `json:"sugar,omitempty"`
	ServingSize string    `json:"serving_size,omitempty"`
	Servings    float64   `json:"servings"`
	LoggedAt    time.Time `json:"logged_at"`
}

// Insight is a single categorized finding produced by a threshold rule.
type Insight struct {
	Category       Category `json:"category"`
	Message        string   `json:"message"`
	Recommendation string   `json:"recommendation,omitempty"`
	Priority       Priority `json:"priority"`
}

// MacroRatios are percentages of total logged calories attributable to each
// macronutrient, recomputed from gram totals (4/4/9 kcal per gram).
type MacroRatios struct {
	ProteinPct float64 `json:"protein_percentage"`
	CarbsPct   float64 `json:"carbs_percentage"`
	FatPct     float64 `json:"fat_percentage"`
}

// DailyAverages are log sums divided by the number of distinct calendar
// days present in the log set (never less than 1).
type DailyAverages struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`
	Sugar    float64 `json:"sugar"`
}

// Report is the full analytics output for one user.
type Report struct {
	Ratios          MacroRatios   `json:"macronutrient_ratios"`
	Averages        DailyAverages `json:"daily_averages"`
	Insights        []Insight     `json:"insights"`
	Recommendations []string      `json:"food_recommendations"`
}
