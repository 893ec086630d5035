// Package mealplan contains the rule-based weekly meal plan assembler. It
// selects catalog foods under dietary-preference and meal-type filters and
// scales servings to hit per-meal calorie targets.
package mealplan

import (
	"time"

	"github.com/google/uuid"
)

// MealType identifies one of the four daily meals.
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

// mealOrder is the fixed assembly order within a day.
var mealOrder = []MealType{MealBreakfast, MealLunch, MealDinner, MealSnack}

// mealCalorieShares distributes the daily calorie target across meals.
// The shares sum to 1.00.
var mealCalorieShares = map[MealType]float64{
	MealBreakfast: 0.25,
	MealLunch:     0.30,
	MealDinner:    0.30,
	MealSnack:     0.15,
}

// weekdayNames are the canonical day labels, Monday-first. Plans longer than
// seven days cycle through them modulo 7.
var weekdayNames = []string{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
}

// MealEntry is one scheduled meal: a single catalog food scaled to the
// meal's calorie target. Entries are never blends of multiple records.
type MealEntry struct {
	Type        MealType `json:"type"`
	Name        string   `json:"name"`
	Calories    int      `json:"calories"`
	Protein     float64  `json:"protein"`
	Carbs       float64  `json:"carbs"`
	Fat         float64  `json:"fat"`
	Servings    float64  `json:"servings"`
	ServingSize string   `json:"serving_size"`
	RecipeLink  string   `json:"recipe_link"`
}

// DayPlan holds the four meals of one day plus their totals. Macro totals
// are summed first and rounded once (sum-then-round).
type DayPlan struct {
	Day           string      `json:"day"`
	Meals         []MealEntry `json:"meals"`
	TotalCalories int         `json:"totalCalories"`
	TotalProtein  float64     `json:"totalProtein"`
	TotalCarbs    float64     `json:"totalCarbs"`
	TotalFat      float64     `json:"totalFat"`
}

// WeekPlan is an ordered sequence of day plans. Its length always equals the
// requested horizon; day labels cycle when the horizon is not 7.
type WeekPlan struct {
	Days []DayPlan `json:"days"`
}

// PlanRecord is a persisted, named meal plan owned by a user.
type PlanRecord struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Name      string    `json:"name"`
	Week      *WeekPlan `json:"week"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}
