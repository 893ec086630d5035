package nutrition

import "math"

// Calories per gram of each macronutrient.
const (
	CaloriesPerGramProtein = 4
	CaloriesPerGramCarbs   = 4
	CaloriesPerGramFat     = 9
)

// MacroTargets holds the daily macronutrient allocation derived from a
// calorie target. Percentages are the chosen split (not re-derived from the
// rounded grams) so they sum to exactly 100 by construction.
type MacroTargets struct {
	ProteinGrams int     `json:"protein_g"`
	CarbsGrams   int     `json:"carbs_g"`
	FatGrams     int     `json:"fat_g"`
	ProteinPct   float64 `json:"protein_pct"`
	CarbsPct     float64 `json:"carbs_pct"`
	FatPct       float64 `json:"fat_pct"`
}

// macroSplit is a fraction-of-calories allocation. Fractions sum to 1.
type macroSplit struct {
	protein float64
	carbs   float64
	fat     float64
}

// defaultSplit is used when no goal keyword matches.
var defaultSplit = macroSplit{protein: 0.25, carbs: 0.50, fat: 0.25}

// goalSplits are checked in order; the first keyword found in the goal text
// wins. Order matters: weight_loss before weight_gain before muscle_gain.
var goalSplits = []struct {
	keyword string
	split   macroSplit
}{
	{"weight_loss", macroSplit{protein: 0.30, carbs: 0.40, fat: 0.30}},
	{"weight_gain", macroSplit{protein: 0.25, carbs: 0.55, fat: 0.20}},
	{"muscle_gain", macroSplit{protein: 0.35, carbs: 0.45, fat: 0.20}},
}

// AllocateMacros converts a calorie target into gram and percentage targets
// for protein, carbohydrates and fat based on the profile's goal.
func AllocateMacros(p Profile, calories int) MacroTargets {
	split := defaultSplit
	for _, gs := range goalSplits {
		if p.goalContains(gs.keyword) {
			split = gs.split
			break
		}
	}

	cal := float64(calories)
	return MacroTargets{
		ProteinGrams: int(math.Round(cal * split.protein / CaloriesPerGramProtein)),
		CarbsGrams:   int(math.Round(cal * split.carbs / CaloriesPerGramCarbs)),
		FatGrams:     int(math.Round(cal * split.fat / CaloriesPerGramFat)),
		ProteinPct:   split.protein * 100,
		CarbsPct:     split.carbs * 100,
		FatPct:       split.fat * 100,
	}
}
