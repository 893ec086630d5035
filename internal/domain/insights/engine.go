package insights

import (
	"fmt"
	"math"

	"github.com/nutriplan/v1/internal/domain/nutrition"
)

// maxRecommendations caps the food recommendation list.
const maxRecommendations = 10

// Recommended daily amounts used by the fiber and sugar rules (grams).
const (
	fiberDailyMinimum = 25
	sugarDailyMaximum = 50
)

// Calorie comparison bands: average intake below 70% of the estimated need
// fires a high-priority insight, above 130% a medium one.
const (
	calorieLowRatio  = 0.7
	calorieHighRatio = 1.3
)

// firedRule records which rule fired and in which direction, for the
// recommendation stage.
type firedRule struct {
	category Category
	tooHigh  bool
}

// Analyze aggregates the given food logs into a report for the profile. An
// empty log set yields a minimal report with exactly two generic insights
// and the default recommendation list.
func Analyze(logs []FoodLog, profile nutrition.Profile) *Report {
	if len(logs) == 0 {
		return emptyLogReport(profile)
	}

	var totalCalories, totalProtein, totalCarbs, totalFat, totalFiber, totalSugar float64
	days := map[string]struct{}{}
	for _, log := range logs {
		totalCalories += log.Calories
		totalProtein += log.Protein
		totalCarbs += log.Carbs
		totalFat += log.Fat
		totalFiber += deref(log.Fiber)
		totalSugar += deref(log.Sugar)
		days[log.LoggedAt.Format("2006-01-02")] = struct{}{}
	}

	// The divisor is the count of distinct calendar days, never zero.
	dayCount := float64(len(days))
	if dayCount < 1 {
		dayCount = 1
	}
	averages := DailyAverages{
		Calories: round1(totalCalories / dayCount),
		Protein:  round1(totalProtein / dayCount),
		Carbs:    round1(totalCarbs / dayCount),
		Fat:      round1(totalFat / dayCount),
		Fiber:    round1(totalFiber / dayCount),
		Sugar:    round1(totalSugar / dayCount),
	}

	// Ratios come from the macro-derived calorie contribution, not from the
	// logged calorie column.
	proteinKcal := totalProtein * nutrition.CaloriesPerGramProtein
	carbsKcal := totalCarbs * nutrition.CaloriesPerGramCarbs
	fatKcal := totalFat * nutrition.CaloriesPerGramFat
	totalKcal := proteinKcal + carbsKcal + fatKcal

	var ratios MacroRatios
	if totalKcal > 0 {
		ratios = MacroRatios{
			ProteinPct: round1(proteinKcal / totalKcal * 100),
			CarbsPct:   round1(carbsKcal / totalKcal * 100),
			FatPct:     round1(fatKcal / totalKcal * 100),
		}
	}

	found, fired := applyThresholdRules(ratios, averages)
	for _, in := range calorieComparisonInsights(averages.Calories, profile) {
		found = append(found, in)
		fired = append(fired, firedRule{category: CategoryCalories})
	}

	return &Report{
		Ratios:          ratios,
		Averages:        averages,
		Insights:        found,
		Recommendations: recommendFoods(fired, profile),
	}
}

// applyThresholdRules runs the fixed-order, non-exclusive rule set over the
// computed ratios and averages.
func applyThresholdRules(ratios MacroRatios, averages DailyAverages) ([]Insight, []firedRule) {
	var out []Insight
	var fired []firedRule

	add := func(in Insight, rule firedRule) {
		out = append(out, in)
		fired = append(fired, rule)
	}

	switch {
	case ratios.ProteinPct < 10:
		add(Insight{
			Category:       CategoryProtein,
			Message:        "Your protein intake is very low. Protein is essential for muscle maintenance and recovery.",
			Recommendation: "Try to include more lean protein sources like chicken, fish, tofu, or legumes.",
			Priority:       PriorityHigh,
		}, firedRule{category: CategoryProtein})
	case ratios.ProteinPct < 15:
		add(Insight{
			Category:       CategoryProtein,
			Message:        "Your protein intake could be higher for optimal health.",
			Recommendation: "Consider adding more protein-rich foods to your meals.",
			Priority:       PriorityMedium,
		}, firedRule{category: CategoryProtein})
	case ratios.ProteinPct > 35:
		add(Insight{
			Category:       CategoryProtein,
			Message:        "Your protein intake is quite high. While protein is important, balance is key.",
			Recommendation: "Consider diversifying your diet with more fruits, vegetables, and whole grains.",
			Priority:       PriorityMedium,
		}, firedRule{category: CategoryProtein, tooHigh: true})
	}

	switch {
	case ratios.CarbsPct < 30:
		add(Insight{
			Category:       CategoryCarbs,
			Message:        "Your carbohydrate intake is low. Carbs are your body's main energy source.",
			Recommendation: "Include more complex carbohydrates like whole grains, fruits, and vegetables.",
			Priority:       PriorityMedium,
		}, firedRule{category: CategoryCarbs})
	case ratios.CarbsPct > 65:
		add(Insight{
			Category:       CategoryCarbs,
			Message:        "Your diet is very high in carbohydrates.",
			Recommendation: "Try to balance your meals with more protein and healthy fats.",
			Priority:       PriorityMedium,
		}, firedRule{category: CategoryCarbs, tooHigh: true})
	}

	switch {
	case ratios.FatPct < 15:
		add(Insight{
			Category:       CategoryFat,
			Message:        "Your fat intake is low. Healthy fats are essential for hormone production and nutrient absorption.",
			Recommendation: "Include sources of healthy fats like avocados, nuts, seeds, and olive oil.",
			Priority:       PriorityMedium,
		}, firedRule{category: CategoryFat})
	case ratios.FatPct > 40:
		add(Insight{
			Category:       CategoryFat,
			Message:        "Your fat intake is high. While healthy fats are important, they're also calorie-dense.",
			Recommendation: "Focus on healthy fat sources and consider moderating overall fat intake.",
			Priority:       PriorityMedium,
		}, firedRule{category: CategoryFat, tooHigh: true})
	}

	if averages.Fiber < fiberDailyMinimum {
		add(Insight{
			Category:       CategoryFiber,
			Message:        "Your fiber intake appears to be below recommendations. Fiber is important for digestive health.",
			Recommendation: "Add more fruits, vegetables, legumes, and whole grains to increase your fiber intake.",
			Priority:       PriorityMedium,
		}, firedRule{category: CategoryFiber})
	}

	if averages.Sugar > sugarDailyMaximum {
		add(Insight{
			Category:       CategorySugar,
			Message:        "Your sugar intake appears to be high. Excessive sugar consumption is linked to various health issues.",
			Recommendation: "Try to reduce added sugars in your diet by limiting sweetened beverages and processed foods.",
			Priority:       PriorityHigh,
		}, firedRule{category: CategorySugar, tooHigh: true})
	}

	return out, fired
}

// calorieComparisonInsights compares the average intake against the
// profile's estimated needs when the profile has enough body metrics.
func calorieComparisonInsights(avgCalories float64, profile nutrition.Profile) []Insight {
	if !profile.HasBodyMetrics() {
		return nil
	}

	estimated := nutrition.EstimateCalories(profile)
	switch {
	case avgCalories < float64(estimated)*calorieLowRatio:
		return []Insight{{
			Category:       CategoryCalories,
			Message:        fmt.Sprintf("Your average calorie intake (%d) is much lower than your estimated needs (%d).", int(avgCalories), estimated),
			Recommendation: "Consider eating more nutrient-dense foods to meet your energy requirements.",
			Priority:       PriorityHigh,
		}}
	case avgCalories > float64(estimated)*calorieHighRatio:
		return []Insight{{
			Category:       CategoryCalories,
			Message:        fmt.Sprintf("Your average calorie intake (%d) is higher than your estimated needs (%d).", int(avgCalories), estimated),
			Recommendation: "Consider monitoring portion sizes if weight maintenance is your goal.",
			Priority:       PriorityMedium,
		}}
	}
	return nil
}

// emptyLogReport is returned when there is nothing to analyze.
func emptyLogReport(profile nutrition.Profile) *Report {
	return &Report{
		Insights: []Insight{
			{
				Category: CategoryGeneral,
				Message:  "Keep logging your meals regularly to receive personalized nutrition insights!",
				Priority: PriorityMedium,
			},
			{
				Category: CategoryHydration,
				Message:  "Don't forget to stay hydrated by drinking water throughout the day.",
				Priority: PriorityMedium,
			},
		},
		Recommendations: genericRecommendations(),
	}
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
