package insights

import "github.com/nutriplan/v1/internal/domain/nutrition"

// Food suggestion tables for the recommendation stage. One list per fired
// category, concatenated in rule order and truncated to maxRecommendations.

var proteinRecommendations = []string{
	"Chicken breast (lean protein)",
	"Greek yogurt (high protein dairy)",
	"Eggs (complete protein)",
	"Tuna (lean protein source)",
	"Turkey (lean meat protein)",
}

var vegetarianProteinRecommendations = []string{
	"Greek yogurt (high protein dairy)",
	"Lentils (plant-based protein)",
	"Tofu (complete plant protein)",
	"Chickpeas (protein and fiber)",
	"Quinoa (complete protein grain)",
}

var increaseCarbsRecommendations = []string{
	"Oatmeal (complex carbs with fiber)",
	"Sweet potatoes (nutrient-dense carb source)",
	"Brown rice (whole grain carb source)",
	"Bananas (carbs with potassium)",
	"Whole grain bread (complex carbs)",
}

var reduceCarbsRecommendations = []string{
	"Replace refined grains with vegetables",
	"Choose lower-carb fruits like berries",
	"Include more leafy greens",
}

var increaseFatRecommendations = []string{
	"Avocados (healthy monounsaturated fats)",
	"Nuts (healthy fats and protein)",
	"Olive oil (healthy cooking oil)",
	"Chia seeds (omega-3 fatty acids)",
	"Fatty fish like salmon (omega-3 sources)",
}

var reduceFatRecommendations = []string{
	"Choose lean protein sources",
	"Use olive oil instead of butter",
	"Include fatty fish like salmon",
}

var fiberRecommendations = []string{
	"Chia seeds (high in soluble fiber)",
	"Berries (fruit with high fiber)",
	"Lentils (protein and fiber)",
	"Broccoli (vegetable with fiber)",
	"Oats (whole grain with beta-glucan fiber)",
}

var sugarRecommendations = []string{
	"Replace sugary drinks with water or herbal tea",
	"Choose whole fruits instead of fruit juices",
	"Read labels for hidden added sugars",
	"Try cinnamon as a natural sweetener",
	"Gradually reduce sugar in coffee/tea",
}

// recommendFoods builds the recommendation list from the fired rules. The
// protein list is vegetarian-aware; carbs and fat are direction-aware.
func recommendFoods(fired []firedRule, profile nutrition.Profile) []string {
	var out []string

	for _, rule := range fired {
		switch rule.category {
		case CategoryProtein:
			if profile.IsVegetarian() {
				out = append(out, vegetarianProteinRecommendations...)
			} else {
				out = append(out, proteinRecommendations...)
			}
		case CategoryCarbs:
			if rule.tooHigh {
				out = append(out, reduceCarbsRecommendations...)
			} else {
				out = append(out, increaseCarbsRecommendations...)
			}
		case CategoryFat:
			if rule.tooHigh {
				out = append(out, reduceFatRecommendations...)
			} else {
				out = append(out, increaseFatRecommendations...)
			}
		case CategoryFiber:
			out = append(out, fiberRecommendations...)
		case CategorySugar:
			out = append(out, sugarRecommendations...)
		}
	}

	if len(out) == 0 {
		return genericRecommendations()
	}
	if len(out) > maxRecommendations {
		out = out[:maxRecommendations]
	}
	return out
}

// genericRecommendations is the fallback when no specific rule fired.
func genericRecommendations() []string {
	return []string{
		"Eat a variety of colorful fruits and vegetables",
		"Choose whole grains over refined grains",
		"Include lean proteins in your meals",
		"Stay hydrated by drinking water throughout the day",
		"Limit highly processed foods and added sugars",
	}
}
