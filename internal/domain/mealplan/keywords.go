package mealplan

// Keyword tables used by the candidate filters. They are versioned lookup
// tables rather than inline literals so the rules can be extended without
// touching the assembly algorithm. All matching is case-insensitive
// substring matching against the food name.

// meatKeywords excludes records from vegetarian candidate pools.
var meatKeywords = []string{
	"beef", "chicken", "pork", "turkey", "meat", "fish", "salmon",
}

// mealTypeKeywords narrows the candidate pool to foods appropriate for a
// meal type. An empty narrowed pool falls back to the unfiltered pool.
var mealTypeKeywords = map[MealType][]string{
	MealBreakfast: {"pancakes", "waffles", "french_toast", "eggs", "omelette", "breakfast"},
	MealLunch:     {"sandwich", "salad", "soup", "wrap", "bowl"},
	MealDinner:    {"steak", "chicken", "fish", "salmon", "pasta", "rice", "bowl"},
	MealSnack:     {"fruit", "yogurt", "nuts", "hummus", "bar"},
}
