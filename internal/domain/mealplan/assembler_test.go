package mealplan

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nutriplan/v1/internal/domain/catalog"
	"github.com/nutriplan/v1/internal/domain/nutrition"
)

func testProfile() nutrition.Profile {
	return nutrition.Profile{
		WeightKG:      70,
		HeightCM:      175,
		Age:           30,
		Gender:        nutrition.GenderMale,
		ActivityLevel: nutrition.ActivityModeratelyActive,
	}
}

func testRecords() []catalog.FoodRecord {
	return []catalog.FoodRecord{
		{Name: "Scrambled Eggs", Calories: 140, Protein: 12, Carbs: 1, Fat: 10, ServingWeightGrams: 100},
		{Name: "Chicken Salad", Calories: 350, Protein: 30, Carbs: 10, Fat: 20, ServingWeightGrams: 250},
		{Name: "Grilled Salmon", Calories: 208, Protein: 20, Carbs: 0, Fat: 12, ServingWeightGrams: 150},
		{Name: "Vegetable Soup", Calories: 90, Protein: 4, Carbs: 14, Fat: 2, ServingWeightGrams: 300},
		{Name: "Lentil Rice Bowl", Calories: 320, Protein: 14, Carbs: 55, Fat: 5, ServingWeightGrams: 280},
		{Name: "Mixed Nuts", Calories: 600, Protein: 20, Carbs: 21, Fat: 54, ServingWeightGrams: 100},
		{Name: "Fruit Yogurt", Calories: 120, Protein: 5, Carbs: 20, Fat: 2, ServingWeightGrams: 170},
	}
}

func newTestAssembler(records []catalog.FoodRecord) *Assembler {
	store := catalog.NewStore(catalog.New(records))
	return NewAssembler(store, FixedSeedSource(42))
}

func TestAssembleWeekPlan_SevenDays(t *testing.T) {
	assembler := newTestAssembler(testRecords())

	week, err := assembler.AssembleWeekPlan(testProfile(), 7)
	require.NoError(t, err)
	require.Len(t, week.Days, 7)

	expected := []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}
	for i, day := range week.Days {
		assert.Equal(t, expected[i], day.Day)
	}
}

func TestAssembleWeekPlan_LabelsCycle(t *testing.T) {
	assembler := newTestAssembler(testRecords())

	week, err := assembler.AssembleWeekPlan(testProfile(), 9)
	require.NoError(t, err)
	require.Len(t, week.Days, 9)

	assert.Equal(t, "monday", week.Days[0].Day)
	assert.Equal(t, "sunday", week.Days[6].Day)
	assert.Equal(t, "monday", week.Days[7].Day)
	assert.Equal(t, "tuesday", week.Days[8].Day)
}

func TestAssembleWeekPlan_ShortHorizon(t *testing.T) {
	assembler := newTestAssembler(testRecords())

	week, err := assembler.AssembleWeekPlan(testProfile(), 3)
	require.NoError(t, err)
	require.Len(t, week.Days, 3)
	assert.Equal(t, "wednesday", week.Days[2].Day)
}

func TestAssembleWeekPlan_InvalidDays(t *testing.T) {
	assembler := newTestAssembler(testRecords())

	for _, days := range []int{0, -1} {
		_, err := assembler.AssembleWeekPlan(testProfile(), days)
		assert.ErrorIs(t, err, ErrInvalidDays)
	}
}

func TestAssembleWeekPlan_EmptyCatalog(t *testing.T) {
	assembler := newTestAssembler(nil)

	_, err := assembler.AssembleWeekPlan(testProfile(), 7)
	assert.ErrorIs(t, err, ErrNoCandidateFoods)
}

func TestAssembleWeekPlan_MealOrder(t *testing.T) {
	assembler := newTestAssembler(testRecords())

	week, err := assembler.AssembleWeekPlan(testProfile(), 7)
	require.NoError(t, err)

	for _, day := range week.Days {
		require.Len(t, day.Meals, 4)
		assert.Equal(t, MealBreakfast, day.Meals[0].Type)
		assert.Equal(t, MealLunch, day.Meals[1].Type)
		assert.Equal(t, MealDinner, day.Meals[2].Type)
		assert.Equal(t, MealSnack, day.Meals[3].Type)
	}
}

func TestAssembleWeekPlan_Deterministic(t *testing.T) {
	store := catalog.NewStore(catalog.New(testRecords()))
	assembler := NewAssembler(store, FixedSeedSource(7))

	first, err := assembler.AssembleWeekPlan(testProfile(), 7)
	require.NoError(t, err)
	second, err := assembler.AssembleWeekPlan(testProfile(), 7)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestAssembleWeekPlan_VegetarianExcludesMeat(t *testing.T) {
	profile := testProfile()
	profile.DietaryPreferences = "Vegetarian"

	for _, seed := range []int64{1, 2, 3, 42, 99} {
		store := catalog.NewStore(catalog.New(testRecords()))
		assembler := NewAssembler(store, FixedSeedSource(seed))

		week, err := assembler.AssembleWeekPlan(profile, 7)
		require.NoError(t, err)

		for _, day := range week.Days {
			for _, meal := range day.Meals {
				assert.NotContains(t, meal.Name, "Chicken")
				assert.NotContains(t, meal.Name, "Salmon")
			}
		}
	}
}

func TestAssembleWeekPlan_VegetarianEmptiesCatalog(t *testing.T) {
	records := []catalog.FoodRecord{
		{Name: "Chicken Breast", Calories: 165, Protein: 31},
		{Name: "Grilled Salmon", Calories: 208, Protein: 20},
	}
	assembler := newTestAssembler(records)

	profile := testProfile()
	profile.DietaryPreferences = "vegetarian"

	_, err := assembler.AssembleWeekPlan(profile, 7)
	assert.ErrorIs(t, err, ErrNoCandidateFoods)
}

func TestAssembleWeekPlan_ServingScaling(t *testing.T) {
	// A single record makes every pick deterministic regardless of seed.
	records := []catalog.FoodRecord{
		{Name: "Lentil Rice Bowl", Calories: 320, Protein: 14, Carbs: 55, Fat: 5, ServingWeightGrams: 280},
	}
	assembler := newTestAssembler(records)

	profile := testProfile()
	daily := nutrition.EstimateCalories(profile)

	week, err := assembler.AssembleWeekPlan(profile, 1)
	require.NoError(t, err)
	day := week.Days[0]

	shares := map[MealType]float64{
		MealBreakfast: 0.25,
		MealLunch:     0.30,
		MealDinner:    0.30,
		MealSnack:     0.15,
	}
	for _, meal := range day.Meals {
		mealCalories := int(float64(daily) * shares[meal.Type])
		servings := float64(mealCalories) / 320
		assert.Equal(t, "Lentil Rice Bowl", meal.Name)
		assert.InDelta(t, math.Round(servings*100)/100, meal.Servings, 1e-9)
		assert.Equal(t, int(math.Round(320*servings)), meal.Calories)
		assert.InDelta(t, math.Round(14*servings*10)/10, meal.Protein, 1e-9)
		assert.InDelta(t, math.Round(55*servings*10)/10, meal.Carbs, 1e-9)
		assert.InDelta(t, math.Round(5*servings*10)/10, meal.Fat, 1e-9)
		assert.Equal(t, "280g", meal.ServingSize)
		assert.Equal(t, "https://example.com/recipes/lentil-rice-bowl", meal.RecipeLink)
	}
}

func TestAssembleWeekPlan_ZeroCalorieFood(t *testing.T) {
	records := []catalog.FoodRecord{
		{Name: "Sparkling Water", Calories: 0, Protein: 0, Carbs: 0, Fat: 0},
	}
	assembler := newTestAssembler(records)

	week, err := assembler.AssembleWeekPlan(testProfile(), 1)
	require.NoError(t, err)

	for _, meal := range week.Days[0].Meals {
		assert.Equal(t, 0, meal.Calories)
		assert.Equal(t, "1 serving", meal.ServingSize)
		assert.False(t, math.IsInf(meal.Servings, 0))
		assert.False(t, math.IsNaN(meal.Servings))
	}
}

func TestAssembleWeekPlan_DayTotals(t *testing.T) {
	assembler := newTestAssembler(testRecords())

	week, err := assembler.AssembleWeekPlan(testProfile(), 7)
	require.NoError(t, err)

	for _, day := range week.Days {
		var calories int
		var protein, carbs, fat float64
		for _, meal := range day.Meals {
			calories += meal.Calories
			protein += meal.Protein
			carbs += meal.Carbs
			fat += meal.Fat
		}
		assert.Equal(t, calories, day.TotalCalories)
		assert.InDelta(t, math.Round(protein*10)/10, day.TotalProtein, 1e-9)
		assert.InDelta(t, math.Round(carbs*10)/10, day.TotalCarbs, 1e-9)
		assert.InDelta(t, math.Round(fat*10)/10, day.TotalFat, 1e-9)
	}
}

func TestKeywordFilters(t *testing.T) {
	records := testRecords()

	t.Run("meal type narrowing", func(t *testing.T) {
		lunch := filterByKeywords(records, mealTypeKeywords[MealLunch])
		names := make([]string, 0, len(lunch))
		for _, r := range lunch {
			names = append(names, r.Name)
		}
		assert.ElementsMatch(t, []string{"Chicken Salad", "Vegetable Soup", "Lentil Rice Bowl"}, names)
	})

	t.Run("exclusion", func(t *testing.T) {
		remaining := excludeKeywords(records, meatKeywords)
		for _, r := range remaining {
			assert.NotContains(t, r.Name, "Chicken")
			assert.NotContains(t, r.Name, "Salmon")
		}
		assert.Len(t, remaining, 5)
	})

	t.Run("case insensitive", func(t *testing.T) {
		assert.True(t, matchesAny("GRILLED SALMON", meatKeywords))
		assert.False(t, matchesAny("Tofu Scramble", meatKeywords))
	})
}

func TestMealCalorieSharesSumToOne(t *testing.T) {
	var total float64
	for _, share := range mealCalorieShares {
		total += share
	}
	assert.InDelta(t, 1.0, total, 1e-9)
}
