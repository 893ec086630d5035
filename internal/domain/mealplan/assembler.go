package mealplan

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/nutriplan/v1/internal/domain/catalog"
	"github.com/nutriplan/v1/internal/domain/nutrition"
)

// recipeBaseURL is the template for the cosmetic recipe reference link. The
// link is never fetched.
const recipeBaseURL = "https://example.com/recipes/"

// SourceFactory produces the random source used to sample candidate foods.
// Assembly creates a fresh source per call, so a deterministic factory makes
// the whole plan reproducible.
type SourceFactory func() rand.Source

// FixedSeedSource returns a factory that always seeds with the given value,
// so every assembled plan is identical.
func FixedSeedSource(seed int64) SourceFactory {
	return func() rand.Source {
		return rand.NewSource(seed)
	}
}

// Assembler builds day-by-day meal plans from the food catalog. It holds no
// mutable state of its own; concurrent calls are independent.
type Assembler struct {
	store     *catalog.Store
	newSource SourceFactory
}

// NewAssembler creates an assembler over the given catalog store. A nil
// source factory means time-seeded randomness (the production path); tests
// pass a fixed-seed factory for reproducible plans.
func NewAssembler(store *catalog.Store, newSource SourceFactory) *Assembler {
	if newSource == nil {
		newSource = func() rand.Source {
			return rand.NewSource(time.Now().UnixNano())
		}
	}
	return &Assembler{store: store, newSource: newSource}
}

// AssembleWeekPlan builds a plan of the requested number of days for the
// profile. Day labels are the canonical weekday names, Monday-first, cycling
// modulo 7 for horizons other than 7. Returns ErrNoCandidateFoods when the
// catalog has nothing left after the dietary-preference filter.
func (a *Assembler) AssembleWeekPlan(p nutrition.Profile, days int) (*WeekPlan, error) {
	if days < 1 {
		return nil, ErrInvalidDays
	}

	pool := a.store.Snapshot().All()
	if p.IsVegetarian() {
		pool = excludeKeywords(pool, meatKeywords)
	}
	if len(pool) == 0 {
		return nil, ErrNoCandidateFoods
	}

	dailyCalories := nutrition.EstimateCalories(p)
	rng := rand.New(a.newSource())

	week := &WeekPlan{Days: make([]DayPlan, 0, days)}
	for i := 0; i < days; i++ {
		day := a.assembleDay(weekdayNames[i%7], dailyCalories, pool, rng)
		week.Days = append(week.Days, day)
	}
	return week, nil
}

// assembleDay fills the four meals of one day. The candidate pool is assumed
// non-empty; per-meal narrowing falls back to the full pool when empty.
func (a *Assembler) assembleDay(label string, dailyCalories int, pool []catalog.FoodRecord, rng *rand.Rand) DayPlan {
	day := DayPlan{Day: label, Meals: make([]MealEntry, 0, len(mealOrder))}
	var protein, carbs, fat float64

	for _, mealType := range mealOrder {
		mealCalories := int(float64(dailyCalories) * mealCalorieShares[mealType])

		candidates := filterByKeywords(pool, mealTypeKeywords[mealType])
		if len(candidates) == 0 {
			candidates = pool
		}
		food := candidates[rng.Intn(len(candidates))]

		// Zero-calorie foods would divide by zero; clamp the divisor to 1.
		servings := float64(mealCalories) / math.Max(food.Calories, 1)

		entry := MealEntry{
			Type:        mealType,
			Name:        food.Name,
			Calories:    int(math.Round(food.Calories * servings)),
			Protein:     round1(food.Protein * servings),
			Carbs:       round1(food.Carbs * servings),
			Fat:         round1(food.Fat * servings),
			Servings:    round2(servings),
			ServingSize: servingSizeLabel(food),
			RecipeLink:  recipeBaseURL + slugify(food.Name),
		}

		day.Meals = append(day.Meals, entry)
		day.TotalCalories += entry.Calories
		protein += entry.Protein
		carbs += entry.Carbs
		fat += entry.Fat
	}

	// Sum first, round once.
	day.TotalProtein = round1(protein)
	day.TotalCarbs = round1(carbs)
	day.TotalFat = round1(fat)
	return day
}

// filterByKeywords keeps records whose name contains any keyword.
func filterByKeywords(records []catalog.FoodRecord, keywords []string) []catalog.FoodRecord {
	var out []catalog.FoodRecord
	for _, r := range records {
		if matchesAny(r.Name, keywords) {
			out = append(out, r)
		}
	}
	return out
}

// excludeKeywords drops records whose name contains any keyword.
func excludeKeywords(records []catalog.FoodRecord, keywords []string) []catalog.FoodRecord {
	var out []catalog.FoodRecord
	for _, r := range records {
		if !matchesAny(r.Name, keywords) {
			out = append(out, r)
		}
	}
	return out
}

func matchesAny(name string, keywords []string) bool {
	name = strings.ToLower(name)
	for _, kw := range keywords {
		if strings.Contains(name, kw) {
			return true
		}
	}
	return false
}

func servingSizeLabel(food catalog.FoodRecord) string {
	if food.ServingWeightGrams > 0 {
		return fmt.Sprintf("%.0fg", food.ServingWeightGrams)
	}
	return "1 serving"
}

// slugify lowercases the name and replaces spaces with hyphens.
func slugify(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "-")
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
