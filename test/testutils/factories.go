// Package testutils provides test data factories for consistent test data generation
package testutils

import (
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"

	"github.com/nutriplan/v1/internal/domain/catalog"
	"github.com/nutriplan/v1/internal/domain/insights"
	"github.com/nutriplan/v1/internal/domain/nutrition"
	"github.com/nutriplan/v1/internal/domain/user"
)

// ProfileFactory builds nutrition profiles for tests
type ProfileFactory struct {
	faker *gofakeit.Faker
}

// NewProfileFactory creates a profile factory with a seeded faker
func NewProfileFactory(seed int64) *ProfileFactory {
	return &ProfileFactory{faker: gofakeit.New(seed)}
}

// Complete returns a profile with every field populated
func (f *ProfileFactory) Complete() nutrition.Profile {
	genders := []nutrition.Gender{nutrition.GenderMale, nutrition.GenderFemale}
	levels := []nutrition.ActivityLevel{
		nutrition.ActivitySedentary,
		nutrition.ActivityLightlyActive,
		nutrition.ActivityModeratelyActive,
		nutrition.ActivityVeryActive,
		nutrition.ActivityExtraActive,
	}

	return nutrition.Profile{
		WeightKG:      f.faker.Float64Range(50, 120),
		HeightCM:      f.faker.Float64Range(150, 200),
		Age:           f.faker.Number(18, 80),
		Gender:        genders[f.faker.Number(0, len(genders)-1)],
		ActivityLevel: levels[f.faker.Number(0, len(levels)-1)],
		Goals:         "maintenance",
	}
}

// FoodLogFactory builds food log entries for tests
type FoodLogFactory struct {
	faker *gofakeit.Faker
}

// NewFoodLogFactory creates a food log factory with a seeded faker
func NewFoodLogFactory(seed int64) *FoodLogFactory {
	return &FoodLogFactory{faker: gofakeit.New(seed)}
}

// Entry returns a food log entry for the user at the given time
func (f *FoodLogFactory) Entry(userID uuid.UUID, loggedAt time.Time) insights.FoodLog {
	return insights.FoodLog{
		ID:       uuid.New(),
		UserID:   userID,
		FoodName: f.faker.Fruit(),
		MealType: "lunch",
		Calories: f.faker.Float64Range(50, 800),
		Protein:  f.faker.Float64Range(0, 50),
		Carbs:    f.faker.Float64Range(0, 100),
		Fat:      f.faker.Float64Range(0, 40),
		Servings: 1,
		LoggedAt: loggedAt,
	}
}

// CatalogRecords returns a small varied food set that covers every meal type
// keyword group plus a non-matching filler food.
func CatalogRecords() []catalog.FoodRecord {
	return []catalog.FoodRecord{
		{Name: "Oatmeal Porridge", Calories: 158, Protein: 6, Carbs: 27, Fat: 3.2},
		{Name: "Scrambled Eggs", Calories: 91, Protein: 6.1, Carbs: 1, Fat: 6.7},
		{Name: "Chicken Salad Sandwich", Calories: 350, Protein: 22, Carbs: 30, Fat: 14},
		{Name: "Grilled Salmon Dinner", Calories: 412, Protein: 40, Carbs: 2, Fat: 26},
		{Name: "Lentil Curry Rice", Calories: 320, Protein: 14, Carbs: 52, Fat: 6},
		{Name: "Mixed Nuts", Calories: 607, Protein: 20, Carbs: 21, Fat: 54},
		{Name: "Fruit Yogurt", Calories: 120, Protein: 5, Carbs: 19, Fat: 2.5},
		{Name: "Plain Tofu", Calories: 76, Protein: 8, Carbs: 1.9, Fat: 4.8},
	}
}

// NewTestUser creates a user entity with a known password
func NewTestUser(email, password string) (*user.User, error) {
	return user.NewUser(email, "Test Person", password)
}
