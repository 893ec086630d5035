// Package nutrition contains the core domain logic for calorie estimation
// and macronutrient allocation. All operations are pure functions over an
// immutable Profile; absent fields fall back to documented defaults, while
// present-but-invalid fields are rejected at validation time.
package nutrition

import "strings"

// Gender values recognized by the calorie estimator. Any value other than
// "male" (case-insensitive) uses the non-male constant of the
// Mifflin-St Jeor equation.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// ActivityLevel represents self-reported physical activity.
type ActivityLevel string

const (
	ActivitySedentary        ActivityLevel = "sedentary"
	ActivityLightlyActive    ActivityLevel = "lightly_active"
	ActivityModeratelyActive ActivityLevel = "moderately_active"
	ActivityVeryActive       ActivityLevel = "very_active"
	ActivityExtraActive      ActivityLevel = "extra_active"
)

// Profile is the immutable engine input describing a user. Zero values mean
// "absent": an absent field triggers the documented default, it is never an
// error. The caller owns the profile; the engine only reads it.
type Profile struct {
	WeightKG           float64       `json:"weight_kg"`
	HeightCM           float64       `json:"height_cm"`
	Age                int           `json:"age"`
	Gender             Gender        `json:"gender"`
	ActivityLevel      ActivityLevel `json:"activity_level"`
	Goals              string        `json:"goals"`               // free text, matched by substring (e.g. "weight_loss")
	DietaryPreferences string        `json:"dietary_preferences"` // free text, checked for "vegetarian"
}

// Validate rejects present-but-invalid fields. Absent (zero) fields pass.
func (p Profile) Validate() error {
	if p.WeightKG < 0 {
		return ErrInvalidWeight
	}
	if p.HeightCM < 0 {
		return ErrInvalidHeight
	}
	if p.Age < 0 {
		return ErrInvalidAge
	}
	return nil
}

// HasBodyMetrics reports whether weight, height, age and gender are all
// present, i.e. whether the Mifflin-St Jeor equation can be applied.
func (p Profile) HasBodyMetrics() bool {
	return p.WeightKG > 0 && p.HeightCM > 0 && p.Age > 0 && p.Gender != ""
}

// IsVegetarian reports whether the dietary preference text contains
// "vegetarian" (case-insensitive).
func (p Profile) IsVegetarian() bool {
	return strings.Contains(strings.ToLower(p.DietaryPreferences), "vegetarian")
}

// goalContains performs the case-insensitive substring match used for all
// goal-based rules.
func (p Profile) goalContains(keyword string) bool {
	return strings.Contains(strings.ToLower(p.Goals), keyword)
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
