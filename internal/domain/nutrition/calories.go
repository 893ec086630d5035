package nutrition

// DefaultBaseCalories is the basal estimate used when the profile lacks the
// body metrics required by the Mifflin-St Jeor equation.
const DefaultBaseCalories = 1800

// activityMultipliers translates basal metabolic rate into total daily
// energy expenditure. This table is the single source of truth for valid
// activity levels.
var activityMultipliers = map[ActivityLevel]float64{
	ActivitySedentary:        1.2,
	ActivityLightlyActive:    1.375,
	ActivityModeratelyActive: 1.55,
	ActivityVeryActive:       1.725,
	ActivityExtraActive:      1.9,
}

// defaultActivityMultiplier is applied when the activity level is absent or
// not in the table (moderately active).
const defaultActivityMultiplier = 1.55

// Goal adjustment factors. Weight loss is checked before weight gain; the
// first matching keyword wins.
const (
	weightLossFactor = 0.85
	weightGainFactor = 1.15
)

// EstimateCalories converts a profile into an estimated daily calorie
// target. When all body metrics are present the base is computed with the
// Mifflin-St Jeor equation, otherwise DefaultBaseCalories is used. The base
// is then scaled by the activity multiplier and the goal adjustment, and the
// result is truncated to an integer. There are no error conditions: absent
// fields always default.
func EstimateCalories(p Profile) int {
	base := float64(DefaultBaseCalories)
	if p.HasBodyMetrics() {
		base = 10*p.WeightKG + 6.25*p.HeightCM - 5*float64(p.Age)
		if Gender(normalize(string(p.Gender))) == GenderMale {
			base += 5
		} else {
			base -= 161
		}
	}

	multiplier := defaultActivityMultiplier
	if m, ok := activityMultipliers[p.ActivityLevel]; ok {
		multiplier = m
	}
	calories := base * multiplier

	switch {
	case p.goalContains("weight_loss"):
		calories *= weightLossFactor
	case p.goalContains("weight_gain"):
		calories *= weightGainFactor
	}

	return int(calories)
}
