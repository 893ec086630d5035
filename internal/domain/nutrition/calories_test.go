package nutrition

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func completeProfile() Profile {
	return Profile{
		WeightKG:      70,
		HeightCM:      175,
		Age:           30,
		Gender:        GenderMale,
		ActivityLevel: ActivityModeratelyActive,
	}
}

func TestEstimateCalories(t *testing.T) {
	t.Run("CompleteMaleProfile_UsesMifflinStJeor", func(t *testing.T) {
		// BMR = 10*70 + 6.25*175 - 5*30 + 5 = 1648.75; *1.55 = 2555.5625
		got := EstimateCalories(completeProfile())
		assert.Equal(t, 2555, got)
	})

	t.Run("CompleteFemaleProfile_UsesFemaleOffset", func(t *testing.T) {
		p := completeProfile()
		p.Gender = GenderFemale
		// BMR = 1648.75 - 166 = 1482.75; *1.55 = 2298.2625
		got := EstimateCalories(p)
		assert.Equal(t, 2298, got)
	})

	t.Run("NonMaleGender_TreatedAsFemaleOffset", func(t *testing.T) {
		p := completeProfile()
		p.Gender = GenderOther
		assert.Equal(t, EstimateCalories(func() Profile {
			f := completeProfile()
			f.Gender = GenderFemale
			return f
		}()), EstimateCalories(p))
	})

	t.Run("IncompleteProfile_FallsBackToBase", func(t *testing.T) {
		p := Profile{ActivityLevel: ActivityModeratelyActive}
		// 1800 * 1.55
		assert.Equal(t, 2790, EstimateCalories(p))
	})

	t.Run("EmptyProfile_UsesDefaultMultiplier", func(t *testing.T) {
		assert.Equal(t, 2790, EstimateCalories(Profile{}))
	})

	t.Run("UnknownActivityLevel_UsesDefaultMultiplier", func(t *testing.T) {
		p := completeProfile()
		p.ActivityLevel = "triathlete"
		assert.Equal(t, EstimateCalories(completeProfile()), EstimateCalories(p))
	})

	t.Run("ActivityLevels_AreMonotonic", func(t *testing.T) {
		levels := []ActivityLevel{
			ActivitySedentary,
			ActivityLightlyActive,
			ActivityModeratelyActive,
			ActivityVeryActive,
			ActivityExtraActive,
		}

		prev := 0
		for _, level := range levels {
			p := completeProfile()
			p.ActivityLevel = level
			got := EstimateCalories(p)
			assert.Greater(t, got, prev, "level %s", level)
			prev = got
		}
	})

	t.Run("WeightLossGoal_AppliesDeficit", func(t *testing.T) {
		p := completeProfile()
		p.Goals = "weight_loss"
		// 2555.5625 * 0.85 = 2172.228
		assert.Equal(t, 2172, EstimateCalories(p))
	})

	t.Run("WeightGainGoal_AppliesSurplus", func(t *testing.T) {
		p := completeProfile()
		p.Goals = "weight_gain"
		// 2555.5625 * 1.15 = 2938.897
		assert.Equal(t, 2938, EstimateCalories(p))
	})

	t.Run("LossKeywordWinsOverGain", func(t *testing.T) {
		p := completeProfile()
		p.Goals = "weight_loss then weight_gain"
		assert.Equal(t, 2172, EstimateCalories(p))
	})

	t.Run("MaintenanceGoal_NoAdjustment", func(t *testing.T) {
		p := completeProfile()
		p.Goals = "maintenance"
		assert.Equal(t, 2555, EstimateCalories(p))
	})

	t.Run("ResultIsTruncatedNotRounded", func(t *testing.T) {
		// 2555.5625 would round to 2556
		assert.Equal(t, 2555, EstimateCalories(completeProfile()))
	})
}
