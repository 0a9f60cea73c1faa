package foraging

import (
	"math"
	"testing"

	"github.com/spboyer/agentplot/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samples(steps ...int) []models.FoodSample {
	out := make([]models.FoodSample, len(steps))
	for i, s := range steps {
		out[i] = models.FoodSample{Step: s, Amount: float64(s) / 10}
	}
	return out
}

func TestCombineFood_LabelsInOrder(t *testing.T) {
	runs := []FoodRun{
		{LLM: samples(0), NetLogo: samples(0), Hybrid: samples(0)},
		{LLM: samples(20), NetLogo: nil, Hybrid: samples(20, 40)},
	}

	got := CombineFood(runs)
	var sources []models.Condition
	for _, s := range got {
		sources = append(sources, s.Source)
	}
	assert.Equal(t, []models.Condition{
		models.ConditionLLM, models.ConditionNetLogo, models.ConditionHybrid,
		models.ConditionLLM, models.ConditionHybrid, models.ConditionHybrid,
	}, sources)
}

func TestSubsample_StrideKeepsStepZero(t *testing.T) {
	combined := CombineFood([]FoodRun{{LLM: samples(0, 5, 10, 15, 20, 25, 40, 41)}})

	got, err := Subsample(combined, 20)
	require.NoError(t, err)
	var steps []int
	for _, s := range got {
		steps = append(steps, s.Step)
	}
	assert.Equal(t, []int{0, 20, 40}, steps)
}

func TestSubsample_RejectsZeroStride(t *testing.T) {
	_, err := Subsample(nil, 0)
	require.Error(t, err)
}

func trips(patchSteps ...any) []models.TripDuration {
	var out []models.TripDuration
	for i := 0; i < len(patchSteps); i += 2 {
		out = append(out, models.TripDuration{Patch: patchSteps[i].(string), Steps: patchSteps[i+1].(int)})
	}
	return out
}

func TestDescribeDurations(t *testing.T) {
	combined := CombineDurations([]DurationRun{
		{
			LLM:     trips("10", 30, "2", 10, "2", 20),
			NetLogo: trips("2", 40),
			Hybrid:  trips("10", 5),
		},
		{
			LLM: trips("2", 30),
		},
	})

	got := DescribeDurations(combined)
	require.Len(t, got, 4)

	// numeric patch order, then variant name
	assert.Equal(t, []string{"2", "LLM"}, got[0].Keys)
	assert.Equal(t, []string{"2", "NetLogo"}, got[1].Keys)
	assert.Equal(t, []string{"10", "Hybrid"}, got[2].Keys)
	assert.Equal(t, []string{"10", "LLM"}, got[3].Keys)

	llm := got[0].Stats
	assert.Equal(t, 3, llm.Count)
	assert.Equal(t, 20.0, llm.Mean)
	assert.Equal(t, 10.0, llm.Std)
	assert.Equal(t, 10.0, llm.Min)
	assert.Equal(t, 15.0, llm.Q25)
	assert.Equal(t, 20.0, llm.Q50)
	assert.Equal(t, 25.0, llm.Q75)
	assert.Equal(t, 30.0, llm.Max)

	assert.True(t, math.IsNaN(got[1].Stats.Std), "single-trip group has undefined std")
}

func TestPatches_LexicalWhenNotNumeric(t *testing.T) {
	combined := CombineDurations([]DurationRun{{LLM: trips("north", 1, "east", 2, "north", 3)}})
	assert.Equal(t, []string{"east", "north"}, Patches(combined))
}

func TestPatches_Numeric(t *testing.T) {
	combined := CombineDurations([]DurationRun{{LLM: trips("10", 1, "9", 2, "1", 3)}})
	assert.Equal(t, []string{"1", "9", "10"}, Patches(combined))
}

func TestCanonicalPatches(t *testing.T) {
	tests := []struct {
		name    string
		patches []string
		want    []string
	}{
		{name: "numeric spellings merge", patches: []string{"1", "1.0", "01", "2.50"}, want: []string{"1", "1", "1", "2.5"}},
		{name: "non-numeric left alone", patches: []string{"1.0", "north"}, want: []string{"1.0", "north"}},
		{name: "empty", patches: nil, want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var in []models.LabeledDuration
			for _, p := range tt.patches {
				in = append(in, models.LabeledDuration{TripDuration: models.TripDuration{Patch: p, Steps: 1}, Source: models.ConditionLLM})
			}
			var got []string
			for _, d := range CanonicalPatches(in) {
				got = append(got, d.Patch)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDescribeDurations_MergesEqualNumericPatches(t *testing.T) {
	raw := []models.LabeledDuration{
		{TripDuration: models.TripDuration{Patch: "1", Steps: 10}, Source: models.ConditionLLM},
		{TripDuration: models.TripDuration{Patch: "1.0", Steps: 30}, Source: models.ConditionLLM},
	}

	got := DescribeDurations(raw)
	require.Len(t, got, 1)
	assert.Equal(t, []string{"1", "LLM"}, got[0].Keys)
	assert.Equal(t, 2, got[0].Stats.Count)
	assert.Equal(t, []string{"1"}, Patches(raw))
	assert.Equal(t, "1.0", raw[1].Patch, "input is not modified")
}

func TestCombineDurations_CanonicalPatches(t *testing.T) {
	combined := CombineDurations([]DurationRun{{LLM: trips("1", 5), Hybrid: trips("1.0", 7)}})
	require.Len(t, combined, 2)
	assert.Equal(t, "1", combined[0].Patch)
	assert.Equal(t, "1", combined[1].Patch)
}
