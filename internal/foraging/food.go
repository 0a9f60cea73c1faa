// Package foraging prepares the ant-colony logs for charting: running food
// totals per model variant and the durations of individual foraging trips.
package foraging

import (
	"fmt"

	"github.com/spboyer/agentplot/internal/models"
)

// Defaults for the food-total chart.
const (
	DefaultFoodStride = 20
	// DefaultHybridRowLimit caps the hybrid series, which runs longer than
	// the other variants, to the common horizon.
	DefaultHybridRowLimit = 999
)

// FoodRun holds the food-total series of one seed for each variant.
type FoodRun struct {
	LLM     []models.FoodSample
	NetLogo []models.FoodSample
	Hybrid  []models.FoodSample
}

// CombineFood labels every series with its variant and unions all seeds,
// keeping seed order and LLM, NetLogo, Hybrid order within a seed.
func CombineFood(runs []FoodRun) []models.LabeledFood {
	var out []models.LabeledFood
	for _, run := range runs {
		out = appendFood(out, run.LLM, models.ConditionLLM)
		out = appendFood(out, run.NetLogo, models.ConditionNetLogo)
		out = appendFood(out, run.Hybrid, models.ConditionHybrid)
	}
	return out
}

func appendFood(dst []models.LabeledFood, samples []models.FoodSample, source models.Condition) []models.LabeledFood {
	for _, s := range samples {
		dst = append(dst, models.LabeledFood{FoodSample: s, Source: source})
	}
	return dst
}

// Subsample keeps the samples whose step is a multiple of stride.
func Subsample(samples []models.LabeledFood, stride int) ([]models.LabeledFood, error) {
	if stride < 1 {
		return nil, fmt.Errorf("food stride must be >= 1, got %d", stride)
	}
	out := make([]models.LabeledFood, 0, len(samples)/stride+1)
	for _, s := range samples {
		if s.Step%stride == 0 {
			out = append(out, s)
		}
	}
	return out, nil
}
