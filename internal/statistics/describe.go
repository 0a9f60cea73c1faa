package statistics

import (
	"math"
	"sort"

	"github.com/spboyer/agentplot/internal/models"
	"gonum.org/v1/gonum/stat"
)

// Quantile returns the p-quantile of sorted using linear interpolation
// between closest ranks: the value at position (n-1)*p. sorted must be in
// ascending order. Returns NaN for empty input.
func Quantile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return math.NaN()
	}
	if p <= 0 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[n-1]
	}
	pos := p * float64(n-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo] + (sorted[hi]-sorted[lo])*frac
}

// Median returns the 0.5 quantile of values. values need not be sorted.
func Median(values []float64) float64 {
	return Quantile(sortedCopy(values), 0.5)
}

// Describe computes count, mean, sample standard deviation, min, quartiles
// and max. Empty input yields Count 0 and NaN everywhere else; a single
// value yields a NaN standard deviation.
func Describe(values []float64) models.Describe {
	nan := math.NaN()
	if len(values) == 0 {
		return models.Describe{Mean: nan, Std: nan, Min: nan, Q25: nan, Q50: nan, Q75: nan, Max: nan}
	}

	sorted := sortedCopy(values)
	d := models.Describe{
		Count: len(sorted),
		Mean:  stat.Mean(sorted, nil),
		Std:   nan,
		Min:   sorted[0],
		Q25:   Quantile(sorted, 0.25),
		Q50:   Quantile(sorted, 0.5),
		Q75:   Quantile(sorted, 0.75),
		Max:   sorted[len(sorted)-1],
	}
	if len(sorted) > 1 {
		d.Std = stat.StdDev(sorted, nil)
	}
	return d
}

func sortedCopy(values []float64) []float64 {
	out := make([]float64, len(values))
	copy(out, values)
	sort.Float64s(out)
	return out
}
