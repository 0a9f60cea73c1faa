package statistics

import (
	"math/rand"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// ConfidenceInterval holds the result of a bootstrap confidence interval computation.
type ConfidenceInterval struct {
	Lower           float64 `json:"lower"`
	Upper           float64 `json:"upper"`
	Mean            float64 `json:"mean"`
	ConfidenceLevel float64 `json:"confidence_level"`
	NumBootstraps   int     `json:"num_bootstraps"`
}

// DefaultBootstrapIterations is the number of bootstrap resamples used for
// chart error bands.
const DefaultBootstrapIterations = 1000

// DefaultSeed seeds the resampler so that repeated runs over the same input
// draw identical bands.
const DefaultSeed int64 = 0

// BootstrapCI computes a bootstrap confidence interval of the mean using the
// percentile method. confidenceLevel should be in (0, 1), e.g. 0.95.
// Results are deterministic for a given input.
func BootstrapCI(values []float64, confidenceLevel float64) ConfidenceInterval {
	return BootstrapCIWithSeed(values, confidenceLevel, DefaultSeed)
}

// BootstrapCIWithSeed is like BootstrapCI but accepts a seed.
// A negative seed uses a non-deterministic source.
func BootstrapCIWithSeed(values []float64, confidenceLevel float64, seed int64) ConfidenceInterval {
	return BootstrapCIWithIterations(values, confidenceLevel, seed, DefaultBootstrapIterations)
}

// BootstrapCIWithIterations is like BootstrapCIWithSeed with an explicit
// number of resamples. Fewer than 2 values yield a degenerate interval at
// the mean with NumBootstraps 0.
func BootstrapCIWithIterations(values []float64, confidenceLevel float64, seed int64, iters int) ConfidenceInterval {
	n := len(values)
	if n < 2 || iters < 1 {
		m := mean(values)
		return ConfidenceInterval{
			Lower:           m,
			Upper:           m,
			Mean:            m,
			ConfidenceLevel: confidenceLevel,
		}
	}

	var rng *rand.Rand
	if seed >= 0 {
		rng = rand.New(rand.NewSource(seed))
	} else {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}

	bootMeans := make([]float64, iters)
	sample := make([]float64, n)
	for i := 0; i < iters; i++ {
		for j := 0; j < n; j++ {
			sample[j] = values[rng.Intn(n)]
		}
		bootMeans[i] = stat.Mean(sample, nil)
	}
	sort.Float64s(bootMeans)

	alpha := 1.0 - confidenceLevel
	return ConfidenceInterval{
		Lower:           Quantile(bootMeans, alpha/2),
		Upper:           Quantile(bootMeans, 1-alpha/2),
		Mean:            stat.Mean(values, nil),
		ConfidenceLevel: confidenceLevel,
		NumBootstraps:   iters,
	}
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0.0
	}
	return stat.Mean(values, nil)
}
