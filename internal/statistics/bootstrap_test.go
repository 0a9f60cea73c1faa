package statistics

import (
	"math"
	"testing"
)

func TestBootstrapCI_EmptyValues(t *testing.T) {
	ci := BootstrapCI(nil, 0.95)
	if ci.Mean != 0.0 || ci.Lower != 0.0 || ci.Upper != 0.0 {
		t.Errorf("expected zero CI for empty input, got %+v", ci)
	}
	if ci.NumBootstraps != 0 {
		t.Errorf("expected 0 bootstraps for empty input, got %d", ci.NumBootstraps)
	}
}

func TestBootstrapCI_SingleValue(t *testing.T) {
	ci := BootstrapCI([]float64{7.5}, 0.95)
	if ci.Mean != 7.5 || ci.Lower != 7.5 || ci.Upper != 7.5 {
		t.Errorf("expected degenerate CI for single value, got %+v", ci)
	}
}

func TestBootstrapCI_IdenticalValues(t *testing.T) {
	ci := BootstrapCIWithSeed([]float64{3, 3, 3, 3}, 0.95, 42)
	if math.Abs(ci.Lower-3) > 1e-9 || math.Abs(ci.Upper-3) > 1e-9 {
		t.Errorf("expected CI [3, 3] for identical values, got [%f, %f]", ci.Lower, ci.Upper)
	}
}

func TestBootstrapCI_KnownDistribution(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	ci := BootstrapCIWithSeed(values, 0.95, 42)

	if math.Abs(ci.Mean-5.5) > 1e-9 {
		t.Errorf("expected mean 5.5, got %f", ci.Mean)
	}
	if ci.Lower >= ci.Mean {
		t.Errorf("lower bound %f should be < mean %f", ci.Lower, ci.Mean)
	}
	if ci.Upper <= ci.Mean {
		t.Errorf("upper bound %f should be > mean %f", ci.Upper, ci.Mean)
	}
	if ci.Lower < 1 || ci.Upper > 10 {
		t.Errorf("CI should be within the data range, got [%f, %f]", ci.Lower, ci.Upper)
	}
	if ci.NumBootstraps != DefaultBootstrapIterations {
		t.Errorf("expected %d bootstraps, got %d", DefaultBootstrapIterations, ci.NumBootstraps)
	}
}

func TestBootstrapCI_NarrowerAtHigherN(t *testing.T) {
	small := []float64{3, 5, 7}
	large := []float64{3, 4, 5, 6, 7, 3, 4, 5, 6, 7,
		3, 4, 5, 6, 7, 3, 4, 5, 6, 7}

	ciSmall := BootstrapCIWithSeed(small, 0.95, 42)
	ciLarge := BootstrapCIWithSeed(large, 0.95, 42)

	if ciLarge.Upper-ciLarge.Lower >= ciSmall.Upper-ciSmall.Lower {
		t.Errorf("larger sample should yield narrower CI: small=%+v, large=%+v", ciSmall, ciLarge)
	}
}

func TestBootstrapCI_DefaultIsDeterministic(t *testing.T) {
	values := []float64{0.2, 0.4, 0.6, 0.8, 1.7}
	ci1 := BootstrapCI(values, 0.95)
	ci2 := BootstrapCI(values, 0.95)

	if ci1 != ci2 {
		t.Errorf("repeated runs should produce identical CIs: %+v vs %+v", ci1, ci2)
	}
}

func TestBootstrapCI_DifferentConfidenceLevels(t *testing.T) {
	values := []float64{1, 3, 5, 7, 9, 2, 4, 6, 8, 10}
	ci90 := BootstrapCIWithSeed(values, 0.90, 42)
	ci99 := BootstrapCIWithSeed(values, 0.99, 42)

	if ci99.Upper-ci99.Lower <= ci90.Upper-ci90.Lower {
		t.Errorf("99%% CI should be wider than 90%%: 90%%=%+v, 99%%=%+v", ci90, ci99)
	}
}

func TestBootstrapCIWithIterations_ZeroIterations(t *testing.T) {
	ci := BootstrapCIWithIterations([]float64{1, 2, 3}, 0.95, 1, 0)
	if ci.Lower != 2 || ci.Upper != 2 || ci.NumBootstraps != 0 {
		t.Errorf("expected degenerate CI at the mean, got %+v", ci)
	}
}
