package foraging

import (
	"sort"
	"strconv"

	"github.com/spboyer/agentplot/internal/models"
	"github.com/spboyer/agentplot/internal/statistics"
)

// DurationRun holds the trip durations of one seed for each variant.
type DurationRun struct {
	LLM     []models.TripDuration
	NetLogo []models.TripDuration
	Hybrid  []models.TripDuration
}

// CombineDurations labels every trip with its variant and unions all seeds.
// Numeric patch labels are canonicalised, see CanonicalPatches.
func CombineDurations(runs []DurationRun) []models.LabeledDuration {
	var out []models.LabeledDuration
	for _, run := range runs {
		out = appendTrips(out, run.LLM, models.ConditionLLM)
		out = appendTrips(out, run.NetLogo, models.ConditionNetLogo)
		out = appendTrips(out, run.Hybrid, models.ConditionHybrid)
	}
	return CanonicalPatches(out)
}

// CanonicalPatches returns trips with every patch label written in its
// shortest numeric form, so "1", "1.0" and "01" name one patch. When any
// label is not a number, trips is returned unchanged.
func CanonicalPatches(trips []models.LabeledDuration) []models.LabeledDuration {
	values := make([]float64, len(trips))
	for i, t := range trips {
		v, err := strconv.ParseFloat(t.Patch, 64)
		if err != nil {
			return trips
		}
		values[i] = v
	}
	out := make([]models.LabeledDuration, len(trips))
	for i, t := range trips {
		t.Patch = strconv.FormatFloat(values[i], 'f', -1, 64)
		out[i] = t
	}
	return out
}

func appendTrips(dst []models.LabeledDuration, trips []models.TripDuration, source models.Condition) []models.LabeledDuration {
	for _, t := range trips {
		dst = append(dst, models.LabeledDuration{TripDuration: t, Source: source})
	}
	return dst
}

// DescribeDurations groups trips by (patch, variant) and describes the
// step counts of each group. Groups are ordered by patch, then by variant
// name. Numerically equal patch labels form one group.
func DescribeDurations(trips []models.LabeledDuration) []models.GroupStats {
	trips = CanonicalPatches(trips)
	type key struct {
		patch  string
		source models.Condition
	}
	groups := make(map[key][]float64)
	var patches []string
	for _, t := range trips {
		k := key{t.Patch, t.Source}
		groups[k] = append(groups[k], float64(t.Steps))
		patches = append(patches, t.Patch)
	}

	keys := make([]key, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	less := PatchLess(patches)
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].patch != keys[j].patch {
			return less(keys[i].patch, keys[j].patch)
		}
		return keys[i].source < keys[j].source
	})

	out := make([]models.GroupStats, 0, len(keys))
	for _, k := range keys {
		out = append(out, models.GroupStats{
			Keys:  []string{k.patch, string(k.source)},
			Stats: statistics.Describe(groups[k]),
		})
	}
	return out
}

// Patches returns the distinct patches of trips in chart order.
func Patches(trips []models.LabeledDuration) []string {
	trips = CanonicalPatches(trips)
	seen := make(map[string]bool)
	var out []string
	for _, t := range trips {
		if !seen[t.Patch] {
			seen[t.Patch] = true
			out = append(out, t.Patch)
		}
	}
	less := PatchLess(out)
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

// PatchLess returns an ordering for patch labels: numeric when every label
// in patches parses as a number, lexical otherwise.
func PatchLess(patches []string) func(a, b string) bool {
	numeric := true
	for _, p := range patches {
		if _, err := strconv.ParseFloat(p, 64); err != nil {
			numeric = false
			break
		}
	}
	if !numeric {
		return func(a, b string) bool { return a < b }
	}
	return func(a, b string) bool {
		fa, _ := strconv.ParseFloat(a, 64)
		fb, _ := strconv.ParseFloat(b, 64)
		if fa != fb {
			return fa < fb
		}
		return a < b
	}
}
