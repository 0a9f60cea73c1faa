package flocking

import (
	"fmt"
	"sort"

	"github.com/spboyer/agentplot/internal/models"
)

// Defaults for neighbour counting.
const (
	DefaultNeighborStride   = 50
	DefaultNeighborDistance = 5.0
	// CollisionBoundary is the distance at or below which two birds overlap.
	// Such pairs are collisions, not neighbours.
	CollisionBoundary = 1.0
)

// NeighborParams controls which rows count as neighbour observations.
type NeighborParams struct {
	// Stride keeps only steps where step mod Stride == 0.
	Stride int
	// MaxDistance is the inclusive outer radius of the neighbour band.
	MaxDistance float64
}

// DefaultNeighborParams returns a stride of 50 steps and a radius of 5.
func DefaultNeighborParams() NeighborParams {
	return NeighborParams{Stride: DefaultNeighborStride, MaxDistance: DefaultNeighborDistance}
}

// Validate rejects non-positive strides and radii inside the collision band.
func (p NeighborParams) Validate() error {
	if p.Stride < 1 {
		return fmt.Errorf("neighbor stride must be >= 1, got %d", p.Stride)
	}
	if p.MaxDistance <= CollisionBoundary {
		return fmt.Errorf("neighbor distance must be > %g, got %g", CollisionBoundary, p.MaxDistance)
	}
	return nil
}

// NeighborRows returns the rows that count as neighbour observations:
// unordered pairs with CollisionBoundary < distance <= MaxDistance at a
// sampled step.
func NeighborRows(pairs []models.LabeledPair, p NeighborParams) []models.LabeledPair {
	var out []models.LabeledPair
	for _, pair := range UniquePairs(pairs) {
		if pair.Distance > CollisionBoundary && pair.Distance <= p.MaxDistance && pair.Step%p.Stride == 0 {
			out = append(out, pair)
		}
	}
	return out
}

// NeighborCounts computes, for every sampled step and role, the mean number
// of distinct neighbours per bird. Only birds with at least one qualifying
// neighbour at a step contribute to that step's mean, and a (step, role)
// without qualifying rows yields no record at all. Results are ordered by
// role (see models.Roles) and then by step.
func NeighborCounts(pairs []models.LabeledPair, p NeighborParams) []models.NeighborSummary {
	type birdKey struct {
		role  models.Role
		step  int
		bird1 int
	}
	neighbors := make(map[birdKey]map[int]struct{})
	for _, pair := range NeighborRows(pairs, p) {
		k := birdKey{pair.Role, pair.Step, pair.Bird1}
		set, ok := neighbors[k]
		if !ok {
			set = make(map[int]struct{})
			neighbors[k] = set
		}
		set[pair.Bird2] = struct{}{}
	}

	type stepKey struct {
		role models.Role
		step int
	}
	type tally struct {
		birds int
		sum   int
	}
	steps := make(map[stepKey]*tally)
	for k, set := range neighbors {
		sk := stepKey{k.role, k.step}
		t, ok := steps[sk]
		if !ok {
			t = &tally{}
			steps[sk] = t
		}
		t.birds++
		t.sum += len(set)
	}

	out := make([]models.NeighborSummary, 0, len(steps))
	for k, t := range steps {
		out = append(out, models.NeighborSummary{
			Step:         k.step,
			AvgNeighbors: float64(t.sum) / float64(t.birds),
			Role:         k.role,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		ri, rj := models.RoleRank(out[i].Role), models.RoleRank(out[j].Role)
		if ri != rj {
			return ri < rj
		}
		if out[i].Role != out[j].Role {
			return out[i].Role < out[j].Role
		}
		return out[i].Step < out[j].Step
	})
	return out
}
