package flocking

import (
	"fmt"
	"sort"

	"github.com/spboyer/agentplot/internal/models"
)

// DefaultCollisionDistance is the default collision threshold.
const DefaultCollisionDistance = 1.0

// ValidateCollisionDistance rejects negative thresholds.
func ValidateCollisionDistance(d float64) error {
	if d < 0 {
		return fmt.Errorf("collision distance must be >= 0, got %g", d)
	}
	return nil
}

// CollisionCounts counts, per step and role, the rows whose distance is at
// or below threshold. Rows are not reduced to unordered pairs first, so a
// collision logged as both (a, b) and (b, a) counts twice. Results are
// ordered by role and then by step; steps without collisions are absent.
func CollisionCounts(pairs []models.LabeledPair, threshold float64) []models.CollisionSummary {
	type key struct {
		role models.Role
		step int
	}
	counts := make(map[key]int)
	for _, p := range pairs {
		if p.Distance <= threshold {
			counts[key{p.Role, p.Step}]++
		}
	}

	out := make([]models.CollisionSummary, 0, len(counts))
	for k, n := range counts {
		out = append(out, models.CollisionSummary{Step: k.step, Count: n, Role: k.role})
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
