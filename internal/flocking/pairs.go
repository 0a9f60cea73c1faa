package flocking

import (
	"sort"

	"github.com/spboyer/agentplot/internal/models"
)

// UniquePairs keeps only rows with Bird1 < Bird2, reducing a symmetric log
// to one row per unordered pair. Self-pairs are dropped as well.
func UniquePairs(pairs []models.LabeledPair) []models.LabeledPair {
	out := make([]models.LabeledPair, 0, len(pairs)/2)
	for _, p := range pairs {
		if p.Bird1 < p.Bird2 {
			out = append(out, p)
		}
	}
	return out
}

// PairSeries combines hybrid and rule-based runs into one table for the
// heading-difference and distance charts. Both inputs are reduced to
// unordered pairs; hybrid rows are labelled by their first bird and ordered
// LLM role first (stable), then the rule-based rows follow labelled NetLogo.
func PairSeries(hybrid, ruleBased []models.PairRecord) []models.LabeledPair {
	h := UniquePairs(LabelHybrid(hybrid))
	sort.SliceStable(h, func(i, j int) bool {
		return models.RoleRank(h[i].Role) < models.RoleRank(h[j].Role)
	})
	return append(h, UniquePairs(LabelRuleBased(ruleBased))...)
}
