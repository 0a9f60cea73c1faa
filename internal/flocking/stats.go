package flocking

import (
	"sort"

	"github.com/spboyer/agentplot/internal/models"
	"github.com/spboyer/agentplot/internal/statistics"
)

// NeighborStats describes the per-step neighbour averages of each role.
// Groups follow role order; roles without summaries are omitted.
func NeighborStats(summaries []models.NeighborSummary) []models.GroupStats {
	groups := make(map[models.Role][]float64)
	for _, s := range summaries {
		groups[s.Role] = append(groups[s.Role], s.AvgNeighbors)
	}

	roles := make([]models.Role, 0, len(groups))
	for r := range groups {
		roles = append(roles, r)
	}
	sort.Slice(roles, func(i, j int) bool {
		ri, rj := models.RoleRank(roles[i]), models.RoleRank(roles[j])
		if ri != rj {
			return ri < rj
		}
		return roles[i] < roles[j]
	})

	out := make([]models.GroupStats, 0, len(roles))
	for _, r := range roles {
		out = append(out, models.GroupStats{
			Keys:  []string{string(r)},
			Stats: statistics.Describe(groups[r]),
		})
	}
	return out
}
