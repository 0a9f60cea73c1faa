package flocking

import "github.com/spboyer/agentplot/internal/models"

// MaxLLMBirdID is the highest bird id steered by the language model in a
// hybrid run; every bird above it follows the NetLogo rules.
const MaxLLMBirdID = 4

// ClassifyBird returns the role of a bird in a hybrid run.
func ClassifyBird(id int) models.Role {
	if id <= MaxLLMBirdID {
		return models.RoleHybridLLM
	}
	return models.RoleHybridNetLogo
}

// LabelHybrid tags each pair of a hybrid run with the role of its first bird.
func LabelHybrid(pairs []models.PairRecord) []models.LabeledPair {
	out := make([]models.LabeledPair, len(pairs))
	for i, p := range pairs {
		out[i] = models.LabeledPair{PairRecord: p, Role: ClassifyBird(p.Bird1)}
	}
	return out
}

// LabelRuleBased tags every pair of a rule-based run as NetLogo.
func LabelRuleBased(pairs []models.PairRecord) []models.LabeledPair {
	out := make([]models.LabeledPair, len(pairs))
	for i, p := range pairs {
		out[i] = models.LabeledPair{PairRecord: p, Role: models.RoleNetLogo}
	}
	return out
}
