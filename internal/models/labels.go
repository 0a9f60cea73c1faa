package models

// Condition identifies the model variant an ant-colony log came from.
type Condition string

const (
	ConditionLLM     Condition = "LLM"
	ConditionNetLogo Condition = "NetLogo"
	ConditionHybrid  Condition = "Hybrid"
)

// Conditions lists the ant-colony variants in plotting order.
var Conditions = []Condition{ConditionLLM, ConditionNetLogo, ConditionHybrid}

// Role identifies the subgroup a bird belongs to in the flocking runs.
// Hybrid runs mix LLM-steered and rule-steered birds; rule-based runs
// contain rule-steered birds only.
type Role string

const (
	RoleHybridLLM     Role = "Hybrid (LLM)"
	RoleHybridNetLogo Role = "Hybrid (NetLogo)"
	RoleNetLogo       Role = "NetLogo"
)

// Roles lists bird roles in plotting order.
var Roles = []Role{RoleHybridLLM, RoleHybridNetLogo, RoleNetLogo}

// RoleRank returns the position of r in Roles, or len(Roles) for an
// unknown role so that unknown roles sort last.
func RoleRank(r Role) int {
	for i, known := range Roles {
		if known == r {
			return i
		}
	}
	return len(Roles)
}
