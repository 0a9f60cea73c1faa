package models

// NeighborSummary is the mean number of distinct neighbours per bird of
// one role at one sampled step.
type NeighborSummary struct {
	Step         int     `json:"step_number"`
	AvgNeighbors float64 `json:"average_neighbors"`
	Role         Role    `json:"bird_type"`
}

// CollisionSummary is the number of collision rows for one role at one step.
type CollisionSummary struct {
	Step  int  `json:"step_number"`
	Count int  `json:"collision_count"`
	Role  Role `json:"bird_type"`
}

// Describe holds descriptive statistics for one group of observations.
// Std is NaN when the group holds fewer than two observations.
type Describe struct {
	Count int     `json:"count"`
	Mean  float64 `json:"mean"`
	Std   float64 `json:"std"`
	Min   float64 `json:"min"`
	Q25   float64 `json:"q25"`
	Q50   float64 `json:"q50"`
	Q75   float64 `json:"q75"`
	Max   float64 `json:"max"`
}

// GroupStats pairs a group key with its statistics. Keys are ordered the
// way the group was formed, e.g. {patch, condition}.
type GroupStats struct {
	Keys  []string `json:"keys"`
	Stats Describe `json:"stats"`
}
