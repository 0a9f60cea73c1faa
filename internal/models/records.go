package models

// PairRecord is one row of a flocking interaction log: the distance and
// heading difference between two birds at a recorded step.
type PairRecord struct {
	Step        int     `json:"step_number"`
	Bird1       int     `json:"bird1_id"`
	Bird2       int     `json:"bird2_id"`
	Distance    float64 `json:"distance"`
	HeadingDiff float64 `json:"heading_difference"`
}

// FoodSample is the running colony food total at a step.
type FoodSample struct {
	Step   int     `json:"step_number"`
	Amount float64 `json:"food_amount"`
}

// TripDuration is the number of steps a single foraging trip took.
// Patch is kept as read from the log; patches are usually small integers.
type TripDuration struct {
	Patch string `json:"food_patch"`
	Steps int    `json:"steps"`
}

// LabeledPair is a PairRecord tagged with the role of its first bird.
type LabeledPair struct {
	PairRecord
	Role Role `json:"role"`
}

// LabeledFood is a FoodSample tagged with the model variant that produced it.
type LabeledFood struct {
	FoodSample
	Source Condition `json:"source"`
}

// LabeledDuration is a TripDuration tagged with the model variant that produced it.
type LabeledDuration struct {
	TripDuration
	Source Condition `json:"source"`
}
