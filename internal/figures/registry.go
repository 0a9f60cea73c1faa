// Package figures binds the log file conventions, aggregations and chart
// layouts of each named figure and runs them.
package figures

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/spboyer/agentplot/internal/models"
	"github.com/spboyer/agentplot/internal/projectconfig"
	"github.com/spboyer/agentplot/internal/render"
	"github.com/spboyer/agentplot/internal/reporting"
)

// Output file names.
const (
	FoodOutput        = "collected_food_amount_hybrid.pdf"
	ReturnStepsOutput = "steps_return_food.pdf"
	SearchStepsOutput = "steps_search_food.pdf"
	HeadingsOutput    = "heading_differences_hybrid_rule-based.pdf"
	DistancesOutput   = "distances_hybrid_rule-based.pdf"
	CollisionsOutput  = "collisions_all.pdf"
	NeighborsOutput   = "average_neighbors_d_all.pdf"
)

const stepLabel = "Step Number"

// Result is what a figure produces before it is written out.
type Result struct {
	Chart  *render.Figure
	Tables []reporting.Table
}

type builder func(ctx context.Context, cfg *projectconfig.ProjectConfig) (*Result, error)

// Figure is a named chart together with how to build it.
type Figure struct {
	Name        string
	Description string
	// Output is the file name the chart is saved under.
	Output string
	build  builder
}

var registry = []Figure{
	{
		Name:        "food",
		Description: "Food collected over time per ant-colony variant, with a zoomed inset of the first steps",
		Output:      FoodOutput,
		build:       buildFood,
	},
	{
		Name:        "return-steps",
		Description: "Steps ants need to return food to the nest, per food patch and variant",
		Output:      ReturnStepsOutput,
		build:       durationBuilder(wayback, ReturnStepsOutput),
	},
	{
		Name:        "search-steps",
		Description: "Steps ants need to find food, per food patch and variant",
		Output:      SearchStepsOutput,
		build:       durationBuilder(search, SearchStepsOutput),
	},
	{
		Name:        "headings",
		Description: "Heading differences between bird pairs, hybrid and rule-based flocks",
		Output:      HeadingsOutput,
		build:       pairSeriesBuilder(headingLogs, HeadingsOutput),
	},
	{
		Name:        "distances",
		Description: "Distances between bird pairs, hybrid and rule-based flocks",
		Output:      DistancesOutput,
		build:       pairSeriesBuilder(distanceLogs, DistancesOutput),
	},
	{
		Name:        "collisions",
		Description: "Collisions per step for each bird role",
		Output:      CollisionsOutput,
		build:       buildCollisions,
	},
	{
		Name:        "neighbors",
		Description: "Average number of neighbours per bird at sampled steps",
		Output:      NeighborsOutput,
		build:       buildNeighbors,
	},
}

// All returns every figure in run order.
func All() []Figure {
	return slices.Clone(registry)
}

// Names returns the names of every figure in run order.
func Names() []string {
	names := make([]string, len(registry))
	for i, f := range registry {
		names[i] = f.Name
	}
	return names
}

// Lookup finds a figure by name.
func Lookup(name string) (Figure, error) {
	for _, f := range registry {
		if f.Name == name {
			return f, nil
		}
	}
	return Figure{}, fmt.Errorf("unknown figure %q (available: %s)", name, strings.Join(Names(), ", "))
}

func conditionHues() []string {
	hues := make([]string, len(models.Conditions))
	for i, c := range models.Conditions {
		hues[i] = string(c)
	}
	return hues
}

func roleHues() []string {
	hues := make([]string, len(models.Roles))
	for i, r := range models.Roles {
		hues[i] = string(r)
	}
	return hues
}
