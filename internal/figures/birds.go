package figures

import (
	"context"
	"slices"
	"strconv"

	"github.com/spboyer/agentplot/internal/dataset"
	"github.com/spboyer/agentplot/internal/flocking"
	"github.com/spboyer/agentplot/internal/models"
	"github.com/spboyer/agentplot/internal/projectconfig"
	"github.com/spboyer/agentplot/internal/render"
	"github.com/spboyer/agentplot/internal/reporting"
	"github.com/spboyer/agentplot/internal/utils"
)

// pairLogs names a pair of hybrid and rule-based flocking logs and the
// measurement they carry.
type pairLogs struct {
	hybrid    string
	ruleBased string
	metric    string
	yLabel    string
}

var (
	headingLogs = pairLogs{
		hybrid:    "headingsdiff_flockdata_seed_%d.csv",
		ruleBased: "headingsdiff_flockdata_rulebased_seed_%d.csv",
		metric:    dataset.ColHeadingDiff,
		yLabel:    "Heading Difference",
	}
	distanceLogs = pairLogs{
		hybrid:    "distances_flockdata_seed_%d.csv",
		ruleBased: "distances_flockdata_rulebased_seed_%d.csv",
		metric:    dataset.ColDistance,
		yLabel:    "Distances",
	}
)

// load reads every seed of both flocks. Results are indexed by seed.
func (l pairLogs) load(ctx context.Context, cfg *projectconfig.ProjectConfig) (hybrid, ruleBased [][]models.PairRecord, err error) {
	seeds := cfg.Seeds.Seeds()
	loadPairs := func(p string) ([]models.PairRecord, error) {
		return dataset.LoadPairs(p, l.metric)
	}
	hybrid, err = dataset.LoadAll(ctx, utils.SeedFiles(l.hybrid, seeds, cfg.Paths.Data), loadPairs)
	if err != nil {
		return nil, nil, err
	}
	ruleBased, err = dataset.LoadAll(ctx, utils.SeedFiles(l.ruleBased, seeds, cfg.Paths.Data), loadPairs)
	if err != nil {
		return nil, nil, err
	}
	return hybrid, ruleBased, nil
}

func (l pairLogs) value(p models.PairRecord) float64 {
	if l.metric == dataset.ColHeadingDiff {
		return p.HeadingDiff
	}
	return p.Distance
}

func pairSeriesBuilder(logs pairLogs, output string) builder {
	return func(ctx context.Context, cfg *projectconfig.ProjectConfig) (*Result, error) {
		hybrid, ruleBased, err := logs.load(ctx, cfg)
		if err != nil {
			return nil, err
		}
		series := flocking.PairSeries(slices.Concat(hybrid...), slices.Concat(ruleBased...))

		obs := make([]render.Observation, len(series))
		for i, p := range series {
			obs[i] = render.Observation{Hue: string(p.Role), X: float64(p.Step), Y: logs.value(p.PairRecord)}
		}
		chart, err := render.LineChart(render.LineSpec{
			Name:         output,
			XLabel:       stepLabel,
			YLabel:       logs.yLabel,
			Hues:         roleHues(),
			Observations: obs,
		}, cfg.Plot)
		if err != nil {
			return nil, err
		}
		return &Result{Chart: chart}, nil
	}
}

// collisionSummaries counts collisions seed by seed so that every seed
// contributes its own count per step and role.
func collisionSummaries(hybrid, ruleBased [][]models.PairRecord, threshold float64) []models.CollisionSummary {
	var out []models.CollisionSummary
	for _, seed := range hybrid {
		out = append(out, flocking.CollisionCounts(flocking.LabelHybrid(seed), threshold)...)
	}
	for _, seed := range ruleBased {
		out = append(out, flocking.CollisionCounts(flocking.LabelRuleBased(seed), threshold)...)
	}
	return out
}

func buildCollisions(ctx context.Context, cfg *projectconfig.ProjectConfig) (*Result, error) {
	hybrid, ruleBased, err := distanceLogs.load(ctx, cfg)
	if err != nil {
		return nil, err
	}
	counts := collisionSummaries(hybrid, ruleBased, cfg.Analysis.CollisionDistance)

	obs := make([]render.Observation, len(counts))
	for i, c := range counts {
		obs[i] = render.Observation{Hue: string(c.Role), X: float64(c.Step), Y: float64(c.Count)}
	}
	chart, err := render.LineChart(render.LineSpec{
		Name:         CollisionsOutput,
		XLabel:       stepLabel,
		YLabel:       "Number of Collisions",
		Hues:         roleHues(),
		Observations: obs,
	}, cfg.Plot)
	if err != nil {
		return nil, err
	}
	return &Result{Chart: chart}, nil
}

// neighborSummaries computes neighbour averages seed by seed so that every
// seed contributes its own average per sampled step and role.
func neighborSummaries(hybrid, ruleBased [][]models.PairRecord, p flocking.NeighborParams) []models.NeighborSummary {
	var out []models.NeighborSummary
	for _, seed := range hybrid {
		out = append(out, flocking.NeighborCounts(flocking.LabelHybrid(seed), p)...)
	}
	for _, seed := range ruleBased {
		out = append(out, flocking.NeighborCounts(flocking.LabelRuleBased(seed), p)...)
	}
	return out
}

func buildNeighbors(ctx context.Context, cfg *projectconfig.ProjectConfig) (*Result, error) {
	hybrid, ruleBased, err := distanceLogs.load(ctx, cfg)
	if err != nil {
		return nil, err
	}
	summaries := neighborSummaries(hybrid, ruleBased, cfg.Analysis.NeighborParams())
	table := reporting.NeighborTable("Average neighbours per bird", flocking.NeighborStats(summaries))

	var steps []int
	obs := make([]render.BoxObservation, len(summaries))
	for i, s := range summaries {
		obs[i] = render.BoxObservation{Category: strconv.Itoa(s.Step), Hue: string(s.Role), Value: s.AvgNeighbors}
		steps = append(steps, s.Step)
	}
	slices.Sort(steps)
	steps = slices.Compact(steps)
	categories := make([]string, len(steps))
	for i, s := range steps {
		categories[i] = strconv.Itoa(s)
	}

	chart, err := render.BoxChart(render.BoxSpec{
		Name:         NeighborsOutput,
		XLabel:       stepLabel,
		YLabel:       "Number of Neighbors",
		Categories:   categories,
		Hues:         roleHues(),
		Observations: obs,
	}, cfg.Plot)
	if err != nil {
		return nil, err
	}
	return &Result{Chart: chart, Tables: []reporting.Table{table}}, nil
}
