package figures

import (
	"context"
	"fmt"

	"github.com/spboyer/agentplot/internal/dataset"
	"github.com/spboyer/agentplot/internal/foraging"
	"github.com/spboyer/agentplot/internal/models"
	"github.com/spboyer/agentplot/internal/projectconfig"
	"github.com/spboyer/agentplot/internal/render"
	"github.com/spboyer/agentplot/internal/reporting"
	"github.com/spboyer/agentplot/internal/utils"
)

// Ant-colony log name patterns; %d is the seed.
const (
	foodPattern     = "food_collected_%s_seed_%%d.csv"
	durationPattern = "AntColony_%s_Seed_%%d_%s_duration.csv"
)

// tripKind selects the wayback or search duration logs.
type tripKind string

const (
	wayback tripKind = "wayback"
	search  tripKind = "search"
)

// foodTokens and durationTokens are the variant spellings used in file
// names, in models.Conditions order.
var (
	foodTokens     = []string{"llm", "netlogo", "hybrid"}
	durationTokens = []string{"LLM", "Netlogo", "Hybrid"}
)

func buildFood(ctx context.Context, cfg *projectconfig.ProjectConfig) (*Result, error) {
	a := cfg.Analysis
	seeds := cfg.Seeds.Seeds()

	series := make([][][]models.FoodSample, len(foodTokens))
	for v, token := range foodTokens {
		limit := 0
		if models.Conditions[v] == models.ConditionHybrid {
			limit = a.HybridRowLimit
		}
		paths := utils.SeedFiles(fmt.Sprintf(foodPattern, token), seeds, cfg.Paths.Data)
		loaded, err := dataset.LoadAll(ctx, paths, func(p string) ([]models.FoodSample, error) {
			return dataset.LoadFood(p, limit)
		})
		if err != nil {
			return nil, err
		}
		series[v] = loaded
	}

	runs := make([]foraging.FoodRun, len(seeds))
	for i := range runs {
		runs[i] = foraging.FoodRun{LLM: series[0][i], NetLogo: series[1][i], Hybrid: series[2][i]}
	}
	samples, err := foraging.Subsample(foraging.CombineFood(runs), a.FoodStride)
	if err != nil {
		return nil, err
	}

	obs := make([]render.Observation, len(samples))
	for i, s := range samples {
		obs[i] = render.Observation{Hue: string(s.Source), X: float64(s.Step), Y: s.Amount}
	}
	chart, err := render.LineChart(render.LineSpec{
		Name:         FoodOutput,
		XLabel:       stepLabel,
		YLabel:       "Food Amount",
		Hues:         conditionHues(),
		Observations: obs,
		Inset: &render.InsetSpec{
			XMin: a.Inset.XMin, XMax: a.Inset.XMax,
			YMin: a.Inset.YMin, YMax: a.Inset.YMax,
		},
	}, cfg.Plot)
	if err != nil {
		return nil, err
	}
	return &Result{Chart: chart}, nil
}

func durationBuilder(kind tripKind, output string) builder {
	return func(ctx context.Context, cfg *projectconfig.ProjectConfig) (*Result, error) {
		trips, err := loadDurations(ctx, cfg, kind)
		if err != nil {
			return nil, err
		}

		title := "Steps to return food (wayback trips)"
		if kind == search {
			title = "Steps to find food (search trips)"
		}
		table := reporting.DurationTable(title, foraging.DescribeDurations(trips))

		obs := make([]render.BoxObservation, len(trips))
		for i, t := range trips {
			obs[i] = render.BoxObservation{Category: t.Patch, Hue: string(t.Source), Value: float64(t.Steps)}
		}
		chart, err := render.BoxChart(render.BoxSpec{
			Name:         output,
			XLabel:       dataset.DurationColumns[0],
			YLabel:       dataset.DurationColumns[1],
			Categories:   foraging.Patches(trips),
			Hues:         conditionHues(),
			Observations: obs,
		}, cfg.Plot)
		if err != nil {
			return nil, err
		}
		return &Result{Chart: chart, Tables: []reporting.Table{table}}, nil
	}
}

func loadDurations(ctx context.Context, cfg *projectconfig.ProjectConfig, kind tripKind) ([]models.LabeledDuration, error) {
	seeds := cfg.Seeds.Seeds()
	series := make([][][]models.TripDuration, len(durationTokens))
	for v, token := range durationTokens {
		paths := utils.SeedFiles(fmt.Sprintf(durationPattern, token, kind), seeds, cfg.Paths.Data)
		loaded, err := dataset.LoadAll(ctx, paths, dataset.LoadDurations)
		if err != nil {
			return nil, err
		}
		series[v] = loaded
	}

	runs := make([]foraging.DurationRun, len(seeds))
	for i := range runs {
		runs[i] = foraging.DurationRun{LLM: series[0][i], NetLogo: series[1][i], Hybrid: series[2][i]}
	}
	return foraging.CombineDurations(runs), nil
}
