// Package projectconfig provides the ProjectConfig struct and loader for
// .agentplot.yaml project-level configuration files.
package projectconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spboyer/agentplot/internal/config"
	"github.com/spboyer/agentplot/internal/flocking"
	"github.com/spboyer/agentplot/internal/foraging"
	"github.com/spboyer/agentplot/internal/validation"
	"gopkg.in/yaml.v3"
)

// FileName is the name of the project configuration file.
const FileName = ".agentplot.yaml"

// Default values for project configuration. New() references them and no
// other code should duplicate them.
const (
	DefaultDataDir   = "."
	DefaultOutputDir = "."

	DefaultFirstSeed = 1
	DefaultLastSeed  = 5

	DefaultInsetXMin = 0.0
	DefaultInsetXMax = 100.0
	DefaultInsetYMin = -1.0
	DefaultInsetYMax = 10.0
)

// PathsConfig holds the directories logs are read from and figures written to.
type PathsConfig struct {
	Data   string `yaml:"data,omitempty"`
	Output string `yaml:"output,omitempty"`
}

// SeedsConfig is the inclusive range of random seeds whose logs are loaded.
type SeedsConfig struct {
	First int `yaml:"first"`
	Last  int `yaml:"last"`
}

// Seeds returns every seed in the range in ascending order.
func (s SeedsConfig) Seeds() []int {
	var out []int
	for i := s.First; i <= s.Last; i++ {
		out = append(out, i)
	}
	return out
}

// InsetConfig is the zoom window of the food-total inset.
type InsetConfig struct {
	XMin float64 `yaml:"x_min"`
	XMax float64 `yaml:"x_max"`
	YMin float64 `yaml:"y_min"`
	YMax float64 `yaml:"y_max"`
}

// AnalysisConfig holds the filtering and aggregation parameters.
type AnalysisConfig struct {
	FoodStride        int         `yaml:"food_stride"`
	HybridRowLimit    int         `yaml:"hybrid_row_limit"`
	NeighborStride    int         `yaml:"neighbor_stride"`
	NeighborDistance  float64     `yaml:"neighbor_distance"`
	CollisionDistance float64     `yaml:"collision_distance"`
	Inset             InsetConfig `yaml:"inset"`
}

// NeighborParams returns the neighbour-counting parameters.
func (a AnalysisConfig) NeighborParams() flocking.NeighborParams {
	return flocking.NeighborParams{Stride: a.NeighborStride, MaxDistance: a.NeighborDistance}
}

// ReportConfig controls the optional statistics report.
type ReportConfig struct {
	// Path of the report; .html renders HTML, anything else Markdown.
	Path string `yaml:"path,omitempty"`
}

// PublishConfig controls uploading saved figures to Azure Blob Storage.
type PublishConfig struct {
	ContainerURL string `yaml:"container_url,omitempty"`
	Prefix       string `yaml:"prefix,omitempty"`
}

// ProjectConfig is the top-level configuration loaded from .agentplot.yaml.
type ProjectConfig struct {
	Paths    PathsConfig
	Seeds    SeedsConfig
	Plot     config.PlotOptions
	Analysis AnalysisConfig
	Report   ReportConfig
	Publish  PublishConfig
}

// fileConfig mirrors the YAML document. Pointers distinguish an absent key
// from an explicit zero; the plot section is an option bag decoded by
// config.Apply.
type fileConfig struct {
	Paths PathsConfig `yaml:"paths"`
	Seeds struct {
		First *int `yaml:"first"`
		Last  *int `yaml:"last"`
	} `yaml:"seeds"`
	Plot     map[string]any `yaml:"plot"`
	Analysis struct {
		FoodStride        *int     `yaml:"food_stride"`
		HybridRowLimit    *int     `yaml:"hybrid_row_limit"`
		NeighborStride    *int     `yaml:"neighbor_stride"`
		NeighborDistance  *float64 `yaml:"neighbor_distance"`
		CollisionDistance *float64 `yaml:"collision_distance"`
		Inset             struct {
			XMin *float64 `yaml:"x_min"`
			XMax *float64 `yaml:"x_max"`
			YMin *float64 `yaml:"y_min"`
			YMax *float64 `yaml:"y_max"`
		} `yaml:"inset"`
	} `yaml:"analysis"`
	Report  ReportConfig  `yaml:"report"`
	Publish PublishConfig `yaml:"publish"`
}

// New returns a ProjectConfig with all hard-coded defaults populated.
func New() *ProjectConfig {
	return &ProjectConfig{
		Paths: PathsConfig{
			Data:   DefaultDataDir,
			Output: DefaultOutputDir,
		},
		Seeds: SeedsConfig{
			First: DefaultFirstSeed,
			Last:  DefaultLastSeed,
		},
		Plot: config.DefaultPlotOptions(),
		Analysis: AnalysisConfig{
			FoodStride:        foraging.DefaultFoodStride,
			HybridRowLimit:    foraging.DefaultHybridRowLimit,
			NeighborStride:    flocking.DefaultNeighborStride,
			NeighborDistance:  flocking.DefaultNeighborDistance,
			CollisionDistance: flocking.DefaultCollisionDistance,
			Inset: InsetConfig{
				XMin: DefaultInsetXMin,
				XMax: DefaultInsetXMax,
				YMin: DefaultInsetYMin,
				YMax: DefaultInsetYMax,
			},
		},
	}
}

// Load finds .agentplot.yaml by walking up from startDir (max 10 levels),
// validates and unmarshals it, and fills in missing fields with defaults.
// If no config file is found, returns defaults with a nil error.
// Real I/O errors (e.g. permission denied) are returned to the caller.
func Load(startDir string) (*ProjectConfig, error) {
	data, err := findConfigFile(startDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return New(), nil
		}
		return nil, fmt.Errorf("loading %s: %w", FileName, err)
	}
	return Parse(data)
}

// LoadFile reads the configuration at path. Unlike Load, a missing file is
// an error.
func LoadFile(path string) (*ProjectConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return Parse(data)
}

// Parse validates data against the config schema, decodes it and merges it
// onto the defaults. Unknown keys and out-of-range values are errors.
func Parse(data []byte) (*ProjectConfig, error) {
	if errs := validation.ValidateConfigBytes(data); len(errs) > 0 {
		return nil, fmt.Errorf("invalid %s:\n  %s", FileName, strings.Join(errs, "\n  "))
	}

	var fileCfg fileConfig
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", FileName, err)
	}

	cfg := New()
	if err := mergeConfig(cfg, &fileCfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks constraints that span several fields.
func (c *ProjectConfig) Validate() error {
	if c.Seeds.First < 0 || c.Seeds.Last < c.Seeds.First {
		return fmt.Errorf("seeds: invalid range %d..%d", c.Seeds.First, c.Seeds.Last)
	}
	if c.Analysis.FoodStride < 1 {
		return fmt.Errorf("analysis.food_stride must be >= 1, got %d", c.Analysis.FoodStride)
	}
	if c.Analysis.HybridRowLimit < 0 {
		return fmt.Errorf("analysis.hybrid_row_limit must be >= 0, got %d", c.Analysis.HybridRowLimit)
	}
	if err := c.Analysis.NeighborParams().Validate(); err != nil {
		return fmt.Errorf("analysis: %w", err)
	}
	if err := flocking.ValidateCollisionDistance(c.Analysis.CollisionDistance); err != nil {
		return fmt.Errorf("analysis: %w", err)
	}
	in := c.Analysis.Inset
	if in.XMin >= in.XMax || in.YMin >= in.YMax {
		return fmt.Errorf("analysis.inset: empty window x[%g, %g] y[%g, %g]", in.XMin, in.XMax, in.YMin, in.YMax)
	}
	return c.Plot.Validate()
}

// findConfigFile walks up from dir looking for .agentplot.yaml (max 10 levels).
// Returns os.ErrNotExist if no config file is found. Propagates real I/O
// errors (e.g. permission denied) instead of silently swallowing them.
func findConfigFile(dir string) ([]byte, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving path %q: %w", dir, err)
	}
	dir = absDir

	for i := 0; i < 10; i++ {
		p := filepath.Join(dir, FileName)
		data, err := os.ReadFile(p)
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("reading %q: %w", p, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break // reached filesystem root
		}
		dir = parent
	}
	return nil, os.ErrNotExist
}

// mergeConfig overlays values present in src onto dst.
func mergeConfig(dst *ProjectConfig, src *fileConfig) error {
	// Paths
	if src.Paths.Data != "" {
		dst.Paths.Data = src.Paths.Data
	}
	if src.Paths.Output != "" {
		dst.Paths.Output = src.Paths.Output
	}

	// Seeds
	if src.Seeds.First != nil {
		dst.Seeds.First = *src.Seeds.First
	}
	if src.Seeds.Last != nil {
		dst.Seeds.Last = *src.Seeds.Last
	}

	// Plot
	if len(src.Plot) > 0 {
		opts, err := config.Apply(dst.Plot, src.Plot)
		if err != nil {
			return fmt.Errorf("plot: %w", err)
		}
		dst.Plot = opts
	}

	// Analysis
	a := src.Analysis
	setInt(&dst.Analysis.FoodStride, a.FoodStride)
	setInt(&dst.Analysis.HybridRowLimit, a.HybridRowLimit)
	setInt(&dst.Analysis.NeighborStride, a.NeighborStride)
	setFloat(&dst.Analysis.NeighborDistance, a.NeighborDistance)
	setFloat(&dst.Analysis.CollisionDistance, a.CollisionDistance)
	setFloat(&dst.Analysis.Inset.XMin, a.Inset.XMin)
	setFloat(&dst.Analysis.Inset.XMax, a.Inset.XMax)
	setFloat(&dst.Analysis.Inset.YMin, a.Inset.YMin)
	setFloat(&dst.Analysis.Inset.YMax, a.Inset.YMax)

	// Report
	if src.Report.Path != "" {
		dst.Report.Path = src.Report.Path
	}

	// Publish
	if src.Publish.ContainerURL != "" {
		dst.Publish.ContainerURL = src.Publish.ContainerURL
	}
	if src.Publish.Prefix != "" {
		dst.Publish.Prefix = src.Publish.Prefix
	}
	return nil
}

func setInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}

func setFloat(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}

// Marshal renders cfg as a .agentplot.yaml document.
func Marshal(cfg *ProjectConfig) ([]byte, error) {
	doc := map[string]any{
		"paths": cfg.Paths,
		"seeds": cfg.Seeds,
		"plot": map[string]any{
			"figure_size":    []float64{cfg.Plot.FigureSize[0], cfg.Plot.FigureSize[1]},
			"color_palette":  cfg.Plot.ColorPalette,
			"legend_title":   cfg.Plot.LegendTitle,
			"save_to_file":   cfg.Plot.SaveToFile,
			"bbox_mode":      cfg.Plot.BBoxMode,
			"padding_inches": cfg.Plot.PaddingInches,
			"show":           cfg.Plot.Show,
			"error_band":     cfg.Plot.ErrorBand,
		},
		"analysis": cfg.Analysis,
	}
	if cfg.Report.Path != "" {
		doc["report"] = cfg.Report
	}
	if cfg.Publish.ContainerURL != "" {
		doc["publish"] = cfg.Publish
	}
	return yaml.Marshal(doc)
}

// ParseSeedRange parses "first:last" or a single seed "n".
func ParseSeedRange(s string) (SeedsConfig, error) {
	firstRaw, lastRaw, isRange := strings.Cut(strings.TrimSpace(s), ":")
	if !isRange {
		lastRaw = firstRaw
	}
	first, err := strconv.Atoi(strings.TrimSpace(firstRaw))
	if err != nil {
		return SeedsConfig{}, fmt.Errorf("invalid seed range %q: %w", s, err)
	}
	last, err := strconv.Atoi(strings.TrimSpace(lastRaw))
	if err != nil {
		return SeedsConfig{}, fmt.Errorf("invalid seed range %q: %w", s, err)
	}
	if first < 0 || last < first {
		return SeedsConfig{}, fmt.Errorf("invalid seed range %q: need 0 <= first <= last", s)
	}
	return SeedsConfig{First: first, Last: last}, nil
}
