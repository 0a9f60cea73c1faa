// Package wizard collects project settings interactively and renders them
// as a .agentplot.yaml document.
package wizard

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spboyer/agentplot/internal/config"
	"github.com/spboyer/agentplot/internal/projectconfig"
	"golang.org/x/term"
)

// Palettes lists the ColorBrewer qualitative palettes offered by the wizard.
var Palettes = []string{"Set2", "Set1", "Set3", "Dark2", "Paired", "Accent", "Pastel1", "Pastel2"}

// Answers holds the raw values collected by the form.
type Answers struct {
	DataDir    string
	OutputDir  string
	Seeds      string
	Palette    string
	ErrorBand  string
	SaveToFile bool
	Show       bool
}

// DefaultAnswers pre-populates the form from cfg.
func DefaultAnswers(cfg *projectconfig.ProjectConfig) Answers {
	return Answers{
		DataDir:    cfg.Paths.Data,
		OutputDir:  cfg.Paths.Output,
		Seeds:      fmt.Sprintf("%d:%d", cfg.Seeds.First, cfg.Seeds.Last),
		Palette:    cfg.Plot.ColorPalette,
		ErrorBand:  cfg.Plot.ErrorBand,
		SaveToFile: cfg.Plot.SaveToFile,
		Show:       cfg.Plot.Show,
	}
}

// Run shows the form on out, reading from in, starting from cfg's values.
func Run(in io.Reader, out io.Writer, cfg *projectconfig.ProjectConfig) (*projectconfig.ProjectConfig, error) {
	a := DefaultAnswers(cfg)

	paletteOptions := make([]huh.Option[string], 0, len(Palettes))
	for _, p := range Palettes {
		paletteOptions = append(paletteOptions, huh.NewOption(p, p))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Data directory").
				Description("Where the simulation CSV logs live").
				Value(&a.DataDir).
				Validate(required("data directory")),
			huh.NewInput().
				Title("Output directory").
				Description("Where saved PDFs are written").
				Value(&a.OutputDir).
				Validate(required("output directory")),
			huh.NewInput().
				Title("Seeds").
				Description("Inclusive seed range, e.g. 1:5").
				Value(&a.Seeds).
				Validate(func(s string) error {
					_, err := projectconfig.ParseSeedRange(s)
					return err
				}),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Colour palette").
				Options(paletteOptions...).
				Value(&a.Palette),
			huh.NewSelect[string]().
				Title("Line chart error band").
				Options(
					huh.NewOption("95% bootstrap confidence interval", config.BandCI),
					huh.NewOption("standard deviation", config.BandSD),
					huh.NewOption("none", config.BandNone),
				).
				Value(&a.ErrorBand),
			huh.NewConfirm().
				Title("Save figures as PDF?").
				Value(&a.SaveToFile),
			huh.NewConfirm().
				Title("Open figures in the system viewer?").
				Value(&a.Show),
		),
	).
		WithInput(in).
		WithOutput(out)

	// Use accessible mode for non-TTY input (e.g., tests, piped input).
	if f, ok := in.(*os.File); !ok || !term.IsTerminal(int(f.Fd())) {
		form = form.WithAccessible(true)
	}

	if err := form.Run(); err != nil {
		return nil, fmt.Errorf("wizard failed: %w", err)
	}
	return Apply(cfg, a)
}

// Apply returns a copy of cfg updated with a, validated.
func Apply(cfg *projectconfig.ProjectConfig, a Answers) (*projectconfig.ProjectConfig, error) {
	seeds, err := projectconfig.ParseSeedRange(a.Seeds)
	if err != nil {
		return nil, err
	}
	out := *cfg
	out.Paths.Data = strings.TrimSpace(a.DataDir)
	out.Paths.Output = strings.TrimSpace(a.OutputDir)
	out.Seeds = seeds
	out.Plot.ColorPalette = a.Palette
	out.Plot.ErrorBand = a.ErrorBand
	out.Plot.SaveToFile = a.SaveToFile
	out.Plot.Show = a.Show
	if err := out.Validate(); err != nil {
		return nil, err
	}
	return &out, nil
}

func required(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}
