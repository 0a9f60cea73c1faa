package figures

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spboyer/agentplot/internal/projectconfig"
	"github.com/spboyer/agentplot/internal/render"
	"github.com/spboyer/agentplot/internal/reporting"
	"github.com/spboyer/agentplot/internal/spinner"
)

//go:generate go tool mockgen -source=runner.go -destination=runner_mock_test.go -package=figures

// Viewer displays a written figure.
type Viewer interface {
	Open(path string) error
}

// Publisher uploads a written figure and returns where it can be fetched.
type Publisher interface {
	Publish(ctx context.Context, path string) (string, error)
}

// Outcome records what running one figure produced.
type Outcome struct {
	Figure string
	// Path is where the chart was written, empty when it was not.
	Path string
	// URL is the published location, empty when not published.
	URL    string
	Tables []reporting.Table
}

// Runner builds figures and writes, shows, publishes and reports them as
// configured.
type Runner struct {
	cfg       *projectconfig.ProjectConfig
	stdout    io.Writer
	stderr    io.Writer
	viewer    Viewer
	publisher Publisher
	report    *reporting.Report

	// scratch holds figures that are shown or published but not saved.
	// It is created on first use and shared by every figure of the run.
	scratch string
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithOutput directs statistics tables to stdout and progress to stderr.
func WithOutput(stdout, stderr io.Writer) RunnerOption {
	return func(r *Runner) {
		r.stdout = stdout
		r.stderr = stderr
	}
}

// WithViewer replaces the system viewer.
func WithViewer(v Viewer) RunnerOption {
	return func(r *Runner) {
		r.viewer = v
	}
}

// WithPublisher uploads every written figure through p.
func WithPublisher(p Publisher) RunnerOption {
	return func(r *Runner) {
		r.publisher = p
	}
}

// WithReport adds a section to rep for every figure run.
func WithReport(rep *reporting.Report) RunnerOption {
	return func(r *Runner) {
		r.report = rep
	}
}

// NewRunner creates a Runner for cfg.
func NewRunner(cfg *projectconfig.ProjectConfig, opts ...RunnerOption) *Runner {
	r := &Runner{
		cfg:    cfg,
		stdout: os.Stdout,
		stderr: os.Stderr,
		viewer: render.BrowserViewer{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run builds f and handles its output. Load and parse errors abort the
// figure; a viewer that fails to start is only logged.
func (r *Runner) Run(ctx context.Context, f Figure) (*Outcome, error) {
	slog.Debug("Building figure", "figure", f.Name, "data", r.cfg.Paths.Data, "seeds", r.cfg.Seeds)

	stop := spinner.StartOnTerminal(r.stderr, fmt.Sprintf("Building %s...", f.Name))
	res, err := f.build(ctx, r.cfg)
	stop()
	if err != nil {
		return nil, fmt.Errorf("figure %s: %w", f.Name, err)
	}

	for _, t := range res.Tables {
		if err := reporting.Fprint(r.stdout, t); err != nil {
			return nil, fmt.Errorf("printing statistics: %w", err)
		}
	}

	out := &Outcome{Figure: f.Name, Tables: res.Tables}
	path, err := r.destination(f)
	if err != nil {
		return nil, err
	}
	if path != "" {
		if err := res.Chart.Save(path); err != nil {
			return nil, fmt.Errorf("figure %s: %w", f.Name, err)
		}
		out.Path = path
		if r.cfg.Plot.SaveToFile {
			slog.Info("Saved figure", "figure", f.Name, "path", path)
		}
		if r.cfg.Plot.Show {
			if err := r.viewer.Open(path); err != nil {
				slog.Warn("Could not open figure viewer", "path", path, "error", err)
			}
		}
		if r.publisher != nil {
			url, err := r.publisher.Publish(ctx, path)
			if err != nil {
				return nil, fmt.Errorf("figure %s: %w", f.Name, err)
			}
			out.URL = url
		}
	}

	if r.report != nil {
		section := reporting.Section{Figure: f.Name, Tables: res.Tables}
		if r.cfg.Plot.SaveToFile {
			section.Output = path
		}
		r.report.Add(section)
	}
	return out, nil
}

// RunAll runs figs in order and stops at the first error.
func (r *Runner) RunAll(ctx context.Context, figs []Figure) ([]*Outcome, error) {
	outcomes := make([]*Outcome, 0, len(figs))
	for _, f := range figs {
		if err := ctx.Err(); err != nil {
			return outcomes, err
		}
		o, err := r.Run(ctx, f)
		if err != nil {
			return outcomes, err
		}
		outcomes = append(outcomes, o)
	}
	return outcomes, nil
}

// destination returns where the chart is written: its fixed name under the
// output directory when saving, under the run's scratch directory when it
// is only shown or published, and nothing otherwise.
func (r *Runner) destination(f Figure) (string, error) {
	if r.cfg.Plot.SaveToFile {
		return filepath.Join(r.cfg.Paths.Output, f.Output), nil
	}
	if !r.cfg.Plot.Show && r.publisher == nil {
		return "", nil
	}
	if r.scratch == "" {
		dir, err := os.MkdirTemp("", "agentplot-*")
		if err != nil {
			return "", fmt.Errorf("creating temporary directory: %w", err)
		}
		r.scratch = dir
	}
	return filepath.Join(r.scratch, f.Output), nil
}

// ScratchDir is the directory unsaved figures were written to, empty when
// none were. The viewer may still be reading them when the run returns, so
// it is left for the caller to remove.
func (r *Runner) ScratchDir() string {
	return r.scratch
}
