package main

import (
	"fmt"
	"log/slog"

	"github.com/spboyer/agentplot/internal/config"
	"github.com/spboyer/agentplot/internal/figures"
	"github.com/spboyer/agentplot/internal/projectconfig"
	"github.com/spboyer/agentplot/internal/publish"
	"github.com/spboyer/agentplot/internal/reporting"
	"github.com/spf13/cobra"
)

// globalOptions holds the persistent flags shared by every figure command.
type globalOptions struct {
	debug      bool
	configPath string
	dataDir    string
	outDir     string
	seeds      string
	save       bool
	noShow     bool
	set        []string
	report     string
	publish    bool

	// viewer replaces the system viewer in tests.
	viewer figures.Viewer
}

// resolveConfig loads the project config and applies flag overrides.
// Every configuration error surfaces here, before any log is read.
func (o *globalOptions) resolveConfig() (*projectconfig.ProjectConfig, error) {
	var (
		cfg *projectconfig.ProjectConfig
		err error
	)
	if o.configPath != "" {
		cfg, err = projectconfig.LoadFile(o.configPath)
	} else {
		cfg, err = projectconfig.Load(".")
	}
	if err != nil {
		return nil, err
	}

	if o.dataDir != "" {
		cfg.Paths.Data = o.dataDir
	}
	if o.outDir != "" {
		cfg.Paths.Output = o.outDir
	}
	if o.seeds != "" {
		if cfg.Seeds, err = projectconfig.ParseSeedRange(o.seeds); err != nil {
			return nil, err
		}
	}
	if o.save {
		cfg.Plot.SaveToFile = true
	}
	if o.noShow {
		cfg.Plot.Show = false
	}
	if len(o.set) > 0 {
		raw, err := config.ParseAssignments(o.set)
		if err != nil {
			return nil, err
		}
		if cfg.Plot, err = config.Apply(cfg.Plot, raw); err != nil {
			return nil, err
		}
	}
	if o.report != "" {
		cfg.Report.Path = o.report
	}
	if o.publish && cfg.Publish.ContainerURL == "" {
		return nil, fmt.Errorf("--publish needs publish.container_url in %s", projectconfig.FileName)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// runFigures runs figs with the resolved configuration and writes the
// report, if one was requested, once every figure succeeded.
func runFigures(cmd *cobra.Command, o *globalOptions, figs []figures.Figure) error {
	cfg, err := o.resolveConfig()
	if err != nil {
		return err
	}

	runnerOpts := []figures.RunnerOption{figures.WithOutput(cmd.OutOrStdout(), cmd.ErrOrStderr())}
	if o.viewer != nil {
		runnerOpts = append(runnerOpts, figures.WithViewer(o.viewer))
	}
	var report *reporting.Report
	if cfg.Report.Path != "" {
		report = &reporting.Report{}
		runnerOpts = append(runnerOpts, figures.WithReport(report))
	}
	if o.publish {
		p, err := publish.New(publish.Options{
			ContainerURL: cfg.Publish.ContainerURL,
			Prefix:       cfg.Publish.Prefix,
		})
		if err != nil {
			return err
		}
		runnerOpts = append(runnerOpts, figures.WithPublisher(p))
	}

	runner := figures.NewRunner(cfg, runnerOpts...)
	_, err = runner.RunAll(cmd.Context(), figs)
	if dir := runner.ScratchDir(); dir != "" {
		slog.Info("Unsaved figures written", "dir", dir)
	}
	if err != nil {
		return err
	}
	if report != nil {
		if err := report.Write(cfg.Report.Path); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", cfg.Report.Path) //nolint:errcheck
	}
	return nil
}
