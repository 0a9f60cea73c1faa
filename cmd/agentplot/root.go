package main

import (
	"context"
	"log/slog"

	"github.com/spboyer/agentplot/internal/figures"
	"github.com/spf13/cobra"
)

var version = "dev"

func newRootCommand() *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:   "agentplot",
		Short: "agentplot - charts comparing LLM, NetLogo and hybrid agent simulations",
		Long: `agentplot loads the CSV logs of the ant-colony foraging and bird-flocking
simulations, aggregates them and draws the comparison charts.

Each figure is a subcommand. Settings come from .agentplot.yaml (searched
upwards from the current directory) and can be overridden with flags.`,
		Version:      version,
		SilenceUsage: true,
	}

	flags := cmd.PersistentFlags()
	flags.BoolVar(&opts.debug, "debug", false, "Enable debug logging")
	flags.StringVar(&opts.configPath, "config", "", "Path to the config file (default: search for .agentplot.yaml)")
	flags.StringVar(&opts.dataDir, "data-dir", "", "Directory holding the simulation logs")
	flags.StringVar(&opts.outDir, "out-dir", "", "Directory saved figures are written to")
	flags.StringVar(&opts.seeds, "seeds", "", "Inclusive seed range, e.g. 1:5")
	flags.BoolVar(&opts.save, "save", false, "Save figures as PDF under their fixed names")
	flags.BoolVar(&opts.noShow, "no-show", false, "Do not open figures in the system viewer")
	flags.StringArrayVar(&opts.set, "set", nil, "Override a plot option, e.g. --set color_palette=Dark2 (repeatable)")
	flags.StringVar(&opts.report, "report", "", "Write a statistics report (.md or .html)")
	flags.BoolVar(&opts.publish, "publish", false, "Upload written figures to publish.container_url")

	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if opts.debug {
			slog.SetLogLoggerLevel(slog.LevelDebug)
		}
	}

	for _, f := range figures.All() {
		cmd.AddCommand(newFigureCommand(opts, f))
	}
	cmd.AddCommand(newAllCommand(opts))
	cmd.AddCommand(newListCommand())
	cmd.AddCommand(newInitCommand())

	return cmd
}

func execute(ctx context.Context) error {
	rootCmd := newRootCommand()
	return rootCmd.ExecuteContext(ctx)
}
