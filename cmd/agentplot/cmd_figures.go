package main

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spboyer/agentplot/internal/figures"
	"github.com/spboyer/agentplot/internal/reporting"
	"github.com/spf13/cobra"
)

func newFigureCommand(opts *globalOptions, f figures.Figure) *cobra.Command {
	return &cobra.Command{
		Use:   f.Name,
		Short: f.Description,
		Long: fmt.Sprintf(`%s.

When saving, the chart is written to %s in the output directory.`, f.Description, f.Output),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFigures(cmd, opts, []figures.Figure{f})
		},
	}
}

func newAllCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "Build every figure in turn",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFigures(cmd, opts, figures.All())
		},
	}
}

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available figures",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			all := figures.All()
			nameWidth := 0
			for _, f := range all {
				nameWidth = max(nameWidth, runewidth.StringWidth(f.Name))
			}
			var b strings.Builder
			for _, f := range all {
				fmt.Fprintf(&b, "  %s  %s\n", reporting.PadRight(f.Name, nameWidth), f.Output)
				fmt.Fprintf(&b, "  %s  %s\n", strings.Repeat(" ", nameWidth), f.Description)
			}
			_, err := fmt.Fprint(cmd.OutOrStdout(), b.String())
			return err
		},
	}
}
