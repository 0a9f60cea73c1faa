package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spboyer/agentplot/internal/figures"
	"github.com/spboyer/agentplot/internal/projectconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, exitCode(nil))
	assert.Equal(t, ExitError, exitCode(errors.New("csv: open x.csv: no such file")))
}

// run executes the root command with args and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(""))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), err
}

// emptyConfig writes an empty config file so tests never pick up a config
// from a parent directory.
func emptyConfig(t *testing.T) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), projectconfig.FileName)
	require.NoError(t, os.WriteFile(p, nil, 0o644))
	return p
}

func writeDistanceLogs(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	body := "step_number,bird1_id,bird2_id,distance\n" +
		"0,1,2,0.5\n0,2,1,0.5\n0,1,5,3\n0,5,1,3\n50,1,2,2\n50,2,1,2\n50,5,6,0.8\n50,6,5,0.8\n"
	for _, name := range []string{"distances_flockdata_seed_1.csv", "distances_flockdata_rulebased_seed_1.csv"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}
	return dir
}

func TestList(t *testing.T) {
	out, err := run(t, "list")
	require.NoError(t, err)
	for _, name := range figures.Names() {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, figures.NeighborsOutput)
}

func TestFigureCommand_Saves(t *testing.T) {
	data := writeDistanceLogs(t)
	outDir := t.TempDir()

	out, err := run(t, "neighbors",
		"--config", emptyConfig(t),
		"--data-dir", data,
		"--out-dir", outDir,
		"--seeds", "1:1",
		"--save", "--no-show")
	require.NoError(t, err)
	assert.Contains(t, out, "bird_type")

	_, err = os.Stat(filepath.Join(outDir, figures.NeighborsOutput))
	assert.NoError(t, err)
}

func TestFigureCommand_Report(t *testing.T) {
	data := writeDistanceLogs(t)
	outDir := t.TempDir()
	report := filepath.Join(outDir, "report.md")

	_, err := run(t, "collisions",
		"--config", emptyConfig(t),
		"--data-dir", data,
		"--seeds", "1",
		"--no-show",
		"--report", report)
	require.NoError(t, err)

	content, err := os.ReadFile(report)
	require.NoError(t, err)
	assert.Contains(t, string(content), "## collisions")
}

func TestFigureCommand_ConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown plot option", []string{"--set", "colour=red"}, "colour"},
		{"malformed assignment", []string{"--set", "color_palette"}, "key=value"},
		{"bad figure size", []string{"--set", "figure_size=0,4"}, "figure_size"},
		{"bad seeds", []string{"--seeds", "3:1"}, "seed range"},
		{"publish without container", []string{"--publish"}, "container_url"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"food", "--config", emptyConfig(t), "--data-dir", t.TempDir(), "--no-show"}, tt.args...)
			_, err := run(t, args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
			assert.Equal(t, ExitError, exitCode(err))
		})
	}
}

func TestFigureCommand_MissingLog(t *testing.T) {
	_, err := run(t, "return-steps", "--config", emptyConfig(t), "--data-dir", t.TempDir(), "--seeds", "1:1", "--no-show")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "AntColony_LLM_Seed_1_wayback_duration.csv")
}

func TestInit_Defaults(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "project")

	out, err := run(t, "init", dir, "--defaults")
	require.NoError(t, err)
	assert.Contains(t, out, projectconfig.FileName)

	cfg, err := projectconfig.LoadFile(filepath.Join(dir, projectconfig.FileName))
	require.NoError(t, err)
	assert.Equal(t, projectconfig.New().Seeds, cfg.Seeds)

	_, err = run(t, "init", dir, "--defaults")
	require.Error(t, err, "existing config is not overwritten")

	_, err = run(t, "init", dir, "--defaults", "--force")
	require.NoError(t, err)
}
