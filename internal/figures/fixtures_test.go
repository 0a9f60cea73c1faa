package figures

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spboyer/agentplot/internal/projectconfig"
	"github.com/stretchr/testify/require"
)

// writeLogs writes a complete set of simulation logs for seeds 1..2 into a
// new directory and returns it.
func writeLogs(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	for seed := 1; seed <= 2; seed++ {
		for _, token := range foodTokens {
			var b strings.Builder
			b.WriteString("step_number,food_amount\n")
			for step := 0; step <= 120; step++ {
				fmt.Fprintf(&b, "%d,%d\n", step, step/(seed+2))
			}
			writeLog(t, dir, fmt.Sprintf("food_collected_%s_seed_%d.csv", token, seed), b.String())
		}
		for _, token := range durationTokens {
			for _, kind := range []tripKind{wayback, search} {
				writeLog(t, dir, fmt.Sprintf("AntColony_%s_Seed_%d_%s_duration.csv", token, seed, kind),
					fmt.Sprintf("1,%d\n1,%d\n2,%d\n", 30+seed, 40+seed, 55+seed))
			}
		}
		pairs := pairRows(seed)
		writeLog(t, dir, fmt.Sprintf("distances_flockdata_seed_%d.csv", seed), "step_number,bird1_id,bird2_id,distance\n"+pairs)
		writeLog(t, dir, fmt.Sprintf("distances_flockdata_rulebased_seed_%d.csv", seed), "step_number,bird1_id,bird2_id,distance\n"+pairs)
		writeLog(t, dir, fmt.Sprintf("headingsdiff_flockdata_seed_%d.csv", seed), "step_number,bird1_id,bird2_id,heading_difference\n"+pairs)
		writeLog(t, dir, fmt.Sprintf("headingsdiff_flockdata_rulebased_seed_%d.csv", seed), "step_number,bird1_id,bird2_id,heading_difference\n"+pairs)
	}
	return dir
}

// pairRows returns symmetric pair rows for six birds over steps 0..100.
func pairRows(seed int) string {
	var b strings.Builder
	for step := 0; step <= 100; step += 10 {
		for b1 := 1; b1 <= 6; b1++ {
			for b2 := 1; b2 <= 6; b2++ {
				if b1 == b2 {
					continue
				}
				d := float64((b1+b2+step+seed)%7) * 0.9
				fmt.Fprintf(&b, "%d,%d,%d,%.2f\n", step, b1, b2, d)
			}
		}
	}
	return b.String()
}

func writeLog(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

// testConfig reads logs from dataDir, saves into a fresh directory and never
// opens a viewer.
func testConfig(t *testing.T, dataDir string) *projectconfig.ProjectConfig {
	t.Helper()
	cfg := projectconfig.New()
	cfg.Paths.Data = dataDir
	cfg.Paths.Output = t.TempDir()
	cfg.Seeds = projectconfig.SeedsConfig{First: 1, Last: 2}
	cfg.Plot.SaveToFile = true
	cfg.Plot.Show = false
	return cfg
}
