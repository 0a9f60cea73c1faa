// Package reporting formats the statistics printed alongside each figure,
// both as console tables and as a Markdown or HTML report.
package reporting

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spboyer/agentplot/internal/models"
)

// Table is a titled grid of cells. The first KeyColumns columns identify a
// group and are left-aligned; the remaining numeric columns are
// right-aligned.
type Table struct {
	Title      string
	Header     []string
	KeyColumns int
	Rows       [][]string
}

// Column headers of the describe tables.
var (
	describeColumns = []string{"count", "mean", "std", "min", "25%", "50%", "75%", "max"}
	neighborColumns = []string{"count", "mean", "median", "std", "min", "percentile_25", "percentile_50", "percentile_75", "max"}
)

// DurationTable lays out per-(patch, variant) trip statistics.
func DurationTable(title string, groups []models.GroupStats) Table {
	t := Table{
		Title:      title,
		Header:     append([]string{"Food Patch", "source"}, describeColumns...),
		KeyColumns: 2,
	}
	for _, g := range groups {
		s := g.Stats
		row := append(padKeys(g.Keys, 2),
			strconv.Itoa(s.Count),
			FormatFloat(s.Mean), FormatFloat(s.Std), FormatFloat(s.Min),
			FormatFloat(s.Q25), FormatFloat(s.Q50), FormatFloat(s.Q75), FormatFloat(s.Max),
		)
		t.Rows = append(t.Rows, row)
	}
	return t
}

// NeighborTable lays out per-role neighbour statistics.
func NeighborTable(title string, groups []models.GroupStats) Table {
	t := Table{
		Title:      title,
		Header:     append([]string{"bird_type"}, neighborColumns...),
		KeyColumns: 1,
	}
	for _, g := range groups {
		s := g.Stats
		row := append(padKeys(g.Keys, 1),
			strconv.Itoa(s.Count),
			FormatFloat(s.Mean), FormatFloat(s.Q50), FormatFloat(s.Std), FormatFloat(s.Min),
			FormatFloat(s.Q25), FormatFloat(s.Q50), FormatFloat(s.Q75), FormatFloat(s.Max),
		)
		t.Rows = append(t.Rows, row)
	}
	return t
}

// FormatFloat renders v with six decimals, or "NaN".
func FormatFloat(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return strconv.FormatFloat(v, 'f', 6, 64)
}

func padKeys(keys []string, n int) []string {
	out := make([]string, n)
	copy(out, keys)
	return out
}

// Fprint writes t as an aligned plain-text table.
func Fprint(w io.Writer, t Table) error {
	widths := columnWidths(t)
	var b strings.Builder
	if t.Title != "" {
		b.WriteString(t.Title)
		b.WriteString("\n")
	}
	writeRow(&b, t.Header, widths, t.KeyColumns)
	for _, row := range t.Rows {
		writeRow(&b, row, widths, t.KeyColumns)
	}
	_, err := fmt.Fprint(w, b.String())
	return err
}

func columnWidths(t Table) []int {
	widths := make([]int, len(t.Header))
	for i, h := range t.Header {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], runewidth.StringWidth(cell))
			}
		}
	}
	return widths
}

func writeRow(b *strings.Builder, cells []string, widths []int, keyColumns int) {
	for i, w := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		if i > 0 {
			b.WriteString("  ")
		}
		if i < keyColumns {
			b.WriteString(PadRight(cell, w))
		} else {
			b.WriteString(padLeft(cell, w))
		}
	}
	b.WriteString("\n")
}

// PadRight pads s with spaces to width terminal cells.
func PadRight(s string, width int) string {
	sw := runewidth.StringWidth(s)
	if sw >= width {
		return s
	}
	return s + strings.Repeat(" ", width-sw)
}

func padLeft(s string, width int) string {
	sw := runewidth.StringWidth(s)
	if sw >= width {
		return s
	}
	return strings.Repeat(" ", width-sw) + s
}
