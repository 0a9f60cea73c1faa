// Package render draws line and box charts with gonum/plot and writes them
// as PDF documents.
package render

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"

	"github.com/spboyer/agentplot/internal/config"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/brewer"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgpdf"
)

// minPaletteClasses is the smallest palette ColorBrewer defines.
const minPaletteClasses = 3

// Figure is a rendered chart ready to be written out.
type Figure struct {
	// Name is the file name the figure is saved under.
	Name string

	plot  *plot.Plot
	inset *inset
	opts  config.PlotOptions
}

// Palette returns the first n colours of the named ColorBrewer qualitative
// palette.
func Palette(name string, n int) ([]color.Color, error) {
	pal, err := brewer.GetPalette(brewer.TypeQualitative, name, max(n, minPaletteClasses))
	if err != nil {
		return nil, fmt.Errorf("palette %q with %d colours: %w", name, n, err)
	}
	return pal.Colors()[:n], nil
}

func newPlot(xLabel, yLabel string) *plot.Plot {
	p := plot.New()
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	p.Add(plotter.NewGrid())
	p.Legend.Top = true
	return p
}

// addLegendTitle puts the legend title above the entries as an entry
// without a thumbnail.
func addLegendTitle(p *plot.Plot, title string) {
	if title != "" {
		p.Legend.Add(title)
	}
}

// WriteTo renders the figure as a PDF document to w.
func (f *Figure) WriteTo(w io.Writer) (int64, error) {
	width := vg.Length(f.opts.FigureSize[0]) * vg.Inch
	height := vg.Length(f.opts.FigureSize[1]) * vg.Inch
	c := vgpdf.New(width, height)

	dc := draw.New(c)
	if f.opts.BBoxMode == config.BBoxTight {
		pad := vg.Length(f.opts.PaddingInches) * vg.Inch
		dc = draw.Crop(dc, pad, -pad, pad, -pad)
	}
	f.plot.Draw(dc)
	if f.inset != nil {
		f.inset.draw(f.plot, dc)
	}
	return c.WriteTo(w)
}

// Save writes the figure to path, creating parent directories as needed.
func (f *Figure) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if _, err := f.WriteTo(file); err != nil {
		_ = file.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return file.Close()
}
