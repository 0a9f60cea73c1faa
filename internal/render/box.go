package render

import (
	"image/color"
	"slices"

	"github.com/spboyer/agentplot/internal/config"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

const (
	// boxGroupWidth is the share of a category slot taken by its boxes.
	boxGroupWidth = 0.8
	// dataAreaFraction approximates the share of the figure width left to
	// the data area once axes and legend are laid out.
	dataAreaFraction = 0.85
)

// BoxObservation is one value of a box chart.
type BoxObservation struct {
	Category string
	Hue      string
	Value    float64
}

// BoxSpec describes a box chart with one box per (category, hue).
type BoxSpec struct {
	// Name is the file name the figure is saved under.
	Name   string
	XLabel string
	YLabel string
	// Categories fixes the x order. When nil, categories appear in order of
	// first appearance.
	Categories []string
	// Hues fixes colour, dodge and legend order.
	Hues         []string
	Observations []BoxObservation
}

// BoxChart draws Tukey box plots of spec.Observations with the hues of a
// category dodged side by side.
func BoxChart(spec BoxSpec, opts config.PlotOptions) (*Figure, error) {
	seenCats, seenHues := boxKeys(spec.Observations)
	cats := spec.Categories
	if cats == nil {
		cats = seenCats
	}
	hues := hueOrder(spec.Hues, seenHues)
	colors, err := Palette(opts.ColorPalette, len(hues))
	if err != nil {
		return nil, err
	}

	values := make(map[[2]string]plotter.Values)
	for _, o := range spec.Observations {
		if !finite(o.Value) {
			continue
		}
		key := [2]string{o.Category, o.Hue}
		values[key] = append(values[key], o.Value)
	}

	p := newPlot(spec.XLabel, spec.YLabel)
	addLegendTitle(p, opts.LegendTitle)

	width := boxWidth(opts.FigureSize[0], len(cats), len(hues))
	for j, hue := range hues {
		drawn := false
		for i, cat := range cats {
			vals := values[[2]string{cat, hue}]
			if len(vals) == 0 {
				continue
			}
			b, err := plotter.NewBoxPlot(width, float64(i), vals)
			if err != nil {
				return nil, err
			}
			b.Offset = dodge(j, len(hues), width)
			b.FillColor = colors[j]
			p.Add(b)
			drawn = true
		}
		if drawn {
			p.Legend.Add(hue, swatch{color: colors[j]})
		}
	}
	if len(cats) > 0 {
		p.NominalX(cats...)
	}
	return &Figure{Name: spec.Name, plot: p, opts: opts}, nil
}

// boxWidth is the width of a single box so that the hues of a category
// share boxGroupWidth of its slot.
func boxWidth(figureWidthInches float64, categories, hues int) vg.Length {
	area := vg.Length(figureWidthInches) * vg.Inch * dataAreaFraction
	slot := area / vg.Length(max(categories, 1))
	return slot * boxGroupWidth / vg.Length(max(hues, 1))
}

// dodge is the horizontal offset of hue j among n hues, centred on the
// category.
func dodge(j, n int, width vg.Length) vg.Length {
	return (vg.Length(j) - vg.Length(n-1)/2) * width
}

func boxKeys(obs []BoxObservation) (cats, hues []string) {
	for _, o := range obs {
		if !slices.Contains(cats, o.Category) {
			cats = append(cats, o.Category)
		}
		if !slices.Contains(hues, o.Hue) {
			hues = append(hues, o.Hue)
		}
	}
	return cats, hues
}

// swatch is a filled legend thumbnail.
type swatch struct {
	color color.Color
}

func (s swatch) Thumbnail(c *draw.Canvas) {
	pts := []vg.Point{
		{X: c.Min.X, Y: c.Min.Y},
		{X: c.Min.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Min.Y},
	}
	c.FillPolygon(s.color, pts)
}
