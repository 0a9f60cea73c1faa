package render

import (
	"image/color"
	"maps"
	"math"
	"slices"

	"github.com/spboyer/agentplot/internal/config"
	"github.com/spboyer/agentplot/internal/statistics"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// ciLevel is the confidence level of the "ci" error band.
const ciLevel = 0.95

// bandAlpha is the opacity of error bands.
const bandAlpha = 0x40

// Observation is one sample of a line chart series.
type Observation struct {
	Hue  string
	X, Y float64
}

// LinePoint aggregates every observation sharing a hue and x value.
type LinePoint struct {
	X     float64
	Mean  float64
	Lower float64
	Upper float64
	N     int
}

// LineSpec describes a line chart.
type LineSpec struct {
	// Name is the file name the figure is saved under.
	Name   string
	XLabel string
	YLabel string
	// Hues fixes colour and legend order. Hues found in Observations but
	// missing here follow in order of first appearance.
	Hues         []string
	Observations []Observation
	// Inset, when set, magnifies a window of the data in the lower left of
	// the chart and marks the window on the main axes.
	Inset *InsetSpec
}

// Aggregate reduces observations to one point per (hue, x) in ascending x.
// Non-finite values are dropped. band selects the Lower/Upper bounds: a
// bootstrap confidence interval of the mean ("ci"), the mean plus or minus
// one sample standard deviation ("sd"), or the mean itself ("none").
func Aggregate(obs []Observation, band string) map[string][]LinePoint {
	groups := make(map[string]map[float64][]float64)
	for _, o := range obs {
		if !finite(o.X) || !finite(o.Y) {
			continue
		}
		byX := groups[o.Hue]
		if byX == nil {
			byX = make(map[float64][]float64)
			groups[o.Hue] = byX
		}
		byX[o.X] = append(byX[o.X], o.Y)
	}

	out := make(map[string][]LinePoint, len(groups))
	for hue, byX := range groups {
		xs := slices.Sorted(maps.Keys(byX))
		pts := make([]LinePoint, 0, len(xs))
		for _, x := range xs {
			pts = append(pts, reduce(x, byX[x], band))
		}
		out[hue] = pts
	}
	return out
}

func reduce(x float64, ys []float64, band string) LinePoint {
	pt := LinePoint{X: x, N: len(ys), Mean: stat.Mean(ys, nil)}
	pt.Lower, pt.Upper = pt.Mean, pt.Mean
	switch band {
	case config.BandCI:
		ci := statistics.BootstrapCI(ys, ciLevel)
		pt.Lower, pt.Upper = ci.Lower, ci.Upper
	case config.BandSD:
		if len(ys) > 1 {
			sd := stat.StdDev(ys, nil)
			pt.Lower, pt.Upper = pt.Mean-sd, pt.Mean+sd
		}
	}
	return pt
}

// LineChart draws the per-hue means of spec.Observations with an error band
// selected by opts.ErrorBand.
func LineChart(spec LineSpec, opts config.PlotOptions) (*Figure, error) {
	hues := hueOrder(spec.Hues, lineHues(spec.Observations))
	colors, err := Palette(opts.ColorPalette, len(hues))
	if err != nil {
		return nil, err
	}
	agg := Aggregate(spec.Observations, opts.ErrorBand)

	p := newPlot(spec.XLabel, spec.YLabel)
	addLegendTitle(p, opts.LegendTitle)
	for i, hue := range hues {
		pts := agg[hue]
		if len(pts) == 0 {
			continue
		}
		line, band, err := series(pts, colors[i], opts.ErrorBand)
		if err != nil {
			return nil, err
		}
		if band != nil {
			p.Add(band)
		}
		p.Add(line)
		p.Legend.Add(hue, line)
	}

	fig := &Figure{Name: spec.Name, plot: p, opts: opts}
	if spec.Inset != nil {
		p.Add(zoomMark{window: *spec.Inset})
		in, err := newInset(*spec.Inset, hues, colors, agg, opts.ErrorBand)
		if err != nil {
			return nil, err
		}
		fig.inset = in
	}
	return fig, nil
}

// series builds the mean line and, unless band is "none", the polygon
// spanning the band.
func series(pts []LinePoint, c color.Color, band string) (*plotter.Line, *plotter.Polygon, error) {
	xys := make(plotter.XYs, len(pts))
	for i, pt := range pts {
		xys[i] = plotter.XY{X: pt.X, Y: pt.Mean}
	}
	line, err := plotter.NewLine(xys)
	if err != nil {
		return nil, nil, err
	}
	line.LineStyle.Color = c
	line.LineStyle.Width = vg.Points(1.5)

	if band == config.BandNone {
		return line, nil, nil
	}
	ring := make(plotter.XYs, 0, 2*len(pts))
	for _, pt := range pts {
		ring = append(ring, plotter.XY{X: pt.X, Y: pt.Upper})
	}
	for i := len(pts) - 1; i >= 0; i-- {
		ring = append(ring, plotter.XY{X: pts[i].X, Y: pts[i].Lower})
	}
	poly, err := plotter.NewPolygon(ring)
	if err != nil {
		return nil, nil, err
	}
	poly.Color = withAlpha(c, bandAlpha)
	poly.LineStyle.Width = 0
	return line, poly, nil
}

func lineHues(obs []Observation) []string {
	var seen []string
	for _, o := range obs {
		if !slices.Contains(seen, o.Hue) {
			seen = append(seen, o.Hue)
		}
	}
	return seen
}

// hueOrder returns preferred followed by any hue in seen not already listed.
func hueOrder(preferred, seen []string) []string {
	out := slices.Clone(preferred)
	for _, h := range seen {
		if !slices.Contains(out, h) {
			out = append(out, h)
		}
	}
	return out
}

func withAlpha(c color.Color, a uint8) color.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = a
	return n
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
