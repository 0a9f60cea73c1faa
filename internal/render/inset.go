package render

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Placement of the inset as fractions of the main data area.
const (
	insetLeft   = 0.01
	insetBottom = 0.25
	insetWidth  = 0.25
	insetHeight = 0.25
)

// InsetSpec is the data window magnified by an inset.
type InsetSpec struct {
	XMin, XMax float64
	YMin, YMax float64
}

// markStyle outlines the zoom window and connects it to the inset.
var markStyle = draw.LineStyle{
	Color: color.Gray{Y: 0xb3},
	Width: vg.Points(1),
}

type inset struct {
	window InsetSpec
	plot   *plot.Plot
}

func newInset(w InsetSpec, hues []string, colors []color.Color, agg map[string][]LinePoint, band string) (*inset, error) {
	p := plot.New()
	for i, hue := range hues {
		pts := agg[hue]
		if len(pts) == 0 {
			continue
		}
		line, area, err := series(pts, colors[i], band)
		if err != nil {
			return nil, err
		}
		if area != nil {
			p.Add(area)
		}
		p.Add(line)
	}
	// Add widens the axes to the data, so the window is fixed afterwards.
	p.X.Min, p.X.Max = w.XMin, w.XMax
	p.Y.Min, p.Y.Max = w.YMin, w.YMax
	p.Y.Tick.Marker = unlabeledTicks{}
	p.X.Tick.Label.Font.Size = vg.Points(8)
	return &inset{window: w, plot: p}, nil
}

// draw renders the inset over the main data area of dc and connects its
// lower corners to the lower corners of the zoom window.
func (in *inset) draw(main *plot.Plot, dc draw.Canvas) {
	da := main.DataCanvas(dc)
	size := da.Size()
	box := draw.Crop(da,
		insetLeft*size.X,
		-(1-insetLeft-insetWidth)*size.X,
		insetBottom*size.Y,
		-(1-insetBottom-insetHeight)*size.Y,
	)
	in.plot.Draw(box)

	inner := in.plot.DataCanvas(box)
	trX, trY := main.Transforms(&da)
	dc.StrokeLine2(markStyle, inner.Min.X, inner.Min.Y, trX(in.window.XMin), trY(in.window.YMin))
	dc.StrokeLine2(markStyle, inner.Max.X, inner.Min.Y, trX(in.window.XMax), trY(in.window.YMin))
}

// zoomMark outlines the inset window on the main axes.
type zoomMark struct {
	window InsetSpec
}

func (z zoomMark) Plot(c draw.Canvas, p *plot.Plot) {
	trX, trY := p.Transforms(&c)
	w := z.window
	outline := []vg.Point{
		{X: trX(w.XMin), Y: trY(w.YMin)},
		{X: trX(w.XMax), Y: trY(w.YMin)},
		{X: trX(w.XMax), Y: trY(w.YMax)},
		{X: trX(w.XMin), Y: trY(w.YMax)},
		{X: trX(w.XMin), Y: trY(w.YMin)},
	}
	c.StrokeLines(markStyle, c.ClipLinesXY(outline)...)
}

// unlabeledTicks keeps the default tick positions but drops their labels.
type unlabeledTicks struct{}

func (unlabeledTicks) Ticks(lo, hi float64) []plot.Tick {
	ticks := plot.DefaultTicks{}.Ticks(lo, hi)
	for i := range ticks {
		ticks[i].Label = ""
	}
	return ticks
}
