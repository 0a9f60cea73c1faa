// Package config defines the figure options shared by every chart and
// decodes them from loosely typed option bags.
package config

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"gonum.org/v1/plot/palette/brewer"
)

// Bounding-box modes for saved figures.
const (
	BBoxTight = "tight"
	BBoxNone  = "none"
)

// Error band modes for line charts.
const (
	BandCI   = "ci"
	BandSD   = "sd"
	BandNone = "none"
)

// Default values for PlotOptions.
const (
	DefaultWidthInches   = 12.0
	DefaultHeightInches  = 6.0
	DefaultPalette       = "Set2"
	DefaultLegendTitle   = "Model Variant"
	DefaultBBoxMode      = BBoxTight
	DefaultPaddingInches = 0.1
	DefaultErrorBand     = BandCI
)

// PlotOptions controls how a figure is drawn and where it goes.
type PlotOptions struct {
	// FigureSize is (width, height) in inches.
	FigureSize [2]float64 `mapstructure:"figure_size" yaml:"figure_size"`
	// ColorPalette names a ColorBrewer qualitative palette.
	ColorPalette string `mapstructure:"color_palette" yaml:"color_palette"`
	LegendTitle  string `mapstructure:"legend_title" yaml:"legend_title"`
	// SaveToFile writes the figure under its fixed file name.
	SaveToFile bool `mapstructure:"save_to_file" yaml:"save_to_file"`
	// BBoxMode "tight" pads the figure by PaddingInches; "none" draws edge to edge.
	BBoxMode      string  `mapstructure:"bbox_mode" yaml:"bbox_mode"`
	PaddingInches float64 `mapstructure:"padding_inches" yaml:"padding_inches"`
	// Show opens the rendered figure in the system viewer.
	Show bool `mapstructure:"show" yaml:"show"`
	// ErrorBand selects the band drawn around line chart means.
	ErrorBand string `mapstructure:"error_band" yaml:"error_band"`
}

// DefaultPlotOptions returns the options used when nothing is configured.
func DefaultPlotOptions() PlotOptions {
	return PlotOptions{
		FigureSize:    [2]float64{DefaultWidthInches, DefaultHeightInches},
		ColorPalette:  DefaultPalette,
		LegendTitle:   DefaultLegendTitle,
		SaveToFile:    false,
		BBoxMode:      DefaultBBoxMode,
		PaddingInches: DefaultPaddingInches,
		Show:          true,
		ErrorBand:     DefaultErrorBand,
	}
}

// Apply decodes raw onto a copy of base and validates the result. Keys not
// recognised by PlotOptions are rejected. Values may be given as strings,
// e.g. figure_size "10,5" or save_to_file "true".
func Apply(base PlotOptions, raw map[string]any) (PlotOptions, error) {
	out := base
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &out,
		ErrorUnused:      true,
		WeaklyTypedInput: true,
		DecodeHook:       figureSizeHook,
	})
	if err != nil {
		return base, fmt.Errorf("creating option decoder: %w", err)
	}
	if err := dec.Decode(raw); err != nil {
		return base, fmt.Errorf("invalid plot options: %w", err)
	}
	if err := out.Validate(); err != nil {
		return base, err
	}
	return out, nil
}

// Validate checks every field against its allowed range.
func (o PlotOptions) Validate() error {
	if o.FigureSize[0] <= 0 || o.FigureSize[1] <= 0 {
		return fmt.Errorf("figure_size must be positive, got %gx%g", o.FigureSize[0], o.FigureSize[1])
	}
	if _, err := brewer.GetPalette(brewer.TypeQualitative, o.ColorPalette, 3); err != nil {
		return fmt.Errorf("color_palette %q is not a ColorBrewer qualitative palette", o.ColorPalette)
	}
	switch o.BBoxMode {
	case BBoxTight, BBoxNone:
	default:
		return fmt.Errorf("bbox_mode must be %q or %q, got %q", BBoxTight, BBoxNone, o.BBoxMode)
	}
	if o.PaddingInches < 0 {
		return fmt.Errorf("padding_inches must be >= 0, got %g", o.PaddingInches)
	}
	switch o.ErrorBand {
	case BandCI, BandSD, BandNone:
	default:
		return fmt.Errorf("error_band must be one of %s, %s, %s; got %q", BandCI, BandSD, BandNone, o.ErrorBand)
	}
	return nil
}

// ParseAssignments turns "key=value" pairs into an option bag for Apply.
func ParseAssignments(pairs []string) (map[string]any, error) {
	raw := make(map[string]any, len(pairs))
	for _, p := range pairs {
		key, value, ok := strings.Cut(p, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid option %q: expected key=value", p)
		}
		raw[key] = strings.TrimSpace(value)
	}
	return raw, nil
}

var figureSizeType = reflect.TypeOf([2]float64{})

// figureSizeHook decodes "w,h" and "wxh" strings into a figure size.
func figureSizeHook(from, to reflect.Type, data any) (any, error) {
	if to != figureSizeType || from.Kind() != reflect.String {
		return data, nil
	}
	s := strings.ToLower(data.(string))
	parts := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == 'x' })
	if len(parts) != 2 {
		return nil, fmt.Errorf("figure_size %q: expected width,height", s)
	}
	var size [2]float64
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("figure_size %q: %w", s, err)
		}
		size[i] = v
	}
	return size, nil
}
