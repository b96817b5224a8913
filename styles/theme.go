// Copyright (c) 2024, The GoFigure Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package styles implements figure styles: named bundles of default
// visual parameters that are applied wherever an element does not
// specify an explicit value. Styles can be saved to and loaded from
// YAML files in the user config directory, so a custom house style
// can be reused across projects.
package styles

// Theme is a named bundle of visual defaults for a figure and
// its elements. Element style fields left at their zero values
// resolve against the figure's theme at render time.
type Theme struct {

	// Name is the name the theme is registered and saved under.
	Name string `yaml:"name"`

	// Background is the figure background color.
	Background Color `yaml:"background"`

	// Foreground is the color of axes, ticks, labels and titles.
	Foreground Color `yaml:"foreground"`

	// Cycle is the series color cycle, consumed in order by elements
	// that do not specify a color.
	Cycle []Color `yaml:"cycle"`

	// Grid turns on the background grid.
	Grid bool `yaml:"grid"`

	// GridColor is the color of grid lines.
	GridColor Color `yaml:"gridColor"`

	// Font has the font sizes in points.
	Font FontStyle `yaml:"font"`

	// Curve has defaults for curve elements.
	Curve CurveStyle `yaml:"curve"`

	// Scatter has defaults for scatter elements.
	Scatter ScatterStyle `yaml:"scatter"`

	// Shape has defaults for shape primitives.
	Shape ShapeStyle `yaml:"shape"`

	// Histogram has defaults for histogram elements.
	Histogram HistogramStyle `yaml:"histogram"`

	// Arrow has defaults for arrow elements.
	Arrow ArrowStyle `yaml:"arrow"`

	// Line has defaults for line elements.
	Line LineStyle `yaml:"line"`

	// Legend has defaults for legend placement.
	Legend LegendStyle `yaml:"legend"`

	// cycleIdx is the next color cycle slot, on per-render clones.
	cycleIdx int
}

// FontStyle has the figure font sizes, in points.
type FontStyle struct {
	Title  float64 `yaml:"title"`
	Label  float64 `yaml:"label"`
	Tick   float64 `yaml:"tick"`
	Legend float64 `yaml:"legend"`
}

// CurveStyle has theme defaults for curve elements.
type CurveStyle struct {

	// Width is the line width in points.
	Width float64 `yaml:"width"`

	// Style is the dash pattern.
	Style LineStyles `yaml:"style"`
}

// ScatterStyle has theme defaults for scatter elements.
type ScatterStyle struct {

	// Size is the marker radius in points.
	Size float64 `yaml:"size"`

	// Marker is the glyph shape.
	Marker Markers `yaml:"marker"`
}

// ShapeStyle has theme defaults for shape primitives.
type ShapeStyle struct {

	// Fill fills shapes unless the shape turns it off.
	Fill bool `yaml:"fill"`

	// FillAlpha is the opacity of shape fills, 0..1.
	FillAlpha float64 `yaml:"fillAlpha"`

	// Width is the outline width in points.
	Width float64 `yaml:"width"`

	// Style is the outline dash pattern.
	Style LineStyles `yaml:"style"`
}

// HistogramStyle has theme defaults for histogram elements.
type HistogramStyle struct {

	// FillAlpha is the opacity of bars, 0..1.
	FillAlpha float64 `yaml:"fillAlpha"`
}

// ArrowStyle has theme defaults for arrow elements.
type ArrowStyle struct {

	// Width is the shaft width in points.
	Width float64 `yaml:"width"`

	// HeadSize scales the arrow head, in points.
	HeadSize float64 `yaml:"headSize"`
}

// LineStyle has theme defaults for line elements.
type LineStyle struct {

	// Width is the line width in points.
	Width float64 `yaml:"width"`

	// CapWidth is the width of end caps in points, for capped lines.
	CapWidth float64 `yaml:"capWidth"`
}

// LegendStyle has theme defaults for legend placement.
type LegendStyle struct {

	// Top places the legend at the top of the plot (otherwise bottom).
	Top bool `yaml:"top"`

	// Left places the legend at the left of the plot (otherwise right).
	Left bool `yaml:"left"`
}

// Clone returns a copy of the theme, suitable for per-render
// mutation of the color cycle position.
func (th *Theme) Clone() *Theme {
	ct := *th
	ct.Cycle = append([]Color(nil), th.Cycle...)
	ct.cycleIdx = 0
	return &ct
}

// NextColor returns the next color in the theme's color cycle,
// wrapping around at the end. Call on a [Theme.Clone] during
// rendering so the figure's cycle restarts on each render.
func (th *Theme) NextColor() Color {
	if len(th.Cycle) == 0 {
		return th.Foreground
	}
	c := th.Cycle[th.cycleIdx%len(th.Cycle)]
	th.cycleIdx++
	return c
}

// Plain is the default light theme.
func Plain() *Theme {
	return &Theme{
		Name:       "plain",
		Background: MustHex("#ffffff"),
		Foreground: MustHex("#000000"),
		Cycle: []Color{
			MustHex("#1f77b4"), MustHex("#ff7f0e"), MustHex("#2ca02c"),
			MustHex("#d62728"), MustHex("#9467bd"), MustHex("#8c564b"),
			MustHex("#e377c2"), MustHex("#7f7f7f"), MustHex("#bcbd22"),
			MustHex("#17becf"),
		},
		Grid:      false,
		GridColor: MustHex("#d0d0d0"),
		Font:      FontStyle{Title: 16, Label: 13, Tick: 11, Legend: 11},
		Curve:     CurveStyle{Width: 2, Style: Solid},
		Scatter:   ScatterStyle{Size: 3, Marker: Circle},
		Shape:     ShapeStyle{Fill: true, FillAlpha: 0.3, Width: 2, Style: Solid},
		Histogram: HistogramStyle{FillAlpha: 0.6},
		Arrow:     ArrowStyle{Width: 1.5, HeadSize: 8},
		Line:      LineStyle{Width: 1.5, CapWidth: 8},
		Legend:    LegendStyle{Top: true},
	}
}

// Dark is a dark-background theme.
func Dark() *Theme {
	th := Plain()
	th.Name = "dark"
	th.Background = MustHex("#1c1c1c")
	th.Foreground = MustHex("#eeeeee")
	th.Cycle = []Color{
		MustHex("#8dd3c7"), MustHex("#feffb3"), MustHex("#bfbbd9"),
		MustHex("#fa8174"), MustHex("#81b1d2"), MustHex("#fdb462"),
		MustHex("#b3de69"), MustHex("#bc82bd"), MustHex("#ccebc4"),
		MustHex("#ffed6f"),
	}
	th.Grid = true
	th.GridColor = MustHex("#444444")
	return th
}

// Dim is a muted light theme with a grid.
func Dim() *Theme {
	th := Plain()
	th.Name = "dim"
	th.Background = MustHex("#f4f4f4")
	th.Foreground = MustHex("#3b3b3b")
	th.Cycle = []Color{
		MustHex("#457b9d"), MustHex("#e07a5f"), MustHex("#81b29a"),
		MustHex("#f2cc8f"), MustHex("#6d597a"), MustHex("#b56576"),
	}
	th.Grid = true
	th.GridColor = MustHex("#cccccc")
	return th
}
