// Copyright (c) 2024, The GoFigure Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gofigure

import (
	"fmt"

	"github.com/gofigure-plot/gofigure/styles"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Point is a single marked point, optionally annotated with its
// coordinates. Shape queries in the shapes subpackage return Points
// so results can be added straight onto a figure.
type Point struct {

	// X and Y are the point coordinates.
	X, Y float64

	// Label is the legend label; no legend entry if empty.
	Label string

	// Coordinates annotates the point with its "(x, y)" text.
	Coordinates bool

	// Color is the marker color; unset uses the next theme cycle color.
	Color styles.Color

	// Size is the marker radius in points; 0 uses the theme default.
	Size float64

	// Marker is the glyph shape; unset uses the theme default.
	Marker styles.Markers
}

// NewPoint returns a point at the given coordinates.
func NewPoint(x, y float64) *Point {
	return &Point{X: x, Y: y}
}

// Plot adds the point to the plot, implementing [Element].
func (pt *Point) Plot(p *plot.Plot, th *styles.Theme) error {
	sc := &Scatter{
		X:      []float64{pt.X},
		Y:      []float64{pt.Y},
		Label:  pt.Label,
		Color:  pt.Color,
		Size:   pt.Size,
		Marker: pt.Marker,
	}
	if err := sc.Plot(p, th); err != nil {
		return err
	}
	if pt.Coordinates {
		txt := &Text{
			X:     pt.X,
			Y:     pt.Y,
			Text:  fmt.Sprintf(" (%.3g, %.3g)", pt.X, pt.Y),
			Color: pt.Color,
		}
		return txt.Plot(p, th)
	}
	return nil
}

// Text is a text annotation anchored at a data coordinate.
type Text struct {

	// X and Y are the anchor coordinates.
	X, Y float64

	// Text is the annotation text.
	Text string

	// Color is the text color; unset uses the theme foreground.
	Color styles.Color

	// Size is the font size in points; 0 uses the theme label size.
	Size float64
}

// NewText returns a text annotation at the given coordinates.
func NewText(x, y float64, text string) *Text {
	return &Text{X: x, Y: y, Text: text}
}

// Plot adds the text to the plot, implementing [Element].
func (tx *Text) Plot(p *plot.Plot, th *styles.Theme) error {
	lbls, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    plotter.XYs{{X: tx.X, Y: tx.Y}},
		Labels: []string{tx.Text},
	})
	if err != nil {
		return err
	}
	col := tx.Color
	if !col.IsSet() {
		col = th.Foreground
	}
	size := tx.Size
	if size == 0 {
		size = th.Font.Label
	}
	for i := range lbls.TextStyle {
		lbls.TextStyle[i].Color = col
		lbls.TextStyle[i].Font.Size = vg.Points(size)
	}
	p.Add(lbls)
	return nil
}

// HLines is a bundle of horizontal lines spanning the plot width.
type HLines struct {

	// Y has the y coordinate of each line.
	Y []float64

	// Label is the legend label for the bundle; no legend entry if empty.
	Label string

	// Color is the line color; unset uses the next theme cycle color.
	Color styles.Color

	// Width is the line width in points; 0 uses the theme default.
	Width float64

	// Style is the dash pattern; unset uses the theme default.
	Style styles.LineStyles
}

// NewHLines returns horizontal lines at the given y coordinates.
func NewHLines(ys ...float64) *HLines {
	return &HLines{Y: ys}
}

// Plot adds the lines to the plot, implementing [Element].
func (hl *HLines) Plot(p *plot.Plot, th *styles.Theme) error {
	if len(hl.Y) == 0 {
		return ErrNoData
	}
	sty := hl.lineStyle(th)
	p.Add(spanPlotter{ys: hl.Y, sty: sty})
	if hl.Label != "" {
		p.Legend.Add(hl.Label, MultiLineThumb{N: len(hl.Y), Sty: sty})
	}
	return nil
}

func (hl *HLines) lineStyle(th *styles.Theme) draw.LineStyle {
	col := hl.Color
	if !col.IsSet() {
		col = th.NextColor()
	}
	w := hl.Width
	if w == 0 {
		w = th.Line.Width
	}
	return LineStyle(col, w, hl.Style.Resolve(th.Curve.Style))
}

// VLines is a bundle of vertical lines spanning the plot height.
type VLines struct {

	// X has the x coordinate of each line.
	X []float64

	// Label is the legend label for the bundle; no legend entry if empty.
	Label string

	// Color is the line color; unset uses the next theme cycle color.
	Color styles.Color

	// Width is the line width in points; 0 uses the theme default.
	Width float64

	// Style is the dash pattern; unset uses the theme default.
	Style styles.LineStyles
}

// NewVLines returns vertical lines at the given x coordinates.
func NewVLines(xs ...float64) *VLines {
	return &VLines{X: xs}
}

// Plot adds the lines to the plot, implementing [Element].
func (vl *VLines) Plot(p *plot.Plot, th *styles.Theme) error {
	if len(vl.X) == 0 {
		return ErrNoData
	}
	col := vl.Color
	if !col.IsSet() {
		col = th.NextColor()
	}
	w := vl.Width
	if w == 0 {
		w = th.Line.Width
	}
	sty := LineStyle(col, w, vl.Style.Resolve(th.Curve.Style))
	p.Add(spanPlotter{xs: vl.X, sty: sty})
	if vl.Label != "" {
		p.Legend.Add(vl.Label, VerticalLineThumb{N: len(vl.X), Sty: sty})
	}
	return nil
}

// spanPlotter draws axis-spanning horizontal or vertical lines
// directly on the data canvas.
type spanPlotter struct {
	xs, ys []float64
	sty    draw.LineStyle
}

// Plot implements the plot.Plotter interface.
func (sp spanPlotter) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	for _, y := range sp.ys {
		py := trY(y)
		c.StrokeLine2(sp.sty, c.Min.X, py, c.Max.X, py)
	}
	for _, x := range sp.xs {
		px := trX(x)
		c.StrokeLine2(sp.sty, px, c.Min.Y, px, c.Max.Y)
	}
}
