// Copyright (c) 2024, The GoFigure Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shapes

import (
	"math"

	"github.com/gofigure-plot/gofigure"
	"github.com/gofigure-plot/gofigure/styles"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Line is a line segment between two points, optionally with
// perpendicular caps at both ends.
type Line struct {

	// A and B are the segment endpoints in data coordinates.
	A, B gofigure.Point

	// Capped draws perpendicular caps at both endpoints.
	Capped bool

	// CapWidth is the cap length in points; the theme cap width
	// applies when zero.
	CapWidth float64

	// Color is the line color; the next theme cycle color applies
	// when unset.
	Color styles.Color

	// Width is the line width in points; the theme line width applies
	// when zero.
	Width float64

	// LineStyle is the dash pattern of the line; unset draws solid.
	LineStyle styles.LineStyles
}

// NewLine returns a line between the two given points.
func NewLine(a, b gofigure.Point) *Line {
	return &Line{A: a, B: b}
}

// Length returns the length of the line segment.
func (ln *Line) Length() float64 {
	return math.Hypot(ln.B.X-ln.A.X, ln.B.Y-ln.A.Y)
}

// Center returns the midpoint of the line segment.
func (ln *Line) Center() gofigure.Point {
	return gofigure.Point{X: (ln.A.X + ln.B.X) / 2, Y: (ln.A.Y + ln.B.Y) / 2}
}

// Plot adds the line to the plot, implementing gofigure.Element.
func (ln *Line) Plot(p *plot.Plot, th *styles.Theme) error {
	color := ln.Color
	if !color.IsSet() {
		color = th.NextColor()
	}
	width := ln.Width
	if width == 0 {
		width = th.Line.Width
	}
	capw := ln.CapWidth
	if capw == 0 {
		capw = th.Line.CapWidth
	}
	p.Add(&linePlotter{
		a: ln.A, b: ln.B, capped: ln.Capped, capWidth: vg.Points(capw),
		sty: gofigure.LineStyle(color, width, ln.LineStyle.Resolve(styles.Solid)),
	})
	return nil
}

// linePlotter draws a segment with caps sized in canvas units, so cap
// length is unaffected by the data aspect ratio.
type linePlotter struct {
	a, b     gofigure.Point
	capped   bool
	capWidth vg.Length
	sty      draw.LineStyle
}

func (lp *linePlotter) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	ax, ay := trX(lp.a.X), trY(lp.a.Y)
	bx, by := trX(lp.b.X), trY(lp.b.Y)
	c.StrokeLine2(lp.sty, ax, ay, bx, by)
	if !lp.capped {
		return
	}
	// Unit normal to the segment, in canvas space.
	dx, dy := float64(bx-ax), float64(by-ay)
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	nx := vg.Length(-dy/length) * lp.capWidth / 2
	ny := vg.Length(dx/length) * lp.capWidth / 2
	c.StrokeLine2(lp.sty, ax-nx, ay-ny, ax+nx, ay+ny)
	c.StrokeLine2(lp.sty, bx-nx, by-ny, bx+nx, by+ny)
}

func (lp *linePlotter) DataRange() (xmin, xmax, ymin, ymax float64) {
	return math.Min(lp.a.X, lp.b.X), math.Max(lp.a.X, lp.b.X),
		math.Min(lp.a.Y, lp.b.Y), math.Max(lp.a.Y, lp.b.Y)
}
