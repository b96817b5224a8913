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

// Arrow is an arrow pointing from one point to another, with an
// arrowhead at the destination and optionally at both ends.
type Arrow struct {

	// A is the tail and B the head of the arrow, in data coordinates.
	A, B gofigure.Point

	// Shrink pulls both endpoints toward the midpoint by the given
	// fraction of the arrow length, from 0 (no shrink) to 0.5 (both
	// ends at the midpoint). Useful to keep the arrow clear of markers
	// or text at its endpoints.
	Shrink float64

	// TwoSided draws an arrowhead at both ends.
	TwoSided bool

	// HeadSize is the arrowhead size in points; the theme head size
	// applies when zero.
	HeadSize float64

	// Color is the arrow color; the next theme cycle color applies
	// when unset.
	Color styles.Color

	// Width is the shaft width in points; the theme arrow width
	// applies when zero.
	Width float64
}

// NewArrow returns an arrow pointing from a to b.
func NewArrow(a, b gofigure.Point) *Arrow {
	return &Arrow{A: a, B: b}
}

// shrinkPoints returns the endpoints pulled toward the midpoint by the
// shrink fraction.
func (ar *Arrow) shrinkPoints() (a, b gofigure.Point) {
	dx := ar.B.X - ar.A.X
	dy := ar.B.Y - ar.A.Y
	a = gofigure.Point{X: ar.A.X + ar.Shrink*dx, Y: ar.A.Y + ar.Shrink*dy}
	b = gofigure.Point{X: ar.B.X - ar.Shrink*dx, Y: ar.B.Y - ar.Shrink*dy}
	return a, b
}

// Plot adds the arrow to the plot, implementing gofigure.Element.
func (ar *Arrow) Plot(p *plot.Plot, th *styles.Theme) error {
	color := ar.Color
	if !color.IsSet() {
		color = th.NextColor()
	}
	width := ar.Width
	if width == 0 {
		width = th.Arrow.Width
	}
	head := ar.HeadSize
	if head == 0 {
		head = th.Arrow.HeadSize
	}
	a, b := ar.shrinkPoints()
	p.Add(&arrowPlotter{
		a: a, b: b, twoSided: ar.TwoSided, headSize: vg.Points(head),
		sty: gofigure.LineStyle(color, width, styles.Solid),
	})
	return nil
}

// arrowPlotter draws the shaft and head in canvas space, so the head
// shape is unaffected by the data aspect ratio.
type arrowPlotter struct {
	a, b     gofigure.Point
	twoSided bool
	headSize vg.Length
	sty      draw.LineStyle
}

func (ap *arrowPlotter) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	ax, ay := trX(ap.a.X), trY(ap.a.Y)
	bx, by := trX(ap.b.X), trY(ap.b.Y)
	c.StrokeLine2(ap.sty, ax, ay, bx, by)
	ap.head(c, bx, by, ax, ay)
	if ap.twoSided {
		ap.head(c, ax, ay, bx, by)
	}
}

// head fills the arrowhead triangle at tip, pointing away from from.
func (ap *arrowPlotter) head(c draw.Canvas, tipX, tipY, fromX, fromY vg.Length) {
	dx, dy := float64(tipX-fromX), float64(tipY-fromY)
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	ux, uy := dx/length, dy/length
	backX := tipX - vg.Length(ux)*ap.headSize
	backY := tipY - vg.Length(uy)*ap.headSize
	nx := vg.Length(-uy) * ap.headSize / 2
	ny := vg.Length(ux) * ap.headSize / 2
	c.FillPolygon(ap.sty.Color, []vg.Point{
		{X: tipX, Y: tipY},
		{X: backX + nx, Y: backY + ny},
		{X: backX - nx, Y: backY - ny},
	})
}

func (ap *arrowPlotter) DataRange() (xmin, xmax, ymin, ymax float64) {
	return math.Min(ap.a.X, ap.b.X), math.Max(ap.a.X, ap.b.X),
		math.Min(ap.a.Y, ap.b.Y), math.Max(ap.a.Y, ap.b.Y)
}
