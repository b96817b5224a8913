// Copyright (c) 2024, The GoFigure Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gofigure

import (
	"github.com/gofigure-plot/gofigure/styles"
	"github.com/jinzhu/copier"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
)

// Curve is a continuous line through x, y data points.
type Curve struct {

	// X and Y are the data coordinates.
	X, Y []float64

	// Label is the legend label; the curve gets no legend entry if empty.
	Label string

	// Color is the line color; unset uses the next theme cycle color.
	Color styles.Color

	// Width is the line width in points; 0 uses the theme default.
	Width float64

	// Style is the dash pattern; unset uses the theme default.
	Style styles.LineStyles
}

// NewCurve returns a curve through the given data points,
// validating that the data is finite and of matching lengths.
func NewCurve(x, y []float64) (*Curve, error) {
	if err := checkXY(x, y); err != nil {
		return nil, err
	}
	return &Curve{X: x, Y: y}, nil
}

// CurveFromFunction returns a curve sampling the given function at
// n evenly spaced points on [xmin, xmax].
func CurveFromFunction(f func(float64) float64, xmin, xmax float64, n int) *Curve {
	if n < 2 {
		n = 2
	}
	x := make([]float64, n)
	y := make([]float64, n)
	step := (xmax - xmin) / float64(n-1)
	for i := range x {
		x[i] = xmin + float64(i)*step
		y[i] = f(x[i])
	}
	return &Curve{X: x, Y: y}
}

// Points returns the curve data as plotter coordinates.
func (cv *Curve) Points() plotter.XYs {
	pts := make(plotter.XYs, len(cv.X))
	for i := range pts {
		pts[i].X = cv.X[i]
		pts[i].Y = cv.Y[i]
	}
	return pts
}

// Copy returns a deep copy of the curve.
func (cv *Curve) Copy() *Curve {
	nc := &Curve{}
	copier.CopyWithOption(nc, cv, copier.Option{DeepCopy: true})
	return nc
}

// Plot adds the curve to the plot, implementing [Element].
func (cv *Curve) Plot(p *plot.Plot, th *styles.Theme) error {
	ln, err := plotter.NewLine(cv.Points())
	if err != nil {
		return err
	}
	col := cv.Color
	if !col.IsSet() {
		col = th.NextColor()
	}
	w := cv.Width
	if w == 0 {
		w = th.Curve.Width
	}
	ln.LineStyle = LineStyle(col, w, cv.Style.Resolve(th.Curve.Style))
	p.Add(ln)
	if cv.Label != "" {
		p.Legend.Add(cv.Label, ln)
	}
	return nil
}
