// Copyright (c) 2024, The GoFigure Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gofigure

import (
	"github.com/gofigure-plot/gofigure/styles"
	"github.com/jinzhu/copier"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Scatter is a set of discrete x, y data points drawn as markers.
// It is the data input type for the fits subpackage.
type Scatter struct {

	// X and Y are the data coordinates.
	X, Y []float64

	// Label is the legend label; the scatter gets no legend entry if empty.
	Label string

	// Color is the marker color; unset uses the next theme cycle color.
	Color styles.Color

	// Size is the marker radius in points; 0 uses the theme default.
	Size float64

	// Marker is the glyph shape; unset uses the theme default.
	Marker styles.Markers
}

// NewScatter returns a scatter of the given data points,
// validating that the data is finite and of matching lengths.
func NewScatter(x, y []float64) (*Scatter, error) {
	if err := checkXY(x, y); err != nil {
		return nil, err
	}
	return &Scatter{X: x, Y: y}, nil
}

// ScatterFromFunction returns a scatter sampling the given function at
// n evenly spaced points on [xmin, xmax].
func ScatterFromFunction(f func(float64) float64, xmin, xmax float64, n int) *Scatter {
	cv := CurveFromFunction(f, xmin, xmax, n)
	return &Scatter{X: cv.X, Y: cv.Y}
}

// Curve returns the scatter data as a curve, connecting the points in
// order. Useful for feeding scattered data to the fits subpackage.
func (sc *Scatter) Curve() *Curve {
	return &Curve{X: sc.X, Y: sc.Y, Label: sc.Label, Color: sc.Color}
}

// Points returns the scatter data as plotter coordinates.
func (sc *Scatter) Points() plotter.XYs {
	pts := make(plotter.XYs, len(sc.X))
	for i := range pts {
		pts[i].X = sc.X[i]
		pts[i].Y = sc.Y[i]
	}
	return pts
}

// Copy returns a deep copy of the scatter.
func (sc *Scatter) Copy() *Scatter {
	ns := &Scatter{}
	copier.CopyWithOption(ns, sc, copier.Option{DeepCopy: true})
	return ns
}

// Plot adds the scatter to the plot, implementing [Element].
func (sc *Scatter) Plot(p *plot.Plot, th *styles.Theme) error {
	pts, err := plotter.NewScatter(sc.Points())
	if err != nil {
		return err
	}
	col := sc.Color
	if !col.IsSet() {
		col = th.NextColor()
	}
	size := sc.Size
	if size == 0 {
		size = th.Scatter.Size
	}
	pts.GlyphStyle = draw.GlyphStyle{
		Color:  col,
		Radius: vg.Points(size),
		Shape:  sc.Marker.Resolve(th.Scatter.Marker).Glyph(),
	}
	p.Add(pts)
	if sc.Label != "" {
		p.Legend.Add(sc.Label, pts)
	}
	return nil
}
