// Copyright (c) 2024, The GoFigure Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gofigure

import (
	"math"

	"github.com/gofigure-plot/gofigure/base/errors"
	"github.com/gofigure-plot/gofigure/styles"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	// ErrInfinity is returned when data contains an infinite value.
	ErrInfinity = errors.New("gofigure: infinite data point")

	// ErrNoData is returned when there are no plottable data points.
	ErrNoData = errors.New("gofigure: no data points")

	// ErrLengthMismatch is returned when x and y data differ in length.
	ErrLengthMismatch = errors.New("gofigure: x and y data must have the same length")
)

// Element is a figure element: anything that can plot itself onto a
// plot, resolving any unset style values against the given theme.
// Elements are drawn in the order they are added to a [Figure].
type Element interface {
	Plot(p *plot.Plot, th *styles.Theme) error
}

// CheckFloats returns an error if any of the arguments are infinite,
// or if there are no non-NaN data points available for plotting.
func CheckFloats(fs ...float64) error {
	n := 0
	for _, f := range fs {
		switch {
		case math.IsNaN(f):
		case math.IsInf(f, 0):
			return ErrInfinity
		default:
			n++
		}
	}
	if n == 0 {
		return ErrNoData
	}
	return nil
}

// checkXY validates paired x, y data.
func checkXY(x, y []float64) error {
	if len(x) != len(y) {
		return ErrLengthMismatch
	}
	if len(x) == 0 {
		return ErrNoData
	}
	if err := CheckFloats(x...); err != nil {
		return err
	}
	return CheckFloats(y...)
}

// LineStyle assembles a gonum/plot line style from resolved values:
// a set color, a width in points, and a dash pattern kind.
func LineStyle(c styles.Color, width float64, kind styles.LineStyles) draw.LineStyle {
	w := vg.Points(width)
	return draw.LineStyle{
		Color:  c,
		Width:  w,
		Dashes: kind.Dashes(w),
	}
}
