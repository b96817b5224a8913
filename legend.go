// Copyright (c) 2024, The GoFigure Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gofigure

import (
	"image/color"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Legend thumbnailers for elements whose backend plotters either have
// no thumbnail of their own or draw a misleading one. They implement
// the plot.Thumbnailer interface consumed by plot.Legend.Add.

// MultiLineThumb draws a stack of evenly spaced horizontal lines in
// the legend, representing a bundle of horizontal lines plotted as
// one labeled element.
type MultiLineThumb struct {

	// N is the number of lines in the bundle.
	N int

	// Sty is the line style of the bundle.
	Sty draw.LineStyle
}

// Thumbnail implements the plot.Thumbnailer interface.
func (t MultiLineThumb) Thumbnail(c *draw.Canvas) {
	n := t.N
	if n < 1 {
		n = 1
	}
	h := c.Max.Y - c.Min.Y
	for i := 0; i < n; i++ {
		y := c.Min.Y + h*vg.Length(n-i)/vg.Length(n+1)
		c.StrokeLine2(t.Sty, c.Min.X, y, c.Max.X, y)
	}
}

// VerticalLineThumb draws a row of evenly spaced vertical lines in
// the legend, representing a bundle of vertical lines plotted as one
// labeled element.
type VerticalLineThumb struct {

	// N is the number of lines in the bundle.
	N int

	// Sty is the line style of the bundle.
	Sty draw.LineStyle
}

// Thumbnail implements the plot.Thumbnailer interface.
func (t VerticalLineThumb) Thumbnail(c *draw.Canvas) {
	n := t.N
	if n < 1 {
		n = 1
	}
	w := c.Max.X - c.Min.X
	for i := 0; i < n; i++ {
		x := c.Min.X + w*vg.Length(n-i)/vg.Length(n+1)
		c.StrokeLine2(t.Sty, x, c.Min.Y, x, c.Max.Y)
	}
}

// histThumbXY is the step outline drawn for histogram legend entries,
// in 4x5 grid units.
var histThumbXY = [][2]float64{
	{0, 0}, {0, 4}, {1, 4}, {1, 2.5}, {2, 2.5},
	{2, 5}, {3, 5}, {3, 1.5}, {4, 1.5}, {4, 0}, {0, 0},
}

// HistogramThumb draws a miniature histogram step outline in the
// legend in place of the backend's default bar thumbnail.
type HistogramThumb struct {

	// Fill is the bar fill color; nil for no fill.
	Fill color.Color

	// Sty is the outline style.
	Sty draw.LineStyle
}

// Thumbnail implements the plot.Thumbnailer interface.
func (t HistogramThumb) Thumbnail(c *draw.Canvas) {
	w := c.Max.X - c.Min.X
	h := c.Max.Y - c.Min.Y
	pts := make([]vg.Point, len(histThumbXY))
	for i, xy := range histThumbXY {
		pts[i] = vg.Point{
			X: c.Min.X + w*vg.Length(xy[0]/4),
			Y: c.Min.Y + h*vg.Length(xy[1]/5),
		}
	}
	if t.Fill != nil {
		c.FillPolygon(t.Fill, pts)
	}
	if t.Sty.Color != nil && t.Sty.Width > 0 {
		c.StrokeLines(t.Sty, pts)
	}
}
