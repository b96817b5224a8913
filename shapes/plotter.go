// Copyright (c) 2024, The GoFigure Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shapes

import (
	"math"

	"github.com/gofigure-plot/gofigure"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// shapePlotter renders a closed vertex ring onto the data canvas,
// filling the interior and stroking the outline. It participates in
// axis autoscaling through the plot.DataRanger interface.
type shapePlotter struct {
	ring []gofigure.Point
	sty  resolved
}

// Plot implements the plot.Plotter interface.
func (sp shapePlotter) Plot(c draw.Canvas, plt *plot.Plot) {
	if len(sp.ring) < 2 {
		return
	}
	trX, trY := plt.Transforms(&c)
	pts := make([]vg.Point, len(sp.ring)+1)
	for i, p := range sp.ring {
		pts[i] = vg.Point{X: trX(p.X), Y: trY(p.Y)}
	}
	pts[len(sp.ring)] = pts[0]

	if sp.sty.fill != nil {
		c.FillPolygon(sp.sty.fill, c.ClipPolygonXY(pts))
	}
	for _, line := range c.ClipLinesXY(pts) {
		c.StrokeLines(sp.sty.edge, line)
	}
}

// DataRange implements the plot.DataRanger interface.
func (sp shapePlotter) DataRange() (xmin, xmax, ymin, ymax float64) {
	xmin, ymin = math.Inf(1), math.Inf(1)
	xmax, ymax = math.Inf(-1), math.Inf(-1)
	for _, p := range sp.ring {
		xmin = math.Min(xmin, p.X)
		xmax = math.Max(xmax, p.X)
		ymin = math.Min(ymin, p.Y)
		ymax = math.Max(ymax, p.Y)
	}
	return
}

// Thumbnail implements the plot.Thumbnailer interface,
// drawing a filled swatch with the shape's style.
func (sp shapePlotter) Thumbnail(c *draw.Canvas) {
	pts := []vg.Point{
		{X: c.Min.X, Y: c.Min.Y},
		{X: c.Min.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Min.Y},
	}
	if sp.sty.fill != nil {
		c.FillPolygon(sp.sty.fill, pts)
	}
	c.StrokeLines(sp.sty.edge, append(pts, pts[0]))
}

// plotRing is the shared element body for ring-shaped primitives.
func plotRing(p *plot.Plot, ring []gofigure.Point, sty resolved, label string) {
	sp := shapePlotter{ring: ring, sty: sty}
	p.Add(sp)
	if label != "" {
		p.Legend.Add(label, sp)
	}
}
