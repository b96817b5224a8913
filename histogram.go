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

// Histogram bins a sample of values and draws the counts as bars.
type Histogram struct {

	// Values is the sample to bin.
	Values []float64

	// Bins is the number of bins; 0 lets the backend choose.
	Bins int

	// Normalize scales the bars so the total area is 1.
	Normalize bool

	// Label is the legend label; no legend entry if empty.
	Label string

	// Color is the bar color; unset uses the next theme cycle color.
	Color styles.Color

	// FillAlpha is the bar fill opacity, 0..1; 0 uses the theme default.
	FillAlpha float64

	// LineWidth is the bar outline width in points; 0 uses the theme default.
	LineWidth float64
}

// NewHistogram returns a histogram of the given sample with the given
// number of bins, validating that the sample is finite and non-empty.
func NewHistogram(values []float64, bins int) (*Histogram, error) {
	if len(values) == 0 {
		return nil, ErrNoData
	}
	if err := CheckFloats(values...); err != nil {
		return nil, err
	}
	return &Histogram{Values: values, Bins: bins}, nil
}

// Copy returns a deep copy of the histogram.
func (hg *Histogram) Copy() *Histogram {
	nh := &Histogram{}
	copier.CopyWithOption(nh, hg, copier.Option{DeepCopy: true})
	return nh
}

// Plot adds the histogram to the plot, implementing [Element].
func (hg *Histogram) Plot(p *plot.Plot, th *styles.Theme) error {
	hp, err := plotter.NewHist(plotter.Values(hg.Values), hg.Bins)
	if err != nil {
		return err
	}
	if hg.Normalize {
		hp.Normalize(1)
	}
	col := hg.Color
	if !col.IsSet() {
		col = th.NextColor()
	}
	alpha := hg.FillAlpha
	if alpha == 0 {
		alpha = th.Histogram.FillAlpha
	}
	w := hg.LineWidth
	if w == 0 {
		w = th.Shape.Width
	}
	hp.FillColor = col.WithAlpha(alpha)
	hp.LineStyle = LineStyle(col, w, styles.Solid)
	p.Add(hp)
	if hg.Label != "" {
		p.Legend.Add(hg.Label, HistogramThumb{Fill: hp.FillColor, Sty: hp.LineStyle})
	}
	return nil
}
