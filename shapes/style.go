// Copyright (c) 2024, The GoFigure Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shapes

import (
	"image/color"

	"github.com/gofigure-plot/gofigure"
	"github.com/gofigure-plot/gofigure/styles"
	"gonum.org/v1/plot/vg/draw"
)

// Style has the visual properties shared by shape primitives.
// Zero values resolve against the figure theme at render time.
type Style struct {

	// Fill fills the shape interior; Default uses the theme setting.
	Fill styles.OnOff

	// Color is the shape color, used for both edge and fill unless
	// EdgeColor or FillColor override it. Unset uses the next theme
	// cycle color.
	Color styles.Color

	// EdgeColor overrides Color for the outline.
	EdgeColor styles.Color

	// FillColor overrides Color for the fill.
	FillColor styles.Color

	// LineWidth is the outline width in points; 0 uses the theme default.
	LineWidth float64

	// LineStyle is the outline dash pattern; unset uses the theme default.
	LineStyle styles.LineStyles

	// FillAlpha is the fill opacity, 0..1; 0 uses the theme default.
	FillAlpha float64
}

// resolved is a style with every value decided against a theme.
type resolved struct {
	fill color.Color // nil for no fill
	edge draw.LineStyle
}

func (st *Style) resolve(th *styles.Theme) resolved {
	base := st.Color
	if !base.IsSet() {
		base = th.NextColor()
	}
	edge := st.EdgeColor
	if !edge.IsSet() {
		edge = base
	}
	w := st.LineWidth
	if w == 0 {
		w = th.Shape.Width
	}
	ls := st.LineStyle.Resolve(th.Shape.Style)
	r := resolved{edge: gofigure.LineStyle(edge, w, ls)}
	if st.Fill.Resolve(th.Shape.Fill) {
		fc := st.FillColor
		if !fc.IsSet() {
			fc = base
		}
		alpha := st.FillAlpha
		if alpha == 0 {
			alpha = th.Shape.FillAlpha
		}
		r.fill = fc.WithAlpha(alpha)
	}
	return r
}
