// Copyright (c) 2024, The GoFigure Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fits

import (
	"fmt"
	"math"

	"github.com/gofigure-plot/gofigure"
	"github.com/gofigure-plot/gofigure/styles"
	"gonum.org/v1/plot"
)

// SineFit is the model a*sin(bx + c) + d fitted to curve data.
type SineFit struct {
	fitBase
}

func sineModel(p []float64, x float64) float64 {
	return p[0]*math.Sin(p[1]*x+p[2]) + p[3]
}

// Sine fits a*sin(bx + c) + d to the curve. Guesses, when given, are
// initial values for a, b, c and d in that order; sine fitting is
// sensitive to the frequency guess b, so pass guesses whenever the
// frequency is roughly known.
func Sine(cv *gofigure.Curve, guesses ...float64) (*SineFit, error) {
	ymin, ymax, ymean := minMaxMean(cv.Y)
	g, err := guessesOr(guesses, []float64{(ymax - ymin) / 2, 1, 0, ymean})
	if err != nil {
		return nil, err
	}
	sf := &SineFit{}
	sf.Source = cv
	if err := sf.solve(sineModel, g); err != nil {
		return nil, err
	}
	return sf, nil
}

// Amplitude returns the fitted amplitude a.
func (sf *SineFit) Amplitude() float64 { return sf.Params[0] }

// Frequency returns the fitted angular frequency b, in radians per
// unit of x.
func (sf *SineFit) Frequency() float64 { return sf.Params[1] }

// Phase returns the fitted phase c, in radians.
func (sf *SineFit) Phase() float64 { return sf.Params[2] }

// Offset returns the fitted vertical offset d.
func (sf *SineFit) Offset() float64 { return sf.Params[3] }

// String returns the fitted model as a formula, such as
// "2.000 sin(3.000x + 4.000) + 5.000".
func (sf *SineFit) String() string {
	p := sf.Params
	return fmt.Sprintf("%.3f sin(%.3fx + %.3f) + %.3f", p[0], p[1], p[2], p[3])
}

// Plot adds the fitted model to the plot, implementing
// gofigure.Element.
func (sf *SineFit) Plot(p *plot.Plot, th *styles.Theme) error {
	return sf.plotFit(p, th, sf)
}
