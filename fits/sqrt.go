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

// SquareRootFit is the model a*sqrt(x + b) + c fitted to curve data.
type SquareRootFit struct {
	fitBase
}

func sqrtModel(p []float64, x float64) float64 {
	return p[0]*math.Sqrt(x+p[1]) + p[2]
}

// SquareRoot fits a*sqrt(x + b) + c to the curve. Guesses, when
// given, are initial values for a, b and c in that order. The default
// guess shifts b just past the smallest x so the root is defined over
// the data.
func SquareRoot(cv *gofigure.Curve, guesses ...float64) (*SquareRootFit, error) {
	xmin, _, _ := minMaxMean(cv.X)
	_, _, ymean := minMaxMean(cv.Y)
	b := 1.0
	if xmin <= 0 {
		b = 1 - xmin
	}
	g, err := guessesOr(guesses, []float64{1, b, ymean})
	if err != nil {
		return nil, err
	}
	sf := &SquareRootFit{}
	sf.Source = cv
	if err := sf.solve(sqrtModel, g); err != nil {
		return nil, err
	}
	return sf, nil
}

// String returns the fitted model as a formula, such as
// "3.000 sqrt(x + 4.000) + 5.000".
func (sf *SquareRootFit) String() string {
	p := sf.Params
	return fmt.Sprintf("%.3f sqrt(x + %.3f) + %.3f", p[0], p[1], p[2])
}

// Plot adds the fitted model to the plot, implementing
// gofigure.Element.
func (sf *SquareRootFit) Plot(p *plot.Plot, th *styles.Theme) error {
	return sf.plotFit(p, th, sf)
}
