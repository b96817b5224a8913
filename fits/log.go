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

// LogFit is the model a*log(x + b) + c fitted to curve data, using
// the natural logarithm.
type LogFit struct {
	fitBase
}

func logModel(p []float64, x float64) float64 {
	return p[0]*math.Log(x+p[1]) + p[2]
}

// Log fits a*log(x + b) + c to the curve, with log the natural
// logarithm. Guesses, when given, are initial values for a, b and c
// in that order. The default guess shifts b just past the smallest x
// so the logarithm is defined over the data.
func Log(cv *gofigure.Curve, guesses ...float64) (*LogFit, error) {
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
	lf := &LogFit{}
	lf.Source = cv
	if err := lf.solve(logModel, g); err != nil {
		return nil, err
	}
	return lf, nil
}

// String returns the fitted model as a formula, such as
// "2.000 log_e(x + 3.000) + 4.000".
func (lf *LogFit) String() string {
	p := lf.Params
	return fmt.Sprintf("%.3f log_e(x + %.3f) + %.3f", p[0], p[1], p[2])
}

// Plot adds the fitted model to the plot, implementing
// gofigure.Element.
func (lf *LogFit) Plot(p *plot.Plot, th *styles.Theme) error {
	return lf.plotFit(p, th, lf)
}
