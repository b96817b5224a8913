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

// ExponentialFit is the model a*exp(bx + c) fitted to curve data.
// The form is redundant in a and c; both are kept so fitted formulas
// read the same way the model was specified.
type ExponentialFit struct {
	fitBase
}

func expModel(p []float64, x float64) float64 {
	return p[0] * math.Exp(p[1]*x+p[2])
}

// Exponential fits a*exp(bx + c) to the curve. Guesses, when given,
// are initial values for a, b and c in that order. The default guess
// comes from a line fit of log y, usable when the y values are
// positive.
func Exponential(cv *gofigure.Curve, guesses ...float64) (*ExponentialFit, error) {
	g, err := guessesOr(guesses, expGuess(cv))
	if err != nil {
		return nil, err
	}
	ef := &ExponentialFit{}
	ef.Source = cv
	if err := ef.solve(expModel, g); err != nil {
		return nil, err
	}
	return ef, nil
}

// expGuess log-linearizes positive data: log y = log a + bx + c with
// a fixed at 1, leaving a line fit for b and c.
func expGuess(cv *gofigure.Curve) []float64 {
	var sx, sy, sxx, sxy float64
	n := 0
	for i, y := range cv.Y {
		if y <= 0 {
			continue
		}
		x, ly := cv.X[i], math.Log(y)
		sx += x
		sy += ly
		sxx += x * x
		sxy += x * ly
		n++
	}
	den := float64(n)*sxx - sx*sx
	if n < 2 || den == 0 {
		return []float64{1, 1, 0}
	}
	b := (float64(n)*sxy - sx*sy) / den
	c := (sy - b*sx) / float64(n)
	return []float64{1, b, c}
}

// String returns the fitted model as a formula, such as
// "2.000 exp(3.000x + 4.000)".
func (ef *ExponentialFit) String() string {
	p := ef.Params
	return fmt.Sprintf("%.3f exp(%.3fx + %.3f)", p[0], p[1], p[2])
}

// Plot adds the fitted model to the plot, implementing
// gofigure.Element.
func (ef *ExponentialFit) Plot(p *plot.Plot, th *styles.Theme) error {
	return ef.plotFit(p, th, ef)
}
