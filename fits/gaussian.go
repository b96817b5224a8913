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

// GaussianFit is the model A*exp(-((x-mu)/sigma)^2 / 2) fitted to
// curve data, with parameters in the order A, mu, sigma.
type GaussianFit struct {
	fitBase
}

func gaussianModel(p []float64, x float64) float64 {
	d := (x - p[1]) / p[2]
	return p[0] * math.Exp(-d*d/2)
}

// Gaussian fits A*exp(-((x-mu)/sigma)^2 / 2) to the curve. Guesses,
// when given, are initial values for A, mu and sigma in that order.
// By default the peak location and a moment estimate of the spread
// seed the fit.
func Gaussian(cv *gofigure.Curve, guesses ...float64) (*GaussianFit, error) {
	g, err := guessesOr(guesses, gaussianGuess(cv))
	if err != nil {
		return nil, err
	}
	gf := &GaussianFit{}
	gf.Source = cv
	if err := gf.solve(gaussianModel, g); err != nil {
		return nil, err
	}
	return gf, nil
}

// gaussianGuess treats y as weights over x: the weighted mean seeds
// mu and the weighted standard deviation seeds sigma.
func gaussianGuess(cv *gofigure.Curve) []float64 {
	amp, peak := math.Inf(-1), 0.0
	var wsum, mean float64
	for i, y := range cv.Y {
		if y > amp {
			amp, peak = y, cv.X[i]
		}
		if y > 0 {
			wsum += y
			mean += y * cv.X[i]
		}
	}
	if wsum == 0 {
		return []float64{amp, peak, 1}
	}
	mean /= wsum
	var varsum float64
	for i, y := range cv.Y {
		if y > 0 {
			d := cv.X[i] - mean
			varsum += y * d * d
		}
	}
	sigma := math.Sqrt(varsum / wsum)
	if sigma == 0 {
		sigma = 1
	}
	return []float64{amp, peak, sigma}
}

// Amplitude returns the fitted peak height A.
func (gf *GaussianFit) Amplitude() float64 { return gf.Params[0] }

// Mean returns the fitted peak location mu.
func (gf *GaussianFit) Mean() float64 { return gf.Params[1] }

// Sigma returns the fitted spread sigma.
func (gf *GaussianFit) Sigma() float64 { return gf.Params[2] }

// String returns the fitted parameters, such as
// "μ = 1.000, σ = 1.000, A = 5.000".
func (gf *GaussianFit) String() string {
	return fmt.Sprintf("μ = %.3f, σ = %.3f, A = %.3f", gf.Mean(), gf.Sigma(), gf.Amplitude())
}

// Plot adds the fitted model to the plot, implementing
// gofigure.Element.
func (gf *GaussianFit) Plot(p *plot.Plot, th *styles.Theme) error {
	return gf.plotFit(p, th, gf)
}
