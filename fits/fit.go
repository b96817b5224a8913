// Copyright (c) 2024, The GoFigure Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fits fits analytic models to curve data and plots the
// fitted models alongside the data they were fitted on.
package fits

import (
	"fmt"
	"math"

	"github.com/gofigure-plot/gofigure"
	"github.com/gofigure-plot/gofigure/base/errors"
	"github.com/gofigure-plot/gofigure/styles"
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize"
	"gonum.org/v1/plot"
)

// ErrNonFinite is returned when the data to fit contains NaN or
// infinite values. Fitting is stricter than plotting here: a curve
// may carry NaN gaps for drawing, but least squares cannot see
// through them.
var ErrNonFinite = errors.New("fits: data contains non-finite values")

// model evaluates a parametric model at x.
type model func(params []float64, x float64) float64

// fitBase holds what every fitted model shares: the source data, the
// fitted parameters with their uncertainties, and the plotting style
// of the fitted curve.
type fitBase struct {

	// Source is the curve the model was fitted on.
	Source *gofigure.Curve

	// Params are the fitted model parameters.
	Params []float64

	// StdDev has the standard deviation of each parameter. It is nil
	// when J^T J is singular and the covariance cannot be estimated.
	StdDev []float64

	// Cov is the parameter covariance matrix, nil when J^T J is
	// singular.
	Cov *mat.Dense

	// RSS is the residual sum of squares at the fitted parameters.
	RSS float64

	// Label is the legend label. If empty, the fitted formula is used.
	Label string

	// Color is the color of the fitted curve; the next theme cycle
	// color applies when unset.
	Color styles.Color

	// Width is the line width in points; the theme curve width applies
	// when zero.
	Width float64

	// Style is the dash pattern of the fitted curve; unset uses the
	// theme default.
	Style styles.LineStyles

	model model
}

// Eval evaluates the fitted model at x.
func (fb *fitBase) Eval(x float64) float64 {
	return fb.model(fb.Params, x)
}

// FitCurve returns the fitted model sampled at n evenly spaced points
// over the x range of the source data.
func (fb *fitBase) FitCurve(n int) *gofigure.Curve {
	xmin, xmax := math.Inf(1), math.Inf(-1)
	for _, x := range fb.Source.X {
		xmin = math.Min(xmin, x)
		xmax = math.Max(xmax, x)
	}
	return gofigure.CurveFromFunction(fb.Eval, xmin, xmax, n)
}

func (fb *fitBase) plotFit(p *plot.Plot, th *styles.Theme, s fmt.Stringer) error {
	cv := fb.FitCurve(500)
	cv.Label = fb.Label
	if cv.Label == "" {
		cv.Label = s.String()
	}
	cv.Color = fb.Color
	cv.Width = fb.Width
	cv.Style = fb.Style
	return cv.Plot(p, th)
}

// solve fits the model to the data by least squares: a Nelder-Mead
// search from the guess, then Gauss-Newton steps to polish the
// minimum. It fills Params, StdDev, Cov and RSS.
func (fb *fitBase) solve(m model, guess []float64) error {
	x, y := fb.Source.X, fb.Source.Y
	if err := checkFinite(x, y); err != nil {
		return err
	}
	n, np := len(x), len(guess)
	if n <= np {
		return fmt.Errorf("fits: need more than %d data points to fit %d parameters, got %d", np, np, n)
	}
	fb.model = m

	rss := func(params []float64) float64 {
		var s float64
		for i, xi := range x {
			r := m(params, xi) - y[i]
			if math.IsNaN(r) || math.IsInf(r, 0) {
				return math.Inf(1)
			}
			s += r * r
		}
		return s
	}
	problem := optimize.Problem{Func: rss}
	res, err := optimize.Minimize(problem, guess, nil, &optimize.NelderMead{})
	if err != nil {
		return fmt.Errorf("fits: %w", err)
	}
	params := append([]float64(nil), res.X...)

	residuals := func(dst, prm []float64) {
		for i, xi := range x {
			dst[i] = m(prm, xi) - y[i]
		}
	}
	jac := mat.NewDense(n, np, nil)
	r := mat.NewVecDense(n, nil)
	for iter := 0; iter < 50; iter++ {
		residuals(r.RawVector().Data, params)
		fd.Jacobian(jac, residuals, params, &fd.JacobianSettings{Concurrent: true})
		var qr mat.QR
		qr.Factorize(jac)
		var step mat.VecDense
		err := qr.SolveVecTo(&step, false, r)
		if _, cond := err.(mat.Condition); err != nil && !cond {
			break // singular Jacobian; keep the search result
		}
		next := append([]float64(nil), params...)
		for i := range next {
			next[i] -= step.AtVec(i)
		}
		if rss(next) > rss(params) {
			break
		}
		params = next
		if mat.Norm(&step, 2) < 1e-12 {
			break
		}
	}

	fb.Params = params
	fb.RSS = rss(params)
	fd.Jacobian(jac, residuals, params, &fd.JacobianSettings{Concurrent: true})
	fb.Cov, fb.StdDev = covariance(jac, fb.RSS, n, np)
	return nil
}

// covariance estimates the parameter covariance sigma^2 (J^T J)^-1,
// with sigma^2 the residual variance. It returns nil when J^T J is
// singular.
func covariance(jac *mat.Dense, rss float64, n, np int) (*mat.Dense, []float64) {
	var jtj mat.Dense
	jtj.Mul(jac.T(), jac)
	var inv mat.Dense
	if err := inv.Inverse(&jtj); err != nil {
		return nil, nil
	}
	sigma2 := rss / float64(n-np)
	inv.Scale(sigma2, &inv)
	sd := make([]float64, np)
	for i := range sd {
		sd[i] = math.Sqrt(inv.At(i, i))
	}
	return &inv, sd
}

// checkFinite rejects data containing NaN or infinite values.
func checkFinite(x, y []float64) error {
	for _, vs := range [][]float64{x, y} {
		for _, v := range vs {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return ErrNonFinite
			}
		}
	}
	return nil
}

// guessesOr returns the given guesses, or def when none are given.
// The number of guesses must match the number of model parameters.
func guessesOr(guesses, def []float64) ([]float64, error) {
	if len(guesses) == 0 {
		return def, nil
	}
	if len(guesses) != len(def) {
		return nil, fmt.Errorf("fits: expected %d guesses, got %d", len(def), len(guesses))
	}
	return guesses, nil
}

// minMaxMean returns basic statistics of vs used for default guesses.
func minMaxMean(vs []float64) (min, max, mean float64) {
	min, max = math.Inf(1), math.Inf(-1)
	for _, v := range vs {
		min = math.Min(min, v)
		max = math.Max(max, v)
		mean += v
	}
	return min, max, mean / float64(len(vs))
}
