// Copyright (c) 2024, The GoFigure Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fits

import (
	"math"
	"testing"

	"github.com/gofigure-plot/gofigure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sample returns a curve with y = f(x) over n evenly spaced points in
// [xmin, xmax].
func sample(f func(float64) float64, xmin, xmax float64, n int) *gofigure.Curve {
	return gofigure.CurveFromFunction(f, xmin, xmax, n)
}

func TestPolynomial(t *testing.T) {
	cv := sample(func(x float64) float64 {
		return 2*x*x - 3*x + 1.5
	}, -5, 5, 50)
	pf, err := Polynomial(cv, 2)
	require.NoError(t, err)

	coeffs := pf.Coeffs()
	require.Len(t, coeffs, 3)
	assert.InDelta(t, 1.5, coeffs[0], 1e-9)
	assert.InDelta(t, -3, coeffs[1], 1e-9)
	assert.InDelta(t, 2, coeffs[2], 1e-9)
	assert.Equal(t, 2, pf.Degree())
	assert.InDelta(t, 0, pf.RSS, 1e-9)
	assert.InDelta(t, 2*4-3*2+1.5, pf.Eval(2), 1e-9)

	require.Len(t, pf.StdDev, 3)
	r, c := pf.Cov.Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, 3, c)
}

func TestPolynomialString(t *testing.T) {
	cv := sample(func(x float64) float64 {
		return 3*x + 2
	}, 0, 10, 20)
	pf, err := Polynomial(cv, 1)
	require.NoError(t, err)
	assert.Equal(t, "3.0x^1 + 2.0", pf.String())

	cv = sample(func(x float64) float64 {
		return 4*x*x - 3*x - 2
	}, -3, 3, 20)
	pf, err = Polynomial(cv, 2)
	require.NoError(t, err)
	assert.Equal(t, "4.0x^2 - 3.0x^1 - 2.0", pf.String())

	cv = sample(func(x float64) float64 {
		return 2.125*x - 0.5
	}, 0, 10, 20)
	pf, err = Polynomial(cv, 1)
	require.NoError(t, err)
	assert.Equal(t, "2.125x^1 - 0.5", pf.String())
}

func TestPolynomialErrors(t *testing.T) {
	cv := sample(func(x float64) float64 { return x }, 0, 1, 3)
	_, err := Polynomial(cv, -1)
	assert.Error(t, err)
	_, err = Polynomial(cv, 5)
	assert.Error(t, err)
}

func TestSine(t *testing.T) {
	cv := sample(func(x float64) float64 {
		return 2*math.Sin(3*x+4) + 5
	}, 0, 6, 200)
	sf, err := Sine(cv, 2.1, 3.1, 4.2, 5.2)
	require.NoError(t, err)

	assert.InDelta(t, 2, sf.Amplitude(), 1e-6)
	assert.InDelta(t, 3, sf.Frequency(), 1e-6)
	assert.InDelta(t, 4, sf.Phase(), 1e-6)
	assert.InDelta(t, 5, sf.Offset(), 1e-6)
	assert.Equal(t, "2.000 sin(3.000x + 4.000) + 5.000", sf.String())
	require.Len(t, sf.StdDev, 4)
}

func TestSineGuessCount(t *testing.T) {
	cv := sample(math.Sin, 0, 6, 50)
	_, err := Sine(cv, 1, 2)
	assert.Error(t, err)
}

func TestExponential(t *testing.T) {
	cv := sample(func(x float64) float64 {
		return 2 * math.Exp(0.5*x)
	}, 0, 4, 100)
	ef, err := Exponential(cv, 2.1, 0.6, 0.1)
	require.NoError(t, err)

	assert.InDelta(t, 0.5, ef.Params[1], 1e-6)
	assert.InDelta(t, 2, ef.Eval(0), 1e-6)
	assert.InDelta(t, 2*math.Exp(1), ef.Eval(2), 1e-5)
}

func TestGaussian(t *testing.T) {
	cv := sample(func(x float64) float64 {
		d := (x - 1) / 1
		return 5 * math.Exp(-d*d/2)
	}, -4, 6, 200)
	gf, err := Gaussian(cv)
	require.NoError(t, err)

	assert.InDelta(t, 5, gf.Amplitude(), 1e-6)
	assert.InDelta(t, 1, gf.Mean(), 1e-6)
	assert.InDelta(t, 1, math.Abs(gf.Sigma()), 1e-6)
	assert.Equal(t, "μ = 1.000, σ = 1.000, A = 5.000", gf.String())
}

func TestLog(t *testing.T) {
	cv := sample(func(x float64) float64 {
		return 2*math.Log(x+3) + 4
	}, 0, 10, 100)
	lf, err := Log(cv, 2.1, 3.1, 4.1)
	require.NoError(t, err)

	assert.InDelta(t, 2, lf.Params[0], 1e-6)
	assert.InDelta(t, 3, lf.Params[1], 1e-6)
	assert.InDelta(t, 4, lf.Params[2], 1e-6)
	assert.Equal(t, "2.000 log_e(x + 3.000) + 4.000", lf.String())
}

func TestSquareRoot(t *testing.T) {
	cv := sample(func(x float64) float64 {
		return 3*math.Sqrt(x+4) + 5
	}, 0, 10, 100)
	sf, err := SquareRoot(cv, 3.1, 4.1, 5.1)
	require.NoError(t, err)

	assert.InDelta(t, 3, sf.Params[0], 1e-6)
	assert.InDelta(t, 4, sf.Params[1], 1e-6)
	assert.InDelta(t, 5, sf.Params[2], 1e-6)
	assert.Equal(t, "3.000 sqrt(x + 4.000) + 5.000", sf.String())
}

func TestFitCurve(t *testing.T) {
	cv := sample(func(x float64) float64 {
		return x * x
	}, -2, 2, 30)
	pf, err := Polynomial(cv, 2)
	require.NoError(t, err)

	fc := pf.FitCurve(100)
	require.Len(t, fc.X, 100)
	assert.Equal(t, -2.0, fc.X[0])
	assert.InDelta(t, 2.0, fc.X[99], 1e-12)
	assert.InDelta(t, 4, fc.Y[0], 1e-9)
}

func TestNonFiniteData(t *testing.T) {
	// Curves tolerate NaN gaps for drawing, so this one validates.
	cv, err := gofigure.NewCurve(
		[]float64{0, 1, 2, 3, 4},
		[]float64{1, math.NaN(), 3, 4, 5},
	)
	require.NoError(t, err)

	_, err = Polynomial(cv, 1)
	assert.ErrorIs(t, err, ErrNonFinite)
	_, err = Sine(cv, 1, 1, 0, 0)
	assert.ErrorIs(t, err, ErrNonFinite)

	// log(x) sampled over negative x carries NaN into the data.
	cv = sample(math.Log, -1, 5, 40)
	_, err = Polynomial(cv, 1)
	assert.ErrorIs(t, err, ErrNonFinite)

	cv = sample(func(x float64) float64 { return 1 / x }, -1, 1, 41)
	_, err = Polynomial(cv, 1)
	assert.ErrorIs(t, err, ErrNonFinite)
}

func TestFitNeedsEnoughPoints(t *testing.T) {
	cv, err := gofigure.NewCurve([]float64{0, 1, 2}, []float64{1, 2, 3})
	require.NoError(t, err)
	_, err = Sine(cv, 1, 1, 0, 0)
	assert.Error(t, err)
}
