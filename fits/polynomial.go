// Copyright (c) 2024, The GoFigure Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fits

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/gofigure-plot/gofigure"
	"github.com/gofigure-plot/gofigure/styles"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
)

// PolynomialFit is a polynomial of a given degree fitted to curve
// data. The coefficients are in ascending order of power, so
// Params[i] is the coefficient of x^i.
type PolynomialFit struct {
	fitBase
}

// Polynomial fits a polynomial of the given degree to the curve by
// linear least squares. The data must be finite; NaN or infinite
// values return [ErrNonFinite].
func Polynomial(cv *gofigure.Curve, degree int) (*PolynomialFit, error) {
	if degree < 0 {
		return nil, fmt.Errorf("fits: polynomial degree must not be negative, got %d", degree)
	}
	x, y := cv.X, cv.Y
	if err := checkFinite(x, y); err != nil {
		return nil, err
	}
	n, np := len(x), degree+1
	if n <= np {
		return nil, fmt.Errorf("fits: need more than %d data points to fit degree %d, got %d", np, degree, n)
	}

	vand := mat.NewDense(n, np, nil)
	for i, xi := range x {
		v := 1.0
		for j := 0; j < np; j++ {
			vand.Set(i, j, v)
			v *= xi
		}
	}
	var qr mat.QR
	qr.Factorize(vand)
	var sol mat.VecDense
	err := qr.SolveVecTo(&sol, false, mat.NewVecDense(n, y))
	if _, cond := err.(mat.Condition); err != nil && !cond {
		return nil, fmt.Errorf("fits: %w", err)
	}
	coeffs := append([]float64(nil), sol.RawVector().Data...)

	pf := &PolynomialFit{}
	pf.Source = cv
	pf.Params = coeffs
	pf.model = func(params []float64, x float64) float64 {
		y, v := 0.0, 1.0
		for _, c := range params {
			y += c * v
			v *= x
		}
		return y
	}
	for i, xi := range x {
		r := pf.model(coeffs, xi) - y[i]
		pf.RSS += r * r
	}
	pf.Cov, pf.StdDev = covariance(vand, pf.RSS, n, np)
	return pf, nil
}

// Coeffs returns the polynomial coefficients in ascending order of
// power.
func (pf *PolynomialFit) Coeffs() []float64 {
	return pf.Params
}

// Degree returns the degree of the fitted polynomial.
func (pf *PolynomialFit) Degree() int {
	return len(pf.Params) - 1
}

// String returns the fitted polynomial as a formula, highest power
// first, with coefficients rounded to three decimals and zero terms
// omitted, such as "2.0x^2 - 3.0x^1 + 1.5".
func (pf *PolynomialFit) String() string {
	var b strings.Builder
	for power := len(pf.Params) - 1; power >= 0; power-- {
		c := math.Round(pf.Params[power]*1000) / 1000
		if c == 0 {
			continue
		}
		switch {
		case b.Len() == 0 && c < 0:
			b.WriteString("-")
		case b.Len() > 0 && c < 0:
			b.WriteString(" - ")
		case b.Len() > 0:
			b.WriteString(" + ")
		}
		b.WriteString(formatCoeff(math.Abs(c)))
		if power != 0 {
			fmt.Fprintf(&b, "x^%d", power)
		}
	}
	if b.Len() == 0 {
		return "0.0"
	}
	return b.String()
}

// formatCoeff formats a rounded coefficient with as few decimals as
// possible but at least one, so 3 prints as "3.0" and 3.125 as such.
func formatCoeff(c float64) string {
	s := strconv.FormatFloat(c, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// Plot adds the fitted polynomial to the plot, implementing
// gofigure.Element.
func (pf *PolynomialFit) Plot(p *plot.Plot, th *styles.Theme) error {
	return pf.plotFit(p, th, pf)
}
