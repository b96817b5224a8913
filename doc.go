// Copyright (c) 2024, The GoFigure Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gofigure is a declarative plotting convenience library.
// Figures are described with simple data objects (curves, scatters,
// histograms, fits, shapes, annotations) that are translated into
// rendered plots through gonum/plot, with a consistent figure style
// applied to any visual property left unset.
//
// The typical usage is:
//
//	fig := gofigure.NewFigure()
//	fig.Title = "Damped oscillation"
//	fig.Add(gofigure.CurveFromFunction(f, 0, 10, 500))
//	err := fig.Save("oscillation.png")
//
// Subpackages provide curve fitting (fits), shape primitives with
// boolean geometry (shapes), and figure styles (styles).
package gofigure
