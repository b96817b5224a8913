// Copyright (c) 2024, The GoFigure Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gofigure

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/gofigure-plot/gofigure/base/imagex"
	"github.com/gofigure-plot/gofigure/styles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckFloats(t *testing.T) {
	assert.NoError(t, CheckFloats(1, 2, 3))
	assert.NoError(t, CheckFloats(1, math.NaN()))
	assert.ErrorIs(t, CheckFloats(1, math.Inf(1)), ErrInfinity)
	assert.ErrorIs(t, CheckFloats(math.NaN(), math.NaN()), ErrNoData)
	assert.ErrorIs(t, CheckFloats(), ErrNoData)
}

func TestNewCurve(t *testing.T) {
	_, err := NewCurve([]float64{1, 2}, []float64{1})
	assert.ErrorIs(t, err, ErrLengthMismatch)
	_, err = NewCurve(nil, nil)
	assert.ErrorIs(t, err, ErrNoData)
	_, err = NewCurve([]float64{1, math.Inf(-1)}, []float64{1, 2})
	assert.ErrorIs(t, err, ErrInfinity)

	cv, err := NewCurve([]float64{1, 2, 3}, []float64{4, 5, 6})
	require.NoError(t, err)
	assert.Len(t, cv.Points(), 3)
}

func TestCurveFromFunction(t *testing.T) {
	cv := CurveFromFunction(func(x float64) float64 { return x * x }, 0, 2, 5)
	require.Len(t, cv.X, 5)
	assert.Equal(t, []float64{0, 0.5, 1, 1.5, 2}, cv.X)
	assert.Equal(t, []float64{0, 0.25, 1, 2.25, 4}, cv.Y)
}

func TestCurveCopy(t *testing.T) {
	cv, err := NewCurve([]float64{1, 2}, []float64{3, 4})
	require.NoError(t, err)
	cv.Label = "data"

	cp := cv.Copy()
	cp.X[0] = 100
	cp.Label = "copy"
	assert.Equal(t, 1.0, cv.X[0])
	assert.Equal(t, "data", cv.Label)
}

func TestNewHistogram(t *testing.T) {
	_, err := NewHistogram(nil, 10)
	assert.ErrorIs(t, err, ErrNoData)
	_, err = NewHistogram([]float64{1, math.Inf(1)}, 10)
	assert.ErrorIs(t, err, ErrInfinity)

	hg, err := NewHistogram([]float64{1, 2, 2, 3}, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, hg.Bins)
}

func TestFigurePlot(t *testing.T) {
	fg := NewFigure()
	fg.Title = "Test"
	fg.XLabel = "x"
	fg.YLabel = "y"
	cv, err := NewCurve([]float64{0, 1, 2}, []float64{0, 1, 4})
	require.NoError(t, err)
	cv.Label = "data"
	fg.Add(cv, NewPoint(1, 1))
	require.Len(t, fg.Elements(), 2)

	p, err := fg.Plot()
	require.NoError(t, err)
	assert.Equal(t, "Test", p.Title.Text)
	assert.Equal(t, "x", p.X.Label.Text)
	assert.Equal(t, "y", p.Y.Label.Text)
}

func TestFigureUnknownStyle(t *testing.T) {
	fg := NewFigure()
	fg.Style = "no-such-style"
	_, err := fg.Plot()
	assert.Error(t, err)
}

func TestFigureLimits(t *testing.T) {
	fg := NewFigure()
	fg.SetXLim(-1, 1)
	fg.SetYLim(0, 10)
	cv, err := NewCurve([]float64{0, 1}, []float64{0, 1})
	require.NoError(t, err)
	fg.Add(cv)

	p, err := fg.Plot()
	require.NoError(t, err)
	assert.Equal(t, -1.0, p.X.Min)
	assert.Equal(t, 1.0, p.X.Max)
	assert.Equal(t, 0.0, p.Y.Min)
	assert.Equal(t, 10.0, p.Y.Max)
}

func TestFigureRender(t *testing.T) {
	fg := NewFigure()
	fg.Title = "Render"
	fg.Add(CurveFromFunction(math.Sin, 0, 10, 200))
	sc, err := NewScatter([]float64{1, 3, 5}, []float64{0.5, -0.5, 0.8})
	require.NoError(t, err)
	sc.Label = "samples"
	fg.Add(sc)

	im, err := fg.Render()
	require.NoError(t, err)
	b := im.Bounds()
	assert.Equal(t, int(fg.Width*float64(fg.DPI)), b.Dx())
	assert.Equal(t, int(fg.Height*float64(fg.DPI)), b.Dy())
	imagex.Assert(t, im, "figure_render")
}

func TestScatterCurve(t *testing.T) {
	sc, err := NewScatter([]float64{1, 2, 3}, []float64{4, 5, 6})
	require.NoError(t, err)
	sc.Label = "samples"
	cv := sc.Curve()
	assert.Equal(t, sc.X, cv.X)
	assert.Equal(t, sc.Y, cv.Y)
	assert.Equal(t, "samples", cv.Label)
}

func TestFigureSave(t *testing.T) {
	fg := NewFigure()
	fg.Add(CurveFromFunction(math.Cos, 0, 5, 100))
	dir := t.TempDir()
	for _, ext := range []string{".png", ".svg", ".pdf"} {
		require.NoError(t, fg.Save(filepath.Join(dir, "fig"+ext)))
	}
	assert.Error(t, fg.Save(filepath.Join(dir, "fig.bmp")))
}

func TestMultiFigure(t *testing.T) {
	mf := NewMultiFigure(2, 2)
	fg := NewFigure()
	fg.Add(CurveFromFunction(math.Sin, 0, 5, 50))
	require.NoError(t, mf.SetFigure(0, 0, fg))
	require.NoError(t, mf.SetFigure(1, 1, fg))
	assert.Error(t, mf.SetFigure(2, 0, fg))
	assert.Error(t, mf.SetFigure(0, -1, fg))

	im, err := mf.Render()
	require.NoError(t, err)
	assert.Equal(t, int(mf.Width*float64(mf.DPI)), im.Bounds().Dx())
}

func TestThemeColorCycle(t *testing.T) {
	th := styles.Plain()
	c1 := th.NextColor()
	c2 := th.NextColor()
	assert.NotEqual(t, c1, c2)

	// A fresh clone starts the cycle over.
	cl := th.Clone()
	assert.Equal(t, c1, cl.NextColor())
}

func TestHLinesVLines(t *testing.T) {
	fg := NewFigure()
	fg.Add(NewHLines(1, 2), NewVLines(0.5))
	cv, err := NewCurve([]float64{0, 1}, []float64{0, 3})
	require.NoError(t, err)
	fg.Add(cv)
	_, err = fg.Plot()
	require.NoError(t, err)
}
