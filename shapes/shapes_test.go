// Copyright (c) 2024, The GoFigure Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shapes

import (
	"math"
	"testing"

	"github.com/gofigure-plot/gofigure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCircle(t *testing.T) {
	_, err := NewCircle(0, 0, -1)
	assert.Error(t, err)
	_, err = NewCircle(0, 0, 0)
	assert.Error(t, err)

	c, err := NewCircle(1, 2, 3)
	require.NoError(t, err)
	assert.InDelta(t, 9*math.Pi, c.Area(), 1e-12)
	assert.InDelta(t, 6*math.Pi, c.Circumference(), 1e-12)
	assert.Equal(t, gofigure.Point{X: 1, Y: 2}, c.Center())

	assert.True(t, c.Contains(1, 2))
	assert.True(t, c.Contains(4, 2))
	assert.False(t, c.Contains(4.01, 2))
}

func TestCircleCoordinates(t *testing.T) {
	c, err := NewCircle(0, 0, 1)
	require.NoError(t, err)

	pts, err := c.CoordinatesAtX(0)
	require.NoError(t, err)
	require.Len(t, pts, 2)
	assert.InDelta(t, 1, pts[0].Y, 1e-12)
	assert.InDelta(t, -1, pts[1].Y, 1e-12)

	_, err = c.CoordinatesAtX(2)
	assert.Error(t, err)
	_, err = c.CoordinatesAtY(-2)
	assert.Error(t, err)

	p := c.PointAtAngle(90, true)
	assert.InDelta(t, 0, p.X, 1e-12)
	assert.InDelta(t, 1, p.Y, 1e-12)
	p = c.PointAtAngle(math.Pi, false)
	assert.InDelta(t, -1, p.X, 1e-12)
	assert.InDelta(t, 0, p.Y, 1e-12)
}

func TestCircleAsPolygon(t *testing.T) {
	c, err := NewCircle(0, 0, 1)
	require.NoError(t, err)
	pg, err := c.AsPolygon(100)
	require.NoError(t, err)
	assert.Len(t, pg.Vertices(), 100)
	assert.InDelta(t, math.Pi, pg.Area(), 0.01)
	assert.InDelta(t, 2*math.Pi, pg.Perimeter(), 0.01)
}

func TestRectangle(t *testing.T) {
	_, err := NewRectangle(0, 0, -1, 1)
	assert.Error(t, err)
	_, err = NewRectangle(0, 0, 1, 0)
	assert.Error(t, err)

	r, err := NewRectangle(1, 2, 3, 4)
	require.NoError(t, err)
	assert.Equal(t, 12.0, r.Area())
	assert.Equal(t, 14.0, r.Perimeter())
	assert.Equal(t, gofigure.Point{X: 2.5, Y: 4}, r.Center())
	assert.True(t, r.Contains(1, 2))
	assert.True(t, r.Contains(4, 6))
	assert.False(t, r.Contains(4.1, 6))
}

func TestRectangleFrom(t *testing.T) {
	r, err := RectangleFromCenter(0, 0, 2, 4)
	require.NoError(t, err)
	assert.Equal(t, -1.0, r.X)
	assert.Equal(t, -2.0, r.Y)

	r, err = RectangleFromPoints(gofigure.Point{X: 3, Y: 4}, gofigure.Point{X: 1, Y: 2})
	require.NoError(t, err)
	assert.Equal(t, 1.0, r.X)
	assert.Equal(t, 2.0, r.Y)
	assert.Equal(t, 2.0, r.Width)
	assert.Equal(t, 2.0, r.Height)

	_, err = RectangleFromPoints(gofigure.Point{X: 1, Y: 4}, gofigure.Point{X: 1, Y: 2})
	assert.Error(t, err)
	_, err = RectangleFromPoints(gofigure.Point{X: 1, Y: 2}, gofigure.Point{X: 3, Y: 2})
	assert.Error(t, err)
}

func TestRectangleCoordinates(t *testing.T) {
	r, err := NewRectangle(0, 0, 2, 1)
	require.NoError(t, err)

	pts, err := r.CoordinatesAtX(1)
	require.NoError(t, err)
	assert.Equal(t, []gofigure.Point{{X: 1, Y: 0}, {X: 1, Y: 1}}, pts)

	pts, err = r.CoordinatesAtY(0.5)
	require.NoError(t, err)
	assert.Equal(t, []gofigure.Point{{X: 0, Y: 0.5}, {X: 2, Y: 0.5}}, pts)

	_, err = r.CoordinatesAtX(3)
	assert.Error(t, err)
	_, err = r.CoordinatesAtY(1)
	assert.Error(t, err)
}

func unitSquare(t *testing.T) *Polygon {
	t.Helper()
	pg, err := NewPolygon([]gofigure.Point{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1},
	})
	require.NoError(t, err)
	return pg
}

func TestPolygon(t *testing.T) {
	_, err := NewPolygon([]gofigure.Point{{X: 0, Y: 0}, {X: 1, Y: 1}})
	assert.Error(t, err)

	pg := unitSquare(t)
	assert.Len(t, pg.Vertices(), 4)
	assert.InDelta(t, 1, pg.Area(), 1e-12)
	assert.InDelta(t, 4, pg.Perimeter(), 1e-12)
	cen := pg.Centroid()
	assert.InDelta(t, 0.5, cen.X, 1e-12)
	assert.InDelta(t, 0.5, cen.Y, 1e-12)
	assert.True(t, pg.Contains(0.5, 0.5))
	assert.False(t, pg.Contains(1.5, 0.5))
}

func TestPolygonTransforms(t *testing.T) {
	pg := unitSquare(t)

	tr := pg.Translate(2, 3)
	cen := tr.Centroid()
	assert.InDelta(t, 2.5, cen.X, 1e-9)
	assert.InDelta(t, 3.5, cen.Y, 1e-9)
	// The original is unchanged.
	assert.InDelta(t, 0.5, pg.Centroid().X, 1e-9)

	rot := pg.RotateAbout(90, true, 0, 0)
	assert.InDelta(t, 1, rot.Area(), 1e-9)
	assert.True(t, rot.Contains(-0.5, 0.5))

	sc := pg.Scale(2, 3)
	assert.InDelta(t, 6, sc.Area(), 1e-9)
	cen = sc.Centroid()
	assert.InDelta(t, 0.5, cen.X, 1e-9)
	assert.InDelta(t, 0.5, cen.Y, 1e-9)

	sk := pg.Skew(45, 0, true)
	assert.InDelta(t, 1, sk.Area(), 1e-9)
}

func offsetSquares(t *testing.T) (a, b *Polygon) {
	t.Helper()
	a = unitSquare(t)
	b, err := NewPolygon([]gofigure.Point{
		{X: 0.5, Y: 0.5}, {X: 1.5, Y: 0.5}, {X: 1.5, Y: 1.5}, {X: 0.5, Y: 1.5},
	})
	require.NoError(t, err)
	return a, b
}

func TestPolygonBooleans(t *testing.T) {
	a, b := offsetSquares(t)

	in, err := a.Intersection(b, false)
	require.NoError(t, err)
	assert.InDelta(t, 0.25, in.Area(), 1e-9)

	un, err := a.Union(b, false)
	require.NoError(t, err)
	assert.InDelta(t, 1.75, un.Area(), 1e-9)

	df, err := a.Difference(b, false)
	require.NoError(t, err)
	assert.InDelta(t, 0.75, df.Area(), 1e-9)

	far, err := NewPolygon([]gofigure.Point{
		{X: 10, Y: 10}, {X: 11, Y: 10}, {X: 11, Y: 11},
	})
	require.NoError(t, err)
	_, err = a.Intersection(far, false)
	assert.Error(t, err)
}

func TestPolygonBooleanStyle(t *testing.T) {
	a, b := offsetSquares(t)
	a.Label = "a"
	a.Style.LineWidth = 3

	in, err := a.Intersection(b, true)
	require.NoError(t, err)
	assert.Equal(t, "a", in.Label)
	assert.Equal(t, 3.0, in.Style.LineWidth)

	in, err = a.Intersection(b, false)
	require.NoError(t, err)
	assert.Empty(t, in.Label)
}

func TestPolygonIntersectionPoints(t *testing.T) {
	a, b := offsetSquares(t)
	pts := a.IntersectionPoints(b)
	require.Len(t, pts, 2)
	for _, p := range pts {
		onA := p.X == 1 || p.Y == 1
		onB := p.X == 0.5 || p.Y == 0.5
		assert.True(t, onA && onB, "point %v not on both boundaries", p)
	}
}

func TestCurveIntersectionPoints(t *testing.T) {
	pg := unitSquare(t)
	cv, err := gofigure.NewCurve([]float64{-1, 2}, []float64{0.5, 0.5})
	require.NoError(t, err)
	pts := pg.CurveIntersectionPoints(cv)
	require.Len(t, pts, 2)
	xs := []float64{pts[0].X, pts[1].X}
	assert.Contains(t, xs, 0.0)
	assert.Contains(t, xs, 1.0)
}

func TestLine(t *testing.T) {
	ln := NewLine(gofigure.Point{X: 0, Y: 0}, gofigure.Point{X: 3, Y: 4})
	assert.Equal(t, 5.0, ln.Length())
	assert.Equal(t, gofigure.Point{X: 1.5, Y: 2}, ln.Center())
}

func TestArrowShrink(t *testing.T) {
	ar := NewArrow(gofigure.Point{X: 0, Y: 0}, gofigure.Point{X: 4, Y: 2})
	a, b := ar.shrinkPoints()
	assert.Equal(t, ar.A, a)
	assert.Equal(t, ar.B, b)

	ar.Shrink = 0.25
	a, b = ar.shrinkPoints()
	assert.Equal(t, gofigure.Point{X: 1, Y: 0.5}, a)
	assert.Equal(t, gofigure.Point{X: 3, Y: 1.5}, b)
}

func TestSegIntersect(t *testing.T) {
	p, ok := segIntersect(
		gofigure.Point{X: 0, Y: 0}, gofigure.Point{X: 2, Y: 2},
		gofigure.Point{X: 0, Y: 2}, gofigure.Point{X: 2, Y: 0},
	)
	require.True(t, ok)
	assert.InDelta(t, 1, p.X, 1e-12)
	assert.InDelta(t, 1, p.Y, 1e-12)

	_, ok = segIntersect(
		gofigure.Point{X: 0, Y: 0}, gofigure.Point{X: 1, Y: 0},
		gofigure.Point{X: 0, Y: 1}, gofigure.Point{X: 1, Y: 1},
	)
	assert.False(t, ok)
}
