// Copyright (c) 2024, The GoFigure Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shapes

import (
	"math"

	"github.com/gofigure-plot/gofigure"
)

// Analytic helpers over vertex rings. Rings are ordered vertex lists
// without a repeated closing vertex.

// ringArea returns the signed shoelace area of the ring:
// positive for counterclockwise winding.
func ringArea(pts []gofigure.Point) float64 {
	n := len(pts)
	if n < 3 {
		return 0
	}
	a := 0.0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		a += pts[i].X*pts[j].Y - pts[j].X*pts[i].Y
	}
	return a / 2
}

// ringCentroid returns the area centroid of the ring, falling back to
// the vertex mean for degenerate (zero area) rings.
func ringCentroid(pts []gofigure.Point) gofigure.Point {
	n := len(pts)
	a := ringArea(pts)
	if n == 0 {
		return gofigure.Point{}
	}
	if math.Abs(a) < 1e-12 {
		var cx, cy float64
		for _, p := range pts {
			cx += p.X
			cy += p.Y
		}
		return gofigure.Point{X: cx / float64(n), Y: cy / float64(n)}
	}
	var cx, cy float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		cross := pts[i].X*pts[j].Y - pts[j].X*pts[i].Y
		cx += (pts[i].X + pts[j].X) * cross
		cy += (pts[i].Y + pts[j].Y) * cross
	}
	return gofigure.Point{X: cx / (6 * a), Y: cy / (6 * a)}
}

// pointInRing reports whether the point is inside the ring,
// using even-odd ray casting.
func pointInRing(pts []gofigure.Point, x, y float64) bool {
	n := len(pts)
	in := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		pi, pj := pts[i], pts[j]
		if (pi.Y > y) != (pj.Y > y) &&
			x < (pj.X-pi.X)*(y-pi.Y)/(pj.Y-pi.Y)+pi.X {
			in = !in
		}
	}
	return in
}

// segIntersect returns the intersection point of segments a1-a2 and
// b1-b2, and whether they intersect at a single point.
func segIntersect(a1, a2, b1, b2 gofigure.Point) (gofigure.Point, bool) {
	d1x, d1y := a2.X-a1.X, a2.Y-a1.Y
	d2x, d2y := b2.X-b1.X, b2.Y-b1.Y
	den := d1x*d2y - d1y*d2x
	if math.Abs(den) < 1e-14 {
		return gofigure.Point{}, false // parallel or collinear
	}
	t := ((b1.X-a1.X)*d2y - (b1.Y-a1.Y)*d2x) / den
	u := ((b1.X-a1.X)*d1y - (b1.Y-a1.Y)*d1x) / den
	if t < 0 || t > 1 || u < 0 || u > 1 {
		return gofigure.Point{}, false
	}
	return gofigure.Point{X: a1.X + t*d1x, Y: a1.Y + t*d1y}, true
}

// ringIntersections returns the points where the boundary of ring a
// crosses the polyline b. Closed rings should pass closed=true for b.
func ringIntersections(a []gofigure.Point, b []gofigure.Point, closed bool) []gofigure.Point {
	var out []gofigure.Point
	na := len(a)
	nb := len(b)
	if na < 2 || nb < 2 {
		return nil
	}
	bEnd := nb - 1
	if closed {
		bEnd = nb
	}
	for i := 0; i < na; i++ {
		a1, a2 := a[i], a[(i+1)%na]
		for j := 0; j < bEnd; j++ {
			b1, b2 := b[j], b[(j+1)%nb]
			if p, ok := segIntersect(a1, a2, b1, b2); ok {
				out = appendUniquePoint(out, p)
			}
		}
	}
	return out
}

func appendUniquePoint(pts []gofigure.Point, p gofigure.Point) []gofigure.Point {
	for _, q := range pts {
		if math.Abs(q.X-p.X) < 1e-9 && math.Abs(q.Y-p.Y) < 1e-9 {
			return pts
		}
	}
	return append(pts, p)
}
