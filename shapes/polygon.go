// Copyright (c) 2024, The GoFigure Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shapes

import (
	"fmt"
	"math"

	"github.com/gofigure-plot/gofigure"
	"github.com/gofigure-plot/gofigure/styles"
	"github.com/tdewolff/canvas"
	"gonum.org/v1/plot"
)

// Polygon is a closed polygon given by its vertices. Boolean
// operations and affine transforms are backed by a canvas.Path.
type Polygon struct {

	// Label is the legend label; no legend entry if empty.
	Label string

	// Style has the visual properties of the polygon.
	Style Style

	path *canvas.Path
}

// NewPolygon returns a polygon with the given vertices, which must
// number at least three. The closing edge back to the first vertex is
// implied and need not be given.
func NewPolygon(vertices []gofigure.Point) (*Polygon, error) {
	if n := len(vertices); n > 1 && vertices[0] == vertices[n-1] {
		vertices = vertices[:n-1]
	}
	if len(vertices) < 3 {
		return nil, fmt.Errorf("shapes: polygon needs at least 3 vertices, got %d", len(vertices))
	}
	pa := &canvas.Path{}
	pa.MoveTo(vertices[0].X, vertices[0].Y)
	for _, v := range vertices[1:] {
		pa.LineTo(v.X, v.Y)
	}
	pa.Close()
	return &Polygon{path: pa}, nil
}

func fromPath(pa *canvas.Path) *Polygon {
	return &Polygon{path: pa}
}

// Copy returns a deep copy of the polygon.
func (pg *Polygon) Copy() *Polygon {
	return &Polygon{Label: pg.Label, Style: pg.Style, path: pg.path.Copy()}
}

// Vertices returns the vertices of the polygon, without the closing
// duplicate of the first vertex.
func (pg *Polygon) Vertices() []gofigure.Point {
	cs := pg.path.Coords()
	vs := make([]gofigure.Point, 0, len(cs))
	for _, c := range cs {
		vs = append(vs, gofigure.Point{X: c.X, Y: c.Y})
	}
	if n := len(vs); n > 1 && vs[0] == vs[n-1] {
		vs = vs[:n-1]
	}
	return vs
}

// Area returns the area of the polygon.
func (pg *Polygon) Area() float64 {
	return math.Abs(ringArea(pg.Vertices()))
}

// Perimeter returns the perimeter of the polygon.
func (pg *Polygon) Perimeter() float64 {
	return pg.path.Length()
}

// Centroid returns the area centroid of the polygon.
func (pg *Polygon) Centroid() gofigure.Point {
	return ringCentroid(pg.Vertices())
}

// Contains reports whether the given coordinates are inside the
// polygon, using the even-odd rule.
func (pg *Polygon) Contains(x, y float64) bool {
	return pointInRing(pg.Vertices(), x, y)
}

// Translate returns the polygon translated by dx, dy.
func (pg *Polygon) Translate(dx, dy float64) *Polygon {
	return pg.transform(canvas.Identity.Translate(dx, dy))
}

// Rotate returns the polygon rotated about its centroid. The angle is
// in degrees if degrees is true, radians otherwise.
func (pg *Polygon) Rotate(angle float64, degrees bool) *Polygon {
	c := pg.Centroid()
	return pg.RotateAbout(angle, degrees, c.X, c.Y)
}

// RotateAbout returns the polygon rotated about the given point.
func (pg *Polygon) RotateAbout(angle float64, degrees bool, x, y float64) *Polygon {
	if !degrees {
		angle *= 180 / math.Pi
	}
	return pg.transform(canvas.Identity.RotateAbout(angle, x, y))
}

// Scale returns the polygon scaled about its centroid by sx, sy.
func (pg *Polygon) Scale(sx, sy float64) *Polygon {
	c := pg.Centroid()
	return pg.ScaleAbout(sx, sy, c.X, c.Y)
}

// ScaleAbout returns the polygon scaled about the given point.
func (pg *Polygon) ScaleAbout(sx, sy, x, y float64) *Polygon {
	return pg.transform(canvas.Identity.ScaleAbout(sx, sy, x, y))
}

// Skew returns the polygon skewed about its centroid by the given
// angles along x and y. The angles are in degrees if degrees is true.
func (pg *Polygon) Skew(xAngle, yAngle float64, degrees bool) *Polygon {
	c := pg.Centroid()
	return pg.SkewAbout(xAngle, yAngle, degrees, c.X, c.Y)
}

// SkewAbout returns the polygon skewed about the given point.
func (pg *Polygon) SkewAbout(xAngle, yAngle float64, degrees bool, x, y float64) *Polygon {
	if degrees {
		xAngle *= math.Pi / 180
		yAngle *= math.Pi / 180
	}
	return pg.transform(canvas.Identity.ShearAbout(math.Tan(xAngle), math.Tan(yAngle), x, y))
}

// Transform returns the polygon transformed by the given affine matrix.
func (pg *Polygon) Transform(m canvas.Matrix) *Polygon {
	return pg.transform(m)
}

func (pg *Polygon) transform(m canvas.Matrix) *Polygon {
	np := pg.Copy()
	np.path = np.path.Transform(m)
	return np
}

// Intersection returns a polygon covering the area common to both
// polygons, or an error if they do not overlap. If copyStyle is true
// the result carries the style and label of the receiver.
func (pg *Polygon) Intersection(other *Polygon, copyStyle bool) (*Polygon, error) {
	return pg.boolean(pg.path.And(other.path), copyStyle, "polygons do not intersect")
}

// Union returns a polygon covering the combined area of both polygons.
func (pg *Polygon) Union(other *Polygon, copyStyle bool) (*Polygon, error) {
	return pg.boolean(pg.path.Or(other.path), copyStyle, "polygons have no union")
}

// Difference returns a polygon covering the area of the receiver not
// covered by other, or an error if nothing remains.
func (pg *Polygon) Difference(other *Polygon, copyStyle bool) (*Polygon, error) {
	return pg.boolean(pg.path.Not(other.path), copyStyle, "difference is empty")
}

// boolean reduces a boolean op result to its largest subpath. Booleans
// can return multiple disjoint regions; the largest one is kept.
func (pg *Polygon) boolean(res *canvas.Path, copyStyle bool, emptyMsg string) (*Polygon, error) {
	if res.Empty() {
		return nil, fmt.Errorf("shapes: %s", emptyMsg)
	}
	var best *canvas.Path
	bestArea := 0.0
	for _, sp := range res.Split() {
		a := math.Abs(ringArea(fromPath(sp).Vertices()))
		if best == nil || a > bestArea {
			best, bestArea = sp, a
		}
	}
	np := fromPath(best)
	if copyStyle {
		np.Label = pg.Label
		np.Style = pg.Style
	}
	return np, nil
}

// IntersectionPoints returns the points where the boundaries of the
// two polygons cross. The result is empty if they do not touch.
func (pg *Polygon) IntersectionPoints(other *Polygon) []gofigure.Point {
	return ringIntersections(pg.Vertices(), other.Vertices(), true)
}

// CurveIntersectionPoints returns the points where the given curve
// crosses the polygon boundary, treating the curve as a polyline
// through its data points.
func (pg *Polygon) CurveIntersectionPoints(cv *gofigure.Curve) []gofigure.Point {
	line := make([]gofigure.Point, len(cv.X))
	for i := range cv.X {
		line[i] = gofigure.Point{X: cv.X[i], Y: cv.Y[i]}
	}
	return ringIntersections(pg.Vertices(), line, false)
}

// Plot adds the polygon to the plot, implementing gofigure.Element.
func (pg *Polygon) Plot(p *plot.Plot, th *styles.Theme) error {
	plotRing(p, pg.Vertices(), pg.Style.resolve(th), pg.Label)
	return nil
}
