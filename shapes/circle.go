// Copyright (c) 2024, The GoFigure Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shapes implements geometric figure elements: circles,
// rectangles, polygons, lines and arrows. Circles and rectangles
// answer their geometry queries analytically; polygons delegate
// boolean set operations and affine transforms to the canvas
// computational-geometry backend.
package shapes

import (
	"fmt"
	"math"

	"github.com/gofigure-plot/gofigure"
	"github.com/gofigure-plot/gofigure/styles"
	"github.com/jinzhu/copier"
	"gonum.org/v1/plot"
)

// circleSegments is the number of segments used to render a circle outline.
const circleSegments = 100

// Circle is a circle with a given center and radius.
type Circle struct {

	// X and Y are the center coordinates.
	X, Y float64

	// Radius is the circle radius; always positive.
	Radius float64

	// Label is the legend label; no legend entry if empty.
	Label string

	// Style has the visual properties of the circle.
	Style Style
}

// NewCircle returns a circle with the given center and radius.
// The radius must be positive.
func NewCircle(x, y, radius float64) (*Circle, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("shapes: circle radius must be positive, got %v", radius)
	}
	return &Circle{X: x, Y: y, Radius: radius}, nil
}

// Copy returns a deep copy of the circle.
func (cr *Circle) Copy() *Circle {
	nc := &Circle{}
	copier.CopyWithOption(nc, cr, copier.Option{DeepCopy: true})
	return nc
}

// Area returns the area of the circle.
func (cr *Circle) Area() float64 {
	return math.Pi * cr.Radius * cr.Radius
}

// Circumference returns the circumference of the circle.
func (cr *Circle) Circumference() float64 {
	return 2 * math.Pi * cr.Radius
}

// Center returns the center point of the circle.
func (cr *Circle) Center() gofigure.Point {
	return gofigure.Point{X: cr.X, Y: cr.Y}
}

// Contains reports whether the given coordinates are inside the
// circle, including its boundary.
func (cr *Circle) Contains(x, y float64) bool {
	dx, dy := x-cr.X, y-cr.Y
	return dx*dx+dy*dy <= cr.Radius*cr.Radius
}

// CoordinatesAtX returns the one or two points on the circle at the
// given x coordinate, or an error if x is outside the circle.
func (cr *Circle) CoordinatesAtX(x float64) ([]gofigure.Point, error) {
	if x < cr.X-cr.Radius || x > cr.X+cr.Radius {
		return nil, fmt.Errorf("shapes: x must be between %v and %v", cr.X-cr.Radius, cr.X+cr.Radius)
	}
	dy := math.Sqrt(cr.Radius*cr.Radius - (x-cr.X)*(x-cr.X))
	if dy == 0 {
		return []gofigure.Point{{X: x, Y: cr.Y}}, nil
	}
	return []gofigure.Point{
		{X: x, Y: cr.Y + dy},
		{X: x, Y: cr.Y - dy},
	}, nil
}

// CoordinatesAtY returns the one or two points on the circle at the
// given y coordinate, or an error if y is outside the circle.
func (cr *Circle) CoordinatesAtY(y float64) ([]gofigure.Point, error) {
	if y < cr.Y-cr.Radius || y > cr.Y+cr.Radius {
		return nil, fmt.Errorf("shapes: y must be between %v and %v", cr.Y-cr.Radius, cr.Y+cr.Radius)
	}
	dx := math.Sqrt(cr.Radius*cr.Radius - (y-cr.Y)*(y-cr.Y))
	if dx == 0 {
		return []gofigure.Point{{X: cr.X, Y: y}}, nil
	}
	return []gofigure.Point{
		{X: cr.X + dx, Y: y},
		{X: cr.X - dx, Y: y},
	}, nil
}

// PointAtAngle returns the point on the circle at the given angle,
// in radians, or in degrees if degrees is true.
func (cr *Circle) PointAtAngle(angle float64, degrees bool) gofigure.Point {
	if degrees {
		angle = angle * math.Pi / 180
	}
	return gofigure.Point{
		X: cr.X + cr.Radius*math.Cos(angle),
		Y: cr.Y + cr.Radius*math.Sin(angle),
	}
}

// AsPolygon returns the circle outline as a polygon with the given
// number of segments, for boolean geometry with other shapes.
func (cr *Circle) AsPolygon(segments int) (*Polygon, error) {
	if segments < 3 {
		segments = circleSegments
	}
	return NewPolygon(cr.ring(segments))
}

func (cr *Circle) ring(n int) []gofigure.Point {
	pts := make([]gofigure.Point, n)
	for i := 0; i < n; i++ {
		phi := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = gofigure.Point{
			X: cr.X + cr.Radius*math.Cos(phi),
			Y: cr.Y + cr.Radius*math.Sin(phi),
		}
	}
	return pts
}

// Plot adds the circle to the plot, implementing gofigure.Element.
func (cr *Circle) Plot(p *plot.Plot, th *styles.Theme) error {
	plotRing(p, cr.ring(circleSegments), cr.Style.resolve(th), cr.Label)
	return nil
}
