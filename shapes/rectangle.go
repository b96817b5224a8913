// Copyright (c) 2024, The GoFigure Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shapes

import (
	"fmt"
	"math"

	"github.com/gofigure-plot/gofigure"
	"github.com/gofigure-plot/gofigure/styles"
	"github.com/jinzhu/copier"
	"gonum.org/v1/plot"
)

// Rectangle is an axis-aligned rectangle given by its bottom left
// corner, width and height.
type Rectangle struct {

	// X and Y are the bottom left corner coordinates.
	X, Y float64

	// Width and Height are the rectangle dimensions; always positive.
	Width, Height float64

	// Label is the legend label; no legend entry if empty.
	Label string

	// Style has the visual properties of the rectangle.
	Style Style
}

// NewRectangle returns a rectangle with the given bottom left corner,
// width and height. Width and height must be positive.
func NewRectangle(x, y, width, height float64) (*Rectangle, error) {
	if width <= 0 {
		return nil, fmt.Errorf("shapes: rectangle width must be positive, got %v", width)
	}
	if height <= 0 {
		return nil, fmt.Errorf("shapes: rectangle height must be positive, got %v", height)
	}
	return &Rectangle{X: x, Y: y, Width: width, Height: height}, nil
}

// RectangleFromCenter returns a rectangle with the given center point,
// width and height.
func RectangleFromCenter(cx, cy, width, height float64) (*Rectangle, error) {
	return NewRectangle(cx-width/2, cy-height/2, width, height)
}

// RectangleFromPoints returns the rectangle with the two given points
// as opposite corners. The points must not share an x or y coordinate.
func RectangleFromPoints(p1, p2 gofigure.Point) (*Rectangle, error) {
	if p1.X == p2.X || p1.Y == p2.Y {
		return nil, fmt.Errorf("shapes: rectangle corner points must not share a coordinate")
	}
	return NewRectangle(
		math.Min(p1.X, p2.X),
		math.Min(p1.Y, p2.Y),
		math.Abs(p1.X-p2.X),
		math.Abs(p1.Y-p2.Y),
	)
}

// Copy returns a deep copy of the rectangle.
func (rc *Rectangle) Copy() *Rectangle {
	nr := &Rectangle{}
	copier.CopyWithOption(nr, rc, copier.Option{DeepCopy: true})
	return nr
}

// Area returns the area of the rectangle.
func (rc *Rectangle) Area() float64 {
	return rc.Width * rc.Height
}

// Perimeter returns the perimeter of the rectangle.
func (rc *Rectangle) Perimeter() float64 {
	return 2 * (rc.Width + rc.Height)
}

// Center returns the center point of the rectangle.
func (rc *Rectangle) Center() gofigure.Point {
	return gofigure.Point{X: rc.X + rc.Width/2, Y: rc.Y + rc.Height/2}
}

// Contains reports whether the given coordinates are inside the
// rectangle, including its boundary.
func (rc *Rectangle) Contains(x, y float64) bool {
	return x >= rc.X && x <= rc.X+rc.Width &&
		y >= rc.Y && y <= rc.Y+rc.Height
}

// CoordinatesAtX returns the two points where the vertical line at x
// crosses the rectangle boundary, or an error if x is outside the
// rectangle's horizontal extent.
func (rc *Rectangle) CoordinatesAtX(x float64) ([]gofigure.Point, error) {
	if x <= rc.X || x >= rc.X+rc.Width {
		return nil, fmt.Errorf("shapes: x must be between %v and %v", rc.X, rc.X+rc.Width)
	}
	return []gofigure.Point{
		{X: x, Y: rc.Y},
		{X: x, Y: rc.Y + rc.Height},
	}, nil
}

// CoordinatesAtY returns the two points where the horizontal line at y
// crosses the rectangle boundary, or an error if y is outside the
// rectangle's vertical extent.
func (rc *Rectangle) CoordinatesAtY(y float64) ([]gofigure.Point, error) {
	if y <= rc.Y || y >= rc.Y+rc.Height {
		return nil, fmt.Errorf("shapes: y must be between %v and %v", rc.Y, rc.Y+rc.Height)
	}
	return []gofigure.Point{
		{X: rc.X, Y: y},
		{X: rc.X + rc.Width, Y: y},
	}, nil
}

// AsPolygon returns the rectangle as a polygon, for boolean geometry
// with other shapes.
func (rc *Rectangle) AsPolygon() (*Polygon, error) {
	return NewPolygon(rc.ring())
}

func (rc *Rectangle) ring() []gofigure.Point {
	return []gofigure.Point{
		{X: rc.X, Y: rc.Y},
		{X: rc.X + rc.Width, Y: rc.Y},
		{X: rc.X + rc.Width, Y: rc.Y + rc.Height},
		{X: rc.X, Y: rc.Y + rc.Height},
	}
}

// Plot adds the rectangle to the plot, implementing gofigure.Element.
func (rc *Rectangle) Plot(p *plot.Plot, th *styles.Theme) error {
	plotRing(p, rc.ring(), rc.Style.resolve(th), rc.Label)
	return nil
}
