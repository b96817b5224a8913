// Copyright (c) 2024, The GoFigure Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package styles

import (
	"fmt"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// LineStyles specifies the dash pattern of a stroked line.
type LineStyles int32

const (
	// LineDefault means use the theme line style.
	LineDefault LineStyles = iota

	// Solid is a solid line.
	Solid

	// Dashed is a dashed line.
	Dashed

	// Dotted is a dotted line.
	Dotted

	// DashDot alternates dashes and dots.
	DashDot
)

var lineStyleNames = []string{"default", "solid", "dashed", "dotted", "dashdot"}

func (ls LineStyles) String() string {
	if ls < 0 || int(ls) >= len(lineStyleNames) {
		return "LineStyles(" + fmt.Sprint(int32(ls)) + ")"
	}
	return lineStyleNames[ls]
}

// Dashes returns the dash pattern for the line style, scaled for the
// given line width.
func (ls LineStyles) Dashes(width vg.Length) []vg.Length {
	switch ls {
	case Dashed:
		return []vg.Length{6 * width, 3 * width}
	case Dotted:
		return []vg.Length{width, 2 * width}
	case DashDot:
		return []vg.Length{6 * width, 2 * width, width, 2 * width}
	}
	return nil
}

// Resolve returns the line style itself, or the given theme default
// when unset.
func (ls LineStyles) Resolve(def LineStyles) LineStyles {
	if ls == LineDefault {
		return def
	}
	return ls
}

// Markers specifies the glyph shape used for scatter points.
type Markers int32

const (
	// MarkerDefault means use the theme marker.
	MarkerDefault Markers = iota

	// Circle is a filled circle.
	Circle

	// Ring is an unfilled circle.
	Ring

	// Square is a filled square.
	Square

	// Box is an unfilled square.
	Box

	// Triangle is a filled triangle.
	Triangle

	// Pyramid is an unfilled triangle.
	Pyramid

	// Plus is a plus sign.
	Plus

	// Cross is an x.
	Cross
)

var markerNames = []string{"default", "circle", "ring", "square", "box", "triangle", "pyramid", "plus", "cross"}

func (m Markers) String() string {
	if m < 0 || int(m) >= len(markerNames) {
		return "Markers(" + fmt.Sprint(int32(m)) + ")"
	}
	return markerNames[m]
}

// Glyph returns the glyph drawer for the marker.
func (m Markers) Glyph() draw.GlyphDrawer {
	switch m {
	case Ring:
		return draw.RingGlyph{}
	case Square:
		return draw.SquareGlyph{}
	case Box:
		return draw.BoxGlyph{}
	case Triangle:
		return draw.TriangleGlyph{}
	case Pyramid:
		return draw.PyramidGlyph{}
	case Plus:
		return draw.PlusGlyph{}
	case Cross:
		return draw.CrossGlyph{}
	}
	return draw.CircleGlyph{}
}

// Resolve returns the marker itself, or the given theme default
// when unset.
func (m Markers) Resolve(def Markers) Markers {
	if m == MarkerDefault {
		return def
	}
	return m
}

// OnOff is an on / off setting with a "use the theme default" zero value.
type OnOff int32

const (
	// Default means use the theme default.
	Default OnOff = iota

	// On forces the setting on.
	On

	// Off forces the setting off.
	Off
)

func (o OnOff) String() string {
	switch o {
	case On:
		return "on"
	case Off:
		return "off"
	}
	return "default"
}

// Resolve returns the boolean value of the setting,
// using the given theme default when unset.
func (o OnOff) Resolve(def bool) bool {
	switch o {
	case On:
		return true
	case Off:
		return false
	}
	return def
}
