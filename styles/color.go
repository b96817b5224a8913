// Copyright (c) 2024, The GoFigure Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package styles

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an RGBA color that knows whether it has been set:
// the zero value (alpha 0) means "use the theme default".
// It marshals to and from hex strings in YAML theme files.
type Color struct {
	R, G, B, A uint8
}

// Hex returns a color from the given hex string (e.g. "#1f77b4"),
// or an error if it cannot be parsed.
func Hex(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, err
	}
	r, g, b := c.RGB255()
	return Color{r, g, b, 255}, nil
}

// MustHex returns a color from the given hex string,
// panicking on a parse error. For use with known-good literals.
func MustHex(s string) Color {
	c, err := Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// FromColor returns a Color from any [color.Color].
func FromColor(c color.Color) Color {
	r, g, b, a := c.RGBA()
	return Color{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}

// IsSet reports whether the color has been set to an actual color,
// as opposed to the zero "use default" value.
func (c Color) IsSet() bool {
	return c.A != 0
}

// RGBA implements the [color.Color] interface.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.RGBA{c.R, c.G, c.B, c.A}.RGBA()
}

// WithAlpha returns the color with its alpha multiplied by
// the given 0..1 opacity, for translucent fills.
func (c Color) WithAlpha(alpha float64) Color {
	if alpha < 0 {
		alpha = 0
	} else if alpha > 1 {
		alpha = 1
	}
	c.A = uint8(float64(c.A) * alpha)
	return c
}

// Hex returns the "#rrggbb" hex representation of the color.
func (c Color) Hex() string {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}.Hex()
}

func (c Color) String() string {
	if !c.IsSet() {
		return "default"
	}
	if c.A != 255 {
		return fmt.Sprintf("%s*%d", c.Hex(), c.A)
	}
	return c.Hex()
}

// MarshalYAML marshals the color as a hex string,
// or an empty string for the unset color.
func (c Color) MarshalYAML() (any, error) {
	if !c.IsSet() {
		return "", nil
	}
	return c.Hex(), nil
}

// UnmarshalYAML unmarshals the color from a hex string.
func (c *Color) UnmarshalYAML(unmarshal func(any) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	if s == "" {
		*c = Color{}
		return nil
	}
	nc, err := Hex(s)
	if err != nil {
		return err
	}
	*c = nc
	return nil
}

// HappyCycle returns a generated color cycle of n visually distinct
// warm colors, for themes that want more series colors than the
// hand-picked cycles provide.
func HappyCycle(n int) []Color {
	pal := colorful.FastHappyPalette(n)
	cycle := make([]Color, n)
	for i, c := range pal {
		r, g, b := c.RGB255()
		cycle[i] = Color{r, g, b, 255}
	}
	return cycle
}
