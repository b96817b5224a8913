// Copyright (c) 2024, The GoFigure Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gallery

import (
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"
)

// thumbBorder is the frame color painted around gallery thumbnails.
var thumbBorder = color.RGBA{105, 123, 150, 255}

const (
	// thumbCrop is the fraction of the short image side kept when
	// cropping the thumbnail square.
	thumbCrop = 0.92

	// thumbBorderPx is the frame width in pixels.
	thumbBorderPx = 2
)

// Thumbnail crops a square from the image, scales it down to
// size x size with Catmull-Rom resampling and paints a border.
// focus places the crop vertically, 0 (top) to 1 (bottom).
func Thumbnail(src image.Image, size int, focus float64) image.Image {
	if focus < 0 {
		focus = 0
	} else if focus > 1 {
		focus = 1
	}
	b := src.Bounds()
	short := min(b.Dx(), b.Dy())
	crop := int(float64(short) * thumbCrop)
	x0 := b.Min.X + (b.Dx()-crop)/2
	y0 := b.Min.Y + int(float64(b.Dy()-crop)*focus)
	rect := image.Rect(x0, y0, x0+crop, y0+crop)

	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, rect, xdraw.Src, nil)
	paintBorder(dst, thumbBorderPx)
	return dst
}

// paintBorder paints a w pixel frame inside the image bounds.
func paintBorder(im *image.RGBA, w int) {
	b := im.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if x < b.Min.X+w || x >= b.Max.X-w || y < b.Min.Y+w || y >= b.Max.Y-w {
				im.SetRGBA(x, y, thumbBorder)
			}
		}
	}
}
