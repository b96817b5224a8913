// Copyright (c) 2024, The GoFigure Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package imagex has helpers for saving and comparing images,
// including golden-image assertions for tests.
package imagex

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"
)

// Save saves the image to the given filename, with the format inferred
// from the extension: .png and .jpg / .jpeg are supported.
func Save(im image.Image, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png":
		return png.Encode(f, im)
	case ".jpg", ".jpeg":
		return jpeg.Encode(f, im, &jpeg.Options{Quality: 90})
	}
	return fmt.Errorf("imagex.Save: unsupported extension %q", filepath.Ext(filename))
}

// Open opens an image from the given filename.
// png and jpeg formats are registered.
func Open(filename string) (image.Image, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	im, _, err := image.Decode(f)
	return im, err
}

// CompareUint8 returns true if the two numbers differ by no more than tol.
func CompareUint8(a, b uint8, tol int) bool {
	d := int(a) - int(b)
	return d >= -tol && d <= tol
}

// Equal reports whether the two images have the same bounds and all
// pixel components are within tol of each other.
func Equal(a, b image.Image, tol int) bool {
	ab, bb := a.Bounds(), b.Bounds()
	if ab != bb {
		return false
	}
	for y := ab.Min.Y; y < ab.Max.Y; y++ {
		for x := ab.Min.X; x < ab.Max.X; x++ {
			ar, ag, abl, aa := a.At(x, y).RGBA()
			br, bg, bbl, ba := b.At(x, y).RGBA()
			if !CompareUint8(uint8(ar>>8), uint8(br>>8), tol) ||
				!CompareUint8(uint8(ag>>8), uint8(bg>>8), tol) ||
				!CompareUint8(uint8(abl>>8), uint8(bbl>>8), tol) ||
				!CompareUint8(uint8(aa>>8), uint8(ba>>8), tol) {
				return false
			}
		}
	}
	return true
}
