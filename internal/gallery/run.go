// Copyright (c) 2024, The GoFigure Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gallery

import (
	"bytes"
	"fmt"
	"image"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/gofigure-plot/gofigure/base/imagex"
)

// runExample runs the example program in a scratch directory and
// returns the PNG figure it writes there.
func runExample(dir string) (image.Image, error) {
	scratch, err := os.MkdirTemp("", "gofigure-gallery-")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(scratch)

	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	var stderr bytes.Buffer
	cmd := exec.Command("go", "run", abs)
	cmd.Dir = scratch
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("go run: %w\n%s", err, stderr.String())
	}

	png, err := findPNG(scratch)
	if err != nil {
		return nil, err
	}
	return imagex.Open(png)
}

// findPNG returns the first PNG file in dir.
func findPNG(dir string) (string, error) {
	ents, err := os.ReadDir(dir)
	if err != nil {
		return "", err
	}
	for _, ent := range ents {
		if !ent.IsDir() && filepath.Ext(ent.Name()) == ".png" {
			return filepath.Join(dir, ent.Name()), nil
		}
	}
	return "", fmt.Errorf("example wrote no PNG figure")
}
