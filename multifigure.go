// Copyright (c) 2024, The GoFigure Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gofigure

import (
	"fmt"
	"image"
	"path/filepath"
	"strings"

	"github.com/gofigure-plot/gofigure/base/imagex"
	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// MultiFigure arranges figures on a rows x cols grid and renders them
// into one image. Grid cells can be left empty.
type MultiFigure struct {

	// Rows and Cols are the grid dimensions.
	Rows, Cols int

	// Width and Height are the overall size in inches.
	Width, Height float64

	// DPI is the raster resolution for PNG output.
	DPI int

	// Pad is the padding between cells, in points.
	Pad float64

	figures [][]*Figure
}

// NewMultiFigure returns a multi-figure with the given grid dimensions.
func NewMultiFigure(rows, cols int) *MultiFigure {
	if rows < 1 {
		rows = 1
	}
	if cols < 1 {
		cols = 1
	}
	figures := make([][]*Figure, rows)
	for i := range figures {
		figures[i] = make([]*Figure, cols)
	}
	return &MultiFigure{
		Rows:    rows,
		Cols:    cols,
		Width:   5 * float64(cols),
		Height:  4 * float64(rows),
		DPI:     96,
		Pad:     8,
		figures: figures,
	}
}

// SetFigure places the figure in the given grid cell.
// Rows count from the top.
func (mf *MultiFigure) SetFigure(row, col int, fig *Figure) error {
	if row < 0 || row >= mf.Rows || col < 0 || col >= mf.Cols {
		return fmt.Errorf("gofigure: cell (%d, %d) outside %dx%d grid", row, col, mf.Rows, mf.Cols)
	}
	mf.figures[row][col] = fig
	return nil
}

// Plots translates all placed figures into backend plots,
// preserving grid positions; empty cells stay nil.
func (mf *MultiFigure) Plots() ([][]*plot.Plot, error) {
	plots := make([][]*plot.Plot, mf.Rows)
	for r := range plots {
		plots[r] = make([]*plot.Plot, mf.Cols)
		for c, fig := range mf.figures[r] {
			if fig == nil {
				continue
			}
			p, err := fig.Plot()
			if err != nil {
				return nil, fmt.Errorf("gofigure: cell (%d, %d): %w", r, c, err)
			}
			plots[r][c] = p
		}
	}
	return plots, nil
}

func (mf *MultiFigure) draw(plots [][]*plot.Plot, dc draw.Canvas) {
	t := draw.Tiles{
		Rows: mf.Rows,
		Cols: mf.Cols,
		PadX: vg.Points(mf.Pad),
		PadY: vg.Points(mf.Pad),
	}
	canvases := plot.Align(plots, t, dc)
	for r := range plots {
		for c := range plots[r] {
			if plots[r][c] != nil {
				plots[r][c].Draw(canvases[r][c])
			}
		}
	}
}

// Render renders the grid to an image at the multi-figure size and DPI.
func (mf *MultiFigure) Render() (image.Image, error) {
	plots, err := mf.Plots()
	if err != nil {
		return nil, err
	}
	img := vgimg.NewWith(
		vgimg.UseWH(vg.Length(mf.Width)*vg.Inch, vg.Length(mf.Height)*vg.Inch),
		vgimg.UseDPI(mf.DPI),
	)
	mf.draw(plots, draw.New(img))
	return img.Image(), nil
}

// Save renders the grid and writes it to the given file, with the
// format following the extension as in [Figure.Save].
func (mf *MultiFigure) Save(filename string) error {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png", ".jpg", ".jpeg":
		img, err := mf.Render()
		if err != nil {
			return err
		}
		return imagex.Save(img, filename)
	case ".svg":
		return mf.saveVector(filename, renderers.SVG())
	case ".pdf":
		return mf.saveVector(filename, renderers.PDF())
	}
	return fmt.Errorf("gofigure: unsupported figure format %q", filepath.Ext(filename))
}

func (mf *MultiFigure) saveVector(filename string, w canvas.Writer) error {
	plots, err := mf.Plots()
	if err != nil {
		return err
	}
	c := canvas.New(mf.Width*25.4, mf.Height*25.4)
	mf.draw(plots, renderers.NewGonumPlot(c))
	return c.WriteFile(filename, w)
}
