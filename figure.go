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
	"github.com/gofigure-plot/gofigure/styles"
	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Figure is a declarative figure: a titled, styled container of
// elements rendered onto a single set of axes. Elements are drawn in
// the order they are added.
type Figure struct {

	// Title is the figure title.
	Title string

	// XLabel and YLabel are the axis labels.
	XLabel, YLabel string

	// Style is the name of the figure style to apply ("plain", "dark",
	// "dim", or a saved user style). Empty uses the configured default.
	Style string

	// Theme, if set, overrides Style with an explicit theme.
	Theme *styles.Theme

	// Width and Height are the figure size in inches.
	Width, Height float64

	// DPI is the raster resolution for PNG output.
	DPI int

	// LogX and LogY switch the axes to log scale.
	LogX, LogY bool

	// Grid overrides the theme's grid setting.
	Grid styles.OnOff

	elements   []Element
	xlim, ylim *[2]float64
}

// NewFigure returns a new figure with default size.
func NewFigure() *Figure {
	return &Figure{Width: 8, Height: 5, DPI: 96}
}

// Add adds the given elements to the figure, after those already added.
func (fg *Figure) Add(els ...Element) {
	fg.elements = append(fg.elements, els...)
}

// Elements returns the elements added to the figure, in draw order.
func (fg *Figure) Elements() []Element {
	return fg.elements
}

// SetXLim fixes the x axis range instead of autoscaling.
func (fg *Figure) SetXLim(min, max float64) {
	fg.xlim = &[2]float64{min, max}
}

// SetYLim fixes the y axis range instead of autoscaling.
func (fg *Figure) SetYLim(min, max float64) {
	fg.ylim = &[2]float64{min, max}
}

func (fg *Figure) theme() (*styles.Theme, error) {
	if fg.Theme != nil {
		return fg.Theme.Clone(), nil
	}
	name := fg.Style
	if name == "" {
		name = styles.DefaultName()
	}
	th, err := styles.Get(name)
	if err != nil {
		return nil, err
	}
	return th.Clone(), nil
}

// Plot translates the figure into a backend plot, applying the theme
// and plotting every element in order.
func (fg *Figure) Plot() (*plot.Plot, error) {
	th, err := fg.theme()
	if err != nil {
		return nil, err
	}
	p := plot.New()
	fg.applyTheme(p, th)
	for i, el := range fg.elements {
		if err := el.Plot(p, th); err != nil {
			return nil, fmt.Errorf("gofigure: element %d: %w", i, err)
		}
	}
	return p, nil
}

func (fg *Figure) applyTheme(p *plot.Plot, th *styles.Theme) {
	p.BackgroundColor = th.Background

	p.Title.Text = fg.Title
	p.Title.TextStyle.Color = th.Foreground
	p.Title.TextStyle.Font.Size = vg.Points(th.Font.Title)

	for _, ax := range []*plot.Axis{&p.X, &p.Y} {
		ax.Label.TextStyle.Color = th.Foreground
		ax.Label.TextStyle.Font.Size = vg.Points(th.Font.Label)
		ax.LineStyle.Color = th.Foreground
		ax.Tick.Label.Color = th.Foreground
		ax.Tick.Label.Font.Size = vg.Points(th.Font.Tick)
		ax.Tick.LineStyle.Color = th.Foreground
	}
	p.X.Label.Text = fg.XLabel
	p.Y.Label.Text = fg.YLabel

	if fg.LogX {
		p.X.Scale = plot.LogScale{}
		p.X.Tick.Marker = plot.LogTicks{Prec: -1}
	}
	if fg.LogY {
		p.Y.Scale = plot.LogScale{}
		p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	}
	if fg.xlim != nil {
		p.X.Min, p.X.Max = fg.xlim[0], fg.xlim[1]
	}
	if fg.ylim != nil {
		p.Y.Min, p.Y.Max = fg.ylim[0], fg.ylim[1]
	}

	if fg.Grid.Resolve(th.Grid) {
		g := plotter.NewGrid()
		g.Vertical.Color = th.GridColor
		g.Horizontal.Color = th.GridColor
		p.Add(g)
	}

	p.Legend.Top = th.Legend.Top
	p.Legend.Left = th.Legend.Left
	p.Legend.TextStyle.Color = th.Foreground
	p.Legend.TextStyle.Font.Size = vg.Points(th.Font.Legend)
}

// Render renders the figure to an image at the figure's size and DPI.
func (fg *Figure) Render() (image.Image, error) {
	p, err := fg.Plot()
	if err != nil {
		return nil, err
	}
	img := vgimg.NewWith(
		vgimg.UseWH(vg.Length(fg.Width)*vg.Inch, vg.Length(fg.Height)*vg.Inch),
		vgimg.UseDPI(fg.DPI),
	)
	p.Draw(draw.New(img))
	return img.Image(), nil
}

// Save renders the figure and writes it to the given file. The format
// follows the extension: .png and .jpg rasterize at the figure DPI;
// .svg and .pdf go through the vector renderer.
func (fg *Figure) Save(filename string) error {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png", ".jpg", ".jpeg":
		img, err := fg.Render()
		if err != nil {
			return err
		}
		return imagex.Save(img, filename)
	case ".svg":
		return fg.saveVector(filename, renderers.SVG())
	case ".pdf":
		return fg.saveVector(filename, renderers.PDF())
	}
	return fmt.Errorf("gofigure: unsupported figure format %q", filepath.Ext(filename))
}

func (fg *Figure) saveVector(filename string, w canvas.Writer) error {
	p, err := fg.Plot()
	if err != nil {
		return err
	}
	c := canvas.New(fg.Width*25.4, fg.Height*25.4)
	p.Draw(renderers.NewGonumPlot(c))
	return c.WriteFile(filename, w)
}
