// Copyright (c) 2024, The GoFigure Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gallery

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exampleSrc = `// Sine fit
//
// Fits a sine model to noisy samples and plots both.
//
// thumbnail-focus: 0.3
package main

import (
	"github.com/gofigure-plot/gofigure"
	"github.com/gofigure-plot/gofigure/fits"
)

func main() {
	cv, _ := gofigure.NewCurve([]float64{0, 1}, []float64{0, 1})
	ft, _ := fits.Sine(cv)
	fg := gofigure.NewFigure()
	fg.Add(cv, ft)
	fg.Save("out.png")
}
`

func writeExample(t *testing.T, root, name, src string) string {
	t.Helper()
	dir := filepath.Join(root, name)
	require.NoError(t, os.MkdirAll(dir, 0750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.go"), []byte(src), 0640))
	return dir
}

func TestParseExample(t *testing.T) {
	dir := writeExample(t, t.TempDir(), "sine_fit", exampleSrc)
	ex, err := ParseExample(dir)
	require.NoError(t, err)

	assert.Equal(t, "sine_fit", ex.Name)
	assert.Equal(t, "Sine fit", ex.Title)
	assert.Contains(t, ex.Desc, "Fits a sine model")
	assert.NotContains(t, ex.Desc, "thumbnail-focus")
	assert.Equal(t, 0.3, ex.ThumbFocus)
	assert.Equal(t, []string{
		"fits.Sine", "gofigure.NewCurve", "gofigure.NewFigure",
	}, ex.Components)
}

func TestParseExampleNoDoc(t *testing.T) {
	dir := writeExample(t, t.TempDir(), "bare", "package main\n\nfunc main() {}\n")
	_, err := ParseExample(dir)
	assert.Error(t, err)
}

func TestScanComponents(t *testing.T) {
	src := `
	a, _ := shapes.NewCircle(0, 0, 1)
	b, _ := shapes.NewCircle(1, 1, 2)
	f, _ := fits.Polynomial(cv, 2)
	th, _ := styles.Get("dark")
	helper(x)
	`
	assert.Equal(t, []string{
		"fits.Polynomial", "shapes.NewCircle", "styles.Get",
	}, scanComponents(src))
}

func TestSplitDoc(t *testing.T) {
	title, desc := splitDoc("Title line\n\nBody one.\nBody two.\n")
	assert.Equal(t, "Title line", title)
	assert.Equal(t, "Body one.\nBody two.", desc)

	title, desc = splitDoc("Only title\n")
	assert.Equal(t, "Only title", title)
	assert.Empty(t, desc)
}

func TestThumbnail(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 400, 300))
	for y := 0; y < 300; y++ {
		for x := 0; x < 400; x++ {
			src.SetRGBA(x, y, color.RGBA{200, 200, 200, 255})
		}
	}
	th := Thumbnail(src, 100, 0.5)
	b := th.Bounds()
	assert.Equal(t, 100, b.Dx())
	assert.Equal(t, 100, b.Dy())

	// Corners carry the border frame.
	r, g, bl, _ := th.At(0, 0).RGBA()
	assert.Equal(t, thumbBorder, color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(bl >> 8), 255})
	// The center keeps the source color.
	r, _, _, _ = th.At(50, 50).RGBA()
	assert.Equal(t, uint8(200), uint8(r>>8))
}

func TestScan(t *testing.T) {
	root := t.TempDir()
	writeExample(t, root, "b_second", exampleSrc)
	writeExample(t, root, "a_first", exampleSrc)
	require.NoError(t, os.WriteFile(filepath.Join(root, "README.md"), []byte("x"), 0640))

	c := NewConfig()
	c.ExamplesDir = root
	exs, err := c.scan()
	require.NoError(t, err)
	require.Len(t, exs, 2)
	assert.Equal(t, "a_first", exs[0].Name)
	assert.Equal(t, "b_second", exs[1].Name)
}

func TestWritePageAndIndex(t *testing.T) {
	root := t.TempDir()
	dir := writeExample(t, root, "sine_fit", exampleSrc)
	ex, err := ParseExample(dir)
	require.NoError(t, err)

	c := NewConfig()
	c.ExamplesDir = root
	c.OutDir = filepath.Join(root, "out")
	require.NoError(t, os.MkdirAll(c.OutDir, 0750))

	require.NoError(t, c.writePage(ex))
	b, err := os.ReadFile(filepath.Join(c.OutDir, "sine_fit.html"))
	require.NoError(t, err)
	page := string(b)
	assert.Contains(t, page, "<h1>Sine fit</h1>")
	assert.Contains(t, page, "images/sine_fit.png")
	assert.Contains(t, page, "fits.Sine")

	require.NoError(t, c.writeIndex([]*Example{ex}))
	b, err = os.ReadFile(filepath.Join(c.OutDir, "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(b), "sine_fit_thumb.png")
}

func TestUpToDate(t *testing.T) {
	root := t.TempDir()
	dir := writeExample(t, root, "ex", exampleSrc)
	ex, err := ParseExample(dir)
	require.NoError(t, err)

	c := NewConfig()
	c.ExamplesDir = root
	c.OutDir = filepath.Join(root, "out")
	require.NoError(t, os.MkdirAll(c.OutDir, 0750))
	assert.False(t, c.upToDate(ex))

	// A page written after the source counts as up to date.
	old := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(filepath.Join(dir, "main.go"), old, old))
	require.NoError(t, os.WriteFile(filepath.Join(c.OutDir, "ex.html"), []byte("x"), 0640))
	assert.True(t, c.upToDate(ex))
}

func TestCleanRemovesOutput(t *testing.T) {
	c := NewConfig()
	c.OutDir = filepath.Join(t.TempDir(), "out")
	require.NoError(t, os.MkdirAll(c.OutDir, 0750))
	require.NoError(t, c.Clean())
	_, err := os.Stat(c.OutDir)
	assert.True(t, os.IsNotExist(err))
}
