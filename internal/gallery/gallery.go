// Copyright (c) 2024, The GoFigure Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gallery builds the example gallery: it runs every example
// program, collects the figures they write, and renders HTML pages
// with thumbnails, highlighted source and descriptions.
package gallery

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
)

// Config configures a gallery build.
type Config struct {

	// ExamplesDir is the directory containing one subdirectory per
	// example program.
	ExamplesDir string

	// OutDir is the directory the HTML pages and images are written to.
	OutDir string

	// Force rebuilds every page even when it is newer than its source.
	Force bool

	// ThumbSize is the square thumbnail size in pixels.
	ThumbSize int
}

// NewConfig returns a build configuration with default directories.
func NewConfig() *Config {
	return &Config{
		ExamplesDir: "examples",
		OutDir:      filepath.Join("docs", "gallery"),
		ThumbSize:   280,
	}
}

// Build runs all examples and writes the gallery pages. Examples whose
// page is newer than their source are skipped unless Force is set.
func (c *Config) Build() error {
	exs, err := c.scan()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(c.OutDir, 0750); err != nil {
		return err
	}
	for _, ex := range exs {
		if !c.Force && c.upToDate(ex) {
			slog.Info("gallery: up to date", "example", ex.Name)
			continue
		}
		slog.Info("gallery: building", "example", ex.Name)
		if err := c.buildExample(ex); err != nil {
			return fmt.Errorf("gallery: example %s: %w", ex.Name, err)
		}
	}
	if err := c.writeIndex(exs); err != nil {
		return err
	}
	slog.Info("gallery: done", "examples", len(exs), "out", c.OutDir)
	return nil
}

// Clean removes all generated gallery output.
func (c *Config) Clean() error {
	slog.Info("gallery: cleaning", "out", c.OutDir)
	return os.RemoveAll(c.OutDir)
}

// scan finds and parses all examples, sorted by name.
func (c *Config) scan() ([]*Example, error) {
	ents, err := os.ReadDir(c.ExamplesDir)
	if err != nil {
		return nil, err
	}
	var exs []*Example
	for _, ent := range ents {
		if !ent.IsDir() {
			continue
		}
		dir := filepath.Join(c.ExamplesDir, ent.Name())
		if _, err := os.Stat(filepath.Join(dir, "main.go")); err != nil {
			continue
		}
		ex, err := ParseExample(dir)
		if err != nil {
			return nil, fmt.Errorf("gallery: %s: %w", dir, err)
		}
		exs = append(exs, ex)
	}
	sort.Slice(exs, func(i, j int) bool { return exs[i].Name < exs[j].Name })
	return exs, nil
}

// upToDate reports whether the generated page for the example is newer
// than its source.
func (c *Config) upToDate(ex *Example) bool {
	src, err := os.Stat(filepath.Join(ex.Dir, "main.go"))
	if err != nil {
		return false
	}
	page, err := os.Stat(filepath.Join(c.OutDir, ex.Name+".html"))
	if err != nil {
		return false
	}
	return page.ModTime().After(src.ModTime())
}

// buildExample runs one example and writes its image, thumbnail and
// HTML page.
func (c *Config) buildExample(ex *Example) error {
	img, err := runExample(ex.Dir)
	if err != nil {
		return err
	}
	if err := c.writeImages(ex, img); err != nil {
		return err
	}
	return c.writePage(ex)
}
