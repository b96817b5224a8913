// Copyright (c) 2024, The GoFigure Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gallery

import (
	"fmt"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

// Example is one example program and the page metadata extracted from
// its package doc comment.
type Example struct {

	// Dir is the example directory and Name its base name.
	Dir, Name string

	// Title is the first line of the package doc comment.
	Title string

	// Desc is the rest of the doc comment, as markdown.
	Desc string

	// ThumbFocus is the value of the optional "thumbnail-focus:"
	// directive: the vertical center of the thumbnail crop, 0 (top)
	// to 1 (bottom). Defaults to 0.5.
	ThumbFocus float64

	// Source is the example source code.
	Source string

	// Components are the library constructors the example uses.
	Components []string
}

// ParseExample reads the example in dir: its doc comment, source and
// the components it demonstrates.
func ParseExample(dir string) (*Example, error) {
	path := filepath.Join(dir, "main.go")
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, path, src, parser.ParseComments)
	if err != nil {
		return nil, err
	}
	ex := &Example{
		Dir:        dir,
		Name:       filepath.Base(dir),
		ThumbFocus: 0.5,
		Source:     string(src),
		Components: scanComponents(string(src)),
	}
	if f.Doc == nil {
		return nil, fmt.Errorf("missing package doc comment")
	}
	ex.Title, ex.Desc = splitDoc(f.Doc.Text())
	if focus, ok := docDirective(f.Doc.Text(), "thumbnail-focus"); ok {
		if _, err := fmt.Sscanf(focus, "%g", &ex.ThumbFocus); err != nil {
			return nil, fmt.Errorf("bad thumbnail-focus %q: %w", focus, err)
		}
	}
	return ex, nil
}

// splitDoc splits a doc comment into the title line and the remaining
// description, dropping directive lines.
func splitDoc(doc string) (title, desc string) {
	lines := strings.Split(strings.TrimSpace(doc), "\n")
	var kept []string
	for _, ln := range lines {
		if _, _, ok := parseDirective(ln); ok {
			continue
		}
		kept = append(kept, ln)
	}
	if len(kept) == 0 {
		return "", ""
	}
	return strings.TrimSpace(kept[0]), strings.TrimSpace(strings.Join(kept[1:], "\n"))
}

// docDirective returns the value of a "name: value" directive line in
// the doc comment.
func docDirective(doc, name string) (string, bool) {
	for _, ln := range strings.Split(doc, "\n") {
		if k, v, ok := parseDirective(ln); ok && k == name {
			return v, true
		}
	}
	return "", false
}

var directiveRe = regexp.MustCompile(`^([a-z][a-z-]*):\s+(.+)$`)

func parseDirective(line string) (key, value string, ok bool) {
	m := directiveRe.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return "", "", false
	}
	return m[1], m[2], true
}

// componentRe matches library constructor calls in example source,
// such as gofigure.NewCurve( or fits.Polynomial(.
var componentRe = regexp.MustCompile(`\b(gofigure|shapes|fits|styles)\.((?:New)?[A-Z]\w*)\(`)

// scanComponents returns the sorted, deduplicated constructor names
// used in the source.
func scanComponents(src string) []string {
	seen := map[string]bool{}
	var comps []string
	for _, m := range componentRe.FindAllStringSubmatch(src, -1) {
		name := m[1] + "." + m[2]
		if !seen[name] {
			seen[name] = true
			comps = append(comps, name)
		}
	}
	sort.Strings(comps)
	return comps
}
