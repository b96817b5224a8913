// Copyright (c) 2024, The GoFigure Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gallery

import (
	"bytes"
	"html/template"
	"image"
	"os"
	"path/filepath"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/gofigure-plot/gofigure/base/imagex"
	"github.com/gomarkdown/markdown"
)

// writeImages writes the full figure image and its thumbnail for the
// example.
func (c *Config) writeImages(ex *Example, img image.Image) error {
	imgDir := filepath.Join(c.OutDir, "images")
	if err := os.MkdirAll(imgDir, 0750); err != nil {
		return err
	}
	if err := imagex.Save(img, filepath.Join(imgDir, ex.Name+".png")); err != nil {
		return err
	}
	thumb := Thumbnail(img, c.ThumbSize, ex.ThumbFocus)
	return imagex.Save(thumb, filepath.Join(imgDir, ex.Name+"_thumb.png"))
}

// pageData is the template context for one example page.
type pageData struct {
	Title      string
	Desc       template.HTML
	Image      string
	Source     template.HTML
	Components []string
}

// writePage renders the HTML page for the example.
func (c *Config) writePage(ex *Example) error {
	var hl bytes.Buffer
	if err := quick.Highlight(&hl, ex.Source, "go", "html", "monokailight"); err != nil {
		return err
	}
	data := pageData{
		Title:      ex.Title,
		Desc:       template.HTML(markdown.ToHTML([]byte(ex.Desc), nil, nil)),
		Image:      "images/" + ex.Name + ".png",
		Source:     template.HTML(hl.String()),
		Components: ex.Components,
	}
	var buf bytes.Buffer
	if err := pageTmpl.Execute(&buf, data); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(c.OutDir, ex.Name+".html"), buf.Bytes(), 0640)
}

// indexEntry is one thumbnail cell on the index page.
type indexEntry struct {
	Name, Title string
}

// writeIndex renders the gallery index page with the thumbnail grid.
func (c *Config) writeIndex(exs []*Example) error {
	entries := make([]indexEntry, len(exs))
	for i, ex := range exs {
		entries[i] = indexEntry{Name: ex.Name, Title: ex.Title}
	}
	var buf bytes.Buffer
	if err := indexTmpl.Execute(&buf, entries); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(c.OutDir, "index.html"), buf.Bytes(), 0640)
}

var pageTmpl = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>` + galleryCSS + `</style>
</head>
<body>
<p><a href="index.html">&larr; Gallery</a></p>
<h1>{{.Title}}</h1>
{{.Desc}}
<img class="figure" src="{{.Image}}" alt="{{.Title}}">
{{if .Components}}<h2>Components</h2>
<ul class="components">
{{range .Components}}<li><code>{{.}}</code></li>
{{end}}</ul>{{end}}
<h2>Source</h2>
<div class="source">{{.Source}}</div>
</body>
</html>
`))

var indexTmpl = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Gallery</title>
<style>` + galleryCSS + `</style>
</head>
<body>
<h1>Gallery</h1>
<div class="gallery">
{{range .}}<a class="thumb" href="{{.Name}}.html">
<img src="images/{{.Name}}_thumb.png" alt="{{.Title}}">
<span>{{.Title}}</span>
</a>
{{end}}</div>
</body>
</html>
`))

const galleryCSS = `
body { font-family: sans-serif; max-width: 60rem; margin: 2rem auto; padding: 0 1rem; color: #222; }
img.figure { max-width: 100%; }
.gallery { display: flex; flex-wrap: wrap; gap: 1rem; }
.thumb { display: block; text-decoration: none; color: inherit; text-align: center; }
.thumb img { display: block; transition: transform .15s; }
.thumb:hover img { transform: scale(1.04); }
.thumb span { display: block; margin-top: .4rem; font-size: .9rem; }
.components code { background: #f4f4f4; padding: .1rem .3rem; }
.source { overflow-x: auto; }
`
