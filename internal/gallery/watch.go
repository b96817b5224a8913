// Copyright (c) 2024, The GoFigure Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gallery

import (
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watch rebuilds the gallery whenever an example source file changes.
// It blocks until the watcher fails.
func (c *Config) Watch() error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	if err := w.Add(c.ExamplesDir); err != nil {
		return err
	}
	ents, err := os.ReadDir(c.ExamplesDir)
	if err != nil {
		return err
	}
	for _, ent := range ents {
		if ent.IsDir() {
			if err := w.Add(filepath.Join(c.ExamplesDir, ent.Name())); err != nil {
				return err
			}
		}
	}

	slog.Info("gallery: watching", "dir", c.ExamplesDir)
	// Editors fire bursts of events per save; debounce them.
	var pending <-chan time.Time
	for {
		select {
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Op.Has(fsnotify.Write) || ev.Op.Has(fsnotify.Create) || ev.Op.Has(fsnotify.Remove) {
				pending = time.After(300 * time.Millisecond)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return err
		case <-pending:
			pending = nil
			if err := c.Build(); err != nil {
				slog.Error("gallery: rebuild failed", "err", err)
			}
		}
	}
}
