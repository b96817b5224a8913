// Copyright (c) 2024, The GoFigure Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagex

import (
	"image"
	"os"
	"path/filepath"
)

// TestingT is an interface wrapper around *testing.T.
type TestingT interface {
	Errorf(format string, args ...any)
}

// UpdateTestImages indicates whether to update currently saved test
// images in [Assert] instead of comparing against them. It is set if
// the environment variable GOFIGURE_UPDATE_TESTDATA is "true".
// It should only be set when rendering behavior has intentionally
// changed, and then turned back off.
var UpdateTestImages = os.Getenv("GOFIGURE_UPDATE_TESTDATA") == "true"

// Tol is the per-channel tolerance used by [Assert], accommodating
// minor antialiasing differences across platforms.
var Tol = 10

// Assert asserts that the given image is equivalent to the image stored
// at the given filename in the testdata directory, with ".png" added if
// there is no extension. If there is no image stored there yet, it saves
// the given image there instead of failing, so new golden images only
// need to be reviewed, not hand-made.
func Assert(t TestingT, im image.Image, filename string) {
	filename = filepath.Join("testdata", filename)
	if filepath.Ext(filename) == "" {
		filename += ".png"
	}
	if err := os.MkdirAll(filepath.Dir(filename), 0750); err != nil {
		t.Errorf("imagex.Assert: error making testdata directory: %v", err)
		return
	}
	if UpdateTestImages {
		if err := Save(im, filename); err != nil {
			t.Errorf("imagex.Assert: error updating golden image: %v", err)
		}
		return
	}
	want, err := Open(filename)
	if err != nil {
		if err := Save(im, filename); err != nil {
			t.Errorf("imagex.Assert: error saving new golden image: %v", err)
		}
		return
	}
	if !Equal(want, im, Tol) {
		badFilename := filename + ".new"
		if err := Save(im, badFilename); err == nil {
			t.Errorf("imagex.Assert: image differs from golden %s; new image saved as %s", filename, badFilename)
		} else {
			t.Errorf("imagex.Assert: image differs from golden %s; error saving new image: %v", filename, err)
		}
	}
}
