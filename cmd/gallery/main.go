// Copyright (c) 2024, The GoFigure Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command gallery builds the example gallery for the documentation
// site: it runs the example programs, captures the figures they
// produce and generates HTML pages with thumbnails and highlighted
// source.
package main

import (
	"os"

	"github.com/gofigure-plot/gofigure/internal/gallery"
	"github.com/spf13/cobra"
)

func main() {
	cfg := gallery.NewConfig()
	var watch bool

	root := &cobra.Command{
		Use:   "gallery",
		Short: "build the example gallery",
	}
	root.PersistentFlags().StringVar(&cfg.ExamplesDir, "examples", cfg.ExamplesDir, "directory with example programs")
	root.PersistentFlags().StringVar(&cfg.OutDir, "out", cfg.OutDir, "output directory")

	build := &cobra.Command{
		Use:   "build",
		Short: "run all examples and generate the gallery pages",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Build(); err != nil {
				return err
			}
			if watch {
				return cfg.Watch()
			}
			return nil
		},
	}
	build.Flags().BoolVar(&cfg.Force, "force", false, "rebuild pages that are up to date")
	build.Flags().BoolVar(&watch, "watch", false, "rebuild on example changes")

	clean := &cobra.Command{
		Use:   "clean",
		Short: "remove all generated gallery output",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cfg.Clean()
		},
	}

	root.AddCommand(build, clean)
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
