// Copyright (c) 2025, Color Builder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Colorbuilder is a command line front end for the color engine:
// it converts colors, generates tint/shade scales, checks contrast,
// scores palettes, resolves semantic utility colors, simulates color
// vision deficiencies, and previews wide-gamut expansion.
package main

import (
	"fmt"
	"image/color"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jwheeler0424/color-builder-sub002/colors"
	"github.com/jwheeler0424/color-builder-sub002/logx"
	"github.com/jwheeler0424/color-builder-sub002/palettefile"
)

var verbose bool

func main() {
	logx.Init()
	root := &cobra.Command{
		Use:   "colorbuilder",
		Short: "color engine tools: convert, scale, contrast, score, semantic, simulate, p3",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logx.UserLevel.Set(slog.LevelDebug)
			}
		},
		SilenceUsage: true,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		convertCmd(),
		scaleCmd(),
		contrastCmd(),
		scoreCmd(),
		semanticCmd(),
		simulateCmd(),
		p3Cmd(),
	)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// parseColor accepts anything [colors.FromString] does: hex forms,
// rgb()/hsl() forms, and CSS color names.
func parseColor(arg string) (color.RGBA, error) {
	c, err := colors.FromString(arg)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%q is not a color: %w", arg, err)
	}
	return c, nil
}

// paletteFromArgs resolves the palette for commands that accept
// either a --file palette document or color arguments.
func paletteFromArgs(file string, args []string) ([]color.Color, *palettefile.Document, error) {
	if file != "" {
		doc, err := palettefile.Open(file)
		if err != nil {
			return nil, nil, err
		}
		slog.Debug("opened palette", "file", file, "colors", len(doc.Colors))
		return doc.Palette(), doc, nil
	}
	cs := make([]color.Color, 0, len(args))
	for _, a := range args {
		c, err := parseColor(a)
		if err != nil {
			return nil, nil, err
		}
		cs = append(cs, c)
	}
	return cs, nil, nil
}
