// Copyright (c) 2025, Color Builder Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jwheeler0424/color-builder-sub002/colors"
	"github.com/jwheeler0424/color-builder-sub002/colors/cam/oklab"
	"github.com/jwheeler0424/color-builder-sub002/colors/contrast"
	"github.com/jwheeler0424/color-builder-sub002/colors/cvd"
	"github.com/jwheeler0424/color-builder-sub002/colors/p3"
	"github.com/jwheeler0424/color-builder-sub002/colors/scale"
	"github.com/jwheeler0424/color-builder-sub002/colors/score"
	"github.com/jwheeler0424/color-builder-sub002/colors/semantic"
	"github.com/jwheeler0424/color-builder-sub002/palettefile"
)

func convertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert <color>",
		Short: "show a color in every representation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := parseColor(args[0])
			if err != nil {
				return err
			}
			lch := oklab.LCHFromColor(c)
			lab := oklab.FromColor(c)
			fmt.Println(label(c))
			fmt.Printf("  rgb(%d, %d, %d)\n", c.R, c.G, c.B)
			fmt.Printf("  %v\n", colors.RGBToHSL(c))
			fmt.Printf("  %v\n", colors.RGBToHSV(c))
			fmt.Printf("  %v\n", colors.RGBToCMYK(c))
			fmt.Printf("  oklab(%.4f %.4f %.4f)\n", lab.L, lab.A, lab.B)
			fmt.Printf("  oklch(%.4f %.4f %.2f)\n", lch.L, lch.C, lch.H)
			return nil
		},
	}
}

func scaleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scale <color>",
		Short: "generate the 11-step tint/shade scale for a base color",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := parseColor(args[0])
			if err != nil {
				return err
			}
			for _, s := range scale.Generate(c).Steps {
				fmt.Printf("%4d %s\n", s.Value, label(s.Color))
			}
			return nil
		},
	}
}

func contrastCmd() *cobra.Command {
	var fix float32
	cmd := &cobra.Command{
		Use:   "contrast <foreground> <background>",
		Short: "report WCAG and APCA contrast, optionally repairing to a target ratio",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fg, err := parseColor(args[0])
			if err != nil {
				return err
			}
			bg, err := parseColor(args[1])
			if err != nil {
				return err
			}
			ratio := contrast.Ratio(fg, bg)
			lc := contrast.APCA(fg, bg)
			fmt.Printf("%s on %s\n", label(fg), label(bg))
			fmt.Printf("  WCAG %.2f:1 (%v)\n", ratio, contrast.LevelOf(ratio))
			fmt.Printf("  APCA Lc %.1f (%v)\n", lc, contrast.APCALevelOf(lc))
			if fix > 0 {
				fixed, dir, met := contrast.Ensure(fg, bg, fix)
				if !met {
					fmt.Printf("  cannot reach %.1f:1; best is %s (%v)\n",
						fix, label(fixed), dir)
					return nil
				}
				fmt.Printf("  fixed to %s (%v, %.2f:1)\n",
					label(fixed), dir, contrast.Ratio(fixed, bg))
			}
			return nil
		},
	}
	cmd.Flags().Float32Var(&fix, "fix", 0, "repair the foreground to this WCAG ratio")
	return cmd
}

func scoreCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "score [colors...]",
		Short: "score palette quality on four 0-100 axes",
		RunE: func(cmd *cobra.Command, args []string) error {
			cs, _, err := paletteFromArgs(file, args)
			if err != nil {
				return err
			}
			for _, c := range cs {
				fmt.Println(label(c))
			}
			s := score.Palette(cs)
			fmt.Printf("balance       %5.1f\n", s.Balance)
			fmt.Printf("accessibility %5.1f\n", s.Accessibility)
			fmt.Printf("harmony       %5.1f\n", s.Harmony)
			fmt.Printf("uniqueness    %5.1f\n", s.Uniqueness)
			fmt.Printf("overall       %5.1f\n", s.Overall)
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "palette document to score")
	return cmd
}

func semanticCmd() *cobra.Command {
	var file, save string
	cmd := &cobra.Command{
		Use:   "semantic [colors...]",
		Short: "derive the six utility colors for a palette",
		RunE: func(cmd *cobra.Command, args []string) error {
			cs, doc, err := paletteFromArgs(file, args)
			if err != nil {
				return err
			}
			set := semantic.Generate(cs)
			if doc != nil {
				// keep any roles the document has locked
				set = semantic.Merge(doc.SemanticSet(), set)
			}
			for r := semantic.Info; r < semantic.NumRoles; r++ {
				rc := set.Get(r)
				lock := ""
				if rc.Locked {
					lock = " (locked)"
				}
				fmt.Printf("%-8s %s%s\n", r, label(rc.Color), lock)
			}
			if save != "" {
				if doc == nil {
					doc = palettefile.FromColors("palette", cs)
				}
				doc.SetSemantic(set)
				return palettefile.Save(doc, save)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "palette document to read")
	cmd.Flags().StringVar(&save, "save", "", "write the palette with resolved roles to this file")
	return cmd
}

func simulateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "simulate <deficiency> <colors...>",
		Short: "simulate a color vision deficiency over colors",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, ok := cvd.FromString(args[0])
			if !ok {
				return fmt.Errorf("unknown deficiency %q", args[0])
			}
			for _, a := range args[1:] {
				c, err := parseColor(a)
				if err != nil {
					return err
				}
				fmt.Printf("%s -> %s\n", label(c), label(cvd.Simulate(c, d)))
			}
			return nil
		},
	}
}

func p3Cmd() *cobra.Command {
	return &cobra.Command{
		Use:   "p3 <colors...>",
		Short: "detect wide-gamut capable colors and preview expansion",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, a := range args {
				c, err := parseColor(a)
				if err != nil {
					return err
				}
				if !p3.Capable(c) {
					fmt.Printf("%s  within sRGB\n", label(c))
					continue
				}
				fmt.Printf("%s  P3-capable  preview %s  %s\n",
					label(c), label(p3.Expand(c)), p3.CSS(c))
			}
			return nil
		},
	}
}
