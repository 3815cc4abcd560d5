// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"cogentcore.org/cam/blend"
	"cogentcore.org/cam/cam16"
	"cogentcore.org/cam/cie"
	"cogentcore.org/cam/hct"
	"cogentcore.org/cam/palette"
	"cogentcore.org/cam/scheme"
	"github.com/spf13/cobra"
	"golang.org/x/image/colornames"
)

// parseColors parses the given color arguments, which are hex colors
// or SVG 1.1 color names.
func parseColors(args []string) ([]uint32, error) {
	cs := make([]uint32, len(args))
	for i, s := range args {
		c, err := cie.FromHex(s)
		if err != nil {
			nc, ok := colornames.Map[strings.ToLower(strings.TrimSpace(s))]
			if !ok {
				return nil, fmt.Errorf("argument %d: %w", i+1, err)
			}
			c = cie.ARGBFromColor(nc)
		}
		cs[i] = c
	}
	return cs, nil
}

// parseFloats parses the given number arguments.
func parseFloats(args []string) ([]float64, error) {
	fs := make([]float64, len(args))
	for i, s := range args {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		fs[i] = f
	}
	return fs, nil
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'f', 2, 64)
}

func (a *App) hctCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hct <color>...",
		Short: "Print the hue, chroma, and tone of colors",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cs, err := parseColors(args)
			if err != nil {
				return err
			}
			t := NewTable("color", "hue", "chroma", "tone", "J", "Q", "M", "s")
			for _, c := range cs {
				cam := cam16.FromARGBView(c, a.vw)
				t.AddRow([]string{
					cie.AsHex(c), num(cam.Hue), num(cam.Chroma), num(cie.LstarFromARGB(c)),
					num(cam.Lightness), num(cam.Brightness), num(cam.Colorfulness), num(cam.Saturation),
				}, c)
			}
			return t.Render(cmd.OutOrStdout())
		},
	}
}

func (a *App) solveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "solve <hue> <chroma> <tone>",
		Short: "Find the sRGB color with a hue, chroma, and tone",
		Long: `Find the sRGB color with the given hue, chroma, and tone. If the chroma is
not achievable at that hue and tone, the color with the highest achievable
chroma is returned instead.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			fs, err := parseFloats(args)
			if err != nil {
				return err
			}
			hue, chroma, tone := fs[0], fs[1], fs[2]
			c := a.solver.SolveToARGB(hue, chroma, tone)
			got := cam16.FromARGBView(c, a.vw)
			maxc := a.solver.MaxChroma(hue, tone)
			slog.Debug("solved", "hue", hue, "chroma", chroma, "tone", tone, "argb", cie.AsHex(c), "maxChroma", maxc)
			if got.Chroma < chroma-1 {
				slog.Info("chroma out of gamut", "requested", chroma, "achieved", got.Chroma)
			}
			t := NewTable("color", "hue", "chroma", "tone", "max chroma")
			t.AddRow([]string{cie.AsHex(c), num(got.Hue), num(got.Chroma), num(cie.LstarFromARGB(c)), num(maxc)}, c)
			return t.Render(cmd.OutOrStdout())
		},
	}
}

func (a *App) distanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "distance <color> <color>",
		Short: "Print the perceptual distance between two colors",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cs, err := parseColors(args)
			if err != nil {
				return err
			}
			d := cam16.Distance(cam16.FromARGBView(cs[0], a.vw), cam16.FromARGBView(cs[1], a.vw))
			_, err = fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(d, 'f', 4, 64))
			return err
		},
	}
}

func (a *App) paletteCmd() *cobra.Command {
	var content bool
	var tones []float64
	cmd := &cobra.Command{
		Use:   "palette <seed>",
		Short: "Print the core tonal palettes of a seed color",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cs, err := parseColors(args)
			if err != nil {
				return err
			}
			core := palette.NewCore(cs[0])
			if content {
				core = palette.NewContentCore(cs[0])
			}
			pals := []*palette.Tones{core.A1, core.A2, core.A3, core.N1, core.N2, core.Error}
			t := NewTable("tone", "a1", "a2", "a3", "n1", "n2", "error")
			for _, tone := range tones {
				row := []string{num(tone)}
				var sw []uint32
				for _, p := range pals {
					c := p.Tone(tone)
					row = append(row, cie.AsHex(c))
					sw = append(sw, c)
				}
				t.AddRow(row, sw...)
			}
			return t.Render(cmd.OutOrStdout())
		},
	}
	cmd.Flags().BoolVar(&content, "content", false, "use chromas proportional to the seed")
	cmd.Flags().Float64SliceVar(&tones, "tones", []float64{0, 10, 20, 30, 40, 50, 60, 70, 80, 90, 95, 99, 100}, "tones to print")
	return cmd
}

func (a *App) schemeCmd() *cobra.Command {
	var dark, content bool
	var format string
	cmd := &cobra.Command{
		Use:   "scheme <seed>",
		Short: "Print the light or dark scheme of a seed color",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cs, err := parseColors(args)
			if err != nil {
				return err
			}
			var s *scheme.Scheme
			switch {
			case dark && content:
				s = scheme.DarkContent(cs[0])
			case dark:
				s = scheme.Dark(cs[0])
			case content:
				s = scheme.LightContent(cs[0])
			default:
				s = scheme.Light(cs[0])
			}
			if format == "table" {
				t := NewTable("role", "color")
				for _, r := range s.Roles() {
					t.AddRow([]string{r.Name, r.Color.String()}, r.Color.ARGB())
				}
				return t.Render(cmd.OutOrStdout())
			}
			f, err := scheme.ParseFormat(format)
			if err != nil {
				return err
			}
			return s.Encode(cmd.OutOrStdout(), f)
		},
	}
	cmd.Flags().BoolVar(&dark, "dark", false, "make a dark scheme")
	cmd.Flags().BoolVar(&content, "content", false, "use chromas proportional to the seed")
	cmd.Flags().StringVarP(&format, "format", "f", "table", "output format: table, json, yaml, or toml")
	return cmd
}

func (a *App) harmonizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "harmonize <design> <source>",
		Short: "Rotate the hue of a design color toward a source color",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cs, err := parseColors(args)
			if err != nil {
				return err
			}
			c := blend.Harmonize(cs[0], cs[1])
			t := NewTable("design", "source", "harmonized")
			t.AddRow([]string{cie.AsHex(cs[0]), cie.AsHex(cs[1]), cie.AsHex(c)}, cs[0], cs[1], c)
			return t.Render(cmd.OutOrStdout())
		},
	}
}

func (a *App) blendCmd() *cobra.Command {
	var amount float64
	var space string
	cmd := &cobra.Command{
		Use:   "blend <color> <color>",
		Short: "Blend two colors",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cs, err := parseColors(args)
			if err != nil {
				return err
			}
			bt, err := blend.ParseTypes(space)
			if err != nil {
				return err
			}
			c := blend.Blend(bt, amount, cs[0], cs[1])
			slog.Debug("blended", "space", bt, "amount", amount, "argb", cie.AsHex(c))
			t := NewTable("from", "to", "blend")
			t.AddRow([]string{cie.AsHex(cs[0]), cie.AsHex(cs[1]), cie.AsHex(c)}, cs[0], cs[1], c)
			return t.Render(cmd.OutOrStdout())
		},
	}
	cmd.Flags().Float64VarP(&amount, "amount", "a", 50, "percent of the second color, 0-100")
	cmd.Flags().StringVarP(&space, "space", "s", "hct", "color space to blend in: hct, rgb, or cam16")
	return cmd
}

func (a *App) contrastCmd() *cobra.Command {
	var ratio float64
	cmd := &cobra.Command{
		Use:   "contrast <color> [color]",
		Short: "Print the contrast ratio of two colors, or find a contrasting color",
		Long: `With two colors, print their contrast ratio, from 1 to 21.
With one color, print the color of the same hue and chroma whose contrast
ratio with it is at least --ratio.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cs, err := parseColors(args)
			if err != nil {
				return err
			}
			if len(cs) == 2 {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), num(hct.ContrastRatio(cs[0], cs[1])))
				return err
			}
			c, ok := hct.ContrastColor(cs[0], ratio)
			if !ok {
				return fmt.Errorf("contrast ratio %g can not be reached from %s", ratio, cie.AsHex(cs[0]))
			}
			t := NewTable("color", "contrast", "ratio")
			t.AddRow([]string{cie.AsHex(cs[0]), cie.AsHex(c), num(hct.ContrastRatio(cs[0], c))}, cs[0], c)
			return t.Render(cmd.OutOrStdout())
		},
	}
	cmd.Flags().Float64VarP(&ratio, "ratio", "r", 4.5, "contrast ratio to reach, 1-21")
	return cmd
}

func (a *App) spacedCmd() *cobra.Command {
	var dark bool
	cmd := &cobra.Command{
		Use:   "spaced <n>",
		Short: "Print a sequence of widely spaced colors, for example for graphs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil || n < 1 {
				return fmt.Errorf("argument 1: %q is not a positive count", args[0])
			}
			t := NewTable("index", "color")
			for i := range n {
				c := palette.Spaced(i, dark)
				t.AddRow([]string{strconv.Itoa(i), cie.AsHex(c)}, c)
			}
			return t.Render(cmd.OutOrStdout())
		},
	}
	cmd.Flags().BoolVar(&dark, "dark", false, "use the colors for dark backgrounds")
	return cmd
}
