// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cmd implements the commands of the camgen tool, which converts
// colors between sRGB and HCT, and generates palettes and schemes.
package cmd

import (
	"log/slog"

	"cogentcore.org/cam/cam16"
	"cogentcore.org/cam/hct"
	"cogentcore.org/cam/logx"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// App contains the state shared by all commands.
type App struct {
	// ConfigFile is the path of an optional viewing conditions file
	// in TOML, YAML, or JSON.
	ConfigFile string

	// View are the viewing conditions, from [cam16.DefaultViewConfig],
	// then ConfigFile, then flags.
	View cam16.ViewConfig

	// Debug, Verbose, and Quiet select the log level; see [logx.LevelFromFlags].
	Debug, Verbose, Quiet bool

	vw     *cam16.View
	solver *hct.Solver
}

// NewRootCmd returns the camgen root command with all of its subcommands.
func NewRootCmd() *cobra.Command {
	a := &App{View: cam16.DefaultViewConfig()}
	root := &cobra.Command{
		Use:   "camgen",
		Short: "Convert colors to and from HCT and generate palettes",
		Long: `camgen converts sRGB colors to and from HCT (hue, chroma, tone), a color
system built on the CAM16 color appearance model and CIE L*, and generates
tonal palettes and light and dark schemes from seed colors.

Colors are given as hex (#RGB, #RRGGBB, or #RRGGBBAA, with or without the #)
or as SVG color names such as cornflowerblue.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd.Flags())
		},
	}

	pf := root.PersistentFlags()
	pf.BoolVarP(&a.Debug, "debug", "d", false, "show debug messages")
	pf.BoolVarP(&a.Verbose, "verbose", "v", false, "show info messages")
	pf.BoolVarP(&a.Quiet, "quiet", "q", false, "only show errors")
	pf.StringVarP(&a.ConfigFile, "config", "c", "", "viewing conditions file (.toml, .yaml, .json)")
	pf.Float64Var(&a.View.AdaptingLuminance, "adapting-luminance", a.View.AdaptingLuminance, "light strength of the adapting field in cd/m^2")
	pf.Float64Var(&a.View.BackgroundTone, "background-tone", a.View.BackgroundTone, "tone of the background")
	pf.Float64Var(&a.View.Surround, "surround", a.View.Surround, "brightness of the environment, 0 (dark) to 2 (average)")
	pf.BoolVar(&a.View.DiscountingIlluminant, "discount", a.View.DiscountingIlluminant, "whether the eyes have fully adapted to the illuminant")

	root.AddCommand(
		a.hctCmd(),
		a.solveCmd(),
		a.distanceCmd(),
		a.paletteCmd(),
		a.schemeCmd(),
		a.harmonizeCmd(),
		a.blendCmd(),
		a.contrastCmd(),
		a.spacedCmd(),
	)
	return root
}

// setup installs the logger and makes the viewing conditions. Values from
// the config file are overridden by the flags that were set explicitly.
func (a *App) setup(flags *pflag.FlagSet) error {
	logx.UserLevel = logx.LevelFromFlags(a.Debug, a.Verbose, a.Quiet)
	logx.SetDefaultLogger()

	if a.ConfigFile != "" {
		cfg, err := LoadViewConfig(a.ConfigFile, a.View)
		if err != nil {
			return err
		}
		for _, f := range []struct {
			name string
			set  func()
		}{
			{"adapting-luminance", func() { cfg.AdaptingLuminance = a.View.AdaptingLuminance }},
			{"background-tone", func() { cfg.BackgroundTone = a.View.BackgroundTone }},
			{"surround", func() { cfg.Surround = a.View.Surround }},
			{"discount", func() { cfg.DiscountingIlluminant = a.View.DiscountingIlluminant }},
		} {
			if flags.Changed(f.name) {
				f.set()
			}
		}
		a.View = cfg
	}

	if a.View == cam16.DefaultViewConfig() {
		a.vw = cam16.StdView()
		a.solver = hct.DefaultSolver()
	} else {
		a.vw = cam16.NewView(a.View)
		a.solver = hct.NewSolver(a.vw)
	}
	slog.Debug("viewing conditions", "config", a.View, "n", a.vw.N(), "fl", a.vw.FL(), "z", a.vw.Z())
	return nil
}
