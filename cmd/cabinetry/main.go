// Copyright 2026 The Cabinetry Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Cabinetry builds a parametric kitchen scene and reports on it:
// material estimates to the terminal, a bill of materials and cutlist
// to SQLite, and elevation drawings to PNG.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/woodshop/cabinetry/assembly"
	"github.com/woodshop/cabinetry/config"
	"github.com/woodshop/cabinetry/estimate"
	"github.com/woodshop/cabinetry/part"
	"github.com/woodshop/cabinetry/render"
)

var (
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
	})

	configPath string
	verbose    bool
)

func main() {
	root := &cobra.Command{
		Use:   "cabinetry",
		Short: "Parametric cabinet layout, estimating and drawings",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logger.SetLevel(log.DebugLevel)
			}
		},
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "",
		"path to a TOML config overriding the shop defaults")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"enable debug logging")

	root.AddCommand(estimateCmd(), exportCmd(), renderCmd())

	if err := root.Execute(); err != nil {
		logger.Fatal(err)
	}
}

// buildScene loads the configuration and constructs the kitchen.
func buildScene() (*part.Container, error) {
	cfg := config.Default()
	if configPath != "" {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return nil, err
		}
		logger.Debug("loaded config", "path", configPath)
	}
	return assembly.Kitchen(cfg)
}

func estimateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "estimate",
		Short: "Print per-material stock totals and purchase quantities",
		RunE: func(cmd *cobra.Command, args []string) error {
			scene, err := buildScene()
			if err != nil {
				return err
			}
			lines := estimate.Materials(scene)
			logger.Debug("estimated scene", "materials", len(lines))
			for _, l := range lines {
				fmt.Fprintln(cmd.OutOrStdout(), l)
			}
			return nil
		},
	}
}

func exportCmd() *cobra.Command {
	var (
		dbPath string
		label  string
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the bill of materials and cutlist to SQLite",
		RunE: func(cmd *cobra.Command, args []string) error {
			scene, err := buildScene()
			if err != nil {
				return err
			}
			runID, err := estimate.Export(context.Background(), dbPath, label, scene)
			if err != nil {
				return err
			}
			logger.Info("exported estimate", "db", dbPath, "run", runID)
			return nil
		},
	}
	cmd.Flags().StringVar(&dbPath, "db", "estimate.db", "SQLite database file")
	cmd.Flags().StringVar(&label, "label", "kitchen", "label for this estimate run")
	return cmd
}

func renderCmd() *cobra.Command {
	var (
		out   string
		view  string
		scale float32
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Draw an elevation view of the scene to a PNG",
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := render.ViewFromString(view)
			if err != nil {
				return err
			}
			scene, err := buildScene()
			if err != nil {
				return err
			}
			if err := render.SavePNG(out, scene, v, render.Options{Scale: scale}); err != nil {
				return err
			}
			logger.Info("rendered scene", "view", view, "out", out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "cabinetry.png", "output PNG file")
	cmd.Flags().StringVar(&view, "view", "front", "projection: front, side or plan")
	cmd.Flags().Float32Var(&scale, "scale", 8, "pixels per inch")
	return cmd
}
