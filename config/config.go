// Copyright 2026 The Cabinetry Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config defines the shop configuration shared by all cabinet
// construction: standard heights and depths, stock selections, and
// render colors. Values can be overridden from a TOML file.
package config

import (
	"fmt"
	"image/color"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/woodshop/cabinetry/material"
	"github.com/woodshop/cabinetry/scene"
)

// Config holds resolved shop parameters. All lengths are inches.
type Config struct {
	// Face frame stock and sizing.
	FaceFrameMat         material.Material
	FaceFrameColor       color.RGBA
	FaceFrameMemberWidth float32

	// OverlayGap is the gap left between adjacent door and drawer
	// face edges.
	OverlayGap float32

	CaseColor color.RGBA

	// Lower cabinet run.
	CounterHeight       float32
	CountertopThickness float32
	LowersDepth         float32
	LowersCaseMat       material.Material

	// Drawer boxes.
	DrawerBoxColor     color.RGBA
	MaxDrawerBoxHeight float32

	// Inset panels for doors and drawer faces.
	InsetMat   material.Material
	InsetColor color.RGBA

	// Upper cabinet run. The uppers height is derived, see
	// UppersHeight.
	CeilingHeight      float32
	CrownSpaceHeight   float32
	CounterToUppersGap float32
	UppersDepth        float32
	UppersCaseMat      material.Material

	// Shelving.
	ShelfMat          material.Material
	ShelfColor        color.RGBA
	ShelfBandingDepth float32
	ShelfBandingMat   material.Material
}

// UppersHeight is the cabinet height that fills the space between the
// backsplash gap and the crown space below the ceiling.
func (c *Config) UppersHeight() float32 {
	return c.CeilingHeight - (c.CrownSpaceHeight + c.CounterToUppersGap + c.CounterHeight)
}

// LowersHeight is the case height that puts the countertop surface at
// CounterHeight.
func (c *Config) LowersHeight() float32 {
	return c.CounterHeight - c.CountertopThickness
}

// File is the TOML schema. Materials are catalog names and colors are
// hex strings; both are validated during resolution.
type File struct {
	FaceFrameMaterial    string  `toml:"face_frame_material"`
	FaceFrameColor       string  `toml:"face_frame_color"`
	FaceFrameMemberWidth float32 `toml:"face_frame_member_width"`
	OverlayGap           float32 `toml:"overlay_gap"`

	CaseColor string `toml:"case_color"`

	CounterHeight       float32 `toml:"counter_height"`
	CountertopThickness float32 `toml:"countertop_thickness"`
	LowersDepth         float32 `toml:"lowers_depth"`
	LowersCaseMaterial  string  `toml:"lowers_case_material"`

	DrawerBoxColor     string  `toml:"drawer_box_color"`
	MaxDrawerBoxHeight float32 `toml:"max_drawer_box_height"`

	InsetMaterial string `toml:"inset_material"`
	InsetColor    string `toml:"inset_color"`

	CeilingHeight      float32 `toml:"ceiling_height"`
	CrownSpaceHeight   float32 `toml:"crown_space_height"`
	CounterToUppersGap float32 `toml:"counter_to_uppers_gap"`
	UppersDepth        float32 `toml:"uppers_depth"`
	UppersCaseMaterial string  `toml:"uppers_case_material"`

	ShelfMaterial        string  `toml:"shelf_material"`
	ShelfColor           string  `toml:"shelf_color"`
	ShelfBandingDepth    float32 `toml:"shelf_banding_depth"`
	ShelfBandingMaterial string  `toml:"shelf_banding_material"`
}

func defaultFile() File {
	return File{
		FaceFrameMaterial:    material.HardwoodPaint34.Name,
		FaceFrameColor:       "#6e583b",
		FaceFrameMemberWidth: 1.5,
		OverlayGap:           0.25,

		CaseColor: "#e6cd83",

		CounterHeight:       36,
		CountertopThickness: 1.5,
		LowersDepth:         24,
		LowersCaseMaterial:  material.Ply34.Name,

		DrawerBoxColor:     "#e6cd83",
		MaxDrawerBoxHeight: 5,

		InsetMaterial: material.Ply14.Name,
		InsetColor:    "#e6cd83",

		CeilingHeight:      96,
		CrownSpaceHeight:   3,
		CounterToUppersGap: 18,
		UppersDepth:        12,
		UppersCaseMaterial: material.Ply34.Name,

		ShelfMaterial:        material.Ply34.Name,
		ShelfColor:           "#e6cd83",
		ShelfBandingDepth:    0.75,
		ShelfBandingMaterial: material.BandingPly34.Name,
	}
}

// Default returns the built-in shop configuration.
func Default() *Config {
	f := defaultFile()
	c, err := f.resolve()
	if err != nil {
		// Defaults only reference catalog names and valid hex colors.
		panic(fmt.Sprintf("config: bad defaults: %v", err))
	}
	return c
}

// Load reads a TOML override file on top of the defaults. Fields not
// present in the file keep their default values.
func Load(path string) (*Config, error) {
	f := defaultFile()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	c, err := f.resolve()
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return c, nil
}

func (f File) resolve() (*Config, error) {
	c := &Config{
		FaceFrameMemberWidth: f.FaceFrameMemberWidth,
		OverlayGap:           f.OverlayGap,
		CounterHeight:        f.CounterHeight,
		CountertopThickness:  f.CountertopThickness,
		LowersDepth:          f.LowersDepth,
		MaxDrawerBoxHeight:   f.MaxDrawerBoxHeight,
		CeilingHeight:        f.CeilingHeight,
		CrownSpaceHeight:     f.CrownSpaceHeight,
		CounterToUppersGap:   f.CounterToUppersGap,
		UppersDepth:          f.UppersDepth,
		ShelfBandingDepth:    f.ShelfBandingDepth,
	}

	mats := []struct {
		name string
		dst  *material.Material
	}{
		{f.FaceFrameMaterial, &c.FaceFrameMat},
		{f.LowersCaseMaterial, &c.LowersCaseMat},
		{f.InsetMaterial, &c.InsetMat},
		{f.UppersCaseMaterial, &c.UppersCaseMat},
		{f.ShelfMaterial, &c.ShelfMat},
		{f.ShelfBandingMaterial, &c.ShelfBandingMat},
	}
	for _, m := range mats {
		mat, err := material.ByName(m.name)
		if err != nil {
			return nil, err
		}
		*m.dst = mat
	}

	colors := []struct {
		hex string
		dst *color.RGBA
	}{
		{f.FaceFrameColor, &c.FaceFrameColor},
		{f.CaseColor, &c.CaseColor},
		{f.DrawerBoxColor, &c.DrawerBoxColor},
		{f.InsetColor, &c.InsetColor},
		{f.ShelfColor, &c.ShelfColor},
	}
	for _, cl := range colors {
		rgba, err := scene.ParseColor(cl.hex)
		if err != nil {
			return nil, err
		}
		*cl.dst = rgba
	}
	return c, nil
}
