// Copyright 2026 The Cabinetry Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package material defines the catalog of sheet and solid stock that
// cabinet parts are cut from, along with the purchasing units used
// when estimating.
package material

import (
	"fmt"
	"sort"
	"strings"
)

// UnitType says whether a material is purchased by surface area
// (sheet goods) or by volume (solid lumber).
type UnitType int32

const (
	// Area materials are bought in sheets and estimated by square inches.
	Area UnitType = iota

	// Volume materials are bought as lumber and estimated by cubic inches.
	Volume
)

// IsValid reports whether the unit type is one of the defined values.
func (u UnitType) IsValid() bool {
	return u >= Area && u <= Volume
}

func (u UnitType) String() string {
	switch u {
	case Area:
		return "area"
	case Volume:
		return "volume"
	}
	return fmt.Sprintf("UnitType(%d)", int32(u))
}

// UnitTypeFromString returns the unit type named by s.
func UnitTypeFromString(s string) (UnitType, error) {
	switch s {
	case "area":
		return Area, nil
	case "volume":
		return Volume, nil
	}
	return 0, fmt.Errorf("material: unknown unit type %q", s)
}

// Material is one entry in the stock catalog. Thickness is in inches.
// UnitSize is the usable quantity in one purchasing unit: square
// inches for a sheet, cubic inches for a board foot. Efficiency is
// the fraction of a unit expected to survive cutting and defects.
type Material struct {
	Name       string
	Thickness  float32
	Unit       UnitType
	UnitSize   float32
	Efficiency float32
	UnitName   string
}

// The stock catalog. Plywood thicknesses are the true undersized
// dimensions, not the nominal ones.
var (
	Ply34 = Material{"PLY_3_4", 23.0 / 32.0, Area, 4608, 0.80, "sheets"}
	Ply58 = Material{"PLY_5_8", 19.0 / 32.0, Area, 4608, 0.80, "sheets"}
	Ply12 = Material{"PLY_1_2", 15.0 / 32.0, Area, 4608, 0.80, "sheets"}
	Ply38 = Material{"PLY_3_8", 11.0 / 32.0, Area, 4608, 0.80, "sheets"}
	Ply14 = Material{"PLY_1_4", 1.0 / 4.0, Area, 4608, 0.80, "sheets"}

	HardwoodPaint34 = Material{"HARDWOOD_PAINT_3_4", 3.0 / 4.0, Volume, 144, 0.80, "board ft"}
	HardwoodStain34 = Material{"HARDWOOD_STAIN_3_4", 3.0 / 4.0, Volume, 144, 0.80, "board ft"}

	// BandingPly34 is plywood edge-banded with hardwood strips; it is
	// cut from solid stock and therefore estimated by volume.
	BandingPly34 = Material{"HARDWOOD_BANDING_PLY_3_4", 23.0 / 32.0, Volume, 144, 0.80, "board ft"}

	// None34 is a placeholder for parts that occupy space but are not
	// purchased, such as ghost spacers.
	None34 = Material{"NONE_3_4", 3.0 / 4.0, Volume, 144, 0.80, "board ft"}
)

var catalog = map[string]Material{
	Ply34.Name:           Ply34,
	Ply58.Name:           Ply58,
	Ply12.Name:           Ply12,
	Ply38.Name:           Ply38,
	Ply14.Name:           Ply14,
	HardwoodPaint34.Name: HardwoodPaint34,
	HardwoodStain34.Name: HardwoodStain34,
	BandingPly34.Name:    BandingPly34,
	None34.Name:          None34,
}

// ByName looks up a catalog material by its name. The error lists
// the known names so a typo in a config file is easy to fix.
func ByName(name string) (Material, error) {
	m, ok := catalog[name]
	if !ok {
		return Material{}, fmt.Errorf("material: no material named %q; have %s",
			name, strings.Join(Names(), ", "))
	}
	return m, nil
}

// Names returns the sorted names of all catalog materials.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
