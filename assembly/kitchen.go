// Copyright 2026 The Cabinetry Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assembly

import (
	"github.com/woodshop/cabinetry/cabinet"
	"github.com/woodshop/cabinetry/config"
	"github.com/woodshop/cabinetry/factory"
	"github.com/woodshop/cabinetry/grid"
	"github.com/woodshop/cabinetry/part"
	"github.com/woodshop/cabinetry/scene"
)

// topDrawerHeight is the fixed height of the shallow top drawer in
// drawer stacks that mix a utensil drawer over deeper storage.
const topDrawerHeight = 5

// drawerStack returns N-Drawer arguments with a fixed-height top
// drawer over equal deeper drawers.
func drawerStack(n int) factory.Args {
	rows := []grid.Track{grid.FixedTrack(topDrawerHeight)}
	for i := 1; i < n; i++ {
		rows = append(rows, grid.WeightedTrack(1))
	}
	return factory.Args{Rows: rows}
}

// equalDrawers returns N-Drawer arguments with n equal drawers.
func equalDrawers(n int) factory.Args {
	rows := make([]grid.Track, n)
	for i := range rows {
		rows[i] = grid.WeightedTrack(1)
	}
	return factory.Args{Rows: rows}
}

// Kitchen builds a sample L-shaped kitchen with an appliance gap,
// door and drawer lowers and shelved uppers. It exercises every
// cabinet style the factory registers and is the scene the command
// line tool renders and estimates by default.
func Kitchen(cfg *config.Config) (*part.Container, error) {
	root := part.NewContainer("kitchen")

	// South wall: corner cabinet stand-in plus two drawer stacks.
	corner, err := cabinet.NewLower("south_corner", 45, cfg,
		cabinet.WithLayout(factory.NDoorHoriz, factory.Args{
			Cols: []grid.Track{grid.WeightedTrack(1), grid.FixedTrack(17)},
		}))
	if err != nil {
		return nil, err
	}
	south21, err := cabinet.NewLower("south_21", 21, cfg,
		cabinet.WithLayout(factory.NDrawer, drawerStack(3)))
	if err != nil {
		return nil, err
	}
	south18, err := cabinet.NewLower("south_18", 18, cfg,
		cabinet.WithLayout(factory.NDrawer, drawerStack(3)))
	if err != nil {
		return nil, err
	}
	southLowers, err := Row("south_wall_lowers",
		[]Cabinet{corner, south21, south18},
		Facing(scene.Degrees(0, 0, 90)),
	)
	if err != nil {
		return nil, err
	}
	if err := root.AddChild(southLowers); err != nil {
		return nil, err
	}

	// West wall: drawers flank the range gap, sink base at the end.
	west27, err := cabinet.NewLower("west_27", 27, cfg,
		cabinet.WithLayout(factory.NDrawer, drawerStack(3)))
	if err != nil {
		return nil, err
	}
	rangeGap := part.NewGhost("range", 48.5)
	west21a, err := cabinet.NewLower("west_21a", 21, cfg,
		cabinet.WithLayout(factory.NDrawer, equalDrawers(2)))
	if err != nil {
		return nil, err
	}
	west21b, err := cabinet.NewLower("west_21b", 21, cfg,
		cabinet.WithLayout(factory.NDrawer, equalDrawers(2)))
	if err != nil {
		return nil, err
	}
	sink, err := cabinet.NewLower("west_sink", 36, cfg,
		cabinet.WithLayout(factory.OneDrawer2Door, factory.Args{}))
	if err != nil {
		return nil, err
	}
	westLowers, err := Row("west_wall_lowers",
		[]Cabinet{west27, rangeGap, west21a, west21b, sink},
		At(scene.Pos(-cfg.LowersDepth, 93, 0)),
	)
	if err != nil {
		return nil, err
	}
	if err := root.AddChild(westLowers); err != nil {
		return nil, err
	}

	// Uppers hang over the south run, shelved, fronted by doors.
	upperZ := cfg.CounterHeight + cfg.CounterToUppersGap
	upperY := cfg.LowersDepth - cfg.UppersDepth
	upper30, err := cabinet.NewUpper("south_upper_30", 30, cfg)
	if err != nil {
		return nil, err
	}
	// Narrow upper gets stacked doors with a banded shelf between.
	upper12, err := cabinet.NewUpper("south_upper_12", 12, cfg,
		cabinet.WithUpperLayout(factory.NDoorVert, factory.Args{
			Rows: []grid.Track{grid.WeightedTrack(1), grid.WeightedTrack(1)},
		}),
		cabinet.WithShelves("banded"))
	if err != nil {
		return nil, err
	}
	southUppers, err := Row("south_wall_uppers",
		[]Cabinet{upper30, upper12},
		At(scene.Pos(0, upperY, upperZ)),
		Facing(scene.Degrees(0, 0, 90)),
	)
	if err != nil {
		return nil, err
	}
	if err := root.AddChild(southUppers); err != nil {
		return nil, err
	}
	return root, nil
}
