// Copyright 2026 The Cabinetry Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package factory

import (
	"fmt"

	"github.com/woodshop/cabinetry/config"
	"github.com/woodshop/cabinetry/drawer"
	"github.com/woodshop/cabinetry/frame"
	"github.com/woodshop/cabinetry/grid"
	"github.com/woodshop/cabinetry/material"
	"github.com/woodshop/cabinetry/shelf"
	"github.com/woodshop/cabinetry/tree"
)

// Built-in layout names.
const (
	MxNEmpty       = "MxN-Empty"
	NDrawer        = "N-Drawer"
	NDoorHoriz     = "N-Door-Horiz"
	NDoorVert      = "N-Door-Vert"
	OneDrawer2Door = "1-Drawer-2-Door"
)

func init() {
	must := func(err error) {
		if err != nil {
			panic(err)
		}
	}
	must(RegisterFrame(MxNEmpty, emptyFrame))
	must(RegisterFrame(NDrawer, drawerFrame))
	must(RegisterFrame(NDoorHoriz, doorFrameHoriz))
	must(RegisterFrame(NDoorVert, doorFrameVert))
	must(RegisterFrame(OneDrawer2Door, drawerOverDoorsFrame))

	must(RegisterShelf("standard", func(name string, width, depth float32, cfg *config.Config) tree.Node {
		return shelf.NewStandard(name, width, depth, cfg)
	}))
	must(RegisterShelf("banded", func(name string, width, depth float32, cfg *config.Config) tree.Node {
		return shelf.NewBanded(name, width, depth, cfg)
	}))
}

func newFrame(name string, boxWidth, boxHeight float32, boxMat material.Material,
	cfg *config.Config, args Args, rows, cols []grid.Track) (*frame.FaceFrame, error) {
	opts := []frame.Option{
		frame.WithRows(rows...),
		frame.WithCols(cols...),
		frame.WithRailWidth(cfg.FaceFrameMemberWidth),
		frame.WithStileWidth(cfg.FaceFrameMemberWidth),
		frame.WithMaterial(cfg.FaceFrameMat),
		frame.WithColor(cfg.FaceFrameColor),
	}
	if args.Padding != nil {
		opts = append(opts, frame.WithPadding(*args.Padding))
	}
	if args.Height > 0 {
		opts = append(opts, frame.WithSize(boxWidth+0.25, args.Height))
	}
	return frame.New(name, boxWidth, boxHeight, boxMat, opts...)
}

// emptyFrame is an MxN grid of open holes, default 2x2.
func emptyFrame(name string, boxWidth, boxHeight float32, boxMat material.Material,
	cfg *config.Config, args Args) (*frame.FaceFrame, error) {
	rows := args.Rows
	if rows == nil {
		rows = grid.Weights(1, 1)
	}
	cols := args.Cols
	if cols == nil {
		cols = grid.Weights(1, 1)
	}
	f, err := newFrame(name, boxWidth, boxHeight, boxMat, cfg, args, rows, cols)
	if err != nil {
		return nil, err
	}
	f.BuildMembers()
	return f, nil
}

// drawerFrame stacks one drawer per row in a single column, default
// four equal drawers.
func drawerFrame(name string, boxWidth, boxHeight float32, boxMat material.Material,
	cfg *config.Config, args Args) (*frame.FaceFrame, error) {
	rows := args.Rows
	if rows == nil {
		rows = grid.Weights(1, 1, 1, 1)
	}
	f, err := newFrame(name, boxWidth, boxHeight, boxMat, cfg, args, rows, grid.Weights(1))
	if err != nil {
		return nil, err
	}
	f.BuildMembers()
	if err := PlaceDrawers(f, cfg); err != nil {
		return nil, err
	}
	return f, nil
}

// doorFrameHoriz hangs doors side by side in a single row, default an
// equal pair.
func doorFrameHoriz(name string, boxWidth, boxHeight float32, boxMat material.Material,
	cfg *config.Config, args Args) (*frame.FaceFrame, error) {
	cols := args.Cols
	if cols == nil {
		cols = grid.Weights(1, 1)
	}
	f, err := newFrame(name, boxWidth, boxHeight, boxMat, cfg, args, grid.Weights(1), cols)
	if err != nil {
		return nil, err
	}
	f.BuildMembers()
	if err := PlaceDoors(f, cfg, args.Hinge); err != nil {
		return nil, err
	}
	return f, nil
}

// doorFrameVert stacks doors in a single column, default an equal
// pair.
func doorFrameVert(name string, boxWidth, boxHeight float32, boxMat material.Material,
	cfg *config.Config, args Args) (*frame.FaceFrame, error) {
	rows := args.Rows
	if rows == nil {
		rows = grid.Weights(1, 1)
	}
	f, err := newFrame(name, boxWidth, boxHeight, boxMat, cfg, args, rows, grid.Weights(1))
	if err != nil {
		return nil, err
	}
	f.BuildMembers()
	if err := PlaceDoors(f, cfg, args.Hinge); err != nil {
		return nil, err
	}
	return f, nil
}

// drawerOverDoorsFrame is the classic sink base: a fixed-height
// drawer row over a pair of doors. The doors hang in a nested frame
// that fills the lower opening edge to edge.
func drawerOverDoorsFrame(name string, boxWidth, boxHeight float32, boxMat material.Material,
	cfg *config.Config, args Args) (*frame.FaceFrame, error) {
	rows := args.Rows
	if rows == nil {
		rows = []grid.Track{grid.FixedTrack(5), grid.WeightedTrack(1)}
	}
	if len(rows) != 2 {
		return nil, fmt.Errorf("factory %q: layout needs exactly 2 rows, got %d", name, len(rows))
	}
	f, err := newFrame(name, boxWidth, boxHeight, boxMat, cfg, args, rows, grid.Weights(1))
	if err != nil {
		return nil, err
	}
	f.BuildMembers()

	// Drawer in the top opening.
	top := f.Cell(0, 0)
	d, err := drawer.NewBlum("drawer_0_0", top.Width, top.Height, cfg)
	if err != nil {
		return nil, err
	}
	if err := top.AddChild(d); err != nil {
		return nil, err
	}

	// A borderless two-column frame fills the bottom opening; its
	// interior stile splits the doors.
	bottom := f.Cell(1, 0)
	inner, err := frame.New(name+"_doors", 0, 0, boxMat,
		frame.WithSize(bottom.Width, bottom.Height),
		frame.WithPadding(grid.Pad(0, 0, 0, 0)),
		frame.WithCols(grid.Weights(1, 1)...),
		frame.WithRailWidth(cfg.FaceFrameMemberWidth),
		frame.WithStileWidth(cfg.FaceFrameMemberWidth),
		frame.WithMaterial(cfg.FaceFrameMat),
		frame.WithColor(cfg.FaceFrameColor),
	)
	if err != nil {
		return nil, err
	}
	inner.BuildMembers()
	if err := PlaceDoors(inner, cfg, args.Hinge); err != nil {
		return nil, err
	}
	if err := bottom.AddChild(inner); err != nil {
		return nil, err
	}
	return f, nil
}
