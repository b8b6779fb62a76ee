// Copyright 2026 The Cabinetry Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package assembly arranges finished cabinets into runs and rooms.
// A run is a one-row grid whose fixed columns are the cabinet widths,
// so each cabinet lands in its own cell and the run as a whole can be
// posed against a wall like any other node.
package assembly

import (
	"fmt"

	"github.com/woodshop/cabinetry/grid"
	"github.com/woodshop/cabinetry/scene"
	"github.com/woodshop/cabinetry/tree"
)

// Cabinet is anything that can stand in a run: lowers, uppers and
// ghost placeholders for appliances all qualify.
type Cabinet interface {
	tree.Node

	// FrontWidth is the width the cabinet occupies along the run.
	FrontWidth() float32
}

// RowOption configures a cabinet run.
type RowOption func(*rowOptions)

type rowOptions struct {
	spacing float32
	pos     scene.Position
	orient  scene.Orientation
}

// WithSpacing inserts a gap between adjacent cabinets, for fillers
// or scribe strips.
func WithSpacing(s float32) RowOption {
	return func(o *rowOptions) { o.spacing = s }
}

// At places the run's left end at the given position.
func At(p scene.Position) RowOption {
	return func(o *rowOptions) { o.pos = p }
}

// Facing rotates the whole run, typically about z to follow a wall.
func Facing(or scene.Orientation) RowOption {
	return func(o *rowOptions) { o.orient = or }
}

// Row assembles the cabinets left to right into a single-row grid.
// Column sizes are fixed to the cabinet widths, so the run length is
// the sum of the widths plus any spacing.
func Row(name string, cabs []Cabinet, opts ...RowOption) (*grid.Grid, error) {
	if len(cabs) == 0 {
		return nil, fmt.Errorf("assembly: run %q has no cabinets", name)
	}
	var o rowOptions
	for _, opt := range opts {
		opt(&o)
	}

	widths := make([]float32, len(cabs))
	var total float32
	for i, cab := range cabs {
		widths[i] = cab.FrontWidth()
		total += widths[i]
	}
	total += o.spacing * float32(len(cabs)-1)

	cols := make([]grid.Track, len(widths))
	for i, w := range widths {
		cols[i] = grid.FixedTrack(w)
	}

	g, err := grid.New(name, total, 1,
		grid.WithRows(grid.WeightedTrack(1)),
		grid.WithCols(cols...),
		grid.WithSpacing(0, o.spacing),
		grid.WithPos(o.pos),
	)
	if err != nil {
		return nil, fmt.Errorf("assembly: run %q: %w", name, err)
	}
	g.Orient = o.orient

	for c, cab := range cabs {
		if err := g.Cells[0][c].AddChild(cab); err != nil {
			return nil, fmt.Errorf("assembly: run %q: %w", name, err)
		}
	}
	return g, nil
}
