// Copyright 2026 The Cabinetry Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package factory provides named face frame layouts and the placement
// rules that fill their openings with doors, drawers and shelves.
// Cabinets look layouts up by name, so custom layouts can be
// registered alongside the built-ins.
package factory

import (
	"fmt"
	"sort"
	"strings"

	"github.com/woodshop/cabinetry/config"
	"github.com/woodshop/cabinetry/frame"
	"github.com/woodshop/cabinetry/grid"
	"github.com/woodshop/cabinetry/material"
	"github.com/woodshop/cabinetry/tree"
)

// Args parameterizes a frame layout. Zero values select each
// factory's defaults.
type Args struct {
	// Rows and Cols distribute the openings; top row and left column
	// first.
	Rows []grid.Track
	Cols []grid.Track

	// Hinge is the door hinge preference for layouts that hang doors.
	Hinge HingePreference

	// Padding overrides the frame padding derived from the member
	// widths. Used by upper cabinets, whose frames align with the
	// case insets.
	Padding *grid.Padding

	// Height overrides the derived outer frame height.
	Height float32
}

// FrameFactory builds a filled face frame for a case front. boxWidth
// and boxHeight describe the case being fronted.
type FrameFactory func(name string, boxWidth, boxHeight float32,
	boxMat material.Material, cfg *config.Config, args Args) (*frame.FaceFrame, error)

// ShelfFactory builds one shelf of the given width and overall depth.
type ShelfFactory func(name string, width, depth float32, cfg *config.Config) tree.Node

var (
	frameFactories = map[string]FrameFactory{}
	shelfFactories = map[string]ShelfFactory{}
)

// RegisterFrame adds a frame layout under a new name.
func RegisterFrame(name string, f FrameFactory) error {
	if _, ok := frameFactories[name]; ok {
		return fmt.Errorf("factory: frame layout %q already registered", name)
	}
	frameFactories[name] = f
	return nil
}

// Frame returns the frame layout registered under name. The error for
// an unknown name lists what is registered.
func Frame(name string) (FrameFactory, error) {
	f, ok := frameFactories[name]
	if !ok {
		return nil, fmt.Errorf("factory: %q is not a registered frame layout; have %s",
			name, strings.Join(sortedKeys(frameFactories), ", "))
	}
	return f, nil
}

// RegisterShelf adds a shelf style under a new name.
func RegisterShelf(name string, f ShelfFactory) error {
	if _, ok := shelfFactories[name]; ok {
		return fmt.Errorf("factory: shelf style %q already registered", name)
	}
	shelfFactories[name] = f
	return nil
}

// Shelf returns the shelf style registered under name.
func Shelf(name string) (ShelfFactory, error) {
	f, ok := shelfFactories[name]
	if !ok {
		return nil, fmt.Errorf("factory: %q is not a registered shelf style; have %s",
			name, strings.Join(sortedKeys(shelfFactories), ", "))
	}
	return f, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
