// Copyright 2026 The Cabinetry Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package estimate turns a built scene into a bill of materials:
// per-material stock totals and purchase quantities, plus a flat
// cutlist of every panel in the tree.
package estimate

import (
	"fmt"
	"sort"

	"github.com/chewxy/math32"

	"github.com/woodshop/cabinetry/material"
	"github.com/woodshop/cabinetry/part"
	"github.com/woodshop/cabinetry/tree"
)

// Line is the aggregate for one catalog material.
type Line struct {
	Mat    material.Material
	Panels int

	// Area and Volume are the summed square and cubic inches of all
	// panels cut from this material.
	Area   float32
	Volume float32
}

// Total returns the summed quantity in the material's purchasing
// dimension: area for sheet goods, volume for solid stock.
func (l Line) Total() float32 {
	if l.Mat.Unit == material.Volume {
		return l.Volume
	}
	return l.Area
}

// Quantity is the number of purchasing units to buy, rounding up
// after discounting each unit by the cutting efficiency.
func (l Line) Quantity() int {
	return int(math32.Ceil(l.Total() / (l.Mat.UnitSize * l.Mat.Efficiency)))
}

func (l Line) String() string {
	return fmt.Sprintf(
		"material=%s, total %s=%.0f, requires %d %s assuming %.0f%% efficiency per unit",
		l.Mat.Name, l.Mat.Unit, l.Total(), l.Quantity(), l.Mat.UnitName,
		100*l.Mat.Efficiency)
}

// Panels returns every panel in the tree rooted at root, in walk
// order.
func Panels(root tree.Node) []*part.Panel {
	var out []*part.Panel
	root.AsTree().WalkDown(func(n tree.Node) bool {
		if p, ok := n.(*part.Panel); ok {
			out = append(out, p)
		}
		return tree.Continue
	})
	return out
}

// Materials aggregates the tree's panels by material and returns one
// line per material, sorted by material name. Placeholder stock is
// skipped.
func Materials(root tree.Node) []Line {
	byName := map[string]*Line{}
	for _, p := range Panels(root) {
		if p.Mat.Name == material.None34.Name {
			continue
		}
		l, ok := byName[p.Mat.Name]
		if !ok {
			l = &Line{Mat: p.Mat}
			byName[p.Mat.Name] = l
		}
		l.Panels++
		l.Area += p.Area()
		l.Volume += p.Volume()
	}

	lines := make([]Line, 0, len(byName))
	for _, l := range byName {
		lines = append(lines, *l)
	}
	sort.Slice(lines, func(i, j int) bool {
		return lines[i].Mat.Name < lines[j].Mat.Name
	})
	return lines
}
