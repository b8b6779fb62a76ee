// Copyright 2026 The Cabinetry Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"image/color"
	"log/slog"

	"github.com/woodshop/cabinetry/math32"
	"github.com/woodshop/cabinetry/tree"
)

// Box is world-space geometry for a rectangular solid: the eight
// corners of a transformed axis-aligned box. Corner i has the low X
// bound when bit 0 of i is clear, low Y when bit 1 is clear, and low Z
// when bit 2 is clear.
type Box struct {
	Corners [8]math32.Vector3
}

// NewBox returns the [Box] for the axis-aligned local extents
// [min, max] transformed into world space by the given matrix.
func NewBox(min, max math32.Vector3, m *math32.Matrix4) *Box {
	b := &Box{}
	for i := range b.Corners {
		c := min
		if i&1 != 0 {
			c.X = max.X
		}
		if i&2 != 0 {
			c.Y = max.Y
		}
		if i&4 != 0 {
			c.Z = max.Z
		}
		b.Corners[i] = c.MulMatrix4AsPoint(m)
	}
	return b
}

// Bounds returns the world-space axis-aligned bounding box of the
// solid as (min, max).
func (b *Box) Bounds() (math32.Vector3, math32.Vector3) {
	min, max := b.Corners[0], b.Corners[0]
	for _, c := range b.Corners[1:] {
		min.X = math32.Min(min.X, c.X)
		min.Y = math32.Min(min.Y, c.Y)
		min.Z = math32.Min(min.Z, c.Z)
		max.X = math32.Max(max.X, c.X)
		max.Y = math32.Max(max.Y, c.Y)
		max.Z = math32.Max(max.Z, c.Z)
	}
	return min, max
}

// RenderItem is one collected piece of displayable geometry, tagged
// with the owning node's display attributes. The flat list of items is
// what external rendering collaborators consume.
type RenderItem struct {
	// Name is the path of the node that supplied the geometry.
	Name string

	// Box is the world-space geometry.
	Box *Box

	// Color is the owning node's display color.
	Color color.RGBA

	// Opacity is the display opacity in [0, 1].
	Opacity float32

	// ShowEdges requests edge display in interactive viewers.
	ShowEdges bool
}

// RenderOptions control geometry collection.
type RenderOptions struct {
	// Opacity applied to every item. Zero means fully opaque.
	Opacity float32

	// ShowEdges requests edge display on every item.
	ShowEdges bool
}

// Collect walks the subtree under root breadth-first, visiting each
// node exactly once, and returns the displayable geometry of every
// visible node. Nodes without geometry contribute nothing.
func Collect(root tree.Node, opts RenderOptions) []RenderItem {
	opacity := opts.Opacity
	if opacity == 0 {
		opacity = 1
	}
	var items []RenderItem
	root.AsTree().WalkDownBreadth(func(n tree.Node) bool {
		g, ok := n.(Geometer)
		if !ok {
			return tree.Continue
		}
		box := g.Geometry()
		if box == nil {
			return tree.Continue
		}
		item := RenderItem{
			Name:      n.AsTree().Path(),
			Box:       box,
			Opacity:   opacity,
			ShowEdges: opts.ShowEdges,
		}
		if c, ok := n.(Colorer); ok {
			obj := c.AsObject()
			if obj.Hidden {
				return tree.Continue
			}
			item.Color = obj.Color
		}
		items = append(items, item)
		return tree.Continue
	})
	return items
}

// Picker accumulates points picked in an interactive viewer and
// reports the distance between every second pair. It is explicit
// session state: wire [Picker.Pick] into the viewer's point-picked
// callback rather than sharing a process-wide buffer.
type Picker struct {
	log    *slog.Logger
	points []math32.Vector3
}

// NewPicker returns a [Picker] logging through the given logger,
// or the default logger if nil.
func NewPicker(log *slog.Logger) *Picker {
	if log == nil {
		log = slog.Default()
	}
	return &Picker{log: log}
}

// Pick records a picked point. On every second point it returns the
// distance to the previous point, resets the buffer, and reports
// ok = true.
func (pk *Picker) Pick(p math32.Vector3) (dist float32, ok bool) {
	pk.points = append(pk.points, p)
	pk.log.Debug("picked point", "point", p, "count", len(pk.points))
	if len(pk.points) < 2 {
		return 0, false
	}
	dist = pk.points[1].DistanceTo(pk.points[0])
	pk.log.Info("picked pair", "distance", dist)
	pk.Reset()
	return dist, true
}

// Points returns the points picked since the last reset.
func (pk *Picker) Points() []math32.Vector3 {
	return pk.points
}

// Reset clears the picked point buffer.
func (pk *Picker) Reset() {
	pk.points = pk.points[:0]
}
