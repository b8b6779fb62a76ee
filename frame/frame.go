// Copyright 2026 The Cabinetry Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package frame builds face frames: the rail and stile lattice that
// fronts a cabinet case. A face frame is a grid whose cells are the
// openings for doors and drawers; the frame members are generated
// from the grid's padding, spacing and cell edges.
package frame

import (
	"fmt"
	"image/color"

	"github.com/woodshop/cabinetry/grid"
	"github.com/woodshop/cabinetry/material"
	"github.com/woodshop/cabinetry/part"
	"github.com/woodshop/cabinetry/scene"
	"github.com/woodshop/cabinetry/tree"
)

// DefaultMemberWidth is the standard rail and stile width.
const DefaultMemberWidth = 1.5

// FaceFrame is a grid of openings fronted by rails and stiles. The
// frame is slightly larger than the case it fronts: it overhangs the
// sides by SideOverhang and extends above the case top by the rail
// width less the case material thickness.
type FaceFrame struct {
	grid.Grid

	RailWidth    float32
	StileWidth   float32
	SideOverhang float32
	Mat          material.Material
	Color        color.RGBA

	members []*part.Panel
	padded  bool
}

// Option configures a face frame before the grid is solved.
type Option func(*FaceFrame)

// WithRows sets the opening rows, top first.
func WithRows(rows ...grid.Track) Option {
	return func(f *FaceFrame) { f.Rows = rows }
}

// WithCols sets the opening columns, left first.
func WithCols(cols ...grid.Track) Option {
	return func(f *FaceFrame) { f.Cols = cols }
}

// WithRailWidth sets the horizontal member width.
func WithRailWidth(w float32) Option {
	return func(f *FaceFrame) { f.RailWidth = w }
}

// WithStileWidth sets the vertical member width.
func WithStileWidth(w float32) Option {
	return func(f *FaceFrame) { f.StileWidth = w }
}

// WithSideOverhang sets how far the frame overhangs each case side.
func WithSideOverhang(o float32) Option {
	return func(f *FaceFrame) { f.SideOverhang = o }
}

// WithMaterial sets the frame stock.
func WithMaterial(m material.Material) Option {
	return func(f *FaceFrame) { f.Mat = m }
}

// WithColor sets the render color of the frame members.
func WithColor(c color.RGBA) Option {
	return func(f *FaceFrame) { f.Color = c }
}

// WithSize overrides the derived outer frame size.
func WithSize(width, height float32) Option {
	return func(f *FaceFrame) {
		f.Grid.Width = width
		f.Grid.Height = height
	}
}

// WithPadding overrides the derived frame padding.
func WithPadding(p grid.Padding) Option {
	return func(f *FaceFrame) {
		f.Padding = p
		f.padded = true
	}
}

// WithPos sets the frame position in its parent.
func WithPos(p scene.Position) Option {
	return func(f *FaceFrame) { f.Pos = p }
}

// New builds a face frame sized for a case of the given outer width
// and height built from boxMat. The frame outer size and padding are
// derived from the case unless overridden with WithSize and
// WithPadding. The grid is solved immediately; member panels are not
// generated until BuildMembers is called.
func New(name string, boxWidth, boxHeight float32, boxMat material.Material, opts ...Option) (*FaceFrame, error) {
	f := &FaceFrame{}
	f.Name = name
	tree.InitNode(f)
	if err := f.Init(boxWidth, boxHeight, boxMat, opts...); err != nil {
		return nil, err
	}
	return f, nil
}

// Init derives the frame dimensions and solves the opening grid. The
// node must already be named and initialized; types embedding
// FaceFrame call this after tree.InitNode on the outer value.
func (f *FaceFrame) Init(boxWidth, boxHeight float32, boxMat material.Material, opts ...Option) error {
	f.RailWidth = DefaultMemberWidth
	f.StileWidth = DefaultMemberWidth
	f.SideOverhang = 0.125
	f.Mat = material.HardwoodPaint34
	f.Color = scene.MustColor("#6e583b")
	for _, opt := range opts {
		opt(f)
	}
	if f.Grid.Width == 0 {
		f.Grid.Width = boxWidth + 2*f.SideOverhang
	}
	if f.Grid.Height == 0 {
		f.Grid.Height = boxHeight + (f.RailWidth - boxMat.Thickness)
	}
	if !f.padded {
		f.Padding = grid.Pad(f.StileWidth, f.RailWidth, f.StileWidth, f.RailWidth)
	}
	f.RowSpacing = f.RailWidth
	f.ColSpacing = f.StileWidth
	if err := f.Build(); err != nil {
		return fmt.Errorf("frame %q: %w", f.Name, err)
	}
	return nil
}

// BuildMembers generates the rail and stile panels around the solved
// openings. Calling it again first removes the previous members, so a
// re-solved frame does not accumulate stock.
func (f *FaceFrame) BuildMembers() {
	for _, m := range f.members {
		f.RemoveChild(m)
	}
	f.members = f.members[:0]

	// Outer stiles run the full frame height along the left and
	// right padding.
	if f.Padding.Left > 0 {
		f.addMember("left_stile", f.Padding.Left, f.Grid.Height, scene.Pos(0, 0, 0))
	}
	if f.Padding.Right > 0 {
		right := f.Grid.Width - f.Padding.Right
		f.addMember("right_stile", f.Padding.Right, f.Grid.Height, scene.Pos(right, 0, 0))
	}

	// Outer rails span the grid width between the stiles.
	if f.Padding.Bottom > 0 {
		f.addMember("bottom_rail", f.GridWidth, f.Padding.Bottom,
			scene.Pos(f.Padding.Left, 0, 0))
	}
	if f.Padding.Top > 0 {
		f.addMember("top_rail", f.GridWidth, f.Padding.Top,
			scene.Pos(f.Padding.Left, 0, f.Padding.Bottom+f.GridHeight))
	}

	// Interior stiles sit on the right edge of every column but the
	// last, spanning the padded grid height.
	for c := 0; c < f.NumCols()-1; c++ {
		x := f.ColPos[c] + f.ColSizes[c]
		f.addMember(fmt.Sprintf("stile_%d", c), f.StileWidth, f.GridHeight,
			scene.Pos(x, 0, f.Padding.Bottom))
	}

	// Every cell below the top row gets a rail above it.
	for r := 1; r < f.NumRows(); r++ {
		for c := 0; c < f.NumCols(); c++ {
			cell := f.Cell(r, c)
			f.addMember(fmt.Sprintf("rail_%d_%d", r, c), cell.Width, f.RailWidth,
				scene.Pos(cell.Pos.X, 0, cell.Pos.Z+cell.Height))
		}
	}
}

func (f *FaceFrame) addMember(name string, width, height float32, pos scene.Position) {
	p := part.NewPanel(name, width, height, f.Mat,
		part.WithPos(pos), part.WithColor(f.Color))
	f.AddChild(p)
	f.members = append(f.members, p)
}

// Members returns the generated rail and stile panels.
func (f *FaceFrame) Members() []*part.Panel {
	return f.members
}
