// Copyright 2026 The Cabinetry Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"fmt"

	"github.com/woodshop/cabinetry/scene"
	"github.com/woodshop/cabinetry/tree"
)

// Padding is the inset of the active grid region within the full
// width/height of the grid container.
type Padding struct {
	Left   float32
	Bottom float32
	Right  float32
	Top    float32
}

// Pad returns a [Padding] with the given insets.
func Pad(left, bottom, right, top float32) Padding {
	return Padding{Left: left, Bottom: bottom, Right: right, Top: top}
}

// Cell is one solved rectangular region of a grid, materialized as a
// poseable child container. Its width and height are managed by the
// owning grid and must not be resized independently; children may
// still be added freely.
type Cell struct {
	scene.Object

	// Width is the solved horizontal extent of the cell.
	Width float32

	// Height is the solved vertical extent of the cell.
	Height float32
}

// Grid manages a structured grid of [Cell] containers. Configure the
// exported fields (or use [New]) and call [Grid.Build] to solve the
// layout and materialize the cells. Empty Rows or Cols default to a
// single weighted track, so an unconfigured grid degenerates to one
// cell spanning the whole region.
type Grid struct {
	scene.Object

	// Width and Height are the full extents of the grid container.
	Width  float32
	Height float32

	// Rows and Cols are the ordered track specifications.
	// Row 0 is the top row; column 0 is the leftmost column.
	Rows []Track
	Cols []Track

	// RowSpacing and ColSpacing are the gaps inserted between every
	// adjacent pair of rows and columns.
	RowSpacing float32
	ColSpacing float32

	// Padding is the inset of the active region within Width/Height.
	// It shifts the whole sub-layout without affecting relative cell
	// sizing.
	Padding Padding

	// Cells is the materialized row-major cell array, indexed
	// [row][col]. Valid after a successful Build.
	Cells [][]*Cell

	// Solved per-axis sizes and positions, recorded for downstream
	// consumers that anchor dividers, rails or sub-grids against cell
	// boundaries. Positions include the padding offset.
	RowSizes []float32
	RowPos   []float32
	ColSizes []float32
	ColPos   []float32

	// GridWidth and GridHeight are the extents of the active
	// (padding-reduced) region.
	GridWidth  float32
	GridHeight float32

	spans    []*Cell
	rowSpans []*Cell
}

// New returns a built grid with the given name, extents and options.
func New(name string, width, height float32, opts ...Option) (*Grid, error) {
	g := &Grid{Width: width, Height: height}
	g.Name = name
	tree.InitNode(g)
	for _, opt := range opts {
		opt(g)
	}
	if err := g.Build(); err != nil {
		return nil, err
	}
	return g, nil
}

// Option configures a [Grid] before it is built.
type Option func(*Grid)

// WithRows sets the row tracks, top to bottom.
func WithRows(rows ...Track) Option {
	return func(g *Grid) { g.Rows = rows }
}

// WithCols sets the column tracks, left to right.
func WithCols(cols ...Track) Option {
	return func(g *Grid) { g.Cols = cols }
}

// WithSpacing sets the inter-row and inter-column gaps.
func WithSpacing(rowSpacing, colSpacing float32) Option {
	return func(g *Grid) {
		g.RowSpacing = rowSpacing
		g.ColSpacing = colSpacing
	}
}

// WithPadding sets the active-region insets.
func WithPadding(p Padding) Option {
	return func(g *Grid) { g.Padding = p }
}

// WithPos sets the grid container's local position.
func WithPos(p scene.Position) Option {
	return func(g *Grid) { g.Pos = p }
}

// Build solves the row and column tracks against the padded extents
// and materializes the row-major cell array, replacing any previously
// built cells. Solving the same configuration twice produces identical
// size and position arrays. Any infeasibility fails the build as a
// whole: no partial grid is left behind.
func (g *Grid) Build() error {
	tree.InitNode(g)
	rows := g.Rows
	if len(rows) == 0 {
		rows = []Track{WeightedTrack(1)}
	}
	cols := g.Cols
	if len(cols) == 0 {
		cols = []Track{WeightedTrack(1)}
	}

	// Grid origin is the bottom-left corner of the padded region.
	gridHeight := g.Height - (g.Padding.Top + g.Padding.Bottom)
	gridWidth := g.Width - (g.Padding.Left + g.Padding.Right)

	rowSizes, err := solveAxis(rows, gridHeight, g.RowSpacing)
	if err != nil {
		return fmt.Errorf("grid %q rows: %w", g.Name, err)
	}
	colSizes, err := solveAxis(cols, gridWidth, g.ColSpacing)
	if err != nil {
		return fmt.Errorf("grid %q cols: %w", g.Name, err)
	}

	rowPos := rowPositions(rowSizes, g.RowSpacing, gridHeight)
	colPos := colPositions(colSizes, g.ColSpacing)
	for i := range rowPos {
		rowPos[i] += g.Padding.Bottom
	}
	for i := range colPos {
		colPos[i] += g.Padding.Left
	}

	g.clearBuilt()
	g.GridHeight = gridHeight
	g.GridWidth = gridWidth
	g.RowSizes = rowSizes
	g.RowPos = rowPos
	g.ColSizes = colSizes
	g.ColPos = colPos

	g.Cells = make([][]*Cell, len(rowSizes))
	idx := 0
	for r := range rowSizes {
		g.Cells[r] = make([]*Cell, len(colSizes))
		for c := range colSizes {
			cell := &Cell{Width: colSizes[c], Height: rowSizes[r]}
			cell.Name = fmt.Sprintf("%s_cell_%d", g.Name, idx)
			cell.Pos = scene.Pos(colPos[c], 0, rowPos[r])
			tree.InitNode(cell)
			if err := g.AddChild(cell); err != nil {
				return err
			}
			g.Cells[r][c] = cell
			idx++
		}
	}
	return nil
}

// clearBuilt removes all previously materialized cells and spanning
// containers from the children list, leaving other children (rails,
// stiles, user components) in place.
func (g *Grid) clearBuilt() {
	for _, row := range g.Cells {
		for _, cell := range row {
			_ = g.RemoveChild(cell)
		}
	}
	for _, sp := range g.spans {
		_ = g.RemoveChild(sp)
	}
	g.Cells = nil
	g.spans = nil
	g.rowSpans = nil
}

// NumRows returns the number of solved rows.
func (g *Grid) NumRows() int {
	return len(g.RowSizes)
}

// NumCols returns the number of solved columns.
func (g *Grid) NumCols() int {
	return len(g.ColSizes)
}

// Cell returns the cell at the given row and column,
// or nil if either index is out of range.
func (g *Grid) Cell(row, col int) *Cell {
	if row < 0 || row >= len(g.Cells) {
		return nil
	}
	if col < 0 || col >= len(g.Cells[row]) {
		return nil
	}
	return g.Cells[row][col]
}

// Span returns a virtual cell covering the bounding extent of the
// inclusive cell range [r0, c0] to [r1, c1], attached as a child of
// the grid. It lets nested grids or components be placed across what
// the base grid considers several cells. The spanned base cells remain
// in place.
func (g *Grid) Span(name string, r0, c0, r1, c1 int) (*Cell, error) {
	if r0 > r1 || c0 > c1 {
		return nil, fmt.Errorf("grid %q: invalid span order (%d,%d)..(%d,%d)", g.Name, r0, c0, r1, c1)
	}
	if g.Cell(r0, c0) == nil || g.Cell(r1, c1) == nil {
		return nil, fmt.Errorf("grid %q: span (%d,%d)..(%d,%d) out of range %dx%d",
			g.Name, r0, c0, r1, c1, g.NumRows(), g.NumCols())
	}

	// Row r1 is the lower row in space; the top of the span is the top
	// edge of row r0.
	x := g.ColPos[c0]
	z := g.RowPos[r1]
	width := g.ColPos[c1] + g.ColSizes[c1] - x
	height := g.RowPos[r0] + g.RowSizes[r0] - z

	sp := &Cell{Width: width, Height: height}
	sp.Name = name
	sp.Pos = scene.Pos(x, 0, z)
	tree.InitNode(sp)
	if err := g.AddChild(sp); err != nil {
		return nil, err
	}
	g.spans = append(g.spans, sp)
	return sp, nil
}

// RowSpans returns one virtual cell per row, each spanning every
// column of that row. The spans are built once and reused on
// subsequent calls; they are the anchor containers for per-row
// dividers and shelves.
func (g *Grid) RowSpans() ([]*Cell, error) {
	if g.rowSpans != nil {
		return g.rowSpans, nil
	}
	spans := make([]*Cell, len(g.Cells))
	for r := range g.Cells {
		sp, err := g.Span(fmt.Sprintf("%s_rowspan_%d", g.Name, r), r, 0, r, g.NumCols()-1)
		if err != nil {
			return nil, err
		}
		spans[r] = sp
	}
	g.rowSpans = spans
	return spans, nil
}
