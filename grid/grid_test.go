// Copyright 2026 The Cabinetry Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1.0e-4

func TestSizeTypeValidation(t *testing.T) {
	_, err := NewTrack(SizeType(3), 1)
	assert.Error(t, err)

	tr, err := NewTrack(Fixed, 5)
	require.NoError(t, err)
	assert.Equal(t, Fixed, tr.Type())
	assert.InDelta(t, 5, tr.Size(), tol)

	_, err = SizeTypeFromString("stretchy")
	assert.Error(t, err)
	st, err := SizeTypeFromString("fixed")
	require.NoError(t, err)
	assert.Equal(t, Fixed, st)
}

func TestWeightNormalization(t *testing.T) {
	// Weights [1,1,2] over 40 with no spacing solve to [10,10,20].
	sizes, err := solveAxis(Weights(1, 1, 2), 40, 0)
	require.NoError(t, err)
	require.Len(t, sizes, 3)
	assert.InDelta(t, 10, sizes[0], tol)
	assert.InDelta(t, 10, sizes[1], tol)
	assert.InDelta(t, 20, sizes[2], tol)
}

func TestWeightsNeedNotSumToOne(t *testing.T) {
	// Normalization uses the actual weight sum, whatever it is.
	sizes, err := solveAxis(Weights(0.2, 0.2, 0.4), 40, 0)
	require.NoError(t, err)
	assert.InDelta(t, 10, sizes[0], tol)
	assert.InDelta(t, 20, sizes[2], tol)
}

func TestFixedWeightedMix(t *testing.T) {
	// [(fixed,5),(weighted,1),(weighted,3)] over 25: the weighted
	// space is 20, split 5 and 15; everything sums back to 25.
	tracks := []Track{FixedTrack(5), WeightedTrack(1), WeightedTrack(3)}
	sizes, err := solveAxis(tracks, 25, 0)
	require.NoError(t, err)
	assert.InDelta(t, 5, sizes[0], tol)
	assert.InDelta(t, 5, sizes[1], tol)
	assert.InDelta(t, 15, sizes[2], tol)
	assert.InDelta(t, 25, sizes[0]+sizes[1]+sizes[2], tol)
}

func TestSingleWeightedTrackGetsAll(t *testing.T) {
	sizes, err := solveAxis(Weights(1), 37.5, 0)
	require.NoError(t, err)
	assert.InDelta(t, 37.5, sizes[0], tol)
}

func TestFixedOverflowFails(t *testing.T) {
	// Two fixed 30s plus a weighted track in a 50 span must fail
	// outright, not clamp.
	tracks := []Track{FixedTrack(30), FixedTrack(30), WeightedTrack(1)}
	_, err := solveAxis(tracks, 50, 0)
	assert.ErrorIs(t, err, ErrFixedOverflow)
}

func TestSpacingOverflowFails(t *testing.T) {
	_, err := solveAxis(Weights(1, 1, 1), 4, 10)
	assert.ErrorIs(t, err, ErrSpacingOverflow)
}

func TestZeroWeightFails(t *testing.T) {
	_, err := solveAxis(Weights(0, 0), 10, 0)
	assert.ErrorIs(t, err, ErrZeroWeight)
}

func TestFixedOnlyKeepsLiteralSizes(t *testing.T) {
	sizes, err := solveAxis(FixedSizes(12, 24, 36), 100, 0)
	require.NoError(t, err)
	assert.InDelta(t, 12, sizes[0], tol)
	assert.InDelta(t, 24, sizes[1], tol)
	assert.InDelta(t, 36, sizes[2], tol)
}

func TestRowVsColPositionConvention(t *testing.T) {
	// Columns count up from the left edge; rows count down from the
	// top on an axis that increases upward.
	sizes := []float32{5, 5}
	cols := colPositions(sizes, 0)
	assert.InDelta(t, 0, cols[0], tol)
	assert.InDelta(t, 5, cols[1], tol)

	rows := rowPositions(sizes, 0, 10)
	assert.InDelta(t, 5, rows[0], tol)
	assert.InDelta(t, 0, rows[1], tol)
}

func TestPositionSpacing(t *testing.T) {
	sizes := []float32{4, 4, 4}
	cols := colPositions(sizes, 1)
	assert.InDelta(t, 0, cols[0], tol)
	assert.InDelta(t, 5, cols[1], tol)
	assert.InDelta(t, 10, cols[2], tol)

	rows := rowPositions(sizes, 1, 14)
	assert.InDelta(t, 10, rows[0], tol)
	assert.InDelta(t, 5, rows[1], tol)
	assert.InDelta(t, 0, rows[2], tol)
}

func TestDegenerateSingleCell(t *testing.T) {
	// One weighted row and column, no padding or spacing: a single
	// cell spanning the whole region, with both position conventions
	// converging to 0.
	g, err := New("g", 10, 10)
	require.NoError(t, err)
	require.Equal(t, 1, g.NumRows())
	require.Equal(t, 1, g.NumCols())
	cell := g.Cell(0, 0)
	require.NotNil(t, cell)
	assert.InDelta(t, 10, cell.Width, tol)
	assert.InDelta(t, 10, cell.Height, tol)
	assert.InDelta(t, 0, cell.Pos.X, tol)
	assert.InDelta(t, 0, cell.Pos.Z, tol)
}

func TestBuildOnFieldConstructedGrid(t *testing.T) {
	// A grid assembled through its exported fields, without New, is
	// still buildable: Build initializes the node itself.
	g := &Grid{Width: 30, Height: 20}
	g.Name = "bare"
	g.Rows = Weights(1, 1)
	g.Cols = Weights(1, 1, 1)
	require.NoError(t, g.Build())
	require.Equal(t, 2, g.NumRows())
	require.Equal(t, 3, g.NumCols())
	assert.Equal(t, "bare_cell_0", g.Cell(0, 0).Name)
	assert.InDelta(t, 10, g.Cell(0, 0).Width, tol)
}

func TestGridCellLayout(t *testing.T) {
	g, err := New("face", 40, 25,
		WithRows(FixedTrack(5), WeightedTrack(1), WeightedTrack(3)),
		WithCols(Weights(1, 1, 2)...),
	)
	require.NoError(t, err)
	require.Equal(t, 3, g.NumRows())
	require.Equal(t, 3, g.NumCols())

	// Row 0 is the fixed 5 at the top: position 25 - 5 = 20.
	assert.InDelta(t, 20, g.RowPos[0], tol)
	assert.InDelta(t, 15, g.RowPos[1], tol)
	assert.InDelta(t, 0, g.RowPos[2], tol)
	assert.InDelta(t, 0, g.ColPos[0], tol)
	assert.InDelta(t, 10, g.ColPos[1], tol)
	assert.InDelta(t, 20, g.ColPos[2], tol)

	// Cells are attached as children in row-major order with
	// deterministic names.
	require.Len(t, g.Children, 9)
	assert.Equal(t, "face_cell_0", g.Children[0].AsTree().Name)
	assert.Equal(t, "face_cell_8", g.Children[8].AsTree().Name)

	c := g.Cell(1, 2)
	require.NotNil(t, c)
	assert.InDelta(t, 20, c.Width, tol)
	assert.InDelta(t, 5, c.Height, tol)
	assert.InDelta(t, 20, c.Pos.X, tol)
	assert.InDelta(t, 15, c.Pos.Z, tol)
}

func TestGridPadding(t *testing.T) {
	g, err := New("padded", 20, 20, WithPadding(Pad(2, 3, 2, 3)))
	require.NoError(t, err)
	assert.InDelta(t, 16, g.GridWidth, tol)
	assert.InDelta(t, 14, g.GridHeight, tol)
	cell := g.Cell(0, 0)
	assert.InDelta(t, 2, cell.Pos.X, tol)
	assert.InDelta(t, 3, cell.Pos.Z, tol)
	assert.InDelta(t, 16, cell.Width, tol)
	assert.InDelta(t, 14, cell.Height, tol)
}

func TestGridInfeasibleFailsWhole(t *testing.T) {
	_, err := New("bad", 50, 10,
		WithCols(FixedTrack(30), FixedTrack(30), WeightedTrack(1)),
	)
	assert.ErrorIs(t, err, ErrFixedOverflow)
}

func TestIdempotentRebuild(t *testing.T) {
	g, err := New("g", 40, 25,
		WithRows(FixedTrack(5), WeightedTrack(1), WeightedTrack(3)),
		WithCols(Weights(1, 1, 2)...),
		WithSpacing(0.5, 0.25),
	)
	require.NoError(t, err)
	rowSizes := append([]float32(nil), g.RowSizes...)
	rowPos := append([]float32(nil), g.RowPos...)
	colSizes := append([]float32(nil), g.ColSizes...)
	colPos := append([]float32(nil), g.ColPos...)

	require.NoError(t, g.Build())
	assert.Equal(t, rowSizes, g.RowSizes)
	assert.Equal(t, rowPos, g.RowPos)
	assert.Equal(t, colSizes, g.ColSizes)
	assert.Equal(t, colPos, g.ColPos)
	// The rebuild replaced the cells instead of stacking new ones.
	assert.Len(t, g.Children, 9)
}

func TestSpan(t *testing.T) {
	g, err := New("g", 30, 30, WithRows(Weights(1, 1, 1)...), WithCols(Weights(1, 1, 1)...))
	require.NoError(t, err)

	// One full column across the bottom two rows.
	sp, err := g.Span("col-span", 1, 0, 2, 0)
	require.NoError(t, err)
	assert.InDelta(t, 0, sp.Pos.X, tol)
	assert.InDelta(t, 0, sp.Pos.Z, tol)
	assert.InDelta(t, 10, sp.Width, tol)
	assert.InDelta(t, 20, sp.Height, tol)
	assert.Equal(t, g.This, sp.Parent)

	_, err = g.Span("bad", 0, 0, 3, 0)
	assert.Error(t, err)
	_, err = g.Span("bad", 2, 0, 1, 0)
	assert.Error(t, err)
}

func TestRowSpans(t *testing.T) {
	g, err := New("g", 20, 30, WithRows(Weights(1, 2)...), WithCols(Weights(1, 1)...))
	require.NoError(t, err)

	spans, err := g.RowSpans()
	require.NoError(t, err)
	require.Len(t, spans, 2)
	assert.InDelta(t, 20, spans[0].Width, tol)
	assert.InDelta(t, 10, spans[0].Height, tol)
	assert.InDelta(t, 20, spans[0].Pos.Z, tol)
	assert.InDelta(t, 20, spans[1].Height, tol)
	assert.InDelta(t, 0, spans[1].Pos.Z, tol)

	// Cached: a second call returns the same containers.
	again, err := g.RowSpans()
	require.NoError(t, err)
	assert.Equal(t, spans, again)
}
