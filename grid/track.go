// Copyright 2026 The Cabinetry Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package grid provides the constraint-based 2D layout engine used to
// partition cabinet faces, shelves and drawer banks: an ordered mix of
// fixed and weighted row/column tracks is solved against an available
// span, then crossed into a grid of positioned cell containers.
package grid

import (
	"errors"
	"fmt"
)

var (
	// ErrSpacingOverflow is returned when the requested inter-cell
	// spacing exceeds the total available span.
	ErrSpacingOverflow = errors.New("grid: spacing exceeds available space")

	// ErrFixedOverflow is returned when the fixed tracks consume the
	// whole span while weighted tracks remain to be sized.
	ErrFixedOverflow = errors.New("grid: sum of fixed rows/cols is greater than available space")

	// ErrZeroWeight is returned when the weighted tracks have no
	// positive total weight to normalize by.
	ErrZeroWeight = errors.New("grid: weighted rows/cols have zero total weight")
)

// SizeType says how a track's size is interpreted: an absolute length,
// or a proportional share of the space left after fixed allocations.
// Only the two enumerated values are valid.
type SizeType int32

const (
	// Weighted sizes the track as its weight's share of the
	// remaining space, normalized by the sum of all weights.
	Weighted SizeType = iota

	// Fixed sizes the track at exactly its size value.
	Fixed
)

// IsValid reports whether the size type is one of the enumerated values.
func (t SizeType) IsValid() bool {
	return t == Weighted || t == Fixed
}

// String implements the [fmt.Stringer] interface.
func (t SizeType) String() string {
	switch t {
	case Weighted:
		return "weighted"
	case Fixed:
		return "fixed"
	}
	return fmt.Sprintf("SizeType(%d)", int32(t))
}

// SizeTypeFromString returns the [SizeType] for the given name
// ("weighted" or "fixed"), failing on anything else.
func SizeTypeFromString(s string) (SizeType, error) {
	switch s {
	case "weighted":
		return Weighted, nil
	case "fixed":
		return Fixed, nil
	}
	return Weighted, fmt.Errorf("grid: invalid size type %q: must be one of: weighted, fixed", s)
}

// Track is one row or column specification: a size type plus a size
// value. Tracks can only be constructed with a valid size type.
type Track struct {
	typ  SizeType
	size float32
}

// NewTrack returns a track with the given size type and size, failing
// on a size type outside the enumeration.
func NewTrack(typ SizeType, size float32) (Track, error) {
	if !typ.IsValid() {
		return Track{}, fmt.Errorf("grid: invalid size type %v: must be one of: %v, %v", typ, Weighted, Fixed)
	}
	return Track{typ: typ, size: size}, nil
}

// FixedTrack returns a track with an absolute size.
func FixedTrack(size float32) Track {
	return Track{typ: Fixed, size: size}
}

// WeightedTrack returns a track sized proportionally by weight.
func WeightedTrack(weight float32) Track {
	return Track{typ: Weighted, size: weight}
}

// Weights returns one weighted track per given weight.
func Weights(ws ...float32) []Track {
	tracks := make([]Track, len(ws))
	for i, w := range ws {
		tracks[i] = WeightedTrack(w)
	}
	return tracks
}

// FixedSizes returns one fixed track per given size.
func FixedSizes(sizes ...float32) []Track {
	tracks := make([]Track, len(sizes))
	for i, s := range sizes {
		tracks[i] = FixedTrack(s)
	}
	return tracks
}

// Type returns the track's size type.
func (t Track) Type() SizeType {
	return t.typ
}

// Size returns the track's size value: an absolute length for fixed
// tracks, a relative weight for weighted ones.
func (t Track) Size() float32 {
	return t.size
}

// solveAxis computes the concrete size of every track along one axis.
// The available cell space is the total span minus one spacing per
// adjacent pair; fixed tracks keep their literal size and weighted
// tracks share what remains in proportion to their weights, normalized
// by the actual weight sum. The solve is all-or-nothing: any
// infeasibility fails the whole axis.
func solveAxis(tracks []Track, total, spacing float32) ([]float32, error) {
	n := len(tracks)
	cellSpace := total - float32(n-1)*spacing
	if cellSpace < 0 {
		return nil, fmt.Errorf("%w: %d tracks with spacing %v in span %v", ErrSpacingOverflow, n, spacing, total)
	}

	var fixedSum, weightSum float32
	hasWeighted := false
	for _, t := range tracks {
		if t.typ == Fixed {
			fixedSum += t.size
		} else {
			weightSum += t.size
			hasWeighted = true
		}
	}

	weightedSpace := cellSpace - fixedSum
	if hasWeighted {
		if weightedSpace <= 0 {
			return nil, fmt.Errorf("%w: fixed total %v, available %v", ErrFixedOverflow, fixedSum, cellSpace)
		}
		if weightSum <= 0 {
			return nil, ErrZeroWeight
		}
	}

	sizes := make([]float32, n)
	for i, t := range tracks {
		if t.typ == Fixed {
			sizes[i] = t.size
		} else {
			sizes[i] = weightedSpace * (t.size / weightSum)
		}
	}
	return sizes, nil
}

// colPositions places column 0 at the left edge of the active region,
// with each subsequent column at the cumulative size of the columns
// before it plus one spacing per preceding gap.
func colPositions(sizes []float32, spacing float32) []float32 {
	pos := make([]float32, len(sizes))
	var cum float32
	for i, sz := range sizes {
		pos[i] = cum + float32(i)*spacing
		cum += sz
	}
	return pos
}

// rowPositions places row 0 at the top of the span on a coordinate
// axis that increases upward: each row's position is the total span
// minus the cumulative size of it and every row before it, minus one
// spacing per preceding gap, so rows stack downward in index order and
// row 0 ends exactly at the top.
func rowPositions(sizes []float32, spacing, total float32) []float32 {
	pos := make([]float32, len(sizes))
	var cum float32
	for i, sz := range sizes {
		cum += sz
		pos[i] = total - (cum + float32(i)*spacing)
	}
	return pos
}
