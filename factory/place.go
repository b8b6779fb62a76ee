// Copyright 2026 The Cabinetry Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package factory

import (
	"fmt"

	"github.com/woodshop/cabinetry/config"
	"github.com/woodshop/cabinetry/door"
	"github.com/woodshop/cabinetry/drawer"
	"github.com/woodshop/cabinetry/frame"
	"github.com/woodshop/cabinetry/scene"
)

// HingePreference controls which side interior doors of a row hang
// from. The outermost doors always hinge on their outer side.
type HingePreference int32

const (
	PreferLeft HingePreference = iota
	PreferRight
	Alternate
)

func (h HingePreference) String() string {
	switch h {
	case PreferLeft:
		return "left"
	case PreferRight:
		return "right"
	case Alternate:
		return "alternate"
	}
	return fmt.Sprintf("HingePreference(%d)", int32(h))
}

// HingePreferenceFromString returns the preference named by s.
func HingePreferenceFromString(s string) (HingePreference, error) {
	switch s {
	case "left":
		return PreferLeft, nil
	case "right":
		return PreferRight, nil
	case "alternate":
		return Alternate, nil
	}
	return 0, fmt.Errorf("factory: hinge preference must be \"left\", \"right\" or \"alternate\", got %q", s)
}

// PlaceDoors hangs a shaker door in every opening of the frame. The
// leftmost door of each row hinges left and the rightmost hinges
// right; doors between them follow the preference. Doors sharing a
// stile with a neighbor only overlay half of it.
func PlaceDoors(f *frame.FaceFrame, cfg *config.Config, pref HingePreference) error {
	for r := 0; r < f.NumRows(); r++ {
		n := f.NumCols()
		for c := 0; c < n; c++ {
			side := door.HingeLeft
			factor := door.StileDouble
			switch {
			case c == 0:
				// leftmost: hinge left, owns the outer stile
			case c == n-1:
				side = door.HingeRight
			default:
				factor = door.StileSingle
				switch pref {
				case PreferRight:
					side = door.HingeRight
				case Alternate:
					if c%2 == 1 {
						side = door.HingeRight
					}
				}
			}

			cell := f.Cell(r, c)
			d, err := door.NewShaker(fmt.Sprintf("door_%d_%d", r, c),
				cell.Width, cell.Height, cfg,
				door.WithHinge(side),
				door.WithStileFactor(factor),
				door.Paired(n > 1),
			)
			if err != nil {
				return err
			}
			if err := cell.AddChild(d); err != nil {
				return err
			}
		}
	}
	return nil
}

// PlaceDrawers puts a Blum drawer in every opening of the frame.
func PlaceDrawers(f *frame.FaceFrame, cfg *config.Config) error {
	for r := 0; r < f.NumRows(); r++ {
		for c := 0; c < f.NumCols(); c++ {
			cell := f.Cell(r, c)
			d, err := drawer.NewBlum(fmt.Sprintf("drawer_%d_%d", r, c),
				cell.Width, cell.Height, cfg)
			if err != nil {
				return err
			}
			if err := cell.AddChild(d); err != nil {
				return err
			}
		}
	}
	return nil
}

// PlaceShelves adds one shelf at the top of each opening row but the
// first, using the given shelf style. caseInsideWidth and caseDepth
// size the shelves to the case behind the frame; shelves are centered
// on their row and pushed behind the frame stock.
func PlaceShelves(f *frame.FaceFrame, cfg *config.Config, style ShelfFactory,
	caseInsideWidth, caseDepth float32) error {
	spans, err := f.RowSpans()
	if err != nil {
		return err
	}
	// The top row holds no shelf above it; each lower row's shelf
	// sits at that row's top edge.
	for i, span := range spans[1:] {
		s := style(fmt.Sprintf("shelf_%02d", i), caseInsideWidth, caseDepth, cfg)
		sp := s.(scene.Poser).AsPoseable()
		sp.Pos = scene.Pos(0.5*(span.Width-caseInsideWidth), f.Mat.Thickness,
			span.Height-cfg.ShelfMat.Thickness)
		if err := span.AddChild(s); err != nil {
			return err
		}
	}
	return nil
}
