// Copyright 2026 The Cabinetry Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package door

import (
	"fmt"

	"github.com/woodshop/cabinetry/config"
	"github.com/woodshop/cabinetry/tree"
)

// HingeSide is the side of the opening a door is hinged on.
type HingeSide int32

const (
	HingeLeft HingeSide = iota
	HingeRight
)

func (h HingeSide) String() string {
	switch h {
	case HingeLeft:
		return "left"
	case HingeRight:
		return "right"
	}
	return fmt.Sprintf("HingeSide(%d)", int32(h))
}

// HingeSideFromString returns the hinge side named by s.
func HingeSideFromString(s string) (HingeSide, error) {
	switch s {
	case "left":
		return HingeLeft, nil
	case "right":
		return HingeRight, nil
	}
	return 0, fmt.Errorf("door: hinge side must be \"left\" or \"right\", got %q", s)
}

// StileFactor says whether the stile behind the hinge side carries
// one door or two. A stile shared between the doors of adjacent
// openings is Single: each door may only overlay half of it.
type StileFactor int32

const (
	StileDouble StileFactor = iota
	StileSingle
)

func (sf StileFactor) String() string {
	switch sf {
	case StileSingle:
		return "single"
	case StileDouble:
		return "double"
	}
	return fmt.Sprintf("StileFactor(%d)", int32(sf))
}

// DefaultDoorMemberWidth is the rail and stile width of a shaker door
// blank.
const DefaultDoorMemberWidth = 2.0

// ShakerDoor is a framed inset panel hung over a face frame opening.
type ShakerDoor struct {
	FramedPanel

	Hinge  HingeSide
	Factor StileFactor

	// Paired doors meet a partner door at their latch side and only
	// overlay half the shared stile.
	Paired bool
}

// DoorOption configures a shaker door.
type DoorOption func(*ShakerDoor)

// WithHinge sets the hinge side.
func WithHinge(h HingeSide) DoorOption {
	return func(d *ShakerDoor) { d.Hinge = h }
}

// WithStileFactor sets single or double hinge stile usage.
func WithStileFactor(sf StileFactor) DoorOption {
	return func(d *ShakerDoor) { d.Factor = sf }
}

// Paired marks the latch side as meeting another door.
func Paired(p bool) DoorOption {
	return func(d *ShakerDoor) { d.Paired = p }
}

// NewShaker builds a shaker door covering the given opening. Overlay
// amounts derive from the face frame member width and the configured
// gap: a door gets the full member less half a gap where it owns the
// stile, and half of the remainder where the stile is shared.
func NewShaker(name string, openingWidth, openingHeight float32, cfg *config.Config,
	opts ...DoorOption) (*ShakerDoor, error) {
	d := &ShakerDoor{Hinge: HingeLeft, Factor: StileDouble, Paired: true}
	for _, opt := range opts {
		opt(d)
	}

	large := cfg.FaceFrameMemberWidth - 0.5*cfg.OverlayGap
	small := 0.5 * (cfg.FaceFrameMemberWidth - cfg.OverlayGap)

	hinge := large
	if d.Factor == StileSingle {
		hinge = small
	}
	latch := large
	if d.Paired {
		latch = small
	}

	ov := Overlays{Top: small, Bottom: small}
	switch d.Hinge {
	case HingeLeft:
		ov.Left, ov.Right = hinge, latch
	case HingeRight:
		ov.Left, ov.Right = latch, hinge
	default:
		return nil, fmt.Errorf("door %q: invalid hinge side %d", name, d.Hinge)
	}

	d.Name = name
	tree.InitNode(d)
	if err := d.initPanel(openingWidth, openingHeight, ov, DefaultDoorMemberWidth, cfg); err != nil {
		return nil, err
	}
	return d, nil
}
