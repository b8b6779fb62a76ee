// Copyright 2026 The Cabinetry Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene provides poseable, renderable scene-graph nodes for
// cabinetry assemblies: nodes carrying a local position and orientation
// relative to their parent, with world transforms composed on demand,
// plus the geometry collection used for display and export.
package scene

import (
	"fmt"

	"github.com/woodshop/cabinetry/math32"
)

// Position is a component position relative to the parent frame.
// x is along the width axis, y along the depth (thickness) axis,
// and z along the height axis.
type Position struct {
	X float32
	Y float32
	Z float32
}

// Pos returns a new [Position] with the given offsets.
func Pos(x, y, z float32) Position {
	return Position{X: x, Y: y, Z: z}
}

// Vec returns the position as a [math32.Vector3].
func (p Position) Vec() math32.Vector3 {
	return math32.Vec3(p.X, p.Y, p.Z)
}

// AngleUnit is the unit in which an [Orientation]'s angles are
// expressed. Only the two enumerated values are valid.
type AngleUnit int32

const (
	// Deg indicates angles in degrees, the default.
	Deg AngleUnit = iota

	// Rad indicates angles in radians.
	Rad
)

// IsValid reports whether the unit is one of the enumerated values.
func (u AngleUnit) IsValid() bool {
	return u == Deg || u == Rad
}

// String implements the [fmt.Stringer] interface.
func (u AngleUnit) String() string {
	switch u {
	case Deg:
		return "deg"
	case Rad:
		return "rad"
	}
	return fmt.Sprintf("AngleUnit(%d)", int32(u))
}

// AngleUnitFromString returns the [AngleUnit] for the given name
// ("deg" or "rad"), failing on anything else.
func AngleUnitFromString(s string) (AngleUnit, error) {
	switch s {
	case "deg":
		return Deg, nil
	case "rad":
		return Rad, nil
	}
	return Deg, fmt.Errorf("scene: unsupported angle unit %q: must be one of: deg, rad", s)
}

// Orientation is a component orientation relative to the parent frame,
// expressed as intrinsic z-y'-x'' Euler angles. The unit defaults to
// degrees and can only hold a valid [AngleUnit]: use [Orientation.SetUnit]
// to change it.
type Orientation struct {
	RX float32
	RY float32
	RZ float32

	unit AngleUnit
}

// Degrees returns a new [Orientation] with the given angles in degrees.
func Degrees(rx, ry, rz float32) Orientation {
	return Orientation{RX: rx, RY: ry, RZ: rz, unit: Deg}
}

// Radians returns a new [Orientation] with the given angles in radians.
func Radians(rx, ry, rz float32) Orientation {
	return Orientation{RX: rx, RY: ry, RZ: rz, unit: Rad}
}

// Unit returns the unit the angles are expressed in.
func (o Orientation) Unit() AngleUnit {
	return o.unit
}

// SetUnit relabels the orientation's unit without converting the
// angles. It fails on any value outside the enumeration.
func (o *Orientation) SetUnit(u AngleUnit) error {
	if !u.IsValid() {
		return fmt.Errorf("scene: unsupported angle unit %v: must be one of: %v, %v", u, Deg, Rad)
	}
	o.unit = u
	return nil
}

// InRadians returns a new [Orientation] with the angles converted to
// radians. The receiver is never mutated.
func (o Orientation) InRadians() Orientation {
	if o.unit == Rad {
		return o
	}
	return Radians(math32.DegToRad(o.RX), math32.DegToRad(o.RY), math32.DegToRad(o.RZ))
}

// InDegrees returns a new [Orientation] with the angles converted to
// degrees. The receiver is never mutated.
func (o Orientation) InDegrees() Orientation {
	if o.unit == Deg {
		return o
	}
	return Degrees(math32.RadToDeg(o.RX), math32.RadToDeg(o.RY), math32.RadToDeg(o.RZ))
}
