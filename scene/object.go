// Copyright 2026 The Cabinetry Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Object is the base for all renderable cabinetry nodes: a [Poseable]
// with a display color and visibility flag. Pure containers inherit
// the default no-geometry behavior; nodes with displayable geometry
// override [Object.Geometry].
type Object struct {
	Poseable

	// Color is the display color used for this node's geometry.
	Color color.RGBA

	// Hidden excludes this node's geometry from collection.
	// Children are still traversed.
	Hidden bool
}

// AsObject returns the [Object] for this node.
func (o *Object) AsObject() *Object {
	return o
}

// Geometry returns the node's displayable geometry, or nil for nodes
// with none. The default implementation returns nil; concrete node
// kinds with geometry override it.
func (o *Object) Geometry() *Box {
	return nil
}

// Geometer is the capability interface for nodes that may supply
// displayable geometry. All [Object]-based nodes implement it; the
// default returns nil.
type Geometer interface {
	Geometry() *Box
}

// Colorer is implemented by all [Object]-based nodes and gives
// traversals access to display attributes.
type Colorer interface {
	AsObject() *Object
}

// ParseColor parses a hex color such as "#7a5f23" into an RGBA color.
func ParseColor(hex string) (color.RGBA, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("scene: invalid color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

// MustColor is [ParseColor] for compiled-in hex constants; it panics
// on a malformed literal.
func MustColor(hex string) color.RGBA {
	c, err := ParseColor(hex)
	if err != nil {
		panic(err)
	}
	return c
}
