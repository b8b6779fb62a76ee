// Copyright 2026 The Cabinetry Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package part provides the primitive build parts that cabinets are
// composed from: rectangular panels cut from stock, plain grouping
// containers, and ghost placeholders for appliance gaps.
package part

import (
	"image/color"

	"github.com/woodshop/cabinetry/material"
	"github.com/woodshop/cabinetry/math32"
	"github.com/woodshop/cabinetry/scene"
	"github.com/woodshop/cabinetry/tree"
)

// Panel is a rectangular part cut from a single piece of stock. In
// its local frame the panel spans Width along x and Height along z,
// with the stock thickness along y.
type Panel struct {
	scene.Object

	Width  float32
	Height float32
	Mat    material.Material
}

// Option configures a new panel.
type Option func(*Panel)

// WithPos sets the panel position in its parent frame.
func WithPos(p scene.Position) Option {
	return func(pn *Panel) { pn.Pos = p }
}

// WithOrient sets the panel orientation in its parent frame.
func WithOrient(o scene.Orientation) Option {
	return func(pn *Panel) { pn.Orient = o }
}

// WithColor sets the render color.
func WithColor(c color.RGBA) Option {
	return func(pn *Panel) { pn.Color = c }
}

// NewPanel returns an initialized panel of the given stock.
func NewPanel(name string, width, height float32, m material.Material, opts ...Option) *Panel {
	p := &Panel{Width: width, Height: height, Mat: m}
	p.Name = name
	tree.InitNode(p)
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Area is the face area of the panel in square inches.
func (p *Panel) Area() float32 {
	return p.Width * p.Height
}

// Volume is the stock volume of the panel in cubic inches.
func (p *Panel) Volume() float32 {
	return p.Area() * p.Mat.Thickness
}

// Geometry returns the panel's world-space box for rendering.
func (p *Panel) Geometry() *scene.Box {
	m := p.WorldMatrix()
	return scene.NewBox(
		math32.Vec3(0, 0, 0),
		math32.Vec3(p.Width, p.Mat.Thickness, p.Height),
		&m,
	)
}

// Container is a plain grouping node with a pose but no geometry of
// its own.
type Container struct {
	scene.Object
}

// NewContainer returns an initialized empty container.
func NewContainer(name string) *Container {
	c := &Container{}
	c.Name = name
	tree.InitNode(c)
	return c
}

// Ghost reserves width in a cabinet run for something that is not
// built, such as a range or dishwasher. It renders nothing and
// contributes nothing to material estimates.
type Ghost struct {
	Container

	Width float32
}

// NewGhost returns a placeholder of the given width.
func NewGhost(name string, width float32) *Ghost {
	g := &Ghost{Width: width}
	g.Name = name
	tree.InitNode(g)
	return g
}

// FrontWidth is the face width the placeholder reserves in a run.
func (g *Ghost) FrontWidth() float32 {
	return g.Width
}
