// Copyright 2026 The Cabinetry Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cabinet assembles complete cabinets: a plywood case plus a
// face frame filled by one of the factory layouts. Lower cabinets
// stand on an integral toekick; uppers hang from nailers.
package cabinet

import (
	"fmt"

	"github.com/woodshop/cabinetry/config"
	"github.com/woodshop/cabinetry/factory"
	"github.com/woodshop/cabinetry/frame"
	"github.com/woodshop/cabinetry/material"
	"github.com/woodshop/cabinetry/part"
	"github.com/woodshop/cabinetry/scene"
	"github.com/woodshop/cabinetry/tree"
)

// Lower case construction constants, inches.
const (
	ToekickHeight          = 3.5
	ToekickDepth           = 2.5
	StretcherWidth         = 2.5
	FloorDadoDepth         = 0.375
	dadoHeightAboveToekick = 0.5
)

// LowerCase is the plywood box of a base cabinet: sides, a dadoed
// floor, toekick, base blocks and top stretchers.
type LowerCase struct {
	part.Container

	Width  float32
	Height float32
	Mat    material.Material

	// BottomHeightAboveFloor is the top surface of the floor panel,
	// which the face frame's bottom opening aligns to.
	BottomHeightAboveFloor float32

	boxDepth       float32
	boxWidthInside float32
}

// NewLowerCase builds the case box for a lower cabinet of the given
// outer width and height.
func NewLowerCase(name string, width, height float32, cfg *config.Config) *LowerCase {
	c := &LowerCase{
		Width:  width,
		Height: height,
		Mat:    cfg.LowersCaseMat,
	}
	c.Name = name
	tree.InitNode(c)
	c.build(cfg)
	return c
}

// BoxDepth is the case depth behind the face frame.
func (c *LowerCase) BoxDepth() float32 {
	return c.boxDepth
}

// BoxWidthInside is the clear width between the side panels.
func (c *LowerCase) BoxWidthInside() float32 {
	return c.boxWidthInside
}

func (c *LowerCase) build(cfg *config.Config) {
	t := c.Mat.Thickness
	c.BottomHeightAboveFloor = ToekickHeight + cfg.FaceFrameMemberWidth
	c.boxDepth = cfg.LowersDepth - cfg.FaceFrameMat.Thickness
	c.boxWidthInside = c.Width - 2*t

	toekickCutoutHeight := c.BottomHeightAboveFloor - t - dadoHeightAboveToekick
	baseBlockHeight := c.BottomHeightAboveFloor - t
	clr := cfg.CaseColor

	add := func(name string, width, height float32, mat material.Material, pos scene.Position, orient scene.Orientation) {
		c.AddChild(part.NewPanel(name, width, height, mat,
			part.WithPos(pos), part.WithOrient(orient), part.WithColor(clr)))
	}
	upright := scene.Degrees(0, 0, 0)
	sideways := scene.Degrees(0, 0, 90)
	flat := scene.Degrees(-90, 0, 0)

	add("left_side", c.boxDepth, c.Height, c.Mat, scene.Pos(t, 0, 0), sideways)
	add("right_side", c.boxDepth, c.Height, c.Mat, scene.Pos(c.Width, 0, 0), sideways)
	add("bottom", c.boxWidthInside+2*FloorDadoDepth, c.boxDepth, c.Mat,
		scene.Pos(t-FloorDadoDepth, 0, c.BottomHeightAboveFloor), flat)
	add("toekick", c.Width, toekickCutoutHeight, c.Mat,
		scene.Pos(0, ToekickDepth, 0), upright)
	add("base_block_front", c.boxWidthInside, baseBlockHeight, c.Mat,
		scene.Pos(t, ToekickDepth+t, 0), upright)
	add("base_block_rear", c.boxWidthInside, baseBlockHeight, c.Mat,
		scene.Pos(t, c.boxDepth-t, 0), upright)
	add("stretcher_front", c.boxWidthInside, StretcherWidth, c.Mat,
		scene.Pos(t, 0, c.Height), flat)
	add("stretcher_rear_horiz", c.boxWidthInside, StretcherWidth, c.Mat,
		scene.Pos(t, c.boxDepth-StretcherWidth, c.Height), flat)
	add("stretcher_rear_vert", c.boxWidthInside, StretcherWidth, c.Mat,
		scene.Pos(t, c.boxDepth-t, c.Height-(t+StretcherWidth)), upright)
}

// Lower is a complete base cabinet: case plus filled face frame.
type Lower struct {
	part.Container

	Width  float32
	Height float32

	Case *LowerCase
	Face *frame.FaceFrame
}

// LowerOption configures a lower cabinet.
type LowerOption func(*lowerOptions)

type lowerOptions struct {
	height float32
	layout string
	args   factory.Args
}

// WithHeight overrides the configured case height.
func WithHeight(h float32) LowerOption {
	return func(o *lowerOptions) { o.height = h }
}

// WithLayout selects the face frame layout and its arguments.
func WithLayout(name string, args factory.Args) LowerOption {
	return func(o *lowerOptions) {
		o.layout = name
		o.args = args
	}
}

// NewLower builds a base cabinet of the given width. The default face
// is a stack of four equal drawers.
func NewLower(name string, width float32, cfg *config.Config, opts ...LowerOption) (*Lower, error) {
	o := lowerOptions{layout: factory.NDrawer}
	for _, opt := range opts {
		opt(&o)
	}
	if o.height == 0 {
		o.height = cfg.LowersHeight()
	}

	l := &Lower{Width: width, Height: o.height}
	l.Name = name
	tree.InitNode(l)

	l.Case = NewLowerCase(name+"_case", width, o.height, cfg)
	l.Case.Pos = scene.Pos(0, cfg.FaceFrameMat.Thickness, 0)
	if err := l.AddChild(l.Case); err != nil {
		return nil, err
	}

	build, err := factory.Frame(o.layout)
	if err != nil {
		return nil, fmt.Errorf("cabinet %q: %w", name, err)
	}
	// The face fronts everything from the case floor up; the frame's
	// bottom rail laps the floor panel.
	faceHeight := o.height - (l.Case.BottomHeightAboveFloor - l.Case.Mat.Thickness)
	face, err := build(name+"_face", width, faceHeight, l.Case.Mat, cfg, o.args)
	if err != nil {
		return nil, fmt.Errorf("cabinet %q: %w", name, err)
	}
	face.Pos = scene.Pos(-face.SideOverhang, 0, ToekickHeight)
	l.Face = face
	if err := l.AddChild(face); err != nil {
		return nil, err
	}
	return l, nil
}

// FrontWidth is the face width the cabinet occupies in a run.
func (l *Lower) FrontWidth() float32 {
	return l.Width
}
