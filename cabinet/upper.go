// Copyright 2026 The Cabinetry Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cabinet

import (
	"fmt"

	"github.com/woodshop/cabinetry/config"
	"github.com/woodshop/cabinetry/factory"
	"github.com/woodshop/cabinetry/frame"
	"github.com/woodshop/cabinetry/grid"
	"github.com/woodshop/cabinetry/material"
	"github.com/woodshop/cabinetry/part"
	"github.com/woodshop/cabinetry/scene"
	"github.com/woodshop/cabinetry/tree"
)

// Upper case construction constants, inches.
const (
	// UpperBottomInset is the distance from the cabinet bottom to the
	// underside of the bottom panel.
	UpperBottomInset = 1.5

	// UpperTopInset is the distance from the cabinet top to the top
	// side of the top panel.
	UpperTopInset = 1.0

	NailerWidth = 2.5
)

// UpperCase is the hanging box of a wall cabinet: sides, dadoed top
// and bottom, hanging nailers and a rabbeted back panel.
type UpperCase struct {
	part.Container

	Width  float32
	Height float32
	Mat    material.Material

	boxDepth       float32
	boxWidthInside float32
}

// NewUpperCase builds the case box for an upper cabinet.
func NewUpperCase(name string, width, height float32, cfg *config.Config) *UpperCase {
	c := &UpperCase{
		Width:  width,
		Height: height,
		Mat:    cfg.UppersCaseMat,
	}
	c.Name = name
	tree.InitNode(c)
	c.build(cfg)
	return c
}

// BoxDepth is the case depth behind the face frame.
func (c *UpperCase) BoxDepth() float32 {
	return c.boxDepth
}

// BoxWidthInside is the clear width between the side panels.
func (c *UpperCase) BoxWidthInside() float32 {
	return c.boxWidthInside
}

func (c *UpperCase) build(cfg *config.Config) {
	t := c.Mat.Thickness
	c.boxDepth = cfg.UppersDepth - cfg.FaceFrameMat.Thickness
	c.boxWidthInside = c.Width - 2*t

	backMat := material.Ply14
	nailerMat := material.HardwoodPaint34
	dado := 0.5 * t
	rabbetWidth := 0.5 * t
	rabbetDepth := backMat.Thickness
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
	add("top", c.boxWidthInside+2*dado, c.boxDepth-rabbetDepth, c.Mat,
		scene.Pos(t-dado, 0, c.Height-UpperTopInset), flat)
	add("bottom", c.boxWidthInside+2*dado, c.boxDepth-rabbetDepth, c.Mat,
		scene.Pos(t-dado, 0, UpperBottomInset+t), flat)
	add("bottom_nailer", c.boxWidthInside, NailerWidth, nailerMat,
		scene.Pos(t, c.boxDepth-(rabbetDepth+nailerMat.Thickness), UpperBottomInset+t), upright)
	add("top_nailer", c.boxWidthInside, NailerWidth, nailerMat,
		scene.Pos(t, c.boxDepth-(rabbetDepth+nailerMat.Thickness),
			c.Height-(UpperTopInset+t+NailerWidth)), upright)
	add("back_panel", c.boxWidthInside+2*rabbetWidth, c.Height, backMat,
		scene.Pos(t-rabbetWidth, c.boxDepth-rabbetDepth, 0), upright)
}

// Upper is a complete wall cabinet: case plus filled face frame,
// optionally shelved.
type Upper struct {
	part.Container

	Width  float32
	Height float32

	Case *UpperCase
	Face *frame.FaceFrame
}

// UpperOption configures an upper cabinet.
type UpperOption func(*upperOptions)

type upperOptions struct {
	height  float32
	layout  string
	args    factory.Args
	shelves string
}

// WithUpperHeight overrides the derived cabinet height.
func WithUpperHeight(h float32) UpperOption {
	return func(o *upperOptions) { o.height = h }
}

// WithUpperLayout selects the face frame layout and its arguments.
func WithUpperLayout(name string, args factory.Args) UpperOption {
	return func(o *upperOptions) {
		o.layout = name
		o.args = args
	}
}

// WithShelves adds a shelf at each opening row boundary, in the named
// shelf style.
func WithShelves(style string) UpperOption {
	return func(o *upperOptions) { o.shelves = style }
}

// NewUpper builds a wall cabinet of the given width. The default face
// is a pair of doors, and the default height fills the space between
// the counter gap and the crown space.
func NewUpper(name string, width float32, cfg *config.Config, opts ...UpperOption) (*Upper, error) {
	o := upperOptions{layout: factory.NDoorHoriz}
	for _, opt := range opts {
		opt(&o)
	}
	if o.height == 0 {
		o.height = cfg.UppersHeight()
	}

	u := &Upper{Width: width, Height: o.height}
	u.Name = name
	tree.InitNode(u)

	u.Case = NewUpperCase(name+"_case", width, o.height, cfg)
	u.Case.Pos = scene.Pos(0, cfg.FaceFrameMat.Thickness, 0)
	if err := u.AddChild(u.Case); err != nil {
		return nil, err
	}

	build, err := factory.Frame(o.layout)
	if err != nil {
		return nil, fmt.Errorf("cabinet %q: %w", name, err)
	}
	// The frame matches the cabinet outline; its openings align with
	// the case insets rather than the default rail padding.
	t := u.Case.Mat.Thickness
	args := o.args
	if args.Padding == nil {
		pad := grid.Pad(cfg.FaceFrameMemberWidth, UpperBottomInset+t,
			cfg.FaceFrameMemberWidth, UpperTopInset+t)
		args.Padding = &pad
	}
	if args.Height == 0 {
		args.Height = o.height
	}
	face, err := build(name+"_face", width, 0, u.Case.Mat, cfg, args)
	if err != nil {
		return nil, fmt.Errorf("cabinet %q: %w", name, err)
	}
	face.Pos = scene.Pos(-face.SideOverhang, 0, 0)
	u.Face = face
	if err := u.AddChild(face); err != nil {
		return nil, err
	}

	if o.shelves != "" {
		style, err := factory.Shelf(o.shelves)
		if err != nil {
			return nil, fmt.Errorf("cabinet %q: %w", name, err)
		}
		err = factory.PlaceShelves(face, cfg, style, u.Case.BoxWidthInside(), u.Case.BoxDepth())
		if err != nil {
			return nil, fmt.Errorf("cabinet %q: %w", name, err)
		}
	}
	return u, nil
}

// FrontWidth is the face width the cabinet occupies in a run.
func (u *Upper) FrontWidth() float32 {
	return u.Width
}
