// Copyright 2026 The Cabinetry Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package drawer builds drawer boxes sized for Blum TANDEM undermount
// slides, together with their shaker faces. Box sizing follows the
// manufacturer's planning dimensions: the box runs 1 15/16" narrower
// than the opening, sits 9/16" above the opening bottom, and may be
// no taller than the opening less 25/32".
//
// See https://www.blum.com/file/tdm563f_ma_dok_bus
package drawer

import (
	"fmt"

	"github.com/woodshop/cabinetry/config"
	"github.com/woodshop/cabinetry/door"
	"github.com/woodshop/cabinetry/material"
	"github.com/woodshop/cabinetry/part"
	"github.com/woodshop/cabinetry/scene"
	"github.com/woodshop/cabinetry/tree"
)

const (
	// bottomRecess is the dado height of the drawer bottom above the
	// lower edge of the box sides.
	bottomRecess = 0.5

	// heightAboveOpening is the slide-mandated clearance under the
	// box.
	heightAboveOpening = 9.0 / 16.0

	// widthReduction is the total side clearance for the slides.
	widthReduction = 1 + 15.0/16.0

	// maxBoxOverOpening is how far below the opening top the box must
	// stay.
	maxBoxOverOpening = 25.0 / 32.0
)

// SlideLength returns the standard Blum TANDEM slide length for a
// cabinet of the given inside depth, from the manufacturer's
// planning table. Depths that fall between brackets are not
// supported.
func SlideLength(insideDepth float32) (float32, error) {
	switch {
	case insideDepth >= 21+15.0/16.0 && insideDepth <= 23+19.0/32.0:
		return 21, nil
	case insideDepth >= 18+29.0/32.0 && insideDepth <= 20+9.0/16.0:
		return 18, nil
	case insideDepth >= 15+29.0/32.0 && insideDepth <= 17+9.0/16.0:
		return 15, nil
	case insideDepth >= 12+29.0/32.0 && insideDepth <= 14+9.0/16.0:
		return 12, nil
	case insideDepth >= 10+15.0/32.0 && insideDepth <= 11+25.0/32.0:
		return 9, nil
	}
	return 0, fmt.Errorf("drawer: no slide length for inside depth %.3f", insideDepth)
}

// Blum is a drawer box with its shaker face, sized to one face frame
// opening.
type Blum struct {
	part.Container

	OpeningWidth  float32
	OpeningHeight float32
	BoxHeight     float32
	BoxMat        material.Material
	BottomMat     material.Material

	Face *door.FramedPanel
}

// Option configures a drawer before construction.
type Option func(*Blum)

// WithBoxHeight overrides the derived box height.
func WithBoxHeight(h float32) Option {
	return func(b *Blum) { b.BoxHeight = h }
}

// WithBoxMaterial sets the side and front stock.
func WithBoxMaterial(m material.Material) Option {
	return func(b *Blum) { b.BoxMat = m }
}

// WithBottomMaterial sets the bottom panel stock.
func WithBottomMaterial(m material.Material) Option {
	return func(b *Blum) { b.BottomMat = m }
}

// NewBlum builds a drawer for the given face frame opening. The box
// height defaults to the tallest the slides allow, capped by the
// configured maximum box height.
func NewBlum(name string, openingWidth, openingHeight float32, cfg *config.Config,
	opts ...Option) (*Blum, error) {
	b := &Blum{
		OpeningWidth:  openingWidth,
		OpeningHeight: openingHeight,
		BoxMat:        material.Ply12,
		BottomMat:     material.Ply14,
	}
	b.Name = name
	tree.InitNode(b)
	for _, opt := range opts {
		opt(b)
	}

	maxHeight := openingHeight - maxBoxOverOpening
	if b.BoxHeight == 0 {
		b.BoxHeight = maxHeight
	} else if b.BoxHeight > maxHeight {
		return nil, fmt.Errorf("drawer %q: box height %.3f exceeds opening height less %.3f",
			name, b.BoxHeight, maxBoxOverOpening)
	}
	if b.BoxHeight > cfg.MaxDrawerBoxHeight {
		b.BoxHeight = cfg.MaxDrawerBoxHeight
	}

	if err := b.buildBox(cfg); err != nil {
		return nil, err
	}
	if err := b.buildFace(cfg); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Blum) buildBox(cfg *config.Config) error {
	t := b.BoxMat.Thickness
	dado := 0.5 * t
	insideWidth := b.OpeningWidth - widthReduction
	outsideWidth := insideWidth + 2*t

	insideDepth := cfg.LowersDepth - cfg.LowersCaseMat.Thickness
	slide, err := SlideLength(insideDepth)
	if err != nil {
		return fmt.Errorf("drawer %q: %w", b.Name, err)
	}
	sideLength := slide - 2*t

	box := part.NewContainer("box")
	box.Pos = scene.Pos(0.5*(b.OpeningWidth-outsideWidth), 0, heightAboveOpening)
	b.AddChild(box)

	box.AddChild(part.NewPanel("left_side", sideLength, b.BoxHeight, b.BoxMat,
		part.WithPos(scene.Pos(t, t, 0)),
		part.WithOrient(scene.Degrees(0, 0, 90)),
		part.WithColor(cfg.DrawerBoxColor),
	))
	box.AddChild(part.NewPanel("right_side", sideLength, b.BoxHeight, b.BoxMat,
		part.WithPos(scene.Pos(2*t+insideWidth, t, 0)),
		part.WithOrient(scene.Degrees(0, 0, 90)),
		part.WithColor(cfg.DrawerBoxColor),
	))
	box.AddChild(part.NewPanel("bottom", insideWidth+2*dado, sideLength+2*dado, b.BottomMat,
		part.WithPos(scene.Pos(t-dado, t-dado, b.BottomMat.Thickness+bottomRecess)),
		part.WithOrient(scene.Degrees(-90, 0, 0)),
		part.WithColor(cfg.DrawerBoxColor),
	))
	box.AddChild(part.NewPanel("false_front", outsideWidth, b.BoxHeight, b.BoxMat,
		part.WithColor(cfg.DrawerBoxColor),
	))
	box.AddChild(part.NewPanel("back", outsideWidth, b.BoxHeight, b.BoxMat,
		part.WithPos(scene.Pos(0, sideLength+t, 0)),
		part.WithColor(cfg.DrawerBoxColor),
	))
	return nil
}

// DefaultFaceMemberWidth is the rail and stile width of a shaker
// drawer face.
const DefaultFaceMemberWidth = 2.0

func (b *Blum) buildFace(cfg *config.Config) error {
	face, err := NewFace("face", b.OpeningWidth, b.OpeningHeight, cfg)
	if err != nil {
		return fmt.Errorf("drawer %q: %w", b.Name, err)
	}
	b.Face = face
	return b.AddChild(face)
}

// NewFace builds a shaker drawer face for an opening. A drawer face
// owns the full stile on both sides and half the rail above and
// below.
func NewFace(name string, openingWidth, openingHeight float32, cfg *config.Config) (*door.FramedPanel, error) {
	side := cfg.FaceFrameMemberWidth - 0.5*cfg.OverlayGap
	topBottom := 0.5 * (cfg.FaceFrameMemberWidth - cfg.OverlayGap)
	return door.NewFramedPanel(name, openingWidth, openingHeight,
		door.Overlays{Left: side, Right: side, Top: topBottom, Bottom: topBottom},
		DefaultFaceMemberWidth, cfg)
}
