// Copyright 2026 The Cabinetry Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package door builds shaker style doors and the framed inset panels
// they share with drawer faces. A door overlays the face frame
// opening it covers; the overlay amounts follow the hinge side and
// whether the door meets a partner door or a frame stile.
package door

import (
	"fmt"

	"github.com/woodshop/cabinetry/config"
	"github.com/woodshop/cabinetry/frame"
	"github.com/woodshop/cabinetry/grid"
	"github.com/woodshop/cabinetry/part"
	"github.com/woodshop/cabinetry/scene"
	"github.com/woodshop/cabinetry/tree"
)

// Overlays gives the distance a framed panel extends past its opening
// on each side.
type Overlays struct {
	Left, Right, Top, Bottom float32
}

// FramedPanel is a single-opening face frame with a flat inset panel,
// the common construction for shaker doors and drawer faces. The
// panel is positioned so that it covers its opening by the overlay
// amounts and sits proud of the cabinet face frame.
type FramedPanel struct {
	frame.FaceFrame

	OpeningWidth  float32
	OpeningHeight float32
	Overlay       Overlays
}

// NewFramedPanel builds an inset panel door blank covering an opening
// of the given size. Member width is the rail and stile width of the
// blank itself, not of the cabinet face frame.
func NewFramedPanel(name string, openingWidth, openingHeight float32, ov Overlays,
	memberWidth float32, cfg *config.Config) (*FramedPanel, error) {
	fp := &FramedPanel{}
	fp.Name = name
	tree.InitNode(fp)
	if err := fp.initPanel(openingWidth, openingHeight, ov, memberWidth, cfg); err != nil {
		return nil, err
	}
	return fp, nil
}

// initPanel sizes, solves and fills a framed panel in place. The node
// must already be named and initialized.
func (fp *FramedPanel) initPanel(openingWidth, openingHeight float32, ov Overlays,
	memberWidth float32, cfg *config.Config) error {
	width := openingWidth + ov.Left + ov.Right
	height := openingHeight + ov.Top + ov.Bottom
	fp.OpeningWidth = openingWidth
	fp.OpeningHeight = openingHeight
	fp.Overlay = ov

	err := fp.FaceFrame.Init(0, 0, cfg.InsetMat,
		frame.WithSize(width, height),
		frame.WithRailWidth(memberWidth),
		frame.WithStileWidth(memberWidth),
		frame.WithSideOverhang(0),
		frame.WithPadding(grid.Pad(memberWidth, memberWidth, memberWidth, memberWidth)),
		frame.WithMaterial(cfg.FaceFrameMat),
		frame.WithColor(cfg.FaceFrameColor),
	)
	if err != nil {
		return fmt.Errorf("door %q: %w", fp.Name, err)
	}

	// Cover the opening and sit in front of the cabinet frame.
	fp.Pos = scene.Pos(-ov.Left, -cfg.FaceFrameMat.Thickness, -ov.Bottom)

	fp.BuildMembers()
	fp.addInsets(cfg)
	return nil
}

// addInsets fills the single opening with the flat panel: one dadoed
// panel captured in the frame grooves plus a glue-on veneer flush
// with the back.
func (fp *FramedPanel) addInsets(cfg *config.Config) {
	t := cfg.InsetMat.Thickness
	depth := cfg.FaceFrameMat.Thickness - 2*t
	cell := fp.Cell(0, 0)

	cell.AddChild(part.NewPanel("inset_dadoed",
		cell.Width+2*t, cell.Height+2*t, cfg.InsetMat,
		part.WithPos(scene.Pos(-t, depth, -t)),
		part.WithColor(cfg.InsetColor),
	))
	cell.AddChild(part.NewPanel("inset_glueon",
		cell.Width, cell.Height, cfg.InsetMat,
		part.WithPos(scene.Pos(0, depth+t, 0)),
		part.WithColor(cfg.InsetColor),
	))
}

// Width is the outer blank width including overlays.
func (fp *FramedPanel) Width() float32 {
	return fp.Grid.Width
}

// Height is the outer blank height including overlays.
func (fp *FramedPanel) Height() float32 {
	return fp.Grid.Height
}
