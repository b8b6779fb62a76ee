// Copyright 2026 The Cabinetry Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shelf builds cabinet shelving. Shelves lie flat, so their
// panels are rotated from the upright panel frame: the panel height
// becomes the shelf depth.
package shelf

import (
	"github.com/woodshop/cabinetry/config"
	"github.com/woodshop/cabinetry/material"
	"github.com/woodshop/cabinetry/part"
	"github.com/woodshop/cabinetry/scene"
	"github.com/woodshop/cabinetry/tree"
)

// Standard is a plain slab shelf.
type Standard struct {
	part.Container

	Panel *part.Panel
}

// Option configures a shelf.
type Option func(*options)

type options struct {
	mat material.Material
	set bool
}

// WithMaterial overrides the configured shelf stock.
func WithMaterial(m material.Material) Option {
	return func(o *options) {
		o.mat = m
		o.set = true
	}
}

func resolve(cfg *config.Config, opts []Option) material.Material {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.set {
		return o.mat
	}
	return cfg.ShelfMat
}

// NewStandard builds a flat shelf of the given width and depth.
func NewStandard(name string, width, depth float32, cfg *config.Config, opts ...Option) *Standard {
	mat := resolve(cfg, opts)
	s := &Standard{}
	s.Name = name
	tree.InitNode(s)
	s.Panel = part.NewPanel("shelf_panel", width, depth, mat,
		part.WithPos(scene.Pos(0, 0, mat.Thickness)),
		part.WithOrient(scene.Degrees(-90, 0, 0)),
		part.WithColor(cfg.ShelfColor),
	)
	s.AddChild(s.Panel)
	return s
}

// Banded is a plywood shelf with a solid wood strip glued to its
// front edge. The plywood is cut short by the band depth so the
// overall depth is unchanged.
type Banded struct {
	Standard

	Band *part.Panel
}

// NewBanded builds an edge-banded shelf of the given overall depth.
func NewBanded(name string, width, depth float32, cfg *config.Config, opts ...Option) *Banded {
	mat := resolve(cfg, opts)
	b := &Banded{}
	b.Name = name
	tree.InitNode(b)

	b.Panel = part.NewPanel("shelf_panel", width, depth-cfg.ShelfBandingDepth, mat,
		part.WithPos(scene.Pos(0, cfg.ShelfBandingDepth, mat.Thickness)),
		part.WithOrient(scene.Degrees(-90, 0, 0)),
		part.WithColor(cfg.ShelfColor),
	)
	b.AddChild(b.Panel)

	b.Band = part.NewPanel("shelf_band", width, cfg.ShelfBandingDepth, cfg.ShelfBandingMat,
		part.WithPos(scene.Pos(0, 0, cfg.ShelfBandingMat.Thickness)),
		part.WithOrient(scene.Degrees(-90, 0, 0)),
		part.WithColor(cfg.ShelfColor),
	)
	b.AddChild(b.Band)
	return b
}
