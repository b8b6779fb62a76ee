// Copyright 2026 The Cabinetry Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render draws orthographic elevation views of a built scene
// to raster images. Each collected solid is projected onto the view
// plane and painted back to front as its silhouette, which is enough
// for shop drawings: fronts for door and drawer layout, plans for
// wall runs.
package render

import (
	"fmt"
	"image"
	"image/color"
	"sort"

	"github.com/fogleman/gg"

	"github.com/woodshop/cabinetry/math32"
	"github.com/woodshop/cabinetry/scene"
	"github.com/woodshop/cabinetry/tree"
)

// View selects the projection plane of an elevation.
type View int32

const (
	// Front looks at the scene from in front of the cabinet faces,
	// projecting x across and z up.
	Front View = iota

	// Side looks from the left end of a run, projecting y across and
	// z up.
	Side

	// Plan looks straight down, projecting x across and y up.
	Plan
)

func (v View) String() string {
	switch v {
	case Front:
		return "front"
	case Side:
		return "side"
	case Plan:
		return "plan"
	}
	return fmt.Sprintf("View(%d)", int32(v))
}

// ViewFromString returns the view named by s.
func ViewFromString(s string) (View, error) {
	switch s {
	case "front":
		return Front, nil
	case "side":
		return Side, nil
	case "plan":
		return Plan, nil
	}
	return 0, fmt.Errorf("render: unknown view %q", s)
}

// project maps a world point to view-plane coordinates (u across,
// v up) and a depth that grows away from the viewer.
func (v View) project(p math32.Vector3) (u, vv, depth float32) {
	switch v {
	case Side:
		return p.Y, p.Z, p.X
	case Plan:
		return p.X, p.Y, -p.Z
	default:
		return p.X, p.Z, p.Y
	}
}

// Options control rasterization of an elevation.
type Options struct {
	// Scale is pixels per inch. Zero means 8.
	Scale float32

	// Margin is the border in pixels around the drawing. Zero means 16.
	Margin float32

	// Background fills the canvas before drawing. The zero value is
	// treated as white.
	Background color.RGBA

	// LineWidth is the silhouette stroke width in pixels.
	// Zero means 1.
	LineWidth float32
}

func (o *Options) defaults() {
	if o.Scale == 0 {
		o.Scale = 8
	}
	if o.Margin == 0 {
		o.Margin = 16
	}
	if o.Background == (color.RGBA{}) {
		o.Background = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	}
	if o.LineWidth == 0 {
		o.LineWidth = 1
	}
}

// Image rasterizes the subtree under root in the given view. The
// canvas is sized to the projected extents of the scene plus margins.
func Image(root tree.Node, v View, opts Options) (image.Image, error) {
	opts.defaults()
	items := scene.Collect(root, scene.RenderOptions{})
	if len(items) == 0 {
		return nil, fmt.Errorf("render: no visible geometry under %q", root.AsTree().Name)
	}

	type projected struct {
		hull  []point
		depth float32
		color color.RGBA
	}
	solids := make([]projected, 0, len(items))

	minU, minV := math32.Infinity, math32.Infinity
	maxU, maxV := -math32.Infinity, -math32.Infinity
	for _, it := range items {
		pts := make([]point, len(it.Box.Corners))
		var far float32 = -math32.Infinity
		for i, c := range it.Box.Corners {
			u, vv, d := v.project(c)
			pts[i] = point{u, vv}
			far = math32.Max(far, d)
			minU = math32.Min(minU, u)
			maxU = math32.Max(maxU, u)
			minV = math32.Min(minV, vv)
			maxV = math32.Max(maxV, vv)
		}
		solids = append(solids, projected{hull: convexHull(pts), depth: far, color: it.Color})
	}

	// Painter's order, far solids first.
	sort.SliceStable(solids, func(i, j int) bool {
		return solids[i].depth > solids[j].depth
	})

	width := int((maxU-minU)*opts.Scale + 2*opts.Margin)
	height := int((maxV-minV)*opts.Scale + 2*opts.Margin)
	dc := gg.NewContext(width, height)
	dc.SetColor(opts.Background)
	dc.Clear()

	px := func(p point) (float64, float64) {
		x := float64(opts.Margin + (p.u-minU)*opts.Scale)
		y := float64(height) - float64(opts.Margin+(p.v-minV)*opts.Scale)
		return x, y
	}

	for _, s := range solids {
		if len(s.hull) < 3 {
			continue
		}
		dc.NewSubPath()
		x, y := px(s.hull[0])
		dc.MoveTo(x, y)
		for _, p := range s.hull[1:] {
			x, y = px(p)
			dc.LineTo(x, y)
		}
		dc.ClosePath()
		dc.SetColor(s.color)
		dc.FillPreserve()
		dc.SetRGB(0.2, 0.2, 0.2)
		dc.SetLineWidth(float64(opts.LineWidth))
		dc.Stroke()
	}
	return dc.Image(), nil
}

// SavePNG rasterizes the subtree in the given view and writes it to
// path as a PNG.
func SavePNG(path string, root tree.Node, v View, opts Options) error {
	img, err := Image(root, v, opts)
	if err != nil {
		return err
	}
	if err := gg.SavePNG(path, img); err != nil {
		return fmt.Errorf("render: save %s: %w", path, err)
	}
	return nil
}

type point struct {
	u, v float32
}

// convexHull returns the convex hull of pts in counterclockwise order
// using the monotone chain construction. Collinear points are dropped.
func convexHull(pts []point) []point {
	if len(pts) < 3 {
		return pts
	}
	sorted := make([]point, len(pts))
	copy(sorted, pts)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].u != sorted[j].u {
			return sorted[i].u < sorted[j].u
		}
		return sorted[i].v < sorted[j].v
	})

	cross := func(o, a, b point) float32 {
		return (a.u-o.u)*(b.v-o.v) - (a.v-o.v)*(b.u-o.u)
	}

	var hull []point
	for _, p := range sorted {
		for len(hull) >= 2 && cross(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	lower := len(hull) + 1
	for i := len(sorted) - 2; i >= 0; i-- {
		p := sorted[i]
		for len(hull) >= lower && cross(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	return hull[:len(hull)-1]
}
