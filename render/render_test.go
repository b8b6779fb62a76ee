// Copyright 2026 The Cabinetry Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"image/color"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/woodshop/cabinetry/material"
	"github.com/woodshop/cabinetry/part"
)

func TestConvexHull(t *testing.T) {
	// A box projects to eight points with duplicates; the hull is the
	// outline quad.
	pts := []point{
		{0, 0}, {10, 0}, {0, 20}, {10, 20},
		{0, 0}, {10, 0}, {0, 20}, {10, 20},
	}
	hull := convexHull(pts)
	assert.Len(t, hull, 4)

	// Interior points are dropped.
	hull = convexHull(append(pts, point{5, 5}, point{3, 12}))
	assert.Len(t, hull, 4)
}

func TestViewFromString(t *testing.T) {
	v, err := ViewFromString("plan")
	require.NoError(t, err)
	assert.Equal(t, Plan, v)
	_, err = ViewFromString("isometric")
	require.Error(t, err)
}

func TestImageFront(t *testing.T) {
	red := color.RGBA{R: 0xc8, A: 0xff}
	root := part.NewContainer("root")
	require.NoError(t, root.AddChild(
		part.NewPanel("p", 10, 20, material.Ply34, part.WithColor(red))))

	img, err := Image(root, Front, Options{})
	require.NoError(t, err)

	// 10x20 inches at 8 px/in plus a 16 px margin all around.
	b := img.Bounds()
	assert.Equal(t, 112, b.Dx())
	assert.Equal(t, 192, b.Dy())

	got := color.RGBAModel.Convert(img.At(56, 96)).(color.RGBA)
	assert.Equal(t, red, got)

	// The margin stays background white.
	got = color.RGBAModel.Convert(img.At(2, 2)).(color.RGBA)
	assert.Equal(t, color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, got)
}

func TestImageEmpty(t *testing.T) {
	root := part.NewContainer("root")
	_, err := Image(root, Front, Options{})
	require.Error(t, err)
}

func TestSavePNG(t *testing.T) {
	root := part.NewContainer("root")
	require.NoError(t, root.AddChild(
		part.NewPanel("p", 4, 4, material.Ply34)))

	path := filepath.Join(t.TempDir(), "front.png")
	require.NoError(t, SavePNG(path, root, Front, Options{}))
}
