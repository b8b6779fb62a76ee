// Copyright 2026 The Cabinetry Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/woodshop/cabinetry/math32"
	"github.com/woodshop/cabinetry/tree"
)

const tol = 1.0e-4

func TestOrientationUnits(t *testing.T) {
	o := Degrees(90, 0, -90)
	assert.Equal(t, Deg, o.Unit())

	r := o.InRadians()
	assert.Equal(t, Rad, r.Unit())
	assert.InDelta(t, math32.Pi/2, r.RX, tol)
	assert.InDelta(t, -math32.Pi/2, r.RZ, tol)
	// Conversion returns a new value; the receiver keeps its unit.
	assert.Equal(t, Deg, o.Unit())

	// Converting an already-radian orientation is a no-op.
	assert.InDelta(t, math32.Pi/2, r.InRadians().RX, tol)

	d := r.InDegrees()
	assert.InDelta(t, 90, d.RX, tol)
}

func TestOrientationSetUnit(t *testing.T) {
	o := Degrees(10, 20, 30)
	require.NoError(t, o.SetUnit(Rad))
	assert.Equal(t, Rad, o.Unit())

	err := o.SetUnit(AngleUnit(7))
	assert.Error(t, err)
	// The invalid value was never stored.
	assert.Equal(t, Rad, o.Unit())
}

func TestAngleUnitFromString(t *testing.T) {
	u, err := AngleUnitFromString("rad")
	require.NoError(t, err)
	assert.Equal(t, Rad, u)
	_, err = AngleUnitFromString("grad")
	assert.Error(t, err)
}

func TestWorldMatrixChain(t *testing.T) {
	// Three-level chain: root at origin, A translated (10,0,0),
	// B translated (0,0,5). B's world position is (10,0,5).
	root := NewPoseable("root")
	a := NewPoseable("a")
	a.Pos = Pos(10, 0, 0)
	b := NewPoseable("b")
	b.Pos = Pos(0, 0, 5)
	require.NoError(t, root.AddChild(a))
	require.NoError(t, a.AddChild(b))

	wp := b.WorldPos()
	assert.InDelta(t, 10, wp.X, tol)
	assert.InDelta(t, 0, wp.Y, tol)
	assert.InDelta(t, 5, wp.Z, tol)
}

func TestWorldMatrixRotationInheritance(t *testing.T) {
	// A parent rotated 90 degrees about z carries its child's x
	// offset onto the world y axis.
	root := NewPoseable("root")
	root.Orient = Degrees(0, 0, 90)
	child := NewPoseable("child")
	child.Pos = Pos(2, 0, 0)
	require.NoError(t, root.AddChild(child))

	wp := child.WorldPos()
	assert.InDelta(t, 0, wp.X, tol)
	assert.InDelta(t, 2, wp.Y, tol)
	assert.InDelta(t, 0, wp.Z, tol)
}

func TestWorldMatrixRoot(t *testing.T) {
	// A parentless node's world matrix is its local matrix.
	p := NewPoseable("solo")
	p.Pos = Pos(1, 2, 3)
	assert.Equal(t, p.LocalMatrix(), p.WorldMatrix())
}

func TestWorldMatrixRecomputed(t *testing.T) {
	// Pose mutation after construction is reflected on the next
	// query: nothing is cached.
	root := NewPoseable("root")
	child := NewPoseable("child")
	require.NoError(t, root.AddChild(child))

	child.Pos.X = 4
	assert.InDelta(t, 4, child.WorldPos().X, tol)
	child.Pos.X = 7
	assert.InDelta(t, 7, child.WorldPos().X, tol)
}

// panelNode is a minimal geometry-bearing node for collection tests.
type panelNode struct {
	Object
	w, h, thick float32
}

func (p *panelNode) Geometry() *Box {
	m := p.WorldMatrix()
	return NewBox(math32.Vec3(0, 0, 0), math32.Vec3(p.w, p.thick, p.h), &m)
}

func TestCollect(t *testing.T) {
	root := NewPoseable("root")
	group := NewPoseable("group")
	group.Pos = Pos(5, 0, 0)
	panel := &panelNode{w: 2, h: 3, thick: 1}
	panel.Name = "panel"
	panel.Color = MustColor("#e6cd83")
	hiddenPanel := &panelNode{w: 1, h: 1, thick: 1}
	hiddenPanel.Name = "hidden"
	hiddenPanel.Hidden = true

	require.NoError(t, root.AddChild(group))
	require.NoError(t, group.AddChild(panel))
	require.NoError(t, group.AddChild(hiddenPanel))

	items := Collect(root, RenderOptions{})
	require.Len(t, items, 1)
	assert.Equal(t, "/root/group/panel", items[0].Name)
	assert.InDelta(t, 1.0, items[0].Opacity, tol)

	min, max := items[0].Box.Bounds()
	assert.InDelta(t, 5, min.X, tol)
	assert.InDelta(t, 7, max.X, tol)
	assert.InDelta(t, 3, max.Z, tol)
}

func TestPicker(t *testing.T) {
	pk := NewPicker(nil)
	_, ok := pk.Pick(math32.Vec3(0, 0, 0))
	assert.False(t, ok)
	assert.Len(t, pk.Points(), 1)

	dist, ok := pk.Pick(math32.Vec3(3, 4, 0))
	assert.True(t, ok)
	assert.InDelta(t, 5, dist, tol)
	// Buffer resets after each pair.
	assert.Empty(t, pk.Points())
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#ff0080")
	require.NoError(t, err)
	assert.Equal(t, uint8(0xff), c.R)
	assert.Equal(t, uint8(0x00), c.G)
	assert.Equal(t, uint8(0x80), c.B)

	_, err = ParseColor("not-a-color")
	assert.Error(t, err)
}

var _ tree.Node = (*panelNode)(nil)
var _ Geometer = (*panelNode)(nil)
