// Copyright 2026 The Cabinetry Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"github.com/woodshop/cabinetry/math32"
	"github.com/woodshop/cabinetry/tree"
)

// Poser is the interface for tree nodes that carry a local pose.
// Nodes that do not implement it contribute the identity transform to
// their descendants' world transforms.
type Poser interface {
	tree.Node

	// AsPoseable returns the [Poseable] for this node.
	AsPoseable() *Poseable
}

// Poseable is a scene-graph node with a local position and orientation
// relative to its parent. The pose fields are freely mutable after
// construction; transforms are recomputed on demand from the current
// pose, never cached, so post-hoc layout corrections such as setting
// Pos.X take effect on the next transform query.
type Poseable struct {
	tree.NodeBase

	// Pos is the local position relative to the parent frame.
	Pos Position

	// Orient is the local orientation relative to the parent frame.
	Orient Orientation
}

// NewPoseable returns a new initialized [Poseable] with the given name.
func NewPoseable(name string) *Poseable {
	p := &Poseable{}
	p.Name = name
	tree.InitNode(p)
	return p
}

// AsPoseable returns the [Poseable] for this node.
func (p *Poseable) AsPoseable() *Poseable {
	return p
}

// LocalMatrix returns the 4x4 homogeneous transform representing the
// pose in the parent coordinate frame: no scale or shear, translation
// from Pos, intrinsic z-y'-x'' rotation from Orient with angles
// converted to radians regardless of the declared unit.
func (p *Poseable) LocalMatrix() math32.Matrix4 {
	r := p.Orient.InRadians()
	var m math32.Matrix4
	m.SetTransform(p.Pos.Vec(), r.RX, r.RY, r.RZ)
	return m
}

// WorldMatrix returns the 4x4 homogeneous transform representing the
// pose in the frame of the tree root. For a root-to-node chain
// N0 → N1 → ... → Nk with local matrices M0...Mk the result is
// M0 × M1 × ... × Mk: each ancestor's transform is composed in
// root-to-leaf order, which is what lets a node inherit the
// translations and rotations of all of its ancestors. A parentless
// node's world matrix is its local matrix.
func (p *Poseable) WorldMatrix() math32.Matrix4 {
	root, path := p.RootPath()
	m := localMatrixOf(root)
	for _, n := range path {
		lm := localMatrixOf(n)
		m.SetMul(&lm)
	}
	return m
}

// localMatrixOf returns the local matrix of any tree node: identity
// for nodes that carry no pose.
func localMatrixOf(n tree.Node) math32.Matrix4 {
	if po, ok := n.(Poser); ok {
		return po.AsPoseable().LocalMatrix()
	}
	return math32.Identity4()
}

// WorldPos returns the node's origin in the frame of the tree root.
func (p *Poseable) WorldPos() math32.Vector3 {
	m := p.WorldMatrix()
	return m.Pos()
}
