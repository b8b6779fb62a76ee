// Copyright 2026 The Cabinetry Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/woodshop/cabinetry/tree"
)

func newNamed(name string) *NodeBase {
	n := &NodeBase{Name: name}
	InitNode(n)
	return n
}

// panel is a minimal higher-level node type carrying its own fields,
// for exercising instancing and cloning through the This dispatch.
type panel struct {
	NodeBase
	Width  float32
	Height float32
	Tags   []string
}

func newPanel(name string, w, h float32) *panel {
	p := &panel{Width: w, Height: h}
	p.Name = name
	InitNode(p)
	return p
}

func TestAddChild(t *testing.T) {
	parent := newNamed("parent")
	child := newNamed("child")
	require.NoError(t, parent.AddChild(child))
	assert.Len(t, parent.Children, 1)
	assert.Equal(t, Node(parent), child.Parent)
	assert.Equal(t, "/parent/child", child.Path())
}

func TestAddChildAlreadyParented(t *testing.T) {
	a := newNamed("a")
	b := newNamed("b")
	child := newNamed("child")
	require.NoError(t, a.AddChild(child))
	err := b.AddChild(child)
	assert.ErrorIs(t, err, ErrAlreadyParented)
	// Ownership unchanged.
	assert.Len(t, a.Children, 1)
	assert.Empty(t, b.Children)
	assert.Equal(t, Node(a), child.Parent)
}

func TestAddChildSelf(t *testing.T) {
	a := newNamed("a")
	b := newNamed("b")
	require.NoError(t, a.AddChild(b))
	// A parented node cannot become its own child.
	assert.ErrorIs(t, b.AddChild(b), ErrAlreadyParented)
}

func TestAddChildNil(t *testing.T) {
	a := newNamed("a")
	assert.ErrorIs(t, a.AddChild(nil), ErrNilChild)
}

func TestMoveToParent(t *testing.T) {
	a := newNamed("a")
	b := newNamed("b")
	child := newNamed("child")
	require.NoError(t, a.AddChild(child))
	require.NoError(t, MoveToParent(child, b))
	assert.Empty(t, a.Children)
	assert.Len(t, b.Children, 1)
	assert.Equal(t, Node(b), child.Parent)
}

func TestRemoveChild(t *testing.T) {
	parent := newNamed("parent")
	child := newNamed("child")
	require.NoError(t, parent.AddChild(child))
	require.NoError(t, parent.RemoveChild(child))
	assert.Empty(t, parent.Children)
	assert.Nil(t, child.Parent)

	assert.ErrorIs(t, parent.RemoveChild(child), ErrNotChild)
}

func TestClearChildren(t *testing.T) {
	parent := newNamed("parent")
	kids := []*NodeBase{newNamed("a"), newNamed("b"), newNamed("c")}
	for _, k := range kids {
		require.NoError(t, parent.AddChild(k))
	}
	parent.ClearChildren()
	assert.Empty(t, parent.Children)
	for _, k := range kids {
		assert.Nil(t, k.Parent)
	}
}

func TestRootPath(t *testing.T) {
	root := newNamed("root")
	n1 := newNamed("n1")
	n2 := newNamed("n2")
	n3 := newNamed("n3")
	require.NoError(t, root.AddChild(n1))
	require.NoError(t, n1.AddChild(n2))
	require.NoError(t, n2.AddChild(n3))

	r, path := n3.RootPath()
	assert.Equal(t, Node(root), r)
	require.Len(t, path, 3)
	assert.Equal(t, Node(n1), path[0])
	assert.Equal(t, Node(n2), path[1])
	assert.Equal(t, Node(n3), path[2])

	// A parentless node is its own root with an empty path.
	r, path = root.RootPath()
	assert.Equal(t, Node(root), r)
	assert.Empty(t, path)
}

func TestAcyclic(t *testing.T) {
	// After arbitrary add/remove/move sequences, every upward walk
	// terminates: no node is its own ancestor.
	root := newNamed("root")
	a := newNamed("a")
	b := newNamed("b")
	c := newNamed("c")
	require.NoError(t, root.AddChild(a))
	require.NoError(t, a.AddChild(b))
	require.NoError(t, b.AddChild(c))
	require.NoError(t, MoveToParent(b, root))
	require.NoError(t, MoveToParent(c, a))
	// The unowned root is still an ancestor of a, so this would cycle.
	assert.ErrorIs(t, a.AddChild(root), ErrAncestor)

	for _, n := range []*NodeBase{root, a, b, c} {
		steps := 0
		n.WalkUp(func(k Node) bool {
			steps++
			require.LessOrEqual(t, steps, 4)
			return Continue
		})
	}
}

func TestWalkDownBreadth(t *testing.T) {
	root := newNamed("root")
	a := newNamed("a")
	b := newNamed("b")
	a1 := newNamed("a1")
	require.NoError(t, root.AddChild(a))
	require.NoError(t, root.AddChild(b))
	require.NoError(t, a.AddChild(a1))

	var order []string
	root.WalkDownBreadth(func(n Node) bool {
		order = append(order, n.AsTree().Name)
		return Continue
	})
	assert.Equal(t, []string{"root", "a", "b", "a1"}, order)
}

func TestWalkDown(t *testing.T) {
	root := newNamed("root")
	a := newNamed("a")
	b := newNamed("b")
	a1 := newNamed("a1")
	require.NoError(t, root.AddChild(a))
	require.NoError(t, root.AddChild(b))
	require.NoError(t, a.AddChild(a1))

	var order []string
	root.WalkDown(func(n Node) bool {
		order = append(order, n.AsTree().Name)
		return Continue
	})
	assert.Equal(t, []string{"root", "a", "a1", "b"}, order)

	// Break prunes the branch below a.
	order = nil
	root.WalkDown(func(n Node) bool {
		order = append(order, n.AsTree().Name)
		return n.AsTree().Name != "a"
	})
	assert.Equal(t, []string{"root", "a", "b"}, order)
}

func TestInsertChild(t *testing.T) {
	parent := newNamed("parent")
	require.NoError(t, parent.AddChild(newNamed("a")))
	require.NoError(t, parent.AddChild(newNamed("c")))
	b := newNamed("b")
	require.NoError(t, parent.InsertChild(b, 1))
	require.Len(t, parent.Children, 3)
	assert.Equal(t, Node(b), parent.Child(1))
	assert.Equal(t, Node(parent), b.Parent)

	first := newNamed("first")
	require.NoError(t, parent.InsertChild(first, 0))
	assert.Equal(t, Node(first), parent.Child(0))

	// Same ownership rules as AddChild.
	assert.ErrorIs(t, parent.InsertChild(nil, 0), ErrNilChild)
	assert.ErrorIs(t, parent.InsertChild(b, 0), ErrAlreadyParented)
}

func TestPathFrom(t *testing.T) {
	root := newNamed("root")
	a := newNamed("a")
	b := newNamed("b")
	require.NoError(t, root.AddChild(a))
	require.NoError(t, a.AddChild(b))

	assert.Equal(t, "a/b", b.PathFrom(root))
	assert.Equal(t, "b", b.PathFrom(a))
	assert.Equal(t, "", root.PathFrom(root))
}

func TestNewInstance(t *testing.T) {
	p := newPanel("side", 23.25, 30.5)
	inst := p.NewInstance()
	np, ok := inst.(*panel)
	require.True(t, ok)
	// A fresh instance carries none of the original's state.
	assert.Empty(t, np.Name)
	assert.Zero(t, np.Width)
	assert.Empty(t, np.Children)
}

func TestClone(t *testing.T) {
	box := newPanel("box", 36, 34.5)
	box.Tags = []string{"lower"}
	left := newPanel("left_side", 23.25, 30.5)
	right := newPanel("right_side", 23.25, 30.5)
	require.NoError(t, box.AddChild(left))
	require.NoError(t, box.AddChild(right))

	cn, err := box.Clone()
	require.NoError(t, err)
	cb, ok := cn.(*panel)
	require.True(t, ok)

	// Names, fields, and structure carry over.
	assert.Equal(t, "box", cb.Name)
	assert.InDelta(t, 36, cb.Width, 1e-4)
	require.Len(t, cb.Children, 2)
	cl := cb.Child(0).(*panel)
	assert.Equal(t, "left_side", cl.Name)
	assert.InDelta(t, 23.25, cl.Width, 1e-4)
	assert.Equal(t, "/box/left_side", cl.Path())
	assert.Equal(t, Node(cb), cl.Parent)

	// The clone is independent of the original.
	require.NotSame(t, box, cb)
	require.NotSame(t, left, cl)
	box.Width = 48
	box.Tags[0] = "upper"
	left.Name = "renamed"
	assert.InDelta(t, 36, cb.Width, 1e-4)
	assert.Equal(t, []string{"lower"}, cb.Tags)
	assert.Equal(t, "left_side", cl.Name)
}

func TestChildByName(t *testing.T) {
	parent := newNamed("parent")
	require.NoError(t, parent.AddChild(newNamed("a")))
	require.NoError(t, parent.AddChild(newNamed("b")))
	assert.Equal(t, "b", parent.ChildByName("b").AsTree().Name)
	assert.Nil(t, parent.ChildByName("missing"))
}
