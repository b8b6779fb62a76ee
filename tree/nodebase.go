// Copyright 2026 The Cabinetry Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import (
	"log/slog"
	"reflect"
	"slices"

	"github.com/jinzhu/copier"
)

// NodeBase implements the [Node] interface and provides the core tree
// functionality. All higher-level node types must embed NodeBase.
//
// A node appears in at most one parent's children list, and the parent
// field is a non-owning back-reference used only for upward walks, so
// trees are acyclic by construction: the only way to attach an owned
// node elsewhere is [MoveToParent], which removes it from the old
// parent first.
type NodeBase struct {

	// Name is the name of this node, which is typically unique relative
	// to other children of the same parent. It is not required to be
	// globally unique.
	Name string `copier:"-"`

	// This is the value of this node as its true underlying type, set
	// by [InitNode]. It allows methods defined on NodeBase to reach
	// methods and capabilities defined on higher-level types.
	This Node `copier:"-"`

	// Parent is the parent of this node. It is set automatically when
	// the node is added as a child, and cleared when it is removed.
	// Do not set this field directly.
	Parent Node `copier:"-"`

	// Children is the ordered list of children of this node, all of
	// which it exclusively owns. Use the child management methods
	// rather than modifying the list directly.
	Children []Node `copier:"-"`
}

// AsTree returns the [NodeBase] for this node.
func (n *NodeBase) AsTree() *NodeBase {
	return n
}

// this returns the node as its true underlying type, initializing the
// This field to the plain NodeBase if it was never set.
func (n *NodeBase) this() Node {
	if n.This == nil {
		n.This = n
	}
	return n.This
}

// String implements the [fmt.Stringer] interface by returning
// the path of the node.
func (n *NodeBase) String() string {
	if n == nil {
		return "nil"
	}
	return n.Path()
}

// Path returns the path to this node from the tree root, using node
// names separated by / delimiters.
func (n *NodeBase) Path() string {
	if n.Parent != nil {
		return n.Parent.AsTree().Path() + "/" + n.Name
	}
	return "/" + n.Name
}

// PathFrom returns the path to this node from the given parent node,
// excluding the name of the parent and the leading slash.
func (n *NodeBase) PathFrom(parent Node) string {
	if n.This == parent {
		return ""
	}
	if n.Parent == nil || n.Parent == parent {
		return n.Name
	}
	return n.Parent.AsTree().PathFrom(parent) + "/" + n.Name
}

// HasChildren returns whether this node has any children.
func (n *NodeBase) HasChildren() bool {
	return len(n.Children) > 0
}

// NumChildren returns the number of children this node has.
func (n *NodeBase) NumChildren() int {
	return len(n.Children)
}

// Child returns the child of this node at the given index,
// or nil if the index is out of range.
func (n *NodeBase) Child(i int) Node {
	if i < 0 || i >= len(n.Children) {
		return nil
	}
	return n.Children[i]
}

// ChildByName returns the first child with the given name,
// or nil if there is none.
func (n *NodeBase) ChildByName(name string) Node {
	return n.Child(IndexByName(n.Children, name))
}

// AddChild adds the given child at the end of the children list and
// sets its parent reference. It fails with [ErrAlreadyParented] if the
// child is already owned by a parent, including this node itself; use
// [MoveToParent] to reparent.
func (n *NodeBase) AddChild(kid Node) error {
	if kid == nil {
		return ErrNilChild
	}
	InitNode(kid)
	kb := kid.AsTree()
	if kb.Parent != nil {
		return ErrAlreadyParented
	}
	if n.isAncestor(kid) {
		return ErrAncestor
	}
	n.Children = append(n.Children, kid)
	kb.Parent = n.this()
	return nil
}

// InsertChild adds the given child at the given position in the
// children list, with the same ownership rules as [NodeBase.AddChild].
func (n *NodeBase) InsertChild(kid Node, index int) error {
	if kid == nil {
		return ErrNilChild
	}
	InitNode(kid)
	kb := kid.AsTree()
	if kb.Parent != nil {
		return ErrAlreadyParented
	}
	if n.isAncestor(kid) {
		return ErrAncestor
	}
	n.Children = slices.Insert(n.Children, index, kid)
	kb.Parent = n.this()
	return nil
}

// isAncestor reports whether the given node is this node or one of its
// ancestors. Attaching such a node as a child would create a cycle.
func (n *NodeBase) isAncestor(kid Node) bool {
	found := false
	n.WalkUp(func(k Node) bool {
		if k == kid {
			found = true
			return Break
		}
		return Continue
	})
	return found
}

// RemoveChild removes the given child from the children list and
// clears its parent reference. It fails with [ErrNotChild] if the node
// is not among the children.
func (n *NodeBase) RemoveChild(kid Node) error {
	idx := IndexOf(n.Children, kid)
	if idx < 0 {
		return ErrNotChild
	}
	n.Children = slices.Delete(n.Children, idx, idx+1)
	kid.AsTree().Parent = nil
	return nil
}

// ClearChildren removes all children, clearing each child's parent
// reference so the orphaned subtrees remain internally consistent.
func (n *NodeBase) ClearChildren() {
	for _, kid := range n.Children {
		if kid != nil {
			kid.AsTree().Parent = nil
		}
	}
	n.Children = n.Children[:0] // preserves capacity
}

// Root returns the root of the tree this node is in, walking parent
// links until a node with no parent is found. A parentless node is its
// own root.
func (n *NodeBase) Root() Node {
	root, _ := n.RootPath()
	return root
}

// RootPath returns the root of the tree along with the ordered list of
// nodes from the immediate child of the root down to this node: the
// root is excluded and this node is included. For a parentless node
// the path is empty. It runs in O(depth).
func (n *NodeBase) RootPath() (Node, []Node) {
	cur := n.this()
	var path []Node
	for {
		cb := cur.AsTree()
		if cb.Parent == nil {
			slices.Reverse(path)
			return cur, path
		}
		path = append(path, cur)
		cur = cb.Parent
	}
}

// WalkUp calls the given function on this node and all of its parents,
// stopping if the function returns [Break]. It returns whether the
// walk finished without being aborted.
func (n *NodeBase) WalkUp(fun func(n Node) bool) bool {
	cur := n.this()
	for {
		if !fun(cur) {
			return false
		}
		parent := cur.AsTree().Parent
		if parent == nil || parent == cur { // prevent loops
			return true
		}
		cur = parent
	}
}

// WalkDown calls the given function on this node and all of its
// children in depth-first pre-order. It stops walking the current
// branch if the function returns [Break].
func (n *NodeBase) WalkDown(fun func(n Node) bool) {
	walkDown(n.this(), fun)
}

func walkDown(cur Node, fun func(n Node) bool) {
	if !fun(cur) {
		return
	}
	for _, kid := range cur.AsTree().Children {
		if kid != nil {
			walkDown(kid, fun)
		}
	}
}

// WalkDownBreadth calls the given function on this node and all of its
// children in breadth-first order, visiting each node exactly once.
// It stops walking the current branch if the function returns [Break].
func (n *NodeBase) WalkDownBreadth(fun func(n Node) bool) {
	queue := []Node{n.this()}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if !fun(cur) {
			continue
		}
		for _, kid := range cur.AsTree().Children {
			if kid != nil {
				queue = append(queue, kid)
			}
		}
	}
}

// NewInstance returns a new, empty instance of this node's
// underlying type.
func (n *NodeBase) NewInstance() Node {
	return reflect.New(reflect.TypeOf(n.This).Elem()).Interface().(Node)
}

// Clone returns a deep copy of the tree from this node down. Fields on
// higher-level types are copied with [copier]; names are preserved and
// children are cloned recursively.
func (n *NodeBase) Clone() (Node, error) {
	nc := n.NewInstance()
	InitNode(nc)
	ncb := nc.AsTree()
	ncb.Name = n.Name
	err := copier.CopyWithOption(nc, n.This, copier.Option{CaseSensitive: true, DeepCopy: true})
	if err != nil {
		slog.Error("tree.NodeBase.Clone: field copy failed", "node", n.Path(), "err", err)
		return nil, err
	}
	for _, kid := range n.Children {
		kc, err := kid.AsTree().Clone()
		if err != nil {
			return nil, err
		}
		if err := ncb.AddChild(kc); err != nil {
			return nil, err
		}
	}
	return nc, nil
}
