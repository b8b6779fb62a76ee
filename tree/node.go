// Copyright 2026 The Cabinetry Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tree provides the scene-graph tree underlying all cabinetry
// components: named nodes with one owning parent and an ordered list
// of exclusively owned children.
package tree

import "errors"

// Node is the interface implemented by all tree node types.
// Concrete types embed [NodeBase], which provides the implementation.
type Node interface {
	// AsTree returns the [NodeBase] for this node,
	// giving access to all the base tree functionality.
	AsTree() *NodeBase
}

var (
	// ErrNilChild is returned when a nil node is given as a child.
	ErrNilChild = errors.New("tree: child node is nil")

	// ErrAlreadyParented is returned by [NodeBase.AddChild] when the
	// child already has a parent. A node has exactly one owner; use
	// [MoveToParent] to reparent explicitly.
	ErrAlreadyParented = errors.New("tree: node already has a parent")

	// ErrNotChild is returned when removing a node that is not in the
	// parent's children list.
	ErrNotChild = errors.New("tree: node is not a child of this parent")

	// ErrAncestor is returned when adding a child that is an ancestor
	// of the parent, which would create a cycle.
	ErrAncestor = errors.New("tree: node is an ancestor of this parent")
)

const (
	// Continue can be returned from tree walking functions to continue
	// processing down the tree.
	Continue = true

	// Break can be returned from tree walking functions to stop
	// processing this branch of the tree.
	Break = false
)

// InitNode ensures that the node's This field points at the node's
// true underlying type. It must be called (directly or via AddChild)
// before base methods that need the concrete type are used.
func InitNode(n Node) {
	nb := n.AsTree()
	if nb.This == nil {
		nb.This = n
	}
}

// MoveToParent removes the given node from its current parent, if it
// has one, and adds it at the end of the children of the new parent.
// This is the one sanctioned way to reparent a node; [NodeBase.AddChild]
// fails on a node that is already owned.
func MoveToParent(child, parent Node) error {
	if child == nil {
		return ErrNilChild
	}
	cb := child.AsTree()
	if cb.Parent != nil {
		if err := cb.Parent.AsTree().RemoveChild(child); err != nil {
			return err
		}
	}
	return parent.AsTree().AddChild(child)
}

// IndexOf returns the index of the given node in the given slice,
// or -1 if it is not present.
func IndexOf(children []Node, child Node) int {
	for i, c := range children {
		if c == child {
			return i
		}
	}
	return -1
}

// IndexByName returns the index of the first node with the given name
// in the given slice, or -1 if none is present.
func IndexByName(children []Node, name string) int {
	for i, c := range children {
		if c.AsTree().Name == name {
			return i
		}
	}
	return -1
}
