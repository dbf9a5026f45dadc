// tree.go

/**
 * Copyright (C) Naren Yellavula - All Rights Reserved
 *
 * This source code is protected under international copyright law.  All rights
 * reserved and protected by the copyright holders.
 * This file is confidential and only available to authorized individuals with the
 * permission of the copyright holders.  If you encounter this file and do not have
 * permission, please contact the copyright holders and delete this file.
 */

// Package avl implements a height-balanced binary search tree keyed by
// string, with an opaque payload type per tree.
//
// Keys are compared lexicographically. Inserting a key that is already
// present overwrites the stored value; the tree never holds duplicate keys.
// Every node caches the height of its subtree (a leaf has height 1, an
// absent child height 0) and the difference between sibling subtree heights
// stays within {-1, 0, 1} after every mutation, restored by single or double
// rotations.
//
// A Tree is not safe for concurrent use. A structural mutation must exclude
// every other operation for its duration; rotations transiently break the
// ordering and balance invariants mid-operation.
package avl

type node[V any] struct {
	key    string
	value  V
	height int
	left   *node[V]
	right  *node[V]
}

// Tree is an ordered key-value store. The zero value is not usable; call New.
type Tree[V any] struct {
	root *node[V]
	size int
}

// New returns an empty tree.
func New[V any]() *Tree[V] {
	return &Tree[V]{}
}

// Len returns the number of entries in the tree.
func (t *Tree[V]) Len() int {
	return t.size
}

// Height returns the height of the tree: 0 when empty, 1 for a single node.
func (t *Tree[V]) Height() int {
	return height(t.root)
}

func height[V any](n *node[V]) int {
	if n == nil {
		return 0
	}
	return n.height
}

func updateHeight[V any](n *node[V]) {
	n.height = max(height(n.left), height(n.right)) + 1
}

func balanceFactor[V any](n *node[V]) int {
	if n == nil {
		return 0
	}
	return height(n.left) - height(n.right)
}

// rotateLeft makes the right child the new subtree root and returns it.
// The pivot's left subtree is re-parented onto the rotated-down node.
func rotateLeft[V any](n *node[V]) *node[V] {
	if n == nil || n.right == nil {
		return n
	}

	pivot := n.right
	n.right = pivot.left
	pivot.left = n

	// Child height first: the pivot's height depends on it.
	updateHeight(n)
	updateHeight(pivot)

	return pivot
}

// rotateRight makes the left child the new subtree root and returns it.
func rotateRight[V any](n *node[V]) *node[V] {
	if n == nil || n.left == nil {
		return n
	}

	pivot := n.left
	n.left = pivot.right
	pivot.right = n

	updateHeight(n)
	updateHeight(pivot)

	return pivot
}

// rebalance restores |balance factor| <= 1 at n, assuming both subtrees
// already satisfy the invariant. The case is chosen by the sign of n's
// balance factor and the sign of the heavier child's balance factor.
func rebalance[V any](n *node[V]) *node[V] {
	bf := balanceFactor(n)

	// Left-heavy
	if bf > 1 {
		if balanceFactor(n.left) >= 0 {
			return rotateRight(n)
		}
		// Left-Right case
		n.left = rotateLeft(n.left)
		return rotateRight(n)
	}

	// Right-heavy
	if bf < -1 {
		if balanceFactor(n.right) <= 0 {
			return rotateLeft(n)
		}
		// Right-Left case
		n.right = rotateRight(n.right)
		return rotateLeft(n)
	}

	return n
}

// Insert adds an entry or overwrites the value of an existing one with a
// matching key. Latest write wins; no duplicate nodes are ever created.
func (t *Tree[V]) Insert(key string, value V) {
	t.root = t.insert(t.root, key, value)
}

func (t *Tree[V]) insert(n *node[V], key string, value V) *node[V] {
	if n == nil {
		t.size++
		return &node[V]{key: key, value: value, height: 1}
	}

	if key < n.key {
		n.left = t.insert(n.left, key, value)
	} else if key > n.key {
		n.right = t.insert(n.right, key, value)
	} else {
		// Duplicate key: overwrite in place. No structural change, so no
		// heights move and no rebalancing is needed on the way back up.
		n.value = value
		return n
	}

	updateHeight(n)
	return rebalance(n)
}

// Find returns the value stored under key. The second result reports whether
// the key is present; absence is a normal outcome, not a failure.
func (t *Tree[V]) Find(key string) (V, bool) {
	n := t.root
	for n != nil {
		if key < n.key {
			n = n.left
		} else if key > n.key {
			n = n.right
		} else {
			return n.value, true
		}
	}
	var zero V
	return zero, false
}

// Contains reports whether key is present.
func (t *Tree[V]) Contains(key string) bool {
	_, ok := t.Find(key)
	return ok
}

// Clear releases every node exactly once with a post-order walk, detaching
// children before their parent, and leaves the tree empty.
func (t *Tree[V]) Clear() {
	unlink(t.root)
	t.root = nil
	t.size = 0
}

func unlink[V any](n *node[V]) {
	if n == nil {
		return
	}
	unlink(n.left)
	unlink(n.right)
	n.left = nil
	n.right = nil
}
