// check.go

/**
 * Copyright (C) Naren Yellavula - All Rights Reserved
 *
 * This source code is protected under international copyright law.  All rights
 * reserved and protected by the copyright holders.
 * This file is confidential and only available to authorized individuals with the
 * permission of the copyright holders.  If you encounter this file and do not have
 * permission, please contact the copyright holders and delete this file.
 */

package avl

import (
	"github.com/pkg/errors"
)

// Violation classes reported by Check. Any of these indicates a defect in
// this package, never a condition external input can trigger.
var (
	ErrOrderViolation = errors.New("avl: keys out of order")
	ErrHeightMismatch = errors.New("avl: cached height differs from recomputed height")
	ErrImbalance      = errors.New("avl: balance factor out of range")
	ErrSizeMismatch   = errors.New("avl: entry count differs from node count")
)

// Check verifies every structural invariant by independent recomputation:
// strict ascending key order, cached heights, |balance factor| <= 1 at every
// node, and the entry count. It returns nil for a healthy tree.
func (t *Tree[V]) Check() error {
	counted := 0
	var prev *string

	if _, err := checkNode(t.root, &prev, &counted); err != nil {
		return err
	}
	if counted != t.size {
		return errors.Wrapf(ErrSizeMismatch, "have %d nodes, Len reports %d", counted, t.size)
	}
	return nil
}

// checkNode returns the recomputed height of the subtree rooted at n.
// prev tracks the previously visited key of the in-order walk, which makes
// strict ascending order imply both BST ordering and key uniqueness.
func checkNode[V any](n *node[V], prev **string, counted *int) (int, error) {
	if n == nil {
		return 0, nil
	}

	leftHeight, err := checkNode(n.left, prev, counted)
	if err != nil {
		return 0, err
	}

	if *prev != nil && **prev >= n.key {
		return 0, errors.Wrapf(ErrOrderViolation, "%q follows %q", n.key, **prev)
	}
	key := n.key
	*prev = &key
	*counted++

	rightHeight, err := checkNode(n.right, prev, counted)
	if err != nil {
		return 0, err
	}

	want := max(leftHeight, rightHeight) + 1
	if n.height != want {
		return 0, errors.Wrapf(ErrHeightMismatch, "node %q has %d, want %d", n.key, n.height, want)
	}

	if bf := leftHeight - rightHeight; bf < -1 || bf > 1 {
		return 0, errors.Wrapf(ErrImbalance, "node %q has balance factor %d", n.key, bf)
	}

	return want, nil
}
