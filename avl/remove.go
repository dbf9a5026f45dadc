// remove.go

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

// Remove deletes the entry stored under key and reports whether it was
// present. Removing an absent key is a no-op.
//
// Unlike insertion, a removal can shrink a subtree by enough that several
// ancestors along the path need a rotation, so every ancestor is rebalanced
// on the way back up.
func (t *Tree[V]) Remove(key string) bool {
	var removed bool
	t.root = t.remove(t.root, key, &removed)
	if removed {
		t.size--
	}
	return removed
}

func (t *Tree[V]) remove(n *node[V], key string, removed *bool) *node[V] {
	if n == nil {
		return nil // Key not found
	}

	if key < n.key {
		n.left = t.remove(n.left, key, removed)
	} else if key > n.key {
		n.right = t.remove(n.right, key, removed)
	} else {
		*removed = true

		// Leaf
		if n.left == nil && n.right == nil {
			return nil
		}
		// One child: promote it
		if n.left == nil {
			return n.right
		}
		if n.right == nil {
			return n.left
		}
		// Two children: adopt the in-order successor's entry, then remove
		// the successor from the right subtree.
		succ := minNode(n.right)
		n.key = succ.key
		n.value = succ.value
		var innerRemoved bool
		n.right = t.remove(n.right, succ.key, &innerRemoved)
	}

	updateHeight(n)
	return rebalance(n)
}

func minNode[V any](n *node[V]) *node[V] {
	for n.left != nil {
		n = n.left
	}
	return n
}
