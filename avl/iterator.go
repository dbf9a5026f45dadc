// iterator.go

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

// Ascend visits every entry in ascending key order and calls fn for each.
// Traversal stops early when fn returns false. The store knows nothing about
// what the consumer does with an entry.
func (t *Tree[V]) Ascend(fn func(key string, value V) bool) {
	ascend(t.root, fn)
}

func ascend[V any](n *node[V], fn func(key string, value V) bool) bool {
	if n == nil {
		return true
	}
	if !ascend(n.left, fn) {
		return false
	}
	if !fn(n.key, n.value) {
		return false
	}
	return ascend(n.right, fn)
}

// Keys returns every key in ascending order.
func (t *Tree[V]) Keys() []string {
	keys := make([]string, 0, t.size)
	t.Ascend(func(key string, _ V) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

// Iterator walks the tree in ascending key order one entry at a time. It
// keeps an explicit stack of the nodes on the path to the current entry, so
// traversal is lazy: no entry past the last Next call is visited.
//
// An Iterator reads the tree it came from; mutating the tree mid-iteration
// invalidates it. A fresh call to Tree.Iterator restarts the same sequence
// when the tree has not changed.
type Iterator[V any] struct {
	stack []*node[V]
}

// Iterator returns a new in-order iterator positioned before the first entry.
func (t *Tree[V]) Iterator() *Iterator[V] {
	it := &Iterator[V]{stack: make([]*node[V], 0, height(t.root))}
	it.descendLeft(t.root)
	return it
}

func (it *Iterator[V]) descendLeft(n *node[V]) {
	for n != nil {
		it.stack = append(it.stack, n)
		n = n.left
	}
}

// Next returns the next entry in ascending key order. The third result is
// false once the sequence is exhausted.
func (it *Iterator[V]) Next() (string, V, bool) {
	if len(it.stack) == 0 {
		var zero V
		return "", zero, false
	}

	n := it.stack[len(it.stack)-1]
	it.stack = it.stack[:len(it.stack)-1]
	it.descendLeft(n.right)

	return n.key, n.value, true
}
