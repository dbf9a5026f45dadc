// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package avl

import (
	"fmt"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAscendVisitsInAscendingOrder(t *testing.T) {
	tree := New[int]()
	rng := rand.New(rand.NewSource(3))

	const n = 256
	want := make([]string, n)
	for i := range want {
		want[i] = fmt.Sprintf("K%03d", i)
	}
	for _, i := range rng.Perm(n) {
		tree.Insert(want[i], i)
	}

	var got []string
	tree.Ascend(func(key string, _ int) bool {
		got = append(got, key)
		return true
	})

	require.Equal(t, want, got)
	assert.True(t, sort.StringsAreSorted(got))
}

func TestAscendStopsWhenConsumerReturnsFalse(t *testing.T) {
	tree := New[int]()
	for i, key := range []string{"D", "B", "F", "A", "C", "E", "G"} {
		tree.Insert(key, i)
	}

	var visited []string
	tree.Ascend(func(key string, _ int) bool {
		visited = append(visited, key)
		return len(visited) < 3
	})

	assert.Equal(t, []string{"A", "B", "C"}, visited)
}

func TestAscendEmptyTree(t *testing.T) {
	tree := New[int]()
	calls := 0
	tree.Ascend(func(string, int) bool {
		calls++
		return true
	})
	assert.Zero(t, calls)
}

func TestIteratorYieldsLazySequence(t *testing.T) {
	tree := New[string]()
	tree.Insert("CSCI300", "Introduction to Algorithms")
	tree.Insert("CSCI200", "Data Structures")
	tree.Insert("CSCI100", "Introduction to Computer Science")
	tree.Insert("MATH201", "Discrete Mathematics")

	it := tree.Iterator()

	key, value, ok := it.Next()
	require.True(t, ok)
	assert.Equal(t, "CSCI100", key)
	assert.Equal(t, "Introduction to Computer Science", value)

	var rest []string
	for {
		key, _, ok := it.Next()
		if !ok {
			break
		}
		rest = append(rest, key)
	}
	assert.Equal(t, []string{"CSCI200", "CSCI300", "MATH201"}, rest)

	// Exhausted iterators keep reporting done.
	_, _, ok = it.Next()
	assert.False(t, ok)
}

func TestIteratorIsRestartable(t *testing.T) {
	tree := New[int]()
	for i, key := range []string{"E", "C", "A", "D", "B"} {
		tree.Insert(key, i)
	}

	drain := func() []string {
		var keys []string
		it := tree.Iterator()
		for {
			key, _, ok := it.Next()
			if !ok {
				return keys
			}
			keys = append(keys, key)
		}
	}

	first := drain()
	second := drain()
	assert.Equal(t, first, second, "a fresh traversal reproduces the same order")
	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, first)
}

func TestIteratorEmptyTree(t *testing.T) {
	it := New[int]().Iterator()
	_, _, ok := it.Next()
	assert.False(t, ok)
}

func TestKeysMatchesIterator(t *testing.T) {
	tree := New[int]()
	rng := rand.New(rand.NewSource(11))
	for _, i := range rng.Perm(64) {
		tree.Insert(fmt.Sprintf("K%02d", i), i)
	}

	var viaIterator []string
	it := tree.Iterator()
	for {
		key, _, ok := it.Next()
		if !ok {
			break
		}
		viaIterator = append(viaIterator, key)
	}

	assert.Equal(t, tree.Keys(), viaIterator)
}
