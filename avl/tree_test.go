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
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertKeepsInvariantsAfterEveryStep(t *testing.T) {
	sequences := map[string][]string{
		"ascending":  {"A", "B", "C", "D", "E", "F", "G"},
		"descending": {"G", "F", "E", "D", "C", "B", "A"},
		"zigzag":     {"M", "A", "Z", "B", "Y", "C", "X"},
		"courses":    {"CSCI300", "CSCI200", "CSCI100", "MATH201", "CSCI301", "CSCI350", "CSCI400"},
	}

	for name, keys := range sequences {
		t.Run(name, func(t *testing.T) {
			tree := New[int]()
			for i, key := range keys {
				tree.Insert(key, i)
				require.NoError(t, tree.Check(), "after inserting %q", key)
				require.Equal(t, i+1, tree.Len())
			}
		})
	}
}

func TestInsertOverwritesDuplicateKey(t *testing.T) {
	tree := New[string]()
	tree.Insert("CSCI200", "first title")
	tree.Insert("CSCI100", "another")
	tree.Insert("CSCI200", "second title")

	require.Equal(t, 2, tree.Len(), "duplicate insert must not add a node")

	got, ok := tree.Find("CSCI200")
	require.True(t, ok)
	assert.Equal(t, "second title", got, "latest write wins")
	require.NoError(t, tree.Check())
}

func TestFind(t *testing.T) {
	tree := New[int]()
	keys := []string{"CSCI300", "CSCI200", "CSCI100", "MATH201"}
	for i, key := range keys {
		tree.Insert(key, i)
	}

	for i, key := range keys {
		got, ok := tree.Find(key)
		require.True(t, ok, "key %q must be present", key)
		assert.Equal(t, i, got)
	}

	_, ok := tree.Find("CSCI999")
	assert.False(t, ok, "absent key is a normal not-found outcome")
	assert.False(t, tree.Contains("ZZZ999"))
	assert.True(t, tree.Contains("MATH201"))
}

func TestAscendingInsertTriggersSingleLeftRotation(t *testing.T) {
	tree := New[int]()
	for i, key := range []string{"A", "B", "C"} {
		tree.Insert(key, i)
	}

	// A single left rotation must have promoted "B" to the root with "A"
	// and "C" as its children and a balance factor of zero.
	require.NotNil(t, tree.root)
	assert.Equal(t, "B", tree.root.key)
	assert.Equal(t, 0, balanceFactor(tree.root))
	require.NotNil(t, tree.root.left)
	require.NotNil(t, tree.root.right)
	assert.Equal(t, "A", tree.root.left.key)
	assert.Equal(t, "C", tree.root.right.key)
	assert.Equal(t, 2, tree.Height())
	require.NoError(t, tree.Check())
}

func TestDoubleRotations(t *testing.T) {
	cases := []struct {
		name     string
		keys     []string
		wantRoot string
	}{
		{name: "left-right", keys: []string{"C", "A", "B"}, wantRoot: "B"},
		{name: "right-left", keys: []string{"A", "C", "B"}, wantRoot: "B"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tree := New[int]()
			for i, key := range tc.keys {
				tree.Insert(key, i)
			}
			require.Equal(t, tc.wantRoot, tree.root.key)
			assert.Equal(t, 0, balanceFactor(tree.root))
			require.NoError(t, tree.Check())
		})
	}
}

func TestEndToEndCourseScenario(t *testing.T) {
	tree := New[string]()
	tree.Insert("CSCI300", "Introduction to Algorithms")
	tree.Insert("CSCI200", "Data Structures")
	tree.Insert("CSCI100", "Introduction to Computer Science")
	tree.Insert("MATH201", "Discrete Mathematics")

	assert.Equal(t, []string{"CSCI100", "CSCI200", "CSCI300", "MATH201"}, tree.Keys())

	_, ok := tree.Find("CSCI999")
	assert.False(t, ok)

	title, ok := tree.Find("MATH201")
	require.True(t, ok)
	assert.Equal(t, "Discrete Mathematics", title)
}

func TestHeightStaysLogarithmic(t *testing.T) {
	tree := New[int]()
	rng := rand.New(rand.NewSource(42))

	const n = 4096
	for _, i := range rng.Perm(n) {
		tree.Insert(fmt.Sprintf("K%05d", i), i)
	}
	require.Equal(t, n, tree.Len())
	require.NoError(t, tree.Check())

	bound := 1.44*math.Log2(float64(n)+1) + 1
	assert.LessOrEqual(t, float64(tree.Height()), bound,
		"height %d exceeds AVL bound %.2f for %d entries", tree.Height(), bound, n)
}

func TestWorstCaseOrderedInsertHeight(t *testing.T) {
	tree := New[int]()

	const n = 1024
	for i := 0; i < n; i++ {
		tree.Insert(fmt.Sprintf("K%05d", i), i)
	}
	require.NoError(t, tree.Check())

	bound := 1.44*math.Log2(float64(n)+1) + 1
	assert.LessOrEqual(t, float64(tree.Height()), bound)
}

func TestClearEmptiesTheTree(t *testing.T) {
	tree := New[int]()
	for i, key := range []string{"D", "B", "F", "A", "C", "E", "G"} {
		tree.Insert(key, i)
	}

	tree.Clear()

	assert.Equal(t, 0, tree.Len())
	assert.Equal(t, 0, tree.Height())
	assert.Empty(t, tree.Keys())
	_, ok := tree.Find("D")
	assert.False(t, ok)

	// The tree must stay usable after teardown.
	tree.Insert("X", 1)
	assert.Equal(t, 1, tree.Len())
	require.NoError(t, tree.Check())
}

func TestCheckReportsCorruption(t *testing.T) {
	tree := New[int]()
	for i, key := range []string{"B", "A", "C"} {
		tree.Insert(key, i)
	}
	require.NoError(t, tree.Check())

	tree.root.height = 7
	err := tree.Check()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrHeightMismatch)

	tree.root.height = 2
	tree.root.left.key = "Z" // violates ordering
	err = tree.Check()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOrderViolation)
}
