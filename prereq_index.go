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

package main

import (
	"hash/fnv"
	"sort"

	"github.com/willf/bloom"

	"github.com/cybrota/advisor/avl"
)

const (
	CountMinWidth = 2048 // Width of Count-Min Sketch
	CountMinDepth = 4    // Depth of Count-Min Sketch

	// Bloom filter sized well past any real department catalog
	BloomFilterSize   = 16384
	BloomFilterHashes = 5
)

// CountMinSketch approximates how often an item was counted, within a small
// overestimate. Fixed-size, so memory stays flat however big the catalog is.
type CountMinSketch struct {
	table [CountMinDepth][CountMinWidth]int32
}

func NewCountMinSketch() *CountMinSketch {
	return &CountMinSketch{}
}

func (cms *CountMinSketch) hash(item string, row int) uint32 {
	h := fnv.New32a()
	h.Write([]byte(item))
	h.Write([]byte{byte(row)}) // Salt with row number
	return h.Sum32() % CountMinWidth
}

func (cms *CountMinSketch) Add(item string, count int32) {
	for i := 0; i < CountMinDepth; i++ {
		pos := cms.hash(item, i)
		cms.table[i][pos] += count
	}
}

func (cms *CountMinSketch) Estimate(item string) int32 {
	min := cms.table[0][cms.hash(item, 0)]
	for i := 1; i < CountMinDepth; i++ {
		pos := cms.hash(item, i)
		if cms.table[i][pos] < min {
			min = cms.table[i][pos]
		}
	}
	return min
}

// PrereqIndex is the reverse view of a loaded catalog: for every course
// number, which courses list it as a prerequisite. The bloom filter screens
// membership probes before the exact set is consulted; the sketch keeps
// approximate demand counts for ranking.
type PrereqIndex struct {
	known      *bloom.BloomFilter
	courses    map[string]struct{}
	demand     *CountMinSketch
	requiredBy map[string][]string
	edges      int
}

// BuildPrereqIndex walks the store once and indexes every prerequisite edge.
func BuildPrereqIndex(store *avl.Tree[Course]) *PrereqIndex {
	pi := &PrereqIndex{
		known:      bloom.New(BloomFilterSize, BloomFilterHashes),
		courses:    make(map[string]struct{}, store.Len()),
		demand:     NewCountMinSketch(),
		requiredBy: make(map[string][]string),
	}

	store.Ascend(func(key string, c Course) bool {
		pi.known.AddString(key)
		pi.courses[key] = struct{}{}
		for _, p := range c.Prerequisites {
			// Courses arrive in key order, so each requiredBy list is
			// already sorted.
			pi.requiredBy[p] = append(pi.requiredBy[p], c.Number)
			pi.demand.Add(p, 1)
			pi.edges++
		}
		return true
	})

	return pi
}

// MaybeKnown is the probabilistic fast path: false means the course is
// definitely not in the catalog, true means it probably is.
func (pi *PrereqIndex) MaybeKnown(number string) bool {
	return pi.known.TestString(number)
}

// Known reports exact catalog membership, screening with the bloom filter
// first so misses stay cheap.
func (pi *PrereqIndex) Known(number string) bool {
	if !pi.known.TestString(number) {
		return false
	}
	_, ok := pi.courses[number]
	return ok
}

// RequiredBy returns the course numbers that list number as a prerequisite,
// in ascending order.
func (pi *PrereqIndex) RequiredBy(number string) []string {
	return pi.requiredBy[number]
}

// RequiredByCount returns the sketch estimate of how many courses require
// number. May overestimate, never underestimates.
func (pi *PrereqIndex) RequiredByCount(number string) int32 {
	return pi.demand.Estimate(number)
}

// UnknownPrereqs returns the prerequisites of c that are not in the catalog
func (pi *PrereqIndex) UnknownPrereqs(c Course) []string {
	var unknown []string
	for _, p := range c.Prerequisites {
		if !pi.Known(p) {
			unknown = append(unknown, p)
		}
	}
	return unknown
}

// Edges returns the total number of prerequisite references in the catalog
func (pi *PrereqIndex) Edges() int {
	return pi.edges
}

// Demand pairs a course number with how many courses require it
type Demand struct {
	Number    string
	Count     int
	Estimated int32
}

// TopRequired ranks courses by how many other courses require them, most
// demanded first, ties broken alphabetically. Returns at most n entries.
func (pi *PrereqIndex) TopRequired(n int) []Demand {
	ranked := make([]Demand, 0, len(pi.requiredBy))
	for number, dependents := range pi.requiredBy {
		ranked = append(ranked, Demand{
			Number:    number,
			Count:     len(dependents),
			Estimated: pi.demand.Estimate(number),
		})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Number < ranked[j].Number
	})

	if n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}
