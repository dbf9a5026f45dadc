package main

import (
	"testing"

	"github.com/cybrota/advisor/avl"
)

func buildTestStore() *avl.Tree[Course] {
	courses := []Course{
		{Number: "CSCI100", Title: "Introduction to Computer Science"},
		{Number: "CSCI101", Title: "Introduction to Programming in C++", Prerequisites: []string{"CSCI100"}},
		{Number: "CSCI200", Title: "Data Structures", Prerequisites: []string{"CSCI101"}},
		{Number: "MATH201", Title: "Discrete Mathematics"},
		{Number: "CSCI300", Title: "Introduction to Algorithms", Prerequisites: []string{"CSCI200", "MATH201"}},
		{Number: "CSCI301", Title: "Advanced Programming in C++", Prerequisites: []string{"CSCI101"}},
		{Number: "CSCI400", Title: "Large Software Development", Prerequisites: []string{"CSCI301", "CSCI999"}},
	}

	store := avl.New[Course]()
	for _, c := range courses {
		store.Insert(c.Number, c)
	}
	return store
}

func TestBuildPrereqIndex(t *testing.T) {
	pi := BuildPrereqIndex(buildTestStore())

	if pi.Edges() != 7 {
		t.Errorf("Expected 7 prerequisite edges, got %d", pi.Edges())
	}

	required := pi.RequiredBy("CSCI101")
	if len(required) != 2 || required[0] != "CSCI200" || required[1] != "CSCI301" {
		t.Errorf("Expected CSCI101 required by [CSCI200 CSCI301], got %v", required)
	}

	if got := pi.RequiredBy("CSCI400"); len(got) != 0 {
		t.Errorf("Expected nothing to require CSCI400, got %v", got)
	}
}

func TestPrereqIndexMembership(t *testing.T) {
	pi := BuildPrereqIndex(buildTestStore())

	if !pi.Known("CSCI100") {
		t.Error("Expected CSCI100 to be known")
	}
	// CSCI999 appears as a prerequisite but is not a catalog course
	if pi.Known("CSCI999") {
		t.Error("Expected CSCI999 to be unknown")
	}
	if !pi.MaybeKnown("CSCI100") {
		t.Error("Bloom filter should report CSCI100 as possibly known")
	}
	if pi.MaybeKnown("ZZZZ999") {
		t.Error("Bloom filter should screen out ZZZZ999")
	}
}

func TestRequiredByCount(t *testing.T) {
	pi := BuildPrereqIndex(buildTestStore())

	// At this catalog size the sketch has no collisions, so estimates
	// match the exact counts
	for number, want := range map[string]int32{
		"CSCI100": 1,
		"CSCI101": 2,
		"CSCI200": 1,
		"MATH201": 1,
		"CSCI300": 0,
	} {
		if got := pi.RequiredByCount(number); got != want {
			t.Errorf("RequiredByCount(%s): expected %d, got %d", number, want, got)
		}
	}
}

func TestUnknownPrereqs(t *testing.T) {
	pi := BuildPrereqIndex(buildTestStore())
	store := buildTestStore()

	c, _ := store.Find("CSCI400")
	unknown := pi.UnknownPrereqs(c)
	if len(unknown) != 1 || unknown[0] != "CSCI999" {
		t.Errorf("Expected [CSCI999], got %v", unknown)
	}

	c, _ = store.Find("CSCI300")
	if unknown := pi.UnknownPrereqs(c); len(unknown) != 0 {
		t.Errorf("Expected no unknown prerequisites, got %v", unknown)
	}
}

func TestTopRequired(t *testing.T) {
	pi := BuildPrereqIndex(buildTestStore())

	top := pi.TopRequired(2)
	if len(top) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(top))
	}
	if top[0].Number != "CSCI101" || top[0].Count != 2 {
		t.Errorf("Expected CSCI101 with count 2 first, got %+v", top[0])
	}
	// Count ties break alphabetically
	if top[1].Number != "CSCI100" || top[1].Count != 1 {
		t.Errorf("Expected CSCI100 with count 1 second, got %+v", top[1])
	}

	if all := pi.TopRequired(100); len(all) != 6 {
		t.Errorf("Expected 6 ranked prerequisites, got %d", len(all))
	}
}

func TestCountMinSketch(t *testing.T) {
	cms := NewCountMinSketch()
	cms.Add("CSCI101", 3)
	cms.Add("CSCI101", 2)

	if got := cms.Estimate("CSCI101"); got != 5 {
		t.Errorf("Expected estimate 5, got %d", got)
	}
	if got := cms.Estimate("CSCI999"); got != 0 {
		t.Errorf("Expected estimate 0 for unseen item, got %d", got)
	}
}
