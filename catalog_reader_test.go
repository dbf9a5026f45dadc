package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/afero"
)

const sampleCatalog = `# ABCU Computer Science catalog
CSCI100,Introduction to Computer Science
CSCI101,Introduction to Programming in C++,CSCI100
CSCI200,Data Structures,CSCI101
MATH201,Discrete Mathematics

CSCI300,Introduction to Algorithms,CSCI200,MATH201
`

func newTestReader(fs afero.Fs) (*CatalogReader, *bytes.Buffer) {
	r := NewCatalogReader(fs)
	warn := &bytes.Buffer{}
	r.Warn(warn)
	r.Quiet(true)
	return r, warn
}

func TestLoadCatalog(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "courses.csv", []byte(sampleCatalog), 0644); err != nil {
		t.Fatal(err)
	}

	r, warn := newTestReader(fs)
	store, summary, err := r.Load("courses.csv", "")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if summary.Added != 5 || summary.Skipped != 0 {
		t.Errorf("Expected 5 added and 0 skipped, got %d/%d", summary.Added, summary.Skipped)
	}
	if summary.Format != "csv" {
		t.Errorf("Expected csv format, got %s", summary.Format)
	}
	if store.Len() != 5 {
		t.Errorf("Expected 5 courses in store, got %d", store.Len())
	}
	if warn.Len() != 0 {
		t.Errorf("Expected no warnings, got: %s", warn.String())
	}

	course, ok := store.Find("CSCI300")
	if !ok {
		t.Fatal("Expected to find CSCI300")
	}
	if course.Title != "Introduction to Algorithms" {
		t.Errorf("Wrong title: %s", course.Title)
	}
	if len(course.Prerequisites) != 2 || course.Prerequisites[0] != "CSCI200" || course.Prerequisites[1] != "MATH201" {
		t.Errorf("Wrong prerequisites: %v", course.Prerequisites)
	}
	// Comment on line 1, blank on line 6, so CSCI300 sits on line 7
	if course.Line != 7 {
		t.Errorf("Expected CSCI300 on line 7, got %d", course.Line)
	}

	want := []string{"CSCI100", "CSCI101", "CSCI200", "CSCI300", "MATH201"}
	got := store.Keys()
	if len(got) != len(want) {
		t.Fatalf("Expected %d keys, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Key %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}

func TestLoadCatalogWarnsAndSkips(t *testing.T) {
	content := "CSCI100,Introduction to Computer Science\r\n" +
		"BADLINE\r\n" +
		"csci100,Shadowed Duplicate\r\n" +
		"CSCI200,Data Structures,CSCI100\r\n"

	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "courses.csv", []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	r, warn := newTestReader(fs)
	store, summary, err := r.Load("courses.csv", "")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if summary.Added != 2 || summary.Skipped != 2 {
		t.Errorf("Expected 2 added and 2 skipped, got %d/%d", summary.Added, summary.Skipped)
	}

	warnings := warn.String()
	if !strings.Contains(warnings, "WARN (line 2): malformed line") {
		t.Errorf("Expected malformed-line warning, got: %s", warnings)
	}
	if !strings.Contains(warnings, "WARN (line 3): duplicate course number 'CSCI100' (first defined on line 1)") {
		t.Errorf("Expected duplicate warning, got: %s", warnings)
	}

	// First record wins over the in-file duplicate
	course, ok := store.Find("CSCI100")
	if !ok {
		t.Fatal("Expected to find CSCI100")
	}
	if course.Title != "Introduction to Computer Science" {
		t.Errorf("Duplicate should not overwrite, got title: %s", course.Title)
	}
}

func TestLoadCatalogDetectsPipes(t *testing.T) {
	fs := afero.NewMemMapFs()
	content := "CSCI100|Introduction to Computer Science\nCSCI200|Data Structures|CSCI100\n"
	if err := afero.WriteFile(fs, "courses.txt", []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	r, _ := newTestReader(fs)
	store, summary, err := r.Load("courses.txt", "")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if summary.Format != "psv" {
		t.Errorf("Expected psv format, got %s", summary.Format)
	}
	if store.Len() != 2 {
		t.Errorf("Expected 2 courses, got %d", store.Len())
	}
}

func TestLoadCatalogForcedFormat(t *testing.T) {
	fs := afero.NewMemMapFs()
	content := "CSCI100\tIntroduction to Computer Science\n"
	if err := afero.WriteFile(fs, "courses.dat", []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	r, _ := newTestReader(fs)
	_, summary, err := r.Load("courses.dat", "tsv")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if summary.Format != "tsv" {
		t.Errorf("Expected tsv format, got %s", summary.Format)
	}

	_, _, err = r.Load("courses.dat", "xml")
	if err == nil || !strings.Contains(err.Error(), "unknown catalog format") {
		t.Errorf("Expected unknown-format error, got: %v", err)
	}
}

func TestLoadCatalogMissingFile(t *testing.T) {
	r, _ := newTestReader(afero.NewMemMapFs())
	_, _, err := r.Load("nope.csv", "")
	if err == nil || !strings.Contains(err.Error(), "could not open file 'nope.csv'") {
		t.Errorf("Expected open error, got: %v", err)
	}
}

func TestLoadCatalogNoValidRecords(t *testing.T) {
	fs := afero.NewMemMapFs()
	content := "# nothing but comments\n\n# and blanks\n"
	if err := afero.WriteFile(fs, "courses.csv", []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	r, _ := newTestReader(fs)
	_, _, err := r.Load("courses.csv", "")
	if !errors.Is(err, ErrNoValidCourses) {
		t.Errorf("Expected ErrNoValidCourses, got: %v", err)
	}
}

func TestLoadSummaryString(t *testing.T) {
	s := LoadSummary{Path: "courses.csv", Added: 5}
	if got := s.String(); got != "Loaded 5 courses from 'courses.csv'." {
		t.Errorf("Unexpected summary: %s", got)
	}

	s.Skipped = 2
	if got := s.String(); got != "Loaded 5 courses (2 skipped due to errors) from 'courses.csv'." {
		t.Errorf("Unexpected summary: %s", got)
	}
}
