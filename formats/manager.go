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

package formats

import (
	"sort"
	"strings"
)

// Manager picks the parsing format for a catalog file
type Manager struct {
	formats []Format
}

// NewManager creates a new format manager with all built-in formats
func NewManager() *Manager {
	m := &Manager{}

	// Register formats in order of preference
	// CSV first: it is what course catalogs are exported as almost everywhere
	m.RegisterFormat(&CSVFormat{})
	m.RegisterFormat(&TSVFormat{})
	m.RegisterFormat(&PSVFormat{})

	return m
}

// RegisterFormat registers an additional catalog format
func (m *Manager) RegisterFormat(f Format) {
	m.formats = append(m.formats, f)
}

// ByName returns the registered format with the given name, case-insensitively
func (m *Manager) ByName(name string) (Format, bool) {
	for _, f := range m.formats {
		if strings.EqualFold(f.Name(), name) {
			return f, true
		}
	}
	return nil, false
}

// Detect returns the best format for a file, judging first by its path and
// then by a sample of its content. Formats are consulted in priority order.
// When nothing matches, CSV is assumed so files with odd extensions still
// get a sensible parse.
func (m *Manager) Detect(path string, sample []byte) Format {
	candidates := make([]Format, len(m.formats))
	copy(candidates, m.formats)
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Priority() < candidates[j].Priority()
	})

	for _, f := range candidates {
		if f.Detect(path, sample) {
			return f
		}
	}

	return &CSVFormat{}
}

// FirstDataLine returns the first line of sample that holds a record,
// skipping blanks and comments. Detection sniffs this line rather than the
// whole sample so a commented header cannot fool it.
func FirstDataLine(sample []byte) string {
	for _, line := range strings.Split(string(sample), "\n") {
		line = strings.TrimSuffix(line, "\r")
		if !IsSkippable(line) {
			return line
		}
	}
	return ""
}

// countUnquoted counts occurrences of delim outside double-quoted stretches.
func countUnquoted(line string, delim rune) int {
	n := 0
	inQuotes := false
	for _, c := range line {
		switch {
		case c == '"':
			inQuotes = !inQuotes
		case c == delim && !inQuotes:
			n++
		}
	}
	return n
}
