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
	"bufio"
	"io"
	"strings"
)

// LineScanner reads a catalog file line by line, tracking 1-based line
// numbers and stripping trailing carriage returns so files saved on Windows
// parse the same as files saved on Unix.
type LineScanner struct {
	scanner *bufio.Scanner
	line    int
	text    string
}

// NewLineScanner wraps a reader for line-oriented catalog scanning
func NewLineScanner(r io.Reader) *LineScanner {
	scanner := bufio.NewScanner(r)
	// Increase buffer size for better performance with large catalog files
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)
	return &LineScanner{scanner: scanner}
}

// Scan advances to the next line, returning false at EOF or on error
func (ls *LineScanner) Scan() bool {
	if !ls.scanner.Scan() {
		return false
	}
	ls.line++
	ls.text = strings.TrimSuffix(ls.scanner.Text(), "\r")
	return true
}

// Text returns the current line without its line ending
func (ls *LineScanner) Text() string { return ls.text }

// Line returns the 1-based number of the current line
func (ls *LineScanner) Line() int { return ls.line }

// Err returns the first error hit while scanning, if any
func (ls *LineScanner) Err() error { return ls.scanner.Err() }

// IsSkippable reports whether a line carries no record. Blank lines and
// '#' comments are ignored by every catalog format.
func IsSkippable(line string) bool {
	trimmed := strings.TrimSpace(line)
	return trimmed == "" || strings.HasPrefix(trimmed, "#")
}
