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

// Package formats parses delimited course-catalog lines. Each supported file
// format implements the Format interface; the Manager picks the right one
// for a file by extension or by sniffing a sample of its content.
package formats

import (
	"sort"
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

// ErrMalformedLine reports a data line that cannot yield a course record.
var ErrMalformedLine = errors.New("malformed line: requires course number and title")

// Format parses one catalog file format
type Format interface {
	Name() string
	Detect(path string, sample []byte) bool
	Priority() int // Lower number = higher priority
	ParseLine(line string) (Record, error)
}

// Record is one parsed catalog line: a normalized course number, its title,
// and the normalized prerequisite course numbers.
type Record struct {
	Number        string
	Title         string
	Prerequisites []string
}

// buildRecord assembles a Record from raw delimited fields:
//
//	[0]  course number
//	[1]  title
//	[2:] prerequisites (several fields, possibly empty, possibly holding
//	     combined tokens like "CSCI200 | MATH201")
func buildRecord(fields []string) (Record, error) {
	for i, f := range fields {
		fields[i] = stripQuotes(strings.TrimSpace(f))
	}

	if len(fields) < 2 || fields[0] == "" || fields[1] == "" {
		return Record{}, ErrMalformedLine
	}

	rec := Record{
		Number: NormalizeCourseID(fields[0]),
		Title:  fields[1],
	}

	var prereqs []string
	for _, f := range fields[2:] {
		for _, tok := range SplitPrereqTokens(f) {
			prereqs = append(prereqs, NormalizeCourseID(tok))
		}
	}

	// Deduplicate prerequisites
	sort.Strings(prereqs)
	for _, p := range prereqs {
		if n := len(rec.Prerequisites); n == 0 || rec.Prerequisites[n-1] != p {
			rec.Prerequisites = append(rec.Prerequisites, p)
		}
	}

	return rec, nil
}

// NormalizeCourseID trims and uppercases a course number so lookups are
// case-insensitive across the whole program.
func NormalizeCourseID(id string) string {
	return strings.ToUpper(strings.TrimSpace(id))
}

// SplitPrereqTokens splits a prerequisite field on whitespace, '|', ';' and
// ',' so that authors can write one prerequisite per field or combined
// fields like "CSCI200 | MATH201". Empty tokens are dropped.
func SplitPrereqTokens(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == '|' || r == ';' || r == ','
	})
}

// stripQuotes removes one pair of surrounding double quotes, if present.
func stripQuotes(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}

// splitQuoted splits a line on delim, honoring double-quoted fields. A
// doubled quote inside a quoted field is an escaped literal quote.
func splitQuoted(line string, delim rune) []string {
	var fields []string
	var field strings.Builder
	inQuotes := false

	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		c := runes[i]
		switch {
		case c == '"':
			if inQuotes && i+1 < len(runes) && runes[i+1] == '"' {
				field.WriteRune('"') // Escaped quote within quoted field
				i++
			} else {
				inQuotes = !inQuotes
			}
		case c == delim && !inQuotes:
			fields = append(fields, field.String())
			field.Reset()
		default:
			field.WriteRune(c)
		}
	}
	fields = append(fields, field.String())
	return fields
}
