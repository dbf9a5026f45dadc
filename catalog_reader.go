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
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/afero"

	"github.com/cybrota/advisor/avl"
	"github.com/cybrota/advisor/formats"
)

const (
	// Sniff this much of a file when the format is not forced up front
	formatSniffBytes = 4096
	// Show a progress bar past this size so slow loads are visibly alive
	largeCatalogBytes = 512 * 1024
)

// ErrNoValidCourses is returned when a catalog parses but yields nothing.
var ErrNoValidCourses = errors.New("no valid course records were loaded; verify the file format")

// LoadSummary reports what a catalog load did
type LoadSummary struct {
	Path    string
	Format  string
	Added   int
	Skipped int
}

// String renders the post-load summary line
func (s LoadSummary) String() string {
	msg := fmt.Sprintf("Loaded %d courses", s.Added)
	if s.Skipped > 0 {
		msg += fmt.Sprintf(" (%d skipped due to errors)", s.Skipped)
	}
	return msg + fmt.Sprintf(" from '%s'.", s.Path)
}

// CatalogReader loads delimited course catalogs into a course store. Bad
// lines are warned about and skipped; they never abort the load.
type CatalogReader struct {
	fs      afero.Fs
	manager *formats.Manager
	warn    io.Writer
	quiet   bool
}

// NewCatalogReader creates a reader over the given filesystem. Warnings go
// to stderr unless redirected with Warn.
func NewCatalogReader(fs afero.Fs) *CatalogReader {
	return &CatalogReader{
		fs:      fs,
		manager: formats.NewManager(),
		warn:    os.Stderr,
	}
}

// Warn redirects per-line warnings
func (r *CatalogReader) Warn(w io.Writer) { r.warn = w }

// Quiet suppresses the progress bar on large catalogs
func (r *CatalogReader) Quiet(q bool) { r.quiet = q }

// Load reads the catalog at path into a fresh course store. formatName
// forces a specific format; leave it empty to detect from the extension and
// a content sample. Duplicate course numbers within one file keep the first
// record, matching the warn-and-continue policy for malformed lines.
func (r *CatalogReader) Load(path, formatName string) (*avl.Tree[Course], LoadSummary, error) {
	summary := LoadSummary{Path: path}

	file, err := r.fs.Open(path)
	if err != nil {
		return nil, summary, errors.Wrapf(err, "could not open file '%s'; check the path and try again", path)
	}
	defer file.Close()

	format, err := r.pickFormat(file, path, formatName)
	if err != nil {
		return nil, summary, err
	}
	summary.Format = format.Name()

	var bar *progressbar.ProgressBar
	if stat, err := file.Stat(); err == nil && stat.Size() >= largeCatalogBytes && !r.quiet {
		bar = progressbar.NewOptions(-1,
			progressbar.OptionSetDescription("📚 Loading catalog..."),
			progressbar.OptionSetWidth(50),
			progressbar.OptionShowCount(),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "█",
				SaucerHead:    "█",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
			progressbar.OptionOnCompletion(func() {
				fmt.Fprintf(os.Stderr, "\n")
			}),
		)
	}

	store := avl.New[Course]()
	firstSeen := make(map[string]int)

	scanner := formats.NewLineScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		if formats.IsSkippable(line) {
			continue
		}

		rec, err := format.ParseLine(line)
		if err != nil {
			fmt.Fprintf(r.warn, "WARN (line %d): %v\n", scanner.Line(), err)
			summary.Skipped++
			continue
		}

		if prev, ok := firstSeen[rec.Number]; ok {
			fmt.Fprintf(r.warn, "WARN (line %d): duplicate course number '%s' (first defined on line %d); line skipped\n",
				scanner.Line(), rec.Number, prev)
			summary.Skipped++
			continue
		}
		firstSeen[rec.Number] = scanner.Line()

		store.Insert(rec.Number, Course{
			Number:        rec.Number,
			Title:         rec.Title,
			Prerequisites: rec.Prerequisites,
			Line:          scanner.Line(),
		})
		summary.Added++
		if bar != nil {
			bar.Add(1)
		}
	}
	if bar != nil {
		bar.Finish()
	}

	if err := scanner.Err(); err != nil {
		return nil, summary, errors.Wrapf(err, "reading '%s'", path)
	}
	if summary.Added == 0 {
		return nil, summary, ErrNoValidCourses
	}

	return store, summary, nil
}

// pickFormat resolves the parsing format, either by name or by detection.
// Detection reads a sample and rewinds so Load starts at line 1 again.
func (r *CatalogReader) pickFormat(file afero.File, path, formatName string) (formats.Format, error) {
	if formatName != "" {
		f, ok := r.manager.ByName(formatName)
		if !ok {
			return nil, errors.Errorf("unknown catalog format %q (want csv, tsv or psv)", formatName)
		}
		return f, nil
	}

	sample := make([]byte, formatSniffBytes)
	n, _ := io.ReadFull(file, sample)
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return nil, errors.Wrapf(err, "rewinding '%s' after format detection", path)
	}
	return r.manager.Detect(path, sample[:n]), nil
}
