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
	"path/filepath"
	"strings"
)

// CSVFormat handles comma-separated catalogs, with double-quoted fields for
// titles that contain commas
type CSVFormat struct{}

func (c *CSVFormat) Name() string {
	return "csv"
}

func (c *CSVFormat) Priority() int {
	return 1
}

func (c *CSVFormat) Detect(path string, sample []byte) bool {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".csv" {
		return true
	}
	// A sniffed delimiter only counts when it is the most frequent one on
	// the line; a comma inside a tab-separated title must not claim the file
	line := FirstDataLine(sample)
	commas := countUnquoted(line, ',')
	return commas > 0 && commas >= countUnquoted(line, '\t') && commas >= countUnquoted(line, '|')
}

func (c *CSVFormat) ParseLine(line string) (Record, error) {
	return buildRecord(splitQuoted(line, ','))
}
