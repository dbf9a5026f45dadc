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

// PSVFormat handles pipe-separated catalogs. Checked last: '|' also shows up
// inside combined prerequisite fields of comma- and tab-separated files.
type PSVFormat struct{}

func (p *PSVFormat) Name() string {
	return "psv"
}

func (p *PSVFormat) Priority() int {
	return 3
}

func (p *PSVFormat) Detect(path string, sample []byte) bool {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".psv" {
		return true
	}
	line := FirstDataLine(sample)
	pipes := countUnquoted(line, '|')
	return pipes > 0 && pipes >= countUnquoted(line, ',') && pipes >= countUnquoted(line, '\t')
}

func (p *PSVFormat) ParseLine(line string) (Record, error) {
	return buildRecord(splitQuoted(line, '|'))
}
