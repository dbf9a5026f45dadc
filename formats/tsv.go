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

// TSVFormat handles tab-separated catalogs, the usual shape of spreadsheet
// copy-paste exports
type TSVFormat struct{}

func (t *TSVFormat) Name() string {
	return "tsv"
}

func (t *TSVFormat) Priority() int {
	return 2
}

func (t *TSVFormat) Detect(path string, sample []byte) bool {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".tsv" || ext == ".tab" {
		return true
	}
	line := FirstDataLine(sample)
	tabs := countUnquoted(line, '\t')
	return tabs > 0 && tabs >= countUnquoted(line, ',') && tabs >= countUnquoted(line, '|')
}

func (t *TSVFormat) ParseLine(line string) (Record, error) {
	return buildRecord(splitQuoted(line, '\t'))
}
