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
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// catalogExtensions are the file endings considered catalog candidates
var catalogExtensions = map[string]bool{
	".csv": true,
	".tsv": true,
	".tab": true,
	".psv": true,
	".txt": true,
}

// findCatalogFiles lists catalog candidates in dir, sorted case-insensitively
func findCatalogFiles(fs afero.Fs, dir string) ([]string, error) {
	entries, err := afero.ReadDir(fs, dir)
	if err != nil {
		return nil, err
	}

	var results []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if catalogExtensions[strings.ToLower(filepath.Ext(entry.Name()))] {
			results = append(results, entry.Name())
		}
	}

	sort.Slice(results, func(i, j int) bool {
		return strings.ToLower(results[i]) < strings.ToLower(results[j])
	})
	return results, nil
}

// resolveCatalogPath picks the catalog to load. An explicit path wins, then
// the configured one, then a lone candidate in the working directory. With
// several candidates the user has to choose, so the error names them.
func resolveCatalogPath(fs afero.Fs, flagPath, configPath string) (string, error) {
	if flagPath != "" {
		return flagPath, nil
	}
	if configPath != "" {
		return configPath, nil
	}

	candidates, err := findCatalogFiles(fs, ".")
	if err != nil {
		return "", errors.Wrap(err, "scanning current directory for catalog files")
	}

	switch len(candidates) {
	case 0:
		return "", errors.New("no catalog file found in the current directory; pass one with --file or set catalog.path in ~/.advisor.yaml")
	case 1:
		return candidates[0], nil
	default:
		return "", errors.Errorf("multiple catalog files found (%s); pick one with --file", strings.Join(candidates, ", "))
	}
}
