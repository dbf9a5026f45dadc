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
	"runtime"

	markdown "github.com/MichaelMure/go-term-markdown"
)

func getHelpMessage() string {
	message := fmt.Sprintf(`

 **Advisor %s**

Browse a course catalog from your terminal: sorted listings, prerequisite
chains and instant search over a balanced in-memory index.

Built with Go %s

# 1. Features
* Load any delimited catalog file (CSV, TSV or pipe-separated) with warnings for bad lines
* Alphanumeric course listing and per-course prerequisite lookup
* Reverse view: see which courses require the one you are looking at
* Interactive search UI plus a classic full-screen browser (run --classic)
* Jump straight to a course's line in your editor with Ctrl+E

# 2. Supported Platforms
* Linux/Unix
* Mac OSX

# Catalog format
* One course per line: number, title, then prerequisite course numbers
* Blank lines and lines starting with '#' are ignored
* Titles holding the delimiter can be double-quoted

# Please be aware
* Copy to clipboard feature on Linux or Unix requires 'xclip' or 'xsel' command to be installed

# License
Licensed under the Apache License, Version 2.0
Copyright © 2025 Naren Yellavula

`, version, runtime.Version())
	result := markdown.Render(string(message), 80, 3)
	return string(result)
}
