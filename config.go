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
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type CatalogConfig struct {
	// Path of the catalog file to load when --file is not given.
	// Empty means discover one in the current directory.
	Path string `yaml:"path"`
	// Format forces a parser (csv, tsv, psv). Empty means detect.
	Format string `yaml:"format"`
}

type SearchConfig struct {
	EnableFuzzing bool `yaml:"enable_fuzzing"`
}

type TermConfig struct {
	// EndDate of the current academic term, YYYY-MM-DD. Shown as a
	// countdown in the banner when set.
	EndDate string `yaml:"end_date"`
}

type UIConfig struct {
	Quiet bool `yaml:"quiet"`
}

type Config struct {
	Catalog CatalogConfig `yaml:"catalog"`
	Search  SearchConfig  `yaml:"search"`
	Term    TermConfig    `yaml:"term"`
	UI      UIConfig      `yaml:"ui"`
}

var defaultConfig = Config{
	Search: SearchConfig{
		EnableFuzzing: true,
	},
}

func LoadConfig() (*Config, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return &defaultConfig, nil
	}

	configPath := filepath.Join(homeDir, ".advisor.yaml")

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return &defaultConfig, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return &defaultConfig, nil
	}

	var config Config
	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return &defaultConfig, nil
	}

	return &config, nil
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".advisor.yaml"), nil
}

func createDefaultConfigFile() error {
	configPath, err := getConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %v", err)
	}

	data, err := yaml.Marshal(&defaultConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %v", err)
	}

	err = os.WriteFile(configPath, data, 0644)
	if err != nil {
		return fmt.Errorf("failed to write config file: %v", err)
	}

	return nil
}

func displaySettings() {
	configPath, err := getConfigPath()
	if err != nil {
		fmt.Printf("❌ Failed to get config path: %v\n", err)
		return
	}

	config, err := LoadConfig()
	if err != nil {
		fmt.Printf("❌ Failed to load configuration: %v\n", err)
		return
	}

	configExists := true
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		configExists = false
		fmt.Printf("📝 Configuration file not found. Creating default configuration...\n\n")

		if err := createDefaultConfigFile(); err != nil {
			fmt.Printf("❌ Failed to create default config file: %v\n", err)
			return
		}
		fmt.Printf("✅ Created default configuration at: %s\n\n", configPath)
	}

	fmt.Printf("🔧 Advisor Configuration Settings\n")
	fmt.Printf("═══════════════════════════════════\n\n")

	if configExists {
		fmt.Printf("📍 Config file: %s\n", configPath)
	} else {
		fmt.Printf("📍 Config file: %s (newly created)\n", configPath)
	}

	fmt.Printf("📊 Current settings:\n\n")

	fmt.Printf("📚 %sCatalog:%s\n", Green, Reset)
	catalogPath := config.Catalog.Path
	if catalogPath == "" {
		catalogPath = "(discover in current directory)"
	}
	catalogFormat := config.Catalog.Format
	if catalogFormat == "" {
		catalogFormat = "(detect from extension and content)"
	}
	fmt.Printf("  • %spath%s: %s\n", Green, Reset, catalogPath)
	fmt.Printf("  • %sformat%s: %s\n\n", Green, Reset, catalogFormat)

	fmt.Printf("🔍 %sCourse Search:%s\n", Green, Reset)

	fuzzyValue := "true"
	fuzzyDesc := "Fuzzy search (substring matching in numbers and titles)"
	if !config.Search.EnableFuzzing {
		fuzzyValue = "false"
		fuzzyDesc = "Prefix-based search (course numbers starting with query)"
	}

	fmt.Printf("  • %senable_fuzzing%s: %s\n", Green, Reset, fuzzyValue)
	fmt.Printf("    %s\n\n", fuzzyDesc)

	fmt.Printf("📅 %sTerm:%s\n", Green, Reset)
	if config.Term.EndDate == "" {
		fmt.Printf("  • %send_date%s: (not set)\n\n", Green, Reset)
	} else {
		fmt.Printf("  • %send_date%s: %s", Green, Reset, config.Term.EndDate)
		if days, err := DaysUntil(config.Term.EndDate); err == nil {
			fmt.Printf(" (%d days remaining)", days)
		}
		fmt.Printf("\n\n")
	}

	fmt.Printf("🖥️  %sUI:%s\n", Green, Reset)
	fmt.Printf("  • %squiet%s: %v\n", Green, Reset, config.UI.Quiet)
	fmt.Printf("  • terminal mode: %s\n\n", GetTerminalMode())

	if !config.Search.EnableFuzzing {
		fmt.Printf("💡 Fuzzy search is disabled. To enable it, edit %s:\n", configPath)
		fmt.Printf("   search:\n     enable_fuzzing: true\n\n")
	} else {
		fmt.Printf("💡 To use prefix-only search, edit %s:\n", configPath)
		fmt.Printf("   search:\n     enable_fuzzing: false\n\n")
	}

	fmt.Printf("📚 For more information, see: https://github.com/cybrota/advisor#configuration\n")
}
