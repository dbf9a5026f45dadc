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
	"log"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/cybrota/advisor/avl"
	"github.com/cybrota/advisor/formats"
)

const version = "1.1.0"

// openCatalog loads the configured catalog and builds the derived views.
// Fatal on any load error: the CLI is useless without a catalog.
func openCatalog(flagPath, flagFormat string) (*avl.Tree[Course], *PrereqIndex, *Config, string) {
	config, err := LoadConfig()
	if err != nil {
		log.Printf("Failed to load configuration: %v. Using default settings.", err)
	}

	fs := afero.NewOsFs()
	path, err := resolveCatalogPath(fs, flagPath, config.Catalog.Path)
	if err != nil {
		log.Fatalf("Error locating catalog: %v", err)
	}

	format := flagFormat
	if format == "" {
		format = config.Catalog.Format
	}

	reader := NewCatalogReader(fs)
	reader.Quiet(config.UI.Quiet)
	store, summary, err := reader.Load(path, format)
	if err != nil {
		log.Fatalf("Error loading catalog: %v", err)
	}
	if !config.UI.Quiet {
		fmt.Fprintf(os.Stderr, "%s%s%s\n", Green, summary.String(), Reset)
	}

	return store, BuildPrereqIndex(store), config, path
}

func main() {
	InitializeColors()

	asciiLogo := `
 █████╗ ██████╗ ██╗   ██╗██╗███████╗ ██████╗ ██████╗
██╔══██╗██╔══██╗██║   ██║██║██╔════╝██╔═══██╗██╔══██╗
███████║██║  ██║██║   ██║██║███████╗██║   ██║██████╔╝
██╔══██║██║  ██║╚██╗ ██╔╝██║╚════██║██║   ██║██╔══██╗
██║  ██║██████╔╝ ╚████╔╝ ██║███████║╚██████╔╝██║  ██║
╚═╝  ╚═╝╚═════╝   ╚═══╝  ╚═╝╚══════╝ ╚═════╝ ╚═╝  ╚═╝
Balanced-tree course catalog with instant prerequisite lookups [Version: %s%s%s]

Copyright @ Naren Yellavula (Please give us a star ⭐ here: https://github.com/cybrota/advisor)

`

	asciiLogo = fmt.Sprintf(asciiLogo, Green, version, Reset)

	var cmdRun = &cobra.Command{
		Use:   "run",
		Short: "Launches the advisor UI for course search & planning",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Run command opens the advisor UI over the loaded course catalog`),
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			flagPath, _ := cmd.Flags().GetString("file")
			flagFormat, _ := cmd.Flags().GetString("format")
			store, index, config, path := openCatalog(flagPath, flagFormat)
			detailCache := NewCourseDetailCache()

			if classic, _ := cmd.Flags().GetBool("classic"); classic {
				if out := runClassicApp(store, index, detailCache, config); out != "" {
					fmt.Print(out)
				}
				return
			}

			mode := ModeSearch
			if browse, _ := cmd.Flags().GetBool("browse"); browse {
				mode = ModeBrowse
			}
			if err := runBubbleTeaApp(store, index, detailCache, config, path, mode); err != nil {
				log.Fatalf("Error running advisor UI: %v", err)
			}
		},
	}

	cmdRun.Flags().StringP("file", "f", "", "path to the course catalog file")
	cmdRun.Flags().String("format", "", "catalog format: csv, tsv or psv (default: detect)")
	cmdRun.Flags().Bool("browse", false, "start in catalog browse mode")
	cmdRun.Flags().Bool("classic", false, "use the classic full-screen UI")

	var cmdList = &cobra.Command{
		Use:   "list",
		Short: "Print the alphanumeric course list",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `List prints every course in alphanumeric order`),
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			flagPath, _ := cmd.Flags().GetString("file")
			flagFormat, _ := cmd.Flags().GetString("format")
			store, _, _, _ := openCatalog(flagPath, flagFormat)

			prefix := formats.NormalizeCourseID(cmd.Flag("prefix").Value.String())
			fmt.Print(formatCourseList(store, prefix))
		},
	}

	cmdList.Flags().StringP("file", "f", "", "path to the course catalog file")
	cmdList.Flags().String("format", "", "catalog format: csv, tsv or psv (default: detect)")
	cmdList.Flags().String("prefix", "", "only list courses whose number starts with this prefix")

	var cmdInfo = &cobra.Command{
		Use:   "info [course number]",
		Short: "Print a course with its prerequisites",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Info prints one course and the titles of its prerequisites`),
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			flagPath, _ := cmd.Flags().GetString("file")
			flagFormat, _ := cmd.Flags().GetString("format")
			store, _, _, _ := openCatalog(flagPath, flagFormat)

			key := formats.NormalizeCourseID(args[0])
			c, ok := store.Find(key)
			if !ok {
				fmt.Println(courseNotFoundMessage(key))
				return
			}
			fmt.Print(formatCourseInfo(store, c))
		},
	}

	cmdInfo.Flags().StringP("file", "f", "", "path to the course catalog file")
	cmdInfo.Flags().String("format", "", "catalog format: csv, tsv or psv (default: detect)")

	var cmdCheck = &cobra.Command{
		Use:   "check",
		Short: "Verify catalog consistency and report prerequisite demand",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Check verifies the store invariants and flags prerequisites that do not resolve to a catalog course`),
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			flagPath, _ := cmd.Flags().GetString("file")
			flagFormat, _ := cmd.Flags().GetString("format")
			store, index, _, _ := openCatalog(flagPath, flagFormat)

			if err := store.Check(); err != nil {
				log.Fatalf("Catalog tree is inconsistent: %v", err)
			}
			fmt.Printf("%s✅ Tree invariants hold for %d courses (height %d).%s\n", Green, store.Len(), store.Height(), Reset)

			gaps := 0
			store.Ascend(func(key string, c Course) bool {
				for _, u := range index.UnknownPrereqs(c) {
					fmt.Printf("%s⚠️  %s lists unknown prerequisite %s%s\n", Warning, key, u, Reset)
					gaps++
				}
				return true
			})
			if gaps == 0 {
				fmt.Printf("%s✅ Every prerequisite resolves to a catalog course.%s\n", Green, Reset)
			} else {
				fmt.Printf("%s❌ %d unresolved prerequisite reference(s).%s\n", Error, gaps, Reset)
			}

			top := index.TopRequired(5)
			if len(top) > 0 {
				fmt.Printf("\n📊 Prerequisite demand (%d links total):\n", index.Edges())
				for _, d := range top {
					fmt.Printf("  %s unlocks %d course(s) (sketch estimate: %d)\n", d.Number, d.Count, d.Estimated)
				}
			}
		},
	}

	cmdCheck.Flags().StringP("file", "f", "", "path to the course catalog file")
	cmdCheck.Flags().String("format", "", "catalog format: csv, tsv or psv (default: detect)")

	var cmdConfig = &cobra.Command{
		Use:   "config",
		Short: "Show current advisor settings",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Config displays the settings read from ~/.advisor.yaml`),
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			displaySettings()
		},
	}

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print the advisor usage guide",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Usage displays the advisor CLI usage guide`),
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(getHelpMessage())
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print the advisor version",
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:     "advisor",
		Version: version,
		Long:    asciiLogo,
		Run: func(cmd *cobra.Command, args []string) {
			// Default to the search UI when no subcommand is provided
			store, index, config, path := openCatalog("", "")
			detailCache := NewCourseDetailCache()

			if err := runBubbleTeaApp(store, index, detailCache, config, path, ModeSearch); err != nil {
				log.Fatalf("Error running advisor UI: %v", err)
			}
		},
	}
	rootCmd.AddCommand(cmdRun, cmdList, cmdInfo, cmdCheck, cmdConfig, cmdUsage, cmdVersion)
	rootCmd.Execute()
}
