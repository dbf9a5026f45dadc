// app.go

/**
 * Copyright (C) Naren Yellavula - All Rights Reserved
 *
 * This source code is protected under international copyright law.  All rights
 * reserved and protected by the copyright holders.
 * This file is confidential and only available to authorized individuals with the
 * permission of the copyright holders.  If you encounter this file and do not have
 * permission, please contact the copyright holders and delete this file.
 */

package main

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	ui "github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"
	tb "github.com/nsf/termbox-go"
	"github.com/patrickmn/go-cache"

	"github.com/cybrota/advisor/avl"
	"github.com/cybrota/advisor/formats"
)

// DisableMouseInput in termbox-go. This should be called after ui.Init()
func DisableMouseInput() {
	tb.SetInputMode(tb.InputEsc)
}

// getBanner creates a datetime message. With a term end date configured it
// counts down to the end of term, otherwise to the weekend.
func getBanner(t time.Time, config *Config) string {
	if config != nil && config.Term.EndDate != "" {
		if d, err := DaysUntil(config.Term.EndDate); err == nil && d >= 0 {
			switch d {
			case 0:
				return fmt.Sprintf("%s. Term ends today! 🎓", FormatDateTime(t))
			case 1:
				return fmt.Sprintf("%s. 1 day left in the term! 🎓", FormatDateTime(t))
			default:
				return fmt.Sprintf("%s. %d days left in the term! 🎓", FormatDateTime(t), d)
			}
		}
	}

	d := DaysToWeekend()
	msg := ""

	switch d {
	case 0:
		msg = "Enjoy your weekend! ☕"
	case 1:
		msg = fmt.Sprintf("%d day to Weekend! 🌴", d)
	default:
		msg = fmt.Sprintf("%d day to Weekend! 🌴", d)
	}
	return fmt.Sprintf("%s. %s", FormatDateTime(t), msg)
}

// getPaddedTip adds before and after padding to a tip
func getPaddedTip(tip string) string {
	return " " + tip + " "
}

// getOrFillDetail resolves a course number to its plain-text detail page,
// filling the page cache on a miss. Unknown numbers yield the not-found
// message instead of a page.
func getOrFillDetail(dc *cache.Cache, store *avl.Tree[Course], index *PrereqIndex, key string) string {
	number := formats.NormalizeCourseID(key)
	if number == "" {
		return ""
	}

	// Bloom screen: a definite miss skips the tree walk entirely.
	if index != nil && !index.MaybeKnown(number) {
		return courseNotFoundMessage(number)
	}
	c, ok := store.Find(number)
	if !ok {
		return courseNotFoundMessage(number)
	}

	// Plain-text pages live under their own key so they never collide with
	// the markdown pages the search UI caches.
	cacheKey := "info:" + number
	page := GetDetailPage(dc, cacheKey)
	if page == "" {
		page = classicCourseDetail(store, index, c)
		CacheDetailPage(dc, cacheKey, page)
	}
	return page
}

// classicCourseDetail extends the course info block with the reverse view
// from the dependency index.
func classicCourseDetail(store *avl.Tree[Course], index *PrereqIndex, c Course) string {
	var b strings.Builder
	b.WriteString(formatCourseInfo(store, c))

	if index == nil {
		return b.String()
	}
	if required := index.RequiredBy(c.Number); len(required) > 0 {
		b.WriteString("Required by:\n")
		for _, r := range required {
			if rc, ok := store.Find(r); ok {
				fmt.Fprintf(&b, "  - %s - %s\n", r, rc.Title)
			} else {
				fmt.Fprintf(&b, "  - %s\n", r)
			}
		}
		fmt.Fprintf(&b, "Demand estimate: ~%d\n", index.RequiredByCount(c.Number))
	}
	return b.String()
}

func repaintDetailWidget(dc *cache.Cache, store *avl.Tree[Course], index *PrereqIndex, l *widgets.List, key string) {
	detailTxt := getOrFillDetail(dc, store, index, key)
	lines := strings.Split(detailTxt, "\n")
	l.Rows = dedupeLines(lines)
}

// dedupeLines removes consecutive duplicate lines from a slice of strings.
func dedupeLines(lines []string) []string {
	if len(lines) == 0 {
		return lines
	}
	out := []string{lines[0]}
	for _, ln := range lines[1:] {
		if ln != out[len(out)-1] {
			out = append(out, ln)
		}
	}
	return out
}

// computeHeaderRatio determines the percentage of vertical space to allocate
// for the banner widgets (Today and Advising Tip). It ensures they remain
// readable on smaller terminals by reserving at least three lines and no more
// than a quarter of the screen.
func computeHeaderRatio(termHeight int) float64 {
	if termHeight <= 0 {
		return 0.05
	}
	minLines := 3.0
	ratio := minLines / float64(termHeight)
	if ratio < 0.05 {
		ratio = 0.05
	}
	if ratio > 0.25 {
		ratio = 0.25
	}
	return ratio
}

// catalogStatsText summarizes the loaded catalog for the stats pane.
func catalogStatsText(store *avl.Tree[Course], index *PrereqIndex) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Courses loaded: %d\n", store.Len())
	fmt.Fprintf(&b, "Tree height: %d\n", store.Height())
	fmt.Fprintf(&b, "Prerequisite links: %d\n\n", index.Edges())

	top := index.TopRequired(5)
	if len(top) == 0 {
		b.WriteString("No course is required by another.")
		return b.String()
	}

	b.WriteString("Most required prerequisites:\n")
	for _, d := range top {
		fmt.Fprintf(&b, "  %s unlocks %d course(s)\n", d.Number, d.Count)
	}
	return b.String()
}

func showStatsWidget(
	grid *ui.Grid,
	inputPara *widgets.Paragraph,
	suggestionList *widgets.List,
	detailList *widgets.List,
	dateTimePara *widgets.Paragraph,
	tipPara *widgets.Paragraph,
	statsPara *widgets.Paragraph,
	headerRatio float64,
) {
	detailList.Rows = []string{}
	grid.Set(
		ui.NewCol(0.3,
			ui.NewRow(0.2, inputPara),
			ui.NewRow(0.8, suggestionList),
		),
		ui.NewCol(0.7,
			ui.NewCol(headerRatio, dateTimePara),
			ui.NewCol(1-headerRatio, statsPara),
		),
	)
}

func showDetailWidget(
	grid *ui.Grid,
	inputPara *widgets.Paragraph,
	suggestionList *widgets.List,
	detailList *widgets.List,
	dateTimePara *widgets.Paragraph,
	tipPara *widgets.Paragraph,
	statsPara *widgets.Paragraph,
	headerRatio float64,
) {
	statsPara.Text = ""
	grid.Set(
		ui.NewCol(0.3,
			ui.NewRow(0.2, inputPara),
			ui.NewRow(0.8, suggestionList),
		),
		ui.NewCol(0.7,
			ui.NewRow(headerRatio, ui.NewCol(0.4, dateTimePara), ui.NewCol(0.6, tipPara)),
			ui.NewRow(1-headerRatio, detailList),
		),
	)
}

// toggleBorders swaps the focused border b/w the two list widgets
func toggleBorders(w1 *widgets.List, w2 *widgets.List) {
	if w1.BorderStyle.Fg == GetColorScheme().BorderFocus {
		w1.BorderStyle = StyleBorder(false)
		w2.BorderStyle = StyleBorder(true)
	} else {
		w1.BorderStyle = StyleBorder(true)
		w2.BorderStyle = StyleBorder(false)
	}
}

// runClassicApp drives the termui advisor. It returns the text to print once
// the terminal is restored: the info block for the course picked with Enter,
// or an empty string when the user just quits.
func runClassicApp(store *avl.Tree[Course], index *PrereqIndex, dc *cache.Cache, config *Config) string {
	// Done channel for ticker
	done := make(chan bool)

	// Match widget colors to the detected terminal mode
	InitializeColors()

	if err := ui.Init(); err != nil {
		log.Fatalf("failed to initialize termui: %v", err)
	}
	DisableMouseInput()
	defer ui.Close()

	fuzzy := config != nil && config.Search.EnableFuzzing

	datetimePara := widgets.NewParagraph()
	datetimePara.Title = " Today "
	datetimePara.Text = getBanner(time.Now(), config)
	datetimePara.TextStyle = StyleText()
	datetimePara.WrapText = true

	tipPara := widgets.NewParagraph()
	tipPara.Title = " Advising Tip "
	tipPara.Text = getPaddedTip(GetRandomTip())
	tipPara.TextStyle = StyleTextMuted()
	tipPara.WrapText = true

	// 1. Create the input paragraph
	inputPara := widgets.NewParagraph()
	inputPara.Title = " Type Course Number "
	inputPara.Text = ""
	inputPara.TextStyle = StylePrimary()
	inputPara.BorderStyle = StyleBorder(true)

	// List to show matching results
	suggestionList := widgets.NewList()
	suggestionList.Title = " Course Catalog 📚 "
	suggestionList.Rows = []string{}
	suggestionList.SelectedRow = 0
	suggestionList.SelectedRowStyle = StyleSuccess()
	suggestionList.BorderStyle = StyleBorder(true)

	// Create a widget to show details of a course
	detailList := widgets.NewList()
	detailList.Title = " Course Details "
	detailList.Rows = []string{"Select a course to display its details"}
	detailList.SelectedRow = 0
	detailList.SelectedRowStyle = StyleWarning()
	detailList.TextStyle = StyleText()
	detailList.BorderStyle = StyleBorder(false)
	detailList.WrapText = true

	// Create a widget for catalog statistics
	statsPara := widgets.NewParagraph()
	statsPara.Title = " Catalog Stats "
	statsPara.TitleStyle = StyleInfo()
	statsPara.Text = ""
	statsPara.TextStyle = StyleText()

	// === Layout with Grid ===
	termWidth, termHeight := ui.TerminalDimensions()
	headerRatio := computeHeaderRatio(termHeight)
	grid := ui.NewGrid()
	grid.SetRect(0, 0, termWidth, termHeight)

	showDetailWidget(grid, inputPara, suggestionList, detailList, datetimePara, tipPara, statsPara, headerRatio)
	// 4. Render initial UI
	ui.Render(grid)

	focusOnDetail := false
	uiEvents := ui.PollEvents()
	inputBuffer := "" // We'll store typed characters here
	selectedIndex := 0

	dateTi := time.NewTicker(1 * time.Second)
	tipTi := time.NewTicker(10 * time.Second)

	// Perform a new prefix search whenever input changes (or arrows, etc.)
	matches := searchCourses(store, inputBuffer, fuzzy)
	suggestionList.Rows = []string{}
	for _, c := range matches {
		suggestionList.Rows = append(suggestionList.Rows, c.ListEntry())
	}
	ui.Render(grid)
	// Start a ticker to update clock on the app
	go func() {
		for {
			select {
			case <-done:
				return
			case t, _ := <-dateTi.C:
				datetimePara.Text = getBanner(t, config)
				ui.Render(datetimePara)
			case <-tipTi.C:
				tipPara.Text = getPaddedTip(GetRandomTip())
				ui.Render(tipPara)
			}
		}
	}()

	for {
		e := <-uiEvents
		switch e.ID {
		case "<C-c>", "<Escape>":
			// Ctrl-C or Escape to exit
			done <- true
			return ""
		case "<C-z>":
			selectedText := detailList.Rows[detailList.SelectedRow]
			if err := clipboard.WriteAll(selectedText); err != nil {
				log.Printf("Failed to copy text: %v", err)
			} else {
				log.Println("Text successfully copied to clipboard!")
			}
		case "<Tab>":
			// Press Tab to toggle focus b/w catalog and details
			focusOnDetail = !focusOnDetail
			toggleBorders(suggestionList, detailList)
		case "<Backspace>":
			// Remove the last character from input
			if len(inputBuffer) > 0 {
				inputBuffer = inputBuffer[:len(inputBuffer)-1]
			}
		case "<Space>":
			// Specifically handle space
			inputBuffer += " "
		case "<Enter>":
			// Print the selected course's info once the terminal is back
			var key string
			if len(matches) > 0 {
				key = matches[selectedIndex].Number
			} else {
				key = inputBuffer
			}
			done <- true
			return getOrFillDetail(dc, store, index, key)
		case "<Up>":
			if focusOnDetail {
				// Scroll detailList up
				if detailList.SelectedRow > 0 {
					detailList.SelectedRow--
				}
			} else {
				// Move selection up in suggestionList
				if selectedIndex > 0 {
					selectedIndex--
					selectedCourse := matches[selectedIndex].Number
					// Reset detail page to Top
					detailList.SelectedRow = 0
					repaintDetailWidget(dc, store, index, detailList, selectedCourse)
					showDetailWidget(grid, inputPara, suggestionList, detailList, datetimePara, tipPara, statsPara, headerRatio)
				}
			}
		case "<Down>":
			if focusOnDetail {
				if detailList.SelectedRow < len(detailList.Rows)-1 {
					detailList.SelectedRow++
				}
			} else {
				// Move selection down in suggestionList
				if selectedIndex < len(suggestionList.Rows)-1 {
					selectedIndex++
					selectedCourse := matches[selectedIndex].Number
					// Reset detail page to Top
					detailList.SelectedRow = 0
					repaintDetailWidget(dc, store, index, detailList, selectedCourse)
					showDetailWidget(grid, inputPara, suggestionList, detailList, datetimePara, tipPara, statsPara, headerRatio)
				}
			}
		case "<F1>":
			var selectedCourse string
			// Fetch details for the highlighted course
			if len(matches) > 0 {
				selectedCourse = matches[selectedIndex].Number
			} else {
				selectedCourse = inputPara.Text
			}

			repaintDetailWidget(dc, store, index, detailList, selectedCourse)
			showDetailWidget(grid, inputPara, suggestionList, detailList, datetimePara, tipPara, statsPara, headerRatio)
		case "<F3>":
			// Swap the detail pane for catalog statistics
			statsPara.Text = catalogStatsText(store, index)
			showStatsWidget(grid, inputPara, suggestionList, detailList, datetimePara, tipPara, statsPara, headerRatio)
		case "<C-u>":
			if !focusOnDetail && len(matches) > 0 {
				inputBuffer = matches[selectedIndex].Number
			}
		case "<C-r>":
			if !focusOnDetail {
				inputBuffer = ""
			}
		case "<C-j>":
			// Go to the last line
			if !focusOnDetail {
				suggestionList.SelectedRow = len(suggestionList.Rows) - 1
			} else {
				if len(detailList.Rows) > 0 {
					detailList.SelectedRow = len(detailList.Rows) - 1
				}
			}
		case "<C-k>":
			// Go to the first line
			if !focusOnDetail {
				suggestionList.SelectedRow = 0
			} else {
				if len(detailList.Rows) > 0 {
					detailList.SelectedRow = 0
				}
			}
		case "<Resize>":
			// Adjust layout when the terminal size changes
			if payload, ok := e.Payload.(ui.Resize); ok {
				grid.SetRect(0, 0, payload.Width, payload.Height)
				headerRatio = computeHeaderRatio(payload.Height)
			} else {
				termWidth, termHeight := ui.TerminalDimensions()
				grid.SetRect(0, 0, termWidth, termHeight)
				headerRatio = computeHeaderRatio(termHeight)
			}
			showDetailWidget(grid, inputPara, suggestionList, detailList, datetimePara, tipPara, statsPara, headerRatio)
			ui.Clear()
			ui.Render(grid)
		default:
			// Typically a typed character
			if !focusOnDetail {
				if e.Type == ui.KeyboardEvent && len(e.ID) == 1 {
					// Add typed character to input
					inputBuffer += e.ID
				}
			}

			if len(matches) > 0 {
				repaintDetailWidget(dc, store, index, detailList, matches[0].Number)
				showDetailWidget(grid, inputPara, suggestionList, detailList, datetimePara, tipPara, statsPara, headerRatio)
			}
		}

		// Update the paragraph to show the current input
		inputPara.Text = inputBuffer

		// Perform a new prefix search whenever input changes (or arrows, etc.)
		matches = searchCourses(store, inputBuffer, fuzzy)
		suggestionList.Rows = []string{}
		for _, c := range matches {
			suggestionList.Rows = append(suggestionList.Rows, c.ListEntry())
		}

		// Make sure the selectedIndex is still valid
		if selectedIndex >= len(suggestionList.Rows) {
			selectedIndex = 0
		}
		if selectedIndex < 0 {
			selectedIndex = 0
		}
		suggestionList.SelectedRow = selectedIndex

		// Re-render all widgets
		ui.Render(grid)
	}
}
