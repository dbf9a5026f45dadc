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
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/patrickmn/go-cache"

	"github.com/cybrota/advisor/avl"
	"github.com/cybrota/advisor/formats"
)

// BubbleTeaMode represents different UI modes
type BubbleTeaMode int

const (
	ModeSearch BubbleTeaMode = iota
	ModeBrowse
)

// Filter modes for catalog browsing
const (
	FilterModeAll = iota
	FilterModeNoPrereqs
	FilterModeWithPrereqs
)

// Model represents the Bubble Tea application state
type Model struct {
	mode  BubbleTeaMode
	ready bool

	// Course search components
	textInput      textinput.Model
	resultsList    list.Model
	detailViewport viewport.Model

	// Catalog browse components
	browseInput    textinput.Model
	catalogList    list.Model
	browseViewport viewport.Model

	// Data
	store       *avl.Tree[Course]
	index       *PrereqIndex
	detailCache *cache.Cache
	config      *Config
	catalogPath string

	// State
	focusIndex    int
	results       []Course
	lastQuery     string
	focusOnDetail bool // True when the detail viewport is focused for navigation

	// Browse state
	browseFocusIndex    int // 0: input, 1: catalog list, 2: course info
	filterMode          int // FilterModeAll, FilterModeNoPrereqs, FilterModeWithPrereqs
	currentCourses      []Course
	selectedCourseIndex int
	lastBrowseQuery     string

	// Editor handoff, performed after the program releases the terminal
	pendingEditor     bool
	pendingEditorLine int

	// Styling
	styles          *Styles
	glamourRenderer *glamour.TermRenderer

	// Dimensions
	width  int
	height int
}

// Styles holds all the styling for the application
type Styles struct {
	BorderFocused  lipgloss.Style
	BorderBlurred  lipgloss.Style
	Title          lipgloss.Style
	InputPrompt    lipgloss.Style
	HelpKey        lipgloss.Style
	HelpDesc       lipgloss.Style
	SuccessMessage lipgloss.Style
	ErrorMessage   lipgloss.Style
}

// NewStyles creates the default styles
func NewStyles() *Styles {
	return &Styles{
		BorderFocused: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Bold(true),
		BorderBlurred: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")),
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")). // Bright cyan/blue, more visible on dark backgrounds
			Padding(0, 1).
			Bold(true),
		InputPrompt: lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true),
		HelpKey: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")),
		SuccessMessage: lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")).
			Bold(true),
		ErrorMessage: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true),
	}
}

// searchItem represents an item in the search results list
type searchItem struct {
	course Course
}

func (i searchItem) FilterValue() string { return i.course.ListEntry() }
func (i searchItem) Title() string       { return i.course.ListEntry() }
func (i searchItem) Description() string { return "" }

// catalogItem represents an item in the catalog browse list
type catalogItem struct {
	course Course
}

func (i catalogItem) FilterValue() string { return i.course.Number }
func (i catalogItem) Title() string       { return i.course.Number }
func (i catalogItem) Description() string {
	switch n := len(i.course.Prerequisites); n {
	case 0:
		return fmt.Sprintf("🆓 %s", i.course.Title)
	case 1:
		return fmt.Sprintf("📚 %s (1 prerequisite)", i.course.Title)
	default:
		return fmt.Sprintf("📚 %s (%d prerequisites)", i.course.Title, n)
	}
}

// searchCourses filters the store against query. An empty query returns the
// whole catalog. Number-prefix matches come first; with fuzzing enabled,
// substring matches on number or title follow. Each group keeps the store's
// ascending order.
func searchCourses(store *avl.Tree[Course], query string, fuzzy bool) []Course {
	q := strings.ToUpper(strings.TrimSpace(query))

	var prefixMatches, fuzzyMatches []Course
	store.Ascend(func(key string, c Course) bool {
		switch {
		case q == "" || strings.HasPrefix(key, q):
			prefixMatches = append(prefixMatches, c)
		case fuzzy && (strings.Contains(key, q) || strings.Contains(strings.ToUpper(c.Title), q)):
			fuzzyMatches = append(fuzzyMatches, c)
		}
		return true
	})

	return append(prefixMatches, fuzzyMatches...)
}

// InitialModel creates the initial model
func InitialModel(store *avl.Tree[Course], index *PrereqIndex, dc *cache.Cache, config *Config, catalogPath string, mode BubbleTeaMode) Model {
	if config == nil {
		config = &defaultConfig
	}

	// Initialize text input for course search
	ti := textinput.New()
	ti.Placeholder = "Type a course number or title to search..."
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 50

	// Initialize search results list
	items := []list.Item{}
	resultsList := list.New(items, list.NewDefaultDelegate(), 0, 0)
	resultsList.SetShowTitle(false) // Completely disable built-in title rendering
	resultsList.SetShowHelp(false)

	// Initialize detail viewport
	detailViewport := viewport.New(0, 0)
	detailViewport.SetContent("Select a course to see its details...")

	// Initialize browse components
	bInput := textinput.New()
	bInput.Placeholder = "Filter by department or number prefix..."
	bInput.CharLimit = 256
	bInput.Width = 50

	catalogItems := []list.Item{}
	catalogList := list.New(catalogItems, list.NewDefaultDelegate(), 0, 0)
	catalogList.SetShowTitle(false) // Completely disable built-in title rendering
	catalogList.SetShowHelp(false)

	browseViewport := viewport.New(0, 0)
	browseViewport.SetContent("Select a course to view its information...")

	// Initialize glamour renderer with auto-detection
	glamourRenderer, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(72),
	)

	// Set focus based on mode
	if mode == ModeBrowse {
		ti.Blur()
		bInput.Focus()
	}

	model := Model{
		mode:                mode,
		textInput:           ti,
		resultsList:         resultsList,
		detailViewport:      detailViewport,
		browseInput:         bInput,
		catalogList:         catalogList,
		browseViewport:      browseViewport,
		store:               store,
		index:               index,
		detailCache:         dc,
		config:              config,
		catalogPath:         catalogPath,
		focusIndex:          0,
		browseFocusIndex:    0,
		filterMode:          FilterModeAll,
		currentCourses:      []Course{},
		selectedCourseIndex: 0,
		styles:              NewStyles(),
		glamourRenderer:     glamourRenderer,
		results:             []Course{},
		lastQuery:           "",
		lastBrowseQuery:     "",
	}

	// Both panes start populated so the catalog is visible right away
	model.updateSuggestions("")
	model.updateBrowseResults()

	return model
}

// Init is called when the program starts
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles all the I/O
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "f2":
			// Switch between modes
			if m.mode == ModeSearch {
				m.mode = ModeBrowse
				m.textInput.Blur()
				m.browseInput.Focus()
			} else {
				m.mode = ModeSearch
				m.browseInput.Blur()
				m.textInput.Focus()
			}
			return m, nil
		}

		// Handle mode-specific key events
		if m.mode == ModeSearch {
			return m.updateSearchMode(msg)
		} else {
			return m.updateBrowseMode(msg)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.ready = true
	}

	return m, tea.Batch(cmds...)
}

// updateSearchMode handles key events for course search mode
func (m Model) updateSearchMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg.String() {
	case "tab":
		if m.focusOnDetail {
			// From details back to input (completing the cycle)
			m.focusOnDetail = false
			m.focusIndex = 0 // Back to input
		} else if m.focusIndex == 0 {
			// From input to results
			m.focusIndex = 1
		} else {
			// From results to details
			m.focusOnDetail = true
			// Keep focusIndex as 1 so we know we came from the results
		}
	case "enter":
		if m.focusIndex == 0 {
			// Keep typing; selection happens in the results list
			return m, nil
		} else {
			// Copy the selected course number and quit
			if len(m.results) > 0 {
				selectedIndex := m.resultsList.Index()
				if selectedIndex >= 0 && selectedIndex < len(m.results) {
					selected := m.results[selectedIndex]
					return m, tea.Sequence(
						func() tea.Msg {
							copyToClipboard(selected.Number)
							return tea.Quit()
						},
					)
				}
			}
		}
	case "ctrl+e":
		// Jump to the course's line in the catalog file
		if len(m.results) > 0 {
			selectedIndex := m.resultsList.Index()
			if selectedIndex >= 0 && selectedIndex < len(m.results) {
				m.pendingEditor = true
				m.pendingEditorLine = m.results[selectedIndex].Line
				return m, tea.Quit
			}
		}
	case "f1":
		// Show details for the typed or selected course
		var selected Course
		var found bool
		if m.focusIndex == 0 {
			// Use the input text if focusing on input
			key := formats.NormalizeCourseID(m.textInput.Value())
			if key != "" {
				if c, ok := m.store.Find(key); ok {
					selected, found = c, true
				} else {
					m.detailViewport.SetContent(courseNotFoundMessage(key))
					m.focusOnDetail = true
					return m, nil
				}
			}
		} else if len(m.results) > 0 {
			// Use the selected result
			selectedIndex := m.resultsList.Index()
			if selectedIndex >= 0 && selectedIndex < len(m.results) {
				selected, found = m.results[selectedIndex], true
			}
		}
		if found {
			m.updateDetail(selected)
			m.focusOnDetail = true // Switch focus to details after showing them
		}
		return m, nil
	case "ctrl+z":
		// Copy the visible detail text
		if m.focusOnDetail {
			detailContent := m.detailViewport.View()
			return m, tea.Sequence(
				func() tea.Msg {
					copyToClipboard(detailContent)
					return nil
				},
			)
		}
		return m, nil
	case "pgup":
		// Page up in detail content
		if m.focusOnDetail {
			m.detailViewport.LineUp(m.detailViewport.Height)
			return m, nil
		}
	case "pgdown":
		// Page down in detail content
		if m.focusOnDetail {
			m.detailViewport.LineDown(m.detailViewport.Height)
			return m, nil
		}
	case "home":
		// Go to top of detail content
		if m.focusOnDetail {
			m.detailViewport.GotoTop()
			return m, nil
		}
	case "end":
		// Go to bottom of detail content
		if m.focusOnDetail {
			m.detailViewport.GotoBottom()
			return m, nil
		}
	case "up", "k":
		if m.focusOnDetail {
			// Navigate detail content
			m.detailViewport.LineUp(1)
			return m, nil
		} else if m.focusIndex == 1 && len(m.results) > 0 {
			// Manual navigation for the results list
			if m.resultsList.Index() > 0 {
				m.resultsList.CursorUp()
			}
			// Update details when selection changes
			selectedIndex := m.resultsList.Index()
			if selectedIndex >= 0 && selectedIndex < len(m.results) {
				m.updateDetail(m.results[selectedIndex])
			}
			return m, nil
		}
	case "down", "j":
		if m.focusOnDetail {
			// Navigate detail content
			m.detailViewport.LineDown(1)
			return m, nil
		} else if m.focusIndex == 1 && len(m.results) > 0 {
			// Manual navigation for the results list
			if m.resultsList.Index() < len(m.results)-1 {
				m.resultsList.CursorDown()
			}
			// Update details when selection changes
			selectedIndex := m.resultsList.Index()
			if selectedIndex >= 0 && selectedIndex < len(m.results) {
				m.updateDetail(m.results[selectedIndex])
			}
			return m, nil
		}
	}

	// Update components based on focus
	if m.focusOnDetail {
		// When details are focused, let viewport handle scrolling (already handled above)
		msgStr := msg.String()
		if msgStr != "up" && msgStr != "down" && msgStr != "k" && msgStr != "j" {
			m.detailViewport, cmd = m.detailViewport.Update(msg)
			cmds = append(cmds, cmd)
		}
	} else if m.focusIndex == 0 {
		m.textInput, cmd = m.textInput.Update(msg)
		cmds = append(cmds, cmd)

		// Update results when text changes
		currentQuery := m.textInput.Value()
		if currentQuery != m.lastQuery {
			m.updateSuggestions(currentQuery)
			m.lastQuery = currentQuery
		}
	} else {
		// Only let the list handle non-navigation keys
		msgStr := msg.String()
		if msgStr != "up" && msgStr != "down" && msgStr != "k" && msgStr != "j" {
			m.resultsList, cmd = m.resultsList.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	return m, tea.Batch(cmds...)
}

// updateBrowseMode handles key events for catalog browse mode
func (m Model) updateBrowseMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg.String() {
	case "tab":
		m.browseFocusIndex = (m.browseFocusIndex + 1) % 3
	case "enter":
		if m.browseFocusIndex == 1 && len(m.currentCourses) > 0 {
			// Open the selected course's catalog line in the editor
			m.pendingEditor = true
			m.pendingEditorLine = m.currentCourses[m.selectedCourseIndex].Line
			return m, tea.Quit
		}
	case "ctrl+x":
		if m.browseFocusIndex == 1 && len(m.currentCourses) > 0 {
			// Copy the selected course number
			selected := m.currentCourses[m.selectedCourseIndex]
			return m, tea.Sequence(
				func() tea.Msg {
					if err := copyToClipboard(selected.Number); err != nil {
						fmt.Fprintf(os.Stderr, "Failed to copy course number: %v\n", err)
					}
					return tea.Quit()
				},
			)
		}
	case "ctrl+t":
		// Toggle filter mode
		m.filterMode = (m.filterMode + 1) % 3
		m.updateBrowseResults()
	case "ctrl+r":
		// Reset input
		if m.browseFocusIndex == 0 {
			m.browseInput.SetValue("")
			m.updateBrowseResults()
			m.lastBrowseQuery = ""
		}
	case "up", "k":
		if m.browseFocusIndex == 1 {
			if m.selectedCourseIndex > 0 {
				m.selectedCourseIndex--
				// Sync the list cursor
				if m.catalogList.Index() > 0 {
					m.catalogList.CursorUp()
				}
				m.updateBrowseDetail()
			}
		} else if m.browseFocusIndex == 2 {
			m.browseViewport.LineUp(1)
		}
	case "down", "j":
		if m.browseFocusIndex == 1 {
			if m.selectedCourseIndex < len(m.currentCourses)-1 {
				m.selectedCourseIndex++
				// Sync the list cursor
				if m.catalogList.Index() < len(m.currentCourses)-1 {
					m.catalogList.CursorDown()
				}
				m.updateBrowseDetail()
			}
		} else if m.browseFocusIndex == 2 {
			m.browseViewport.LineDown(1)
		}
	case "ctrl+k":
		if m.browseFocusIndex == 1 {
			m.selectedCourseIndex = 0
			// Reset list cursor to top
			for m.catalogList.Index() > 0 {
				m.catalogList.CursorUp()
			}
			m.updateBrowseDetail()
		}
	case "ctrl+j":
		if m.browseFocusIndex == 1 {
			if len(m.currentCourses) > 0 {
				m.selectedCourseIndex = len(m.currentCourses) - 1
				// Move list cursor to bottom
				for m.catalogList.Index() < len(m.currentCourses)-1 {
					m.catalogList.CursorDown()
				}
				m.updateBrowseDetail()
			}
		}
	}

	// Update components based on focus
	if m.browseFocusIndex == 0 {
		m.browseInput, cmd = m.browseInput.Update(msg)
		cmds = append(cmds, cmd)

		// Update catalog results when text changes
		currentQuery := m.browseInput.Value()
		if currentQuery != m.lastBrowseQuery {
			m.updateBrowseResults()
			m.lastBrowseQuery = currentQuery
		}
	} else if m.browseFocusIndex == 1 {
		// Only let the list handle non-navigation keys
		msgStr := msg.String()
		if msgStr != "up" && msgStr != "down" && msgStr != "k" && msgStr != "j" {
			m.catalogList, cmd = m.catalogList.Update(msg)
			cmds = append(cmds, cmd)
		}
	} else {
		m.browseViewport, cmd = m.browseViewport.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	if m.mode == ModeSearch {
		return m.renderSearchView()
	} else {
		return m.renderBrowseView()
	}
}

// renderSearchView renders the course search view
func (m Model) renderSearchView() string {
	// Ensure we have minimum dimensions
	if m.width < 20 || m.height < 10 {
		return "Terminal too small. Please resize your terminal."
	}

	// Calculate dimensions
	inputHeight := 3
	detailHeight := m.height - inputHeight - 6 // Leave more room for help text
	resultsWidth := (m.width / 2) - 1
	detailWidth := m.width - resultsWidth - 3

	// Style the text input
	var inputStyle lipgloss.Style
	var inputTitle string
	if m.focusIndex == 0 && !m.focusOnDetail {
		inputStyle = m.styles.BorderFocused
		inputTitle = " 🔍 Search Courses (Active)\n"
	} else {
		inputStyle = m.styles.BorderBlurred
		inputTitle = " 🔍 Search Courses\n"
	}

	// Ensure textInput has proper width
	m.textInput.Width = resultsWidth - 4 // Account for borders and padding

	// Create input content with title
	inputContent := m.textInput.View()

	inputBox := inputStyle.
		Width(resultsWidth).
		Height(inputHeight).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Width(resultsWidth-4).Render(inputTitle),
			inputContent,
		))

	// Style the results list
	var listStyle lipgloss.Style
	var listTitle string
	if m.focusIndex == 1 && !m.focusOnDetail {
		listStyle = m.styles.BorderFocused
		listTitle = " 📋 Matching Courses (Active) "
	} else {
		listStyle = m.styles.BorderBlurred
		listTitle = " 📋 Matching Courses "
	}

	// Create results content with title
	resultsContent := m.resultsList.View()

	resultsBox := listStyle.
		Width(resultsWidth).
		Height(detailHeight).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Width(resultsWidth-4).Render(listTitle),
			resultsContent,
		))

	// Style the detail viewport
	var detailStyle lipgloss.Style
	var detailTitle string
	if m.focusOnDetail {
		detailStyle = m.styles.BorderFocused
		detailTitle = " 📖 Course Details (Active) "
	} else {
		detailStyle = m.styles.BorderBlurred
		detailTitle = " 📖 Course Details "
	}

	// Create detail content with title
	detailContent := lipgloss.NewStyle().
		Bold(m.focusOnDetail).
		Render(m.detailViewport.View())

	detailBox := detailStyle.
		Width(detailWidth).
		Height(detailHeight + inputHeight + 2).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Width(detailWidth-4).Render(detailTitle),
			detailContent,
		))

	// Combine left column
	leftColumn := lipgloss.JoinVertical(
		lipgloss.Left,
		inputBox,
		resultsBox,
	)

	// Combine everything horizontally
	main := lipgloss.JoinHorizontal(
		lipgloss.Top,
		leftColumn,
		detailBox,
	)

	// Add help footer
	help := m.renderSearchHelp()

	return lipgloss.JoinVertical(
		lipgloss.Left,
		main,
		help,
	)
}

// renderBrowseView renders the catalog browse view
func (m Model) renderBrowseView() string {
	// Ensure we have minimum dimensions
	if m.width < 30 || m.height < 10 {
		return "Terminal too small. Please resize your terminal."
	}

	// Calculate dimensions
	inputHeight := 3
	listHeight := m.height - inputHeight - 6 // Leave more room for help text
	leftWidth := (m.width * 4 / 10) - 1      // 40% for input + catalog
	rightWidth := m.width - leftWidth - 3    // 60% for course info

	// Style the browse input
	var inputStyle lipgloss.Style
	var browseInputTitle string
	if m.browseFocusIndex == 0 {
		inputStyle = m.styles.BorderFocused
		browseInputTitle = " 🗂  Filter Catalog (Active) "
	} else {
		inputStyle = m.styles.BorderBlurred
		browseInputTitle = " 🗂  Filter Catalog "
	}

	// Ensure browseInput has proper width
	m.browseInput.Width = leftWidth - 4 // Account for borders and padding

	// Create browse input content with title
	browseInputContent := m.browseInput.View()

	inputBox := inputStyle.
		Width(leftWidth).
		Height(inputHeight).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Width(leftWidth-4).Render(browseInputTitle),
			browseInputContent,
		))

	// Style the catalog list
	var catalogListStyle lipgloss.Style
	var catalogTitle string
	if m.browseFocusIndex == 1 {
		catalogListStyle = m.styles.BorderFocused
		catalogTitle = m.getCatalogListTitle() + "(Active) "
	} else {
		catalogListStyle = m.styles.BorderBlurred
		catalogTitle = m.getCatalogListTitle()
	}

	// Create catalog list content with title
	catalogContent := m.catalogList.View()

	catalogBox := catalogListStyle.
		Width(leftWidth).
		Height(listHeight).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Width(leftWidth-4).Render(catalogTitle),
			catalogContent,
		))

	// Style the course info viewport
	var infoStyle lipgloss.Style
	var infoTitle string
	if m.browseFocusIndex == 2 {
		infoStyle = m.styles.BorderFocused
		infoTitle = " 📄 Course Information (Active) "
	} else {
		infoStyle = m.styles.BorderBlurred
		infoTitle = " 📄 Course Information "
	}

	// Create course info content with title
	infoContent := m.browseViewport.View()

	infoBox := infoStyle.
		Width(rightWidth).
		Height(inputHeight + listHeight + 2).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Width(rightWidth-4).Render(infoTitle),
			infoContent,
		))

	// Combine left column
	leftColumn := lipgloss.JoinVertical(
		lipgloss.Left,
		inputBox,
		catalogBox,
	)

	// Combine everything horizontally
	main := lipgloss.JoinHorizontal(
		lipgloss.Top,
		leftColumn,
		infoBox,
	)

	// Add help footer
	help := m.renderBrowseHelp()

	return lipgloss.JoinVertical(
		lipgloss.Left,
		main,
		help,
	)
}

// updateLayout updates component dimensions
func (m *Model) updateLayout() {
	if m.mode == ModeSearch {
		inputHeight := 3
		detailHeight := m.height - inputHeight - 6 // Leave room for help text
		resultsWidth := (m.width / 2) - 1
		detailWidth := m.width - resultsWidth - 3

		// Set text input width
		m.textInput.Width = resultsWidth - 4

		// Set component sizes
		m.resultsList.SetSize(resultsWidth-2, detailHeight-2)
		m.detailViewport.Width = detailWidth - 2
		m.detailViewport.Height = detailHeight + inputHeight
	} else {
		inputHeight := 3
		listHeight := m.height - inputHeight - 6
		leftWidth := (m.width * 4 / 10) - 1
		rightWidth := m.width - leftWidth - 3

		// Set browse input width
		m.browseInput.Width = leftWidth - 4

		// Set component sizes
		m.catalogList.SetSize(leftWidth-2, listHeight-2)
		m.browseViewport.Width = rightWidth - 2
		m.browseViewport.Height = inputHeight + listHeight
	}
}

// updateSuggestions refreshes the search results for a query
func (m *Model) updateSuggestions(query string) {
	matches := searchCourses(m.store, query, m.config.Search.EnableFuzzing)

	items := make([]list.Item, len(matches))
	m.results = make([]Course, len(matches))

	for i, match := range matches {
		items[i] = searchItem{course: match}
		m.results[i] = match
	}

	m.resultsList.SetItems(items)

	// Update details for first item if available
	if len(matches) > 0 {
		m.updateDetail(matches[0])
	}
}

// updateDetail renders a course's detail page into the viewport, going
// through the page cache so repeated selections stay instant.
func (m *Model) updateDetail(c Course) {
	page := GetDetailPage(m.detailCache, c.Number)
	if page == "" {
		page = courseDetailMarkdown(m.store, m.index, c)
		CacheDetailPage(m.detailCache, c.Number, page)
	}

	// Try to render as markdown first
	if rendered, err := m.glamourRenderer.Render(page); err == nil {
		m.detailViewport.SetContent(rendered)
	} else {
		// Fall back to plain text
		m.detailViewport.SetContent(page)
	}
}

// renderSearchHelp renders the help footer for search mode
func (m Model) renderSearchHelp() string {
	var keys []string
	var descs []string

	keys = append(keys, "enter")
	descs = append(descs, "copy course number")

	keys = append(keys, "ctrl+e")
	descs = append(descs, "open in editor")

	keys = append(keys, "tab")
	descs = append(descs, "switch focus")

	keys = append(keys, "f1")
	descs = append(descs, "show details")

	keys = append(keys, "ctrl+z")
	descs = append(descs, "copy details")

	keys = append(keys, "f2")
	descs = append(descs, "browse mode")

	keys = append(keys, "esc")
	descs = append(descs, "quit")

	var helpEntries []string
	for i, key := range keys {
		helpEntries = append(helpEntries,
			fmt.Sprintf("%s %s",
				m.styles.HelpKey.Render(key),
				m.styles.HelpDesc.Render(descs[i])))
	}

	return lipgloss.NewStyle().
		Padding(1, 0, 0, 2).
		Render(strings.Join(helpEntries, " • "))
}

// renderBrowseHelp renders the help footer for browse mode
func (m Model) renderBrowseHelp() string {
	var keys []string
	var descs []string

	keys = append(keys, "enter")
	descs = append(descs, "open in editor")

	keys = append(keys, "ctrl+x")
	descs = append(descs, "copy course number")

	keys = append(keys, "ctrl+t")
	descs = append(descs, "toggle filter")

	keys = append(keys, "tab")
	descs = append(descs, "switch focus")

	keys = append(keys, "f2")
	descs = append(descs, "search mode")

	keys = append(keys, "esc")
	descs = append(descs, "quit")

	var helpEntries []string
	for i, key := range keys {
		helpEntries = append(helpEntries,
			fmt.Sprintf("%s %s",
				m.styles.HelpKey.Render(key),
				m.styles.HelpDesc.Render(descs[i])))
	}

	return lipgloss.NewStyle().
		Padding(1, 0, 0, 2).
		Render(strings.Join(helpEntries, " • "))
}

// updateBrowseResults refreshes the catalog list for the filter and query
func (m *Model) updateBrowseResults() {
	query := m.browseInput.Value()

	// Filter over the full, prefix-narrowed catalog
	results := searchCourses(m.store, query, false)

	var filteredResults []Course
	for _, result := range results {
		switch m.filterMode {
		case FilterModeAll:
			filteredResults = append(filteredResults, result)
		case FilterModeNoPrereqs:
			if len(result.Prerequisites) == 0 {
				filteredResults = append(filteredResults, result)
			}
		case FilterModeWithPrereqs:
			if len(result.Prerequisites) > 0 {
				filteredResults = append(filteredResults, result)
			}
		}
	}

	// Update current courses and create list items
	m.currentCourses = filteredResults
	items := make([]list.Item, len(filteredResults))
	for i, course := range filteredResults {
		items[i] = catalogItem{course: course}
	}

	m.catalogList.SetItems(items)

	// Reset selection
	m.selectedCourseIndex = 0

	// Update course info for first item if available
	if len(filteredResults) > 0 {
		m.updateBrowseDetail()
	} else {
		m.browseViewport.SetContent("No courses match the current filter.")
	}
}

// getCatalogListTitle returns the catalog list title for the filter mode
func (m *Model) getCatalogListTitle() string {
	var filterIcon, filterName string
	switch m.filterMode {
	case FilterModeAll:
		filterIcon = "📚"
		filterName = "All Courses"
	case FilterModeNoPrereqs:
		filterIcon = "🆓"
		filterName = "No Prerequisites"
	case FilterModeWithPrereqs:
		filterIcon = "🔗"
		filterName = "With Prerequisites"
	}

	return fmt.Sprintf(" %s %s ", filterIcon, filterName)
}

// updateBrowseDetail updates the course info viewport for the selection
func (m *Model) updateBrowseDetail() {
	if len(m.currentCourses) == 0 || m.selectedCourseIndex >= len(m.currentCourses) {
		m.browseViewport.SetContent("Select a course to view its information...")
		return
	}

	c := m.currentCourses[m.selectedCourseIndex]

	page := GetDetailPage(m.detailCache, c.Number)
	if page == "" {
		page = courseDetailMarkdown(m.store, m.index, c)
		CacheDetailPage(m.detailCache, c.Number, page)
	}

	// Try to render as markdown
	if rendered, err := m.glamourRenderer.Render(page); err == nil {
		m.browseViewport.SetContent(rendered)
	} else {
		m.browseViewport.SetContent(page)
	}
}

// copyToClipboard copies text to clipboard
func copyToClipboard(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "📋 Copied %s%s%s to clipboard.\n", Green, text, Reset)
	return nil
}

// runBubbleTeaApp starts the Bubble Tea application
func runBubbleTeaApp(store *avl.Tree[Course], index *PrereqIndex, dc *cache.Cache, config *Config, catalogPath string, mode BubbleTeaMode) error {
	// Initialize colors
	InitializeColors()

	model := InitialModel(store, index, dc, config, catalogPath, mode)

	program := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	finalModel, err := program.Run()
	if err != nil {
		return err
	}

	// The editor can only take the terminal once the program has released
	// the alternate screen, so the jump happens here.
	if m, ok := finalModel.(Model); ok && m.pendingEditor {
		if err := openInEditor(m.catalogPath, m.pendingEditorLine); err != nil {
			fmt.Fprintf(os.Stderr, "%sFailed to open editor: %v%s\n", Error, err, Reset)
		}
	}
	return nil
}
