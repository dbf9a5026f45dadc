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
	"os"
	"strings"

	ui "github.com/gizak/termui/v3"
)

type ColorScheme struct {
	Primary     ui.Color
	Success     ui.Color
	Warning     ui.Color
	Info        ui.Color
	OnPrimary   ui.Color
	Border      ui.Color
	BorderFocus ui.Color
	Text        ui.Color
	TextMuted   ui.Color
}

type TerminalMode int

const (
	TerminalModeUnknown TerminalMode = iota
	TerminalModeLight
	TerminalModeDark
)

var (
	currentColorScheme *ColorScheme
	detectedMode       TerminalMode
)

// ANSI codes for plain stdout/stderr output. Filled in by InitializeColors
// so they match the detected terminal mode.
var (
	Green   string
	Info    string
	Warning string
	Error   string
	Reset   string
)

// detectTerminalMode attempts to detect whether the terminal is in light or dark mode
func detectTerminalMode() TerminalMode {
	// COLORFGBG format is typically "foreground;background".
	// Higher background numbers usually indicate dark mode.
	if colorScheme := os.Getenv("COLORFGBG"); colorScheme != "" {
		parts := strings.Split(colorScheme, ";")
		if len(parts) >= 2 {
			bg := parts[len(parts)-1]
			// Dark background colors are typically 0-8, light are 15, 7, etc.
			if bg == "0" || bg == "8" || bg == "16" {
				return TerminalModeDark
			} else if bg == "15" || bg == "7" || bg == "255" {
				return TerminalModeLight
			}
		}
	}

	// Some terminals advertise the theme directly
	for _, name := range []string{"TERM_THEME", "THEME"} {
		theme := strings.ToLower(os.Getenv(name))
		if strings.Contains(theme, "dark") {
			return TerminalModeDark
		} else if strings.Contains(theme, "light") {
			return TerminalModeLight
		}
	}

	// Default to dark mode as it's more common in terminals
	return TerminalModeDark
}

// createLightColorScheme returns a color scheme optimized for light terminals
func createLightColorScheme() *ColorScheme {
	return &ColorScheme{
		Primary:     ui.Color(4), // Dark Blue for better contrast with white text
		Success:     ui.Color(2), // Dark Green
		Warning:     ui.Color(3), // Dark Yellow/Orange
		Info:        ui.Color(4), // Dark Blue
		OnPrimary:   ui.ColorWhite,
		Border:      ui.Color(8), // Medium gray for softer borders
		BorderFocus: ui.Color(4), // Dark Blue
		Text:        ui.ColorBlack,
		TextMuted:   ui.Color(240),
	}
}

// createDarkColorScheme returns a color scheme optimized for dark terminals
func createDarkColorScheme() *ColorScheme {
	return &ColorScheme{
		Primary:     ui.Color(6),  // Cyan
		Success:     ui.Color(2),  // Green
		Warning:     ui.Color(11), // Bright Yellow for better contrast
		Info:        ui.Color(14), // Bright Cyan
		OnPrimary:   ui.ColorBlack,
		Border:      ui.Color(240), // Medium gray for softer borders
		BorderFocus: ui.Color(14),  // Bright Cyan
		Text:        ui.ColorWhite,
		TextMuted:   ui.Color(245),
	}
}

// InitializeColors detects terminal mode and sets up the appropriate color scheme
func InitializeColors() {
	detectedMode = detectTerminalMode()

	switch detectedMode {
	case TerminalModeLight:
		currentColorScheme = createLightColorScheme()
	default:
		currentColorScheme = createDarkColorScheme()
	}

	Green, Info, Warning, Error, Reset = GetANSIColors()
}

// GetColorScheme returns the current color scheme
func GetColorScheme() *ColorScheme {
	if currentColorScheme == nil {
		InitializeColors()
	}
	return currentColorScheme
}

// GetTerminalMode returns the detected terminal mode
func GetTerminalMode() TerminalMode {
	return detectedMode
}

func (m TerminalMode) String() string {
	switch m {
	case TerminalModeLight:
		return "light"
	case TerminalModeDark:
		return "dark"
	default:
		return "unknown"
	}
}

// GetANSIColors returns ANSI color codes for terminal output (adaptive to mode)
func GetANSIColors() (success, info, warning, error, reset string) {
	// For light mode terminals, use darker colors for better contrast
	// For dark mode terminals, use brighter colors
	if detectedMode == TerminalModeLight {
		success = "\033[32m" // Green
		info = "\033[34m"    // Blue
		warning = "\033[33m" // Yellow
		error = "\033[31m"   // Red
	} else {
		success = "\033[92m" // Bright Green
		info = "\033[96m"    // Bright Cyan
		warning = "\033[93m" // Bright Yellow
		error = "\033[91m"   // Bright Red
	}

	reset = "\033[0m"
	return
}

// Helper functions for consistent styling
func StyleBorder(focused bool) ui.Style {
	scheme := GetColorScheme()
	if focused {
		return ui.NewStyle(scheme.BorderFocus)
	}
	return ui.NewStyle(scheme.Border)
}

func StyleText() ui.Style {
	scheme := GetColorScheme()
	return ui.NewStyle(scheme.Text)
}

func StyleTextMuted() ui.Style {
	scheme := GetColorScheme()
	return ui.NewStyle(scheme.TextMuted)
}

func StylePrimary() ui.Style {
	scheme := GetColorScheme()
	return ui.NewStyle(scheme.OnPrimary, scheme.Primary)
}

func StyleSuccess() ui.Style {
	scheme := GetColorScheme()
	// Success backgrounds need contrasting text in both modes
	if detectedMode == TerminalModeLight {
		return ui.NewStyle(ui.ColorWhite, scheme.Success)
	}
	return ui.NewStyle(ui.ColorBlack, scheme.Success)
}

func StyleWarning() ui.Style {
	scheme := GetColorScheme()
	return ui.NewStyle(ui.ColorBlack, scheme.Warning)
}

func StyleInfo() ui.Style {
	scheme := GetColorScheme()
	if detectedMode == TerminalModeLight {
		return ui.NewStyle(ui.ColorWhite, scheme.Info)
	}
	return ui.NewStyle(ui.ColorBlack, scheme.Info)
}
