// File: styles.go
// Title: Terminal Output Styles
// Description: lipgloss styles shared by the catalogue listing and error
//              rendering.
// Author: X-lab2017 Development Team
// Version: v0.1.0
// Created: 2026-08-31
// Modified: 2026-08-31

package display

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	ColorPrimary = lipgloss.Color("39")  // blue
	ColorSuccess = lipgloss.Color("42")  // green
	ColorError   = lipgloss.Color("196") // red
	ColorMuted   = lipgloss.Color("245") // grey
)

// Component styles
var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	NameStyle = lipgloss.NewStyle().
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)

	HintStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)
)
