// Package ui provides consistent styling and components for the padctl CLI
package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette - consistent across the application
var (
	ColorPrimary   = lipgloss.Color("39")  // Bright blue
	ColorSuccess   = lipgloss.Color("82")  // Green
	ColorWarning   = lipgloss.Color("214") // Orange
	ColorError     = lipgloss.Color("196") // Red
	ColorInfo      = lipgloss.Color("86")  // Cyan
	ColorText      = lipgloss.Color("252") // Light gray
	ColorSubtle    = lipgloss.Color("241") // Medium gray
	ColorHighlight = lipgloss.Color("255") // White
)

var (
	TextStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	SubtleStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	InfoStyle = lipgloss.NewStyle().
			Foreground(ColorInfo)

	ValueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHighlight)

	SelectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)
)

// FormatHeader renders a section header with an optional subtitle line.
func FormatHeader(title, subtitle string) string {
	var b strings.Builder
	b.WriteString(HeaderStyle.Render(title))
	if subtitle != "" {
		b.WriteString("\n")
		b.WriteString(SubtleStyle.Render(subtitle))
	}
	return b.String()
}

// FormatEnabled renders a boolean as a colored yes/no marker.
func FormatEnabled(enabled bool) string {
	if enabled {
		return SuccessStyle.Render("yes")
	}
	return SubtleStyle.Render("no")
}
