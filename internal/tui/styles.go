package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Adaptive colors that work on both light and dark terminals.
// First value is for dark backgrounds, second for light.
var (
	colorPrimary = lipgloss.AdaptiveColor{Dark: "#AF87FF", Light: "#7B5FBF"}
	colorGreen   = lipgloss.AdaptiveColor{Dark: "#5FD75F", Light: "#2E8B2E"}
	colorRed     = lipgloss.AdaptiveColor{Dark: "#FF5F5F", Light: "#CC3333"}
	colorYellow  = lipgloss.AdaptiveColor{Dark: "#FFD75F", Light: "#B8860B"}
	colorDim     = lipgloss.AdaptiveColor{Dark: "#585858", Light: "#999999"}
	colorBorder  = lipgloss.AdaptiveColor{Dark: "#3A3A3A", Light: "#CCCCCC"}
)

// TitleStyle is the screen title.
var TitleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(colorPrimary)

// SuccessStyle is green text for a vendor match.
var SuccessStyle = lipgloss.NewStyle().
	Foreground(colorGreen).
	Bold(true)

// ErrorStyle is red text for failures.
var ErrorStyle = lipgloss.NewStyle().
	Foreground(colorRed).
	Bold(true)

// WarningStyle is yellow text for "no match".
var WarningStyle = lipgloss.NewStyle().
	Foreground(colorYellow)

// DimStyle is de-emphasized text.
var DimStyle = lipgloss.NewStyle().
	Foreground(colorDim)

// LabelStyle is labels in the result panel.
var LabelStyle = lipgloss.NewStyle().
	Foreground(colorPrimary).
	Bold(true).
	Width(8)

// PanelStyle frames the result.
var PanelStyle = lipgloss.NewStyle().
	BorderStyle(lipgloss.RoundedBorder()).
	BorderForeground(colorBorder).
	Padding(0, 1)

// FooterStyle is bottom help text, dimmed.
var FooterStyle = lipgloss.NewStyle().
	Foreground(colorDim).
	Padding(1, 0, 0, 0)

// renderRows lays out label/value pairs, one per line.
func renderRows(rows [][2]string) string {
	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		lines = append(lines, LabelStyle.Render(r[0])+r[1])
	}
	return strings.Join(lines, "\n")
}
