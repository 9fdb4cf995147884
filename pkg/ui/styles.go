package ui

import "github.com/charmbracelet/lipgloss"

// Color Palette
// Single source of truth for all terminal colors in the tool.
var (
	cyanAccent  = lipgloss.Color("#4DD0E1") // headers and paths
	mintGreen   = lipgloss.Color("#A8E6CF") // success states
	salmonPink  = lipgloss.Color("#FFB3BA") // errors
	amberYellow = lipgloss.Color("#FFE082") // run identifiers
	mutedGray   = lipgloss.Color("#6B7280") // secondary text
	brightWhite = lipgloss.Color("#F9FAFB") // primary text
)

// Common Styles
var (
	headerStyle = lipgloss.NewStyle().
			Foreground(cyanAccent).
			Bold(true)

	headerBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(cyanAccent).
			Padding(0, 1)

	runIDStyle = lipgloss.NewStyle().
			Foreground(amberYellow)

	modelStyle = lipgloss.NewStyle().
			Foreground(mintGreen)

	taskStyle = lipgloss.NewStyle().
			Foreground(brightWhite)

	dimStyle = lipgloss.NewStyle().
			Foreground(mutedGray)

	thinkingStyle = lipgloss.NewStyle().
			Foreground(mutedGray).
			Italic(true)

	successStyle = lipgloss.NewStyle().
			Foreground(mintGreen).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(salmonPink).
			Bold(true)

	pathStyle = lipgloss.NewStyle().
			Foreground(cyanAccent).
			Underline(true)
)

// toolColors maps tool names to bullet colors; unknown tools fall back to
// brightWhite.
var toolColors = map[string]lipgloss.Color{
	"Read":      lipgloss.Color("#81D4FA"),
	"Write":     mintGreen,
	"Edit":      amberYellow,
	"Bash":      lipgloss.Color("#CE93D8"),
	"Glob":      cyanAccent,
	"Grep":      cyanAccent,
	"WebSearch": lipgloss.Color("#90CAF9"),
	"WebFetch":  lipgloss.Color("#90CAF9"),
}
