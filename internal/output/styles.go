package output

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles holds all lipgloss styles for text output
var Styles = struct {
	// Verbosity styles
	VeryVerbose lipgloss.Style
	Verbose     lipgloss.Style
	Display     lipgloss.Style
	Warning     lipgloss.Style
	Error       lipgloss.Style
	Unknown     lipgloss.Style

	// Component styles
	LineNumber lipgloss.Style
	Timestamp  lipgloss.Style
	Frame      lipgloss.Style
	Category   lipgloss.Style

	// Summary styles
	Header lipgloss.Style
	Label  lipgloss.Style
	Value  lipgloss.Style
	Danger lipgloss.Style

	// Match highlighting
	Match lipgloss.Style

	// Inline token highlighting
	Path   lipgloss.Style
	UUID   lipgloss.Style
	Number lipgloss.Style
}{
	VeryVerbose: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),                // Dark gray
	Verbose:     lipgloss.NewStyle().Foreground(lipgloss.Color("243")),                // Gray
	Display:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),                // White
	Warning:     lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),     // Orange bold
	Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),     // Red bold
	Unknown:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),                // Light gray

	LineNumber: lipgloss.NewStyle().Foreground(lipgloss.Color("239")),
	Timestamp:  lipgloss.NewStyle().Foreground(lipgloss.Color("244")), // Gray
	Frame:      lipgloss.NewStyle().Foreground(lipgloss.Color("103")),
	Category:   lipgloss.NewStyle().Foreground(lipgloss.Color("33")), // Blue

	Header: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
	Label:  lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
	Value:  lipgloss.NewStyle().Bold(true),
	Danger: lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),

	Match: lipgloss.NewStyle().Background(lipgloss.Color("57")).Foreground(lipgloss.Color("230")).Bold(true),

	Path:   lipgloss.NewStyle().Foreground(lipgloss.Color("44")),
	UUID:   lipgloss.NewStyle().Foreground(lipgloss.Color("135")),
	Number: lipgloss.NewStyle().Foreground(lipgloss.Color("179")),
}

// LevelStyle returns the style for a verbosity level
func LevelStyle(level string) lipgloss.Style {
	switch level {
	case "VeryVerbose":
		return Styles.VeryVerbose
	case "Verbose":
		return Styles.Verbose
	case "Display":
		return Styles.Display
	case "Warning":
		return Styles.Warning
	case "Error":
		return Styles.Error
	default:
		return Styles.Unknown
	}
}

// LevelIndicator returns a styled three-letter level tag
func LevelIndicator(level string) string {
	style := LevelStyle(level)
	switch level {
	case "VeryVerbose":
		return style.Render("VVB")
	case "Verbose":
		return style.Render("VRB")
	case "Display":
		return style.Render("DSP")
	case "Warning":
		return style.Render("WRN")
	case "Error":
		return style.Render("ERR")
	default:
		return style.Render("???")
	}
}
