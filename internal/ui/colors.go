// Package ui holds the terminal styling shared by the console alert
// channel, the dashboard renderers, and the watch loop.
package ui

import "github.com/charmbracelet/lipgloss"

// Color palette using ANSI color codes for terminal compatibility.

// Semantic colors for status indication
const (
	ColorSuccess lipgloss.Color = "2" // Green
	ColorError   lipgloss.Color = "1" // Red
	ColorWarning lipgloss.Color = "3" // Yellow
	ColorInfo    lipgloss.Color = "6" // Cyan
)

// Text colors for content hierarchy
const (
	ColorPrimary   lipgloss.Color = "7" // White/default
	ColorSecondary lipgloss.Color = "4" // Blue
	ColorMuted     lipgloss.Color = "8" // Gray (bright black)
)

// SeverityColor maps an alert severity to its display color: critical
// red, warning yellow, anything else green.
func SeverityColor(severity string) lipgloss.Color {
	switch severity {
	case "critical":
		return ColorError
	case "warning":
		return ColorWarning
	default:
		return ColorSuccess
	}
}

// StatusColor maps a health status to its display color.
func StatusColor(status string) lipgloss.Color {
	switch status {
	case "healthy":
		return ColorSuccess
	case "degraded":
		return ColorWarning
	case "unhealthy":
		return ColorError
	default:
		return ColorMuted
	}
}
