package ui

import (
	"fmt"
	"strings"

	"dayslice/internal/timegrid"
)

// formatMinutes renders a minute count as "2h 30m", "45m" or "0m".
func formatMinutes(m int) string {
	if m <= 0 {
		return "0m"
	}
	hours := m / 60
	minutes := m % 60
	switch {
	case hours > 0 && minutes > 0:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	case hours > 0:
		return fmt.Sprintf("%dh", hours)
	default:
		return fmt.Sprintf("%dm", minutes)
	}
}

// timeLabel renders a slot time in the configured clock format.
func (a *App) timeLabel(t string) string {
	if a.config.Use12Hour() {
		return fmt.Sprintf("%8s", timegrid.To12Hour(t))
	}
	return t
}

// shortID abbreviates an ID for display. IDs from storage are
// arbitrary strings and may be shorter than the printed width.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// truncate shortens s to width runes, ellipsized.
func truncate(s string, width int) string {
	if width <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 1 {
		return string(runes[:width])
	}
	return string(runes[:width-1]) + "…"
}

// separator returns a horizontal rule sized to the terminal.
func separator() string {
	width := termWidth()
	if width > 74 {
		width = 74
	}
	return strings.Repeat("─", width)
}
