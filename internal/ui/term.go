package ui

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"

	"dayslice/internal/plan"
)

// Color definitions for consistent styling across the UI.
var (
	colorUrgent = color.New(color.FgRed, color.Bold)
	colorHigh   = color.New(color.FgYellow)
	colorNormal = color.New(color.FgCyan)
	colorLow    = color.New(color.FgWhite, color.Faint)

	// Headers: bold
	colorHeader = color.New(color.Bold)

	// Stats: green for positive metrics
	colorStats = color.New(color.FgGreen)

	// Muted: for secondary information
	colorMuted = color.New(color.FgWhite, color.Faint)
)

// termWidth returns the terminal width, or a default if detection fails.
func termWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80 // sensible default
	}
	return width
}

// DisableColor disables all color output.
func DisableColor() {
	color.NoColor = true
}

// formatPriority styles text according to a priority tag.
func formatPriority(p plan.Priority, s string) string {
	switch p {
	case plan.PriorityUrgent:
		return colorUrgent.Sprint(s)
	case plan.PriorityHigh:
		return colorHigh.Sprint(s)
	case plan.PriorityLow:
		return colorLow.Sprint(s)
	default:
		return colorNormal.Sprint(s)
	}
}

// formatHeader formats section header text.
func formatHeader(s string) string {
	return colorHeader.Sprint(s)
}

// formatStats formats metric values.
func formatStats(s string) string {
	return colorStats.Sprint(s)
}

// formatMuted formats secondary information.
func formatMuted(s string) string {
	return colorMuted.Sprint(s)
}
