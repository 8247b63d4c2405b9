package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Progress bar block characters.
const (
	BarFilled = '█'
	BarEmpty  = '░'
)

// RenderProgressBar draws a bracketed bar width cells wide.
// percent is clamped to 0-100 for drawing only; the caller prints the real
// value next to it. Output format: [████████░░░░]
func RenderProgressBar(percent float64, width int) string {
	if width <= 0 {
		return ""
	}

	if percent < 0 {
		percent = 0
	} else if percent > 100 {
		percent = 100
	}

	filled := int((percent / 100.0) * float64(width))

	var sb strings.Builder
	sb.Grow(width*3 + 2)
	sb.WriteRune('[')
	sb.WriteString(strings.Repeat(string(BarFilled), filled))
	sb.WriteString(strings.Repeat(string(BarEmpty), width-filled))
	sb.WriteRune(']')

	return lipgloss.NewStyle().Foreground(ThresholdColor(percent)).Render(sb.String())
}
