package ui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func TestThresholdColor(t *testing.T) {
	tests := []struct {
		name    string
		percent float64
		want    lipgloss.Color
	}{
		{"idle", 0, ColorSuccess},
		{"below warning", 59.9, ColorSuccess},
		{"at warning", 60, ColorWarning},
		{"below critical", 79.9, ColorWarning},
		{"at critical", 80, ColorError},
		{"over 100", 350, ColorError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ThresholdColor(tt.percent))
		})
	}
}

func TestApplyColorMode_NoColor(t *testing.T) {
	prev := lipgloss.ColorProfile()
	t.Cleanup(func() { lipgloss.SetColorProfile(prev) })

	ApplyColorMode(true)
	assert.Equal(t, termenv.Ascii, lipgloss.ColorProfile())

	styled := lipgloss.NewStyle().Foreground(ColorError).Render("x")
	assert.Equal(t, "x", styled)
}
