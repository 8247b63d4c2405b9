package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func withPlainProfile(t *testing.T) {
	t.Helper()
	prev := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(termenv.Ascii)
	t.Cleanup(func() { lipgloss.SetColorProfile(prev) })
}

func TestRenderProgressBar(t *testing.T) {
	withPlainProfile(t)

	tests := []struct {
		name    string
		percent float64
		width   int
		want    string
	}{
		{"empty", 0, 4, "[░░░░]"},
		{"half", 50, 4, "[██░░]"},
		{"full", 100, 4, "[████]"},
		{"clamped above", 250, 4, "[████]"},
		{"clamped below", -10, 4, "[░░░░]"},
		{"rounds down", 74, 4, "[██░░]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RenderProgressBar(tt.percent, tt.width))
		})
	}
}

func TestRenderProgressBar_ZeroWidth(t *testing.T) {
	assert.Empty(t, RenderProgressBar(50, 0))
	assert.Empty(t, RenderProgressBar(50, -3))
}

func TestRenderProgressBar_Width(t *testing.T) {
	withPlainProfile(t)

	bar := RenderProgressBar(33, 30)
	assert.Equal(t, 32, lipgloss.Width(bar))
	assert.True(t, strings.HasPrefix(bar, "["))
}

func TestRenderHeader(t *testing.T) {
	withPlainProfile(t)

	out := RenderHeader(HeaderInfo{Version: "v1.2.3", Tagline: "process monitor"})
	assert.Contains(t, out, "sysmon v1.2.3")
	assert.Contains(t, out, "process monitor")
	assert.Contains(t, out, strings.Repeat("━", HeaderWidth))
}
