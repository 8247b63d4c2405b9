// Package ui provides terminal styling shared by sysmon's CLI output and its
// full-screen monitor.
//
// # Color Scheme
//
// Colors are ANSI codes for broad terminal compatibility:
//
//	ColorSuccess   (green)  - healthy load, successful operations
//	ColorWarning   (yellow) - elevated load
//	ColorError     (red)    - heavy load, failures
//	ColorInfo      (cyan)   - informational accents
//	ColorMuted     (gray)   - secondary text, borders
//
// Call ApplyColorMode(true) to force monochrome output (for --no-color).
//
// # Bars
//
// RenderProgressBar draws a fixed-width block bar whose colour follows the
// resource thresholds (green under 60%, yellow under 80%, red above):
//
//	ui.RenderProgressBar(67.5, 20)  // [█████████████░░░░░░░]
//
// # Tables
//
// NewTable wraps the Bubbles table with sysmon's styles for interactive use.
// RenderSimpleTable renders the same layout once for plain CLI output.
package ui
