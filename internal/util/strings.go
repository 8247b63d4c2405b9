// Package util provides common utility functions used across the codebase.
package util

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// DefaultNameLength is the widest process name shown before truncation.
const DefaultNameLength = 20

// JoinOrDefault joins strings with ", " or returns the default value for empty slices.
func JoinOrDefault(items []string, def string) string {
	if len(items) == 0 {
		return def
	}
	return strings.Join(items, ", ")
}

// Pluralize returns singular if count is 1, otherwise plural.
func Pluralize(count int, singular, plural string) string {
	if count == 1 {
		return singular
	}
	return plural
}

// TruncateName prepares a process name for a fixed-width column.
// An empty name becomes "[pid]". A name longer than maxLen runes keeps its
// first maxLen-3 runes followed by "...". maxLen of 3 or less disables
// truncation.
func TruncateName(name string, pid, maxLen int) string {
	if name == "" {
		return fmt.Sprintf("[%d]", pid)
	}
	if maxLen <= 3 || utf8.RuneCountInString(name) <= maxLen {
		return name
	}
	runes := []rune(name)
	return string(runes[:maxLen-3]) + "..."
}

// FormatBytes formats a byte count as a human-readable string.
func FormatBytes(bytes uint64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}

	div, exp := uint64(unit), 0
	for n := bytes / unit; n >= unit && exp < 4; n /= unit {
		div *= unit
		exp++
	}

	units := []string{"KB", "MB", "GB", "TB", "PB"}
	return fmt.Sprintf("%.1f %s", float64(bytes)/float64(div), units[exp])
}

// MB converts bytes to mebibytes.
func MB(bytes uint64) float64 {
	return float64(bytes) / (1024 * 1024)
}
