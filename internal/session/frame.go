package session

import (
	"time"

	"github.com/rileyhilliard/sysmon/internal/accounting"
	"github.com/rileyhilliard/sysmon/internal/ranking"
)

// Summary is the system-wide header of a Frame.
type Summary struct {
	Uptime time.Duration

	// AggregateCPU is the sum of per-process CPU%. It has no ceiling.
	AggregateCPU float64

	MemTotalBytes     uint64
	MemAvailableBytes uint64
	MemUsedPercent    float64

	ProcessCount int
}

// Frame is everything the presentation layer needs to draw one refresh.
type Frame struct {
	Rows    []accounting.Metric
	Summary Summary

	Sort      ranking.SortMode
	SortLabel string

	// Status is a one-shot message, present in exactly one frame.
	Status string

	State State
	Taken time.Time
}

// Visible returns at most n rows from the top of the ranking. n below 1 is
// treated as 1 so there is always room for the leading row.
func (f Frame) Visible(n int) []accounting.Metric {
	if n < 1 {
		n = 1
	}
	if n > len(f.Rows) {
		n = len(f.Rows)
	}
	return f.Rows[:n]
}
