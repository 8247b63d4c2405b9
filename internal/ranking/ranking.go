// Package ranking orders process metrics for display.
package ranking

import (
	"sort"
	"strings"

	"github.com/rileyhilliard/sysmon/internal/accounting"
)

// SortMode selects the primary sort key.
type SortMode int

const (
	ByCPU SortMode = iota
	ByMemory
	ByPID
)

// numModes is the length of the CycleSort rotation.
const numModes = 3

// String returns the column label shown in the sort indicator.
func (s SortMode) String() string {
	switch s {
	case ByCPU:
		return "CPU %"
	case ByMemory:
		return "MEM %"
	case ByPID:
		return "PID"
	default:
		return "CPU %"
	}
}

// Next cycles CPU -> MEM -> PID -> CPU.
func (s SortMode) Next() SortMode {
	return SortMode((int(s) + 1) % numModes)
}

// ParseSortMode maps a config or flag value to a SortMode.
func ParseSortMode(s string) (SortMode, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cpu", "":
		return ByCPU, true
	case "mem", "memory":
		return ByMemory, true
	case "pid":
		return ByPID, true
	default:
		return ByCPU, false
	}
}

// Rank returns a sorted copy of metrics. The input slice is not modified.
//
// CPU and memory sort descending; ties fall back to PID ascending, so the
// result is a total order and equal inputs always rank identically.
func Rank(metrics []accounting.Metric, mode SortMode) []accounting.Metric {
	ranked := make([]accounting.Metric, len(metrics))
	copy(ranked, metrics)

	var less func(a, b accounting.Metric) bool
	switch mode {
	case ByMemory:
		less = func(a, b accounting.Metric) bool {
			if a.MemPercent != b.MemPercent {
				return a.MemPercent > b.MemPercent
			}
			return a.PID < b.PID
		}
	case ByPID:
		less = func(a, b accounting.Metric) bool {
			return a.PID < b.PID
		}
	default:
		less = func(a, b accounting.Metric) bool {
			if a.CPUPercent != b.CPUPercent {
				return a.CPUPercent > b.CPUPercent
			}
			return a.PID < b.PID
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return less(ranked[i], ranked[j])
	})
	return ranked
}
