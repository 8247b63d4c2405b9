// Package accounting converts cumulative CPU and memory counters into
// per-interval percentages.
//
// Accumulate is a pure function: the caller owns State, threads it from one
// cycle to the next, and supplies the elapsed time measured on a monotonic
// clock. Nothing in this package reads the clock or the operating system.
package accounting

import (
	"math"
	"time"

	"github.com/rileyhilliard/sysmon/internal/sample"
)

// FallbackInterval replaces a non-positive elapsed interval, in seconds.
const FallbackInterval = 1.0

// DefaultTicksPerSecond is Linux USER_HZ, used when a source reports zero.
const DefaultTicksPerSecond = 100

// Metric is the derived view of one process for one cycle.
type Metric struct {
	PID  int
	Name string

	// CPUPercent is not divided by the number of cores: one fully busy core
	// over the interval reads 100, and N busy cores can push a single
	// process past 100.
	CPUPercent float64
	MemPercent float64

	RSSBytes uint64
}

// State is what the engine remembers between cycles.
type State struct {
	// Ticks maps PID to the CPUTicks observed in the most recent snapshot.
	// It holds exactly the PIDs of that snapshot.
	Ticks map[int]uint64

	SystemTicks uint64
	Taken       time.Time
}

// NewState returns an empty state for the first cycle.
func NewState() State {
	return State{Ticks: make(map[int]uint64)}
}

// Stamp returns a copy of s with Taken set to t.
func (s State) Stamp(t time.Time) State {
	s.Taken = t
	return s
}

// Len returns the number of tracked processes.
func (s State) Len() int {
	return len(s.Ticks)
}

// Has reports whether pid was present in the last snapshot.
func (s State) Has(pid int) bool {
	_, ok := s.Ticks[pid]
	return ok
}

// Accumulate computes one cycle of metrics and the state that replaces prev.
//
// A process seen for the first time reports 0% CPU. A tick counter that went
// backwards (PID reuse or reset) yields a zero delta. Processes missing from
// procs are dropped from both the output and the returned state.
func Accumulate(prev State, procs []sample.Process, sys sample.System, elapsed float64, ticksPerSecond uint64) ([]Metric, State) {
	if elapsed <= 0 || math.IsNaN(elapsed) || math.IsInf(elapsed, 0) {
		elapsed = FallbackInterval
	}
	if ticksPerSecond == 0 {
		ticksPerSecond = DefaultTicksPerSecond
	}

	next := State{
		Ticks:       make(map[int]uint64, len(procs)),
		SystemTicks: sys.CPUTicks,
		Taken:       prev.Taken,
	}
	metrics := make([]Metric, 0, len(procs))

	for _, p := range procs {
		prior, ok := prev.Ticks[p.PID]
		if !ok {
			prior = p.CPUTicks
		}

		cpuSeconds := float64(TickDelta(prior, p.CPUTicks)) / float64(ticksPerSecond)

		metrics = append(metrics, Metric{
			PID:        p.PID,
			Name:       p.Name,
			CPUPercent: cpuSeconds / elapsed * 100,
			MemPercent: MemPercent(p.RSSBytes, sys.MemTotalBytes),
			RSSBytes:   p.RSSBytes,
		})
		next.Ticks[p.PID] = p.CPUTicks
	}

	return metrics, next
}

// TickDelta returns current-prior, or 0 when the counter went backwards.
func TickDelta(prior, current uint64) uint64 {
	if current <= prior {
		return 0
	}
	return current - prior
}

// MemPercent returns rss as a percentage of total, or 0 when total is 0.
func MemPercent(rss, total uint64) float64 {
	if total == 0 {
		return 0
	}
	return float64(rss) / float64(total) * 100
}

// Aggregate returns the sum of every metric's CPUPercent. It is a load
// indicator with no ceiling and routinely exceeds 100 on multi-core hosts.
func Aggregate(metrics []Metric) float64 {
	var sum float64
	for _, m := range metrics {
		sum += m.CPUPercent
	}
	return sum
}
