// Package sample defines the raw readings sysmon takes from the operating
// system and the Source interface that produces them.
//
// Readings are cumulative counters. Turning them into rates is the job of the
// accounting package; nothing here keeps state between samples.
package sample

import (
	"context"
	"time"
)

// Process is a reading of one process at one sampling instant.
type Process struct {
	// PID is unique among live processes at one instant but may be reused
	// by a new process after the old one exits.
	PID  int
	Name string

	// CPUTicks is the cumulative user+system CPU time consumed since the
	// process started, in platform clock ticks.
	CPUTicks uint64

	RSSBytes uint64
}

// System is a system-wide reading taken alongside the process list.
type System struct {
	// CPUTicks is the sum of every CPU-state counter
	// (user, nice, system, idle, iowait, irq, softirq, steal).
	CPUTicks uint64

	MemTotalBytes     uint64
	MemAvailableBytes uint64
	MemFreeBytes      uint64

	Uptime time.Duration
}

// MemUsedBytes returns total minus available memory, floored at zero.
func (s System) MemUsedBytes() uint64 {
	if s.MemAvailableBytes >= s.MemTotalBytes {
		return 0
	}
	return s.MemTotalBytes - s.MemAvailableBytes
}

// Snapshot bundles one full reading.
type Snapshot struct {
	Processes []Process
	System    System

	// Taken is when the reading started. It carries the monotonic clock
	// reading from time.Now, so Sub between two snapshots is immune to
	// wall-clock jumps.
	Taken time.Time

	// Err records a degraded read. The snapshot is still usable: a failed
	// process scan leaves Processes empty and a failed system read leaves
	// System zeroed.
	Err error
}

// Source yields process and system readings on demand.
//
// Processes is best-effort: a process that vanishes or cannot be read
// mid-scan is skipped rather than failing the whole call.
type Source interface {
	Processes(ctx context.Context) ([]Process, error)
	System(ctx context.Context) (System, error)

	// TicksPerSecond is the platform clock-tick rate, read once when the
	// source is built.
	TicksPerSecond() uint64
}
