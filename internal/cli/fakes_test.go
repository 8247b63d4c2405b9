package cli

import (
	"context"
	"sync"
	"time"

	"github.com/rileyhilliard/sysmon/internal/config"
	"github.com/rileyhilliard/sysmon/internal/sample"
	"github.com/rileyhilliard/sysmon/internal/terminate"
)

// steppingSource adds perCall[i] ticks to process i on every read, so the
// second of two samples shows a predictable CPU rate.
type steppingSource struct {
	mu      sync.Mutex
	names   []string
	perCall []uint64
	ticks   []uint64
	sys     sample.System
}

func newSteppingSource() *steppingSource {
	return &steppingSource{
		names:   []string{"idle-daemon", "busy-worker", ""},
		perCall: []uint64{0, 50, 10},
		ticks:   make([]uint64, 3),
		sys:     sample.System{MemTotalBytes: 400 << 20, MemAvailableBytes: 100 << 20, Uptime: 42 * time.Second},
	}
}

func (s *steppingSource) Processes(context.Context) ([]sample.Process, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]sample.Process, len(s.names))
	for i, name := range s.names {
		s.ticks[i] += s.perCall[i]
		out[i] = sample.Process{
			PID:      100 + i,
			Name:     name,
			CPUTicks: s.ticks[i],
			RSSBytes: uint64(i+1) << 20,
		}
	}
	return out, nil
}

func (s *steppingSource) System(context.Context) (sample.System, error) { return s.sys, nil }
func (s *steppingSource) TicksPerSecond() uint64                          { return 100 }

// useSource swaps newSource for the duration of the test.
func useSource(t interface{ Cleanup(func()) }, src sample.Source) {
	prev := newSource
	newSource = func(*config.Config) (sample.Source, error) { return src, nil }
	t.Cleanup(func() { newSource = prev })
}

type killCall struct {
	pid int
	sig terminate.Signal
}

type recordingTerminator struct {
	calls []killCall
	err   error
}

func (r *recordingTerminator) Terminate(pid int, sig terminate.Signal) error {
	r.calls = append(r.calls, killCall{pid, sig})
	return r.err
}
