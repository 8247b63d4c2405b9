package session

import (
	"context"
	"sync"
	"time"

	"github.com/rileyhilliard/sysmon/internal/sample"
	"github.com/rileyhilliard/sysmon/internal/terminate"
)

// fakeSource replays a fixed reading until told otherwise.
type fakeSource struct {
	procs   []sample.Process
	sys     sample.System
	procErr error
	sysErr  error
}

func (f *fakeSource) Processes(ctx context.Context) ([]sample.Process, error) {
	if f.procErr != nil {
		return nil, f.procErr
	}
	return f.procs, nil
}

func (f *fakeSource) System(ctx context.Context) (sample.System, error) {
	return f.sys, f.sysErr
}

func (f *fakeSource) TicksPerSecond() uint64 { return 100 }

type killCall struct {
	pid int
	sig terminate.Signal
}

// recordingTerminator records every call and returns err.
type recordingTerminator struct {
	mu    sync.Mutex
	calls []killCall
	err   error
}

func (r *recordingTerminator) Terminate(pid int, sig terminate.Signal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, killCall{pid, sig})
	return r.err
}

// fakeClock advances only when told to.
type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }
