// Package session drives one monitoring session: it paces sampling, threads
// accounting state from cycle to cycle, applies the current sort order and
// routes user commands, including the two-step kill prompt.
//
// A Controller is not safe for concurrent use. Everything except Sample must
// be called from the goroutine that owns it; Sample only touches the Source
// and may run elsewhere.
package session

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/rileyhilliard/sysmon/internal/accounting"
	"github.com/rileyhilliard/sysmon/internal/errors"
	"github.com/rileyhilliard/sysmon/internal/logger"
	"github.com/rileyhilliard/sysmon/internal/ranking"
	"github.com/rileyhilliard/sysmon/internal/sample"
	"github.com/rileyhilliard/sysmon/internal/terminate"
)

const (
	DefaultCadence       = time.Second
	DefaultFastPathDelay = 200 * time.Millisecond

	// KillPrompt is shown while reading the kill target.
	KillPrompt = "Enter PID to kill: "

	ackSuffix = " Press any key to continue..."
)

// Options configures a Controller.
type Options struct {
	Source     sample.Source
	Terminator terminate.Terminator
	Logger     logger.Logger

	Cadence       time.Duration // target interval between refreshes
	FastPathDelay time.Duration // refresh delay after handled input
	Sort          ranking.SortMode

	// Clock defaults to time.Now. It must return readings with a monotonic
	// component for elapsed time to survive wall-clock jumps.
	Clock func() time.Time
}

// Transition reports the outcome of one input.
type Transition struct {
	From  State
	To    State
	Phase Phase

	// Handled is false when the input was ignored or was None.
	Handled bool
}

// KillResult records the last kill attempt.
type KillResult struct {
	PID    int
	Signal terminate.Signal
	Err    error
}

// Message is the text shown once the attempt has been made.
func (r KillResult) Message() string {
	if r.Err != nil {
		return fmt.Sprintf("Failed to kill %d (check permissions).", r.PID)
	}
	return fmt.Sprintf("Sent %s to %d.", r.Signal, r.PID)
}

// Controller owns the session state machine and the accounting state.
type Controller struct {
	source     sample.Source
	terminator terminate.Terminator
	log        logger.Logger
	clock      func() time.Time

	cadence  time.Duration
	fastPath time.Duration
	tps      uint64

	state  State
	phase  Phase
	mode   ranking.SortMode
	engine accounting.State

	status   string
	lastKill *KillResult
	last     Frame
}

// New builds a Controller in the Polling state. Source and Terminator are
// required.
func New(opts Options) *Controller {
	c := &Controller{
		source:     opts.Source,
		terminator: opts.Terminator,
		log:        opts.Logger,
		clock:      opts.Clock,
		cadence:    opts.Cadence,
		fastPath:   opts.FastPathDelay,
		mode:       opts.Sort,
		state:      Polling,
	}
	if c.log == nil {
		c.log = logger.Noop()
	}
	if c.clock == nil {
		c.clock = time.Now
	}
	if c.cadence <= 0 {
		c.cadence = DefaultCadence
	}
	if c.fastPath <= 0 {
		c.fastPath = DefaultFastPathDelay
	}
	c.tps = c.source.TicksPerSecond()

	// The first cycle measures its interval from here.
	c.engine = accounting.NewState().Stamp(c.clock())
	c.last = Frame{Sort: c.mode, SortLabel: c.mode.String(), State: c.state}
	return c
}

// State returns the current top-level state.
func (c *Controller) State() State { return c.state }

// Phase returns the kill-prompt sub-phase.
func (c *Controller) Phase() Phase { return c.phase }

// Mode returns the active sort mode.
func (c *Controller) Mode() ranking.SortMode { return c.mode }

// Cadence returns the target refresh interval.
func (c *Controller) Cadence() time.Duration { return c.cadence }

// Engine returns the accounting state carried into the next cycle.
func (c *Controller) Engine() accounting.State { return c.engine }

// Last returns the most recently built frame.
func (c *Controller) Last() Frame { return c.last }

// LastKill returns the most recent kill attempt, or nil.
func (c *Controller) LastKill() *KillResult { return c.lastKill }

// Sample reads one snapshot from the Source. A failed process scan yields an
// empty process list and a failed system read yields whatever part
// succeeded; both are recorded in Snapshot.Err and never abort the cycle.
func (c *Controller) Sample(ctx context.Context) sample.Snapshot {
	snap := sample.Snapshot{Taken: c.clock()}

	procs, perr := c.source.Processes(ctx)
	if perr != nil {
		c.log.Warn("process scan failed: %v", perr)
		procs = nil
	}
	sys, serr := c.source.System(ctx)
	if serr != nil {
		c.log.Warn("system read failed: %v", serr)
	}

	snap.Processes = procs
	snap.System = sys
	snap.Err = stderrors.Join(perr, serr)
	return snap
}

// Apply runs accounting and ranking over snap and returns the frame to draw.
// A snapshot taken before the one already accounted for is discarded: the
// accounting state is left alone and the last frame is returned with ok
// false.
func (c *Controller) Apply(snap sample.Snapshot) (Frame, bool) {
	if snap.Taken.Before(c.engine.Taken) {
		c.log.Debug("discarding snapshot from %s, already at %s",
			snap.Taken.Format(time.RFC3339Nano), c.engine.Taken.Format(time.RFC3339Nano))
		return c.last, false
	}
	elapsed := snap.Taken.Sub(c.engine.Taken).Seconds()

	metrics, next := accounting.Accumulate(c.engine, snap.Processes, snap.System, elapsed, c.tps)
	c.engine = next.Stamp(snap.Taken)

	if snap.Err != nil {
		c.status = errors.Summary(snap.Err)
	}

	sys := snap.System
	summary := Summary{
		Uptime:            sys.Uptime,
		AggregateCPU:      accounting.Aggregate(metrics),
		MemTotalBytes:     sys.MemTotalBytes,
		MemAvailableBytes: sys.MemAvailableBytes,
		MemUsedPercent:    accounting.MemPercent(sys.MemUsedBytes(), sys.MemTotalBytes),
		ProcessCount:      len(metrics),
	}

	c.last = Frame{
		Rows:      ranking.Rank(metrics, c.mode),
		Summary:   summary,
		Sort:      c.mode,
		SortLabel: c.mode.String(),
		Status:    c.TakeStatus(),
		State:     c.state,
		Taken:     snap.Taken,
	}
	return c.last, true
}

// Step samples and applies in one call.
func (c *Controller) Step(ctx context.Context) Frame {
	f, _ := c.Apply(c.Sample(ctx))
	return f
}

// Handle applies a Polling command. Commands that arrive in any other state
// are ignored.
func (c *Controller) Handle(cmd Command) Transition {
	var ev event
	switch cmd {
	case Quit:
		ev = evQuit
	case CycleSort:
		ev = evCycleSort
	case Kill:
		ev = evKill
	default:
		ev = evNone
	}

	// Quit is honoured from the prompt too so ctrl+c always works.
	if c.state != Polling && ev != evQuit {
		return c.stay()
	}

	tr := c.fire(ev)
	if tr.Handled && cmd == CycleSort {
		c.mode = c.mode.Next()
		c.log.Debug("sort mode now %s", c.mode)
	}
	return tr
}

// SubmitKillTarget consumes the text typed at the kill prompt. A valid PID
// gets exactly one polite terminate request and moves to the acknowledgement
// phase; anything else returns straight to Polling without signalling.
func (c *Controller) SubmitKillTarget(input string) Transition {
	if c.state != AwaitingKillTarget || c.phase != PhaseEntry {
		return c.stay()
	}

	pid, ok := ParseKillTarget(input)
	if !ok {
		c.log.Debug("ignoring kill target %q", input)
		return c.fire(evInvalidTarget)
	}

	res := KillResult{PID: pid, Signal: terminate.Polite}
	res.Err = c.terminator.Terminate(pid, terminate.Polite)
	if res.Err != nil {
		c.log.Warn("kill %d failed: %v", pid, res.Err)
	} else {
		c.log.Info("sent %s to %d", res.Signal, pid)
	}
	c.lastKill = &res
	c.status = res.Message()

	return c.fire(evValidTarget)
}

// Acknowledge leaves the result screen.
func (c *Controller) Acknowledge() Transition {
	return c.fire(evAck)
}

// CancelKill abandons the kill prompt without signalling anything.
func (c *Controller) CancelKill() Transition {
	return c.fire(evCancel)
}

// Prompt returns the line to show while AwaitingKillTarget, or "" otherwise.
func (c *Controller) Prompt() string {
	switch {
	case c.state != AwaitingKillTarget:
		return ""
	case c.phase == PhaseAck && c.lastKill != nil:
		return c.lastKill.Message() + ackSuffix
	default:
		return KillPrompt
	}
}

// TakeStatus returns the pending status message and clears it.
func (c *Controller) TakeStatus() string {
	s := c.status
	c.status = ""
	return s
}

// NextDelay returns how long to wait before the next cycle so that cycles
// start roughly one cadence apart. It never returns a negative duration.
func (c *Controller) NextDelay(cycleStart, now time.Time) time.Duration {
	d := c.cadence - now.Sub(cycleStart)
	if d < 0 {
		return 0
	}
	return d
}

// FastPathDelay is the delay before the refresh that follows handled input.
func (c *Controller) FastPathDelay() time.Duration { return c.fastPath }

func (c *Controller) fire(ev event) Transition {
	t, ok := lookup(c.state, c.phase, ev)
	if !ok {
		return c.stay()
	}

	tr := Transition{From: c.state, To: t.to, Phase: t.phase, Handled: ev != evNone}
	if t.to != c.state || t.phase != c.phase {
		c.log.Debug("session %s -> %s", c.state, t.to)
	}
	c.state = t.to
	c.phase = t.phase
	c.last.State = c.state
	return tr
}

func (c *Controller) stay() Transition {
	return Transition{From: c.state, To: c.state, Phase: c.phase}
}
