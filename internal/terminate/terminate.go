// Package terminate sends termination signals to processes.
package terminate

import (
	"fmt"

	"github.com/rileyhilliard/sysmon/internal/errors"
)

// Signal is the kind of termination requested.
type Signal int

const (
	// Polite asks the process to exit (SIGTERM).
	Polite Signal = iota
	// Forceful kills the process outright (SIGKILL).
	Forceful
)

// String returns the conventional signal name.
func (s Signal) String() string {
	switch s {
	case Forceful:
		return "SIGKILL"
	default:
		return "SIGTERM"
	}
}

// Terminator delivers a Signal to a PID.
type Terminator interface {
	Terminate(pid int, sig Signal) error
}

// Func adapts a plain function to the Terminator interface.
type Func func(pid int, sig Signal) error

// Terminate calls f.
func (f Func) Terminate(pid int, sig Signal) error {
	return f(pid, sig)
}

// OS is the Terminator backed by the operating system's kill call.
type OS struct{}

// New returns the operating system Terminator.
func New() OS {
	return OS{}
}

// Terminate sends sig to pid. Permission and "no such process" failures are
// returned as ErrSignal errors and are expected in normal use.
func (OS) Terminate(pid int, sig Signal) error {
	if pid <= 0 {
		return errors.New(errors.ErrSignal,
			fmt.Sprintf("Refusing to signal pid %d", pid),
			"Pass the PID of a single running process.")
	}
	if err := send(pid, sig); err != nil {
		return errors.WrapWithCode(err, errors.ErrSignal,
			fmt.Sprintf("Failed to send %s to %d", sig, pid),
			"Check the process still exists and that you own it (or run as root).")
	}
	return nil
}
