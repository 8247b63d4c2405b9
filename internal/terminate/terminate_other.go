//go:build !unix

package terminate

import "github.com/rileyhilliard/sysmon/internal/errors"

func send(pid int, sig Signal) error {
	return errors.New(errors.ErrSignal,
		"Sending signals is not supported on this platform",
		"Use the platform's task manager to end the process.")
}
