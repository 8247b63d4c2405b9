//go:build unix

package terminate

import "golang.org/x/sys/unix"

func send(pid int, sig Signal) error {
	s := unix.SIGTERM
	if sig == Forceful {
		s = unix.SIGKILL
	}
	return unix.Kill(pid, s)
}
