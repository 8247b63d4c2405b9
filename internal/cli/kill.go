package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/rileyhilliard/sysmon/internal/errors"
	"github.com/rileyhilliard/sysmon/internal/session"
	"github.com/rileyhilliard/sysmon/internal/terminate"
	"github.com/rileyhilliard/sysmon/internal/ui"
	"golang.org/x/term"
)

// KillOptions holds options for the kill command.
type KillOptions struct {
	Force bool // SIGKILL instead of SIGTERM
	Yes   bool // Skip the confirmation prompt
}

// confirmFunc asks whether sig should really be sent to pid.
type confirmFunc func(pid int, sig terminate.Signal) (bool, error)

// killCommand sends a single signal to the process named by arg.
func killCommand(w io.Writer, arg string, opts KillOptions, t terminate.Terminator, confirm confirmFunc) error {
	pid, ok := session.ParseKillTarget(arg)
	if !ok {
		return errors.New(errors.ErrSignal,
			fmt.Sprintf("'%s' is not a process ID", arg),
			"Pass a positive number, e.g. 'sysmon kill 1234'.")
	}

	sig := terminate.Polite
	if opts.Force {
		sig = terminate.Forceful
	}

	if !opts.Yes {
		ok, err := confirm(pid, sig)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(w, "Cancelled.")
			return nil
		}
	}

	if err := t.Terminate(pid, sig); err != nil {
		return err
	}

	fmt.Fprintf(w, "%s %s\n", ui.SymbolSuccess, session.KillResult{PID: pid, Signal: sig}.Message())
	return nil
}

// confirmKill prompts on the terminal.
func confirmKill(pid int, sig terminate.Signal) (bool, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return false, errors.New(errors.ErrTerminal,
			"Can't ask for confirmation without a terminal",
			"Pass --yes to skip the prompt.")
	}

	var confirm bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Send %s to %d?", sig, pid)).
				Description("The process may lose unsaved work").
				Value(&confirm),
		),
	)
	if err := form.Run(); err != nil {
		return false, errors.WrapWithCode(err, errors.ErrTerminal,
			"Failed to get user input",
			"Pass --yes to skip the prompt.")
	}
	return confirm, nil
}
