package cli

import (
	"context"
	"os"

	"github.com/rileyhilliard/sysmon/internal/errors"
	"github.com/rileyhilliard/sysmon/internal/monitor"
	"github.com/rileyhilliard/sysmon/internal/terminate"
	"golang.org/x/term"
)

// monitorCommand starts the interactive dashboard.
func monitorCommand(ctx context.Context, flags GlobalFlags) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New(errors.ErrTerminal,
			"sysmon needs an interactive terminal",
			"Use 'sysmon snapshot' (or 'sysmon snapshot --json') for non-interactive output.")
	}

	cfg, err := loadSettings(flags)
	if err != nil {
		return err
	}

	ctrl, err := newController(cfg, terminate.New())
	if err != nil {
		return err
	}

	return monitor.Run(ctx, ctrl, monitor.Options{MaxNameLength: cfg.MaxNameLength})
}
