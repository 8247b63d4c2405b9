package monitor

import (
	"context"
	stderrors "errors"
	"io"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/sysmon/internal/errors"
	"github.com/rileyhilliard/sysmon/internal/logger"
	"github.com/rileyhilliard/sysmon/internal/session"
)

// DebugLogFile is where log output goes while the dashboard owns the
// terminal and SYSMON_DEBUG is set.
const DebugLogFile = "sysmon-debug.log"

// Run starts the dashboard and blocks until the user quits or ctx is done.
func Run(ctx context.Context, ctrl *session.Controller, opts Options) error {
	restore, err := redirectLog()
	if err != nil {
		return err
	}
	defer restore()

	opts.Context = ctx
	p := tea.NewProgram(NewModel(ctrl, opts), tea.WithAltScreen(), tea.WithContext(ctx))

	if _, err := p.Run(); err != nil {
		if stderrors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return errors.WrapWithCode(err, errors.ErrTerminal,
			"Dashboard exited unexpectedly",
			"Try 'sysmon snapshot' for plain output.")
	}
	return nil
}

// redirectLog keeps log output off the alternate screen: to a file in the
// temp dir when debugging, discarded otherwise.
func redirectLog() (func(), error) {
	prev := log.Writer()
	restore := func() { log.SetOutput(prev) }

	if !logger.DebugEnabled() {
		log.SetOutput(io.Discard)
		return restore, nil
	}

	f, err := tea.LogToFile(filepath.Join(os.TempDir(), DebugLogFile), "sysmon")
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrTerminal,
			"Can't open debug log",
			"Unset "+logger.DebugEnv+" or check that the temp dir is writable.")
	}
	return func() {
		f.Close()
		restore()
	}, nil
}
