package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"
	"github.com/rileyhilliard/sysmon/internal/config"
	"github.com/rileyhilliard/sysmon/internal/errors"
	"github.com/rileyhilliard/sysmon/internal/ui"
	"golang.org/x/term"
)

// InitOptions holds options for the config init command.
type InitOptions struct {
	Global         bool // Write ~/.config/sysmon/config.yaml instead of ./.sysmon.yaml
	Overwrite      bool // Overwrite existing config without asking
	NonInteractive bool // Never prompt
}

// Init writes a commented default config file.
func Init(w io.Writer, opts InitOptions) error {
	configPath := filepath.Join(".", config.ConfigFileName)
	if opts.Global {
		configPath = config.GlobalPath()
		if configPath == "" {
			return errors.New(errors.ErrConfig,
				"Can't find your home directory",
				"Set HOME, or run 'sysmon config init' without --global.")
		}
	}

	overwrite := opts.Overwrite
	if _, err := os.Stat(configPath); err == nil && !overwrite {
		if opts.NonInteractive || !term.IsTerminal(int(os.Stdin.Fd())) {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Config file already exists: %s", configPath),
				"Use --force to overwrite")
		}

		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Config file '%s' already exists. Overwrite?", configPath)).
					Value(&overwrite),
			),
		)
		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Try running with --force to overwrite")
		}
		if !overwrite {
			fmt.Fprintln(w, "Cancelled.")
			return nil
		}
	}

	if err := config.Write(configPath, config.DefaultConfig(), overwrite); err != nil {
		return err
	}

	fmt.Fprintf(w, "%s Created %s\n", ui.SymbolSuccess, configPath)
	return nil
}
