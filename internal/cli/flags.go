package cli

import (
	"fmt"
	"time"

	"github.com/rileyhilliard/sysmon/internal/config"
	"github.com/rileyhilliard/sysmon/internal/errors"
	"github.com/rileyhilliard/sysmon/internal/ui"
	"github.com/spf13/cobra"
)

// GlobalFlags holds the flags shared by every command.
type GlobalFlags struct {
	Config   string
	NoColor  bool
	Cadence  string
	Sort     string
	Source   string
	ProcRoot string
}

// AddGlobalFlags registers the global flags as persistent flags on cmd.
func AddGlobalFlags(cmd *cobra.Command, flags *GlobalFlags) {
	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.Config, "config", "", "config file (default: ./"+config.ConfigFileName+", then ~/"+config.GlobalConfigDir+"/"+config.GlobalConfigFile+")")
	pf.BoolVar(&flags.NoColor, "no-color", false, "disable colored output")
	pf.StringVar(&flags.Cadence, "cadence", "", "refresh interval (e.g., 1s, 500ms)")
	pf.StringVar(&flags.Sort, "sort", "", "initial sort: cpu, mem or pid")
	pf.StringVar(&flags.Source, "source", "", "sampling backend: auto, procfs or psutil")
	pf.StringVar(&flags.ProcRoot, "proc-root", "", "procfs mount point")
}

// ParseCadence parses a --cadence value. Returns zero duration if the flag is
// empty.
func ParseCadence(flag string) (time.Duration, error) {
	if flag == "" {
		return 0, nil
	}

	duration, err := time.ParseDuration(flag)
	if err != nil {
		return 0, errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("'%s' doesn't look like a valid cadence", flag),
			"Try something like 1s, 2s, or 500ms.")
	}
	return duration, nil
}

// ApplyFlags overlays the flags that were given on cfg.
func ApplyFlags(cfg *config.Config, flags GlobalFlags) error {
	if flags.Cadence != "" {
		d, err := ParseCadence(flags.Cadence)
		if err != nil {
			return err
		}
		cfg.Cadence = d
	}
	if flags.Sort != "" {
		cfg.Sort = flags.Sort
	}
	if flags.Source != "" {
		cfg.Source = flags.Source
	}
	if flags.ProcRoot != "" {
		cfg.ProcRoot = config.Expand(flags.ProcRoot)
	}
	if flags.NoColor {
		cfg.Color = "never"
	}
	return nil
}

// loadSettings resolves the effective config: file (or defaults with
// environment overrides), then flags, then validation. It also applies the
// resulting color mode.
func loadSettings(flags GlobalFlags) (*config.Config, error) {
	cfg, _, err := config.LoadOrDefault(flags.Config)
	if err != nil {
		return nil, err
	}
	if err := ApplyFlags(cfg, flags); err != nil {
		return nil, err
	}
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}

	ui.ApplyColorMode(cfg.NoColor())
	return cfg, nil
}
