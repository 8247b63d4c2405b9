package config

import (
	"fmt"
	"time"

	"github.com/rileyhilliard/sysmon/internal/collector"
	"github.com/rileyhilliard/sysmon/internal/errors"
	"github.com/rileyhilliard/sysmon/internal/ranking"
	"github.com/rileyhilliard/sysmon/internal/util"
)

// Limits enforced by Validate.
const (
	MinCadence       = 100 * time.Millisecond
	MinNameLength    = 4
	MaxNameLength    = 256
	maxFastPathDelay = 10 * time.Second
)

// ValidSorts and ValidColors list the accepted enum values, for messages.
var (
	ValidSorts  = []string{"cpu", "mem", "pid"}
	ValidColors = []string{"auto", "never"}
)

// Validate checks the config for errors and returns structured error messages.
func Validate(cfg *Config) error {
	if cfg.Version > CurrentConfigVersion {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("This config is from the future (version %d, but sysmon only knows up to %d)", cfg.Version, CurrentConfigVersion),
			"Upgrade sysmon, or lower 'version' in the config file.")
	}

	if cfg.Cadence < MinCadence {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("cadence %s is too short", cfg.Cadence),
			fmt.Sprintf("Use at least %s, e.g. 'cadence: 1s'.", MinCadence))
	}

	if cfg.FastPathDelay < 0 || cfg.FastPathDelay > maxFastPathDelay {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("fast_path_delay %s is out of range", cfg.FastPathDelay),
			fmt.Sprintf("Use a value between 0s and %s, e.g. '200ms'.", maxFastPathDelay))
	}

	if cfg.MaxNameLength < MinNameLength || cfg.MaxNameLength > MaxNameLength {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("max_name_length %d is out of range", cfg.MaxNameLength),
			fmt.Sprintf("Use a value between %d and %d.", MinNameLength, MaxNameLength))
	}

	if _, ok := ranking.ParseSortMode(cfg.Sort); !ok {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Unknown sort '%s'", cfg.Sort),
			"Valid sorts are: "+util.JoinOrDefault(ValidSorts, "(none)"))
	}

	if _, err := collector.ParseKind(cfg.Source); err != nil {
		return err
	}

	if cfg.ProcRoot == "" {
		return errors.New(errors.ErrConfig,
			"proc_root is empty",
			"Set it to where procfs is mounted, usually /proc.")
	}

	switch cfg.Color {
	case "", "auto", "never":
	default:
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Unknown color mode '%s'", cfg.Color),
			"Valid modes are: "+util.JoinOrDefault(ValidColors, "(none)"))
	}

	return nil
}

// SortMode returns the parsed initial sort mode. Call Validate first.
func (c *Config) SortMode() ranking.SortMode {
	mode, _ := ranking.ParseSortMode(c.Sort)
	return mode
}

// NoColor reports whether colour output is disabled.
func (c *Config) NoColor() bool {
	return c.Color == "never"
}
