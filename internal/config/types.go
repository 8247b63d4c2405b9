package config

import "time"

// CurrentConfigVersion is the schema version for the config file.
// Increment when making breaking changes to the config structure.
const CurrentConfigVersion = 1

// Config represents the sysmon configuration file.
type Config struct {
	Version int `yaml:"version" mapstructure:"version"`

	// Cadence is the target interval between refreshes.
	Cadence time.Duration `yaml:"cadence" mapstructure:"cadence"`

	// FastPathDelay is how soon the screen refreshes after a keypress
	// (sort change, returning from the kill prompt).
	FastPathDelay time.Duration `yaml:"fast_path_delay" mapstructure:"fast_path_delay"`

	// MaxNameLength is the widest process name shown. Longer names keep
	// MaxNameLength-3 characters and end in "...".
	MaxNameLength int `yaml:"max_name_length" mapstructure:"max_name_length"`

	// Sort is the initial sort mode: cpu, mem or pid.
	Sort string `yaml:"sort" mapstructure:"sort"`

	// Source picks the sampling backend: auto, procfs or psutil.
	Source string `yaml:"source" mapstructure:"source"`

	// ProcRoot is where procfs is mounted. Supports ~ and ${VAR}.
	ProcRoot string `yaml:"proc_root" mapstructure:"proc_root"`

	// Color is "auto" or "never".
	Color string `yaml:"color" mapstructure:"color"`
}

// Defaults
const (
	DefaultCadence       = time.Second
	DefaultFastPathDelay = 200 * time.Millisecond
	DefaultMaxNameLength = 20
	DefaultSort          = "cpu"
	DefaultSource        = "auto"
	DefaultProcRoot      = "/proc"
	DefaultColor         = "auto"
)

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version:       CurrentConfigVersion,
		Cadence:       DefaultCadence,
		FastPathDelay: DefaultFastPathDelay,
		MaxNameLength: DefaultMaxNameLength,
		Sort:          DefaultSort,
		Source:        DefaultSource,
		ProcRoot:      DefaultProcRoot,
		Color:         DefaultColor,
	}
}
