package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rileyhilliard/sysmon/internal/errors"
	"gopkg.in/yaml.v3"
)

// keyComments documents each key in files written by Write.
var keyComments = map[string]string{
	"version":         "Config schema version.",
	"cadence":         "Target interval between refreshes.",
	"fast_path_delay": "Refresh delay after a keypress.",
	"max_name_length": "Process names longer than this are truncated with \"...\".",
	"sort":            "Initial sort: cpu, mem or pid.",
	"source":          "Sampling backend: auto, procfs (Linux) or psutil.",
	"proc_root":       "Where procfs is mounted. Supports ~ and ${VAR}.",
	"color":           "auto or never.",
}

// Marshal renders cfg as YAML with a comment above every key.
func Marshal(cfg *Config) ([]byte, error) {
	var doc yaml.Node
	if err := doc.Encode(toFile(cfg)); err != nil {
		return nil, err
	}

	// Keys and values alternate in a mapping node's Content.
	for i := 0; i+1 < len(doc.Content); i += 2 {
		key := doc.Content[i]
		if c, ok := keyComments[key.Value]; ok {
			key.HeadComment = c
		}
	}
	doc.HeadComment = "sysmon configuration"

	return yaml.Marshal(&doc)
}

// Write saves cfg to path, creating parent directories. An existing file is
// only replaced when force is set.
func Write(path string, cfg *Config, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return errors.New(errors.ErrConfig,
				"Config file already exists: "+path,
				"Pass --force to overwrite it.")
		}
	}

	data, err := Marshal(cfg)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, "Failed to encode config", "")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("Can't create %s", filepath.Dir(path)),
			"Check directory permissions")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Can't write "+path,
			"Check file permissions")
	}
	return nil
}

// fileConfig is the on-disk shape: durations as strings so the file reads
// "1s" rather than nanoseconds.
type fileConfig struct {
	Version       int    `yaml:"version"`
	Cadence       string `yaml:"cadence"`
	FastPathDelay string `yaml:"fast_path_delay"`
	MaxNameLength int    `yaml:"max_name_length"`
	Sort          string `yaml:"sort"`
	Source        string `yaml:"source"`
	ProcRoot      string `yaml:"proc_root"`
	Color         string `yaml:"color"`
}

func toFile(cfg *Config) fileConfig {
	return fileConfig{
		Version:       cfg.Version,
		Cadence:       cfg.Cadence.String(),
		FastPathDelay: cfg.FastPathDelay.String(),
		MaxNameLength: cfg.MaxNameLength,
		Sort:          cfg.Sort,
		Source:        cfg.Source,
		ProcRoot:      cfg.ProcRoot,
		Color:         cfg.Color,
	}
}
