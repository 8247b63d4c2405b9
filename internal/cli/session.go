package cli

import (
	"github.com/rileyhilliard/sysmon/internal/collector"
	"github.com/rileyhilliard/sysmon/internal/config"
	"github.com/rileyhilliard/sysmon/internal/logger"
	"github.com/rileyhilliard/sysmon/internal/sample"
	"github.com/rileyhilliard/sysmon/internal/session"
	"github.com/rileyhilliard/sysmon/internal/terminate"
)

// newSource builds the sampling backend. Tests replace it.
var newSource = func(cfg *config.Config) (sample.Source, error) {
	kind, err := collector.ParseKind(cfg.Source)
	if err != nil {
		return nil, err
	}
	return collector.New(collector.Options{
		Kind:     kind,
		ProcRoot: cfg.ProcRoot,
		Logger:   logger.NewEnvLogger("[collector]"),
	})
}

// newController wires a session controller from the resolved config.
func newController(cfg *config.Config, term terminate.Terminator) (*session.Controller, error) {
	src, err := newSource(cfg)
	if err != nil {
		return nil, err
	}

	return session.New(session.Options{
		Source:        src,
		Terminator:    term,
		Logger:        logger.NewEnvLogger("[session]"),
		Cadence:       cfg.Cadence,
		FastPathDelay: cfg.FastPathDelay,
		Sort:          cfg.SortMode(),
	}), nil
}
