//go:build !linux

package collector

import (
	"github.com/rileyhilliard/sysmon/internal/errors"
	"github.com/rileyhilliard/sysmon/internal/logger"
	"github.com/rileyhilliard/sysmon/internal/sample"
)

// NewProcfs is only available on Linux.
func NewProcfs(root string, log logger.Logger) (sample.Source, error) {
	return nil, errors.New(errors.ErrSource,
		"The procfs source is only available on Linux",
		"Use --source psutil (or auto).")
}
