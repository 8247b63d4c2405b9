// Package collector implements sample.Source on top of the host operating
// system.
//
// Two backends are available:
//
//	Procfs - reads /proc directly via github.com/prometheus/procfs (Linux)
//	Psutil - uses github.com/shirou/gopsutil, which covers macOS and the BSDs
//
// Both are best-effort: a process that exits or becomes unreadable between
// listing and reading is skipped and logged at debug level.
package collector

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/rileyhilliard/sysmon/internal/errors"
	"github.com/rileyhilliard/sysmon/internal/logger"
	"github.com/rileyhilliard/sysmon/internal/sample"
)

// Kind names a collector backend.
type Kind string

const (
	KindAuto   Kind = "auto"
	KindProcfs Kind = "procfs"
	KindPsutil Kind = "psutil"
)

// DefaultProcRoot is where procfs is normally mounted.
const DefaultProcRoot = "/proc"

// Options configures New.
type Options struct {
	Kind     Kind
	ProcRoot string
	Logger   logger.Logger
}

// ParseKind validates a backend name from config or flags.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case "", KindAuto:
		return KindAuto, nil
	case KindProcfs, KindPsutil:
		return k, nil
	default:
		return "", errors.New(errors.ErrConfig,
			fmt.Sprintf("Unknown source '%s'", s),
			"Valid sources are: auto, procfs, psutil")
	}
}

// Resolve turns KindAuto into a concrete backend for goos.
func Resolve(k Kind, goos string) Kind {
	if k != KindAuto && k != "" {
		return k
	}
	if goos == "linux" {
		return KindProcfs
	}
	return KindPsutil
}

// New builds the Source selected by opts.
func New(opts Options) (sample.Source, error) {
	log := opts.Logger
	if log == nil {
		log = logger.NewEnvLogger("[collector]")
	}

	switch Resolve(opts.Kind, runtime.GOOS) {
	case KindProcfs:
		root := opts.ProcRoot
		if root == "" {
			root = DefaultProcRoot
		}
		src, err := NewProcfs(root, log)
		if err != nil {
			return nil, err
		}
		return src, nil
	case KindPsutil:
		return NewPsutil(log), nil
	default:
		return nil, errors.New(errors.ErrConfig,
			fmt.Sprintf("Unknown source '%s'", opts.Kind),
			"Valid sources are: auto, procfs, psutil")
	}
}
