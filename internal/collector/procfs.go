//go:build linux

package collector

import (
	"context"
	stderrors "errors"
	"fmt"
	"math"
	"time"

	"github.com/prometheus/procfs"
	"github.com/rileyhilliard/sysmon/internal/errors"
	"github.com/rileyhilliard/sysmon/internal/logger"
	"github.com/rileyhilliard/sysmon/internal/sample"
	"golang.org/x/sys/unix"
)

// linuxUserHZ is the tick rate the kernel exposes in /proc. It is fixed by
// the ABI regardless of CONFIG_HZ, and procfs assumes the same value.
const linuxUserHZ = 100

// Procfs reads process and system counters from a procfs mount.
type Procfs struct {
	fs       procfs.FS
	root     string
	pageSize uint64
	log      logger.Logger
	now      func() time.Time
}

// NewProcfs opens the procfs mounted at root.
func NewProcfs(root string, log logger.Logger) (*Procfs, error) {
	fs, err := procfs.NewFS(root)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrSource,
			fmt.Sprintf("Can't open procfs at %s", root),
			"Check that procfs is mounted there, or run with --source psutil.")
	}
	if log == nil {
		log = logger.Noop()
	}
	return &Procfs{
		fs:       fs,
		root:     root,
		pageSize: uint64(unix.Getpagesize()),
		log:      log,
		now:      time.Now,
	}, nil
}

// TicksPerSecond implements sample.Source.
func (c *Procfs) TicksPerSecond() uint64 { return linuxUserHZ }


// Processes lists every readable process under the procfs root.
func (c *Procfs) Processes(ctx context.Context) ([]sample.Process, error) {
	procs, err := c.fs.AllProcs()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrSource,
			fmt.Sprintf("Can't list processes in %s", c.root),
			"Check that procfs is mounted and readable.")
	}

	out := make([]sample.Process, 0, len(procs))
	for _, p := range procs {
		if err := ctx.Err(); err != nil {
			return out, err
		}

		stat, err := p.Stat()
		if err != nil {
			// Exited between listing and reading, or not ours to read.
			c.log.Debug("skipping pid %d: %v", p.PID, err)
			continue
		}
		out = append(out, c.fromStat(stat))
	}
	return out, nil
}

func (c *Procfs) fromStat(stat procfs.ProcStat) sample.Process {
	rss := uint64(0)
	if stat.RSS > 0 {
		rss = uint64(stat.RSS) * c.pageSize
	}
	return sample.Process{
		PID:      stat.PID,
		Name:     stat.Comm,
		CPUTicks: uint64(stat.UTime) + uint64(stat.STime),
		RSSBytes: rss,
	}
}

// System reads /proc/stat and /proc/meminfo. Whatever part succeeds is
// returned even when the other fails.
func (c *Procfs) System(ctx context.Context) (sample.System, error) {
	var sys sample.System
	var errs []error

	stat, err := c.fs.Stat()
	if err != nil {
		errs = append(errs, errors.WrapWithCode(err, errors.ErrSource,
			"Can't read CPU counters", "Check that "+c.root+"/stat is readable."))
	} else {
		sys.CPUTicks = cpuStatTicks(stat.CPUTotal)
		if stat.BootTime > 0 {
			sys.Uptime = c.now().Sub(time.Unix(int64(stat.BootTime), 0)).Truncate(time.Second)
		}
	}

	mi, err := c.fs.Meminfo()
	if err != nil {
		errs = append(errs, errors.WrapWithCode(err, errors.ErrSource,
			"Can't read memory counters", "Check that "+c.root+"/meminfo is readable."))
	} else {
		applyMeminfo(&sys, mi)
	}

	return sys, stderrors.Join(errs...)
}

// cpuStatTicks converts procfs's per-state seconds back into USER_HZ ticks
// and sums the eight states that make up total CPU time.
func cpuStatTicks(s procfs.CPUStat) uint64 {
	seconds := s.User + s.Nice + s.System + s.Idle + s.Iowait + s.IRQ + s.SoftIRQ + s.Steal
	return uint64(math.Round(seconds * linuxUserHZ))
}

// applyMeminfo fills the memory fields of sys from /proc/meminfo values in kB.
// Kernels older than 3.14 lack MemAvailable; free+buffers+cached stands in.
func applyMeminfo(sys *sample.System, mi procfs.Meminfo) {
	kb := func(v *uint64) uint64 {
		if v == nil {
			return 0
		}
		return *v * 1024
	}

	sys.MemTotalBytes = kb(mi.MemTotal)
	sys.MemFreeBytes = kb(mi.MemFree)
	if mi.MemAvailable != nil {
		sys.MemAvailableBytes = kb(mi.MemAvailable)
	} else {
		sys.MemAvailableBytes = sys.MemFreeBytes + kb(mi.Buffers) + kb(mi.Cached)
	}
}
