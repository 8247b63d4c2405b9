package collector

import (
	"context"
	stderrors "errors"
	"math"
	"time"

	"github.com/rileyhilliard/sysmon/internal/accounting"
	"github.com/rileyhilliard/sysmon/internal/errors"
	"github.com/rileyhilliard/sysmon/internal/logger"
	"github.com/rileyhilliard/sysmon/internal/sample"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
	"github.com/shirou/gopsutil/v4/process"
)

// Psutil reads counters through gopsutil. gopsutil reports CPU time in
// seconds, so the source converts to a synthetic 100 Hz tick.
type Psutil struct {
	log logger.Logger
}

// NewPsutil returns a gopsutil-backed source.
func NewPsutil(log logger.Logger) *Psutil {
	if log == nil {
		log = logger.Noop()
	}
	return &Psutil{log: log}
}

// TicksPerSecond implements sample.Source.
func (c *Psutil) TicksPerSecond() uint64 { return accounting.DefaultTicksPerSecond }


// Processes lists every process gopsutil can read.
func (c *Psutil) Processes(ctx context.Context) ([]sample.Process, error) {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrSource,
			"Can't list processes",
			"Check that sysmon is allowed to inspect other processes.")
	}

	out := make([]sample.Process, 0, len(procs))
	for _, p := range procs {
		if err := ctx.Err(); err != nil {
			return out, err
		}

		times, err := p.TimesWithContext(ctx)
		if err != nil {
			c.log.Debug("skipping pid %d: %v", p.Pid, err)
			continue
		}
		meminfo, err := p.MemoryInfoWithContext(ctx)
		if err != nil {
			c.log.Debug("skipping pid %d: %v", p.Pid, err)
			continue
		}
		// A missing name is not fatal; the view falls back to the PID.
		name, _ := p.NameWithContext(ctx)

		out = append(out, sample.Process{
			PID:      int(p.Pid),
			Name:     name,
			CPUTicks: secondsToTicks(times.User + times.System),
			RSSBytes: meminfo.RSS,
		})
	}
	return out, nil
}

// System reads aggregate CPU times, virtual memory and uptime.
func (c *Psutil) System(ctx context.Context) (sample.System, error) {
	var sys sample.System
	var errs []error

	if times, err := cpu.TimesWithContext(ctx, false); err != nil {
		errs = append(errs, errors.WrapWithCode(err, errors.ErrSource, "Can't read CPU counters", ""))
	} else if len(times) > 0 {
		t := times[0]
		sys.CPUTicks = secondsToTicks(t.User + t.Nice + t.System + t.Idle + t.Iowait + t.Irq + t.Softirq + t.Steal)
	}

	if vm, err := mem.VirtualMemoryWithContext(ctx); err != nil {
		errs = append(errs, errors.WrapWithCode(err, errors.ErrSource, "Can't read memory counters", ""))
	} else {
		sys.MemTotalBytes = vm.Total
		sys.MemAvailableBytes = vm.Available
		sys.MemFreeBytes = vm.Free
	}

	if up, err := host.UptimeWithContext(ctx); err != nil {
		errs = append(errs, errors.WrapWithCode(err, errors.ErrSource, "Can't read uptime", ""))
	} else {
		sys.Uptime = time.Duration(up) * time.Second
	}

	return sys, stderrors.Join(errs...)
}

func secondsToTicks(seconds float64) uint64 {
	if seconds <= 0 || math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		return 0
	}
	return uint64(math.Round(seconds * accounting.DefaultTicksPerSecond))
}
