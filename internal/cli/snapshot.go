package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/rileyhilliard/sysmon/internal/accounting"
	"github.com/rileyhilliard/sysmon/internal/session"
	"github.com/rileyhilliard/sysmon/internal/ui"
	"github.com/rileyhilliard/sysmon/internal/util"
)

// SnapshotOptions holds options for the snapshot command.
type SnapshotOptions struct {
	JSON          bool // Emit a JSON envelope instead of a table
	Limit         int  // Rows to print; 0 prints every process
	MaxNameLength int
}

// SnapshotJSON is the data payload of 'snapshot --json'.
type SnapshotJSON struct {
	Taken             time.Time     `json:"taken"`
	Sort              string        `json:"sort"`
	UptimeSeconds     float64       `json:"uptime_seconds"`
	CPUPercent        float64       `json:"cpu_percent"`
	MemTotalBytes     uint64        `json:"mem_total_bytes"`
	MemAvailableBytes uint64        `json:"mem_available_bytes"`
	MemUsedPercent    float64       `json:"mem_used_percent"`
	ProcessCount      int           `json:"process_count"`
	Processes         []ProcessJSON `json:"processes"`
	Status            string        `json:"status,omitempty"`
}

// ProcessJSON is one ranked row.
type ProcessJSON struct {
	PID        int     `json:"pid"`
	Name       string  `json:"name"`
	CPUPercent float64 `json:"cpu_percent"`
	MemPercent float64 `json:"mem_percent"`
	RSSBytes   uint64  `json:"rss_bytes"`
}

// snapshotCommand takes a baseline sample, waits one cadence and prints the
// ranked result of the second sample. A single sample would show 0% CPU for
// every process.
func snapshotCommand(ctx context.Context, w io.Writer, ctrl *session.Controller, opts SnapshotOptions) error {
	ctrl.Step(ctx)

	timer := time.NewTimer(ctrl.Cadence())
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
	}

	frame := ctrl.Step(ctx)
	rows := frame.Rows
	if opts.Limit > 0 {
		rows = frame.Visible(opts.Limit)
	}

	if opts.JSON {
		return WriteJSONSuccess(w, toSnapshotJSON(frame, rows))
	}
	return renderSnapshot(w, frame, rows, opts.MaxNameLength)
}

func toSnapshotJSON(frame session.Frame, rows []accounting.Metric) SnapshotJSON {
	s := frame.Summary
	out := SnapshotJSON{
		Taken:             frame.Taken,
		Sort:              frame.SortLabel,
		UptimeSeconds:     s.Uptime.Seconds(),
		CPUPercent:        s.AggregateCPU,
		MemTotalBytes:     s.MemTotalBytes,
		MemAvailableBytes: s.MemAvailableBytes,
		MemUsedPercent:    s.MemUsedPercent,
		ProcessCount:      s.ProcessCount,
		Processes:         make([]ProcessJSON, len(rows)),
		Status:            frame.Status,
	}
	for i, r := range rows {
		out.Processes[i] = ProcessJSON{
			PID:        r.PID,
			Name:       r.Name,
			CPUPercent: r.CPUPercent,
			MemPercent: r.MemPercent,
			RSSBytes:   r.RSSBytes,
		}
	}
	return out
}

func renderSnapshot(w io.Writer, frame session.Frame, rows []accounting.Metric, nameLen int) error {
	if nameLen <= 0 {
		nameLen = util.DefaultNameLength
	}
	s := frame.Summary

	fmt.Fprintf(w, "Uptime: %.1fs  CPU (sum processes): %.2f%%  Mem: %.1fMB total  Avail: %.1fMB\n",
		s.Uptime.Seconds(), s.AggregateCPU, util.MB(s.MemTotalBytes), util.MB(s.MemAvailableBytes))
	fmt.Fprintf(w, "Sort: %s | %d %s\n\n", frame.SortLabel, s.ProcessCount,
		util.Pluralize(s.ProcessCount, "process", "processes"))

	columns := []ui.TableColumn{
		{Title: "PID", Width: 8},
		{Title: "NAME", Width: nameLen + 2},
		{Title: "CPU %", Width: 8},
		{Title: "MEM %", Width: 8},
		{Title: "RSS", Width: 10},
	}
	cells := make([][]string, len(rows))
	for i, r := range rows {
		cells[i] = []string{
			strconv.Itoa(r.PID),
			util.TruncateName(r.Name, r.PID, nameLen),
			fmt.Sprintf("%.2f", r.CPUPercent),
			fmt.Sprintf("%.2f", r.MemPercent),
			util.FormatBytes(r.RSSBytes),
		}
	}

	if table := ui.RenderSimpleTable(columns, cells); table != "" {
		fmt.Fprintln(w, table)
	} else {
		fmt.Fprintln(w, "No processes.")
	}

	if frame.Status != "" {
		fmt.Fprintf(w, "%s %s\n", ui.SymbolWarning, frame.Status)
	}
	return nil
}
