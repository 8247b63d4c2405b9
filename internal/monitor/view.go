package monitor

import (
	"fmt"
	"strings"

	"github.com/rileyhilliard/sysmon/internal/session"
	"github.com/rileyhilliard/sysmon/internal/ui"
	"github.com/rileyhilliard/sysmon/internal/util"
)

// barWidth is the cell width of the CPU and memory bars.
const barWidth = 30

// renderDashboard renders the complete dashboard view.
func (m Model) renderDashboard() string {
	var b strings.Builder

	b.WriteString(m.renderSummary())
	b.WriteString("\n\n")
	b.WriteString(m.table.View())
	b.WriteString("\n")
	b.WriteString(m.renderPromptLine())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())

	return b.String()
}

// renderSummary renders the uptime/CPU/memory header and the two bars.
func (m Model) renderSummary() string {
	s := m.frame.Summary

	line := fmt.Sprintf("Uptime: %.1fs  CPU (sum processes): %.2f%%  Mem: %.1fMB total  Avail: %.1fMB",
		s.Uptime.Seconds(), s.AggregateCPU, util.MB(s.MemTotalBytes), util.MB(s.MemAvailableBytes))

	usedBytes := uint64(0)
	if s.MemTotalBytes > s.MemAvailableBytes {
		usedBytes = s.MemTotalBytes - s.MemAvailableBytes
	}

	cpu := LabelStyle.Render("CPU ") +
		ui.RenderProgressBar(s.AggregateCPU, barWidth) +
		ValueStyle.Render(fmt.Sprintf(" %.2f%%", s.AggregateCPU))

	mem := LabelStyle.Render("MEM ") +
		ui.RenderProgressBar(s.MemUsedPercent, barWidth) +
		ValueStyle.Render(fmt.Sprintf(" %.1f/%.1f MB (%.1f%%)",
			util.MB(usedBytes), util.MB(s.MemTotalBytes), s.MemUsedPercent))

	return HeaderStyle.Render(line) + "\n" + cpu + "\n" + mem
}

// renderPromptLine shows the kill prompt, its result, or the one-shot status.
func (m Model) renderPromptLine() string {
	if m.ctrl.State() == session.AwaitingKillTarget {
		if m.ctrl.Phase() == session.PhaseAck {
			res := m.ctrl.LastKill()
			if res != nil && res.Err != nil {
				return ErrorStyle.Render(m.ctrl.Prompt())
			}
			return PromptStyle.Render(m.ctrl.Prompt())
		}
		return m.prompt.View()
	}

	if m.frame.Status != "" {
		return StatusStyle.Render(m.frame.Status)
	}
	return ""
}

// renderFooter renders the command hints and the active sort.
func (m Model) renderFooter() string {
	hints := m.help.ShortHelpView(m.keys.ShortHelp())
	if m.ctrl.State() == session.AwaitingKillTarget {
		hints = m.help.ShortHelpView(m.keys.PromptHelp())
	}

	count := m.frame.Summary.ProcessCount
	meta := fmt.Sprintf("Sort: %s | %d %s", m.ctrl.Mode(), count, util.Pluralize(count, "process", "processes"))

	return FooterStyle.Render("Commands: ") + hints + FooterStyle.Render("  "+meta)
}
