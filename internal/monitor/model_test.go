package monitor

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/rileyhilliard/sysmon/internal/ranking"
	"github.com/rileyhilliard/sysmon/internal/sample"
	"github.com/rileyhilliard/sysmon/internal/session"
	"github.com/rileyhilliard/sysmon/internal/terminate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSource struct {
	procs []sample.Process
	sys   sample.System
}

func (s *stubSource) Processes(context.Context) ([]sample.Process, error) { return s.procs, nil }
func (s *stubSource) System(context.Context) (sample.System, error)       { return s.sys, nil }
func (s *stubSource) TicksPerSecond() uint64                               { return 100 }

type testEnv struct {
	ctrl  *session.Controller
	src   *stubSource
	kills []int
	base  time.Time
}

func newTestModel(t *testing.T) (Model, *testEnv) {
	t.Helper()

	prev := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(termenv.Ascii)
	t.Cleanup(func() { lipgloss.SetColorProfile(prev) })

	env := &testEnv{
		src: &stubSource{
			procs: []sample.Process{
				{PID: 10, Name: "alpha", CPUTicks: 100, RSSBytes: 1 << 20},
				{PID: 20, Name: "bravo", CPUTicks: 100, RSSBytes: 2 << 20},
				{PID: 30, Name: "", CPUTicks: 100, RSSBytes: 3 << 20},
			},
			sys: sample.System{MemTotalBytes: 100 << 20, MemAvailableBytes: 60 << 20, Uptime: 90 * time.Second},
		},
		base: time.Now(),
	}
	env.ctrl = session.New(session.Options{
		Source: env.src,
		Terminator: terminate.Func(func(pid int, _ terminate.Signal) error {
			env.kills = append(env.kills, pid)
			return nil
		}),
		Clock: func() time.Time { return env.base },
	})

	m := NewModel(env.ctrl, Options{MaxNameLength: 20})
	m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 30})
	return m, env
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func updateCmd(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// snapshot builds the n-th snapshot, one second after the previous one.
func (e *testEnv) snapshot(n int, procs ...sample.Process) snapshotMsg {
	if procs == nil {
		procs = e.src.procs
	}
	return snapshotMsg{
		seq: 0,
		snap: sample.Snapshot{
			Processes: procs,
			System:    e.src.sys,
			Taken:     e.base.Add(time.Duration(n) * time.Second),
		},
	}
}

func framePIDs(m Model) []int {
	rows := m.Frame().Rows
	out := make([]int, len(rows))
	for i, r := range rows {
		out[i] = r.PID
	}
	return out
}

func cpuOf(m Model, pid int) float64 {
	for _, r := range m.Frame().Rows {
		if r.PID == pid {
			return r.CPUPercent
		}
	}
	return -1
}

func TestModel_InitSamples(t *testing.T) {
	m, _ := newTestModel(t)

	cmd := m.Init()
	require.NotNil(t, cmd)

	msg, ok := cmd().(snapshotMsg)
	require.True(t, ok)
	assert.Len(t, msg.snap.Processes, 3)
}

func TestModel_SnapshotRendersFrame(t *testing.T) {
	m, env := newTestModel(t)

	m, cmd := updateCmd(t, m, env.snapshot(1))
	assert.NotNil(t, cmd, "next tick scheduled")
	assert.Equal(t, []int{10, 20, 30}, framePIDs(m))

	view := m.View()
	assert.Contains(t, view, "Uptime: 90.0s")
	assert.Contains(t, view, "CPU (sum processes): 0.00%")
	assert.Contains(t, view, "Mem: 100.0MB total  Avail: 60.0MB")
	assert.Contains(t, view, "40.0/100.0 MB (40.0%)")
	assert.Contains(t, view, "alpha")
	assert.Contains(t, view, "[30]")
	assert.Contains(t, view, "CPU % "+SortIndicator)
	assert.Contains(t, view, "Commands:")
	assert.Contains(t, view, "toggle sort (CPU/MEM/PID)")
}

func TestModel_SecondSnapshotRanksByCPU(t *testing.T) {
	m, env := newTestModel(t)
	m = update(t, m, env.snapshot(1))

	m = update(t, m, env.snapshot(2,
		sample.Process{PID: 10, Name: "alpha", CPUTicks: 110},
		sample.Process{PID: 20, Name: "bravo", CPUTicks: 150},
		sample.Process{PID: 30, CPUTicks: 100},
	))

	assert.Equal(t, []int{20, 10, 30}, framePIDs(m))
	assert.Contains(t, m.View(), "50.00")
}

func TestModel_CycleSort(t *testing.T) {
	m, env := newTestModel(t)
	m = update(t, m, env.snapshot(1))

	m, cmd := updateCmd(t, m, runes("s"))
	require.NotNil(t, cmd)
	assert.Equal(t, ranking.ByMemory, env.ctrl.Mode())
	assert.Contains(t, m.View(), "MEM % "+SortIndicator)

	m = update(t, m, env.snapshot(2))
	assert.Equal(t, []int{30, 20, 10}, framePIDs(m))
}

func TestModel_StaleTickIgnored(t *testing.T) {
	m, env := newTestModel(t)
	m = update(t, m, env.snapshot(1))
	m, _ = updateCmd(t, m, runes("s"))

	_, cmd := updateCmd(t, m, tickMsg{seq: m.seq - 1})
	assert.Nil(t, cmd)

	_, cmd = updateCmd(t, m, tickMsg{seq: m.seq})
	require.NotNil(t, cmd)
	_, ok := cmd().(snapshotMsg)
	assert.True(t, ok)
}

func TestModel_LateOlderSnapshotDiscarded(t *testing.T) {
	m, env := newTestModel(t)
	m = update(t, m, env.snapshot(1))
	m, _ = updateCmd(t, m, runes("s"))

	// The read started by the sort refresh finishes first.
	newer := env.snapshot(3,
		sample.Process{PID: 10, Name: "alpha", CPUTicks: 300},
		sample.Process{PID: 20, Name: "bravo", CPUTicks: 100},
		sample.Process{PID: 30, CPUTicks: 100},
	)
	newer.seq = m.seq
	m = update(t, m, newer)
	require.Equal(t, newer.snap.Taken, m.Frame().Taken)
	require.InDelta(t, 100.0, cpuOf(m, 10), 0.01)

	older := env.snapshot(2,
		sample.Process{PID: 10, Name: "alpha", CPUTicks: 200},
		sample.Process{PID: 20, Name: "bravo", CPUTicks: 100},
		sample.Process{PID: 30, CPUTicks: 100},
	)
	m, cmd := updateCmd(t, m, older)
	assert.Nil(t, cmd)
	assert.Equal(t, newer.snap.Taken, m.Frame().Taken)
	assert.Equal(t, newer.snap.Taken, env.ctrl.Engine().Taken)
	assert.Equal(t, uint64(300), env.ctrl.Engine().Ticks[10])
	assert.InDelta(t, 100.0, cpuOf(m, 10), 0.01)
}

func TestModel_SelectionFollowsProcess(t *testing.T) {
	m, env := newTestModel(t)
	m = update(t, m, env.snapshot(1))
	require.Equal(t, 10, m.SelectedPID())

	m = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 20, m.SelectedPID())

	m = update(t, m, env.snapshot(2,
		sample.Process{PID: 10, CPUTicks: 100},
		sample.Process{PID: 20, CPUTicks: 150},
		sample.Process{PID: 30, CPUTicks: 300},
	))
	assert.Equal(t, []int{30, 20, 10}, framePIDs(m))
	assert.Equal(t, 20, m.SelectedPID())
	assert.Equal(t, 1, m.table.Cursor())
}

func TestModel_KillFlow(t *testing.T) {
	m, env := newTestModel(t)
	m = update(t, m, env.snapshot(1))

	m = update(t, m, runes("k"))
	require.Equal(t, session.AwaitingKillTarget, env.ctrl.State())
	assert.Equal(t, "10", m.prompt.Value(), "prompt pre-filled with highlighted pid")
	assert.Contains(t, m.View(), session.KillPrompt)

	// Snapshots that arrive meanwhile are dropped.
	before := m.Frame()
	m, cmd := updateCmd(t, m, env.snapshot(2))
	assert.Nil(t, cmd)
	assert.Equal(t, before.Taken, m.Frame().Taken)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, []int{10}, env.kills)
	assert.Equal(t, session.PhaseAck, env.ctrl.Phase())
	assert.Contains(t, m.View(), "Sent SIGTERM to 10. Press any key to continue...")

	m, cmd = updateCmd(t, m, runes("x"))
	assert.Equal(t, session.Polling, env.ctrl.State())
	assert.NotNil(t, cmd, "fast-path refresh scheduled")

	m = update(t, m, env.snapshot(3))
	assert.Contains(t, m.View(), "Sent SIGTERM to 10.")
	assert.Equal(t, []int{10}, env.kills)
}

func TestModel_KillInvalidInput(t *testing.T) {
	for _, input := range []string{"abc", "-5"} {
		t.Run(input, func(t *testing.T) {
			m, env := newTestModel(t)
			m = update(t, m, env.snapshot(1))
			m = update(t, m, runes("k"))

			m.prompt.SetValue(input)
			m, cmd := updateCmd(t, m, tea.KeyMsg{Type: tea.KeyEnter})

			assert.Empty(t, env.kills)
			assert.Equal(t, session.Polling, env.ctrl.State())
			assert.NotNil(t, cmd)
			assert.NotContains(t, m.View(), "Press any key")
		})
	}
}

func TestModel_KillTypedTarget(t *testing.T) {
	m, env := newTestModel(t)
	m = update(t, m, runes("k"))

	// No snapshot yet, so nothing to pre-fill.
	assert.Empty(t, m.prompt.Value())
	for _, r := range "1234" {
		m = update(t, m, runes(string(r)))
	}
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, []int{1234}, env.kills)
}

func TestModel_KillCancel(t *testing.T) {
	m, env := newTestModel(t)
	m = update(t, m, env.snapshot(1))
	m = update(t, m, runes("k"))

	m, cmd := updateCmd(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, session.Polling, env.ctrl.State())
	assert.Empty(t, env.kills)
	assert.NotNil(t, cmd)
}

func TestModel_Quit(t *testing.T) {
	m, env := newTestModel(t)

	m, cmd := updateCmd(t, m, runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Equal(t, session.Terminated, env.ctrl.State())
	assert.Empty(t, m.View())
}

func TestModel_CtrlCQuitsFromPrompt(t *testing.T) {
	m, env := newTestModel(t)
	m = update(t, m, runes("k"))

	_, cmd := updateCmd(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Equal(t, session.Terminated, env.ctrl.State())
}

func TestModel_HelpOverlay(t *testing.T) {
	m, env := newTestModel(t)
	m = update(t, m, env.snapshot(1))

	m = update(t, m, runes("?"))
	view := m.View()
	assert.Contains(t, view, "Keyboard Shortcuts")
	assert.Contains(t, view, "kill <pid>")

	// Commands are inert while help is open.
	m = update(t, m, runes("k"))
	assert.Equal(t, session.Polling, env.ctrl.State())

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.NotContains(t, m.View(), "Keyboard Shortcuts")
}

func TestModel_QuitFromHelp(t *testing.T) {
	m, env := newTestModel(t)
	m = update(t, m, runes("?"))

	m, cmd := updateCmd(t, m, runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Equal(t, session.Terminated, env.ctrl.State())
	assert.Empty(t, m.View())
}

func TestModel_RowCapFollowsHeight(t *testing.T) {
	m, env := newTestModel(t)
	m = update(t, m, env.snapshot(1))

	m = update(t, m, tea.WindowSizeMsg{Width: 80, Height: chromeHeight + 2})
	assert.Len(t, m.table.Rows(), 2)

	m = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 3})
	assert.Len(t, m.table.Rows(), 1, "at least one row")
}

func TestModel_UnknownKeyIsNoop(t *testing.T) {
	m, env := newTestModel(t)
	m = update(t, m, env.snapshot(1))

	m, cmd := updateCmd(t, m, runes("z"))
	assert.Nil(t, cmd)
	assert.Equal(t, session.Polling, env.ctrl.State())
	assert.Equal(t, ranking.ByCPU, env.ctrl.Mode())
}
