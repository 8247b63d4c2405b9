package monitor

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/sysmon/internal/accounting"
	"github.com/rileyhilliard/sysmon/internal/ranking"
	"github.com/rileyhilliard/sysmon/internal/sample"
	"github.com/rileyhilliard/sysmon/internal/session"
	"github.com/rileyhilliard/sysmon/internal/ui"
	"github.com/rileyhilliard/sysmon/internal/util"
)

// Layout
const (
	// chromeHeight is every line that is not a table body row: three summary
	// lines, a spacer, the two-line table header, the prompt/status line and
	// the footer.
	chromeHeight = 8

	// defaultHeight is assumed until the first WindowSizeMsg.
	defaultHeight = 24

	pidWidth = 8
	pctWidth = 8
)

// Options configures a Model.
type Options struct {
	// MaxNameLength bounds the NAME column. Zero uses util.DefaultNameLength.
	MaxNameLength int

	// Context is passed to every Source read.
	Context context.Context
}

// Model is the Bubble Tea model for the process table.
type Model struct {
	ctrl *session.Controller
	ctx  context.Context

	keys   KeyMap
	help   help.Model
	table  table.Model
	prompt textinput.Model

	frame   session.Frame
	nameLen int

	width  int
	height int

	selectedPID int // highlighted process, kept across re-ranks
	seq         int // sequence of the only live tick
	showHelp    bool
	quitting    bool
}

// tickMsg asks for the next snapshot.
type tickMsg struct {
	seq int
}

// snapshotMsg carries a snapshot read off the event goroutine.
type snapshotMsg struct {
	seq  int
	snap sample.Snapshot
}

// NewModel creates a Model driven by ctrl.
func NewModel(ctrl *session.Controller, opts Options) Model {
	nameLen := opts.MaxNameLength
	if nameLen <= 0 {
		nameLen = util.DefaultNameLength
	}
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	prompt := textinput.New()
	prompt.Prompt = session.KillPrompt
	prompt.Placeholder = "pid"
	prompt.CharLimit = 10

	m := Model{
		ctrl:    ctrl,
		ctx:     ctx,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		prompt:  prompt,
		nameLen: nameLen,
		frame:   ctrl.Last(),
	}
	m.table = ui.NewTable(m.columns(ctrl.Mode()), nil, m.tableRows(), true)
	return m
}

// Init triggers the first snapshot immediately.
func (m Model) Init() tea.Cmd {
	return m.sampleCmd(m.seq)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.table.SetHeight(m.tableRows() + 2)
		m.setRows()
		return m, nil

	case tickMsg:
		if msg.seq != m.seq || m.ctrl.State() != session.Polling {
			return m, nil
		}
		return m, m.sampleCmd(msg.seq)

	case snapshotMsg:
		if m.ctrl.State() != session.Polling {
			// Dropped; leaving the prompt schedules a fresh one.
			return m, nil
		}
		frame, ok := m.ctrl.Apply(msg.snap)
		if ok {
			m.frame = frame
			m.setRows()
		}
		if msg.seq != m.seq {
			return m, nil
		}
		return m, m.scheduleTick(m.ctrl.NextDelay(msg.snap.Taken, time.Now()))
	}

	if m.ctrl.State() == session.AwaitingKillTarget {
		var cmd tea.Cmd
		m.prompt, cmd = m.prompt.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View renders the dashboard.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showHelp {
		return m.renderHelpOverlay()
	}
	return m.renderDashboard()
}

// Frame returns the frame currently on screen.
func (m Model) Frame() session.Frame { return m.frame }

// SelectedPID returns the highlighted process, or 0 if the table is empty.
func (m Model) SelectedPID() int { return m.selectedPID }

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m.quit()
	}

	if m.ctrl.State() == session.AwaitingKillTarget {
		return m.handlePromptKey(msg)
	}

	if m.showHelp {
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m.quit()
		case key.Matches(msg, m.keys.Help, m.keys.Cancel):
			m.showHelp = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()

	case key.Matches(msg, m.keys.Sort):
		m.ctrl.Handle(session.CycleSort)
		m.table.SetColumns(ui.Columns(m.columns(m.ctrl.Mode())))
		return m, m.scheduleTick(m.ctrl.FastPathDelay())

	case key.Matches(msg, m.keys.Kill):
		m.ctrl.Handle(session.Kill)
		return m, m.openPrompt()

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.table.MoveUp(1)
	case key.Matches(msg, m.keys.Down):
		m.table.MoveDown(1)
	case key.Matches(msg, m.keys.Top):
		m.table.GotoTop()
	case key.Matches(msg, m.keys.Bottom):
		m.table.GotoBottom()

	default:
		m.ctrl.Handle(session.None)
		return m, nil
	}

	m.syncSelection()
	return m, nil
}

func (m Model) handlePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.ctrl.Phase() == session.PhaseAck {
		m.ctrl.Acknowledge()
		return m, m.resume()
	}

	switch {
	case key.Matches(msg, m.keys.Submit):
		m.ctrl.SubmitKillTarget(m.prompt.Value())
		m.prompt.Blur()
		if m.ctrl.State() == session.Polling {
			return m, m.resume()
		}
		return m, nil

	case key.Matches(msg, m.keys.Cancel):
		m.ctrl.CancelKill()
		m.prompt.Blur()
		return m, m.resume()
	}

	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.ctrl.Handle(session.Quit)
	m.quitting = true
	return m, tea.Quit
}

// openPrompt resets the kill prompt, pre-filled with the highlighted PID.
func (m *Model) openPrompt() tea.Cmd {
	m.prompt.Reset()
	if m.selectedPID > 0 {
		m.prompt.SetValue(strconv.Itoa(m.selectedPID))
		m.prompt.CursorEnd()
	}
	return m.prompt.Focus()
}

// resume restarts sampling after the prompt closes.
func (m *Model) resume() tea.Cmd {
	return m.scheduleTick(m.ctrl.FastPathDelay())
}

// scheduleTick supersedes any pending tick with one that fires after d.
func (m *Model) scheduleTick(d time.Duration) tea.Cmd {
	m.seq++
	seq := m.seq
	return tea.Tick(d, func(time.Time) tea.Msg {
		return tickMsg{seq: seq}
	})
}

// sampleCmd reads a snapshot. It runs on its own goroutine and touches
// nothing but the controller's Source.
func (m Model) sampleCmd(seq int) tea.Cmd {
	ctrl, ctx := m.ctrl, m.ctx
	return func() tea.Msg {
		return snapshotMsg{seq: seq, snap: ctrl.Sample(ctx)}
	}
}

// tableRows is the number of process rows that fit, never less than one.
func (m Model) tableRows() int {
	h := m.height
	if h <= 0 {
		h = defaultHeight
	}
	if h-chromeHeight < 1 {
		return 1
	}
	return h - chromeHeight
}

func (m Model) columns(mode ranking.SortMode) []ui.TableColumn {
	title := func(name string, active bool) string {
		if active {
			return name + " " + SortIndicator
		}
		return name
	}
	return []ui.TableColumn{
		{Title: title("PID", mode == ranking.ByPID), Width: pidWidth},
		{Title: "NAME", Width: m.nameLen + 2},
		{Title: title("CPU %", mode == ranking.ByCPU), Width: pctWidth},
		{Title: title("MEM %", mode == ranking.ByMemory), Width: pctWidth},
	}
}

// setRows loads the visible part of the current frame into the table and
// keeps the highlight on the same process when it is still visible.
func (m *Model) setRows() {
	visible := m.frame.Visible(m.tableRows())

	rows := make([]table.Row, len(visible))
	cursor := 0
	for i, r := range visible {
		rows[i] = formatRow(r, m.nameLen)
		if r.PID == m.selectedPID {
			cursor = i
		}
	}

	m.table.SetColumns(ui.Columns(m.columns(m.ctrl.Mode())))
	m.table.SetRows(rows)
	m.table.SetCursor(cursor)
	m.syncSelection()
}

func (m *Model) syncSelection() {
	visible := m.frame.Visible(m.tableRows())
	c := m.table.Cursor()
	if c >= 0 && c < len(visible) {
		m.selectedPID = visible[c].PID
		return
	}
	m.selectedPID = 0
}

func formatRow(r accounting.Metric, nameLen int) table.Row {
	return table.Row{
		strconv.Itoa(r.PID),
		util.TruncateName(r.Name, r.PID, nameLen),
		fmt.Sprintf("%.2f", r.CPUPercent),
		fmt.Sprintf("%.2f", r.MemPercent),
	}
}
