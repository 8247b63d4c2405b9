package monitor

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds every binding the monitor responds to.
type KeyMap struct {
	Quit      key.Binding
	ForceQuit key.Binding
	Sort      key.Binding
	Kill      key.Binding
	Up        key.Binding
	Down      key.Binding
	Top       key.Binding
	Bottom    key.Binding
	Help      key.Binding

	// Prompt
	Submit key.Binding
	Cancel key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit from anywhere"),
		),
		Sort: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "toggle sort (CPU/MEM/PID)"),
		),
		Kill: key.NewBinding(
			key.WithKeys("k"),
			key.WithHelp("k", "kill <pid>"),
		),
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "select previous"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "select next"),
		),
		Top: key.NewBinding(
			key.WithKeys("home"),
			key.WithHelp("home", "select first"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("end"),
			key.WithHelp("end", "select last"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "send SIGTERM"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

// ShortHelp implements help.KeyMap for the footer while polling.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Quit, k.Sort, k.Kill, k.Help}
}

// FullHelp implements help.KeyMap for the help overlay.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Quit, k.ForceQuit, k.Sort, k.Kill},
		{k.Up, k.Down, k.Top, k.Bottom},
		{k.Submit, k.Cancel, k.Help},
	}
}

// PromptHelp lists the bindings active at the kill prompt.
func (k KeyMap) PromptHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Cancel}
}
