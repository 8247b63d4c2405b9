package session

// State is the controller's top-level mode.
type State int

const (
	Polling State = iota
	AwaitingKillTarget
	Terminated
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case Polling:
		return "polling"
	case AwaitingKillTarget:
		return "awaiting-kill-target"
	case Terminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Phase refines AwaitingKillTarget. It is PhaseNone in every other state.
type Phase int

const (
	PhaseNone  Phase = iota
	PhaseEntry       // reading the target PID
	PhaseAck         // result shown, waiting for any key
)

// event is an input to the transition table.
type event int

const (
	evQuit event = iota
	evCycleSort
	evKill
	evNone
	evInvalidTarget
	evValidTarget
	evCancel
	evAck
)

type edge struct {
	from  State
	phase Phase
	ev    event
}

type target struct {
	to    State
	phase Phase
}

// transitions is the complete state machine. A (state, phase, event) triple
// missing from the table leaves the controller where it is.
var transitions = map[edge]target{
	{Polling, PhaseNone, evQuit}:      {Terminated, PhaseNone},
	{Polling, PhaseNone, evCycleSort}: {Polling, PhaseNone},
	{Polling, PhaseNone, evKill}:      {AwaitingKillTarget, PhaseEntry},
	{Polling, PhaseNone, evNone}:      {Polling, PhaseNone},

	{AwaitingKillTarget, PhaseEntry, evInvalidTarget}: {Polling, PhaseNone},
	{AwaitingKillTarget, PhaseEntry, evValidTarget}:   {AwaitingKillTarget, PhaseAck},
	{AwaitingKillTarget, PhaseEntry, evCancel}:        {Polling, PhaseNone},
	{AwaitingKillTarget, PhaseEntry, evQuit}:          {Terminated, PhaseNone},

	{AwaitingKillTarget, PhaseAck, evAck}:  {Polling, PhaseNone},
	{AwaitingKillTarget, PhaseAck, evQuit}: {Terminated, PhaseNone},
}

func lookup(from State, phase Phase, ev event) (target, bool) {
	t, ok := transitions[edge{from, phase, ev}]
	return t, ok
}
