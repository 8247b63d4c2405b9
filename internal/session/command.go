package session

import (
	"strconv"
	"strings"
)

// Command is a user request read while Polling.
type Command int

const (
	None Command = iota
	Quit
	CycleSort
	Kill
)

// String returns the command name.
func (c Command) String() string {
	switch c {
	case Quit:
		return "quit"
	case CycleSort:
		return "cycle-sort"
	case Kill:
		return "kill"
	default:
		return "none"
	}
}

// ParseCommand maps a single keystroke to a Command. Anything unrecognised
// is None.
func ParseCommand(key string) Command {
	switch key {
	case "q":
		return Quit
	case "s":
		return CycleSort
	case "k":
		return Kill
	default:
		return None
	}
}

// ParseKillTarget reads a PID typed at the kill prompt. Surrounding
// whitespace is ignored; anything that is not a positive base-10 integer is
// rejected.
func ParseKillTarget(input string) (int, bool) {
	pid, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || pid <= 0 {
		return 0, false
	}
	return pid, true
}
