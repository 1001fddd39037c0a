package session

import (
	"fmt"

	"life-ca/pkg/core"
)

// CommandKind enumerates the inputs a front end can send to a session.
type CommandKind int

const (
	Quit CommandKind = iota
	ToggleAutoplay
	StepOnce
	Save
	Load
	Restart
	ToggleCell
	Randomize
)

var kindNames = [...]string{
	Quit:           "quit",
	ToggleAutoplay: "toggle-autoplay",
	StepOnce:       "step",
	Save:           "save",
	Load:           "load",
	Restart:        "restart",
	ToggleCell:     "toggle-cell",
	Randomize:      "randomize",
}

func (k CommandKind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("CommandKind(%d)", int(k))
}

// Command is one input event. Pos is only meaningful for ToggleCell.
type Command struct {
	Kind CommandKind
	Pos  core.Pos
}

// Do builds a command without a position.
func Do(kind CommandKind) Command { return Command{Kind: kind} }

// Toggle builds a ToggleCell command.
func Toggle(p core.Pos) Command { return Command{Kind: ToggleCell, Pos: p} }
