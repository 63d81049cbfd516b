package input

import (
	"strings"

	"github.com/lixenwraith/vi-snake/core"
)

// Command is a semantic input action, independent of the key that produced it
type Command uint8

const (
	CmdNone Command = iota
	CmdUp
	CmdDown
	CmdLeft
	CmdRight
	CmdStart       // Idle: start; GameOver: new session
	CmdPause       // Space: context action
	CmdRestart     // Any state
	CmdToggleMute  // Audio on/off
	CmdToggleDebug // Metrics line
	CmdQuit
)

// commandNames are the action names accepted in keymap files
var commandNames = map[string]Command{
	"none":         CmdNone,
	"up":           CmdUp,
	"down":         CmdDown,
	"left":         CmdLeft,
	"right":        CmdRight,
	"start":        CmdStart,
	"pause":        CmdPause,
	"restart":      CmdRestart,
	"toggle_mute":  CmdToggleMute,
	"toggle_debug": CmdToggleDebug,
	"quit":         CmdQuit,
}

// CommandByName resolves a keymap action name, case-insensitive
func CommandByName(name string) (Command, bool) {
	c, ok := commandNames[strings.ToLower(strings.TrimSpace(name))]
	return c, ok
}

func (c Command) String() string {
	for name, v := range commandNames {
		if v == c {
			return name
		}
	}
	return "unknown"
}

// Direction returns the heading for movement commands, DirNone otherwise
func (c Command) Direction() core.Direction {
	switch c {
	case CmdUp:
		return core.DirUp
	case CmdDown:
		return core.DirDown
	case CmdLeft:
		return core.DirLeft
	case CmdRight:
		return core.DirRight
	default:
		return core.DirNone
	}
}
