package input

import (
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/game"
)

// Controller is the session surface commands act on
type Controller interface {
	State() game.State
	Start() bool
	TogglePause() bool
	Restart()
	RequestDirection(d core.Direction) bool
}

// Apply routes a gameplay command to the session
// Host-level commands (quit, mute, debug) are not handled here and report false
func Apply(cmd Command, c Controller) bool {
	if d := cmd.Direction(); d != core.DirNone {
		return c.RequestDirection(d)
	}

	switch cmd {
	case CmdStart:
		switch c.State() {
		case game.StateIdle:
			return c.Start()
		case game.StateGameOver:
			c.Restart()
			return true
		}
	case CmdPause:
		switch c.State() {
		case game.StateIdle:
			return c.Start()
		case game.StateRunning, game.StatePaused:
			return c.TogglePause()
		case game.StateGameOver:
			c.Restart()
			return true
		}
	case CmdRestart:
		c.Restart()
		return true
	}
	return false
}

// IsHostCommand reports whether cmd is handled by the host rather than the session
func IsHostCommand(cmd Command) bool {
	switch cmd {
	case CmdQuit, CmdToggleMute, CmdToggleDebug:
		return true
	}
	return false
}
