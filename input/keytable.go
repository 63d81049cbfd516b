package input

import (
	"maps"

	"github.com/gdamore/tcell/v2"
)

// KeyTable maps terminal keys to commands
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Enter, Esc)
	SpecialKeys map[tcell.Key]Command

	// Printable rune bindings
	Runes map[rune]Command
}

// DefaultKeyTable returns arrows, WASD and hjkl for movement
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Command{
			tcell.KeyUp:     CmdUp,
			tcell.KeyDown:   CmdDown,
			tcell.KeyLeft:   CmdLeft,
			tcell.KeyRight:  CmdRight,
			tcell.KeyEnter:  CmdStart,
			tcell.KeyEscape: CmdQuit,
			tcell.KeyCtrlC:  CmdQuit,
			tcell.KeyCtrlQ:  CmdQuit,
			tcell.KeyCtrlS:  CmdToggleMute,
			tcell.KeyCtrlD:  CmdToggleDebug,
		},
		Runes: map[rune]Command{
			'w': CmdUp, 'a': CmdLeft, 's': CmdDown, 'd': CmdRight,
			'W': CmdUp, 'A': CmdLeft, 'S': CmdDown, 'D': CmdRight,
			'k': CmdUp, 'h': CmdLeft, 'j': CmdDown, 'l': CmdRight,
			' ': CmdPause,
			'p': CmdPause,
			'r': CmdRestart,
			'm': CmdToggleMute,
			'q': CmdQuit,
		},
	}
}

// Lookup maps a key event to a command
func (kt *KeyTable) Lookup(ev *tcell.EventKey) Command {
	if ev.Key() == tcell.KeyRune {
		return kt.Runes[ev.Rune()]
	}
	return kt.SpecialKeys[ev.Key()]
}

// Clone returns a deep copy
func (kt *KeyTable) Clone() *KeyTable {
	return &KeyTable{
		SpecialKeys: maps.Clone(kt.SpecialKeys),
		Runes:       maps.Clone(kt.Runes),
	}
}
