package input

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/gdamore/tcell/v2"
)

// Rune aliases for keys that can't be bare single-char TOML keys
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}

// keysByName indexes tcell key names, lowercased ("up", "enter", "ctrl-c")
var keysByName = func() map[string]tcell.Key {
	m := make(map[string]tcell.Key, len(tcell.KeyNames))
	for k, name := range tcell.KeyNames {
		m[strings.ToLower(name)] = k
	}
	return m
}()

// keymapFile is the TOML layout of a keymap override
//
//	[keys]
//	up = "up"
//	ctrl-s = "none"
//
//	[runes]
//	space = "pause"
//	x = "restart"
type keymapFile struct {
	Keys  map[string]string `toml:"keys"`
	Runes map[string]string `toml:"runes"`
}

// LoadKeyConfig parses TOML keymap data into a sparse override KeyTable
// Only bindings present in the data are populated; "none" unbinds
func LoadKeyConfig(data []byte) (*KeyTable, error) {
	var raw keymapFile
	if _, err := toml.Decode(string(data), &raw); err != nil {
		return nil, fmt.Errorf("keymap parse: %w", err)
	}

	kt := &KeyTable{}
	if raw.Keys != nil {
		kt.SpecialKeys = make(map[tcell.Key]Command, len(raw.Keys))
		for name, action := range raw.Keys {
			k, ok := keysByName[strings.ToLower(name)]
			if !ok {
				return nil, fmt.Errorf("[keys] unknown key name: %q", name)
			}
			cmd, ok := CommandByName(action)
			if !ok {
				return nil, fmt.Errorf("[keys] key %q: unknown action: %q", name, action)
			}
			kt.SpecialKeys[k] = cmd
		}
	}

	if raw.Runes != nil {
		kt.Runes = make(map[rune]Command, len(raw.Runes))
		for keyStr, action := range raw.Runes {
			r, err := resolveRune(keyStr)
			if err != nil {
				return nil, fmt.Errorf("[runes] key %q: %w", keyStr, err)
			}
			cmd, ok := CommandByName(action)
			if !ok {
				return nil, fmt.Errorf("[runes] key %q: unknown action: %q", keyStr, action)
			}
			kt.Runes[r] = cmd
		}
	}
	return kt, nil
}

// LoadKeyFile reads a keymap file and merges it over the defaults
func LoadKeyFile(path string) (*KeyTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read keymap: %w", err)
	}
	override, err := LoadKeyConfig(data)
	if err != nil {
		return nil, err
	}
	return MergeKeyTable(DefaultKeyTable(), override), nil
}

// resolveRune accepts single characters and named aliases
func resolveRune(s string) (rune, error) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, nil
	}
	if runes := []rune(s); len(runes) == 1 {
		return runes[0], nil
	}
	return 0, fmt.Errorf("invalid rune key: %q (expected single character or alias)", s)
}

// MergeKeyTable returns base with override applied, CmdNone entries delete the binding
func MergeKeyTable(base, override *KeyTable) *KeyTable {
	result := base.Clone()
	mergeMap(result.SpecialKeys, override.SpecialKeys)
	mergeMap(result.Runes, override.Runes)
	return result
}

func mergeMap[K comparable](base, override map[K]Command) {
	for k, v := range override {
		if v == CmdNone {
			delete(base, k)
		} else {
			base[k] = v
		}
	}
}
