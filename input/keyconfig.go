package input

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"gopkg.in/yaml.v3"
)

// Rune aliases for keys that are awkward as bare YAML strings
var runeAliases = map[string]rune{
	"space": ' ',
}

// LoadKeyConfig parses a YAML keymap of the form
//
//	bindings:
//	  fire: [space, j]
//	  quick_save: [F6]
//
// into a sparse override table; only listed keys are populated
func LoadKeyConfig(data []byte) (*KeyTable, error) {
	var raw struct {
		Bindings map[string][]string `yaml:"bindings"`
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("keymap parse: %w", err)
	}

	kt := &KeyTable{
		Keys:  make(map[tcell.Key]Action),
		Runes: make(map[rune]Action),
	}
	for name, keys := range raw.Bindings {
		action, ok := ParseAction(name)
		if !ok {
			return nil, fmt.Errorf("keymap: unknown action %q", name)
		}
		for _, key := range keys {
			if r, ok := resolveRune(key); ok {
				kt.Runes[r] = action
				continue
			}
			k, ok := resolveKey(key)
			if !ok {
				return nil, fmt.Errorf("keymap %s: unknown key %q", name, key)
			}
			kt.Keys[k] = action
		}
	}
	return kt, nil
}

func resolveRune(s string) (rune, bool) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, true
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(s)
	if r >= 'A' && r <= 'Z' {
		r += 'a' - 'A'
	}
	return r, true
}

// resolveKey matches tcell's key names ("F5", "Tab", "Ctrl-Q"), case-insensitive
func resolveKey(s string) (tcell.Key, bool) {
	for k, name := range tcell.KeyNames {
		if strings.EqualFold(name, s) {
			return k, true
		}
	}
	return 0, false
}

// MergeKeyTable overlays override on a copy of base
// An override bound to ActionNone removes the base binding
func MergeKeyTable(base, override *KeyTable) *KeyTable {
	merged := base.Clone()
	if override == nil {
		return merged
	}
	for k, a := range override.Keys {
		if a == ActionNone {
			delete(merged.Keys, k)
			continue
		}
		merged.Keys[k] = a
	}
	for r, a := range override.Runes {
		if a == ActionNone {
			delete(merged.Runes, r)
			continue
		}
		merged.Runes[r] = a
	}
	return merged
}
