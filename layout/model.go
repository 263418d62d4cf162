package layout

import (
	"fmt"
	"maps"

	"github.com/goKeyStuffer/keymaps"
)

// Model is the resolved form of one keyboard layout. It is immutable once
// built and safe for concurrent use.
type Model struct {
	id        LayoutID
	chars     map[rune]keymaps.Chord
	names     map[string]keymaps.VirtualKey
	modifiers [8][]keymaps.VirtualKey
}

// ID returns the layout the model was built from.
func (m *Model) ID() LayoutID { return m.id }

// Chord returns the simplest chord that types r.
func (m *Model) Chord(r rune) (keymaps.Chord, error) {
	c, ok := m.chars[r]
	if !ok {
		return keymaps.Chord{}, fmt.Errorf("%w: %q", ErrUnrepresentable, r)
	}
	return c, nil
}

// VirtualKey resolves a symbolic key name. Names are case-sensitive.
func (m *Model) VirtualKey(name string) (keymaps.VirtualKey, error) {
	vk, ok := m.names[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownKeyName, name)
	}
	return vk, nil
}

// Modifiers returns the modifier keys to hold for ss, in press order. The
// returned slice is shared and must not be modified.
func (m *Model) Modifiers(ss keymaps.ShiftState) []keymaps.VirtualKey {
	return m.modifiers[ss&7]
}

// Chars returns a copy of the character table.
func (m *Model) Chars() map[rune]keymaps.Chord { return maps.Clone(m.chars) }

// Names returns a copy of the name table.
func (m *Model) Names() map[string]keymaps.VirtualKey { return maps.Clone(m.names) }

func modifierKeys() [8][]keymaps.VirtualKey {
	var out [8][]keymaps.VirtualKey
	for _, ss := range keymaps.ShiftStates {
		var keys []keymaps.VirtualKey
		if ss.Has(keymaps.ShiftStateShift) {
			keys = append(keys, keymaps.VKShift)
		}
		if ss.Has(keymaps.ShiftStateCtrl) {
			keys = append(keys, keymaps.VKControl)
		}
		if ss.Has(keymaps.ShiftStateMenu) {
			keys = append(keys, keymaps.VKMenu)
		}
		out[ss] = keys
	}
	return out
}
