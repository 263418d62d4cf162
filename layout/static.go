package layout

import (
	"fmt"
	"sync"
	"unicode/utf16"

	"github.com/goKeyStuffer/keymaps"
)

type staticLayout struct {
	byScanCode map[keymaps.ScanCode]keymaps.KeyDef
}

// StaticTranslator answers translation queries from layout descriptions
// instead of the OS. A dead key stays pending until the next query: a bare
// SPACE then yields the dead glyph, any other key clears it.
type StaticTranslator struct {
	mu      sync.Mutex
	layouts map[LayoutID]*staticLayout
	pending []uint16
}

var _ Translator = (*StaticTranslator)(nil)

// NewStaticTranslator serves the given descriptions, keyed by their ids.
func NewStaticTranslator(descs ...*keymaps.Description) *StaticTranslator {
	t := &StaticTranslator{layouts: make(map[LayoutID]*staticLayout, len(descs))}
	for _, d := range descs {
		l := &staticLayout{byScanCode: make(map[keymaps.ScanCode]keymaps.KeyDef, len(d.Keys))}
		for _, k := range d.Keys {
			l.byScanCode[k.ScanCode] = k
		}
		t.layouts[d.ID] = l
	}
	return t
}

// NewRegistryTranslator serves every layout in r.
func NewRegistryTranslator(r *keymaps.Registry) *StaticTranslator {
	var descs []*keymaps.Description
	for _, name := range r.Names() {
		if d, ok := r.Get(name); ok {
			descs = append(descs, d)
		}
	}
	return NewStaticTranslator(descs...)
}

// CheckLayout implements Translator.
func (t *StaticTranslator) CheckLayout(id LayoutID) error {
	if _, ok := t.layouts[id]; !ok {
		return fmt.Errorf("no layout description with id %s", id)
	}
	return nil
}

// ScanCodeToVirtualKey implements Translator.
func (t *StaticTranslator) ScanCodeToVirtualKey(sc keymaps.ScanCode, id LayoutID) keymaps.VirtualKey {
	l, ok := t.layouts[id]
	if !ok {
		return 0
	}
	return l.byScanCode[sc].VirtualKey
}

// ChordToUnits implements Translator.
func (t *StaticTranslator) ChordToUnits(
	vk keymaps.VirtualKey, sc keymaps.ScanCode, state *[256]byte, id LayoutID,
) (int, []uint16) {
	t.mu.Lock()
	defer t.mu.Unlock()

	pending := t.pending
	t.pending = nil

	l, ok := t.layouts[id]
	if !ok {
		return 0, nil
	}
	k, ok := l.byScanCode[sc]
	if !ok || k.VirtualKey != vk {
		return 0, nil
	}
	ss := shiftStateOf(state)
	text, dead := k.Output(ss)
	if pending != nil {
		if vk == keymaps.VKSpace && ss == 0 {
			return len(pending), pending
		}
		// There is no composition table, so a pending dead key comes out
		// as its glyph ahead of whatever this chord types.
		units := append(pending, utf16.Encode([]rune(text))...)
		return len(units), units
	}

	if text == "" {
		return 0, nil
	}
	units := utf16.Encode([]rune(text))
	if dead {
		t.pending = units
		return -len(units), units
	}
	return len(units), units
}

// StaticSource is a LayoutSource that always reports the same layout.
type StaticSource LayoutID

// CurrentLayoutID implements LayoutSource.
func (s StaticSource) CurrentLayoutID() (LayoutID, error) {
	return LayoutID(s), nil
}
