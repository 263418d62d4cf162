package layout

import (
	"errors"

	"github.com/goKeyStuffer/keymaps"
)

// LayoutID identifies a keyboard layout.
type LayoutID = keymaps.LayoutID

var (
	// ErrNoForegroundWindow is returned by a LayoutSource when no window has
	// focus to take the layout from.
	ErrNoForegroundWindow = errors.New("no foreground window")
	// ErrInvalidLayoutID wraps the translator's refusal of a layout id.
	ErrInvalidLayoutID = errors.New("invalid keyboard layout id")
	// ErrUnrepresentable is returned for characters the layout cannot type.
	ErrUnrepresentable = errors.New("character not representable in layout")
	// ErrUnknownKeyName is returned for names the layout does not know.
	ErrUnknownKeyName = errors.New("unknown key name")
)

// Translator answers layout questions the way the OS keyboard driver does.
// Implementations must be deterministic for a fixed layout id.
type Translator interface {
	// CheckLayout returns an error when id does not name an installed layout.
	CheckLayout(id LayoutID) error
	// ScanCodeToVirtualKey returns the virtual key at sc, or 0 when unmapped.
	ScanCodeToVirtualKey(sc keymaps.ScanCode, id LayoutID) keymaps.VirtualKey
	// ChordToUnits returns the UTF-16 units typed by vk under state. A
	// positive count is live output, a negative count a dead key, zero
	// nothing.
	ChordToUnits(vk keymaps.VirtualKey, sc keymaps.ScanCode, state *[256]byte, id LayoutID) (int, []uint16)
}

// LayoutSource reports the layout of whatever currently has input focus.
type LayoutSource interface {
	CurrentLayoutID() (LayoutID, error)
}

// keyPressed is the high bit a keyboard state buffer uses for a held key.
const keyPressed = 0x80

// BuildModifierBuffer returns a keyboard state with the generic Shift,
// Control and Menu keys held as ss requires.
func BuildModifierBuffer(ss keymaps.ShiftState) [256]byte {
	var buf [256]byte
	if ss.Has(keymaps.ShiftStateShift) {
		buf[keymaps.VKShift] = keyPressed
	}
	if ss.Has(keymaps.ShiftStateCtrl) {
		buf[keymaps.VKControl] = keyPressed
	}
	if ss.Has(keymaps.ShiftStateMenu) {
		buf[keymaps.VKMenu] = keyPressed
	}
	return buf
}

// shiftStateOf reads a keyboard state buffer back into a ShiftState.
func shiftStateOf(buf *[256]byte) keymaps.ShiftState {
	var ss keymaps.ShiftState
	if buf[keymaps.VKShift]&keyPressed != 0 {
		ss |= keymaps.ShiftStateShift
	}
	if buf[keymaps.VKControl]&keyPressed != 0 {
		ss |= keymaps.ShiftStateCtrl
	}
	if buf[keymaps.VKMenu]&keyPressed != 0 {
		ss |= keymaps.ShiftStateMenu
	}
	return ss
}
