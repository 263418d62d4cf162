package keymaps

import (
	"fmt"
	"math/bits"
	"strconv"
	"strings"
)

// ScanCode identifies a physical key position (1..=0x7F).
type ScanCode uint8

// MaxScanCode is the highest scan code probed when building a layout.
const MaxScanCode ScanCode = 0x7F

// VirtualKey is a Win32 virtual-key code.
type VirtualKey uint8

// String returns the VK table name, or the decimal code when unnamed.
func (vk VirtualKey) String() string {
	if name, ok := VirtualKeyName(vk); ok {
		return name
	}
	return strconv.Itoa(int(vk))
}

// ShiftState is the set of modifiers held for a translation query.
type ShiftState uint8

// Shift state bits
const (
	ShiftStateShift ShiftState = 0x01
	ShiftStateCtrl  ShiftState = 0x02
	ShiftStateMenu  ShiftState = 0x04
)

// ShiftStates lists every shift state in probing order.
var ShiftStates = [8]ShiftState{0, 1, 2, 3, 4, 5, 6, 7}

// Count returns the number of modifier bits set.
func (ss ShiftState) Count() int { return bits.OnesCount8(uint8(ss)) }

// Has reports whether all bits of mod are set in ss.
func (ss ShiftState) Has(mod ShiftState) bool { return ss&mod == mod }

// String renders the state the way layout dumps show it: "Base", "Shift",
// "Shift Ctrl", ...
func (ss ShiftState) String() string {
	if ss == 0 {
		return "Base"
	}
	var parts []string
	if ss.Has(ShiftStateShift) {
		parts = append(parts, "Shift")
	}
	if ss.Has(ShiftStateCtrl) {
		parts = append(parts, "Ctrl")
	}
	if ss.Has(ShiftStateMenu) {
		parts = append(parts, "Menu")
	}
	return strings.Join(parts, " ")
}

// shiftStateKeys are the keys used for shift states in layout descriptions.
var shiftStateKeys = [8]string{
	"base", "shift", "ctrl", "shift+ctrl", "alt", "shift+alt", "ctrl+alt", "shift+ctrl+alt",
}

// ParseShiftState parses a description key such as "shift+ctrl".
func ParseShiftState(s string) (ShiftState, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for i, k := range shiftStateKeys {
		if k == key {
			return ShiftState(i), nil
		}
	}
	return 0, fmt.Errorf("unknown shift state %q", s)
}

// Chord is a virtual key pressed while the modifiers of ShiftState are held.
type Chord struct {
	VirtualKey VirtualKey
	ShiftState ShiftState
}

func (c Chord) String() string {
	if c.ShiftState == 0 {
		return c.VirtualKey.String()
	}
	return strings.ReplaceAll(c.ShiftState.String(), " ", "+") + "+" + c.VirtualKey.String()
}
