//go:build windows

package winapi

import (
	"fmt"

	"github.com/goKeyStuffer/keymaps"
	"github.com/goKeyStuffer/layout"
)

// Translator asks the installed keyboard layouts.
type Translator struct{}

var _ layout.Translator = Translator{}

// CheckLayout implements layout.Translator.
func (Translator) CheckLayout(id layout.LayoutID) error {
	list, err := getKeyboardLayoutList()
	if err != nil {
		return fmt.Errorf("GetKeyboardLayoutList: %w", err)
	}
	for _, hkl := range list {
		if layout.LayoutID(hkl) == id {
			return nil
		}
	}
	return fmt.Errorf("layout %s is not loaded", id)
}

// ScanCodeToVirtualKey implements layout.Translator.
func (Translator) ScanCodeToVirtualKey(sc keymaps.ScanCode, id layout.LayoutID) keymaps.VirtualKey {
	vk := mapVirtualKeyEx(uint32(sc), _MAPVK_VSC_TO_VK_EX, uintptr(id))
	if vk > 0xFF {
		return 0
	}
	return keymaps.VirtualKey(vk)
}

// ChordToUnits implements layout.Translator.
func (Translator) ChordToUnits(
	vk keymaps.VirtualKey, sc keymaps.ScanCode, state *[256]byte, id layout.LayoutID,
) (int, []uint16) {
	buf := make([]uint16, toUnicodeBufLen)
	n := int(toUnicodeEx(uint32(vk), uint32(sc), state, buf, uintptr(id)))
	switch {
	case n > len(buf):
		n = len(buf)
	case n < -len(buf):
		n = -len(buf)
	}
	if n < 0 {
		return n, buf[:-n]
	}
	return n, buf[:n]
}

// LayoutSource reports the layout of the foreground window's thread.
type LayoutSource struct{}

var _ layout.LayoutSource = LayoutSource{}

// CurrentLayoutID implements layout.LayoutSource.
func (LayoutSource) CurrentLayoutID() (layout.LayoutID, error) {
	hwnd, _, _ := procGetForegroundWindow.Call()
	if hwnd == 0 {
		return 0, layout.ErrNoForegroundWindow
	}
	tid, _, _ := procGetWindowThreadProcessID.Call(hwnd, 0)
	hkl, _, _ := procGetKeyboardLayout.Call(tid)
	return layout.LayoutID(hkl), nil
}

// LoadedLayouts returns the ids of every layout loaded for this session.
func LoadedLayouts() ([]layout.LayoutID, error) {
	list, err := getKeyboardLayoutList()
	if err != nil {
		return nil, fmt.Errorf("GetKeyboardLayoutList: %w", err)
	}
	out := make([]layout.LayoutID, len(list))
	for i, hkl := range list {
		out[i] = layout.LayoutID(hkl)
	}
	return out, nil
}
