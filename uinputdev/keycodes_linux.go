//go:build linux

package uinputdev

import (
	evdev "github.com/gvalkov/golang-evdev"

	"github.com/goKeyStuffer/keymaps"
)

// vkCodes maps virtual keys to the evdev key at their US position.
var vkCodes = map[keymaps.VirtualKey]int{
	keymaps.VKBack:     evdev.KEY_BACKSPACE,
	keymaps.VKTab:      evdev.KEY_TAB,
	keymaps.VKClear:    evdev.KEY_CLEAR,
	keymaps.VKReturn:   evdev.KEY_ENTER,
	keymaps.VKShift:    evdev.KEY_LEFTSHIFT,
	keymaps.VKControl:  evdev.KEY_LEFTCTRL,
	keymaps.VKMenu:     evdev.KEY_LEFTALT,
	keymaps.VKPause:    evdev.KEY_PAUSE,
	keymaps.VKCancel:   evdev.KEY_CANCEL,
	keymaps.VKCapital:  evdev.KEY_CAPSLOCK,
	keymaps.VKKana:     evdev.KEY_HANGEUL,
	keymaps.VKHanja:    evdev.KEY_HANJA,
	keymaps.VKEscape:   evdev.KEY_ESC,
	keymaps.VKSpace:    evdev.KEY_SPACE,
	keymaps.VKPrior:    evdev.KEY_PAGEUP,
	keymaps.VKNext:     evdev.KEY_PAGEDOWN,
	keymaps.VKEnd:      evdev.KEY_END,
	keymaps.VKHome:     evdev.KEY_HOME,
	keymaps.VKLeft:     evdev.KEY_LEFT,
	keymaps.VKUp:       evdev.KEY_UP,
	keymaps.VKRight:    evdev.KEY_RIGHT,
	keymaps.VKDown:     evdev.KEY_DOWN,
	keymaps.VKSelect:   evdev.KEY_SELECT,
	keymaps.VKPrint:    evdev.KEY_PRINT,
	keymaps.VKSnapshot: evdev.KEY_SYSRQ,
	keymaps.VKInsert:   evdev.KEY_INSERT,
	keymaps.VKDelete:   evdev.KEY_DELETE,
	keymaps.VKHelp:     evdev.KEY_HELP,

	keymaps.VKDigit0: evdev.KEY_0,
	keymaps.VKDigit1: evdev.KEY_1,
	keymaps.VKDigit2: evdev.KEY_2,
	keymaps.VKDigit3: evdev.KEY_3,
	keymaps.VKDigit4: evdev.KEY_4,
	keymaps.VKDigit5: evdev.KEY_5,
	keymaps.VKDigit6: evdev.KEY_6,
	keymaps.VKDigit7: evdev.KEY_7,
	keymaps.VKDigit8: evdev.KEY_8,
	keymaps.VKDigit9: evdev.KEY_9,

	keymaps.VKA: evdev.KEY_A,
	keymaps.VKB: evdev.KEY_B,
	keymaps.VKC: evdev.KEY_C,
	keymaps.VKD: evdev.KEY_D,
	keymaps.VKE: evdev.KEY_E,
	keymaps.VKF: evdev.KEY_F,
	keymaps.VKG: evdev.KEY_G,
	keymaps.VKH: evdev.KEY_H,
	keymaps.VKI: evdev.KEY_I,
	keymaps.VKJ: evdev.KEY_J,
	keymaps.VKK: evdev.KEY_K,
	keymaps.VKL: evdev.KEY_L,
	keymaps.VKM: evdev.KEY_M,
	keymaps.VKN: evdev.KEY_N,
	keymaps.VKO: evdev.KEY_O,
	keymaps.VKP: evdev.KEY_P,
	keymaps.VKQ: evdev.KEY_Q,
	keymaps.VKR: evdev.KEY_R,
	keymaps.VKS: evdev.KEY_S,
	keymaps.VKT: evdev.KEY_T,
	keymaps.VKU: evdev.KEY_U,
	keymaps.VKV: evdev.KEY_V,
	keymaps.VKW: evdev.KEY_W,
	keymaps.VKX: evdev.KEY_X,
	keymaps.VKY: evdev.KEY_Y,
	keymaps.VKZ: evdev.KEY_Z,

	keymaps.VKLwin:  evdev.KEY_LEFTMETA,
	keymaps.VKRwin:  evdev.KEY_RIGHTMETA,
	keymaps.VKApps:  evdev.KEY_COMPOSE,
	keymaps.VKSleep: evdev.KEY_SLEEP,

	keymaps.VKNumpad0:  evdev.KEY_KP0,
	keymaps.VKNumpad1:  evdev.KEY_KP1,
	keymaps.VKNumpad2:  evdev.KEY_KP2,
	keymaps.VKNumpad3:  evdev.KEY_KP3,
	keymaps.VKNumpad4:  evdev.KEY_KP4,
	keymaps.VKNumpad5:  evdev.KEY_KP5,
	keymaps.VKNumpad6:  evdev.KEY_KP6,
	keymaps.VKNumpad7:  evdev.KEY_KP7,
	keymaps.VKNumpad8:  evdev.KEY_KP8,
	keymaps.VKNumpad9:  evdev.KEY_KP9,
	keymaps.VKMultiply: evdev.KEY_KPASTERISK,
	keymaps.VKAdd:      evdev.KEY_KPPLUS,
	keymaps.VKSubtract: evdev.KEY_KPMINUS,
	keymaps.VKDecimal:  evdev.KEY_KPDOT,
	keymaps.VKDivide:   evdev.KEY_KPSLASH,

	keymaps.VKF1:  evdev.KEY_F1,
	keymaps.VKF2:  evdev.KEY_F2,
	keymaps.VKF3:  evdev.KEY_F3,
	keymaps.VKF4:  evdev.KEY_F4,
	keymaps.VKF5:  evdev.KEY_F5,
	keymaps.VKF6:  evdev.KEY_F6,
	keymaps.VKF7:  evdev.KEY_F7,
	keymaps.VKF8:  evdev.KEY_F8,
	keymaps.VKF9:  evdev.KEY_F9,
	keymaps.VKF10: evdev.KEY_F10,
	keymaps.VKF11: evdev.KEY_F11,
	keymaps.VKF12: evdev.KEY_F12,
	keymaps.VKF13: evdev.KEY_F13,
	keymaps.VKF14: evdev.KEY_F14,
	keymaps.VKF15: evdev.KEY_F15,
	keymaps.VKF16: evdev.KEY_F16,
	keymaps.VKF17: evdev.KEY_F17,
	keymaps.VKF18: evdev.KEY_F18,
	keymaps.VKF19: evdev.KEY_F19,
	keymaps.VKF20: evdev.KEY_F20,
	keymaps.VKF21: evdev.KEY_F21,
	keymaps.VKF22: evdev.KEY_F22,
	keymaps.VKF23: evdev.KEY_F23,
	keymaps.VKF24: evdev.KEY_F24,

	keymaps.VKNumlock:  evdev.KEY_NUMLOCK,
	keymaps.VKScroll:   evdev.KEY_SCROLLLOCK,
	keymaps.VKLshift:   evdev.KEY_LEFTSHIFT,
	keymaps.VKRshift:   evdev.KEY_RIGHTSHIFT,
	keymaps.VKLcontrol: evdev.KEY_LEFTCTRL,
	keymaps.VKRcontrol: evdev.KEY_RIGHTCTRL,
	keymaps.VKLmenu:    evdev.KEY_LEFTALT,
	keymaps.VKRmenu:    evdev.KEY_RIGHTALT,

	keymaps.VKBrowserBack:       evdev.KEY_BACK,
	keymaps.VKBrowserForward:    evdev.KEY_FORWARD,
	keymaps.VKBrowserRefresh:    evdev.KEY_REFRESH,
	keymaps.VKBrowserStop:       evdev.KEY_STOP,
	keymaps.VKBrowserSearch:     evdev.KEY_SEARCH,
	keymaps.VKBrowserFavorites:  evdev.KEY_BOOKMARKS,
	keymaps.VKBrowserHome:       evdev.KEY_HOMEPAGE,
	keymaps.VKVolumeMute:        evdev.KEY_MUTE,
	keymaps.VKVolumeDown:        evdev.KEY_VOLUMEDOWN,
	keymaps.VKVolumeUp:          evdev.KEY_VOLUMEUP,
	keymaps.VKMediaNextTrack:    evdev.KEY_NEXTSONG,
	keymaps.VKMediaPrevTrack:    evdev.KEY_PREVIOUSSONG,
	keymaps.VKMediaStop:         evdev.KEY_STOPCD,
	keymaps.VKMediaPlayPause:    evdev.KEY_PLAYPAUSE,
	keymaps.VKLaunchMail:        evdev.KEY_MAIL,
	keymaps.VKLaunchMediaSelect: evdev.KEY_MEDIA,
	keymaps.VKLaunchApp2:        evdev.KEY_CALC,

	keymaps.VKOem1:      evdev.KEY_SEMICOLON,
	keymaps.VKOemPlus:   evdev.KEY_EQUAL,
	keymaps.VKOemComma:  evdev.KEY_COMMA,
	keymaps.VKOemMinus:  evdev.KEY_MINUS,
	keymaps.VKOemPeriod: evdev.KEY_DOT,
	keymaps.VKOem2:      evdev.KEY_SLASH,
	keymaps.VKOem3:      evdev.KEY_GRAVE,
	keymaps.VKOem4:      evdev.KEY_LEFTBRACE,
	keymaps.VKOem5:      evdev.KEY_BACKSLASH,
	keymaps.VKOem6:      evdev.KEY_RIGHTBRACE,
	keymaps.VKOem7:      evdev.KEY_APOSTROPHE,
	keymaps.VKOem102:    evdev.KEY_102ND,
}

// extendedScanCodes maps E0-prefixed set 1 scan codes to evdev keys.
// Unprefixed codes up to 0x58 equal their evdev key.
var extendedScanCodes = map[uint16]int{
	0x1C: evdev.KEY_KPENTER,
	0x1D: evdev.KEY_RIGHTCTRL,
	0x35: evdev.KEY_KPSLASH,
	0x37: evdev.KEY_SYSRQ,
	0x38: evdev.KEY_RIGHTALT,
	0x47: evdev.KEY_HOME,
	0x48: evdev.KEY_UP,
	0x49: evdev.KEY_PAGEUP,
	0x4B: evdev.KEY_LEFT,
	0x4D: evdev.KEY_RIGHT,
	0x4F: evdev.KEY_END,
	0x50: evdev.KEY_DOWN,
	0x51: evdev.KEY_PAGEDOWN,
	0x52: evdev.KEY_INSERT,
	0x53: evdev.KEY_DELETE,
	0x5B: evdev.KEY_LEFTMETA,
	0x5C: evdev.KEY_RIGHTMETA,
	0x5D: evdev.KEY_COMPOSE,
}

// hexKeys types the digits of a Unicode code point.
var hexKeys = [16]int{
	evdev.KEY_0, evdev.KEY_1, evdev.KEY_2, evdev.KEY_3,
	evdev.KEY_4, evdev.KEY_5, evdev.KEY_6, evdev.KEY_7,
	evdev.KEY_8, evdev.KEY_9, evdev.KEY_A, evdev.KEY_B,
	evdev.KEY_C, evdev.KEY_D, evdev.KEY_E, evdev.KEY_F,
}

// positionDependent reports whether the key a vk names moves between
// national layouts, so a layout description knows its position better
// than the US table.
func positionDependent(vk keymaps.VirtualKey) bool {
	switch {
	case vk >= keymaps.VKDigit0 && vk <= keymaps.VKDigit9,
		vk >= keymaps.VKA && vk <= keymaps.VKZ,
		vk >= keymaps.VKOem1 && vk <= keymaps.VKOem3,
		vk >= keymaps.VKOem4 && vk <= keymaps.VKOem8,
		vk == keymaps.VKOem102:
		return true
	}
	return false
}

func scanCodeKey(sc uint16, extended bool) (int, bool) {
	if extended {
		code, ok := extendedScanCodes[sc]
		return code, ok
	}
	if sc == 0 || sc > evdev.KEY_F12 {
		return 0, false
	}
	return int(sc), true
}
