//go:build windows

// Package winapi implements the layout and injection boundaries over user32.
package winapi

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32 = windows.NewLazySystemDLL("user32.dll")

	procMapVirtualKeyExW         = user32.NewProc("MapVirtualKeyExW")
	procToUnicodeEx              = user32.NewProc("ToUnicodeEx")
	procGetKeyboardLayout        = user32.NewProc("GetKeyboardLayout")
	procGetKeyboardLayoutList    = user32.NewProc("GetKeyboardLayoutList")
	procGetForegroundWindow      = user32.NewProc("GetForegroundWindow")
	procGetWindowThreadProcessID = user32.NewProc("GetWindowThreadProcessId")
	procSendInput                = user32.NewProc("SendInput")
	procRegisterWindowMessageW   = user32.NewProc("RegisterWindowMessageW")
	procGetMessageExtraInfo      = user32.NewProc("GetMessageExtraInfo")
)

const (
	_MAPVK_VSC_TO_VK_EX = 3

	// ToUnicodeEx never writes more than a handful of units for one key.
	toUnicodeBufLen = 8
)

func mapVirtualKeyEx(code, mapType uint32, hkl uintptr) uint32 {
	ret, _, _ := procMapVirtualKeyExW.Call(uintptr(code), uintptr(mapType), hkl)
	return uint32(ret)
}

func toUnicodeEx(vk, sc uint32, state *[256]byte, buf []uint16, hkl uintptr) int32 {
	ret, _, _ := procToUnicodeEx.Call(
		uintptr(vk),
		uintptr(sc),
		uintptr(unsafe.Pointer(&state[0])),
		uintptr(unsafe.Pointer(&buf[0])),
		uintptr(len(buf)),
		0,
		hkl,
	)
	return int32(ret)
}

func getKeyboardLayoutList() ([]uintptr, error) {
	n, _, err := procGetKeyboardLayoutList.Call(0, 0)
	if n == 0 {
		return nil, err
	}
	list := make([]uintptr, n)
	n, _, err = procGetKeyboardLayoutList.Call(n, uintptr(unsafe.Pointer(&list[0])))
	if n == 0 {
		return nil, err
	}
	return list[:n], nil
}
