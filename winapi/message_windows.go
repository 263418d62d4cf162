//go:build windows

package winapi

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/goKeyStuffer/input"
)

// RegisterMessage returns the system-wide message registered under name.
func RegisterMessage(name string) (input.WindowMessage, error) {
	p, err := windows.UTF16PtrFromString(name)
	if err != nil {
		return 0, err
	}
	ret, _, err := procRegisterWindowMessageW.Call(uintptr(unsafe.Pointer(p)))
	if ret == 0 {
		return 0, fmt.Errorf("RegisterWindowMessageW(%q): %w", name, err)
	}
	return input.WindowMessage(ret), nil
}

// MessageExtraInfo returns the extra information of the last message read
// by this thread, which carries the tag of self-injected input.
func MessageExtraInfo() uintptr {
	ret, _, _ := procGetMessageExtraInfo.Call()
	return ret
}

// IsTagged reports whether extra carries msg.
func IsTagged(extra uintptr, msg input.WindowMessage) bool {
	return msg != 0 && extra == uintptr(msg)
}
