// Package input describes synthesized input events independently of the
// backend that injects them.
package input

import (
	"errors"
	"fmt"

	"github.com/goKeyStuffer/keymaps"
)

// WheelDelta is one notch of a mouse wheel.
const WheelDelta = 120

var (
	// ErrVirtualKeyOutOfRange is returned for virtual keys outside 1..254.
	ErrVirtualKeyOutOfRange = errors.New("virtual key out of range 1..254")
	// ErrUnsupported is returned by injectors for events they cannot express.
	ErrUnsupported = errors.New("input event not supported by injector")
)

// WindowMessage is a registered window message used to tag injected events,
// so a receiver can tell them apart from real input. Zero means untagged.
type WindowMessage uint32

// Input is one event for an Injector: a KeyboardInput, MouseInput or
// HardwareInput.
type Input interface {
	isInput()
}

// KeyKind selects how a KeyboardInput names its key.
type KeyKind uint8

// Keyboard event kinds
const (
	KeyVirtual KeyKind = iota
	KeyScanCode
	KeyUnicode
)

// KeyboardInput is a key press or release.
type KeyboardInput struct {
	Kind KeyKind
	// Code is the virtual key, scan code or UTF-16 code unit, per Kind.
	Code     uint16
	Extended bool
	KeyUp    bool
	Message  WindowMessage
	// Time is the event time stamp in milliseconds; zero lets the system
	// stamp it.
	Time uint32
}

func (KeyboardInput) isInput() {}

// VirtualKeyEvent returns a press or release of vk.
func VirtualKeyEvent(vk keymaps.VirtualKey, extended, keyUp bool) (KeyboardInput, error) {
	if vk < 1 || vk > 254 {
		return KeyboardInput{}, fmt.Errorf("%w: %d", ErrVirtualKeyOutOfRange, vk)
	}
	return KeyboardInput{Kind: KeyVirtual, Code: uint16(vk), Extended: extended, KeyUp: keyUp}, nil
}

// ScanCodeEvent returns a press or release of the key at sc.
func ScanCodeEvent(sc uint16, extended, keyUp bool) KeyboardInput {
	return KeyboardInput{Kind: KeyScanCode, Code: sc, Extended: extended, KeyUp: keyUp}
}

// UnicodeEvent returns a press or release carrying one UTF-16 code unit.
func UnicodeEvent(unit uint16, keyUp bool) KeyboardInput {
	return KeyboardInput{Kind: KeyUnicode, Code: unit, KeyUp: keyUp}
}

// VirtualKey returns the key of a KeyVirtual event.
func (k KeyboardInput) VirtualKey() keymaps.VirtualKey {
	return keymaps.VirtualKey(k.Code)
}

func (k KeyboardInput) String() string {
	dir := "down"
	if k.KeyUp {
		dir = "up"
	}
	switch k.Kind {
	case KeyVirtual:
		if k.Extended {
			return fmt.Sprintf("VK %s (ext) %s", k.VirtualKey(), dir)
		}
		return fmt.Sprintf("VK %s %s", k.VirtualKey(), dir)
	case KeyScanCode:
		return fmt.Sprintf("SC %#02x %s", k.Code, dir)
	default:
		return fmt.Sprintf("U+%04X %s", k.Code, dir)
	}
}

// HardwareInput is a raw message from a device that is neither keyboard
// nor mouse.
type HardwareInput struct {
	Msg    uint32
	ParamL uint16
	ParamH uint16
}

func (HardwareInput) isInput() {}

func (h HardwareInput) String() string {
	return fmt.Sprintf("HW msg=%#x l=%#x h=%#x", h.Msg, h.ParamL, h.ParamH)
}
