//go:build windows

package winapi

import (
	"fmt"
	"unsafe"

	"github.com/sirupsen/logrus"

	"github.com/goKeyStuffer/input"
)

// INPUT.type values
const (
	_INPUT_MOUSE    = 0
	_INPUT_KEYBOARD = 1
	_INPUT_HARDWARE = 2
)

// KEYBDINPUT.dwFlags
const (
	_KEYEVENTF_EXTENDEDKEY = 0x0001
	_KEYEVENTF_KEYUP       = 0x0002
	_KEYEVENTF_UNICODE     = 0x0004
	_KEYEVENTF_SCANCODE    = 0x0008
)

// MOUSEINPUT.dwFlags
const (
	_MOUSEEVENTF_MOVE            = 0x0001
	_MOUSEEVENTF_LEFTDOWN        = 0x0002
	_MOUSEEVENTF_LEFTUP          = 0x0004
	_MOUSEEVENTF_RIGHTDOWN       = 0x0008
	_MOUSEEVENTF_RIGHTUP         = 0x0010
	_MOUSEEVENTF_MIDDLEDOWN      = 0x0020
	_MOUSEEVENTF_MIDDLEUP        = 0x0040
	_MOUSEEVENTF_XDOWN           = 0x0080
	_MOUSEEVENTF_XUP             = 0x0100
	_MOUSEEVENTF_WHEEL           = 0x0800
	_MOUSEEVENTF_HWHEEL          = 0x1000
	_MOUSEEVENTF_MOVE_NOCOALESCE = 0x2000
	_MOUSEEVENTF_VIRTUALDESK     = 0x4000
	_MOUSEEVENTF_ABSOLUTE        = 0x8000

	_XBUTTON1 = 0x0001
	_XBUTTON2 = 0x0002
)

// mouseInput mirrors MOUSEINPUT, the largest member of the INPUT union.
type mouseInput struct {
	dx          int32
	dy          int32
	mouseData   uint32
	dwFlags     uint32
	time        uint32
	dwExtraInfo uintptr
}

// keybdInput mirrors KEYBDINPUT.
type keybdInput struct {
	wVk         uint16
	wScan       uint16
	dwFlags     uint32
	time        uint32
	dwExtraInfo uintptr
}

// hardwareInput mirrors HARDWAREINPUT.
type hardwareInput struct {
	uMsg    uint32
	wParamL uint16
	wParamH uint16
}

// rawInput mirrors INPUT. The union is sized and aligned by mouseInput;
// keyboard and hardware payloads are written over its start.
type rawInput struct {
	typ   uint32
	union mouseInput
}

func pack(ev input.Input) (rawInput, error) {
	var in rawInput
	switch ev := ev.(type) {
	case input.KeyboardInput:
		in.typ = _INPUT_KEYBOARD
		*(*keybdInput)(unsafe.Pointer(&in.union)) = packKeyboard(ev)
	case input.MouseInput:
		in.typ = _INPUT_MOUSE
		mi, err := packMouse(ev)
		if err != nil {
			return in, err
		}
		in.union = mi
	case input.HardwareInput:
		in.typ = _INPUT_HARDWARE
		*(*hardwareInput)(unsafe.Pointer(&in.union)) = hardwareInput{
			uMsg:    ev.Msg,
			wParamL: ev.ParamL,
			wParamH: ev.ParamH,
		}
	default:
		return in, fmt.Errorf("%w: %T", input.ErrUnsupported, ev)
	}
	return in, nil
}

func packKeyboard(k input.KeyboardInput) keybdInput {
	ki := keybdInput{time: k.Time, dwExtraInfo: uintptr(k.Message)}
	if k.KeyUp {
		ki.dwFlags |= _KEYEVENTF_KEYUP
	}
	switch k.Kind {
	case input.KeyVirtual:
		ki.wVk = k.Code
		if k.Extended {
			ki.dwFlags |= _KEYEVENTF_EXTENDEDKEY
		}
	case input.KeyScanCode:
		ki.wScan = k.Code
		ki.dwFlags |= _KEYEVENTF_SCANCODE
		if k.Extended {
			ki.dwFlags |= _KEYEVENTF_EXTENDEDKEY
		}
	case input.KeyUnicode:
		ki.wScan = k.Code
		ki.dwFlags |= _KEYEVENTF_UNICODE
	}
	return ki
}

func packMouse(m input.MouseInput) (mouseInput, error) {
	mi := mouseInput{time: m.Time, dwExtraInfo: uintptr(m.Message)}
	switch m.Action {
	case input.MouseButtonAction:
		down, up := buttonFlags(m.Button)
		if down == 0 {
			return mi, fmt.Errorf("%w: mouse button %s", input.ErrUnsupported, m.Button)
		}
		if m.ButtonUp {
			mi.dwFlags = up
		} else {
			mi.dwFlags = down
		}
		switch m.Button {
		case input.ButtonX1:
			mi.mouseData = _XBUTTON1
		case input.ButtonX2:
			mi.mouseData = _XBUTTON2
		}
	case input.MouseMove:
		mi.dwFlags = _MOUSEEVENTF_MOVE
		switch m.Movement {
		case input.MoveAbsolutePrimary:
			mi.dwFlags |= _MOUSEEVENTF_ABSOLUTE
		case input.MoveAbsoluteVirtualDesktop:
			mi.dwFlags |= _MOUSEEVENTF_ABSOLUTE | _MOUSEEVENTF_VIRTUALDESK
		}
		if !m.Coalesce {
			mi.dwFlags |= _MOUSEEVENTF_MOVE_NOCOALESCE
		}
		mi.dx, mi.dy = m.DX, m.DY
	case input.MouseWheel:
		mi.dwFlags = _MOUSEEVENTF_WHEEL
		if m.Horizontal {
			mi.dwFlags = _MOUSEEVENTF_HWHEEL
		}
		mi.mouseData = uint32(m.Wheel)
	}
	return mi, nil
}

func buttonFlags(b input.MouseButton) (down, up uint32) {
	switch b {
	case input.ButtonLeft:
		return _MOUSEEVENTF_LEFTDOWN, _MOUSEEVENTF_LEFTUP
	case input.ButtonRight:
		return _MOUSEEVENTF_RIGHTDOWN, _MOUSEEVENTF_RIGHTUP
	case input.ButtonMiddle:
		return _MOUSEEVENTF_MIDDLEDOWN, _MOUSEEVENTF_MIDDLEUP
	case input.ButtonX1, input.ButtonX2:
		return _MOUSEEVENTF_XDOWN, _MOUSEEVENTF_XUP
	}
	return 0, 0
}

// Injector sends events with SendInput.
type Injector struct {
	logger logrus.FieldLogger
}

var _ input.Injector = (*Injector)(nil)

// NewInjector returns a SendInput injector.
func NewInjector(logger logrus.FieldLogger) (*Injector, error) {
	if err := procSendInput.Find(); err != nil {
		return nil, fmt.Errorf("SendInput is unavailable: %w", err)
	}
	return &Injector{logger: logger}, nil
}

// Inject implements input.Injector. The events are packed before anything
// is sent, so an unsupported event sends nothing.
func (inj *Injector) Inject(events []input.Input) (int, error) {
	if len(events) == 0 {
		return 0, nil
	}
	raw := make([]rawInput, len(events))
	for i, ev := range events {
		in, err := pack(ev)
		if err != nil {
			return 0, fmt.Errorf("event %d: %w", i, err)
		}
		raw[i] = in
	}

	n, _, err := procSendInput.Call(
		uintptr(len(raw)),
		uintptr(unsafe.Pointer(&raw[0])),
		unsafe.Sizeof(raw[0]),
	)
	inj.logger.WithFields(logrus.Fields{"sent": n, "want": len(raw)}).Debug("SendInput")
	if n == 0 {
		return 0, fmt.Errorf("SendInput: %w", err)
	}
	return int(n), nil
}
