//go:build windows

package winapi

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goKeyStuffer/input"
	"github.com/goKeyStuffer/keymaps"
)

func TestRawInputSize(t *testing.T) {
	t.Parallel()

	want := uintptr(28)
	if unsafe.Sizeof(uintptr(0)) == 8 {
		want = 40
	}
	assert.Equal(t, want, unsafe.Sizeof(rawInput{}))
}

func TestPackKeyboard(t *testing.T) {
	t.Parallel()

	k, err := input.VirtualKeyEvent(keymaps.VKDelete, true, true)
	require.NoError(t, err)
	k.Message = 0xC0DE

	in, err := pack(k)
	require.NoError(t, err)
	assert.Equal(t, uint32(_INPUT_KEYBOARD), in.typ)
	ki := *(*keybdInput)(unsafe.Pointer(&in.union))
	assert.Equal(t, keybdInput{
		wVk:         uint16(keymaps.VKDelete),
		dwFlags:     _KEYEVENTF_KEYUP | _KEYEVENTF_EXTENDEDKEY,
		dwExtraInfo: 0xC0DE,
	}, ki)

	in, err = pack(input.UnicodeEvent(0x20AC, false))
	require.NoError(t, err)
	ki = *(*keybdInput)(unsafe.Pointer(&in.union))
	assert.Equal(t, keybdInput{wScan: 0x20AC, dwFlags: _KEYEVENTF_UNICODE}, ki)

	in, err = pack(input.ScanCodeEvent(0x1E, false, false))
	require.NoError(t, err)
	ki = *(*keybdInput)(unsafe.Pointer(&in.union))
	assert.Equal(t, keybdInput{wScan: 0x1E, dwFlags: _KEYEVENTF_SCANCODE}, ki)
}

func TestPackMouse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ev   input.MouseInput
		want mouseInput
	}{
		{"left down", input.ButtonEvent(input.ButtonLeft, false), mouseInput{dwFlags: _MOUSEEVENTF_LEFTDOWN}},
		{"x2 up", input.ButtonEvent(input.ButtonX2, true), mouseInput{dwFlags: _MOUSEEVENTF_XUP, mouseData: _XBUTTON2}},
		{"relative", input.MoveBy(-5, 7), mouseInput{dx: -5, dy: 7, dwFlags: _MOUSEEVENTF_MOVE}},
		{
			"virtual desktop", input.MoveTo(100, 200, true),
			mouseInput{dx: 100, dy: 200, dwFlags: _MOUSEEVENTF_MOVE | _MOUSEEVENTF_ABSOLUTE | _MOUSEEVENTF_VIRTUALDESK},
		},
		{"hwheel", input.WheelEvent(true, input.WheelDelta), mouseInput{dwFlags: _MOUSEEVENTF_HWHEEL, mouseData: 120}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			in, err := pack(tt.ev)
			require.NoError(t, err)
			assert.Equal(t, uint32(_INPUT_MOUSE), in.typ)
			assert.Equal(t, tt.want, in.union)
		})
	}

	nc := input.MoveBy(1, 1)
	nc.Coalesce = false
	in, err := pack(nc)
	require.NoError(t, err)
	assert.NotZero(t, in.union.dwFlags&_MOUSEEVENTF_MOVE_NOCOALESCE)
}

func TestPackHardware(t *testing.T) {
	t.Parallel()

	in, err := pack(input.HardwareInput{Msg: 0x10, ParamL: 1, ParamH: 2})
	require.NoError(t, err)
	assert.Equal(t, uint32(_INPUT_HARDWARE), in.typ)
	assert.Equal(t, hardwareInput{uMsg: 0x10, wParamL: 1, wParamH: 2}, *(*hardwareInput)(unsafe.Pointer(&in.union)))
}

func TestIsTagged(t *testing.T) {
	t.Parallel()

	assert.True(t, IsTagged(0xC001, 0xC001))
	assert.False(t, IsTagged(0, 0))
	assert.False(t, IsTagged(0xC001, 0xC002))
}
