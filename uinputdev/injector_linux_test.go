//go:build linux

package uinputdev

import (
	"errors"
	"fmt"
	"testing"

	evdev "github.com/gvalkov/golang-evdev"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goKeyStuffer/input"
	"github.com/goKeyStuffer/keymaps"
	"github.com/goKeyStuffer/layout"
	"github.com/goKeyStuffer/send"
)

type fakeKeyboard struct {
	log    []string
	failAt int
	closed bool
}

func (f *fakeKeyboard) record(s string) error {
	if f.failAt > 0 && len(f.log)+1 == f.failAt {
		return errors.New("device gone")
	}
	f.log = append(f.log, s)
	return nil
}

func (f *fakeKeyboard) KeyDown(key int) error { return f.record(fmt.Sprintf("+%d", key)) }
func (f *fakeKeyboard) KeyUp(key int) error   { return f.record(fmt.Sprintf("-%d", key)) }
func (f *fakeKeyboard) Close() error          { f.closed = true; return nil }

type fakeMouse struct {
	log    []string
	closed bool
}

func (f *fakeMouse) add(s string) error { f.log = append(f.log, s); return nil }

func (f *fakeMouse) Move(x, y int32) error { return f.add(fmt.Sprintf("move %d,%d", x, y)) }
func (f *fakeMouse) LeftPress() error      { return f.add("left down") }
func (f *fakeMouse) LeftRelease() error    { return f.add("left up") }
func (f *fakeMouse) RightPress() error     { return f.add("right down") }
func (f *fakeMouse) RightRelease() error   { return f.add("right up") }
func (f *fakeMouse) MiddlePress() error    { return f.add("middle down") }
func (f *fakeMouse) MiddleRelease() error  { return f.add("middle up") }
func (f *fakeMouse) Wheel(h bool, d int32) error {
	return f.add(fmt.Sprintf("wheel h=%v %d", h, d))
}
func (f *fakeMouse) Close() error { f.closed = true; return nil }

func keys(codes ...int) []string {
	out := make([]string, 0, len(codes))
	for _, c := range codes {
		if c < 0 {
			out = append(out, fmt.Sprintf("-%d", -c))
		} else {
			out = append(out, fmt.Sprintf("+%d", c))
		}
	}
	return out
}

func TestInjectVirtualKeys(t *testing.T) {
	t.Parallel()

	kbd, m := &fakeKeyboard{}, &fakeMouse{}
	inj := newInjector(kbd, m, nil, nil)

	r := keymaps.CreateDefaultRegistry()
	us, ok := r.Get("us")
	require.True(t, ok)
	model, err := layout.Build(layout.NewRegistryTranslator(r), us.ID)
	require.NoError(t, err)

	n, err := inj.Inject(send.TextToEvents("A", model))
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, keys(evdev.KEY_LEFTSHIFT, evdev.KEY_A, -evdev.KEY_A, -evdev.KEY_LEFTSHIFT), kbd.log)
}

func TestInjectLayoutPositions(t *testing.T) {
	t.Parallel()

	// On a German keyboard Z sits where the US layout has Y.
	desc := &keymaps.Description{
		Name: "de-ish",
		Keys: []keymaps.KeyDef{
			{ScanCode: 0x15, VirtualKey: keymaps.VKZ},
			{ScanCode: 0x2C, VirtualKey: keymaps.VKY},
			{ScanCode: 0x39, VirtualKey: keymaps.VKSpace},
		},
	}
	kbd := &fakeKeyboard{}
	inj := newInjector(kbd, &fakeMouse{}, desc, nil)

	z, err := input.VirtualKeyEvent(keymaps.VKZ, false, false)
	require.NoError(t, err)
	y, err := input.VirtualKeyEvent(keymaps.VKY, false, false)
	require.NoError(t, err)
	_, err = inj.Inject([]input.Input{z, y})
	require.NoError(t, err)
	assert.Equal(t, keys(evdev.KEY_Y, evdev.KEY_Z), kbd.log)
}

func TestInjectScanCodes(t *testing.T) {
	t.Parallel()

	kbd := &fakeKeyboard{}
	inj := newInjector(kbd, &fakeMouse{}, nil, nil)

	_, err := inj.Inject([]input.Input{
		input.ScanCodeEvent(0x1E, false, false),
		input.ScanCodeEvent(0x4B, true, true),
	})
	require.NoError(t, err)
	assert.Equal(t, keys(evdev.KEY_A, -evdev.KEY_LEFT), kbd.log)

	n, err := inj.Inject([]input.Input{input.ScanCodeEvent(0x7E, false, false)})
	assert.Equal(t, 0, n)
	assert.ErrorIs(t, err, input.ErrUnsupported)
}

func TestInjectUnicode(t *testing.T) {
	t.Parallel()

	prefix := keys(evdev.KEY_LEFTCTRL, evdev.KEY_LEFTSHIFT, evdev.KEY_U, -evdev.KEY_U, -evdev.KEY_LEFTSHIFT, -evdev.KEY_LEFTCTRL)
	tap := func(code int) []string { return keys(code, -code) }
	space := tap(evdev.KEY_SPACE)

	t.Run("bmp", func(t *testing.T) {
		t.Parallel()
		kbd := &fakeKeyboard{}
		inj := newInjector(kbd, &fakeMouse{}, nil, nil)
		_, err := inj.Inject([]input.Input{input.UnicodeEvent(0x20AC, false), input.UnicodeEvent(0x20AC, true)})
		require.NoError(t, err)

		var want []string
		want = append(want, prefix...)
		for _, c := range []int{evdev.KEY_2, evdev.KEY_0, evdev.KEY_A, evdev.KEY_C} {
			want = append(want, tap(c)...)
		}
		want = append(want, space...)
		assert.Equal(t, want, kbd.log)
	})

	t.Run("surrogate pair", func(t *testing.T) {
		t.Parallel()
		kbd := &fakeKeyboard{}
		inj := newInjector(kbd, &fakeMouse{}, nil, nil)
		_, err := inj.Inject([]input.Input{
			input.UnicodeEvent(0xD83D, false), input.UnicodeEvent(0xDE00, false),
			input.UnicodeEvent(0xD83D, true), input.UnicodeEvent(0xDE00, true),
		})
		require.NoError(t, err)

		var want []string
		want = append(want, prefix...)
		for _, c := range []int{evdev.KEY_1, evdev.KEY_F, evdev.KEY_6, evdev.KEY_0, evdev.KEY_0} {
			want = append(want, tap(c)...)
		}
		want = append(want, space...)
		assert.Equal(t, want, kbd.log)
	})

	t.Run("lone low surrogate", func(t *testing.T) {
		t.Parallel()
		inj := newInjector(&fakeKeyboard{}, &fakeMouse{}, nil, nil)
		_, err := inj.Inject([]input.Input{input.UnicodeEvent(0xDE00, false)})
		assert.ErrorIs(t, err, input.ErrUnsupported)
	})
}

func TestInjectMouse(t *testing.T) {
	t.Parallel()

	m := &fakeMouse{}
	inj := newInjector(&fakeKeyboard{}, m, nil, nil)

	n, err := inj.Inject([]input.Input{
		input.MoveBy(-3, 4),
		input.ButtonEvent(input.ButtonLeft, false),
		input.ButtonEvent(input.ButtonLeft, true),
		input.WheelEvent(false, -2*input.WheelDelta),
		input.WheelEvent(true, 30),
	})
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, []string{"move -3,4", "left down", "left up", "wheel h=false -2", "wheel h=true 1"}, m.log)

	for _, ev := range []input.Input{
		input.ButtonEvent(input.ButtonX1, false),
		input.MoveTo(10, 10, false),
		input.HardwareInput{Msg: 1},
	} {
		_, err := inj.Inject([]input.Input{ev})
		assert.ErrorIs(t, err, input.ErrUnsupported, "%v", ev)
	}
}

func TestInjectStopsAtFailure(t *testing.T) {
	t.Parallel()

	kbd := &fakeKeyboard{failAt: 2}
	inj := newInjector(kbd, &fakeMouse{}, nil, nil)

	a, err := input.VirtualKeyEvent(keymaps.VKA, false, false)
	require.NoError(t, err)
	n, err := inj.Inject([]input.Input{a, a, a})
	assert.Equal(t, 1, n)
	assert.EqualError(t, err, "event 1 (VK A down): device gone")
}

func TestClose(t *testing.T) {
	t.Parallel()

	kbd, m := &fakeKeyboard{}, &fakeMouse{}
	inj := newInjector(kbd, m, nil, nil)
	require.NoError(t, inj.Close())
	assert.True(t, kbd.closed)
	assert.True(t, m.closed)
	assert.Equal(t, []string{"left up", "right up"}, m.log)
}
