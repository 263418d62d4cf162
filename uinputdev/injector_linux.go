//go:build linux

// Package uinputdev injects input events through virtual uinput devices.
package uinputdev

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"
	"unicode/utf16"

	"github.com/bendahl/uinput"
	"github.com/sirupsen/logrus"

	"github.com/goKeyStuffer/input"
	"github.com/goKeyStuffer/keymaps"
)

type keyboard interface {
	KeyDown(key int) error
	KeyUp(key int) error
	io.Closer
}

type mouse interface {
	Move(x, y int32) error
	LeftPress() error
	LeftRelease() error
	RightPress() error
	RightRelease() error
	MiddlePress() error
	MiddleRelease() error
	Wheel(horizontal bool, delta int32) error
	io.Closer
}

// Options configures the virtual devices.
type Options struct {
	// Path of the uinput control device, usually /dev/uinput.
	Path string
	// Name of the virtual keyboard; the mouse gets " mouse" appended.
	Name string
	// Layout, when set, places layout-dependent keys where the description
	// puts them instead of at their US positions.
	Layout *keymaps.Description
	// Settle bounds how long New waits for the keyboard to show up under
	// /dev/input. Zero does not wait.
	Settle time.Duration
	Logger logrus.FieldLogger
}

// Injector types through a virtual keyboard and mouse. Unicode code units
// are entered with the Ctrl+Shift+U hex sequence understood by GTK and
// IBus.
type Injector struct {
	mu     sync.Mutex
	kbd    keyboard
	mouse  mouse
	codes  map[keymaps.VirtualKey]int
	logger logrus.FieldLogger

	// high surrogate waiting for its pair
	high uint16
}

var _ input.Injector = (*Injector)(nil)

// New creates the virtual devices.
func New(ctx context.Context, opts Options) (*Injector, error) {
	kbd, err := uinput.CreateKeyboard(opts.Path, []byte(opts.Name))
	if err != nil {
		return nil, fmt.Errorf("failed to create virtual keyboard: %w", err)
	}
	m, err := uinput.CreateMouse(opts.Path, []byte(opts.Name+" mouse"))
	if err != nil {
		_ = kbd.Close()
		return nil, fmt.Errorf("failed to create virtual mouse: %w", err)
	}
	inj := newInjector(kbd, m, opts.Layout, opts.Logger)

	if opts.Settle > 0 {
		ctx, cancel := context.WithTimeout(ctx, opts.Settle)
		defer cancel()
		dev, err := WaitForDevice(ctx, opts.Name, 20*time.Millisecond)
		if err != nil {
			inj.logger.WithError(err).Warn("Virtual keyboard did not appear, typing anyway")
		} else {
			inj.logger.WithField("path", dev.Path).Debug("Virtual keyboard ready")
		}
	}
	return inj, nil
}

func newInjector(kbd keyboard, m mouse, desc *keymaps.Description, logger logrus.FieldLogger) *Injector {
	if logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		logger = l
	}
	codes := make(map[keymaps.VirtualKey]int, len(vkCodes))
	for vk, code := range vkCodes {
		codes[vk] = code
	}
	if desc != nil {
		for _, k := range desc.Keys {
			if !positionDependent(k.VirtualKey) {
				continue
			}
			if code, ok := scanCodeKey(uint16(k.ScanCode), false); ok {
				codes[k.VirtualKey] = code
			}
		}
	}
	return &Injector{kbd: kbd, mouse: m, codes: codes, logger: logger}
}

// Inject implements input.Injector. It stops at the first event that
// fails and reports how many went through.
func (inj *Injector) Inject(events []input.Input) (int, error) {
	inj.mu.Lock()
	defer inj.mu.Unlock()

	for i, ev := range events {
		var err error
		switch ev := ev.(type) {
		case input.KeyboardInput:
			err = inj.keyboardEvent(ev)
		case input.MouseInput:
			err = inj.mouseEvent(ev)
		default:
			err = fmt.Errorf("%w: %T", input.ErrUnsupported, ev)
		}
		if err != nil {
			return i, fmt.Errorf("event %d (%v): %w", i, ev, err)
		}
	}
	return len(events), nil
}

func (inj *Injector) keyboardEvent(k input.KeyboardInput) error {
	switch k.Kind {
	case input.KeyVirtual:
		code, ok := inj.codes[k.VirtualKey()]
		if !ok {
			return fmt.Errorf("%w: no evdev key for %s", input.ErrUnsupported, k.VirtualKey())
		}
		return inj.key(code, k.KeyUp)
	case input.KeyScanCode:
		code, ok := scanCodeKey(k.Code, k.Extended)
		if !ok {
			return fmt.Errorf("%w: no evdev key for scan code %#x", input.ErrUnsupported, k.Code)
		}
		return inj.key(code, k.KeyUp)
	case input.KeyUnicode:
		return inj.unicodeUnit(k.Code, k.KeyUp)
	}
	return fmt.Errorf("%w: keyboard event kind %d", input.ErrUnsupported, k.Kind)
}

func (inj *Injector) key(code int, up bool) error {
	inj.logger.WithFields(logrus.Fields{"key": code, "up": up}).Debug("uinput key")
	if up {
		return inj.kbd.KeyUp(code)
	}
	return inj.kbd.KeyDown(code)
}

// unicodeUnit types a code point when its last unit goes down. Releases
// carry nothing to type.
func (inj *Injector) unicodeUnit(unit uint16, up bool) error {
	if up {
		return nil
	}
	r := rune(unit)
	switch {
	case utf16.IsSurrogate(r) && unit < 0xDC00:
		inj.high = unit
		return nil
	case utf16.IsSurrogate(r):
		if inj.high == 0 {
			return fmt.Errorf("%w: unpaired low surrogate %#x", input.ErrUnsupported, unit)
		}
		r = utf16.DecodeRune(rune(inj.high), r)
		inj.high = 0
	}
	return inj.typeCodePoint(r)
}

func (inj *Injector) typeCodePoint(r rune) error {
	seq := unicodeSequence(r)
	for _, step := range seq {
		if err := inj.key(step.code, step.up); err != nil {
			return err
		}
	}
	return nil
}

type keyStep struct {
	code int
	up   bool
}

// unicodeSequence is Ctrl+Shift+U, the lowercase hex digits of r, Space.
func unicodeSequence(r rune) []keyStep {
	ctrl, shift := vkCodes[keymaps.VKControl], vkCodes[keymaps.VKShift]
	u := vkCodes[keymaps.VKU]
	space := vkCodes[keymaps.VKSpace]
	seq := []keyStep{{ctrl, false}, {shift, false}, {u, false}, {u, true}, {shift, true}, {ctrl, true}}
	for _, d := range fmt.Sprintf("%x", r) {
		var code int
		if d <= '9' {
			code = hexKeys[d-'0']
		} else {
			code = hexKeys[d-'a'+10]
		}
		seq = append(seq, keyStep{code, false}, keyStep{code, true})
	}
	return append(seq, keyStep{space, false}, keyStep{space, true})
}

func (inj *Injector) mouseEvent(m input.MouseInput) error {
	switch m.Action {
	case input.MouseButtonAction:
		return inj.button(m.Button, m.ButtonUp)
	case input.MouseMove:
		if m.Movement != input.MoveRelative {
			return fmt.Errorf("%w: absolute pointer moves", input.ErrUnsupported)
		}
		return inj.mouse.Move(m.DX, m.DY)
	case input.MouseWheel:
		notches := m.Wheel / input.WheelDelta
		if notches == 0 && m.Wheel != 0 {
			notches = 1
			if m.Wheel < 0 {
				notches = -1
			}
		}
		return inj.mouse.Wheel(m.Horizontal, notches)
	}
	return fmt.Errorf("%w: mouse action %d", input.ErrUnsupported, m.Action)
}

func (inj *Injector) button(b input.MouseButton, up bool) error {
	switch b {
	case input.ButtonLeft:
		if up {
			return inj.mouse.LeftRelease()
		}
		return inj.mouse.LeftPress()
	case input.ButtonRight:
		if up {
			return inj.mouse.RightRelease()
		}
		return inj.mouse.RightPress()
	case input.ButtonMiddle:
		if up {
			return inj.mouse.MiddleRelease()
		}
		return inj.mouse.MiddlePress()
	}
	return fmt.Errorf("%w: mouse button %s", input.ErrUnsupported, b)
}

// Close releases both virtual devices.
func (inj *Injector) Close() error {
	inj.mu.Lock()
	defer inj.mu.Unlock()

	// Let go of buttons in case a sequence was cut short.
	_ = inj.mouse.LeftRelease()
	_ = inj.mouse.RightRelease()

	kerr := inj.kbd.Close()
	merr := inj.mouse.Close()
	if kerr != nil {
		return kerr
	}
	return merr
}
