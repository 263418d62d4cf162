// Package send plans the input events that type text or press named keys
// on a resolved keyboard layout.
package send

import (
	"fmt"
	"io"
	"unicode/utf16"

	"github.com/sirupsen/logrus"

	"github.com/goKeyStuffer/input"
	"github.com/goKeyStuffer/keymaps"
	"github.com/goKeyStuffer/layout"
)

// Synthesizer turns text and key names into input events for one layout
// model. It holds no mutable state.
type Synthesizer struct {
	model  *layout.Model
	msg    input.WindowMessage
	logger logrus.FieldLogger
}

// Option configures a Synthesizer.
type Option func(*Synthesizer)

// WithMessage tags every event with msg.
func WithMessage(msg input.WindowMessage) Option {
	return func(s *Synthesizer) { s.msg = msg }
}

// WithLogger sets the logger used for fallback notices.
func WithLogger(l logrus.FieldLogger) Option {
	return func(s *Synthesizer) { s.logger = l }
}

// New returns a Synthesizer for m.
func New(m *layout.Model, opts ...Option) *Synthesizer {
	l := logrus.New()
	l.SetOutput(io.Discard)
	s := &Synthesizer{model: m, logger: l}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Model returns the layout model events are planned for.
func (s *Synthesizer) Model() *layout.Model { return s.model }

// Text returns the events that type text.
func (s *Synthesizer) Text(text string) []input.Input {
	events := make([]input.Input, 0, 4*len(text))
	for _, r := range text {
		chord, err := s.model.Chord(r)
		if err == nil {
			var keys []input.Input
			if keys, err = s.chordEvents(chord); err == nil {
				events = append(events, keys...)
				continue
			}
		}
		s.logger.WithError(err).WithField("char", fmt.Sprintf("%q", r)).Debug("Typing character as unicode")
		events = s.appendUnicode(events, r)
	}
	return events
}

// Key returns a single press or release of the key called name.
func (s *Synthesizer) Key(name string, keyDown bool) (input.Input, error) {
	vk, err := s.model.VirtualKey(name)
	if err != nil {
		return nil, err
	}
	k, err := s.keyEvent(vk, !keyDown)
	if err != nil {
		return nil, fmt.Errorf("key %q: %w", name, err)
	}
	return k, nil
}

// chordEvents holds the modifiers, taps the key, and releases the
// modifiers innermost first.
func (s *Synthesizer) chordEvents(c keymaps.Chord) ([]input.Input, error) {
	mods := s.model.Modifiers(c.ShiftState)
	seq := make([]keymaps.VirtualKey, 0, len(mods)+1)
	seq = append(seq, mods...)
	seq = append(seq, c.VirtualKey)

	events := make([]input.Input, 2*len(seq))
	for i, vk := range seq {
		down, err := s.keyEvent(vk, false)
		if err != nil {
			return nil, err
		}
		up, _ := s.keyEvent(vk, true)
		events[i] = down
		events[len(events)-1-i] = up
	}
	return events, nil
}

// appendUnicode sends every code unit down before any goes up, so that a
// surrogate pair arrives as one character.
func (s *Synthesizer) appendUnicode(events []input.Input, r rune) []input.Input {
	units := utf16.Encode([]rune{r})
	for _, up := range []bool{false, true} {
		for _, u := range units {
			k := input.UnicodeEvent(u, up)
			k.Message = s.msg
			events = append(events, k)
		}
	}
	return events
}

func (s *Synthesizer) keyEvent(vk keymaps.VirtualKey, up bool) (input.KeyboardInput, error) {
	k, err := input.VirtualKeyEvent(vk, keymaps.IsExtended(vk), up)
	if err != nil {
		return k, err
	}
	k.Message = s.msg
	return k, nil
}

// TextToEvents returns the events that type text on m.
func TextToEvents(text string, m *layout.Model) []input.Input {
	return New(m).Text(text)
}

// KeyToEvent returns one press or release of the key called name on m.
func KeyToEvent(name string, keyDown bool, m *layout.Model) (input.Input, error) {
	return New(m).Key(name, keyDown)
}
