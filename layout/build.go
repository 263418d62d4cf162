package layout

import (
	"fmt"
	"io"
	"unicode/utf16"

	"github.com/sirupsen/logrus"

	"github.com/goKeyStuffer/keymaps"
)

// ProbePolicy selects which shift states are probed.
type ProbePolicy uint8

const (
	// ProbeDefault skips Menu and Shift+Menu, where many layouts produce
	// nothing useful or answer ambiguously.
	ProbeDefault ProbePolicy = iota
	// ProbeAllStates probes all eight shift states.
	ProbeAllStates
)

// States returns the shift states probed under p, in probing order.
func (p ProbePolicy) States() []keymaps.ShiftState {
	out := make([]keymaps.ShiftState, 0, len(keymaps.ShiftStates))
	for _, ss := range keymaps.ShiftStates {
		if p == ProbeDefault && (ss == keymaps.ShiftStateMenu || ss == keymaps.ShiftStateShift|keymaps.ShiftStateMenu) {
			continue
		}
		out = append(out, ss)
	}
	return out
}

func (p ProbePolicy) String() string {
	if p == ProbeAllStates {
		return "all"
	}
	return "default"
}

// Option configures Build.
type Option func(*builder)

// WithLogger sets the logger probe results are written to at debug level.
func WithLogger(l logrus.FieldLogger) Option {
	return func(b *builder) { b.logger = l }
}

// WithProbePolicy sets the shift states to probe.
func WithProbePolicy(p ProbePolicy) Option {
	return func(b *builder) { b.policy = p }
}

type candidate[K comparable] struct {
	key   K
	chord keymaps.Chord
}

type builder struct {
	tr     Translator
	id     LayoutID
	logger logrus.FieldLogger
	policy ProbePolicy

	chars []candidate[rune]
	names []candidate[string]
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// Build probes layout id through tr and returns its model.
func Build(tr Translator, id LayoutID, opts ...Option) (*Model, error) {
	b := &builder{tr: tr, id: id, logger: discardLogger(), policy: ProbeDefault}
	for _, opt := range opts {
		opt(b)
	}
	if err := tr.CheckLayout(id); err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrInvalidLayoutID, id, err)
	}

	keys := keymaps.NewBiMap[keymaps.ScanCode, keymaps.VirtualKey]()
	for sc := keymaps.ScanCode(1); sc <= keymaps.MaxScanCode; sc++ {
		if vk := tr.ScanCodeToVirtualKey(sc, id); vk != 0 {
			keys.Insert(sc, vk)
		}
	}
	b.probe(keys)

	m := &Model{
		id:        id,
		chars:     pickSimplest(b.chars),
		names:     map[string]keymaps.VirtualKey{},
		modifiers: modifierKeys(),
	}
	if c, ok := m.chars['\r']; ok {
		m.chars['\n'] = c
	}
	for name, c := range pickSimplest(b.names) {
		m.names[name] = c.VirtualKey
	}
	for _, nk := range keymaps.VirtualKeyNames() {
		m.names[nk.Name] = nk.VirtualKey
	}
	for _, nk := range keymaps.AltKeyNames() {
		m.names[nk.Name] = nk.VirtualKey
	}
	for _, nk := range keymaps.KeyAliases() {
		m.names[nk.Name] = nk.VirtualKey
	}

	b.logger.WithFields(logrus.Fields{
		"layout": id,
		"keys":   keys.Len(),
		"chars":  len(m.chars),
		"names":  len(m.names),
		"policy": b.policy,
	}).Debug("Keyboard layout resolved")
	return m, nil
}

func (b *builder) probe(keys *keymaps.BiMap[keymaps.ScanCode, keymaps.VirtualKey]) {
	spaceSC, hasSpace := keys.ByRight(keymaps.VKSpace)
	states := b.policy.States()

	for sc := keymaps.ScanCode(1); sc <= keymaps.MaxScanCode; sc++ {
		vk, ok := keys.ByLeft(sc)
		if !ok {
			continue
		}
		for _, ss := range states {
			buf := BuildModifierBuffer(ss)
			n, units := b.tr.ChordToUnits(vk, sc, &buf, b.id)
			dead := n < 0
			if dead {
				if !hasSpace {
					// Pressing the dead key a second time clears it from the
					// translator so it cannot combine with the next chord.
					b.tr.ChordToUnits(vk, sc, &buf, b.id)
					b.logger.WithFields(logrus.Fields{"sc": sc, "vk": vk, "ss": ss}).
						Debug("Dead key skipped, layout has no space bar")
					continue
				}
				neutral := BuildModifierBuffer(0)
				n, units = b.tr.ChordToUnits(keymaps.VKSpace, spaceSC, &neutral, b.id)
			}
			if n <= 0 {
				continue
			}
			if n < len(units) {
				units = units[:n]
			}
			b.logger.WithFields(logrus.Fields{
				"sc":   fmt.Sprintf("%#02x", uint8(sc)),
				"vk":   vk,
				"ss":   ss,
				"text": fmt.Sprintf("%q", string(utf16.Decode(units))),
				"dead": dead,
			}).Debug("Probed chord")

			if len(units) != 1 || utf16.IsSurrogate(rune(units[0])) {
				continue
			}
			b.record(rune(units[0]), keymaps.Chord{VirtualKey: vk, ShiftState: ss}, dead)
		}
	}
}

func (b *builder) record(r rune, chord keymaps.Chord, dead bool) {
	if name, ok := keymaps.CharName(r); ok {
		if dead {
			deadName, exception := keymaps.DeadKeyName(name)
			b.names = append(b.names, candidate[string]{deadName, chord})
			if exception {
				b.names = append(b.names, candidate[string]{"dead_" + name, chord})
			}
		} else {
			b.names = append(b.names, candidate[string]{name, chord})
		}
	}
	if !dead {
		b.chars = append(b.chars, candidate[rune]{r, chord})
	}
}

// pickSimplest keeps, per key, the chord with the fewest modifiers. Equal
// counts keep the first candidate, which is the earliest probed.
func pickSimplest[K comparable](cands []candidate[K]) map[K]keymaps.Chord {
	out := make(map[K]keymaps.Chord, len(cands))
	for _, c := range cands {
		if cur, ok := out[c.key]; ok && cur.ShiftState.Count() <= c.chord.ShiftState.Count() {
			continue
		}
		out[c.key] = c.chord
	}
	return out
}
