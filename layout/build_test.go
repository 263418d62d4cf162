package layout

import (
	"testing"
	"unicode/utf16"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goKeyStuffer/keymaps"
)

func buildBuiltin(t *testing.T, name string, opts ...Option) (*Model, *keymaps.Description, *StaticTranslator) {
	t.Helper()
	r := keymaps.CreateDefaultRegistry()
	d, ok := r.Get(name)
	require.True(t, ok)
	tr := NewRegistryTranslator(r)
	m, err := Build(tr, d.ID, opts...)
	require.NoError(t, err)
	return m, d, tr
}

func TestBuildModifierBuffer(t *testing.T) {
	t.Parallel()

	buf := BuildModifierBuffer(keymaps.ShiftStateShift | keymaps.ShiftStateMenu)
	assert.Equal(t, byte(0x80), buf[keymaps.VKShift])
	assert.Zero(t, buf[keymaps.VKControl])
	assert.Equal(t, byte(0x80), buf[keymaps.VKMenu])

	var nonZero int
	for _, b := range buf {
		if b != 0 {
			nonZero++
		}
	}
	assert.Equal(t, 2, nonZero)
	assert.Equal(t, [256]byte{}, BuildModifierBuffer(0))

	for _, ss := range keymaps.ShiftStates {
		buf := BuildModifierBuffer(ss)
		assert.Equal(t, ss, shiftStateOf(&buf))
	}
}

func TestProbePolicyStates(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []keymaps.ShiftState{0, 1, 2, 3, 6, 7}, ProbeDefault.States())
	assert.Len(t, ProbeAllStates.States(), 8)
}

func TestBuildSkipsMenuStatesByDefault(t *testing.T) {
	t.Parallel()

	d := &keymaps.Description{
		Name: "alt",
		ID:   0x1,
		Keys: []keymaps.KeyDef{
			{ScanCode: 0x10, VirtualKey: keymaps.VKQ, Base: "q", Alt: "§", ShiftAlt: "¶"},
			{ScanCode: 0x39, VirtualKey: keymaps.VKSpace, Base: " "},
		},
	}
	tr := NewStaticTranslator(d)

	m, err := Build(tr, d.ID)
	require.NoError(t, err)
	for r, c := range m.Chars() {
		assert.NotEqual(t, keymaps.ShiftStateMenu, c.ShiftState, "%q", r)
		assert.NotEqual(t, keymaps.ShiftStateShift|keymaps.ShiftStateMenu, c.ShiftState, "%q", r)
	}
	_, err = m.Chord('§')
	assert.ErrorIs(t, err, ErrUnrepresentable)

	m, err = Build(tr, d.ID, WithProbePolicy(ProbeAllStates))
	require.NoError(t, err)
	c, err := m.Chord('§')
	require.NoError(t, err)
	assert.Equal(t, keymaps.Chord{VirtualKey: keymaps.VKQ, ShiftState: keymaps.ShiftStateMenu}, c)
	c, err = m.Chord('¶')
	require.NoError(t, err)
	assert.Equal(t, keymaps.ShiftStateShift|keymaps.ShiftStateMenu, c.ShiftState)
}

func TestBuildPrefersFewestModifiers(t *testing.T) {
	t.Parallel()

	m, _, _ := buildBuiltin(t, "us")

	tests := []struct {
		char rune
		want keymaps.Chord
	}{
		// Shift+8 is probed first but the keypad key needs no modifier.
		{'*', keymaps.Chord{VirtualKey: keymaps.VKMultiply}},
		{'+', keymaps.Chord{VirtualKey: keymaps.VKAdd}},
		// Both unmodified: the lower scan code wins.
		{'-', keymaps.Chord{VirtualKey: keymaps.VKOemMinus}},
		{'a', keymaps.Chord{VirtualKey: keymaps.VKA}},
		{'A', keymaps.Chord{VirtualKey: keymaps.VKA, ShiftState: keymaps.ShiftStateShift}},
		{'\x01', keymaps.Chord{VirtualKey: keymaps.VKA, ShiftState: keymaps.ShiftStateCtrl}},
		{'\x1e', keymaps.Chord{VirtualKey: keymaps.VKDigit6, ShiftState: keymaps.ShiftStateShift | keymaps.ShiftStateCtrl}},
		{' ', keymaps.Chord{VirtualKey: keymaps.VKSpace}},
		{'\\', keymaps.Chord{VirtualKey: keymaps.VKOem5}},
	}
	for _, tt := range tests {
		got, err := m.Chord(tt.char)
		require.NoError(t, err, "%q", tt.char)
		assert.Equal(t, tt.want, got, "%q", tt.char)
	}

	_, err := m.Chord('€')
	assert.ErrorIs(t, err, ErrUnrepresentable)
}

func TestBuildRoundTrip(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"us", "de"} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			m, d, tr := buildBuiltin(t, name)

			scanCodes := map[keymaps.VirtualKey]keymaps.ScanCode{}
			for _, k := range d.Keys {
				scanCodes[k.VirtualKey] = k.ScanCode
			}
			for r, c := range m.Chars() {
				if r == '\n' {
					continue // borrowed from '\r'
				}
				buf := BuildModifierBuffer(c.ShiftState)
				n, units := tr.ChordToUnits(c.VirtualKey, scanCodes[c.VirtualKey], &buf, d.ID)
				require.Equal(t, 1, n, "%q via %s", r, c)
				assert.Equal(t, r, rune(units[0]), "%q via %s", r, c)
			}
		})
	}
}

func TestBuildDeadKeyNames(t *testing.T) {
	t.Parallel()

	m, _, _ := buildBuiltin(t, "de")

	for name, want := range map[string]keymaps.VirtualKey{
		"dead_circumflex":  keymaps.VKOem5,
		"dead_asciicircum": keymaps.VKOem5,
		"dead_acute":       keymaps.VKOem6,
		"dead_grave":       keymaps.VKOem6,
	} {
		got, err := m.VirtualKey(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	names := m.Names()
	assert.NotContains(t, names, "dead_^")
	assert.NotContains(t, names, "asciicircum", "dead glyphs are not typeable")

	_, err := m.Chord('^')
	assert.ErrorIs(t, err, ErrUnrepresentable)
	c, err := m.Chord('°')
	require.NoError(t, err)
	assert.Equal(t, keymaps.Chord{VirtualKey: keymaps.VKOem5, ShiftState: keymaps.ShiftStateShift}, c)
	c, err = m.Chord('€')
	require.NoError(t, err)
	assert.Equal(t, keymaps.Chord{VirtualKey: keymaps.VKE, ShiftState: keymaps.ShiftStateCtrl | keymaps.ShiftStateMenu}, c)
}

func TestBuildDeadKeyWithoutSpaceBar(t *testing.T) {
	t.Parallel()

	d := &keymaps.Description{
		Name: "nospace",
		ID:   0x2,
		Keys: []keymaps.KeyDef{
			{ScanCode: 0x29, VirtualKey: keymaps.VKOem5, Base: "^", Shift: "°", Dead: []string{"base"}},
			{ScanCode: 0x10, VirtualKey: keymaps.VKQ, Base: "q"},
		},
	}
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	m, err := Build(NewStaticTranslator(d), d.ID, WithLogger(logger))
	require.NoError(t, err)
	assert.NotContains(t, m.Names(), "dead_circumflex")
	_, err = m.Chord('q')
	assert.NoError(t, err)
	// Shift+OEM_5 is tried right after the dead base chord; a dead key
	// left pending would turn it into "^°".
	_, err = m.Chord('°')
	assert.NoError(t, err)

	var skipped bool
	for _, e := range hook.AllEntries() {
		if e.Message == "Dead key skipped, layout has no space bar" {
			skipped = true
			assert.Equal(t, keymaps.VKOem5, e.Data["vk"])
		}
	}
	assert.True(t, skipped)
}

func TestStaticTranslatorPendingDeadKey(t *testing.T) {
	t.Parallel()

	d := &keymaps.Description{
		Name: "dead",
		ID:   0x3,
		Keys: []keymaps.KeyDef{
			{ScanCode: 0x10, VirtualKey: keymaps.VKQ, Base: "q"},
			{ScanCode: 0x29, VirtualKey: keymaps.VKOem5, Base: "^", Dead: []string{"base"}},
			{ScanCode: 0x39, VirtualKey: keymaps.VKSpace, Base: " "},
		},
	}
	tr := NewStaticTranslator(d)
	neutral := BuildModifierBuffer(0)
	units := func(s string) []uint16 { return utf16.Encode([]rune(s)) }

	n, got := tr.ChordToUnits(keymaps.VKOem5, 0x29, &neutral, d.ID)
	assert.Equal(t, -1, n)
	assert.Equal(t, units("^"), got)
	n, got = tr.ChordToUnits(keymaps.VKQ, 0x10, &neutral, d.ID)
	assert.Equal(t, 2, n)
	assert.Equal(t, units("^q"), got)
	n, got = tr.ChordToUnits(keymaps.VKQ, 0x10, &neutral, d.ID)
	assert.Equal(t, 1, n)
	assert.Equal(t, units("q"), got)

	// a second press of the dead key flushes it
	tr.ChordToUnits(keymaps.VKOem5, 0x29, &neutral, d.ID)
	n, got = tr.ChordToUnits(keymaps.VKOem5, 0x29, &neutral, d.ID)
	assert.Equal(t, 2, n)
	assert.Equal(t, units("^^"), got)
	n, got = tr.ChordToUnits(keymaps.VKSpace, 0x39, &neutral, d.ID)
	assert.Equal(t, 1, n)
	assert.Equal(t, units(" "), got)

	// SPACE after a dead key yields the bare glyph
	tr.ChordToUnits(keymaps.VKOem5, 0x29, &neutral, d.ID)
	n, got = tr.ChordToUnits(keymaps.VKSpace, 0x39, &neutral, d.ID)
	assert.Equal(t, 1, n)
	assert.Equal(t, units("^"), got)
}

func TestBuildLineFeedFollowsReturn(t *testing.T) {
	t.Parallel()

	m, _, _ := buildBuiltin(t, "us")
	cr, err := m.Chord('\r')
	require.NoError(t, err)
	lf, err := m.Chord('\n')
	require.NoError(t, err)
	assert.Equal(t, keymaps.Chord{VirtualKey: keymaps.VKReturn}, cr)
	assert.Equal(t, cr, lf)
}

func TestBuildNames(t *testing.T) {
	t.Parallel()

	m, _, _ := buildBuiltin(t, "us")

	for name, want := range map[string]keymaps.VirtualKey{
		"RETURN":    keymaps.VKReturn,
		"return":    keymaps.VKReturn,
		"f1":        keymaps.VKF1,
		"F1":        keymaps.VKF1,
		"kp_add":    keymaps.VKAdd,
		"shift_l":   keymaps.VKLshift,
		"next":      keymaps.VKNext,
		"prior":     keymaps.VKPrior,
		"kp_enter":  keymaps.VKReturn,
		"break":     keymaps.VKCancel,
		"HANGUL":    keymaps.VKKana,
		"ampersand": keymaps.VKDigit7,
		"grave":     keymaps.VKOem3,
		// Ctrl+K types '\v', which is also named "clear"; the key wins.
		"clear": keymaps.VKClear,
	} {
		got, err := m.VirtualKey(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := m.VirtualKey("not_a_real_key")
	assert.ErrorIs(t, err, ErrUnknownKeyName)
	_, err = m.VirtualKey("Return")
	assert.ErrorIs(t, err, ErrUnknownKeyName)
}

func TestBuildModifiers(t *testing.T) {
	t.Parallel()

	m, _, _ := buildBuiltin(t, "us")
	assert.Empty(t, m.Modifiers(0))
	assert.Equal(t, []keymaps.VirtualKey{keymaps.VKControl}, m.Modifiers(keymaps.ShiftStateCtrl))
	assert.Equal(t,
		[]keymaps.VirtualKey{keymaps.VKShift, keymaps.VKControl, keymaps.VKMenu},
		m.Modifiers(keymaps.ShiftStateShift|keymaps.ShiftStateCtrl|keymaps.ShiftStateMenu))
	assert.Equal(t,
		[]keymaps.VirtualKey{keymaps.VKShift, keymaps.VKMenu},
		m.Modifiers(keymaps.ShiftStateShift|keymaps.ShiftStateMenu))
}

func TestBuildInvalidLayout(t *testing.T) {
	t.Parallel()

	_, err := Build(NewRegistryTranslator(keymaps.CreateDefaultRegistry()), 0xdead)
	assert.ErrorIs(t, err, ErrInvalidLayoutID)
}

func TestBuildFromDescriptionFile(t *testing.T) {
	t.Parallel()

	d, err := keymaps.LoadDescriptionFile("../keymaps/testdata/fr.yaml")
	require.NoError(t, err)
	m, err := Build(NewStaticTranslator(d), d.ID)
	require.NoError(t, err)

	c, err := m.Chord('2')
	require.NoError(t, err)
	assert.Equal(t, keymaps.Chord{VirtualKey: keymaps.VKDigit2, ShiftState: keymaps.ShiftStateShift}, c)

	c, err = m.Chord('&')
	require.NoError(t, err)
	assert.Equal(t, keymaps.Chord{VirtualKey: keymaps.VKDigit1}, c)

	c, err = m.Chord('\r')
	require.NoError(t, err)
	assert.Equal(t, keymaps.VKReturn, c.VirtualKey)

	for name, want := range map[string]keymaps.VirtualKey{
		"dead_tilde":      keymaps.VKDigit2,
		"dead_asciitilde": keymaps.VKDigit2,
		"dead_circumflex": keymaps.VKOem6,
		"dead_diaeresis":  keymaps.VKOem6,
		"dead_grave":      keymaps.VKDigit7,
		"eacute":          keymaps.VKDigit2,
		"dollar":          keymaps.VKOem1,
	} {
		got, err := m.VirtualKey(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}
}

func TestBuildLogsProbes(t *testing.T) {
	t.Parallel()

	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	buildBuiltin(t, "us", WithLogger(logger))

	var probes int
	for _, e := range hook.AllEntries() {
		if e.Message == "Probed chord" {
			probes++
			assert.Contains(t, e.Data, "sc")
			assert.Contains(t, e.Data, "ss")
			assert.Contains(t, e.Data, "text")
		}
	}
	assert.NotZero(t, probes)
	assert.Equal(t, "Keyboard layout resolved", hook.LastEntry().Message)
}
