package keymaps

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBiMapInsertEvictsBothSides(t *testing.T) {
	t.Parallel()

	m := NewBiMap[ScanCode, VirtualKey]()
	m.Insert(0x1E, VKA)
	m.Insert(0x1F, VKA) // same right value: 0x1E is evicted
	m.Insert(0x1F, VKS) // same left value: VKA is evicted

	_, ok := m.ByLeft(0x1E)
	assert.False(t, ok)
	_, ok = m.ByRight(VKA)
	assert.False(t, ok)

	sc, ok := m.ByRight(VKS)
	require.True(t, ok)
	assert.Equal(t, ScanCode(0x1F), sc)
	assert.Equal(t, 1, m.Len())
}

func TestVirtualKeyByName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want VirtualKey
	}{
		{"RETURN", VKReturn},
		{"F1", VKF1},
		{"A", VKA},
		{"OEM_102", VKOem102},
		{"HANGUL", VKKana},
		{"HANGUEL", VKKana},
		{"KANJI", VKHanja},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := VirtualKeyByName(tt.name)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	_, ok := VirtualKeyByName("return")
	assert.False(t, ok, "winuser.h names are case-sensitive")
}

func TestVirtualKeyString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "RETURN", VKReturn.String())
	assert.Equal(t, "7", VirtualKey(7).String())
}

func TestShiftStateString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Base", ShiftState(0).String())
	assert.Equal(t, "Shift Ctrl", (ShiftStateShift | ShiftStateCtrl).String())
	assert.Equal(t, "Ctrl Menu", (ShiftStateCtrl | ShiftStateMenu).String())
	assert.Equal(t, "Shift+A", Chord{VKA, ShiftStateShift}.String())
	assert.Equal(t, 3, ShiftState(7).Count())
}

func TestParseShiftState(t *testing.T) {
	t.Parallel()

	for i, k := range shiftStateKeys {
		ss, err := ParseShiftState(strings.ToUpper(k))
		require.NoError(t, err)
		assert.Equal(t, ShiftState(i), ss)
	}
	_, err := ParseShiftState("hyper")
	assert.Error(t, err)
}

func TestCharNames(t *testing.T) {
	t.Parallel()

	name, ok := CharName('&')
	require.True(t, ok)
	assert.Equal(t, "ampersand", name)

	// Two keysyms share these characters; the canonical one wins.
	name, _ = CharName('`')
	assert.Equal(t, "grave", name)
	name, _ = CharName('\'')
	assert.Equal(t, "apostrophe", name)

	// ...but every name still resolves.
	for name, want := range map[string]rune{
		"quoteleft": '`', "grave": '`',
		"quoteright": '\'', "apostrophe": '\'',
		"ampersand": '&',
	} {
		r, ok := CharByName(name)
		require.True(t, ok, name)
		assert.Equal(t, want, r, name)
	}
	_, ok = CharByName("euro")
	assert.False(t, ok)

	_, ok = CharName('€')
	assert.False(t, ok)
}

func TestDeadKeyName(t *testing.T) {
	t.Parallel()

	name, exception := DeadKeyName("asciicircum")
	assert.Equal(t, "dead_circumflex", name)
	assert.True(t, exception)

	name, exception = DeadKeyName("acute")
	assert.Equal(t, "dead_acute", name)
	assert.False(t, exception)
}

func TestAltNamesAndAliases(t *testing.T) {
	t.Parallel()

	names := map[string]VirtualKey{}
	for _, nk := range AltKeyNames() {
		names[nk.Name] = nk.VirtualKey
	}
	assert.Equal(t, VKAdd, names["kp_add"])
	assert.Equal(t, VKLshift, names["shift_l"])
	// Codes with several names keep all of them.
	assert.Equal(t, VKBrowserHome, names["homepage"])
	assert.Equal(t, VKBrowserHome, names["www"])

	name, ok := AltName(VKBrowserHome)
	require.True(t, ok)
	assert.Equal(t, "www", name)

	aliases := map[string]VirtualKey{}
	for _, nk := range KeyAliases() {
		aliases[nk.Name] = nk.VirtualKey
	}
	assert.Equal(t, map[string]VirtualKey{
		"next":      VKNext,
		"prior":     VKPrior,
		"kp_delete": VKDelete,
		"kp_enter":  VKReturn,
		"break":     VKCancel,
	}, aliases)
}

func TestIsExtended(t *testing.T) {
	t.Parallel()

	assert.True(t, IsExtended(VKDelete))
	assert.True(t, IsExtended(VKDivide))
	assert.False(t, IsExtended(VKA))
	assert.False(t, IsExtended(VKReturn))
}

func TestKeyDefOutput(t *testing.T) {
	t.Parallel()

	k := KeyDef{Base: "´", Shift: "`", CtrlAlt: "x", Dead: []string{"base", "shift"}}
	text, dead := k.Output(0)
	assert.Equal(t, "´", text)
	assert.True(t, dead)

	text, dead = k.Output(ShiftStateCtrl | ShiftStateMenu)
	assert.Equal(t, "x", text)
	assert.False(t, dead)

	text, _ = k.Output(ShiftStateCtrl)
	assert.Empty(t, text)
}

func TestLoadDescriptionFile(t *testing.T) {
	t.Parallel()

	d, err := LoadDescriptionFile("testdata/fr.yaml")
	require.NoError(t, err)
	assert.Equal(t, "fr", d.Name)
	assert.Equal(t, LayoutID(0x040C040C), d.ID)

	var hat *KeyDef
	for i := range d.Keys {
		if d.Keys[i].ScanCode == 0x1A {
			hat = &d.Keys[i]
		}
	}
	require.NotNil(t, hat)
	assert.Equal(t, VKOem6, hat.VirtualKey)
	text, dead := hat.Output(ShiftStateShift)
	assert.Equal(t, "¨", text)
	assert.True(t, dead)

	esc := d.Keys[0]
	assert.Equal(t, "\x1b", esc.Base)
}

func TestLoadDescriptionRejectsBadInput(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"unknown vk":     "name: x\nid: 1\nkeys:\n  - {scan: 1, vk: NOT_A_KEY}\n",
		"scan too big":   "name: x\nid: 1\nkeys:\n  - {scan: 0x80, vk: A}\n",
		"duplicate scan": "name: x\nid: 1\nkeys:\n  - {scan: 2, vk: A}\n  - {scan: 2, vk: B}\n",
		"no id":          "name: x\nkeys: []\n",
		"bad dead state": "name: x\nid: 1\nkeys:\n  - {scan: 2, vk: A, dead: [hyper]}\n",
		"unknown field":  "name: x\nid: 1\ncolour: red\n",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := LoadDescription(strings.NewReader(doc))
			assert.Error(t, err)
		})
	}
}

func TestDefaultRegistry(t *testing.T) {
	t.Parallel()

	r := CreateDefaultRegistry()
	assert.Equal(t, []string{"de", "us"}, r.Names())

	us, ok := r.Get("us")
	require.True(t, ok)
	require.NoError(t, us.Validate())

	de, ok := r.ByID(0x04070407)
	require.True(t, ok)
	assert.Equal(t, "de", de.Name)
	require.NoError(t, de.Validate())

	assert.Panics(t, func() { RegisterUSLayout(r) })
}
