package keymaps

// NamedKey is a symbolic key name bound to a virtual key.
type NamedKey struct {
	Name       string
	VirtualKey VirtualKey
}

var (
	altNameMap = biMapOf(altNames)

	charByName, nameByChar = charNameMaps(charNames)

	// deadKeyNames holds dead-key names that do not follow "dead_" + keysym.
	deadKeyNames = map[string]string{
		"asciicircum": "dead_circumflex",
		"asciitilde":  "dead_tilde",
		"apostrophe":  "dead_acute",
		"quotedbl":    "dead_diaeresis",
	}

	// vkNameAliases are alternate spellings accepted for winuser.h names.
	vkNameAliases = map[string]string{
		"HANGUEL": "KANA",
		"HANGUL":  "KANA",
		"KANJI":   "HANJA",
	}

	// keyAliases are historical names kept for scripts written against
	// older key vocabularies.
	keyAliases = []NamedKey{
		{"next", VKNext},
		{"prior", VKPrior},
		{"kp_delete", VKDelete},
		{"kp_enter", VKReturn},
		{"break", VKCancel},
	}

	// extendedKeys need KEYEVENTF_EXTENDEDKEY when injected by virtual key.
	extendedKeys = map[VirtualKey]struct{}{
		VKLcontrol: {}, VKRcontrol: {},
		VKLmenu: {}, VKRmenu: {},
		VKInsert: {}, VKDelete: {},
		VKHome: {}, VKEnd: {},
		VKPrior: {}, VKNext: {},
		VKLeft: {}, VKUp: {}, VKRight: {}, VKDown: {},
		VKNumlock:  {},
		VKCancel:   {},
		VKSnapshot: {},
		VKDivide:   {},
	}
)

// VirtualKeyName returns the winuser.h name of vk without the VK_ prefix.
func VirtualKeyName(vk VirtualKey) (string, bool) {
	return virtualKeyNames.ByRight(vk)
}

// VirtualKeyByName resolves a winuser.h name such as "RETURN" or "OEM_5".
func VirtualKeyByName(name string) (VirtualKey, bool) {
	if canonical, ok := vkNameAliases[name]; ok {
		name = canonical
	}
	return virtualKeyNames.ByLeft(name)
}

// VirtualKeyNames returns every winuser.h name, including the accepted
// aliases, with its code.
func VirtualKeyNames() []NamedKey {
	out := make([]NamedKey, 0, virtualKeyNames.Len()+len(vkNameAliases))
	virtualKeyNames.Each(func(name string, vk VirtualKey) {
		out = append(out, NamedKey{name, vk})
	})
	for alias, canonical := range vkNameAliases {
		vk, _ := virtualKeyNames.ByLeft(canonical)
		out = append(out, NamedKey{alias, vk})
	}
	return out
}

// AltKeyNames returns the lowercase names of non-printable keys in table
// order.
func AltKeyNames() []NamedKey {
	out := make([]NamedKey, 0, len(altNames))
	for _, p := range altNames {
		out = append(out, NamedKey{p.r, p.l})
	}
	return out
}

// AltName returns the lowercase name most recently bound to vk.
func AltName(vk VirtualKey) (string, bool) {
	return altNameMap.ByLeft(vk)
}

// KeyAliases returns the historical key-name aliases.
func KeyAliases() []NamedKey {
	return append([]NamedKey(nil), keyAliases...)
}

// charNameMaps indexes pairs both ways. Names are unique; characters are
// not, and the last name listed for a character is its canonical one.
func charNameMaps(pairs []pair[string, rune]) (map[string]rune, map[rune]string) {
	byName := make(map[string]rune, len(pairs))
	byChar := make(map[rune]string, len(pairs))
	for _, p := range pairs {
		byName[p.l] = p.r
		byChar[p.r] = p.l
	}
	return byName, byChar
}

// CharName returns the canonical keysym name for r.
func CharName(r rune) (string, bool) {
	name, ok := nameByChar[r]
	return name, ok
}

// CharByName returns the character named by a keysym.
func CharByName(name string) (rune, bool) {
	r, ok := charByName[name]
	return r, ok
}

// DeadKeyName returns the name of the dead key whose glyph is named base.
// exception is true when the name comes from the exception table rather than
// the "dead_" + base pattern.
func DeadKeyName(base string) (name string, exception bool) {
	if n, ok := deadKeyNames[base]; ok {
		return n, true
	}
	return "dead_" + base, false
}

// IsExtended reports whether vk is sent with the extended-key flag.
func IsExtended(vk VirtualKey) bool {
	_, ok := extendedKeys[vk]
	return ok
}
