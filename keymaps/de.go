package keymaps

// GermanLayout returns the German QWERTZ layout (KLID 00000407) with its
// dead accent keys and AltGr (Ctrl+Alt) level.
func GermanLayout() *Description {
	altGr := func(k KeyDef, text string) KeyDef {
		k.CtrlAlt = text
		return k
	}
	keys := []KeyDef{
		// Number row
		{ScanCode: 0x29, VirtualKey: VKOem5, Base: "^", Shift: "°", Dead: []string{"base"}},
		key(0x02, VKDigit1, "1", "!"),
		altGr(key(0x03, VKDigit2, "2", "\""), "²"),
		altGr(key(0x04, VKDigit3, "3", "§"), "³"),
		key(0x05, VKDigit4, "4", "$"),
		key(0x06, VKDigit5, "5", "%"),
		key(0x07, VKDigit6, "6", "&"),
		altGr(key(0x08, VKDigit7, "7", "/"), "{"),
		altGr(key(0x09, VKDigit8, "8", "("), "["),
		altGr(key(0x0A, VKDigit9, "9", ")"), "]"),
		altGr(key(0x0B, VKDigit0, "0", "="), "}"),
		altGr(key(0x0C, VKOem4, "ß", "?"), "\\"),
		{ScanCode: 0x0D, VirtualKey: VKOem6, Base: "´", Shift: "`", Dead: []string{"base", "shift"}},

		// Top row
		altGr(letterKey(0x10, VKQ), "@"),
		letterKey(0x11, VKW),
		altGr(letterKey(0x12, VKE), "€"),
		letterKey(0x13, VKR),
		letterKey(0x14, VKT),
		letterKey(0x15, VKZ),
		letterKey(0x16, VKU),
		letterKey(0x17, VKI),
		letterKey(0x18, VKO),
		letterKey(0x19, VKP),
		{ScanCode: 0x1A, VirtualKey: VKOem1, Base: "ü", Shift: "Ü", Ctrl: "\x1b"},
		{ScanCode: 0x1B, VirtualKey: VKOemPlus, Base: "+", Shift: "*", Ctrl: "\x1d", CtrlAlt: "~"},

		// Home row
		letterKey(0x1E, VKA),
		letterKey(0x1F, VKS),
		letterKey(0x20, VKD),
		letterKey(0x21, VKF),
		letterKey(0x22, VKG),
		letterKey(0x23, VKH),
		letterKey(0x24, VKJ),
		letterKey(0x25, VKK),
		letterKey(0x26, VKL),
		key(0x27, VKOem3, "ö", "Ö"),
		key(0x28, VKOem7, "ä", "Ä"),
		{ScanCode: 0x2B, VirtualKey: VKOem2, Base: "#", Shift: "'", Ctrl: "\x1c"},

		// Bottom row
		altGr(key(0x56, VKOem102, "<", ">"), "|"),
		letterKey(0x2C, VKY),
		letterKey(0x2D, VKX),
		letterKey(0x2E, VKC),
		letterKey(0x2F, VKV),
		letterKey(0x30, VKB),
		letterKey(0x31, VKN),
		altGr(letterKey(0x32, VKM), "µ"),
		key(0x33, VKOemComma, ",", ";"),
		key(0x34, VKOemPeriod, ".", ":"),
		key(0x35, VKOemMinus, "-", "_"),
	}
	return &Description{
		Name: "de",
		ID:   0x04070407,
		Keys: append(keys, commonKeys()...),
	}
}

// RegisterGermanLayout registers the German layout with the registry
func RegisterGermanLayout(r *Registry) {
	r.Register(GermanLayout())
}
