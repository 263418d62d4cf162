package keymaps

// key builds a printable key with base and shifted output.
func key(sc ScanCode, vk VirtualKey, base, shift string) KeyDef {
	return KeyDef{ScanCode: sc, VirtualKey: vk, Base: base, Shift: shift}
}

// letterKey builds a letter key; Ctrl yields the matching C0 control code.
func letterKey(sc ScanCode, vk VirtualKey) KeyDef {
	lower := string(rune(vk) + ('a' - 'A'))
	return KeyDef{
		ScanCode:   sc,
		VirtualKey: vk,
		Base:       lower,
		Shift:      string(rune(vk)),
		Ctrl:       string(rune(vk) - 0x40),
		ShiftCtrl:  string(rune(vk) - 0x40),
	}
}

// commonKeys are the scan codes every built-in PC/AT layout shares: editing
// keys, modifiers, function keys and the numeric keypad (NumLock off).
func commonKeys() []KeyDef {
	return []KeyDef{
		{ScanCode: 0x01, VirtualKey: VKEscape, Base: "\x1b", Shift: "\x1b", Ctrl: "\x1b"},
		{ScanCode: 0x0E, VirtualKey: VKBack, Base: "\b", Shift: "\b", Ctrl: "\x7f"},
		{ScanCode: 0x0F, VirtualKey: VKTab, Base: "\t", Shift: "\t"},
		{ScanCode: 0x1C, VirtualKey: VKReturn, Base: "\r", Shift: "\r", Ctrl: "\n"},
		{ScanCode: 0x1D, VirtualKey: VKLcontrol},
		{ScanCode: 0x2A, VirtualKey: VKLshift},
		{ScanCode: 0x36, VirtualKey: VKRshift},
		{ScanCode: 0x37, VirtualKey: VKMultiply, Base: "*", Shift: "*"},
		{ScanCode: 0x38, VirtualKey: VKLmenu},
		{ScanCode: 0x39, VirtualKey: VKSpace, Base: " ", Shift: " ", Ctrl: " "},
		{ScanCode: 0x3A, VirtualKey: VKCapital},
		{ScanCode: 0x3B, VirtualKey: VKF1},
		{ScanCode: 0x3C, VirtualKey: VKF2},
		{ScanCode: 0x3D, VirtualKey: VKF3},
		{ScanCode: 0x3E, VirtualKey: VKF4},
		{ScanCode: 0x3F, VirtualKey: VKF5},
		{ScanCode: 0x40, VirtualKey: VKF6},
		{ScanCode: 0x41, VirtualKey: VKF7},
		{ScanCode: 0x42, VirtualKey: VKF8},
		{ScanCode: 0x43, VirtualKey: VKF9},
		{ScanCode: 0x44, VirtualKey: VKF10},
		{ScanCode: 0x45, VirtualKey: VKNumlock},
		{ScanCode: 0x46, VirtualKey: VKScroll},
		{ScanCode: 0x47, VirtualKey: VKHome},
		{ScanCode: 0x48, VirtualKey: VKUp},
		{ScanCode: 0x49, VirtualKey: VKPrior},
		{ScanCode: 0x4A, VirtualKey: VKSubtract, Base: "-", Shift: "-"},
		{ScanCode: 0x4B, VirtualKey: VKLeft},
		{ScanCode: 0x4C, VirtualKey: VKClear},
		{ScanCode: 0x4D, VirtualKey: VKRight},
		{ScanCode: 0x4E, VirtualKey: VKAdd, Base: "+", Shift: "+"},
		{ScanCode: 0x4F, VirtualKey: VKEnd},
		{ScanCode: 0x50, VirtualKey: VKDown},
		{ScanCode: 0x51, VirtualKey: VKNext},
		{ScanCode: 0x52, VirtualKey: VKInsert},
		{ScanCode: 0x53, VirtualKey: VKDelete},
		{ScanCode: 0x57, VirtualKey: VKF11},
		{ScanCode: 0x58, VirtualKey: VKF12},
	}
}

// USLayout returns the US QWERTY layout (KLID 00000409).
func USLayout() *Description {
	keys := []KeyDef{
		// Number row
		key(0x02, VKDigit1, "1", "!"),
		key(0x03, VKDigit2, "2", "@"),
		key(0x04, VKDigit3, "3", "#"),
		key(0x05, VKDigit4, "4", "$"),
		key(0x06, VKDigit5, "5", "%"),
		{ScanCode: 0x07, VirtualKey: VKDigit6, Base: "6", Shift: "^", ShiftCtrl: "\x1e"},
		key(0x08, VKDigit7, "7", "&"),
		key(0x09, VKDigit8, "8", "*"),
		key(0x0A, VKDigit9, "9", "("),
		key(0x0B, VKDigit0, "0", ")"),
		{ScanCode: 0x0C, VirtualKey: VKOemMinus, Base: "-", Shift: "_", ShiftCtrl: "\x1f"},
		key(0x0D, VKOemPlus, "=", "+"),

		// Top row
		letterKey(0x10, VKQ),
		letterKey(0x11, VKW),
		letterKey(0x12, VKE),
		letterKey(0x13, VKR),
		letterKey(0x14, VKT),
		letterKey(0x15, VKY),
		letterKey(0x16, VKU),
		letterKey(0x17, VKI),
		letterKey(0x18, VKO),
		letterKey(0x19, VKP),
		{ScanCode: 0x1A, VirtualKey: VKOem4, Base: "[", Shift: "{", Ctrl: "\x1b"},
		{ScanCode: 0x1B, VirtualKey: VKOem6, Base: "]", Shift: "}", Ctrl: "\x1d"},

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
		key(0x27, VKOem1, ";", ":"),
		key(0x28, VKOem7, "'", "\""),
		key(0x29, VKOem3, "`", "~"),
		{ScanCode: 0x2B, VirtualKey: VKOem5, Base: "\\", Shift: "|", Ctrl: "\x1c"},

		// Bottom row
		letterKey(0x2C, VKZ),
		letterKey(0x2D, VKX),
		letterKey(0x2E, VKC),
		letterKey(0x2F, VKV),
		letterKey(0x30, VKB),
		letterKey(0x31, VKN),
		letterKey(0x32, VKM),
		key(0x33, VKOemComma, ",", "<"),
		key(0x34, VKOemPeriod, ".", ">"),
		key(0x35, VKOem2, "/", "?"),
		{ScanCode: 0x56, VirtualKey: VKOem102, Base: "\\", Shift: "|", Ctrl: "\x1c"},
	}
	return &Description{
		Name: "us",
		ID:   0x04090409,
		Keys: append(keys, commonKeys()...),
	}
}

// RegisterUSLayout registers the US layout with the registry
func RegisterUSLayout(r *Registry) {
	r.Register(USLayout())
}
