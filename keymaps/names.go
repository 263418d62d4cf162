package keymaps

// altNames are lowercase keysym-style names for keys that do not produce
// printable text. A code may carry several names.
var altNames = []pair[VirtualKey, string]{
	{VKAdd, "kp_add"},
	{VKApps, "menu"},
	{VKBack, "backspace"},
	{VKBrowserBack, "back"},
	{VKBrowserFavorites, "favorites"},
	{VKBrowserForward, "forward"},
	{VKBrowserHome, "homepage"},
	{VKBrowserHome, "www"},
	{VKBrowserRefresh, "refresh"},
	{VKBrowserSearch, "search"},
	{VKBrowserStop, "stop"},
	{VKCancel, "cancel"},
	{VKCapital, "caps_lock"},
	{VKClear, "clear"},
	{VKDecimal, "kp_decimal"},
	{VKDelete, "delete"},
	{VKDivide, "kp_divide"},
	{VKDown, "down"},
	{VKEnd, "end"},
	{VKEscape, "escape"},
	{VKExecute, "execute"},
	{VKF1, "f1"},
	{VKF2, "f2"},
	{VKF3, "f3"},
	{VKF4, "f4"},
	{VKF5, "f5"},
	{VKF6, "f6"},
	{VKF7, "f7"},
	{VKF8, "f8"},
	{VKF9, "f9"},
	{VKF10, "f10"},
	{VKF11, "f11"},
	{VKF12, "f12"},
	{VKF13, "f13"},
	{VKF14, "f14"},
	{VKF15, "f15"},
	{VKF16, "f16"},
	{VKF17, "f17"},
	{VKF18, "f18"},
	{VKF19, "f19"},
	{VKF20, "f20"},
	{VKF21, "f21"},
	{VKF22, "f22"},
	{VKF23, "f23"},
	{VKF24, "f24"},
	{VKHelp, "help"},
	{VKHome, "home"},
	{VKInsert, "insert"},
	{VKLaunchApp1, "mycomputer"},
	{VKLaunchApp2, "calculator"},
	{VKLaunchMail, "mail"},
	{VKLaunchMediaSelect, "audiomedia"},
	{VKLcontrol, "control_l"},
	{VKLeft, "left"},
	{VKLmenu, "alt_l"},
	{VKLshift, "shift_l"},
	{VKLwin, "super_l"},
	{VKMediaNextTrack, "audionext"},
	{VKMediaPlayPause, "audiopause"},
	{VKMediaPlayPause, "audioplay"},
	{VKMediaPrevTrack, "audioprev"},
	{VKMediaStop, "audiostop"},
	{VKModechange, "mode_switch"},
	{VKMultiply, "kp_multiply"},
	{VKNext, "page_down"},
	{VKNumlock, "num_lock"},
	{VKNumpad0, "kp_0"},
	{VKNumpad1, "kp_1"},
	{VKNumpad2, "kp_2"},
	{VKNumpad3, "kp_3"},
	{VKNumpad4, "kp_4"},
	{VKNumpad5, "kp_5"},
	{VKNumpad6, "kp_6"},
	{VKNumpad7, "kp_7"},
	{VKNumpad8, "kp_8"},
	{VKNumpad9, "kp_9"},
	{VKOemPlus, "kp_equal"},
	{VKPause, "pause"},
	{VKPrior, "page_up"},
	{VKRcontrol, "control_r"},
	{VKReturn, "return"},
	{VKRight, "right"},
	{VKRmenu, "alt_r"},
	{VKRshift, "shift_r"},
	{VKRwin, "super_r"},
	{VKScroll, "scroll_lock"},
	{VKSelect, "select"},
	{VKSleep, "standby"},
	{VKSnapshot, "print"},
	{VKSubtract, "kp_subtract"},
	{VKTab, "tab"},
	{VKUp, "up"},
	{VKVolumeDown, "audiolowervolume"},
	{VKVolumeMute, "audiomute"},
	{VKVolumeUp, "audioraisevolume"},
}

// charNames pairs keysym names with the character they produce. Every name
// resolves to its character; when two names share a character, CharName
// returns the one listed last, so the preferred keysym goes last.
var charNames = []pair[string, rune]{
	{"aacute", '\u00e1'},
	{"acircumflex", '\u00e2'},
	{"acute", '\u00b4'},
	{"adiaeresis", '\u00e4'},
	{"ae", '\u00e6'},
	{"agrave", '\u00e0'},
	{"ampersand", '&'},
	{"aring", '\u00e5'},
	{"asciicircum", '^'},
	{"asciitilde", '~'},
	{"asterisk", '*'},
	{"at", '@'},
	{"atilde", '\u00e3'},
	{"backslash", '\\'},
	{"bar", '|'},
	{"braceleft", '{'},
	{"braceright", '}'},
	{"bracketleft", '['},
	{"bracketright", ']'},
	{"brokenbar", '\u00a6'},
	{"ccedilla", '\u00e7'},
	{"cedilla", '\u00b8'},
	{"cent", '\u00a2'},
	{"clear", '\u000b'},
	{"colon", ':'},
	{"comma", ','},
	{"copyright", '\u00a9'},
	{"currency", '\u00a4'},
	{"degree", '\u00b0'},
	{"diaeresis", '\u00a8'},
	{"division", '\u00f7'},
	{"dollar", '$'},
	{"eacute", '\u00e9'},
	{"ecircumflex", '\u00ea'},
	{"ediaeresis", '\u00eb'},
	{"egrave", '\u00e8'},
	{"equal", '='},
	{"eth", '\u00f0'},
	{"exclam", '!'},
	{"exclamdown", '\u00a1'},
	{"greater", '>'},
	{"guillemotleft", '\u00ab'},
	{"guillemotright", '\u00bb'},
	{"hyphen", '\u00ad'},
	{"iacute", '\u00ed'},
	{"icircumflex", '\u00ee'},
	{"idiaeresis", '\u00ef'},
	{"igrave", '\u00ec'},
	{"less", '<'},
	{"macron", '\u00af'},
	{"masculine", '\u00ba'},
	{"minus", '-'},
	{"mu", '\u00b5'},
	{"multiply", '\u00d7'},
	{"nobreakspace", '\u00a0'},
	{"notsign", '\u00ac'},
	{"ntilde", '\u00f1'},
	{"numbersign", '#'},
	{"oacute", '\u00f3'},
	{"ocircumflex", '\u00f4'},
	{"odiaeresis", '\u00f6'},
	{"ograve", '\u00f2'},
	{"onehalf", '\u00bd'},
	{"onequarter", '\u00bc'},
	{"onesuperior", '\u00b9'},
	{"ooblique", '\u00d8'},
	{"ordfeminine", '\u00aa'},
	{"oslash", '\u00f8'},
	{"otilde", '\u00f5'},
	{"paragraph", '\u00b6'},
	{"parenleft", '('},
	{"parenright", ')'},
	{"percent", '%'},
	{"period", '.'},
	{"periodcentered", '\u00b7'},
	{"plus", '+'},
	{"plusminus", '\u00b1'},
	{"question", '?'},
	{"questiondown", '\u00bf'},
	{"quotedbl", '"'},
	{"quoteleft", '`'},
	{"grave", '`'},
	{"quoteright", '\''},
	{"apostrophe", '\''},
	{"registered", '\u00ae'},
	{"return", '\r'},
	{"section", '\u00a7'},
	{"semicolon", ';'},
	{"slash", '/'},
	{"space", ' '},
	{"ssharp", '\u00df'},
	{"sterling", '\u00a3'},
	{"tab", '\t'},
	{"thorn", '\u00fe'},
	{"threequarters", '\u00be'},
	{"threesuperior", '\u00b3'},
	{"twosuperior", '\u00b2'},
	{"uacute", '\u00fa'},
	{"ucircumflex", '\u00fb'},
	{"udiaeresis", '\u00fc'},
	{"ugrave", '\u00f9'},
	{"underscore", '_'},
	{"yacute", '\u00fd'},
	{"ydiaeresis", '\u00ff'},
	{"yen", '\u00a5'},
}
