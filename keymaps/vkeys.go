package keymaps

// Virtual-key codes, as defined by winuser.h.
const (
	VKLbutton           VirtualKey = 0x01
	VKRbutton           VirtualKey = 0x02
	VKCancel            VirtualKey = 0x03
	VKMbutton           VirtualKey = 0x04
	VKXbutton1          VirtualKey = 0x05
	VKXbutton2          VirtualKey = 0x06
	VKBack              VirtualKey = 0x08
	VKTab               VirtualKey = 0x09
	VKClear             VirtualKey = 0x0C
	VKReturn            VirtualKey = 0x0D
	VKShift             VirtualKey = 0x10
	VKControl           VirtualKey = 0x11
	VKMenu              VirtualKey = 0x12
	VKPause             VirtualKey = 0x13
	VKCapital           VirtualKey = 0x14
	VKKana              VirtualKey = 0x15
	VKJunja             VirtualKey = 0x17
	VKFinal             VirtualKey = 0x18
	VKHanja             VirtualKey = 0x19
	VKEscape            VirtualKey = 0x1B
	VKConvert           VirtualKey = 0x1C
	VKNonconvert        VirtualKey = 0x1D
	VKAccept            VirtualKey = 0x1E
	VKModechange        VirtualKey = 0x1F
	VKSpace             VirtualKey = 0x20
	VKPrior             VirtualKey = 0x21
	VKNext              VirtualKey = 0x22
	VKEnd               VirtualKey = 0x23
	VKHome              VirtualKey = 0x24
	VKLeft              VirtualKey = 0x25
	VKUp                VirtualKey = 0x26
	VKRight             VirtualKey = 0x27
	VKDown              VirtualKey = 0x28
	VKSelect            VirtualKey = 0x29
	VKPrint             VirtualKey = 0x2A
	VKExecute           VirtualKey = 0x2B
	VKSnapshot          VirtualKey = 0x2C
	VKInsert            VirtualKey = 0x2D
	VKDelete            VirtualKey = 0x2E
	VKHelp              VirtualKey = 0x2F
	VKDigit0            VirtualKey = 0x30
	VKDigit1            VirtualKey = 0x31
	VKDigit2            VirtualKey = 0x32
	VKDigit3            VirtualKey = 0x33
	VKDigit4            VirtualKey = 0x34
	VKDigit5            VirtualKey = 0x35
	VKDigit6            VirtualKey = 0x36
	VKDigit7            VirtualKey = 0x37
	VKDigit8            VirtualKey = 0x38
	VKDigit9            VirtualKey = 0x39
	VKA                 VirtualKey = 0x41
	VKB                 VirtualKey = 0x42
	VKC                 VirtualKey = 0x43
	VKD                 VirtualKey = 0x44
	VKE                 VirtualKey = 0x45
	VKF                 VirtualKey = 0x46
	VKG                 VirtualKey = 0x47
	VKH                 VirtualKey = 0x48
	VKI                 VirtualKey = 0x49
	VKJ                 VirtualKey = 0x4A
	VKK                 VirtualKey = 0x4B
	VKL                 VirtualKey = 0x4C
	VKM                 VirtualKey = 0x4D
	VKN                 VirtualKey = 0x4E
	VKO                 VirtualKey = 0x4F
	VKP                 VirtualKey = 0x50
	VKQ                 VirtualKey = 0x51
	VKR                 VirtualKey = 0x52
	VKS                 VirtualKey = 0x53
	VKT                 VirtualKey = 0x54
	VKU                 VirtualKey = 0x55
	VKV                 VirtualKey = 0x56
	VKW                 VirtualKey = 0x57
	VKX                 VirtualKey = 0x58
	VKY                 VirtualKey = 0x59
	VKZ                 VirtualKey = 0x5A
	VKLwin              VirtualKey = 0x5B
	VKRwin              VirtualKey = 0x5C
	VKApps              VirtualKey = 0x5D
	VKSleep             VirtualKey = 0x5F
	VKNumpad0           VirtualKey = 0x60
	VKNumpad1           VirtualKey = 0x61
	VKNumpad2           VirtualKey = 0x62
	VKNumpad3           VirtualKey = 0x63
	VKNumpad4           VirtualKey = 0x64
	VKNumpad5           VirtualKey = 0x65
	VKNumpad6           VirtualKey = 0x66
	VKNumpad7           VirtualKey = 0x67
	VKNumpad8           VirtualKey = 0x68
	VKNumpad9           VirtualKey = 0x69
	VKMultiply          VirtualKey = 0x6A
	VKAdd               VirtualKey = 0x6B
	VKSeparator         VirtualKey = 0x6C
	VKSubtract          VirtualKey = 0x6D
	VKDecimal           VirtualKey = 0x6E
	VKDivide            VirtualKey = 0x6F
	VKF1                VirtualKey = 0x70
	VKF2                VirtualKey = 0x71
	VKF3                VirtualKey = 0x72
	VKF4                VirtualKey = 0x73
	VKF5                VirtualKey = 0x74
	VKF6                VirtualKey = 0x75
	VKF7                VirtualKey = 0x76
	VKF8                VirtualKey = 0x77
	VKF9                VirtualKey = 0x78
	VKF10               VirtualKey = 0x79
	VKF11               VirtualKey = 0x7A
	VKF12               VirtualKey = 0x7B
	VKF13               VirtualKey = 0x7C
	VKF14               VirtualKey = 0x7D
	VKF15               VirtualKey = 0x7E
	VKF16               VirtualKey = 0x7F
	VKF17               VirtualKey = 0x80
	VKF18               VirtualKey = 0x81
	VKF19               VirtualKey = 0x82
	VKF20               VirtualKey = 0x83
	VKF21               VirtualKey = 0x84
	VKF22               VirtualKey = 0x85
	VKF23               VirtualKey = 0x86
	VKF24               VirtualKey = 0x87
	VKNumlock           VirtualKey = 0x90
	VKScroll            VirtualKey = 0x91
	VKOemNecEqual       VirtualKey = 0x92
	VKOemFjJisho        VirtualKey = 0x92
	VKOemFjMasshou      VirtualKey = 0x93
	VKOemFjTouroku      VirtualKey = 0x94
	VKOemFjLoya         VirtualKey = 0x95
	VKOemFjRoya         VirtualKey = 0x96
	VKLshift            VirtualKey = 0xA0
	VKRshift            VirtualKey = 0xA1
	VKLcontrol          VirtualKey = 0xA2
	VKRcontrol          VirtualKey = 0xA3
	VKLmenu             VirtualKey = 0xA4
	VKRmenu             VirtualKey = 0xA5
	VKBrowserBack       VirtualKey = 0xA6
	VKBrowserForward    VirtualKey = 0xA7
	VKBrowserRefresh    VirtualKey = 0xA8
	VKBrowserStop       VirtualKey = 0xA9
	VKBrowserSearch     VirtualKey = 0xAA
	VKBrowserFavorites  VirtualKey = 0xAB
	VKBrowserHome       VirtualKey = 0xAC
	VKVolumeMute        VirtualKey = 0xAD
	VKVolumeDown        VirtualKey = 0xAE
	VKVolumeUp          VirtualKey = 0xAF
	VKMediaNextTrack    VirtualKey = 0xB0
	VKMediaPrevTrack    VirtualKey = 0xB1
	VKMediaStop         VirtualKey = 0xB2
	VKMediaPlayPause    VirtualKey = 0xB3
	VKLaunchMail        VirtualKey = 0xB4
	VKLaunchMediaSelect VirtualKey = 0xB5
	VKLaunchApp1        VirtualKey = 0xB6
	VKLaunchApp2        VirtualKey = 0xB7
	VKOem1              VirtualKey = 0xBA
	VKOemPlus           VirtualKey = 0xBB
	VKOemComma          VirtualKey = 0xBC
	VKOemMinus          VirtualKey = 0xBD
	VKOemPeriod         VirtualKey = 0xBE
	VKOem2              VirtualKey = 0xBF
	VKOem3              VirtualKey = 0xC0
	VKOem4              VirtualKey = 0xDB
	VKOem5              VirtualKey = 0xDC
	VKOem6              VirtualKey = 0xDD
	VKOem7              VirtualKey = 0xDE
	VKOem8              VirtualKey = 0xDF
	VKOemAx             VirtualKey = 0xE1
	VKOem102            VirtualKey = 0xE2
	VKIcoHelp           VirtualKey = 0xE3
	VKIco00             VirtualKey = 0xE4
	VKProcesskey        VirtualKey = 0xE5
	VKIcoClear          VirtualKey = 0xE6
	VKPacket            VirtualKey = 0xE7
	VKOemReset          VirtualKey = 0xE9
	VKOemJump           VirtualKey = 0xEA
	VKOemPa1            VirtualKey = 0xEB
	VKOemPa2            VirtualKey = 0xEC
	VKOemPa3            VirtualKey = 0xED
	VKOemWsctrl         VirtualKey = 0xEE
	VKOemCusel          VirtualKey = 0xEF
	VKOemAttn           VirtualKey = 0xF0
	VKOemFinish         VirtualKey = 0xF1
	VKOemCopy           VirtualKey = 0xF2
	VKOemAuto           VirtualKey = 0xF3
	VKOemEnlw           VirtualKey = 0xF4
	VKOemBacktab        VirtualKey = 0xF5
	VKAttn              VirtualKey = 0xF6
	VKCrsel             VirtualKey = 0xF7
	VKExsel             VirtualKey = 0xF8
	VKEreof             VirtualKey = 0xF9
	VKPlay              VirtualKey = 0xFA
	VKZoom              VirtualKey = 0xFB
	VKNoname            VirtualKey = 0xFC
	VKPa1               VirtualKey = 0xFD
	VKOemClear          VirtualKey = 0xFE
)

// virtualKeyNames pairs the winuser.h name (without the VK_ prefix) with its
// code. Later pairs replace earlier ones sharing a code.
var virtualKeyNames = biMapOf([]pair[string, VirtualKey]{
	{"LBUTTON", VKLbutton},
	{"RBUTTON", VKRbutton},
	{"CANCEL", VKCancel},
	{"MBUTTON", VKMbutton},
	{"XBUTTON1", VKXbutton1},
	{"XBUTTON2", VKXbutton2},
	{"BACK", VKBack},
	{"TAB", VKTab},
	{"CLEAR", VKClear},
	{"RETURN", VKReturn},
	{"SHIFT", VKShift},
	{"CONTROL", VKControl},
	{"MENU", VKMenu},
	{"PAUSE", VKPause},
	{"CAPITAL", VKCapital},
	{"KANA", VKKana},
	{"JUNJA", VKJunja},
	{"FINAL", VKFinal},
	{"HANJA", VKHanja},
	{"ESCAPE", VKEscape},
	{"CONVERT", VKConvert},
	{"NONCONVERT", VKNonconvert},
	{"ACCEPT", VKAccept},
	{"MODECHANGE", VKModechange},
	{"SPACE", VKSpace},
	{"PRIOR", VKPrior},
	{"NEXT", VKNext},
	{"END", VKEnd},
	{"HOME", VKHome},
	{"LEFT", VKLeft},
	{"UP", VKUp},
	{"RIGHT", VKRight},
	{"DOWN", VKDown},
	{"SELECT", VKSelect},
	{"PRINT", VKPrint},
	{"EXECUTE", VKExecute},
	{"SNAPSHOT", VKSnapshot},
	{"INSERT", VKInsert},
	{"DELETE", VKDelete},
	{"HELP", VKHelp},
	{"DIGIT0", VKDigit0},
	{"DIGIT1", VKDigit1},
	{"DIGIT2", VKDigit2},
	{"DIGIT3", VKDigit3},
	{"DIGIT4", VKDigit4},
	{"DIGIT5", VKDigit5},
	{"DIGIT6", VKDigit6},
	{"DIGIT7", VKDigit7},
	{"DIGIT8", VKDigit8},
	{"DIGIT9", VKDigit9},
	{"A", VKA},
	{"B", VKB},
	{"C", VKC},
	{"D", VKD},
	{"E", VKE},
	{"F", VKF},
	{"G", VKG},
	{"H", VKH},
	{"I", VKI},
	{"J", VKJ},
	{"K", VKK},
	{"L", VKL},
	{"M", VKM},
	{"N", VKN},
	{"O", VKO},
	{"P", VKP},
	{"Q", VKQ},
	{"R", VKR},
	{"S", VKS},
	{"T", VKT},
	{"U", VKU},
	{"V", VKV},
	{"W", VKW},
	{"X", VKX},
	{"Y", VKY},
	{"Z", VKZ},
	{"LWIN", VKLwin},
	{"RWIN", VKRwin},
	{"APPS", VKApps},
	{"SLEEP", VKSleep},
	{"NUMPAD0", VKNumpad0},
	{"NUMPAD1", VKNumpad1},
	{"NUMPAD2", VKNumpad2},
	{"NUMPAD3", VKNumpad3},
	{"NUMPAD4", VKNumpad4},
	{"NUMPAD5", VKNumpad5},
	{"NUMPAD6", VKNumpad6},
	{"NUMPAD7", VKNumpad7},
	{"NUMPAD8", VKNumpad8},
	{"NUMPAD9", VKNumpad9},
	{"MULTIPLY", VKMultiply},
	{"ADD", VKAdd},
	{"SEPARATOR", VKSeparator},
	{"SUBTRACT", VKSubtract},
	{"DECIMAL", VKDecimal},
	{"DIVIDE", VKDivide},
	{"F1", VKF1},
	{"F2", VKF2},
	{"F3", VKF3},
	{"F4", VKF4},
	{"F5", VKF5},
	{"F6", VKF6},
	{"F7", VKF7},
	{"F8", VKF8},
	{"F9", VKF9},
	{"F10", VKF10},
	{"F11", VKF11},
	{"F12", VKF12},
	{"F13", VKF13},
	{"F14", VKF14},
	{"F15", VKF15},
	{"F16", VKF16},
	{"F17", VKF17},
	{"F18", VKF18},
	{"F19", VKF19},
	{"F20", VKF20},
	{"F21", VKF21},
	{"F22", VKF22},
	{"F23", VKF23},
	{"F24", VKF24},
	{"NUMLOCK", VKNumlock},
	{"SCROLL", VKScroll},
	{"OEM_NEC_EQUAL", VKOemNecEqual},
	{"OEM_FJ_JISHO", VKOemFjJisho},
	{"OEM_FJ_MASSHOU", VKOemFjMasshou},
	{"OEM_FJ_TOUROKU", VKOemFjTouroku},
	{"OEM_FJ_LOYA", VKOemFjLoya},
	{"OEM_FJ_ROYA", VKOemFjRoya},
	{"LSHIFT", VKLshift},
	{"RSHIFT", VKRshift},
	{"LCONTROL", VKLcontrol},
	{"RCONTROL", VKRcontrol},
	{"LMENU", VKLmenu},
	{"RMENU", VKRmenu},
	{"BROWSER_BACK", VKBrowserBack},
	{"BROWSER_FORWARD", VKBrowserForward},
	{"BROWSER_REFRESH", VKBrowserRefresh},
	{"BROWSER_STOP", VKBrowserStop},
	{"BROWSER_SEARCH", VKBrowserSearch},
	{"BROWSER_FAVORITES", VKBrowserFavorites},
	{"BROWSER_HOME", VKBrowserHome},
	{"VOLUME_MUTE", VKVolumeMute},
	{"VOLUME_DOWN", VKVolumeDown},
	{"VOLUME_UP", VKVolumeUp},
	{"MEDIA_NEXT_TRACK", VKMediaNextTrack},
	{"MEDIA_PREV_TRACK", VKMediaPrevTrack},
	{"MEDIA_STOP", VKMediaStop},
	{"MEDIA_PLAY_PAUSE", VKMediaPlayPause},
	{"LAUNCH_MAIL", VKLaunchMail},
	{"LAUNCH_MEDIA_SELECT", VKLaunchMediaSelect},
	{"LAUNCH_APP1", VKLaunchApp1},
	{"LAUNCH_APP2", VKLaunchApp2},
	{"OEM_1", VKOem1},
	{"OEM_PLUS", VKOemPlus},
	{"OEM_COMMA", VKOemComma},
	{"OEM_MINUS", VKOemMinus},
	{"OEM_PERIOD", VKOemPeriod},
	{"OEM_2", VKOem2},
	{"OEM_3", VKOem3},
	{"OEM_4", VKOem4},
	{"OEM_5", VKOem5},
	{"OEM_6", VKOem6},
	{"OEM_7", VKOem7},
	{"OEM_8", VKOem8},
	{"OEM_AX", VKOemAx},
	{"OEM_102", VKOem102},
	{"ICO_HELP", VKIcoHelp},
	{"ICO_00", VKIco00},
	{"PROCESSKEY", VKProcesskey},
	{"ICO_CLEAR", VKIcoClear},
	{"PACKET", VKPacket},
	{"OEM_RESET", VKOemReset},
	{"OEM_JUMP", VKOemJump},
	{"OEM_PA1", VKOemPa1},
	{"OEM_PA2", VKOemPa2},
	{"OEM_PA3", VKOemPa3},
	{"OEM_WSCTRL", VKOemWsctrl},
	{"OEM_CUSEL", VKOemCusel},
	{"OEM_ATTN", VKOemAttn},
	{"OEM_FINISH", VKOemFinish},
	{"OEM_COPY", VKOemCopy},
	{"OEM_AUTO", VKOemAuto},
	{"OEM_ENLW", VKOemEnlw},
	{"OEM_BACKTAB", VKOemBacktab},
	{"ATTN", VKAttn},
	{"CRSEL", VKCrsel},
	{"EXSEL", VKExsel},
	{"EREOF", VKEreof},
	{"PLAY", VKPlay},
	{"ZOOM", VKZoom},
	{"NONAME", VKNoname},
	{"PA1", VKPa1},
	{"OEM_CLEAR", VKOemClear},
})
