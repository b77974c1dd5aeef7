package keyevent

// Virtual key codes identify physical key positions independent of the active
// keyboard layout. The values are stable across platforms; the hook engine is
// responsible for translating platform scan codes into them.
const (
	VKEnter     = '\n'
	VKBackSpace = '\b'
	VKTab       = '\t'
	VKCancel    = 0x03

	VKShift   = 0x10
	VKControl = 0x11
	VKAlt     = 0x12

	// VKMeta is the Meta or Command key.
	VKMeta = 0x9D

	// VKWindows is the Microsoft Windows key.
	VKWindows = 0x020C

	// VKContextMenu is the Microsoft Windows context menu key.
	VKContextMenu = 0x020D

	VKPause    = 0x13
	VKCapsLock = 0x14
	VKEscape   = 0x1B
	VKSpace    = 0x20

	VKUp    = 0x26
	VKDown  = 0x28
	VKLeft  = 0x25
	VKRight = 0x27

	VKComma  = 0x2C
	VKMinus  = 0x2D
	VKPeriod = 0x2E
	VKSlash  = 0x2F

	// VK0 through VK9 are the same as ASCII '0' through '9' (0x30 - 0x39).
	VK0 = 0x30
	VK1 = 0x31
	VK2 = 0x32
	VK3 = 0x33
	VK4 = 0x34
	VK5 = 0x35
	VK6 = 0x36
	VK7 = 0x37
	VK8 = 0x38
	VK9 = 0x39

	VKEquals    = 0x3D
	VKSemicolon = 0x3B

	// VKA through VKZ are the same as ASCII 'A' through 'Z' (0x41 - 0x5A).
	VKA = 0x41
	VKB = 0x42
	VKC = 0x43
	VKD = 0x44
	VKE = 0x45
	VKF = 0x46
	VKG = 0x47
	VKH = 0x48
	VKI = 0x49
	VKJ = 0x4A
	VKK = 0x4B
	VKL = 0x4C
	VKM = 0x4D
	VKN = 0x4E
	VKO = 0x4F
	VKP = 0x50
	VKQ = 0x51
	VKR = 0x52
	VKS = 0x53
	VKT = 0x54
	VKU = 0x55
	VKV = 0x56
	VKW = 0x57
	VKX = 0x58
	VKY = 0x59
	VKZ = 0x5A

	VKOpenBracket  = 0x5B
	VKBackSlash    = 0x5C
	VKCloseBracket = 0x5D

	VKNumPad0 = 0x60
	VKNumPad1 = 0x61
	VKNumPad2 = 0x62
	VKNumPad3 = 0x63
	VKNumPad4 = 0x64
	VKNumPad5 = 0x65
	VKNumPad6 = 0x66
	VKNumPad7 = 0x67
	VKNumPad8 = 0x68
	VKNumPad9 = 0x69

	VKKpUp    = 0xE0
	VKKpDown  = 0xE1
	VKKpLeft  = 0xE2
	VKKpRight = 0xE3

	VKMultiply   = 0x6A
	VKAdd        = 0x6B
	VKSubtract   = 0x6D
	VKDecimal    = 0x6E
	VKDivide     = 0x6F
	VKDelete     = 0x7F
	VKClear      = 0x03
	VKNumLock    = 0x90
	VKScrollLock = 0x91

	// VKF1 through VKF24 are the function keys.
	VKF1  = 0x70
	VKF2  = 0x71
	VKF3  = 0x72
	VKF4  = 0x73
	VKF5  = 0x74
	VKF6  = 0x75
	VKF7  = 0x76
	VKF8  = 0x77
	VKF9  = 0x78
	VKF10 = 0x79
	VKF11 = 0x7A
	VKF12 = 0x7B

	VKF13 = 0xF000
	VKF14 = 0xF001
	VKF15 = 0xF002
	VKF16 = 0xF003
	VKF17 = 0xF004
	VKF18 = 0xF005
	VKF19 = 0xF006
	VKF20 = 0xF007
	VKF21 = 0xF008
	VKF22 = 0xF009
	VKF23 = 0xF00A
	VKF24 = 0xF00B

	VKPrintScreen = 0x9A
	VKInsert      = 0x9B
	VKHelp        = 0x9C

	VKPageUp   = 0x21
	VKPageDown = 0x22
	VKHome     = 0x24
	VKEnd      = 0x23

	VKQuote     = 0xDE
	VKBackQuote = 0xC0

	// Dead keys for European keyboards
	VKDeadGrave           = 0x80
	VKDeadAcute           = 0x81
	VKDeadCircumflex      = 0x82
	VKDeadTilde           = 0x83
	VKDeadMacron          = 0x84
	VKDeadBreve           = 0x85
	VKDeadAboveDot        = 0x86
	VKDeadDiaeresis       = 0x87
	VKDeadAboveRing       = 0x88
	VKDeadDoubleAcute     = 0x89
	VKDeadCaron           = 0x8A
	VKDeadCedilla         = 0x8B
	VKDeadOgonek          = 0x8C
	VKDeadIota            = 0x8D
	VKDeadVoicedSound     = 0x8E
	VKDeadSemivoicedSound = 0x8F

	// Punctuation without a dedicated standard position
	VKAmpersand  = 0x96
	VKAsterisk   = 0x97
	VKQuoteDbl   = 0x98
	VKLess       = 0x99
	VKGreater    = 0xA0
	VKBraceLeft  = 0xA1
	VKBraceRight = 0xA2

	// Extended punctuation
	VKAt                      = 0x0200
	VKColon                   = 0x0201
	VKCircumflex              = 0x0202
	VKDollar                  = 0x0203
	VKEuroSign                = 0x0204
	VKExclamationMark         = 0x0205
	VKInvertedExclamationMark = 0x0206
	VKLeftParenthesis         = 0x0207
	VKNumberSign              = 0x0208
	VKPlus                    = 0x0209
	VKRightParenthesis        = 0x020A
	VKUnderscore              = 0x020B

	// Input method keys for Asian keyboards
	VKFinal             = 0x0018
	VKConvert           = 0x001C
	VKNonConvert        = 0x001D
	VKAccept            = 0x001E
	VKModeChange        = 0x001F
	VKKana              = 0x0015
	VKKanji             = 0x0019
	VKAlphanumeric      = 0x00F0
	VKKatakana          = 0x00F1
	VKHiragana          = 0x00F2
	VKFullWidth         = 0x00F3
	VKHalfWidth         = 0x00F4
	VKRomanCharacters   = 0x00F5
	VKAllCandidates     = 0x0100
	VKPreviousCandidate = 0x0101
	VKCodeInput         = 0x0102
	VKJapaneseKatakana  = 0x0103
	VKJapaneseHiragana  = 0x0104
	VKJapaneseRoman     = 0x0105
	VKKanaLock          = 0x0106
	VKInputMethodOnOff  = 0x0107

	// Sun keyboard keys
	VKCut      = 0xFFD1
	VKCopy     = 0xFFCD
	VKPaste    = 0xFFCF
	VKUndo     = 0xFFCB
	VKAgain    = 0xFFC9
	VKFind     = 0xFFD0
	VKProps    = 0xFFCA
	VKStop     = 0xFFC8
	VKCompose  = 0xFF20
	VKAltGraph = 0xFF7E

	VKBegin = 0xFF58

	// VKUndefined indicates the key code is unknown.
	VKUndefined = 0x00
)

// CharUndefined indicates no valid Unicode character exists for an event.
const CharUndefined rune = 0xFFFF
