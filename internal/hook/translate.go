package hook

import "github.com/dooshek/keyhook/pkg/keyevent"

// vkMapping pairs the virtual key code and physical location a Linux evdev
// code translates to.
type vkMapping struct {
	code     int
	location keyevent.KeyLocation
}

// evdevToVK maps Linux evdev key codes to virtual key codes. Codes missing
// from the table pass through as VKUndefined with an unknown location; the
// resolver stays total for them.
var evdevToVK = map[uint16]vkMapping{
	1:  {keyevent.VKEscape, keyevent.LocationStandard},
	59: {keyevent.VKF1, keyevent.LocationStandard},
	60: {keyevent.VKF2, keyevent.LocationStandard},
	61: {keyevent.VKF3, keyevent.LocationStandard},
	62: {keyevent.VKF4, keyevent.LocationStandard},
	63: {keyevent.VKF5, keyevent.LocationStandard},
	64: {keyevent.VKF6, keyevent.LocationStandard},
	65: {keyevent.VKF7, keyevent.LocationStandard},
	66: {keyevent.VKF8, keyevent.LocationStandard},
	67: {keyevent.VKF9, keyevent.LocationStandard},
	68: {keyevent.VKF10, keyevent.LocationStandard},
	87: {keyevent.VKF11, keyevent.LocationStandard},
	88: {keyevent.VKF12, keyevent.LocationStandard},

	// 1-0 on the main row
	2:  {keyevent.VK1, keyevent.LocationStandard},
	3:  {keyevent.VK2, keyevent.LocationStandard},
	4:  {keyevent.VK3, keyevent.LocationStandard},
	5:  {keyevent.VK4, keyevent.LocationStandard},
	6:  {keyevent.VK5, keyevent.LocationStandard},
	7:  {keyevent.VK6, keyevent.LocationStandard},
	8:  {keyevent.VK7, keyevent.LocationStandard},
	9:  {keyevent.VK8, keyevent.LocationStandard},
	10: {keyevent.VK9, keyevent.LocationStandard},
	11: {keyevent.VK0, keyevent.LocationStandard},
	12: {keyevent.VKMinus, keyevent.LocationStandard},
	13: {keyevent.VKEquals, keyevent.LocationStandard},
	14: {keyevent.VKBackSpace, keyevent.LocationStandard},

	// qwerty row
	15: {keyevent.VKTab, keyevent.LocationStandard},
	16: {keyevent.VKQ, keyevent.LocationStandard},
	17: {keyevent.VKW, keyevent.LocationStandard},
	18: {keyevent.VKE, keyevent.LocationStandard},
	19: {keyevent.VKR, keyevent.LocationStandard},
	20: {keyevent.VKT, keyevent.LocationStandard},
	21: {keyevent.VKY, keyevent.LocationStandard},
	22: {keyevent.VKU, keyevent.LocationStandard},
	23: {keyevent.VKI, keyevent.LocationStandard},
	24: {keyevent.VKO, keyevent.LocationStandard},
	25: {keyevent.VKP, keyevent.LocationStandard},
	26: {keyevent.VKOpenBracket, keyevent.LocationStandard},
	27: {keyevent.VKCloseBracket, keyevent.LocationStandard},
	28: {keyevent.VKEnter, keyevent.LocationStandard},

	// home row
	30: {keyevent.VKA, keyevent.LocationStandard},
	31: {keyevent.VKS, keyevent.LocationStandard},
	32: {keyevent.VKD, keyevent.LocationStandard},
	33: {keyevent.VKF, keyevent.LocationStandard},
	34: {keyevent.VKG, keyevent.LocationStandard},
	35: {keyevent.VKH, keyevent.LocationStandard},
	36: {keyevent.VKJ, keyevent.LocationStandard},
	37: {keyevent.VKK, keyevent.LocationStandard},
	38: {keyevent.VKL, keyevent.LocationStandard},
	39: {keyevent.VKSemicolon, keyevent.LocationStandard},
	40: {keyevent.VKQuote, keyevent.LocationStandard},
	41: {keyevent.VKBackQuote, keyevent.LocationStandard},

	// bottom row
	43: {keyevent.VKBackSlash, keyevent.LocationStandard},
	44: {keyevent.VKZ, keyevent.LocationStandard},
	45: {keyevent.VKX, keyevent.LocationStandard},
	46: {keyevent.VKC, keyevent.LocationStandard},
	47: {keyevent.VKV, keyevent.LocationStandard},
	48: {keyevent.VKB, keyevent.LocationStandard},
	49: {keyevent.VKN, keyevent.LocationStandard},
	50: {keyevent.VKM, keyevent.LocationStandard},
	51: {keyevent.VKComma, keyevent.LocationStandard},
	52: {keyevent.VKPeriod, keyevent.LocationStandard},
	53: {keyevent.VKSlash, keyevent.LocationStandard},
	57: {keyevent.VKSpace, keyevent.LocationStandard},

	// modifiers
	29:  {keyevent.VKControl, keyevent.LocationLeft},
	97:  {keyevent.VKControl, keyevent.LocationRight},
	42:  {keyevent.VKShift, keyevent.LocationLeft},
	54:  {keyevent.VKShift, keyevent.LocationRight},
	56:  {keyevent.VKAlt, keyevent.LocationLeft},
	100: {keyevent.VKAlt, keyevent.LocationRight},
	125: {keyevent.VKMeta, keyevent.LocationLeft},
	126: {keyevent.VKMeta, keyevent.LocationRight},
	127: {keyevent.VKContextMenu, keyevent.LocationStandard},
	58:  {keyevent.VKCapsLock, keyevent.LocationStandard},

	// numeric pad
	69: {keyevent.VKNumLock, keyevent.LocationNumPad},
	55: {keyevent.VKMultiply, keyevent.LocationNumPad},
	74: {keyevent.VKSubtract, keyevent.LocationNumPad},
	78: {keyevent.VKAdd, keyevent.LocationNumPad},
	96: {keyevent.VKEnter, keyevent.LocationNumPad},
	98: {keyevent.VKDivide, keyevent.LocationNumPad},
	83: {keyevent.VKDecimal, keyevent.LocationNumPad},
	71: {keyevent.VKNumPad7, keyevent.LocationNumPad},
	72: {keyevent.VKNumPad8, keyevent.LocationNumPad},
	73: {keyevent.VKNumPad9, keyevent.LocationNumPad},
	75: {keyevent.VKNumPad4, keyevent.LocationNumPad},
	76: {keyevent.VKNumPad5, keyevent.LocationNumPad},
	77: {keyevent.VKNumPad6, keyevent.LocationNumPad},
	79: {keyevent.VKNumPad1, keyevent.LocationNumPad},
	80: {keyevent.VKNumPad2, keyevent.LocationNumPad},
	81: {keyevent.VKNumPad3, keyevent.LocationNumPad},
	82: {keyevent.VKNumPad0, keyevent.LocationNumPad},

	// navigation block
	99:  {keyevent.VKPrintScreen, keyevent.LocationStandard},
	70:  {keyevent.VKScrollLock, keyevent.LocationStandard},
	119: {keyevent.VKPause, keyevent.LocationStandard},
	110: {keyevent.VKInsert, keyevent.LocationStandard},
	111: {keyevent.VKDelete, keyevent.LocationStandard},
	102: {keyevent.VKHome, keyevent.LocationStandard},
	107: {keyevent.VKEnd, keyevent.LocationStandard},
	104: {keyevent.VKPageUp, keyevent.LocationStandard},
	109: {keyevent.VKPageDown, keyevent.LocationStandard},
	103: {keyevent.VKUp, keyevent.LocationStandard},
	108: {keyevent.VKDown, keyevent.LocationStandard},
	105: {keyevent.VKLeft, keyevent.LocationStandard},
	106: {keyevent.VKRight, keyevent.LocationStandard},

	// input method keys on Japanese keyboards
	90: {keyevent.VKKatakana, keyevent.LocationStandard},
	91: {keyevent.VKHiragana, keyevent.LocationStandard},
	92: {keyevent.VKConvert, keyevent.LocationStandard},
	93: {keyevent.VKKana, keyevent.LocationStandard},
	94: {keyevent.VKNonConvert, keyevent.LocationStandard},

	// legacy action keys (evdev carries the Sun keyboard set)
	128: {keyevent.VKStop, keyevent.LocationStandard},
	129: {keyevent.VKAgain, keyevent.LocationStandard},
	130: {keyevent.VKProps, keyevent.LocationStandard},
	131: {keyevent.VKUndo, keyevent.LocationStandard},
	133: {keyevent.VKCopy, keyevent.LocationStandard},
	135: {keyevent.VKPaste, keyevent.LocationStandard},
	136: {keyevent.VKFind, keyevent.LocationStandard},
	137: {keyevent.VKCut, keyevent.LocationStandard},
	138: {keyevent.VKHelp, keyevent.LocationStandard},

	// F13-F24
	183: {keyevent.VKF13, keyevent.LocationStandard},
	184: {keyevent.VKF14, keyevent.LocationStandard},
	185: {keyevent.VKF15, keyevent.LocationStandard},
	186: {keyevent.VKF16, keyevent.LocationStandard},
	187: {keyevent.VKF17, keyevent.LocationStandard},
	188: {keyevent.VKF18, keyevent.LocationStandard},
	189: {keyevent.VKF19, keyevent.LocationStandard},
	190: {keyevent.VKF20, keyevent.LocationStandard},
	191: {keyevent.VKF21, keyevent.LocationStandard},
	192: {keyevent.VKF22, keyevent.LocationStandard},
	193: {keyevent.VKF23, keyevent.LocationStandard},
	194: {keyevent.VKF24, keyevent.LocationStandard},
}

// translate resolves an evdev key code to its virtual key code and location.
func translate(code uint16) vkMapping {
	if m, ok := evdevToVK[code]; ok {
		return m
	}
	return vkMapping{keyevent.VKUndefined, keyevent.LocationUnknown}
}

// modifierMask maps evdev modifier codes to the mask bit they toggle.
var modifierMask = map[uint16]uint32{
	42:  keyevent.ShiftMask, // left shift
	54:  keyevent.ShiftMask, // right shift
	29:  keyevent.CtrlMask,  // left ctrl
	97:  keyevent.CtrlMask,  // right ctrl
	56:  keyevent.AltMask,   // left alt
	100: keyevent.AltMask,   // right alt
	125: keyevent.MetaMask,  // left meta
	126: keyevent.MetaMask,  // right meta
}

// usShifted maps non-letter virtual key codes to their unshifted and shifted
// characters under the US layout.
var usShifted = map[int][2]rune{
	keyevent.VK1:            {'1', '!'},
	keyevent.VK2:            {'2', '@'},
	keyevent.VK3:            {'3', '#'},
	keyevent.VK4:            {'4', '$'},
	keyevent.VK5:            {'5', '%'},
	keyevent.VK6:            {'6', '^'},
	keyevent.VK7:            {'7', '&'},
	keyevent.VK8:            {'8', '*'},
	keyevent.VK9:            {'9', '('},
	keyevent.VK0:            {'0', ')'},
	keyevent.VKMinus:        {'-', '_'},
	keyevent.VKEquals:       {'=', '+'},
	keyevent.VKOpenBracket:  {'[', '{'},
	keyevent.VKCloseBracket: {']', '}'},
	keyevent.VKBackSlash:    {'\\', '|'},
	keyevent.VKSemicolon:    {';', ':'},
	keyevent.VKQuote:        {'\'', '"'},
	keyevent.VKBackQuote:    {'`', '~'},
	keyevent.VKComma:        {',', '<'},
	keyevent.VKPeriod:       {'.', '>'},
	keyevent.VKSlash:        {'/', '?'},
}

// charFor derives the Unicode character a key produces under the US layout,
// or CharUndefined when the key does not produce one. Numeric pad keys assume
// num lock is engaged.
func charFor(m vkMapping, shifted bool) rune {
	code := m.code

	if code >= keyevent.VKA && code <= keyevent.VKZ {
		if shifted {
			return rune(code)
		}
		return rune(code) + ('a' - 'A')
	}

	if m.location == keyevent.LocationNumPad {
		switch {
		case code >= keyevent.VKNumPad0 && code <= keyevent.VKNumPad9:
			return rune(code - (keyevent.VKNumPad0 - keyevent.VK0))
		case code == keyevent.VKMultiply:
			return '*'
		case code == keyevent.VKAdd:
			return '+'
		case code == keyevent.VKSubtract:
			return '-'
		case code == keyevent.VKDecimal:
			return '.'
		case code == keyevent.VKDivide:
			return '/'
		case code == keyevent.VKEnter:
			return '\n'
		}
		return keyevent.CharUndefined
	}

	switch code {
	case keyevent.VKSpace:
		return ' '
	case keyevent.VKEnter:
		return '\n'
	case keyevent.VKTab:
		return '\t'
	case keyevent.VKBackSpace:
		return '\b'
	}

	if pair, ok := usShifted[code]; ok {
		if shifted {
			return pair[1]
		}
		return pair[0]
	}

	return keyevent.CharUndefined
}
