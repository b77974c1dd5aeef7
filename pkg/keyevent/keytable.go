package keyevent

import "fmt"

// Labels supplies deployment-specific override strings for key names. Lookup
// receives the fixed property identifier of a key (for example "key.enter")
// and reports whether an override exists for it.
type Labels interface {
	Lookup(prop string) (string, bool)
}

// LabelMap adapts a plain map to the Labels interface.
type LabelMap map[string]string

func (m LabelMap) Lookup(prop string) (string, bool) {
	v, ok := m[prop]
	return v, ok
}

var labelSource Labels

// SetLabels installs a label override source consulted by KeyText. It must be
// called before events are processed concurrently; passing nil restores the
// compiled-in defaults.
func SetLabels(src Labels) {
	labelSource = src
}

func label(prop, fallback string) string {
	if labelSource != nil {
		if v, ok := labelSource.Lookup(prop); ok {
			return v
		}
	}
	return fallback
}

type keyEntry struct {
	prop   string
	label  string
	action bool
}

// keyTable maps every named virtual key code outside the letter and digit
// ranges to its default label, its override property and its action-key flag.
// Built once as a literal and never mutated, so concurrent readers need no
// synchronization.
var keyTable = map[int]keyEntry{
	VKEnter:     {"key.enter", "Enter", false},
	VKBackSpace: {"key.backSpace", "Backspace", false},
	VKTab:       {"key.tab", "Tab", false},

	VKShift:       {"key.shift", "Shift", true},
	VKControl:     {"key.control", "Control", true},
	VKAlt:         {"key.alt", "Alt", true},
	VKMeta:        {"key.meta", "Meta", true},
	VKWindows:     {"key.windows", "Windows", true},
	VKContextMenu: {"key.context", "Context Menu", true},

	VKPause:    {"key.pause", "Pause", true},
	VKCapsLock: {"key.capsLock", "Caps Lock", true},
	VKEscape:   {"key.escape", "Escape", false},
	VKSpace:    {"key.space", "Space", false},

	VKUp:    {"key.up", "Up", true},
	VKDown:  {"key.down", "Down", true},
	VKLeft:  {"key.left", "Left", true},
	VKRight: {"key.right", "Right", true},

	VKComma:  {"key.comma", "Comma", false},
	VKMinus:  {"key.minus", "Minus", false},
	VKPeriod: {"key.period", "Period", false},
	VKSlash:  {"key.slash", "Slash", false},

	VKEquals:    {"key.equals", "Equals", false},
	VKSemicolon: {"key.semicolon", "Semicolon", false},

	VKOpenBracket:  {"key.openBracket", "Open Bracket", false},
	VKBackSlash:    {"key.backSlash", "Back Slash", false},
	VKCloseBracket: {"key.closeBracket", "Close Bracket", false},

	// The numeric pad arrows resolve to the same labels as the standard
	// arrows; the key location field disambiguates them.
	VKKpUp:    {"key.up", "Up", true},
	VKKpDown:  {"key.down", "Down", true},
	VKKpLeft:  {"key.left", "Left", true},
	VKKpRight: {"key.right", "Right", true},

	VKMultiply:   {"key.multiply", "NumPad *", false},
	VKAdd:        {"key.add", "NumPad +", false},
	VKSubtract:   {"key.subtract", "NumPad -", false},
	VKDecimal:    {"key.decimal", "NumPad .", false},
	VKDivide:     {"key.divide", "NumPad /", false},
	VKDelete:     {"key.delete", "Delete", false},
	VKClear:      {"key.clear", "Clear", false},
	VKNumLock:    {"key.numLock", "Num Lock", true},
	VKScrollLock: {"key.scrollLock", "Scroll Lock", true},

	VKF1:  {"key.f1", "F1", true},
	VKF2:  {"key.f2", "F2", true},
	VKF3:  {"key.f3", "F3", true},
	VKF4:  {"key.f4", "F4", true},
	VKF5:  {"key.f5", "F5", true},
	VKF6:  {"key.f6", "F6", true},
	VKF7:  {"key.f7", "F7", true},
	VKF8:  {"key.f8", "F8", true},
	VKF9:  {"key.f9", "F9", true},
	VKF10: {"key.f10", "F10", true},
	VKF11: {"key.f11", "F11", true},
	VKF12: {"key.f12", "F12", true},
	VKF13: {"key.f13", "F13", true},
	VKF14: {"key.f14", "F14", true},
	VKF15: {"key.f15", "F15", true},
	VKF16: {"key.f16", "F16", true},
	VKF17: {"key.f17", "F17", true},
	VKF18: {"key.f18", "F18", true},
	VKF19: {"key.f19", "F19", true},
	VKF20: {"key.f20", "F20", true},
	VKF21: {"key.f21", "F21", true},
	VKF22: {"key.f22", "F22", true},
	VKF23: {"key.f23", "F23", true},
	VKF24: {"key.f24", "F24", true},

	VKPrintScreen: {"key.printScreen", "Print Screen", true},
	VKInsert:      {"key.insert", "Insert", true},
	VKHelp:        {"key.help", "Help", true},

	VKPageUp:   {"key.pgup", "Page Up", true},
	VKPageDown: {"key.pgdn", "Page Down", true},
	VKHome:     {"key.home", "Home", true},
	VKEnd:      {"key.end", "End", true},

	VKQuote:     {"key.quote", "Quote", false},
	VKBackQuote: {"key.backQuote", "Back Quote", false},

	VKDeadGrave:           {"key.deadGrave", "Dead Grave", false},
	VKDeadAcute:           {"key.deadAcute", "Dead Acute", false},
	VKDeadCircumflex:      {"key.deadCircumflex", "Dead Circumflex", false},
	VKDeadTilde:           {"key.deadTilde", "Dead Tilde", false},
	VKDeadMacron:          {"key.deadMacron", "Dead Macron", false},
	VKDeadBreve:           {"key.deadBreve", "Dead Breve", false},
	VKDeadAboveDot:        {"key.deadAboveDot", "Dead Above Dot", false},
	VKDeadDiaeresis:       {"key.deadDiaeresis", "Dead Diaeresis", false},
	VKDeadAboveRing:       {"key.deadAboveRing", "Dead Above Ring", false},
	VKDeadDoubleAcute:     {"key.deadDoubleAcute", "Dead Double Acute", false},
	VKDeadCaron:           {"key.deadCaron", "Dead Caron", false},
	VKDeadCedilla:         {"key.deadCedilla", "Dead Cedilla", false},
	VKDeadOgonek:          {"key.deadOgonek", "Dead Ogonek", false},
	VKDeadIota:            {"key.deadIota", "Dead Iota", false},
	VKDeadVoicedSound:     {"key.deadVoicedSound", "Dead Voiced Sound", false},
	VKDeadSemivoicedSound: {"key.deadSemivoicedSound", "Dead Semivoiced Sound", false},

	VKAmpersand:  {"key.ampersand", "Ampersand", false},
	VKAsterisk:   {"key.asterisk", "Asterisk", false},
	VKQuoteDbl:   {"key.quoteDbl", "Double Quote", false},
	VKLess:       {"key.less", "Less", false},
	VKGreater:    {"key.greater", "Greater", false},
	VKBraceLeft:  {"key.braceLeft", "Left Brace", false},
	VKBraceRight: {"key.braceRight", "Right Brace", false},

	VKAt:                      {"key.at", "At", false},
	VKColon:                   {"key.colon", "Colon", false},
	VKCircumflex:              {"key.circumflex", "Circumflex", false},
	VKDollar:                  {"key.dollar", "Dollar", false},
	VKEuroSign:                {"key.euro", "Euro", false},
	VKExclamationMark:         {"key.exclamationMark", "Exclamation Mark", false},
	VKInvertedExclamationMark: {"key.invertedExclamationMark", "Inverted Exclamation Mark", false},
	VKLeftParenthesis:         {"key.leftParenthesis", "Left Parenthesis", false},
	VKNumberSign:              {"key.numberSign", "Number Sign", false},
	VKPlus:                    {"key.plus", "Plus", false},
	VKRightParenthesis:        {"key.rightParenthesis", "Right Parenthesis", false},
	VKUnderscore:              {"key.underscore", "Underscore", false},

	VKFinal:             {"key.final", "Final", true},
	VKConvert:           {"key.convert", "Convert", true},
	VKNonConvert:        {"key.noconvert", "No Convert", true},
	VKAccept:            {"key.accept", "Accept", true},
	VKModeChange:        {"key.modechange", "Mode Change", true},
	VKKana:              {"key.kana", "Kana", true},
	VKKanji:             {"key.kanji", "Kanji", true},
	VKAlphanumeric:      {"key.alphanumeric", "Alphanumeric", true},
	VKKatakana:          {"key.katakana", "Katakana", true},
	VKHiragana:          {"key.hiragana", "Hiragana", true},
	VKFullWidth:         {"key.fullWidth", "Full-Width", true},
	VKHalfWidth:         {"key.halfWidth", "Half-Width", true},
	VKRomanCharacters:   {"key.romanCharacters", "Roman Characters", true},
	VKAllCandidates:     {"key.allCandidates", "All Candidates", true},
	VKPreviousCandidate: {"key.previousCandidate", "Previous Candidate", true},
	VKCodeInput:         {"key.codeInput", "Code Input", true},
	VKJapaneseKatakana:  {"key.japaneseKatakana", "Japanese Katakana", true},
	VKJapaneseHiragana:  {"key.japaneseHiragana", "Japanese Hiragana", true},
	VKJapaneseRoman:     {"key.japaneseRoman", "Japanese Roman", true},
	VKKanaLock:          {"key.kanaLock", "Kana Lock", true},
	VKInputMethodOnOff:  {"key.inputMethodOnOff", "Input Method On/Off", true},

	VKAgain: {"key.again", "Again", true},
	VKUndo:  {"key.undo", "Undo", true},
	VKCopy:  {"key.copy", "Copy", true},
	VKPaste: {"key.paste", "Paste", true},
	VKCut:   {"key.cut", "Cut", true},
	VKFind:  {"key.find", "Find", true},
	VKProps: {"key.props", "Props", true},
	VKStop:  {"key.stop", "Stop", true},

	VKBegin: {"key.begin", "Begin", true},

	VKUndefined: {"key.undefined", "Undefined", false},
}

// numPadOffset is the fixed distance between the numeric pad digit range and
// the base digit range. KeyText relies on the two ranges staying contiguous
// and equally ordered so one rendering path serves both.
const numPadOffset = VKNumPad0 - VK0

// KeyText returns a human-readable name for a virtual key code, such as
// "Home", "F1" or "A". It is total: codes outside the known table yield a
// fallback string embedding the code in hexadecimal. Individual labels can be
// overridden per deployment through SetLabels.
func KeyText(keyCode int) string {
	switch {
	case keyCode >= VKA && keyCode <= VKZ:
		return string(rune(keyCode))
	case keyCode >= VKNumPad0 && keyCode <= VKNumPad9:
		return label("key.numpad", "NumPad") + " " + string(rune(keyCode-numPadOffset))
	case keyCode >= VK0 && keyCode <= VK9:
		return string(rune(keyCode))
	}

	if e, ok := keyTable[keyCode]; ok {
		return label(e.prop, e.label)
	}

	return fmt.Sprintf("%s keyCode: 0x%x", label("key.unknown", "Unknown"), keyCode)
}

// IsActionKey reports whether a virtual key code is an "action" key: one that
// signals a command or navigation rather than producing a character. Covers
// modifiers, arrows, function keys, navigation and editing keys, lock keys and
// the input method set. Unrecognized codes are never action keys.
func IsActionKey(keyCode int) bool {
	return keyTable[keyCode].action
}
