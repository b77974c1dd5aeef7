package keyevent

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyText_Letters(t *testing.T) {
	for code := VKA; code <= VKZ; code++ {
		got := KeyText(code)
		want := string(rune(code))
		if got != want {
			t.Errorf("KeyText(0x%x) = %q, want %q", code, got, want)
		}
	}
}

func TestKeyText_Digits(t *testing.T) {
	for code := VK0; code <= VK9; code++ {
		got := KeyText(code)
		want := string(rune(code))
		if got != want {
			t.Errorf("KeyText(0x%x) = %q, want %q", code, got, want)
		}
	}
}

func TestKeyText_NumPadDigits(t *testing.T) {
	for i := 0; i <= 9; i++ {
		got := KeyText(VKNumPad0 + i)
		want := fmt.Sprintf("NumPad %d", i)
		if got != want {
			t.Errorf("KeyText(VKNumPad%d) = %q, want %q", i, got, want)
		}
	}
}

func TestNumPadOffsetInvariant(t *testing.T) {
	// The shared digit rendering path relies on the numeric pad range sitting
	// at a fixed offset from the base digit range.
	assert.Equal(t, VK9, VKNumPad9-numPadOffset)
	assert.Equal(t, VK0, VKNumPad0-numPadOffset)
}

func TestKeyText_NamedKeys(t *testing.T) {
	tests := []struct {
		code int
		want string
	}{
		{VKEnter, "Enter"},
		{VKBackSpace, "Backspace"},
		{VKTab, "Tab"},
		{VKShift, "Shift"},
		{VKControl, "Control"},
		{VKMeta, "Meta"},
		{VKWindows, "Windows"},
		{VKContextMenu, "Context Menu"},
		{VKEscape, "Escape"},
		{VKSpace, "Space"},
		{VKUp, "Up"},
		{VKKpUp, "Up"},
		{VKMultiply, "NumPad *"},
		{VKDivide, "NumPad /"},
		{VKDelete, "Delete"},
		{VKClear, "Clear"},
		{VKNumLock, "Num Lock"},
		{VKScrollLock, "Scroll Lock"},
		{VKF1, "F1"},
		{VKF12, "F12"},
		{VKF13, "F13"},
		{VKF24, "F24"},
		{VKPrintScreen, "Print Screen"},
		{VKPageUp, "Page Up"},
		{VKHome, "Home"},
		{VKDeadGrave, "Dead Grave"},
		{VKDeadSemivoicedSound, "Dead Semivoiced Sound"},
		{VKBraceLeft, "Left Brace"},
		{VKEuroSign, "Euro"},
		{VKKana, "Kana"},
		{VKInputMethodOnOff, "Input Method On/Off"},
		{VKAgain, "Again"},
		{VKProps, "Props"},
		{VKBegin, "Begin"},
		{VKUndefined, "Undefined"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, KeyText(tt.code), "KeyText(0x%x)", tt.code)
	}
}

func TestKeyText_UnknownCode(t *testing.T) {
	assert.Equal(t, "Unknown keyCode: 0x9999", KeyText(0x9999))
	assert.Equal(t, "Unknown keyCode: 0xea", KeyText(0xEA))
	// Negative values render with a sign, still embedding the magnitude.
	assert.Contains(t, KeyText(-5), "keyCode: 0x-5")
}

func TestKeyText_Deterministic(t *testing.T) {
	codes := []int{VKA, VK5, VKNumPad5, VKF7, VKHome, 0x9999}
	for _, code := range codes {
		first := KeyText(code)
		for i := 0; i < 3; i++ {
			assert.Equal(t, first, KeyText(code))
		}
	}
}

func TestKeyText_LabelOverrides(t *testing.T) {
	SetLabels(LabelMap{
		"key.enter":  "Return",
		"key.numpad": "KP",
	})
	defer SetLabels(nil)

	assert.Equal(t, "Return", KeyText(VKEnter))
	assert.Equal(t, "KP 5", KeyText(VKNumPad5))
	// Keys without an override keep their defaults.
	assert.Equal(t, "Escape", KeyText(VKEscape))
}

func TestIsActionKey(t *testing.T) {
	action := []int{
		VKShift, VKControl, VKAlt, VKMeta, VKWindows, VKContextMenu,
		VKUp, VKDown, VKLeft, VKRight,
		VKKpUp, VKKpDown, VKKpLeft, VKKpRight,
		VKF1, VKF7, VKF12, VKF13, VKF24,
		VKPrintScreen, VKInsert, VKHelp,
		VKPageUp, VKPageDown, VKHome, VKEnd,
		VKScrollLock, VKCapsLock, VKNumLock, VKPause,
		VKBegin,
		VKAgain, VKUndo, VKCopy, VKPaste, VKCut, VKFind, VKProps, VKStop,
		VKFinal, VKConvert, VKNonConvert, VKAccept, VKModeChange,
		VKKana, VKKanji, VKAlphanumeric, VKKatakana, VKHiragana,
		VKFullWidth, VKHalfWidth, VKRomanCharacters,
		VKAllCandidates, VKPreviousCandidate, VKCodeInput,
		VKJapaneseKatakana, VKJapaneseHiragana, VKJapaneseRoman,
		VKKanaLock, VKInputMethodOnOff,
	}
	for _, code := range action {
		assert.True(t, IsActionKey(code), "IsActionKey(0x%x)", code)
	}

	notAction := []int{
		VKEnter, VKBackSpace, VKTab, VKEscape, VKSpace,
		VKComma, VKMinus, VKPeriod, VKSlash, VKEquals, VKSemicolon,
		VKQuote, VKBackQuote, VKOpenBracket, VKCloseBracket, VKBackSlash,
		VKMultiply, VKAdd, VKSubtract, VKDecimal, VKDivide,
		VKDelete, VKClear, VKUndefined,
		VKDeadGrave, VKAmpersand, VKAt, VKPlus,
		0x9999, -1,
	}
	for _, code := range notAction {
		assert.False(t, IsActionKey(code), "IsActionKey(0x%x)", code)
	}

	// Printable character keys are never action keys.
	for code := VKA; code <= VKZ; code++ {
		assert.False(t, IsActionKey(code))
	}
	for code := VK0; code <= VK9; code++ {
		assert.False(t, IsActionKey(code))
	}
	for code := VKNumPad0; code <= VKNumPad9; code++ {
		assert.False(t, IsActionKey(code))
	}
}

func TestPressedResolveNameStable(t *testing.T) {
	// Name resolution is independent of construction order and repeat count.
	codes := []int{VKF7, VKA, VKNumPad5, VKHome}
	first := make(map[int]string)
	for _, code := range codes {
		ev, err := New(KeyPressed, 1, 0, 0, code, CharUndefined, LocationStandard)
		assert.NoError(t, err)
		first[code] = KeyText(ev.Code)
	}
	for i := len(codes) - 1; i >= 0; i-- {
		code := codes[i]
		ev, err := New(KeyPressed, 2, 0, 0, code, CharUndefined, LocationStandard)
		assert.NoError(t, err)
		assert.Equal(t, first[code], KeyText(ev.Code))
	}
}
