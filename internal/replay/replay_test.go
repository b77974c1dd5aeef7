package replay

import (
	"testing"

	"github.com/dooshek/keyhook/pkg/keyevent"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func eventWithCode(t *testing.T, code int) *keyevent.KeyEvent {
	t.Helper()
	ev, err := keyevent.New(keyevent.KeyPressed, 0, 0, 0, code, keyevent.CharUndefined, keyevent.LocationStandard)
	require.NoError(t, err)
	return ev
}

func TestKeyName(t *testing.T) {
	tests := []struct {
		code int
		want string
	}{
		{keyevent.VKA, "a"},
		{keyevent.VKZ, "z"},
		{keyevent.VK0, "0"},
		{keyevent.VK7, "7"},
		{keyevent.VKNumPad3, "3"},
		{keyevent.VKEnter, "enter"},
		{keyevent.VKEscape, "esc"},
		{keyevent.VKF1, "f1"},
		{keyevent.VKF12, "f12"},
		{keyevent.VKF13, "f13"},
		{keyevent.VKF24, "f24"},
		{keyevent.VKPageDown, "pagedown"},
		{keyevent.VKDeadGrave, ""},
		{keyevent.VKUndefined, ""},
		{0x9999, ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, keyName(eventWithCode(t, tt.code)), "keyName(0x%x)", tt.code)
	}
}

func TestModifierNames(t *testing.T) {
	assert.Empty(t, modifierNames(0))
	assert.Equal(t, []interface{}{"shift"}, modifierNames(keyevent.ShiftMask))
	assert.Equal(t, []interface{}{"shift", "ctrl", "alt", "cmd"},
		modifierNames(keyevent.ShiftMask|keyevent.CtrlMask|keyevent.AltMask|keyevent.MetaMask))
	// Mouse button bits have no keyboard chord equivalent.
	assert.Empty(t, modifierNames(keyevent.Button1Mask))
}

func TestIsModifier(t *testing.T) {
	assert.True(t, isModifier(keyevent.VKShift))
	assert.True(t, isModifier(keyevent.VKMeta))
	assert.False(t, isModifier(keyevent.VKA))
	assert.False(t, isModifier(keyevent.VKF1))
}
