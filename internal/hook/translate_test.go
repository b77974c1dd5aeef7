package hook

import (
	"testing"

	"github.com/dooshek/keyhook/pkg/keyevent"
	"github.com/stretchr/testify/assert"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		name     string
		evdev    uint16
		code     int
		location keyevent.KeyLocation
	}{
		{"a key", 30, keyevent.VKA, keyevent.LocationStandard},
		{"digit 1", 2, keyevent.VK1, keyevent.LocationStandard},
		{"digit 0", 11, keyevent.VK0, keyevent.LocationStandard},
		{"enter", 28, keyevent.VKEnter, keyevent.LocationStandard},
		{"left shift", 42, keyevent.VKShift, keyevent.LocationLeft},
		{"right shift", 54, keyevent.VKShift, keyevent.LocationRight},
		{"left ctrl", 29, keyevent.VKControl, keyevent.LocationLeft},
		{"right meta", 126, keyevent.VKMeta, keyevent.LocationRight},
		{"numpad 5", 76, keyevent.VKNumPad5, keyevent.LocationNumPad},
		{"numpad enter", 96, keyevent.VKEnter, keyevent.LocationNumPad},
		{"f1", 59, keyevent.VKF1, keyevent.LocationStandard},
		{"f24", 194, keyevent.VKF24, keyevent.LocationStandard},
		{"page up", 104, keyevent.VKPageUp, keyevent.LocationStandard},
		{"sun copy", 133, keyevent.VKCopy, keyevent.LocationStandard},
		{"unknown", 511, keyevent.VKUndefined, keyevent.LocationUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := translate(tt.evdev)
			assert.Equal(t, tt.code, m.code)
			assert.Equal(t, tt.location, m.location)
		})
	}
}

func TestCharFor(t *testing.T) {
	standard := func(code int) vkMapping {
		return vkMapping{code, keyevent.LocationStandard}
	}
	numpad := func(code int) vkMapping {
		return vkMapping{code, keyevent.LocationNumPad}
	}

	tests := []struct {
		name    string
		m       vkMapping
		shifted bool
		want    rune
	}{
		{"lowercase letter", standard(keyevent.VKA), false, 'a'},
		{"uppercase letter", standard(keyevent.VKA), true, 'A'},
		{"digit", standard(keyevent.VK5), false, '5'},
		{"shifted digit", standard(keyevent.VK5), true, '%'},
		{"space", standard(keyevent.VKSpace), false, ' '},
		{"enter", standard(keyevent.VKEnter), false, '\n'},
		{"semicolon", standard(keyevent.VKSemicolon), false, ';'},
		{"shifted semicolon", standard(keyevent.VKSemicolon), true, ':'},
		{"numpad digit", numpad(keyevent.VKNumPad7), false, '7'},
		{"numpad digit shifted", numpad(keyevent.VKNumPad7), true, '7'},
		{"numpad divide", numpad(keyevent.VKDivide), false, '/'},
		{"modifier has no char", vkMapping{keyevent.VKShift, keyevent.LocationLeft}, false, keyevent.CharUndefined},
		{"function key has no char", standard(keyevent.VKF7), false, keyevent.CharUndefined},
		{"arrow has no char", standard(keyevent.VKUp), false, keyevent.CharUndefined},
		{"unknown has no char", vkMapping{keyevent.VKUndefined, keyevent.LocationUnknown}, false, keyevent.CharUndefined},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, charFor(tt.m, tt.shifted))
		})
	}
}

func TestModifierMaskTable(t *testing.T) {
	// Both physical instances of each modifier toggle the same mask bit.
	assert.Equal(t, modifierMask[42], modifierMask[54])
	assert.Equal(t, modifierMask[29], modifierMask[97])
	assert.Equal(t, modifierMask[56], modifierMask[100])
	assert.Equal(t, modifierMask[125], modifierMask[126])
}
