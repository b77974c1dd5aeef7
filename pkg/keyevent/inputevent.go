package keyevent

import "strings"

// Modifier mask flags. Mouse button flags share the mask vocabulary so a
// single field covers chorded input.
const (
	ShiftMask uint32 = 1 << iota
	CtrlMask
	MetaMask
	AltMask
	Button1Mask
	Button2Mask
	Button3Mask
	Button4Mask
	Button5Mask
)

// InputEvent is the envelope shared by all normalized input events: the
// monotonic timestamp (milliseconds since an arbitrary epoch) and the modifier
// mask in effect when the event occurred. Key events embed it rather than
// inherit from it; no polymorphic behavior is required.
type InputEvent struct {
	when      int64
	modifiers uint32
}

// When returns the event timestamp in milliseconds since an arbitrary epoch.
func (e *InputEvent) When() int64 {
	return e.when
}

// Modifiers returns the modifier mask in effect when the event occurred.
func (e *InputEvent) Modifiers() uint32 {
	return e.modifiers
}

var modifierNames = []struct {
	mask uint32
	name string
}{
	{ShiftMask, "Shift"},
	{CtrlMask, "Ctrl"},
	{MetaMask, "Meta"},
	{AltMask, "Alt"},
	{Button1Mask, "Button1"},
	{Button2Mask, "Button2"},
	{Button3Mask, "Button3"},
	{Button4Mask, "Button4"},
	{Button5Mask, "Button5"},
}

// ModifiersText renders a modifier mask as a "+"-joined list of modifier
// names, for example "Shift+Ctrl". A zero mask yields the empty string.
func ModifiersText(mask uint32) string {
	var parts []string
	for _, m := range modifierNames {
		if mask&m.mask != 0 {
			parts = append(parts, m.name)
		}
	}
	return strings.Join(parts, "+")
}
