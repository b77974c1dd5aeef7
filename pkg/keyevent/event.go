// Package keyevent defines the normalized representation of a single
// low-level keyboard event captured by a global hook, together with the
// canonical virtual key code space, symbolic name resolution and action-key
// classification. Events are plain values: the producing hook layer constructs
// them, optionally corrects the raw fields, and hands them off fully built
// before they become visible to other goroutines.
package keyevent

import (
	"errors"
	"strconv"
	"strings"
)

// EventKind identifies which transition or character production an event
// models.
type EventKind int

// The range of IDs used for key events, and the three kinds within it.
const (
	KeyFirst = 2400
	KeyLast  = 2402

	KeyTyped    EventKind = KeyFirst
	KeyPressed  EventKind = KeyFirst + 1
	KeyReleased EventKind = KeyFirst + 2
)

func (k EventKind) String() string {
	switch k {
	case KeyTyped:
		return "KEY_TYPED"
	case KeyPressed:
		return "KEY_PRESSED"
	case KeyReleased:
		return "KEY_RELEASED"
	default:
		return "unknown type"
	}
}

// KeyLocation disambiguates keys that exist in more than one physical
// position, such as the left and right Shift keys.
type KeyLocation int

const (
	LocationUnknown KeyLocation = iota
	LocationStandard
	LocationLeft
	LocationRight
	LocationNumPad
)

func (l KeyLocation) String() string {
	switch l {
	case LocationStandard:
		return "KEY_LOCATION_STANDARD"
	case LocationLeft:
		return "KEY_LOCATION_LEFT"
	case LocationRight:
		return "KEY_LOCATION_RIGHT"
	case LocationNumPad:
		return "KEY_LOCATION_NUMPAD"
	default:
		return "KEY_LOCATION_UNKNOWN"
	}
}

// ErrInvalidKeyTyped is returned by New when a KeyTyped event carries an
// undefined character or a defined key code. Typed events model character
// production, not a physical transition; hitting this error is a defect in the
// producing translation layer.
var ErrInvalidKeyTyped = errors.New("key typed event requires a defined key char and an undefined key code")

// KeyEvent is a single normalized keyboard event. The kind, timestamp,
// modifier mask and location are fixed at construction; RawCode, Code and Char
// stay exported so the producing hook can correct them after construction but
// before handing the event off.
type KeyEvent struct {
	InputEvent

	// RawCode is the platform scan code, an arbitrary value in [0, 255]
	// carried for diagnostics only. It is not portable across systems.
	RawCode int

	// Code is the virtual key code, or VKUndefined for KeyTyped events.
	Code int

	// Char is the Unicode character produced under the active layout, or
	// CharUndefined when no character applies.
	Char rune

	kind     EventKind
	location KeyLocation
}

// New constructs a key event. Passing a kind outside the three defined kinds
// results in unspecified behavior; the producer is trusted. The only runtime
// check is the KeyTyped invariant: a typed event must carry a defined
// character and VKUndefined as its code, otherwise ErrInvalidKeyTyped is
// returned.
func New(kind EventKind, when int64, modifiers uint32, rawCode, keyCode int, keyChar rune, location KeyLocation) (*KeyEvent, error) {
	if kind == KeyTyped && (keyChar == CharUndefined || keyCode != VKUndefined) {
		return nil, ErrInvalidKeyTyped
	}

	return &KeyEvent{
		InputEvent: InputEvent{when: when, modifiers: modifiers},
		RawCode:    rawCode,
		Code:       keyCode,
		Char:       keyChar,
		kind:       kind,
		location:   location,
	}, nil
}

// Kind returns the event kind.
func (e *KeyEvent) Kind() EventKind {
	return e.kind
}

// Location returns the physical location of the key that generated the event.
func (e *KeyEvent) Location() KeyLocation {
	return e.location
}

// String renders the event for logging and debugging. The output is not meant
// to be parsed back.
func (e *KeyEvent) String() string {
	var b strings.Builder

	b.WriteString(e.kind.String())
	b.WriteString(",keyCode=")
	b.WriteString(strconv.Itoa(e.Code))
	b.WriteString(",keyText=")
	b.WriteString(KeyText(e.Code))
	b.WriteString(",keyChar=")
	switch int(e.Char) {
	case VKEnter, VKBackSpace, VKTab, VKCancel, VKDelete:
		b.WriteString(KeyText(int(e.Char)))
	default:
		b.WriteByte('\'')
		b.WriteRune(e.Char)
		b.WriteByte('\'')
	}
	if e.modifiers != 0 {
		b.WriteString(",modifiers=")
		b.WriteString(ModifiersText(e.modifiers))
	}
	b.WriteString(",keyLocation=")
	b.WriteString(e.location.String())
	b.WriteString(",rawCode=")
	b.WriteString(strconv.Itoa(e.RawCode))

	return b.String()
}
