// Package replay injects recorded key traces back into the system.
package replay

import (
	"context"
	"fmt"
	"time"

	"github.com/dooshek/keyhook/internal/logger"
	"github.com/dooshek/keyhook/pkg/keyevent"
	"github.com/go-vgo/robotgo"
)

// vkToRobotgo maps virtual key codes to robotgo key names for the keys that
// can be injected. Printable keys map through their resolved character
// instead.
var vkToRobotgo = map[int]string{
	keyevent.VKEnter:       "enter",
	keyevent.VKBackSpace:   "backspace",
	keyevent.VKTab:         "tab",
	keyevent.VKEscape:      "esc",
	keyevent.VKSpace:       "space",
	keyevent.VKDelete:      "delete",
	keyevent.VKInsert:      "insert",
	keyevent.VKUp:          "up",
	keyevent.VKDown:        "down",
	keyevent.VKLeft:        "left",
	keyevent.VKRight:       "right",
	keyevent.VKHome:        "home",
	keyevent.VKEnd:         "end",
	keyevent.VKPageUp:      "pageup",
	keyevent.VKPageDown:    "pagedown",
	keyevent.VKCapsLock:    "capslock",
	keyevent.VKNumLock:     "numlock",
	keyevent.VKScrollLock:  "scrolllock",
	keyevent.VKPrintScreen: "printscreen",
}

func init() {
	for i := 0; i < 24; i++ {
		vkToRobotgo[keyevent.VKF1+fKeyCode(i)] = fmt.Sprintf("f%d", i+1)
	}
}

// fKeyCode returns the offset of the i-th function key from VKF1. The F range
// is split: F1-F12 are contiguous, F13-F24 live in an extended block.
func fKeyCode(i int) int {
	if i < 12 {
		return i
	}
	return keyevent.VKF13 - keyevent.VKF1 + (i - 12)
}

// keyName resolves the robotgo key name for an event, or "" when the event
// cannot be injected.
func keyName(ev *keyevent.KeyEvent) string {
	if name, ok := vkToRobotgo[ev.Code]; ok {
		return name
	}

	code := ev.Code
	switch {
	case code >= keyevent.VKA && code <= keyevent.VKZ:
		return string(rune(code) + ('a' - 'A'))
	case code >= keyevent.VK0 && code <= keyevent.VK9:
		return string(rune(code))
	case code >= keyevent.VKNumPad0 && code <= keyevent.VKNumPad9:
		return string(rune(code - (keyevent.VKNumPad0 - keyevent.VK0)))
	}

	return ""
}

// modifierNames converts a modifier mask to robotgo modifier arguments.
func modifierNames(mask uint32) []interface{} {
	var mods []interface{}
	if mask&keyevent.ShiftMask != 0 {
		mods = append(mods, "shift")
	}
	if mask&keyevent.CtrlMask != 0 {
		mods = append(mods, "ctrl")
	}
	if mask&keyevent.AltMask != 0 {
		mods = append(mods, "alt")
	}
	if mask&keyevent.MetaMask != 0 {
		mods = append(mods, "cmd")
	}
	return mods
}

// Player replays a trace by synthesizing key taps, honoring the recorded
// inter-event timing.
type Player struct {
	// Speed scales replay timing; 2.0 replays twice as fast. Zero means 1.0.
	Speed float64
}

// Play injects the pressed events of a trace in order. Typed and released
// events are skipped: a tap covers the full press/release cycle. Events whose
// key cannot be mapped are skipped with a warning.
func (p *Player) Play(ctx context.Context, events []*keyevent.KeyEvent) error {
	speed := p.Speed
	if speed <= 0 {
		speed = 1.0
	}

	var last int64 = -1
	for _, ev := range events {
		if ev.Kind() != keyevent.KeyPressed {
			continue
		}

		if last >= 0 && ev.When() > last {
			delay := time.Duration(float64(ev.When()-last)/speed) * time.Millisecond
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		last = ev.When()

		// Held modifiers replay as chord arguments, so skip their own
		// press events.
		if isModifier(ev.Code) {
			continue
		}

		name := keyName(ev)
		if name == "" {
			logger.Warnf("Skipping unmappable key during replay: %s", keyevent.KeyText(ev.Code))
			continue
		}

		if err := robotgo.KeyTap(name, modifierNames(ev.Modifiers())...); err != nil {
			return fmt.Errorf("failed to inject key %q: %w", name, err)
		}
	}

	return nil
}

func isModifier(code int) bool {
	switch code {
	case keyevent.VKShift, keyevent.VKControl, keyevent.VKAlt, keyevent.VKMeta:
		return true
	}
	return false
}
