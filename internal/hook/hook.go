// Package hook captures raw key signals from Linux evdev devices and
// translates them into normalized key events. One hook produces pressed,
// typed and released events; registered listeners consume them through the
// dispatcher.
package hook

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/MarinX/keylogger"
	"github.com/dooshek/keyhook/internal/logger"
	"github.com/dooshek/keyhook/pkg/keyevent"
)

// Hook reads one keyboard device and feeds normalized events to its
// dispatcher.
type Hook struct {
	dispatcher *Dispatcher
	device     string
	keyboard   *keylogger.KeyLogger

	epoch     time.Time
	modifiers uint32
	paused    atomic.Bool
}

// New creates a hook reading from the given device path. An empty path picks
// the first keyboard device found.
func New(dispatcher *Dispatcher, device string) *Hook {
	return &Hook{
		dispatcher: dispatcher,
		device:     device,
		epoch:      time.Now(),
	}
}

// Start opens the keyboard device and blocks translating events until the
// context is canceled or the device channel closes.
func (h *Hook) Start(ctx context.Context) error {
	device := h.device
	if device == "" {
		keyboards := keylogger.FindAllKeyboardDevices()
		if len(keyboards) == 0 {
			return fmt.Errorf("no keyboard devices found")
		}
		device = keyboards[0]
	}

	kbd, err := keylogger.New(device)
	if err != nil {
		if strings.Contains(err.Error(), "permission denied") {
			fmt.Printf("Cannot access keyboard device.\n" +
				"Solution: \n" +
				"1. Add yourself to the input group: sudo usermod -aG input $USER \n" +
				"2. Log out and log back in (or restart your system) \n" +
				"3. Run the program again \n" +
				"Alternatively, you can run the program with sudo (not recommended).\n\n")
		}
		return fmt.Errorf("error opening keyboard device: %w", err)
	}

	h.keyboard = kbd
	logger.Infof("Capturing key events from %s", device)

	events := kbd.Read()
	for e := range events {
		if e.Type != keylogger.EvKey {
			continue
		}

		code := uint16(e.Code)
		switch {
		case e.KeyPress():
			h.handlePress(code)
		case e.KeyRelease():
			h.handleRelease(code)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
	}
	return nil
}

// Stop closes the keyboard device, which ends the Start loop.
func (h *Hook) Stop() {
	if h.keyboard != nil {
		h.keyboard.Close()
	}
}

// Pause suppresses event dispatch without releasing the device. Modifier
// state keeps tracking so the mask is correct on resume.
func (h *Hook) Pause() {
	h.paused.Store(true)
	logger.Debug("Hook paused")
}

// Resume re-enables event dispatch.
func (h *Hook) Resume() {
	h.paused.Store(false)
	logger.Debug("Hook resumed")
}

// IsPaused reports whether event dispatch is currently suppressed.
func (h *Hook) IsPaused() bool {
	return h.paused.Load()
}

// now returns milliseconds since the hook epoch, from the monotonic clock.
func (h *Hook) now() int64 {
	return time.Since(h.epoch).Milliseconds()
}

func (h *Hook) handlePress(code uint16) {
	// The mask reported with a modifier's own press includes that modifier.
	if mask, ok := modifierMask[code]; ok {
		h.modifiers |= mask
	}

	m := translate(code)
	ch := charFor(m, h.modifiers&keyevent.ShiftMask != 0)

	pressed, err := keyevent.New(keyevent.KeyPressed, h.now(), h.modifiers, int(code), m.code, ch, m.location)
	if err != nil {
		logger.Error("Failed to construct pressed event", err)
		return
	}
	h.dispatch(pressed)

	// A press that produces a character also yields a synthesized typed
	// event carrying the character and an undefined key code.
	if ch != keyevent.CharUndefined {
		typed, err := keyevent.New(keyevent.KeyTyped, h.now(), h.modifiers, int(code), keyevent.VKUndefined, ch, m.location)
		if err != nil {
			logger.Error("Failed to construct typed event", err)
			return
		}
		h.dispatch(typed)
	}
}

func (h *Hook) handleRelease(code uint16) {
	m := translate(code)
	shifted := h.modifiers&keyevent.ShiftMask != 0

	released, err := keyevent.New(keyevent.KeyReleased, h.now(), h.modifiers, int(code), m.code, charFor(m, shifted), m.location)
	if err != nil {
		logger.Error("Failed to construct released event", err)
		return
	}
	h.dispatch(released)

	// The mask reported with a modifier's own release excludes it.
	if mask, ok := modifierMask[code]; ok {
		h.modifiers &^= mask
	}
}

func (h *Hook) dispatch(ev *keyevent.KeyEvent) {
	if h.paused.Load() {
		return
	}
	h.dispatcher.Dispatch(ev)
}
