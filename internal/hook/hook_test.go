package hook

import (
	"sync"
	"testing"

	"github.com/dooshek/keyhook/pkg/keyevent"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// collector gathers dispatched events for assertions.
type collector struct {
	mu     sync.Mutex
	events []*keyevent.KeyEvent
}

func (c *collector) HandleKeyEvent(ev *keyevent.KeyEvent) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, ev)
}

func (c *collector) all() []*keyevent.KeyEvent {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.events
}

func TestHook_ShiftedKeystroke(t *testing.T) {
	d := NewDispatcher()
	c := &collector{}
	d.AddListener(c)

	h := New(d, "")
	h.handlePress(42)   // left shift
	h.handlePress(30)   // a
	h.handleRelease(30) // a
	h.handleRelease(42) // left shift
	d.Close()

	events := c.all()
	require.Len(t, events, 5)

	// Shift press: modifier key, no character, so no typed event.
	assert.Equal(t, keyevent.KeyPressed, events[0].Kind())
	assert.Equal(t, keyevent.VKShift, events[0].Code)
	assert.Equal(t, keyevent.LocationLeft, events[0].Location())
	assert.Equal(t, keyevent.ShiftMask, events[0].Modifiers())
	assert.Equal(t, keyevent.CharUndefined, events[0].Char)

	// The letter press carries the shifted character and is followed by a
	// synthesized typed event with an undefined key code.
	assert.Equal(t, keyevent.KeyPressed, events[1].Kind())
	assert.Equal(t, keyevent.VKA, events[1].Code)
	assert.Equal(t, 'A', events[1].Char)
	assert.Equal(t, 42, events[0].RawCode)
	assert.Equal(t, 30, events[1].RawCode)

	assert.Equal(t, keyevent.KeyTyped, events[2].Kind())
	assert.Equal(t, keyevent.VKUndefined, events[2].Code)
	assert.Equal(t, 'A', events[2].Char)
	assert.Equal(t, keyevent.ShiftMask, events[2].Modifiers())

	assert.Equal(t, keyevent.KeyReleased, events[3].Kind())
	assert.Equal(t, keyevent.VKA, events[3].Code)

	// The shift release still reports the mask including shift.
	assert.Equal(t, keyevent.KeyReleased, events[4].Kind())
	assert.Equal(t, keyevent.VKShift, events[4].Code)
	assert.Equal(t, keyevent.ShiftMask, events[4].Modifiers())
	assert.Equal(t, uint32(0), h.modifiers)
}

func TestHook_UnshiftedKeystroke(t *testing.T) {
	d := NewDispatcher()
	c := &collector{}
	d.AddListener(c)

	h := New(d, "")
	h.handlePress(30) // a
	d.Close()

	events := c.all()
	require.Len(t, events, 2)
	assert.Equal(t, 'a', events[0].Char)
	assert.Equal(t, uint32(0), events[0].Modifiers())
	assert.Equal(t, keyevent.KeyTyped, events[1].Kind())
	assert.Equal(t, 'a', events[1].Char)
}

func TestHook_ActionKeyProducesNoTyped(t *testing.T) {
	d := NewDispatcher()
	c := &collector{}
	d.AddListener(c)

	h := New(d, "")
	h.handlePress(59)   // F1
	h.handleRelease(59) // F1
	d.Close()

	events := c.all()
	require.Len(t, events, 2)
	assert.Equal(t, keyevent.KeyPressed, events[0].Kind())
	assert.Equal(t, keyevent.VKF1, events[0].Code)
	assert.Equal(t, keyevent.CharUndefined, events[0].Char)
	assert.Equal(t, keyevent.KeyReleased, events[1].Kind())
}

func TestHook_PauseSuppressesDispatch(t *testing.T) {
	d := NewDispatcher()
	c := &collector{}
	d.AddListener(c)

	h := New(d, "")
	h.Pause()
	assert.True(t, h.IsPaused())
	h.handlePress(42) // left shift, tracked even while paused
	h.handlePress(30)
	h.Resume()
	h.handlePress(31) // s
	d.Close()

	events := c.all()
	require.Len(t, events, 2)
	assert.Equal(t, keyevent.VKS, events[0].Code)
	// Modifier state kept tracking while paused.
	assert.Equal(t, keyevent.ShiftMask, events[0].Modifiers())
	assert.Equal(t, 'S', events[0].Char)
}
