package hook

import (
	"sync"

	"github.com/dooshek/keyhook/internal/logger"
	"github.com/dooshek/keyhook/pkg/keyevent"
)

// Listener receives normalized key events from the hook. Callbacks run on the
// dispatcher goroutine, never on the device-reading loop, so a slow listener
// cannot stall capture.
type Listener interface {
	HandleKeyEvent(ev *keyevent.KeyEvent)
}

// ListenerFunc adapts a plain function to the Listener interface.
type ListenerFunc func(ev *keyevent.KeyEvent)

func (f ListenerFunc) HandleKeyEvent(ev *keyevent.KeyEvent) {
	f(ev)
}

// Subscription identifies a registered listener so it can be removed.
type Subscription struct {
	d  *Dispatcher
	id int
}

// Unsubscribe removes the listener; it is safe to call more than once.
func (s *Subscription) Unsubscribe() {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	delete(s.d.listeners, s.id)
}

const dispatchBuffer = 256

// Dispatcher fans key events out to registered listeners from a single
// goroutine.
type Dispatcher struct {
	mu        sync.Mutex
	listeners map[int]Listener
	nextID    int

	events chan *keyevent.KeyEvent
	done   chan struct{}
	once   sync.Once
}

// NewDispatcher creates a dispatcher and starts its delivery goroutine.
func NewDispatcher() *Dispatcher {
	d := &Dispatcher{
		listeners: make(map[int]Listener),
		events:    make(chan *keyevent.KeyEvent, dispatchBuffer),
		done:      make(chan struct{}),
	}
	go d.run()
	return d
}

// AddListener registers a listener for subsequent events and returns a
// subscription for removing it.
func (d *Dispatcher) AddListener(l Listener) *Subscription {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.nextID++
	d.listeners[d.nextID] = l
	return &Subscription{d: d, id: d.nextID}
}

// Dispatch queues an event for delivery. Events are dropped with a warning if
// the queue is full; the capture loop must never block on consumers.
func (d *Dispatcher) Dispatch(ev *keyevent.KeyEvent) {
	select {
	case d.events <- ev:
	default:
		logger.Warnf("Dispatch queue full, dropping event: %s", ev)
	}
}

// Close stops the delivery goroutine after draining queued events.
func (d *Dispatcher) Close() {
	d.once.Do(func() {
		close(d.events)
		<-d.done
	})
}

func (d *Dispatcher) run() {
	defer close(d.done)
	for ev := range d.events {
		d.mu.Lock()
		listeners := make([]Listener, 0, len(d.listeners))
		for _, l := range d.listeners {
			listeners = append(listeners, l)
		}
		d.mu.Unlock()

		for _, l := range listeners {
			l.HandleKeyEvent(ev)
		}
	}
}
