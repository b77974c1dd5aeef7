// Package trace records streams of key events to JSON-lines files and loads
// them back for replay or analysis.
package trace

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/dooshek/keyhook/pkg/keyevent"
)

// Record is the serialized form of one key event.
type Record struct {
	Kind      int    `json:"kind"`
	When      int64  `json:"when"`
	Modifiers uint32 `json:"modifiers"`
	RawCode   int    `json:"rawCode"`
	KeyCode   int    `json:"keyCode"`
	KeyChar   rune   `json:"keyChar"`
	Location  int    `json:"location"`
}

// Recorder appends every event it receives to a trace file. It implements the
// hook listener interface; events may arrive from the dispatcher goroutine
// while Close is called elsewhere, so writes are serialized with a mutex.
type Recorder struct {
	mu   sync.Mutex
	file *os.File
	w    *bufio.Writer
}

// NewRecorder creates or truncates a trace file at path.
func NewRecorder(path string) (*Recorder, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create trace file: %w", err)
	}
	return &Recorder{file: f, w: bufio.NewWriter(f)}, nil
}

// HandleKeyEvent writes one event as a JSON line.
func (r *Recorder) HandleKeyEvent(ev *keyevent.KeyEvent) {
	rec := Record{
		Kind:      int(ev.Kind()),
		When:      ev.When(),
		Modifiers: ev.Modifiers(),
		RawCode:   ev.RawCode,
		KeyCode:   ev.Code,
		KeyChar:   ev.Char,
		Location:  int(ev.Location()),
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.w == nil {
		return
	}
	r.w.Write(data)
	r.w.WriteByte('\n')
}

// Close flushes buffered records and closes the trace file.
func (r *Recorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.w == nil {
		return nil
	}
	if err := r.w.Flush(); err != nil {
		r.file.Close()
		r.w = nil
		return fmt.Errorf("failed to flush trace file: %w", err)
	}
	r.w = nil
	return r.file.Close()
}

// Load reads a trace file back into events, in recorded order.
func Load(path string) ([]*keyevent.KeyEvent, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open trace file: %w", err)
	}
	defer f.Close()

	var events []*keyevent.KeyEvent
	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		if len(scanner.Bytes()) == 0 {
			continue
		}

		var rec Record
		if err := json.Unmarshal(scanner.Bytes(), &rec); err != nil {
			return nil, fmt.Errorf("invalid trace record at line %d: %w", line, err)
		}

		ev, err := keyevent.New(keyevent.EventKind(rec.Kind), rec.When, rec.Modifiers,
			rec.RawCode, rec.KeyCode, rec.KeyChar, keyevent.KeyLocation(rec.Location))
		if err != nil {
			return nil, fmt.Errorf("invalid trace record at line %d: %w", line, err)
		}
		events = append(events, ev)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read trace file: %w", err)
	}

	return events, nil
}
