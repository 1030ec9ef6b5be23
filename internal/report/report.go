// Package report carries the discrete events emitted by the organize, sweep
// and clean operations so a caller can render progress without the core
// knowing how.
package report

import "sync"

// Kind identifies an event type.
type Kind string

const (
	KindScanStart Kind = "scan"
	KindMove      Kind = "move"
	KindDelete    Kind = "delete"
	KindSkip      Kind = "skip"
	KindFailure   Kind = "fail"
)

// Event describes one observable step of an operation.
type Event struct {
	Kind Kind
	// Operation is "organize", "sweep" or "clean".
	Operation string
	// Path is the file or scratch root the event refers to.
	Path string
	// Target is the destination of a move.
	Target string
	// Route is a short description of why a file went where it did, such as
	// "large video" or "image with metadata (Canon EOS 80D)".
	Route  string
	Size   int64
	Width  int
	Height int
	// DryRun marks a delete that was reported but not performed.
	DryRun bool
	Err    error
}

// Sink receives events in emission order.
type Sink interface {
	Emit(Event)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(Event)

// Emit calls f(ev).
func (f SinkFunc) Emit(ev Event) { f(ev) }

// Discard drops every event.
var Discard Sink = SinkFunc(func(Event) {})

// OrDiscard returns s, or Discard when s is nil.
func OrDiscard(s Sink) Sink {
	if s == nil {
		return Discard
	}
	return s
}

// Recorder collects events in memory. It is used by tests and by callers that
// render after the fact.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

// Emit appends ev.
func (r *Recorder) Emit(ev Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

// Events returns a copy of everything recorded so far.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// Count returns how many recorded events have the given kind.
func (r *Recorder) Count(kind Kind) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, ev := range r.events {
		if ev.Kind == kind {
			n++
		}
	}
	return n
}
