package report

import (
	"errors"
	"testing"
)

func TestRecorderCounts(t *testing.T) {
	var rec Recorder
	rec.Emit(Event{Kind: KindScanStart, Path: "recup_dir.1"})
	rec.Emit(Event{Kind: KindMove, Path: "a.jpg"})
	rec.Emit(Event{Kind: KindMove, Path: "b.jpg"})
	rec.Emit(Event{Kind: KindFailure, Path: "c.jpg", Err: errors.New("denied")})

	if got := rec.Count(KindMove); got != 2 {
		t.Fatalf("move count = %d", got)
	}
	events := rec.Events()
	if len(events) != 4 {
		t.Fatalf("events = %d", len(events))
	}
	events[0].Path = "mutated"
	if rec.Events()[0].Path != "recup_dir.1" {
		t.Fatal("Events should return a copy")
	}
}

func TestOrDiscard(t *testing.T) {
	OrDiscard(nil).Emit(Event{Kind: KindMove})

	called := false
	sink := OrDiscard(SinkFunc(func(Event) { called = true }))
	sink.Emit(Event{Kind: KindDelete})
	if !called {
		t.Fatal("expected wrapped sink to be used")
	}
}
