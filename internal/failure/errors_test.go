package failure_test

import (
	"errors"
	"strings"
	"testing"

	"recupsort/internal/failure"
)

func TestWrapIncludesContext(t *testing.T) {
	base := errors.New("boom")
	err := failure.Wrap(failure.ErrTransient, "organize", "move", "failed", base)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, failure.ErrTransient) {
		t.Fatalf("expected marker to be retained, got %v", err)
	}
	if !errors.Is(err, base) {
		t.Fatalf("expected wrapped error to contain base error, got %v", err)
	}
	msg := err.Error()
	for _, fragment := range []string{"organize", "move", "failed"} {
		if !strings.Contains(msg, fragment) {
			t.Fatalf("expected %q in error string %q", fragment, msg)
		}
	}
}

func TestWrapNilMarkerDefaultsToTransient(t *testing.T) {
	err := failure.Wrap(nil, "", "", "", nil)
	if !errors.Is(err, failure.ErrTransient) {
		t.Fatalf("expected transient marker, got %v", err)
	}
	if !strings.Contains(err.Error(), "operation failure") {
		t.Fatalf("expected fallback detail, got %q", err.Error())
	}
}

func TestExitCodeMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, 0},
		{"configuration", failure.Wrap(failure.ErrConfiguration, "organize", "validate", "bad dest", nil), 2},
		{"validation", failure.Wrap(failure.ErrValidation, "threshold", "parse", "not a number", nil), 3},
		{"transient", failure.Wrap(failure.ErrTransient, "clean", "remove", "denied", errors.New("eperm")), 1},
		{"plain", errors.New("other"), 1},
	}
	for _, tc := range cases {
		if got := failure.ExitCode(tc.err); got != tc.want {
			t.Fatalf("%s: exit code = %d, want %d", tc.name, got, tc.want)
		}
	}
}

func TestIsFatal(t *testing.T) {
	if !failure.IsFatal(failure.Wrap(failure.ErrConfiguration, "organize", "", "", nil)) {
		t.Fatal("configuration errors should be fatal")
	}
	if failure.IsFatal(failure.Wrap(failure.ErrTransient, "organize", "", "", nil)) {
		t.Fatal("transient errors should not be fatal")
	}
}
