package organizer

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"recupsort/internal/failure"
	"recupsort/internal/logging"
)

func TestValidatePlacement(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.mp3")
	if err := os.WriteFile(path, []byte("12345"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if err := ValidatePlacement(path, 5, logging.NewNop()); err != nil {
		t.Fatalf("expected valid placement, got %v", err)
	}
	if err := ValidatePlacement(path, 6, logging.NewNop()); !errors.Is(err, failure.ErrValidation) {
		t.Fatalf("expected validation error for size mismatch, got %v", err)
	}
	if err := ValidatePlacement(filepath.Join(dir, "missing"), 0, nil); !errors.Is(err, failure.ErrValidation) {
		t.Fatalf("expected validation error for missing file, got %v", err)
	}
	if err := ValidatePlacement("  ", 0, nil); !errors.Is(err, failure.ErrValidation) {
		t.Fatalf("expected validation error for empty path, got %v", err)
	}
}
