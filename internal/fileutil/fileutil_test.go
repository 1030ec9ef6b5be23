package fileutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCopyFileVerified(t *testing.T) {
	tests := []struct {
		name        string
		source      string
		placeholder string
	}{
		{name: "new target", source: "verified copy content"},
		{name: "reserved placeholder", source: "new", placeholder: "placeholder longer than source"},
		{name: "empty source", source: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			src := filepath.Join(dir, "src.bin")
			dst := filepath.Join(dir, "dst.bin")
			if err := os.WriteFile(src, []byte(tt.source), 0o600); err != nil {
				t.Fatal(err)
			}
			if tt.placeholder != "" {
				if err := os.WriteFile(dst, []byte(tt.placeholder), 0o644); err != nil {
					t.Fatal(err)
				}
			}

			if err := CopyFileVerified(src, dst); err != nil {
				t.Fatalf("CopyFileVerified: %v", err)
			}
			got, err := os.ReadFile(dst)
			if err != nil {
				t.Fatal(err)
			}
			if string(got) != tt.source {
				t.Fatalf("content mismatch: got %q, want %q", got, tt.source)
			}
			if _, err := os.Stat(src); err != nil {
				t.Fatalf("source should be left for the caller to remove: %v", err)
			}
		})
	}
}

func TestCopyFileVerifiedMissingSource(t *testing.T) {
	dir := t.TempDir()
	dst := filepath.Join(dir, "dst.bin")

	if err := CopyFileVerified(filepath.Join(dir, "nonexistent"), dst); err == nil {
		t.Fatal("expected error for missing source")
	}
	if _, err := os.Stat(dst); !os.IsNotExist(err) {
		t.Fatalf("target should not be created, err=%v", err)
	}
}
