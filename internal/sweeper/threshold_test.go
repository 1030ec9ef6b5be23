package sweeper

import (
	"errors"
	"testing"

	"recupsort/internal/failure"
)

func TestThresholdIsThumbnailStrict(t *testing.T) {
	tests := []struct {
		w, h int
		want bool
	}{
		{399, 399, true},
		{400, 399, false},
		{399, 400, false},
		{400, 400, false},
		{1, 1, true},
		{4000, 10, false},
	}
	for _, tt := range tests {
		if got := DefaultThreshold.IsThumbnail(tt.w, tt.h); got != tt.want {
			t.Errorf("IsThumbnail(%d, %d) = %v, want %v", tt.w, tt.h, got, tt.want)
		}
	}
}

func TestParseThreshold(t *testing.T) {
	got, err := ParseThreshold(" 640 ", "480")
	if err != nil {
		t.Fatalf("ParseThreshold: %v", err)
	}
	if got != (Threshold{MaxWidth: 640, MaxHeight: 480}) {
		t.Fatalf("ParseThreshold = %+v", got)
	}
}

func TestParseThresholdRejectsInvalid(t *testing.T) {
	cases := [][2]string{
		{"abc", "400"},
		{"400", "4.5"},
		{"", "400"},
		{"0", "400"},
		{"400", "-1"},
	}
	for _, c := range cases {
		if _, err := ParseThreshold(c[0], c[1]); !errors.Is(err, failure.ErrValidation) {
			t.Errorf("ParseThreshold(%q, %q) error = %v, want validation error", c[0], c[1], err)
		}
	}
}

func TestThresholdString(t *testing.T) {
	if got := DefaultThreshold.String(); got != "400x400" {
		t.Fatalf("String = %q", got)
	}
}
