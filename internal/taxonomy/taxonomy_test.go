package taxonomy

import (
	"sort"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		path      string
		wantExt   string
		wantClass Class
	}{
		{"/r/IMG_0001.JPG", "jpg", Image},
		{"f123.jpeg", "jpeg", Image},
		{"clip.MP4", "mp4", Video},
		{"movie.3gp", "3gp", Video},
		{"song.Opus", "opus", Audio},
		{"voice.amr", "amr", Audio},
		{"backup.RAR", "rar", Archive},
		{"notes.txt", "txt", Other},
		{"README", "", Other},
		{"archive.tar.gz", "gz", Other},
		{"/r/.mp3", "", Other},
		{"..JPG", "", Other},
		{"/r/.hidden.mp3", "mp3", Audio},
	}
	for _, tc := range tests {
		ext, class := Classify(tc.path)
		if ext != tc.wantExt || class != tc.wantClass {
			t.Fatalf("Classify(%q) = (%q, %s), want (%q, %s)", tc.path, ext, class, tc.wantExt, tc.wantClass)
		}
	}
}

func TestIsMediaExcludesOther(t *testing.T) {
	if IsMedia("txt") {
		t.Fatal("txt should not be media")
	}
	if !IsMedia("flac") {
		t.Fatal("flac should be media")
	}
	if IsMedia("") {
		t.Fatal("empty extension should not be media")
	}
}

func TestExtensionsPartition(t *testing.T) {
	want := map[Class][]string{
		Video:   {"3gp", "avi", "mkv", "mov", "mp4", "mpeg", "mpg", "webm"},
		Image:   {"bmp", "heic", "heif", "jpeg", "jpg", "png", "tiff", "webp"},
		Audio:   {"aac", "amr", "flac", "m4a", "mp3", "ogg", "opus", "wav"},
		Archive: {"rar", "zip"},
	}
	for class, exts := range want {
		got := Extensions(class)
		sort.Strings(got)
		if len(got) != len(exts) {
			t.Fatalf("%s: got %v want %v", class, got, exts)
		}
		for i := range exts {
			if got[i] != exts[i] {
				t.Fatalf("%s: got %v want %v", class, got, exts)
			}
		}
	}
}

func TestClassString(t *testing.T) {
	if Video.String() != "video" || Other.String() != "other" || Class(42).String() != "other" {
		t.Fatal("unexpected class labels")
	}
}
