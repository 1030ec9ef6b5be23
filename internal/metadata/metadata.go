package metadata

import (
	"bufio"
	"image"
	"os"
	"strings"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/rwcarlsen/goexif/exif"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// CameraModel returns the trimmed EXIF Model tag of the image at path. The
// boolean is false when the file has no EXIF block, no Model tag, a non-text
// Model value, a blank value, or cannot be decoded at all.
func CameraModel(path string) (model string, ok bool) {
	defer func() {
		// goexif indexes into tag data without bounds checks on some corrupt
		// inputs.
		if recover() != nil {
			model, ok = "", false
		}
	}()

	f, err := os.Open(path)
	if err != nil {
		return "", false
	}
	defer f.Close()

	x, err := exif.Decode(bufio.NewReader(f))
	if err != nil || x == nil {
		return "", false
	}
	tag, err := x.Get(exif.Model)
	if err != nil || tag == nil {
		return "", false
	}
	value, err := tag.StringVal()
	if err != nil {
		return "", false
	}
	value = strings.TrimSpace(strings.Trim(value, "\x00"))
	if value == "" {
		return "", false
	}
	return value, true
}

// Dimensions returns the pixel width and height recorded in the image header.
// Only the header is read. The boolean is false for unsupported formats and
// corrupt files.
func Dimensions(path string) (width, height int, ok bool) {
	defer func() {
		if recover() != nil {
			width, height, ok = 0, 0, false
		}
	}()

	f, err := os.Open(path)
	if err != nil {
		return 0, 0, false
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(bufio.NewReader(f))
	if err != nil {
		return 0, 0, false
	}
	return cfg.Width, cfg.Height, true
}
