package testsupport

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

const exifTagModel = 0x0110

// WriteJPEG writes a width x height JPEG to path. A non-empty model is stored
// in an EXIF APP1 segment as the Model tag.
func WriteJPEG(t testing.TB, path string, width, height int, model string) {
	t.Helper()

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, solidImage(width, height), &jpeg.Options{Quality: 80}); err != nil {
		t.Fatalf("encode jpeg: %v", err)
	}
	data := buf.Bytes()
	if model != "" {
		segment := ExifSegment(model)
		spliced := make([]byte, 0, len(data)+len(segment))
		spliced = append(spliced, data[:2]...)
		spliced = append(spliced, segment...)
		spliced = append(spliced, data[2:]...)
		data = spliced
	}
	writeBytes(t, path, data)
}

// WritePNG writes a width x height PNG to path.
func WritePNG(t testing.TB, path string, width, height int) {
	t.Helper()

	var buf bytes.Buffer
	if err := png.Encode(&buf, solidImage(width, height)); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	writeBytes(t, path, buf.Bytes())
}

// ExifSegment builds a JPEG APP1 segment holding a little-endian TIFF block
// with a single IFD0 entry: the ASCII Model tag.
func ExifSegment(model string) []byte {
	value := append([]byte(model), 0)
	le := binary.LittleEndian

	tiff := []byte{'I', 'I', 0x2A, 0x00}
	tiff = le.AppendUint32(tiff, 8)
	tiff = le.AppendUint16(tiff, 1)
	tiff = le.AppendUint16(tiff, exifTagModel)
	tiff = le.AppendUint16(tiff, 2)
	tiff = le.AppendUint32(tiff, uint32(len(value)))
	if len(value) <= 4 {
		inline := make([]byte, 4)
		copy(inline, value)
		tiff = append(tiff, inline...)
		tiff = le.AppendUint32(tiff, 0)
	} else {
		const dataOffset = 8 + 2 + 12 + 4
		tiff = le.AppendUint32(tiff, dataOffset)
		tiff = le.AppendUint32(tiff, 0)
		tiff = append(tiff, value...)
	}

	payload := append([]byte("Exif\x00\x00"), tiff...)
	segment := []byte{0xFF, 0xE1}
	segment = binary.BigEndian.AppendUint16(segment, uint16(len(payload)+2))
	return append(segment, payload...)
}

func solidImage(width, height int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	fill := color.RGBA{R: 0x30, G: 0x60, B: 0x90, A: 0xFF}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, fill)
		}
	}
	return img
}

func writeBytes(t testing.TB, path string, data []byte) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
