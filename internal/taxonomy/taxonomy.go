// Package taxonomy classifies recovered files by extension into the media
// categories used for routing.
package taxonomy

import (
	"path/filepath"
	"strings"
)

// Class is the media category derived from a file extension.
type Class int

const (
	Other Class = iota
	Video
	Image
	Audio
	Archive
)

func (c Class) String() string {
	switch c {
	case Video:
		return "video"
	case Image:
		return "image"
	case Audio:
		return "audio"
	case Archive:
		return "archive"
	default:
		return "other"
	}
}

var extensionClasses = map[string]Class{
	"mp4":  Video,
	"mov":  Video,
	"mkv":  Video,
	"avi":  Video,
	"webm": Video,
	"3gp":  Video,
	"mpg":  Video,
	"mpeg": Video,

	"jpg":  Image,
	"jpeg": Image,
	"png":  Image,
	"heic": Image,
	"heif": Image,
	"webp": Image,
	"bmp":  Image,
	"tiff": Image,

	"mp3":  Audio,
	"m4a":  Audio,
	"aac":  Audio,
	"ogg":  Audio,
	"opus": Audio,
	"wav":  Audio,
	"flac": Audio,
	"amr":  Audio,

	"zip": Archive,
	"rar": Archive,
}

// Extension returns the lower-cased extension of path without the leading
// dot. A name without an extension yields "". Leading dots belong to the
// stem, so ".mp3" has no extension.
func Extension(path string) string {
	name := filepath.Base(path)
	ext := filepath.Ext(name)
	if strings.Trim(strings.TrimSuffix(name, ext), ".") == "" {
		return ""
	}
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// ClassOf maps a normalized extension (see Extension) to its class.
func ClassOf(ext string) Class {
	if class, ok := extensionClasses[ext]; ok {
		return class
	}
	return Other
}

// Classify derives the extension and class of path in one call.
func Classify(path string) (string, Class) {
	ext := Extension(path)
	return ext, ClassOf(ext)
}

// IsMedia reports whether ext belongs to any routed category.
func IsMedia(ext string) bool {
	return ClassOf(ext) != Other
}

// Extensions returns the extensions registered for class, in no particular
// order.
func Extensions(class Class) []string {
	var out []string
	for ext, c := range extensionClasses {
		if c == class {
			out = append(out, ext)
		}
	}
	return out
}
