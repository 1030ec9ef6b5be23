package textutil

import "strings"

// fileNameReplacer replaces filesystem-unsafe characters with safe alternatives.
var fileNameReplacer = strings.NewReplacer(
	"/", "-",
	"\\", "-",
	":", "-",
	"*", "-",
	"?", "",
	"\"", "",
	"<", "",
	">", "",
	"|", "",
	"\x00", "",
)

// UnknownModelDir is used when a model string sanitizes to nothing usable.
const UnknownModelDir = "unknown_model"

// SanitizeFileName replaces filesystem-unsafe characters in a filename.
// Slashes, backslashes, colons, and asterisks become dashes; other unsafe
// characters are removed. The result is trimmed of leading/trailing whitespace.
func SanitizeFileName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	return strings.TrimSpace(fileNameReplacer.Replace(name))
}

// ModelDirName turns a camera model into a single path segment. Names that
// would be empty or refer to the current or parent directory map to
// UnknownModelDir.
func ModelDirName(model string) string {
	name := SanitizeFileName(model)
	if strings.Trim(name, ".") == "" {
		return UnknownModelDir
	}
	return name
}
