// Package textutil provides filename sanitization and small generic helpers.
//
// Camera model strings read from EXIF become directory names under the
// organized destination, so they pass through SanitizeFileName and
// ModelDirName before they touch the filesystem.
package textutil
