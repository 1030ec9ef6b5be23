package fileutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"syscall"
)

// MoveNoClobber moves src into dir, creating dir if needed, and returns the
// final path. When dir already holds a file with the same name the move uses
// name_1.ext, name_2.ext, ... and takes the first free slot.
//
// A slot is claimed with an exclusive create before the source is renamed onto
// it, so two movers can never pick the same name and an existing file is never
// replaced. Cross-device moves fall back to a verified copy followed by removal
// of the source.
func MoveNoClobber(src, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create destination %s: %w", dir, err)
	}

	target, err := reserveName(dir, filepath.Base(src))
	if err != nil {
		return "", err
	}

	renameErr := os.Rename(src, target)
	if renameErr == nil {
		return target, nil
	}

	var linkErr *os.LinkError
	if errors.As(renameErr, &linkErr) && errors.Is(linkErr.Err, syscall.EXDEV) {
		if err := CopyFileVerified(src, target); err != nil {
			_ = os.Remove(target)
			return "", fmt.Errorf("copy across devices: %w", err)
		}
		if err := os.Remove(src); err != nil {
			return target, fmt.Errorf("remove source after copy: %w", err)
		}
		return target, nil
	}

	_ = os.Remove(target)
	return "", fmt.Errorf("move %s: %w", filepath.Base(src), renameErr)
}

// CandidateName returns the name tried on the given attempt: the original
// name for attempt 0, then stem_N.ext.
func CandidateName(name string, attempt int) string {
	if attempt == 0 {
		return name
	}
	stem, ext := splitName(name)
	return fmt.Sprintf("%s_%d%s", stem, attempt, ext)
}

func reserveName(dir, name string) (string, error) {
	for attempt := 0; ; attempt++ {
		candidate := filepath.Join(dir, CandidateName(name, attempt))
		f, err := os.OpenFile(candidate, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if err == nil {
			if closeErr := f.Close(); closeErr != nil {
				_ = os.Remove(candidate)
				return "", closeErr
			}
			return candidate, nil
		}
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		return "", fmt.Errorf("reserve %s: %w", candidate, err)
	}
}

// splitName splits a file name into stem and extension the way a user reads
// it: a leading dot belongs to the stem, so ".profile" has no extension.
func splitName(name string) (string, string) {
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	if strings.Trim(stem, ".") == "" {
		return name, ""
	}
	return stem, ext
}
