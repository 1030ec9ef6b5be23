package recovery

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/cases"

	"recupsort/internal/failure"
)

const (
	// ScratchPrefix is the folder prefix PhotoRec uses for recovered output.
	ScratchPrefix = "recup_dir."
	// DefaultDestinationName is the folder created under the base directory
	// when no destination is configured.
	DefaultDestinationName = "organized"
)

// IsScratchName reports whether a directory name follows the scratch-folder
// convention. Matching is case-insensitive.
func IsScratchName(name string) bool {
	folded := cases.Fold().String(strings.TrimSpace(name))
	return strings.HasPrefix(folded, ScratchPrefix)
}

// SourceRoots lists the top-level directories of base that match the scratch
// convention, sorted by name. Nested matches are not returned.
func SourceRoots(base string) ([]string, error) {
	entries, err := os.ReadDir(base)
	if err != nil {
		return nil, failure.Wrap(failure.ErrConfiguration, "scan", "read base directory", fmt.Sprintf("Cannot list %s", base), err)
	}
	var roots []string
	for _, entry := range entries {
		if !IsScratchName(entry.Name()) {
			continue
		}
		path := filepath.Join(base, entry.Name())
		if !isDir(entry, path) {
			continue
		}
		roots = append(roots, path)
	}
	sort.Strings(roots)
	return roots, nil
}

// DefaultDestination returns base/organized.
func DefaultDestination(base string) string {
	return filepath.Join(base, DefaultDestinationName)
}

// FileVisitor receives every regular file found by WalkFiles.
type FileVisitor func(path string, info fs.FileInfo) error

// WalkErrorHandler receives entries the walk could not read. The walk skips
// the entry and continues.
type WalkErrorHandler func(path string, err error)

// WalkFiles visits every regular file beneath root depth-first in lexical
// order. Unreadable entries are handed to onErr and skipped. The context is
// checked before each file; a cancelled context stops the walk and its error
// is returned. Errors returned by visit stop the walk.
//
// A root that is a symlink to a directory is followed; reported paths stay
// under root. Symlinks below root are not followed.
func WalkFiles(ctx context.Context, root string, visit FileVisitor, onErr WalkErrorHandler) error {
	walkRoot, err := filepath.EvalSymlinks(root)
	if err != nil {
		if onErr != nil {
			onErr(root, err)
		}
		return nil
	}
	return filepath.WalkDir(walkRoot, func(path string, d fs.DirEntry, err error) error {
		if walkRoot != root {
			if rel, relErr := filepath.Rel(walkRoot, path); relErr == nil {
				path = filepath.Join(root, rel)
			}
		}
		if err != nil {
			if onErr != nil {
				onErr(path, err)
			}
			if d != nil && d.IsDir() && path != filepath.Clean(root) {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}
		if ctx != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
		}
		info, infoErr := d.Info()
		if infoErr != nil {
			if onErr != nil {
				onErr(path, infoErr)
			}
			return nil
		}
		return visit(path, info)
	})
}

// ValidateDestination rejects a destination that resolves to a path inside
// any scratch root: either one of roots or any scratch-named top-level entry
// of base. Symlinks in the existing part of each path are resolved first.
func ValidateDestination(base, dest string, roots []string) error {
	if strings.TrimSpace(dest) == "" {
		return failure.Wrap(failure.ErrConfiguration, "organize", "validate destination", "Destination directory is empty", nil)
	}
	resolvedDest, err := resolvePath(dest)
	if err != nil {
		return failure.Wrap(failure.ErrConfiguration, "organize", "validate destination", fmt.Sprintf("Cannot resolve %s", dest), err)
	}

	candidates := append([]string{}, roots...)
	if strings.TrimSpace(base) != "" {
		if discovered, err := SourceRoots(base); err == nil {
			candidates = append(candidates, discovered...)
		}
	}
	for _, root := range candidates {
		resolvedRoot, err := resolvePath(root)
		if err != nil {
			continue
		}
		if within(resolvedRoot, resolvedDest) {
			return failure.Wrap(
				failure.ErrConfiguration,
				"organize",
				"validate destination",
				fmt.Sprintf("Destination %s is inside scratch folder %s; choose a directory outside recup_dir.*", dest, root),
				nil,
			)
		}
	}
	return nil
}

func within(root, path string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}

// resolvePath makes path absolute and resolves symlinks in its longest
// existing prefix, so destinations that do not exist yet can be compared.
func resolvePath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	existing := abs
	var rest []string
	for {
		if _, err := os.Lstat(existing); err == nil {
			break
		} else if !errors.Is(err, fs.ErrNotExist) {
			return "", err
		}
		parent := filepath.Dir(existing)
		if parent == existing {
			return abs, nil
		}
		rest = append([]string{filepath.Base(existing)}, rest...)
		existing = parent
	}
	resolved, err := filepath.EvalSymlinks(existing)
	if err != nil {
		return "", err
	}
	return filepath.Join(append([]string{resolved}, rest...)...), nil
}

func isDir(entry fs.DirEntry, path string) bool {
	if entry.IsDir() {
		return true
	}
	if entry.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
