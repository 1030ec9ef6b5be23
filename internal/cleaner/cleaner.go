// Package cleaner empties the scratch folders left behind by a recovery run.
package cleaner

import (
	"context"
	"io/fs"
	"os"

	"log/slog"

	"recupsort/internal/logging"
	"recupsort/internal/recovery"
	"recupsort/internal/report"
)

const operation = "clean"

// Result summarizes a clean.
type Result struct {
	Roots        int
	Deleted      int
	DeletedBytes int64
	Failed       int
}

// Cleaner deletes every file under the scratch folders of a base directory.
// Directories are left in place.
type Cleaner struct {
	logger *slog.Logger
	sink   report.Sink
	remove func(string) error
}

// New constructs a cleaner. A nil sink discards events.
func New(logger *slog.Logger, sink report.Sink) *Cleaner {
	return &Cleaner{
		logger: logging.NewComponentLogger(logger, "cleaner"),
		sink:   report.OrDiscard(sink),
		remove: os.Remove,
	}
}

// Clean removes all regular files below every scratch folder of base. Each
// failed deletion is reported and counted; the rest continue. The returned
// error is a configuration error for an unreadable base or the context error.
func (c *Cleaner) Clean(ctx context.Context, base string) (Result, error) {
	var result Result
	logger := logging.WithContext(ctx, c.logger)

	roots, err := recovery.SourceRoots(base)
	if err != nil {
		return result, err
	}
	result.Roots = len(roots)
	logger.Info("clean started", logging.String("base_dir", base), logging.Int("scratch_folders", len(roots)))

	for _, root := range roots {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		c.sink.Emit(report.Event{Kind: report.KindScanStart, Operation: operation, Path: root})

		err := recovery.WalkFiles(ctx, root, func(path string, info fs.FileInfo) error {
			if err := c.remove(path); err != nil {
				c.fail(logger, path, err, &result)
				return nil
			}
			result.Deleted++
			result.DeletedBytes += info.Size()
			c.sink.Emit(report.Event{Kind: report.KindDelete, Operation: operation, Path: path, Size: info.Size()})
			return nil
		}, func(path string, err error) {
			c.fail(logger, path, err, &result)
		})
		if err != nil {
			return result, err
		}
	}

	logger.Info("clean completed",
		logging.Int("deleted", result.Deleted),
		logging.Int64("deleted_bytes", result.DeletedBytes),
		logging.Int("failed", result.Failed),
	)
	return result, nil
}

func (c *Cleaner) fail(logger *slog.Logger, path string, err error, result *Result) {
	result.Failed++
	c.sink.Emit(report.Event{Kind: report.KindFailure, Operation: operation, Path: path, Err: err})
	logging.WarnWithContext(logger, "scratch file delete failed", "delete_failed",
		logging.String("path", path),
		logging.Error(err),
		logging.String(logging.FieldImpact, "file left in scratch folder"),
	)
}
