package sweeper

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"strings"

	"log/slog"

	"recupsort/internal/failure"
	"recupsort/internal/logging"
	"recupsort/internal/metadata"
	"recupsort/internal/recovery"
	"recupsort/internal/report"
	"recupsort/internal/taxonomy"
)

const operation = "sweep"

// Options describes one sweep.
type Options struct {
	Roots     []string
	Threshold Threshold
	DryRun    bool
}

// Result summarizes a sweep.
type Result struct {
	// Scanned counts image files whose dimensions were read.
	Scanned int
	// Deleted counts thumbnails removed, or that would be removed on a dry run.
	Deleted int
	// Undecodable counts image files whose dimensions could not be read.
	Undecodable int
	Failed      int
}

// DimensionReader returns the pixel size of an image.
type DimensionReader func(path string) (width, height int, ok bool)

// Sweeper removes thumbnail-sized images.
type Sweeper struct {
	logger     *slog.Logger
	sink       report.Sink
	dimensions DimensionReader
}

// New constructs a sweeper. A nil sink discards events.
func New(logger *slog.Logger, sink report.Sink) *Sweeper {
	return &Sweeper{
		logger:     logging.NewComponentLogger(logger, "sweeper"),
		sink:       report.OrDiscard(sink),
		dimensions: metadata.Dimensions,
	}
}

// Roots returns the directories a sweep should cover: the scratch folders of
// base and, when includeDest is set and it exists, the organized destination.
func Roots(base, dest string, includeDest bool) ([]string, error) {
	roots, err := recovery.SourceRoots(base)
	if err != nil {
		return nil, err
	}
	if includeDest && strings.TrimSpace(dest) != "" {
		info, statErr := os.Stat(dest)
		switch {
		case statErr == nil && info.IsDir():
			roots = append(roots, dest)
		case statErr != nil && !errors.Is(statErr, fs.ErrNotExist):
			return nil, failure.Wrap(failure.ErrConfiguration, operation, "stat destination", "Cannot inspect destination "+dest, statErr)
		}
	}
	return roots, nil
}

// Sweep deletes every image under opts.Roots whose width and height are both
// strictly below the threshold. Per-file failures are counted and reported;
// the returned error is a threshold validation error or the context error.
func (s *Sweeper) Sweep(ctx context.Context, opts Options) (Result, error) {
	var result Result
	if err := opts.Threshold.Validate(); err != nil {
		return result, err
	}
	logger := logging.WithContext(ctx, s.logger)
	logger.Info("sweep started",
		logging.String("threshold", opts.Threshold.String()),
		logging.Int("roots", len(opts.Roots)),
		logging.Bool("dry_run", opts.DryRun),
	)

	for _, root := range opts.Roots {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		s.sink.Emit(report.Event{Kind: report.KindScanStart, Operation: operation, Path: root})

		err := recovery.WalkFiles(ctx, root, func(path string, info fs.FileInfo) error {
			if taxonomy.ClassOf(taxonomy.Extension(path)) != taxonomy.Image {
				return nil
			}
			s.inspect(logger, path, info, opts, &result)
			return nil
		}, func(path string, err error) {
			result.Failed++
			s.sink.Emit(report.Event{Kind: report.KindFailure, Operation: operation, Path: path, Err: err})
			logging.WarnWithContext(logger, "cannot read entry", "walk_failed",
				logging.String("path", path),
				logging.Error(err),
				logging.String(logging.FieldImpact, "entry not swept"),
			)
		})
		if err != nil {
			return result, err
		}
	}

	logger.Info("sweep completed",
		logging.Int("scanned", result.Scanned),
		logging.Int("deleted", result.Deleted),
		logging.Int("undecodable", result.Undecodable),
		logging.Int("failed", result.Failed),
	)
	return result, nil
}

func (s *Sweeper) inspect(logger *slog.Logger, path string, info fs.FileInfo, opts Options, result *Result) {
	width, height, ok := s.dimensions(path)
	if !ok {
		result.Undecodable++
		logger.Debug("image dimensions unavailable", logging.String("path", path))
		return
	}
	result.Scanned++
	if !opts.Threshold.IsThumbnail(width, height) {
		return
	}

	event := report.Event{
		Kind:      report.KindDelete,
		Operation: operation,
		Path:      path,
		Size:      info.Size(),
		Width:     width,
		Height:    height,
		DryRun:    opts.DryRun,
	}
	if !opts.DryRun {
		if err := os.Remove(path); err != nil {
			result.Failed++
			event.Kind = report.KindFailure
			event.Err = err
			s.sink.Emit(event)
			logging.WarnWithContext(logger, "thumbnail delete failed", "delete_failed",
				logging.String("path", path),
				logging.Error(err),
				logging.String(logging.FieldImpact, "thumbnail left in place"),
			)
			return
		}
	}
	result.Deleted++
	s.sink.Emit(event)
	logger.Debug("thumbnail removed",
		logging.String("path", path),
		logging.Int("width", width),
		logging.Int("height", height),
		logging.Bool("dry_run", opts.DryRun),
	)
}
