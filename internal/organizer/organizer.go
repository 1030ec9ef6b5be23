package organizer

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"log/slog"

	"recupsort/internal/fileutil"
	"recupsort/internal/logging"
	"recupsort/internal/metadata"
	"recupsort/internal/recovery"
	"recupsort/internal/report"
	"recupsort/internal/taxonomy"
)

const operation = "organize"

// Options describes one organize run.
type Options struct {
	// BaseDir holds the scratch folders.
	BaseDir string
	// Roots overrides scratch-folder discovery under BaseDir when non-nil.
	Roots []string
	// Destination defaults to <BaseDir>/organized.
	Destination string
	// Exclude lists files that must never be moved, such as the running
	// executable.
	Exclude []string
}

// Organizer routes recovered files into the destination tree.
type Organizer struct {
	logger    *slog.Logger
	sink      report.Sink
	readModel ModelReader
	validate  func(finalPath string, size int64, logger *slog.Logger) error
}

// New constructs an organizer. A nil sink discards events.
func New(logger *slog.Logger, sink report.Sink) *Organizer {
	return &Organizer{
		logger:    logging.NewComponentLogger(logger, "organizer"),
		sink:      report.OrDiscard(sink),
		readModel: metadata.CameraModel,
		validate:  ValidatePlacement,
	}
}

// Run moves every media file below the scratch roots into the destination and
// returns the statistics for this run. Per-file problems are counted, not
// returned. The returned error is a configuration error raised before any
// move, or the context error when the run was interrupted.
func (o *Organizer) Run(ctx context.Context, opts Options) (Stats, error) {
	stats := newStats()
	logger := logging.WithContext(ctx, o.logger)

	roots := opts.Roots
	if roots == nil {
		discovered, err := recovery.SourceRoots(opts.BaseDir)
		if err != nil {
			return stats, err
		}
		roots = discovered
	}
	dest := strings.TrimSpace(opts.Destination)
	if dest == "" {
		dest = recovery.DefaultDestination(opts.BaseDir)
	}
	if err := recovery.ValidateDestination(opts.BaseDir, dest, roots); err != nil {
		return stats, err
	}

	excluded := statAll(opts.Exclude)
	logger.Info("organize started",
		logging.String("destination", dest),
		logging.Int("scratch_folders", len(roots)),
	)

	for _, root := range roots {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		o.sink.Emit(report.Event{Kind: report.KindScanStart, Operation: operation, Path: root})
		logger.Info("scanning scratch folder", logging.String("root", root))

		err := recovery.WalkFiles(ctx, root, func(path string, info os.FileInfo) error {
			if isExcluded(info, excluded) {
				logger.Debug("skipping excluded file", logging.String("path", path))
				return nil
			}
			o.place(logger, dest, path, info, &stats)
			return nil
		}, func(path string, err error) {
			stats.Failed++
			o.sink.Emit(report.Event{Kind: report.KindFailure, Operation: operation, Path: path, Err: err})
			logging.WarnWithContext(logger, "cannot read entry", "walk_failed",
				logging.String("path", path),
				logging.Error(err),
				logging.String(logging.FieldImpact, "entry left in place"),
			)
		})
		if err != nil {
			return stats, err
		}
	}

	logger.Info("organize completed",
		logging.Int("moved", stats.Moved),
		logging.Int64("moved_bytes", stats.MovedBytes),
		logging.Int("no_metadata", stats.NoMetadata),
		logging.Int("failed", stats.Failed),
		logging.Int("skipped", stats.Skipped),
	)
	return stats, nil
}

func (o *Organizer) place(logger *slog.Logger, dest, path string, info os.FileInfo, stats *Stats) {
	ext, class := taxonomy.Classify(path)
	if !taxonomy.IsMedia(ext) {
		stats.Skipped++
		o.sink.Emit(report.Event{Kind: report.KindSkip, Operation: operation, Path: path, Size: info.Size()})
		logger.Debug("skipping non-media file", logging.String("path", path))
		return
	}

	file := MediaFile{Path: path, Ext: ext, Class: class, Size: info.Size()}
	route := RouteFor(file, o.readModel)
	target, err := fileutil.MoveNoClobber(path, filepath.Join(dest, route.Dir))
	impact := "file left in scratch folder"
	if err == nil {
		if err = o.validate(target, file.Size, logger); err != nil {
			impact = "file moved but failed verification"
		}
	}
	if err != nil {
		stats.Failed++
		o.sink.Emit(report.Event{
			Kind:      report.KindFailure,
			Operation: operation,
			Path:      path,
			Target:    target,
			Route:     route.Label(),
			Size:      file.Size,
			Err:       err,
		})
		logging.WarnWithContext(logger, "move failed", "move_failed",
			logging.String("path", path),
			logging.String("route", route.Label()),
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "check destination permissions and free space"),
			logging.String(logging.FieldImpact, impact),
		)
		return
	}

	stats.record(file, route)
	o.sink.Emit(report.Event{
		Kind:      report.KindMove,
		Operation: operation,
		Path:      path,
		Target:    target,
		Route:     route.Label(),
		Size:      file.Size,
	})
	logger.Debug("moved file",
		logging.String("path", path),
		logging.String("target", target),
		logging.String("route", route.Label()),
	)
}

func statAll(paths []string) []os.FileInfo {
	var infos []os.FileInfo
	for _, p := range paths {
		if strings.TrimSpace(p) == "" {
			continue
		}
		if info, err := os.Stat(p); err == nil {
			infos = append(infos, info)
		}
	}
	return infos
}

func isExcluded(info os.FileInfo, excluded []os.FileInfo) bool {
	for _, ex := range excluded {
		if os.SameFile(info, ex) {
			return true
		}
	}
	return false
}
