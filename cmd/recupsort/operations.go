package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"recupsort/internal/cleaner"
	"recupsort/internal/config"
	"recupsort/internal/organizer"
	"recupsort/internal/sweeper"
)

func runOrganize(ctx context.Context, cc *commandContext, out io.Writer) (organizer.Stats, error) {
	var stats organizer.Stats
	err := cc.runLocked(ctx, "organize", func(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
		var exclude []string
		if exe, err := os.Executable(); err == nil {
			exclude = append(exclude, exe)
		}
		var runErr error
		stats, runErr = organizer.New(logger, newEventPrinter(out)).Run(ctx, organizer.Options{
			BaseDir:     cfg.Paths.BaseDir,
			Destination: cfg.Destination(),
			Exclude:     exclude,
		})
		return runErr
	})
	if err != nil {
		return stats, err
	}
	fmt.Fprintln(out, "\nOrganize operation completed")
	fmt.Fprint(out, renderOrganizeSummary(stats))
	return stats, nil
}

func runSweep(ctx context.Context, cc *commandContext, out io.Writer, threshold sweeper.Threshold, dryRun bool) (sweeper.Result, error) {
	var result sweeper.Result
	err := cc.runLocked(ctx, "sweep", func(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
		roots, err := sweeper.Roots(cfg.Paths.BaseDir, cfg.Destination(), cfg.Thumbnails.IncludeDestination)
		if err != nil {
			return err
		}
		result, err = sweeper.New(logger, newEventPrinter(out)).Sweep(ctx, sweeper.Options{
			Roots:     roots,
			Threshold: threshold,
			DryRun:    dryRun,
		})
		return err
	})
	if err != nil {
		return result, err
	}
	fmt.Fprint(out, renderSweepSummary(result, threshold, dryRun))
	return result, nil
}

func runClean(ctx context.Context, cc *commandContext, out io.Writer) (cleaner.Result, error) {
	var result cleaner.Result
	err := cc.runLocked(ctx, "clean", func(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
		var cleanErr error
		result, cleanErr = cleaner.New(logger, newEventPrinter(out)).Clean(ctx, cfg.Paths.BaseDir)
		return cleanErr
	})
	if err != nil {
		return result, err
	}
	fmt.Fprint(out, renderCleanSummary(result))
	return result, nil
}

func configThreshold(cfg *config.Config) sweeper.Threshold {
	if cfg == nil {
		return sweeper.DefaultThreshold
	}
	return sweeper.Threshold{MaxWidth: cfg.Thumbnails.MaxWidth, MaxHeight: cfg.Thumbnails.MaxHeight}
}
