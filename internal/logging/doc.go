// Package logging assembles structured slog loggers and formatting helpers used
// across recupsort.
//
// It owns the console/JSON handlers, centralizes level and output plumbing, and
// exposes context-aware helpers so organize, sweep and clean runs tag every
// record with their run ID. The package also provides a no-op logger for tests
// and wiring code that cannot fail.
package logging
