// Package main hosts the recupsort CLI entrypoint and command graph.
//
// Running recupsort without a subcommand opens the interactive menu. The
// organize, sweep, clean and check subcommands expose the same operations for
// scripts. This package owns configuration resolution, logger setup, the
// session lock and all terminal rendering; the internal packages do the work
// and report back through events and result structs.
package main
