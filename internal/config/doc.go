// Package config loads, normalizes, and validates recupsort configuration.
//
// It supplies defaults, expands user paths (including tilde shortcuts), and
// reads an optional TOML file. Paths come back absolute so the organizer,
// sweeper and cleaner can compare them safely against scratch folders.
package config
