// Package failure defines the error markers shared by the organize, sweep and
// clean operations.
//
// Operations wrap failures with Wrap so callers can tell a configuration
// problem (abort before touching the filesystem) from a per-file problem
// (report and continue) using errors.Is. The CLI maps markers onto process
// exit codes through ExitCode.
package failure
