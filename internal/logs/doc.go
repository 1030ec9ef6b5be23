// Package logs reads the recupsort log file for the `recupsort log` command.
//
// Last returns the final lines of the file with bounded memory, ReadFrom
// continues from a byte offset, and Follow polls for appended lines until its
// context ends. A missing log file reads as empty.
package logs
