// Package preflight provides readiness checks for the directories recupsort
// reads from and writes to.
//
// The CLI "recupsort check" command runs RunAll and renders every result.
// Mutating commands run CheckDirectoryAccess on the base directory first and
// refuse to start when it fails.
package preflight
