// Package recovery knows the on-disk layout left behind by PhotoRec.
//
// PhotoRec writes recovered files into numbered scratch folders named
// "recup_dir.N" directly beneath the working directory. This package matches
// those names case-insensitively, lists them as source roots, walks them
// depth-first, and rejects destinations that would land inside one of them
// (the organizer would otherwise rescan its own output).
package recovery
