// Package sweeper deletes recovered images whose pixel dimensions fall below
// a threshold, on the assumption that they are embedded thumbnails.
//
// Only the image header is read. Files whose dimensions cannot be decoded are
// left alone. Deletion is permanent unless Options.DryRun is set.
package sweeper
