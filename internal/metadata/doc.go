// Package metadata reads the little the organizer needs to know about a
// recovered image: the camera model embedded in its EXIF block and its pixel
// dimensions.
//
// Recovered files are frequently truncated or mislabelled, so nothing here
// returns an error. A file that cannot be decoded is indistinguishable from a
// file without the requested data; callers get a boolean and move on.
package metadata
