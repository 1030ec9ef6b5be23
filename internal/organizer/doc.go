// Package organizer moves recovered files out of the scratch folders and into
// a categorized destination tree.
//
// Run walks every scratch root, classifies each regular file by extension,
// reads the camera model of images, and moves the file with
// fileutil.MoveNoClobber into exactly one of:
//
//	<dest>/large_videos_1gb_plus/
//	<dest>/images_with_metadata/<model>/
//	<dest>/images_without_metadata/
//	<dest>/<ext>/
//
// Non-media files stay where they are. Per-file failures are reported through
// the event sink and counted in Stats; they never abort the run. A destination
// that resolves inside a scratch folder aborts the run before any file moves.
package organizer
