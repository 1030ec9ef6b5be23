// Package fileutil moves recovered files into their destination folders
// without ever overwriting an existing file.
package fileutil
