// Package history records executed ffmpeg commands in a local SQLite
// database so users can review what the tool ran and how it ended.
package history
