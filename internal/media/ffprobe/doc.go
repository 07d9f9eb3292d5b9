// Package ffprobe wraps the ffprobe binary and decodes its JSON output into
// typed container and stream metadata.
package ffprobe
