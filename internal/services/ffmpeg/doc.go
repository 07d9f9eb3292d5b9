// Package ffmpeg runs the external ffmpeg binary and streams its progress
// reports back to the caller. The binary is an opaque collaborator: compiled
// argument vectors go in, a success/failure/cancelled outcome comes back.
package ffmpeg
