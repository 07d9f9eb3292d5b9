// Package tracks models the elementary streams of a probed media file as an
// ordered track list suitable for per-track editing decisions.
package tracks
