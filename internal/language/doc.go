// Package language maps ISO 639-2 codes reported by ffprobe stream tags to
// human-readable names for track listings.
package language
