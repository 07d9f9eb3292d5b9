// Package logging constructs the structured slog logger. Logs go to a file
// under the configured log directory so the interactive terminal surface is
// never mixed with log lines.
package logging
