// Package main hosts the pegthis CLI entrypoint and command graph.
//
// The Cobra-based command tree surfaces media inspection, the interactive
// track editor, trimming, joining, and audio extraction on top of the
// internal packages. It centralizes configuration resolution, console
// construction, and structured logging setup so subcommands can focus on
// user experience instead of wiring.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or menus here.
package main
