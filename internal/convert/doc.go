// Package convert turns per-track editing decisions into ffmpeg argument
// vectors. The compiler is a pure function over the probed track list and the
// action plan; it performs no I/O and knows nothing about terminals or
// subprocesses. Companion builders cover the simpler trim, concat, and audio
// extraction commands so every ffmpeg invocation in the tool flows through
// one CommandSpec type.
package convert
