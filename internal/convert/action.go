package convert

import "fmt"

// Action is the per-track decision applied during compilation.
type Action int

const (
	// ActionKeep copies the track into the output untouched.
	ActionKeep Action = iota
	// ActionRemove drops the track from the output.
	ActionRemove
	// ActionConvert re-encodes the track with the decision's codec.
	ActionConvert
)

// Decision pairs an action with its target codec. Codec carries the raw UI
// selection label and is only meaningful for ActionConvert; it is normalized
// during compilation, not here.
type Decision struct {
	Action Action
	Codec  string
}

// Plan maps container stream indices to decisions. Tracks without an entry
// default to ActionKeep. Keying by stream index rather than list position keeps
// decisions attached to the right track even if the list is rebuilt between
// edits and compilation.
type Plan map[int]Decision

// Resolve returns the decision for a stream index, defaulting to keep.
func (p Plan) Resolve(streamIndex int) Decision {
	if p == nil {
		return Decision{Action: ActionKeep}
	}
	decision, ok := p[streamIndex]
	if !ok {
		return Decision{Action: ActionKeep}
	}
	return decision
}

// Keep marks the stream to be copied unchanged.
func (p Plan) Keep(streamIndex int) {
	p[streamIndex] = Decision{Action: ActionKeep}
}

// Remove marks the stream to be dropped.
func (p Plan) Remove(streamIndex int) {
	p[streamIndex] = Decision{Action: ActionRemove}
}

// Convert marks the stream for re-encoding with the given UI codec label.
func (p Plan) Convert(streamIndex int, codecLabel string) {
	p[streamIndex] = Decision{Action: ActionConvert, Codec: codecLabel}
}

// Summary renders the decision for track listings, e.g. "[CONVERT: libopus]".
func (d Decision) Summary() string {
	switch d.Action {
	case ActionRemove:
		return "[REMOVE]"
	case ActionConvert:
		codec := d.Codec
		if codec == "" {
			codec = "unknown"
		}
		return fmt.Sprintf("[CONVERT: %s]", codec)
	default:
		return "[KEEP]"
	}
}
