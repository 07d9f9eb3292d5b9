package main

import (
	"context"
	"errors"
	"fmt"
	"time"
	"unicode"

	"github.com/spf13/cobra"

	"pegthis/internal/convert"
	"pegthis/internal/fileutil"
	"pegthis/internal/media/tracks"
	"pegthis/internal/ui"
)

func newTracksCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "tracks <file>",
		Short: "Edit track actions and convert a media file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := resolveMediaFile(args[0])
			if err != nil {
				return err
			}
			return runTracksFlow(cmd.Context(), ctx, path)
		},
	}
}

// runTracksFlow drives the full edit-preview-run cycle: probe the file, let
// the user mark each track keep, remove, or convert, then compile and run the
// resulting ffmpeg command.
func runTracksFlow(ctx context.Context, cmdCtx *commandContext, path string) error {
	result, list, err := probeMedia(ctx, cmdCtx, path)
	if err != nil {
		return err
	}

	console := cmdCtx.consoleValue()
	plan := convert.Plan{}
	editor := &trackEditor{console: console, tracks: list, plan: plan}
	if err := editor.run(); err != nil {
		if errors.Is(err, ui.ErrBack) || errors.Is(err, ui.ErrCancelled) {
			console.Warn("No changes made.")
			return nil
		}
		return err
	}

	if survivingTracks(list, plan) == 0 {
		console.Warn("Every track is marked for removal; nothing to write.")
		return nil
	}

	output, err := resolveOutputPath(cmdCtx, "", fileutil.SuggestOutputName(path, "_modified"))
	if err != nil {
		if errors.Is(err, ui.ErrCancelled) {
			console.Warn("No changes made.")
			return nil
		}
		return err
	}

	spec := convert.Compile(list, plan, path, output)
	if spec == nil {
		console.Warn("Every track is marked for removal; nothing to write.")
		return nil
	}

	ok, err := previewAndConfirm(cmdCtx, spec)
	if err != nil {
		if errors.Is(err, ui.ErrCancelled) {
			console.Warn("No changes made.")
			return nil
		}
		return err
	}
	if !ok {
		console.Warn("No changes made.")
		return nil
	}

	total := time.Duration(result.DurationSeconds() * float64(time.Second))
	return executeSpec(ctx, cmdCtx, "convert", path, output, spec, total)
}

func survivingTracks(list []tracks.Track, plan convert.Plan) int {
	count := 0
	for _, track := range list {
		if plan.Resolve(track.StreamIndex).Action != convert.ActionRemove {
			count++
		}
	}
	return count
}

// trackEditor owns the action table while the user edits it. Decisions are
// keyed by container stream index, so reordering the display never reassigns
// an action to a different stream.
type trackEditor struct {
	console *ui.Console
	tracks  []tracks.Track
	plan    convert.Plan
	cursor  int
}

func (e *trackEditor) run() error {
	if !e.console.Interactive() {
		return e.runMenus()
	}
	for {
		e.render()
		event, err := e.console.ReadKey()
		if err != nil {
			return err
		}
		switch event.Key {
		case ui.KeyUp:
			if e.cursor > 0 {
				e.cursor--
			}
		case ui.KeyDown:
			if e.cursor < len(e.tracks)-1 {
				e.cursor++
			}
		case ui.KeyEnter:
			return nil
		case ui.KeyLeft:
			return ui.ErrBack
		case ui.KeyEscape, ui.KeyCtrlC:
			return ui.ErrCancelled
		case ui.KeyRune:
			switch unicode.ToLower(event.Rune) {
			case 'k':
				e.plan.Keep(e.current().StreamIndex)
			case 'r':
				e.plan.Remove(e.current().StreamIndex)
			case 'c':
				if err := e.pickCodec(e.current()); err != nil {
					if errors.Is(err, ui.ErrBack) {
						continue
					}
					return err
				}
			case 'q':
				return ui.ErrCancelled
			}
		}
	}
}

func (e *trackEditor) current() tracks.Track {
	return e.tracks[e.cursor]
}

func (e *trackEditor) render() {
	e.console.Clear()
	e.console.Header("Track editor",
		"K keep | R remove | C convert | Enter run | Left back | Esc cancel")
	for i, track := range e.tracks {
		marker := "  "
		if i == e.cursor {
			marker = "> "
		}
		e.console.Print(marker + e.describe(track))
	}
}

func (e *trackEditor) describe(track tracks.Track) string {
	return fmt.Sprintf("%s %s", e.plan.Resolve(track.StreamIndex).Summary(), track.Describe())
}

// pickCodec offers the codec catalog for the track's type. Choosing a codec
// marks the track for conversion; backing out leaves the decision unchanged.
func (e *trackEditor) pickCodec(track tracks.Track) error {
	labels := convert.CodecLabels(track.Type)
	index, err := e.console.Select("Convert "+string(track.Type)+" track to:", labels)
	if err != nil {
		return err
	}
	e.plan.Convert(track.StreamIndex, labels[index])
	return nil
}

// runMenus is the line-based fallback used when no terminal is attached to
// drive the key loop.
func (e *trackEditor) runMenus() error {
	for {
		choices := make([]string, 0, len(e.tracks)+2)
		for _, track := range e.tracks {
			choices = append(choices, e.describe(track))
		}
		choices = append(choices, "Run with these actions", "Cancel")

		index, err := e.console.Select("Select a track to change", choices)
		if err != nil {
			return err
		}
		switch index {
		case len(e.tracks):
			return nil
		case len(e.tracks) + 1:
			return ui.ErrCancelled
		}

		track := e.tracks[index]
		action, err := e.console.Select("Action for "+track.Describe(),
			[]string{"Keep", "Remove", "Convert", "Back"})
		if err != nil {
			if errors.Is(err, ui.ErrBack) {
				continue
			}
			return err
		}
		switch action {
		case 0:
			e.plan.Keep(track.StreamIndex)
		case 1:
			e.plan.Remove(track.StreamIndex)
		case 2:
			if err := e.pickCodec(track); err != nil && !errors.Is(err, ui.ErrBack) {
				return err
			}
		}
	}
}
