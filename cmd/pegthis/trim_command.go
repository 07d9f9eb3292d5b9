package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"pegthis/internal/convert"
	"pegthis/internal/fileutil"
	"pegthis/internal/ui"
)

func newTrimCommand(ctx *commandContext) *cobra.Command {
	var startFlag string
	var endFlag string
	var outputFlag string

	cmd := &cobra.Command{
		Use:   "trim <file>",
		Short: "Cut a section out of a media file without re-encoding",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := resolveMediaFile(args[0])
			if err != nil {
				return err
			}
			return runTrimFlow(cmd.Context(), ctx, path, startFlag, endFlag, outputFlag)
		},
	}

	cmd.Flags().StringVar(&startFlag, "start", "", "Start position (seconds or HH:MM:SS)")
	cmd.Flags().StringVar(&endFlag, "end", "", "End position (seconds or HH:MM:SS)")
	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Output file path")
	return cmd
}

func runTrimFlow(ctx context.Context, cmdCtx *commandContext, path, start, end, outputOverride string) error {
	console := cmdCtx.consoleValue()

	start, startSeconds, err := resolveTimestamp(cmdCtx, "Start position", start)
	if err != nil {
		if errors.Is(err, ui.ErrCancelled) {
			console.Warn("Trim cancelled.")
			return nil
		}
		return err
	}
	end, endSeconds, err := resolveTimestamp(cmdCtx, "End position", end)
	if err != nil {
		if errors.Is(err, ui.ErrCancelled) {
			console.Warn("Trim cancelled.")
			return nil
		}
		return err
	}
	if endSeconds <= startSeconds {
		return fmt.Errorf("end position %s is not after start position %s", end, start)
	}

	output, err := resolveOutputPath(cmdCtx, outputOverride, fileutil.SuggestOutputName(path, "_trimmed"))
	if err != nil {
		if errors.Is(err, ui.ErrCancelled) {
			console.Warn("Trim cancelled.")
			return nil
		}
		return err
	}

	spec := convert.CompileTrim(path, output, start, end)
	ok, err := previewAndConfirm(cmdCtx, spec)
	if err != nil || !ok {
		if err == nil || errors.Is(err, ui.ErrCancelled) {
			console.Warn("Trim cancelled.")
			return nil
		}
		return err
	}

	total := time.Duration((endSeconds - startSeconds) * float64(time.Second))
	return executeSpec(ctx, cmdCtx, "trim", path, output, spec, total)
}

// resolveTimestamp validates a flag value, or prompts for one until it
// parses. Prompting reports what was wrong before asking again.
func resolveTimestamp(cmdCtx *commandContext, label, value string) (string, float64, error) {
	console := cmdCtx.consoleValue()
	if value != "" || !console.Interactive() {
		normalized, err := convert.ParseTimestamp(value)
		if err != nil {
			return "", 0, err
		}
		seconds, err := convert.TimestampSeconds(normalized)
		if err != nil {
			return "", 0, err
		}
		return normalized, seconds, nil
	}
	for {
		entered, err := console.Prompt(label+" (seconds or HH:MM:SS)", "")
		if err != nil {
			return "", 0, err
		}
		normalized, err := convert.ParseTimestamp(entered)
		if err != nil {
			console.Error(err.Error())
			continue
		}
		seconds, err := convert.TimestampSeconds(normalized)
		if err != nil {
			console.Error(err.Error())
			continue
		}
		return normalized, seconds, nil
	}
}
