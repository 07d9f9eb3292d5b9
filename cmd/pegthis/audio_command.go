package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"pegthis/internal/convert"
	"pegthis/internal/fileutil"
	"pegthis/internal/media/tracks"
	"pegthis/internal/ui"
)

func newExtractAudioCommand(ctx *commandContext) *cobra.Command {
	var formatFlag string
	var outputFlag string

	cmd := &cobra.Command{
		Use:   "extract-audio <file>",
		Short: "Extract the audio of a media file to mp3, flac, or wav",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := resolveMediaFile(args[0])
			if err != nil {
				return err
			}
			return runExtractAudioFlow(cmd.Context(), ctx, path, formatFlag, outputFlag)
		},
	}

	cmd.Flags().StringVarP(&formatFlag, "format", "f", "",
		"Audio format ("+strings.Join(convert.AudioFormats, ", ")+")")
	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Output file path")
	return cmd
}

func runExtractAudioFlow(ctx context.Context, cmdCtx *commandContext, path, format, outputOverride string) error {
	result, list, err := probeMedia(ctx, cmdCtx, path)
	if err != nil {
		return err
	}
	if !tracks.HasAudio(list) {
		return fmt.Errorf("%s has no audio track", path)
	}

	console := cmdCtx.consoleValue()
	if format == "" {
		if !console.Interactive() {
			return fmt.Errorf("--format is required without a terminal")
		}
		index, err := console.Select("Extract audio as:", convert.AudioFormats)
		if err != nil {
			if errors.Is(err, ui.ErrCancelled) || errors.Is(err, ui.ErrBack) {
				console.Warn("Extraction cancelled.")
				return nil
			}
			return err
		}
		format = convert.AudioFormats[index]
	}
	format = strings.ToLower(strings.TrimSpace(format))

	defaultName := fileutil.Stem(path) + "." + format
	output, err := resolveOutputPath(cmdCtx, outputOverride, defaultName)
	if err != nil {
		if errors.Is(err, ui.ErrCancelled) {
			console.Warn("Extraction cancelled.")
			return nil
		}
		return err
	}

	spec, err := convert.CompileExtractAudio(path, output, format)
	if err != nil {
		return err
	}

	ok, err := previewAndConfirm(cmdCtx, spec)
	if err != nil || !ok {
		if err == nil || errors.Is(err, ui.ErrCancelled) {
			console.Warn("Extraction cancelled.")
			return nil
		}
		return err
	}

	total := time.Duration(result.DurationSeconds() * float64(time.Second))
	return executeSpec(ctx, cmdCtx, "extract-audio", path, output, spec, total)
}
