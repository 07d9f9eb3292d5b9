package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"pegthis/internal/config"
	"pegthis/internal/convert"
	"pegthis/internal/fileutil"
	"pegthis/internal/history"
	"pegthis/internal/logging"
	"pegthis/internal/media/ffprobe"
	"pegthis/internal/media/tracks"
	"pegthis/internal/services/ffmpeg"
)

// resolveMediaFile expands a user-supplied path and verifies it points at a
// regular file.
func resolveMediaFile(arg string) (string, error) {
	path, err := config.ExpandPath(arg)
	if err != nil {
		return "", err
	}
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", arg, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%s is a directory, not a media file", arg)
	}
	return path, nil
}

// probeMedia inspects the file and converts the probe result into tracks.
func probeMedia(ctx context.Context, cmdCtx *commandContext, path string) (ffprobe.Result, []tracks.Track, error) {
	result, err := ffprobe.Inspect(ctx, cmdCtx.ffprobeBinary(), path)
	if err != nil {
		return ffprobe.Result{}, nil, err
	}
	list, err := tracks.Build(result)
	if err != nil {
		return ffprobe.Result{}, nil, err
	}
	return result, list, nil
}

// executeSpec runs a compiled command with a progress bar and records the
// outcome in history. Cancellation propagates as context.Canceled so the
// process exits quietly.
func executeSpec(ctx context.Context, cmdCtx *commandContext, kind, input, output string, spec *convert.CommandSpec, total time.Duration) error {
	console := cmdCtx.consoleValue()
	logger := cmdCtx.loggerValue()

	logger.Info("running ffmpeg",
		logging.String("kind", kind),
		logging.String("input", input),
		logging.String("output", output),
		logging.String("command", spec.String()))

	bar := console.StartProgress(kind, total)
	started := time.Now()
	err := cmdCtx.runner().Run(ctx, spec.Args(), func(update ffmpeg.ProgressUpdate) {
		bar.Update(update.OutTime)
	})
	bar.Finish()
	elapsed := time.Since(started)

	entry := history.Entry{
		Kind:       kind,
		InputPath:  input,
		OutputPath: output,
		Command:    spec.String(),
		Duration:   elapsed,
	}

	switch {
	case err == nil:
		entry.Outcome = history.OutcomeSuccess
		recordHistory(ctx, cmdCtx, entry)
		console.Success(fmt.Sprintf("Wrote %s in %s", output, elapsed.Round(time.Second)))
		return nil
	case errors.Is(err, context.Canceled):
		entry.Outcome = history.OutcomeCancelled
		entry.Detail = "cancelled by user"
		recordHistory(context.WithoutCancel(ctx), cmdCtx, entry)
		console.Warn("Cancelled. Output may be incomplete: " + output)
		return err
	default:
		entry.Outcome = history.OutcomeFailed
		entry.Detail = err.Error()
		recordHistory(ctx, cmdCtx, entry)
		console.Error("ffmpeg failed: " + err.Error())
		return err
	}
}

// recordHistory persists a run entry. History failures are logged, never
// surfaced to the user.
func recordHistory(ctx context.Context, cmdCtx *commandContext, entry history.Entry) {
	store, err := cmdCtx.openHistory()
	if err != nil {
		cmdCtx.loggerValue().Warn("open history store", logging.Error(err))
		return
	}
	if store == nil {
		return
	}
	defer store.Close()
	if _, err := store.Record(ctx, entry); err != nil {
		cmdCtx.loggerValue().Warn("record history entry", logging.Error(err))
	}
}

// resolveOutputPath decides where to write the result. An explicit override
// wins; otherwise an interactive session is asked, and a scripted one takes
// the suggested name. Relative paths land under the configured output
// directory and the returned path never collides with an existing file.
func resolveOutputPath(cmdCtx *commandContext, override, defaultName string) (string, error) {
	console := cmdCtx.consoleValue()
	name := override
	if name == "" {
		name = defaultName
		if console.Interactive() {
			entered, err := console.Prompt("Output file", defaultName)
			if err != nil {
				return "", err
			}
			name = entered
		}
	}
	path, err := config.ExpandPath(name)
	if err != nil {
		return "", err
	}
	if !filepath.IsAbs(path) {
		dir, err := cmdCtx.configValue().ResolveOutputDir()
		if err != nil {
			return "", err
		}
		path = filepath.Join(dir, path)
	}
	return fileutil.EnsureUnique(path), nil
}

// previewAndConfirm shows the exact command line and asks for the go-ahead.
// In non-interactive sessions the preview prints and the run proceeds.
func previewAndConfirm(cmdCtx *commandContext, spec *convert.CommandSpec) (bool, error) {
	console := cmdCtx.consoleValue()
	console.Print("")
	console.Info("Command: " + spec.String())
	if !console.Interactive() {
		return true, nil
	}
	return console.Confirm("Run this command?", true)
}
