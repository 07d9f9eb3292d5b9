package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"pegthis/internal/config"
	"pegthis/internal/convert"
	"pegthis/internal/fileutil"
	"pegthis/internal/ui"
)

func newJoinCommand(ctx *commandContext) *cobra.Command {
	var outputFlag string

	cmd := &cobra.Command{
		Use:   "join <directory>",
		Short: "Concatenate the media files in a directory without re-encoding",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.ExpandPath(args[0])
			if err != nil {
				return err
			}
			info, err := os.Stat(path)
			if err != nil {
				return fmt.Errorf("open %s: %w", args[0], err)
			}
			if !info.IsDir() {
				return fmt.Errorf("%s is not a directory", args[0])
			}
			return runJoinFlowWithOutput(cmd.Context(), ctx, path, outputFlag)
		},
	}

	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Output file path")
	return cmd
}

// runJoinFlow concatenates every media file in the directory, in name order,
// using the concat demuxer. All inputs are expected to share a codec layout;
// ffmpeg reports the mismatch otherwise.
func runJoinFlow(ctx context.Context, cmdCtx *commandContext, dir string) error {
	return runJoinFlowWithOutput(ctx, cmdCtx, dir, "")
}

func runJoinFlowWithOutput(ctx context.Context, cmdCtx *commandContext, dir, outputOverride string) error {
	cfg := cmdCtx.configValue()
	console := cmdCtx.consoleValue()

	// The concat list is written to the temp dir, so the entries referencing
	// the inputs must not depend on the process working directory.
	dir, err := filepath.Abs(dir)
	if err != nil {
		return err
	}

	files, err := fileutil.ScanMediaFiles(dir, cfg.Media.Extensions)
	if err != nil {
		return err
	}
	if len(files) < 2 {
		return fmt.Errorf("need at least two media files in %s to join, found %d", dir, len(files))
	}

	console.Header("Joining "+dir, fmt.Sprintf("%d files, in name order:", len(files)))
	for i, file := range files {
		console.Printf("  %2d. %s", i+1, filepath.Base(file))
	}

	if console.Interactive() {
		ok, err := console.Confirm("Join these files?", true)
		if err != nil {
			if errors.Is(err, ui.ErrCancelled) {
				console.Warn("Join cancelled.")
				return nil
			}
			return err
		}
		if !ok {
			console.Warn("Join cancelled.")
			return nil
		}
	}

	defaultName := filepath.Base(dir) + "_joined" + filepath.Ext(files[0])
	output, err := resolveOutputPath(cmdCtx, outputOverride, defaultName)
	if err != nil {
		if errors.Is(err, ui.ErrCancelled) {
			console.Warn("Join cancelled.")
			return nil
		}
		return err
	}

	listPath, err := fileutil.WriteConcatList(files, os.TempDir())
	if err != nil {
		return err
	}
	defer os.Remove(listPath)

	spec := convert.CompileConcat(listPath, output)
	ok, err := previewAndConfirm(cmdCtx, spec)
	if err != nil || !ok {
		if err == nil || errors.Is(err, ui.ErrCancelled) {
			console.Warn("Join cancelled.")
			return nil
		}
		return err
	}

	// Total length is unknown without probing every input; the bar runs in
	// spinner mode.
	return executeSpec(ctx, cmdCtx, "join", dir, output, spec, 0)
}
