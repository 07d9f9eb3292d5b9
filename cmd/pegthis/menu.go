package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"pegthis/internal/fileutil"
	"pegthis/internal/ui"
)

// runMainMenu is the entry flow when pegthis starts with no arguments in a
// terminal. It loops until the user quits or cancels.
func runMainMenu(ctx context.Context, cmdCtx *commandContext) error {
	console := cmdCtx.consoleValue()
	choices := []string{
		"Open a media file",
		"Join files in a directory",
		"Check environment",
		"Show history",
		"Quit",
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		console.Clear()
		console.Header("pegthis", "What would you like to do?")
		index, err := console.Select("", choices)
		if err != nil {
			if errors.Is(err, ui.ErrCancelled) || errors.Is(err, ui.ErrBack) {
				return nil
			}
			return err
		}

		switch index {
		case 0:
			err = openFileFromMenu(ctx, cmdCtx)
		case 1:
			err = openDirectoryFromMenu(ctx, cmdCtx)
		case 2:
			err = runSubcommandFromMenu(ctx, cmdCtx, "doctor")
		case 3:
			err = runSubcommandFromMenu(ctx, cmdCtx, "history")
		case 4:
			return nil
		}
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return err
			}
			console.Error(err.Error())
		}
		console.PressAnyKey()
	}
}

// openFileFromMenu picks a media file from the current directory, or accepts
// a typed path, then opens the per-file action menu.
func openFileFromMenu(ctx context.Context, cmdCtx *commandContext) error {
	console := cmdCtx.consoleValue()
	cfg := cmdCtx.configValue()

	cwd, err := os.Getwd()
	if err != nil {
		return err
	}
	files, err := fileutil.ScanMediaFiles(cwd, cfg.Media.Extensions)
	if err != nil {
		return err
	}

	var path string
	if len(files) == 0 {
		entered, err := console.Prompt("Path to a media file", "")
		if err != nil {
			if errors.Is(err, ui.ErrCancelled) {
				return nil
			}
			return err
		}
		path, err = resolveMediaFile(entered)
		if err != nil {
			return err
		}
	} else {
		choices := make([]string, 0, len(files)+1)
		for _, file := range files {
			choices = append(choices, filepath.Base(file))
		}
		choices = append(choices, "Type a path...")
		index, err := console.Select("Pick a media file", choices)
		if err != nil {
			if errors.Is(err, ui.ErrCancelled) || errors.Is(err, ui.ErrBack) {
				return nil
			}
			return err
		}
		if index == len(files) {
			entered, err := console.Prompt("Path to a media file", "")
			if err != nil {
				if errors.Is(err, ui.ErrCancelled) {
					return nil
				}
				return err
			}
			path, err = resolveMediaFile(entered)
			if err != nil {
				return err
			}
		} else {
			path = files[index]
		}
	}

	return runActionMenu(ctx, cmdCtx, path)
}

func openDirectoryFromMenu(ctx context.Context, cmdCtx *commandContext) error {
	console := cmdCtx.consoleValue()
	cwd, err := os.Getwd()
	if err != nil {
		return err
	}
	entered, err := console.Prompt("Directory to join", cwd)
	if err != nil {
		if errors.Is(err, ui.ErrCancelled) {
			return nil
		}
		return err
	}
	info, err := os.Stat(entered)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return errors.New(entered + " is not a directory")
	}
	return runJoinFlow(ctx, cmdCtx, entered)
}

// runActionMenu offers the per-file operations and loops until the user goes
// back, so several actions can be run against the same file.
func runActionMenu(ctx context.Context, cmdCtx *commandContext, path string) error {
	console := cmdCtx.consoleValue()
	choices := []string{
		"Inspect",
		"Edit tracks and convert",
		"Trim",
		"Extract audio",
		"Back",
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		console.Clear()
		console.Header(filepath.Base(path))
		index, err := console.Select("", choices)
		if err != nil {
			if errors.Is(err, ui.ErrCancelled) || errors.Is(err, ui.ErrBack) {
				return nil
			}
			return err
		}

		switch index {
		case 0:
			err = runInspect(ctx, cmdCtx, path)
		case 1:
			err = runTracksFlow(ctx, cmdCtx, path)
		case 2:
			err = runTrimFlow(ctx, cmdCtx, path, "", "", "")
		case 3:
			err = runExtractAudioFlow(ctx, cmdCtx, path, "", "")
		case 4:
			return nil
		}
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return err
			}
			console.Error(err.Error())
		}
		console.PressAnyKey()
	}
}

// runSubcommandFromMenu reuses a cobra subcommand implementation from the
// interactive menu without re-parsing flags.
func runSubcommandFromMenu(ctx context.Context, cmdCtx *commandContext, name string) error {
	switch name {
	case "doctor":
		cmd := newDoctorCommand(cmdCtx)
		cmd.SetContext(ctx)
		return cmd.RunE(cmd, nil)
	case "history":
		cmd := newHistoryCommand(cmdCtx)
		cmd.SetContext(ctx)
		return cmd.RunE(cmd, nil)
	default:
		return errors.New("unknown menu action " + name)
	}
}
