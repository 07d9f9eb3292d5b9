package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pegthis/internal/config"
)

func newRootCommand() *cobra.Command {
	var configFlag string

	ctx := newCommandContext(&configFlag)

	rootCmd := &cobra.Command{
		Use:           "pegthis [path]",
		Short:         "Interactive front-end for ffmpeg and ffprobe",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			ctx.closeLogger()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				if !ctx.consoleValue().Interactive() {
					return cmd.Help()
				}
				return runMainMenu(cmd.Context(), ctx)
			}
			return runEntryPath(cmd.Context(), ctx, args[0])
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")

	rootCmd.AddCommand(newInspectCommand(ctx))
	rootCmd.AddCommand(newTracksCommand(ctx))
	rootCmd.AddCommand(newTrimCommand(ctx))
	rootCmd.AddCommand(newExtractAudioCommand(ctx))
	rootCmd.AddCommand(newJoinCommand(ctx))
	rootCmd.AddCommand(newDoctorCommand(ctx))
	rootCmd.AddCommand(newHistoryCommand(ctx))
	rootCmd.AddCommand(newConfigCommand())

	return rootCmd
}

// runEntryPath dispatches a bare path argument: files open the per-file
// action menu, directories open the join flow.
func runEntryPath(ctx context.Context, cmdCtx *commandContext, arg string) error {
	path, err := config.ExpandPath(arg)
	if err != nil {
		return err
	}
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", arg, err)
	}
	if info.IsDir() {
		return runJoinFlow(ctx, cmdCtx, path)
	}
	console := cmdCtx.consoleValue()
	if !console.Interactive() {
		return runInspect(ctx, cmdCtx, path)
	}
	return runActionMenu(ctx, cmdCtx, path)
}
