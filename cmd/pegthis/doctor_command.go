package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"pegthis/internal/deps"
)

func newDoctorCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check that required external tools are available",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			console := ctx.consoleValue()

			console.Header("Environment check")
			statuses := deps.CheckBinaries(deps.Requirements(cfg))
			for _, status := range statuses {
				if status.Available {
					line := fmt.Sprintf("%-8s %s", status.Name, status.Command)
					if status.Name == "FFmpeg" {
						if version, err := ctx.runner().Version(cmd.Context()); err == nil {
							line += "  (" + version + ")"
						}
					}
					console.Success(line)
				} else if status.Optional {
					console.Warn(fmt.Sprintf("%-8s %s", status.Name, status.Detail))
				} else {
					console.Error(fmt.Sprintf("%-8s %s", status.Name, status.Detail))
				}
			}

			outputDir := cfg.Paths.OutputDir
			if outputDir == "" {
				outputDir = "(current directory)"
			}
			console.Print("")
			console.Info("Output dir:  " + outputDir)
			console.Info("Log dir:     " + cfg.Paths.LogDir)
			if cfg.History.Enabled {
				console.Info("History db:  " + cfg.HistoryDBPath())
			} else {
				console.Info("History:     disabled")
			}

			if missing := deps.MissingRequired(statuses); len(missing) > 0 {
				return fmt.Errorf("missing required tools: %s", strings.Join(missing, ", "))
			}
			return nil
		},
	}
}
