package main

import (
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"pegthis/internal/history"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limitFlag int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent conversion runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.openHistory()
			if err != nil {
				return err
			}
			if store == nil {
				ctx.consoleValue().Warn("History is disabled in configuration.")
				return nil
			}
			defer store.Close()

			entries, err := store.List(cmd.Context(), limitFlag)
			if err != nil {
				return err
			}
			console := ctx.consoleValue()
			if len(entries) == 0 {
				console.Info("No history yet.")
				return nil
			}
			console.Print(renderTable(
				[]string{"When", "Kind", "Input", "Output", "Outcome", "Took"},
				historyRows(entries),
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignLeft, alignRight},
			))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limitFlag, "limit", "n", 20, "Maximum entries to show")
	return cmd
}

func historyRows(entries []history.Entry) [][]string {
	rows := make([][]string, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, []string{
			entry.CreatedAt.Local().Format("2006-01-02 15:04"),
			entry.Kind,
			filepath.Base(entry.InputPath),
			filepath.Base(entry.OutputPath),
			string(entry.Outcome),
			formatTook(entry.Duration),
		})
	}
	return rows
}

func formatTook(d time.Duration) string {
	if d <= 0 {
		return ""
	}
	return d.Round(time.Second).String()
}
