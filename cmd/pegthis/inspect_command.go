package main

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"pegthis/internal/language"
	"pegthis/internal/media/ffprobe"
	"pegthis/internal/media/tracks"
)

func newInspectCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <file>",
		Short: "Show container and stream details for a media file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := resolveMediaFile(args[0])
			if err != nil {
				return err
			}
			return runInspect(cmd.Context(), ctx, path)
		},
	}
}

func runInspect(ctx context.Context, cmdCtx *commandContext, path string) error {
	result, list, err := probeMedia(ctx, cmdCtx, path)
	if err != nil {
		return err
	}

	console := cmdCtx.consoleValue()
	console.Header(filepath.Base(path), formatSummary(result)...)
	console.Print(renderTable(
		[]string{"#", "Type", "Codec", "Details", "Language"},
		trackRows(list),
		[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignLeft},
	))
	return nil
}

func formatSummary(result ffprobe.Result) []string {
	lines := make([]string, 0, 4)
	if name := result.Format.FormatName; name != "" {
		lines = append(lines, "Container: "+name)
	}
	if duration := result.DurationSeconds(); duration > 0 {
		lines = append(lines, "Duration:  "+formatDuration(duration))
	}
	if size := result.SizeBytes(); size > 0 {
		lines = append(lines, "Size:      "+humanize.Bytes(uint64(size)))
	}
	if rate := result.BitRate(); rate > 0 {
		lines = append(lines, "Bit rate:  "+humanize.SI(float64(rate), "bps"))
	}
	return lines
}

func formatDuration(seconds float64) string {
	d := time.Duration(seconds * float64(time.Second)).Round(time.Second)
	return d.String()
}

func trackRows(list []tracks.Track) [][]string {
	rows := make([][]string, 0, len(list))
	for _, track := range list {
		rows = append(rows, []string{
			fmt.Sprintf("%d", track.StreamIndex),
			string(track.Type),
			track.Codec,
			trackDetails(track),
			language.DisplayName(track.Language),
		})
	}
	return rows
}

func trackDetails(track tracks.Track) string {
	switch track.Type {
	case tracks.TypeVideo:
		detail := fmt.Sprintf("%dx%d", track.Width, track.Height)
		if track.FPS > 0 {
			detail += fmt.Sprintf(" @ %.2f fps", track.FPS)
		}
		return detail
	case tracks.TypeAudio:
		detail := fmt.Sprintf("%d ch, %d Hz", track.Channels, track.SampleRate)
		if track.BitRate > 0 {
			detail += ", " + humanize.SI(float64(track.BitRate), "bps")
		}
		return detail
	default:
		return track.Title
	}
}
