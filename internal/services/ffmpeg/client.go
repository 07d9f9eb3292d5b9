package ffmpeg

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

var commandContext = exec.CommandContext

// ProgressUpdate captures one ffmpeg progress report.
type ProgressUpdate struct {
	OutTime time.Duration
	Speed   float64
	Done    bool
}

// Runner defines conversion execution behaviour.
type Runner interface {
	Run(ctx context.Context, args []string, progress func(ProgressUpdate)) error
}

// Option configures the CLI client.
type Option func(*CLI)

// WithBinary overrides the default binary name.
func WithBinary(binary string) Option {
	return func(c *CLI) {
		if binary != "" {
			c.binary = binary
		}
	}
}

// CLI wraps the ffmpeg command-line binary.
type CLI struct {
	binary string
}

// NewCLI constructs a CLI client using defaults.
func NewCLI(opts ...Option) *CLI {
	cli := &CLI{binary: "ffmpeg"}
	for _, opt := range opts {
		opt(cli)
	}
	return cli
}

// Run executes ffmpeg with the compiled argument vector. Progress reports are
// requested on stdout via -progress pipe:1 and forwarded to the callback as
// they arrive. Cancelling the context aborts the subprocess and surfaces
// context.Canceled so callers can tell a user abort apart from a conversion
// failure.
func (c *CLI) Run(ctx context.Context, args []string, progress func(ProgressUpdate)) error {
	if len(args) == 0 {
		return errors.New("ffmpeg arguments required")
	}

	full := append([]string{"-hide_banner", "-nostdin", "-loglevel", "error", "-progress", "pipe:1", "-nostats"}, args...)
	cmd := commandContext(ctx, c.binary, full...)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("stdout pipe: %w", err)
	}
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start ffmpeg: %w", err)
	}

	var current ProgressUpdate
	scanner := bufio.NewScanner(stdout)
	for scanner.Scan() {
		if !parseProgressLine(scanner.Text(), &current) {
			continue
		}
		if progress != nil {
			progress(current)
		}
	}
	scanErr := scanner.Err()

	if err := cmd.Wait(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		detail := strings.TrimSpace(stderr.String())
		if detail != "" {
			return fmt.Errorf("ffmpeg failed: %w: %s", err, tail(detail, 512))
		}
		return fmt.Errorf("ffmpeg failed: %w", err)
	}
	if scanErr != nil {
		return fmt.Errorf("read ffmpeg progress: %w", scanErr)
	}
	return nil
}

// parseProgressLine interprets one key=value line of -progress output and
// folds it into update. It reports true when the line completes a progress
// block (the "progress=" key closes each block).
func parseProgressLine(line string, update *ProgressUpdate) bool {
	key, value, found := strings.Cut(strings.TrimSpace(line), "=")
	if !found {
		return false
	}
	value = strings.TrimSpace(value)
	switch key {
	case "out_time_ms", "out_time_us":
		// Both keys report microseconds.
		if micros, err := strconv.ParseInt(value, 10, 64); err == nil && micros >= 0 {
			update.OutTime = time.Duration(micros) * time.Microsecond
		}
		return false
	case "speed":
		trimmed := strings.TrimSuffix(value, "x")
		if speed, err := strconv.ParseFloat(trimmed, 64); err == nil && speed >= 0 {
			update.Speed = speed
		}
		return false
	case "progress":
		update.Done = value == "end"
		return true
	default:
		return false
	}
}

func tail(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[len(s)-max:]
}

// Version reports the first line of `ffmpeg -version`.
func (c *CLI) Version(ctx context.Context) (string, error) {
	cmd := commandContext(ctx, c.binary, "-version")
	output, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("ffmpeg version: %w", err)
	}
	line, _, _ := strings.Cut(strings.TrimSpace(string(output)), "\n")
	return strings.TrimSpace(line), nil
}

var _ Runner = (*CLI)(nil)
