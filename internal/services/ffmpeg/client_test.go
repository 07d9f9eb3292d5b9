package ffmpeg

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"testing"
	"time"
)

func TestNewCLIWithBinary(t *testing.T) {
	cli := NewCLI(WithBinary("/opt/ffmpeg"))
	if cli.binary != "/opt/ffmpeg" {
		t.Fatalf("expected binary override to be applied, got %q", cli.binary)
	}
}

func TestRunRequiresArgs(t *testing.T) {
	cli := NewCLI()
	if err := cli.Run(context.Background(), nil, nil); err == nil {
		t.Fatal("expected error when argument vector is empty")
	}
}

func TestParseProgressLine(t *testing.T) {
	var update ProgressUpdate

	if parseProgressLine("out_time_ms=2500000", &update) {
		t.Fatal("out_time_ms must not complete a block")
	}
	if update.OutTime != 2500*time.Millisecond {
		t.Fatalf("unexpected out time: %v", update.OutTime)
	}

	if parseProgressLine("speed=1.25x", &update) {
		t.Fatal("speed must not complete a block")
	}
	if update.Speed != 1.25 {
		t.Fatalf("unexpected speed: %v", update.Speed)
	}

	if !parseProgressLine("progress=continue", &update) {
		t.Fatal("progress key must complete a block")
	}
	if update.Done {
		t.Fatal("continue block must not be marked done")
	}

	if !parseProgressLine("progress=end", &update) {
		t.Fatal("progress key must complete a block")
	}
	if !update.Done {
		t.Fatal("end block must be marked done")
	}

	if parseProgressLine("frame=120", &update) || parseProgressLine("garbage", &update) {
		t.Fatal("unrelated lines must be ignored")
	}
}

func stubCommand(t *testing.T, mode string, captured *[]string) {
	t.Helper()
	original := commandContext
	commandContext = func(ctx context.Context, name string, args ...string) *exec.Cmd {
		if captured != nil {
			*captured = append([]string(nil), args...)
		}
		cmd := exec.CommandContext(ctx, os.Args[0], "-test.run=TestHelperProcess")
		cmd.Env = append(os.Environ(), "GO_WANT_HELPER_PROCESS=1", "FFMPEG_HELPER_MODE="+mode)
		return cmd
	}
	t.Cleanup(func() {
		commandContext = original
	})
}

func TestRunForwardsProgress(t *testing.T) {
	var capturedArgs []string
	stubCommand(t, "success", &capturedArgs)

	var updates []ProgressUpdate
	cli := NewCLI()
	err := cli.Run(context.Background(), []string{"-i", "in.mkv", "-y", "out.mkv"}, func(u ProgressUpdate) {
		updates = append(updates, u)
	})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	joined := strings.Join(capturedArgs, " ")
	for _, flag := range []string{"-progress pipe:1", "-nostats", "-nostdin", "-i in.mkv"} {
		if !strings.Contains(joined, flag) {
			t.Fatalf("expected args to contain %q, got %v", flag, capturedArgs)
		}
	}

	if len(updates) != 2 {
		t.Fatalf("expected 2 progress updates, got %d", len(updates))
	}
	if updates[0].Done || !updates[1].Done {
		t.Fatalf("unexpected done flags: %+v", updates)
	}
	if updates[1].OutTime != 5*time.Second {
		t.Fatalf("unexpected final out time: %v", updates[1].OutTime)
	}
}

func TestRunReportsSubprocessFailure(t *testing.T) {
	stubCommand(t, "fail", nil)

	cli := NewCLI()
	err := cli.Run(context.Background(), []string{"-i", "in.mkv", "-y", "out.mkv"}, nil)
	if err == nil {
		t.Fatal("expected error for failing subprocess")
	}
	if errors.Is(err, context.Canceled) {
		t.Fatal("subprocess failure must not look like cancellation")
	}
	if !strings.Contains(err.Error(), "boom") {
		t.Fatalf("expected stderr detail in error, got %v", err)
	}
}

func TestRunSurfacesCancellation(t *testing.T) {
	stubCommand(t, "hang", nil)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(100 * time.Millisecond)
		cancel()
	}()

	cli := NewCLI()
	err := cli.Run(ctx, []string{"-i", "in.mkv", "-y", "out.mkv"}, nil)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestHelperProcess(t *testing.T) {
	if os.Getenv("GO_WANT_HELPER_PROCESS") != "1" {
		return
	}
	switch os.Getenv("FFMPEG_HELPER_MODE") {
	case "success":
		fmt.Println("out_time_ms=2500000")
		fmt.Println("speed=1.25x")
		fmt.Println("progress=continue")
		fmt.Println("out_time_ms=5000000")
		fmt.Println("speed=1.30x")
		fmt.Println("progress=end")
		os.Exit(0)
	case "fail":
		fmt.Fprintln(os.Stderr, "Error opening input: boom")
		os.Exit(1)
	case "hang":
		time.Sleep(10 * time.Second)
		os.Exit(0)
	default:
		os.Exit(0)
	}
}
