package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// runCLI executes the command tree against in-memory output streams.
func runCLI(t *testing.T, args []string, configPath string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	if configPath != "" {
		args = append([]string{"--config", configPath}, args...)
	}
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return buf.String(), err
}

// writeTestConfig writes a minimal config pointing all state at a temp dir.
func writeTestConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := fmt.Sprintf(`[paths]
log_dir = %q
data_dir = %q

[history]
enabled = false
max_entries = 10
`, filepath.Join(dir, "logs"), filepath.Join(dir, "data"))
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func requireContains(t *testing.T, output, want string) {
	t.Helper()
	if !strings.Contains(output, want) {
		t.Fatalf("expected output to contain %q, got:\n%s", want, output)
	}
}

func TestRootRejectsMissingFile(t *testing.T) {
	configPath := writeTestConfig(t)
	_, err := runCLI(t, []string{filepath.Join(t.TempDir(), "missing.mkv")}, configPath)
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestTrimRejectsInvalidBounds(t *testing.T) {
	configPath := writeTestConfig(t)
	media := filepath.Join(t.TempDir(), "clip.mkv")
	if err := os.WriteFile(media, []byte("x"), 0o644); err != nil {
		t.Fatalf("write media stub: %v", err)
	}

	if _, err := runCLI(t, []string{"trim", media, "--start", "abc", "--end", "10"}, configPath); err == nil {
		t.Fatal("expected error for invalid start timestamp")
	}
	_, err := runCLI(t, []string{"trim", media, "--start", "0:30", "--end", "0:10"}, configPath)
	if err == nil {
		t.Fatal("expected error when end precedes start")
	}
	if !strings.Contains(err.Error(), "not after") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestJoinRequiresDirectory(t *testing.T) {
	configPath := writeTestConfig(t)
	media := filepath.Join(t.TempDir(), "clip.mkv")
	if err := os.WriteFile(media, []byte("x"), 0o644); err != nil {
		t.Fatalf("write media stub: %v", err)
	}
	if _, err := runCLI(t, []string{"join", media}, configPath); err == nil {
		t.Fatal("expected error when join target is a file")
	}
}

func TestJoinNeedsAtLeastTwoFiles(t *testing.T) {
	configPath := writeTestConfig(t)
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "only.mkv"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write media stub: %v", err)
	}
	_, err := runCLI(t, []string{"join", dir}, configPath)
	if err == nil {
		t.Fatal("expected error for single-file directory")
	}
	if !strings.Contains(err.Error(), "at least two") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestHistoryDisabledWarns(t *testing.T) {
	configPath := writeTestConfig(t)
	_, err := runCLI(t, []string{"history"}, configPath)
	if err != nil {
		t.Fatalf("history with disabled store: %v", err)
	}
}
