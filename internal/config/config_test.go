package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	cfg, _, exists, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected exists=false for missing file")
	}
	if cfg.Tools.FFmpeg != "ffmpeg" || cfg.Tools.FFprobe != "ffprobe" {
		t.Fatalf("unexpected tool defaults: %+v", cfg.Tools)
	}
	if !filepath.IsAbs(cfg.Paths.LogDir) {
		t.Fatalf("expected expanded log dir, got %q", cfg.Paths.LogDir)
	}
	if !cfg.History.Enabled || cfg.History.MaxEntries != 500 {
		t.Fatalf("unexpected history defaults: %+v", cfg.History)
	}
}

func TestLoadParsesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[tools]
ffmpeg = "/opt/ffmpeg/bin/ffmpeg"

[media]
extensions = ["MKV", "mp4", " .webm "]

[logging]
level = "debug"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("expected config at %q to be found, got %q exists=%v", path, resolved, exists)
	}
	if cfg.Tools.FFmpeg != "/opt/ffmpeg/bin/ffmpeg" {
		t.Fatalf("unexpected ffmpeg binary: %q", cfg.Tools.FFmpeg)
	}
	want := []string{".mkv", ".mp4", ".webm"}
	if len(cfg.Media.Extensions) != len(want) {
		t.Fatalf("unexpected extensions: %v", cfg.Media.Extensions)
	}
	for i, ext := range want {
		if cfg.Media.Extensions[i] != ext {
			t.Fatalf("extension %d: got %q, want %q", i, cfg.Media.Extensions[i], ext)
		}
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("unexpected log level: %q", cfg.Logging.Level)
	}
}

func TestLoadRejectsBadLoggingValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("[logging]\nformat = \"xml\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, _, err := Load(path); err == nil || !strings.Contains(err.Error(), "logging.format") {
		t.Fatalf("expected logging.format error, got %v", err)
	}
}

func TestCreateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := CreateSample(path); err != nil {
		t.Fatalf("CreateSample returned error: %v", err)
	}
	// The sample must itself load cleanly.
	if _, _, _, err := Load(path); err != nil {
		t.Fatalf("sample config failed to load: %v", err)
	}
}

func TestResolveOutputDirFallsBackToCwd(t *testing.T) {
	cfg := Default()
	if err := cfg.normalize(); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	dir, err := cfg.ResolveOutputDir()
	if err != nil {
		t.Fatalf("ResolveOutputDir returned error: %v", err)
	}
	wd, _ := os.Getwd()
	if dir != wd {
		t.Fatalf("expected working directory %q, got %q", wd, dir)
	}

	cfg.Paths.OutputDir = t.TempDir()
	dir, err = cfg.ResolveOutputDir()
	if err != nil {
		t.Fatalf("ResolveOutputDir returned error: %v", err)
	}
	if dir != cfg.Paths.OutputDir {
		t.Fatalf("expected configured dir %q, got %q", cfg.Paths.OutputDir, dir)
	}
}

func TestHistoryDBPath(t *testing.T) {
	cfg := Default()
	cfg.Paths.DataDir = "/data/pegthis"
	if got := cfg.HistoryDBPath(); got != filepath.Join("/data/pegthis", "history.db") {
		t.Fatalf("unexpected history db path: %q", got)
	}
}
