package main

import (
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"pegthis/internal/config"
	"pegthis/internal/history"
	"pegthis/internal/logging"
	"pegthis/internal/services/ffmpeg"
	"pegthis/internal/ui"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	consoleOnce sync.Once
	console     *ui.Console

	logOnce   sync.Once
	logger    *slog.Logger
	logCloser io.Closer
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) configValue() *config.Config {
	cfg, _ := c.ensureConfig()
	return cfg
}

// consoleValue returns the shared console, constructing it on first use so
// color and TTY detection happen after configuration is resolved.
func (c *commandContext) consoleValue() *ui.Console {
	c.consoleOnce.Do(func() {
		c.console = ui.NewConsole(c.configValue())
	})
	return c.console
}

// loggerValue returns the file-backed logger, or a no-op logger when the log
// destination cannot be prepared. Log output never reaches the terminal.
func (c *commandContext) loggerValue() *slog.Logger {
	c.logOnce.Do(func() {
		logger, closer, err := logging.NewFromConfig(c.configValue())
		if err != nil {
			c.logger = logging.NewNop()
			return
		}
		c.logger = logger
		c.logCloser = closer
	})
	return c.logger
}

func (c *commandContext) closeLogger() {
	if c.logCloser != nil {
		_ = c.logCloser.Close()
	}
}

func (c *commandContext) runner() *ffmpeg.CLI {
	binary := ""
	if cfg := c.configValue(); cfg != nil {
		binary = cfg.Tools.FFmpeg
	}
	return ffmpeg.NewCLI(ffmpeg.WithBinary(binary))
}

func (c *commandContext) ffprobeBinary() string {
	if cfg := c.configValue(); cfg != nil && cfg.Tools.FFprobe != "" {
		return cfg.Tools.FFprobe
	}
	return "ffprobe"
}

// openHistory returns the history store, or nil when history is disabled in
// configuration. Callers must Close the returned store.
func (c *commandContext) openHistory() (*history.Store, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	if cfg == nil || !cfg.History.Enabled {
		return nil, nil
	}
	return history.Open(cfg)
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
