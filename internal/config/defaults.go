package config

const (
	defaultLogDir            = "~/.local/share/pegthis/logs"
	defaultDataDir           = "~/.local/share/pegthis"
	defaultFFmpegBinary      = "ffmpeg"
	defaultFFprobeBinary     = "ffprobe"
	defaultLogFormat         = "console"
	defaultLogLevel          = "info"
	defaultHistoryMaxEntries = 500
)

func defaultMediaExtensions() []string {
	return []string{
		".mkv", ".mp4", ".avi", ".mov", ".webm", ".flv", ".wmv",
		".mp3", ".flac", ".wav", ".ogg", ".gif",
	}
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LogDir:  defaultLogDir,
			DataDir: defaultDataDir,
		},
		Tools: Tools{
			FFmpeg:  defaultFFmpegBinary,
			FFprobe: defaultFFprobeBinary,
		},
		Media: Media{
			Extensions: defaultMediaExtensions(),
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		History: History{
			Enabled:    true,
			MaxEntries: defaultHistoryMaxEntries,
		},
	}
}
