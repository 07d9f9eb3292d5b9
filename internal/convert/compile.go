package convert

import (
	"fmt"
	"strings"

	"pegthis/internal/media/tracks"
)

// CommandSpec is a compiled ffmpeg invocation: an immutable, ordered argument
// vector without the binary name. Compiling the same inputs always yields an
// identical vector.
type CommandSpec struct {
	args []string
}

func newCommandSpec(args []string) *CommandSpec {
	return &CommandSpec{args: args}
}

// Args returns a copy of the argument vector, beginning with the input clause
// and ending with the output path.
func (s *CommandSpec) Args() []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s.args...)
}

// String renders the full command line for preview and logging.
func (s *CommandSpec) String() string {
	if s == nil {
		return ""
	}
	return "ffmpeg " + strings.Join(s.args, " ")
}

// typeLetter is the ffmpeg stream specifier letter for a track type.
func typeLetter(kind tracks.Type) string {
	switch kind {
	case tracks.TypeVideo:
		return "v"
	case tracks.TypeAudio:
		return "a"
	default:
		return "s"
	}
}

// Compile maps the action plan over the track list and produces the remux
// command. Surviving tracks are selected with one -map per track, grouped
// video, then audio, then subtitle, each group preserving the original track
// order. Per-output-stream options are keyed by compacted output-local
// indices: removed tracks leave no gaps. Returns nil when no track survives,
// which callers must treat as "nothing to do".
func Compile(list []tracks.Track, plan Plan, inputPath, outputPath string) *CommandSpec {
	var (
		maps = map[tracks.Type][]string{}
		opts = map[tracks.Type][]string{}
		next = map[tracks.Type]int{}
	)

	for _, track := range list {
		decision := plan.Resolve(track.StreamIndex)
		if decision.Action == ActionRemove {
			continue
		}

		codec := ""
		if decision.Action == ActionConvert {
			codec = NormalizeCodecLabel(decision.Codec)
		}

		index := next[track.Type]
		maps[track.Type] = append(maps[track.Type], fmt.Sprintf("0:%d", track.StreamIndex))
		opts[track.Type] = append(opts[track.Type], streamOptions(track.Type, index, codec)...)
		next[track.Type] = index + 1
	}

	order := []tracks.Type{tracks.TypeVideo, tracks.TypeAudio, tracks.TypeSubtitle}

	survivors := 0
	for _, kind := range order {
		survivors += len(maps[kind])
	}
	if survivors == 0 {
		return nil
	}

	args := make([]string, 0, 2+survivors*4)
	args = append(args, "-i", inputPath)
	for _, kind := range order {
		for _, selector := range maps[kind] {
			args = append(args, "-map", selector)
		}
	}
	for _, kind := range order {
		args = append(args, opts[kind]...)
	}
	args = append(args, "-y", outputPath)
	return newCommandSpec(args)
}

// streamOptions emits the codec and quality flags for one surviving output
// stream. An empty codec means the track is kept, which behaves exactly like
// converting to the literal "copy".
func streamOptions(kind tracks.Type, outputIndex int, codec string) []string {
	letter := typeLetter(kind)
	key := func(name string) string {
		return fmt.Sprintf("-%s:%s:%d", name, letter, outputIndex)
	}

	lower := strings.ToLower(codec)
	if codec == "" || lower == "copy" {
		return []string{key("c"), "copy"}
	}

	switch kind {
	case tracks.TypeVideo:
		args := []string{key("c"), codec}
		switch lower {
		case "libx264":
			args = append(args, key("crf"), "23", key("preset"), "medium", key("pix_fmt"), "yuv420p")
		case "libx265":
			args = append(args, key("crf"), "28", key("preset"), "medium")
		}
		return args
	case tracks.TypeAudio:
		args := []string{key("c"), codec}
		switch lower {
		case "aac", "libmp3lame", "libfdk_aac", "libvorbis":
			args = append(args, key("b"), "192k")
		case "libopus":
			args = append(args, key("b"), "160k")
		}
		return args
	default:
		if strings.Contains(lower, "subrip") {
			lower = "srt"
		}
		return []string{key("c"), lower}
	}
}
