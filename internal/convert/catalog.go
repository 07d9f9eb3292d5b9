package convert

import (
	"fmt"

	"pegthis/internal/media/tracks"
)

// CodecOption is one selectable target codec for a track type.
type CodecOption struct {
	Token       string
	Description string
}

// Label renders the option the way menus display it, e.g. "libx264 (H.264)".
// The bare copy token has no description.
func (o CodecOption) Label() string {
	if o.Description == "" {
		return o.Token
	}
	return fmt.Sprintf("%s (%s)", o.Token, o.Description)
}

var catalog = map[tracks.Type][]CodecOption{
	tracks.TypeVideo: {
		{Token: "libx264", Description: "H.264"},
		{Token: "libx265", Description: "H.265/HEVC"},
		{Token: "libvpx-vp9", Description: "VP9"},
		{Token: "libaom-av1", Description: "AV1"},
		{Token: "mpeg4", Description: "MPEG-4 Part 2"},
		{Token: "copy"},
	},
	tracks.TypeAudio: {
		{Token: "aac", Description: "AAC"},
		{Token: "libmp3lame", Description: "MP3"},
		{Token: "libopus", Description: "Opus"},
		{Token: "libvorbis", Description: "Vorbis"},
		{Token: "flac", Description: "FLAC"},
		{Token: "copy"},
	},
	tracks.TypeSubtitle: {
		{Token: "srt", Description: "SubRip"},
		{Token: "ass", Description: "Advanced SubStation Alpha"},
		{Token: "mov_text", Description: "MP4 timed text"},
		{Token: "copy"},
	},
}

// CodecOptions returns the ordered catalog for a track type.
func CodecOptions(kind tracks.Type) []CodecOption {
	options := catalog[kind]
	out := make([]CodecOption, len(options))
	copy(out, options)
	return out
}

// CodecLabels returns the display labels for a track type, in catalog order.
func CodecLabels(kind tracks.Type) []string {
	options := catalog[kind]
	labels := make([]string, 0, len(options))
	for _, option := range options {
		labels = append(labels, option.Label())
	}
	return labels
}

// DefaultCodec returns the first catalog entry for a track type.
func DefaultCodec(kind tracks.Type) CodecOption {
	options := catalog[kind]
	if len(options) == 0 {
		return CodecOption{Token: "copy"}
	}
	return options[0]
}
