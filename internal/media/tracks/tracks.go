package tracks

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"pegthis/internal/language"
	"pegthis/internal/media/ffprobe"
)

// Type identifies the kind of elementary stream a track carries.
type Type string

const (
	TypeVideo    Type = "video"
	TypeAudio    Type = "audio"
	TypeSubtitle Type = "subtitle"
)

// ErrNoTracks is returned when the probed file contains no usable streams.
var ErrNoTracks = errors.New("no tracks found in media file")

// Track is one elementary stream of a probed media file. StreamIndex is the
// container's own global stream index; it is assigned by ffprobe and never
// renumbered here, so gaps and interleaving from the source container survive.
type Track struct {
	StreamIndex int
	Type        Type
	Codec       string

	// Video
	Width  int
	Height int
	FPS    float64

	// Audio
	Channels   int
	SampleRate int
	BitRate    int64

	// Audio and subtitle
	Language string

	// Subtitle
	Title string

	// Video and audio
	Duration float64
}

// Build converts a probe result into the ordered track list. Tracks keep probe
// order; stream types other than video, audio, and subtitle (attachments, data
// streams) are dropped. Returns ErrNoTracks when nothing usable remains.
func Build(result ffprobe.Result) ([]Track, error) {
	list := make([]Track, 0, len(result.Streams))
	for _, stream := range result.Streams {
		kind, ok := streamType(stream.CodecType)
		if !ok {
			continue
		}
		track := Track{
			StreamIndex: stream.Index,
			Type:        kind,
			Codec:       stream.CodecName,
			Duration:    stream.DurationSeconds(),
			Language:    language.ExtractFromTags(stream.Tags),
		}
		switch kind {
		case TypeVideo:
			track.Width = stream.Width
			track.Height = stream.Height
			track.FPS = stream.FrameRate()
		case TypeAudio:
			track.Channels = stream.Channels
			track.SampleRate = stream.SampleRateHz()
			track.BitRate = stream.BitRateBPS()
		case TypeSubtitle:
			track.Title = strings.TrimSpace(stream.Tags["title"])
		}
		list = append(list, track)
	}
	if len(list) == 0 {
		return nil, ErrNoTracks
	}
	return list, nil
}

func streamType(codecType string) (Type, bool) {
	switch strings.ToLower(strings.TrimSpace(codecType)) {
	case "video":
		return TypeVideo, true
	case "audio":
		return TypeAudio, true
	case "subtitle":
		return TypeSubtitle, true
	default:
		return "", false
	}
}

// Describe renders a one-line summary of the track for menu listings.
func (t Track) Describe() string {
	base := fmt.Sprintf("%s - %s", strings.ToUpper(string(t.Type)), t.Codec)
	switch t.Type {
	case TypeVideo:
		return fmt.Sprintf("%s | %dx%d | %s | %s", base, t.Width, t.Height, t.describeFPS(), t.describeDuration())
	case TypeAudio:
		return fmt.Sprintf("%s | %dch | %dHz | %s | %s | %s",
			base, t.Channels, t.SampleRate, t.describeBitRate(), t.describeDuration(), language.DisplayName(t.Language))
	default:
		summary := fmt.Sprintf("%s | %s", base, language.DisplayName(t.Language))
		if t.Title != "" {
			summary += " | " + t.Title
		}
		return summary
	}
}

func (t Track) describeFPS() string {
	if t.FPS <= 0 {
		return "unknown fps"
	}
	return fmt.Sprintf("%.2ffps", t.FPS)
}

func (t Track) describeDuration() string {
	if t.Duration <= 0 {
		return "unknown length"
	}
	return fmt.Sprintf("%.1fs", t.Duration)
}

func (t Track) describeBitRate() string {
	if t.BitRate <= 0 {
		return "unknown rate"
	}
	return humanize.SI(float64(t.BitRate), "bps")
}

// CountByType returns how many tracks of each type the list contains.
func CountByType(list []Track) (video, audio, subtitle int) {
	for _, track := range list {
		switch track.Type {
		case TypeVideo:
			video++
		case TypeAudio:
			audio++
		case TypeSubtitle:
			subtitle++
		}
	}
	return video, audio, subtitle
}

// HasAudio reports whether the list contains at least one audio track.
func HasAudio(list []Track) bool {
	for _, track := range list {
		if track.Type == TypeAudio {
			return true
		}
	}
	return false
}
