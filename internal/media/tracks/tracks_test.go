package tracks

import (
	"errors"
	"strings"
	"testing"

	"pegthis/internal/media/ffprobe"
)

func sampleResult() ffprobe.Result {
	return ffprobe.Result{
		Streams: []ffprobe.Stream{
			{Index: 0, CodecName: "h264", CodecType: "video", Width: 1280, Height: 720, AvgFrameRate: "25/1", Duration: "42.0"},
			{Index: 1, CodecName: "mjpeg", CodecType: "video", AvgFrameRate: "0/0"},
			{Index: 2, CodecName: "aac", CodecType: "audio", Channels: 2, SampleRate: "48000", BitRate: "128000", Tags: map[string]string{"language": "eng"}},
			{Index: 3, CodecName: "bin_data", CodecType: "data"},
			{Index: 5, CodecName: "subrip", CodecType: "subtitle", Tags: map[string]string{"language": "fre", "title": "Forced"}},
		},
	}
}

func TestBuildKeepsProbeOrderAndStreamIndices(t *testing.T) {
	list, err := Build(sampleResult())
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	if len(list) != 4 {
		t.Fatalf("expected 4 tracks (data stream dropped), got %d", len(list))
	}
	wantIndices := []int{0, 1, 2, 5}
	for i, track := range list {
		if track.StreamIndex != wantIndices[i] {
			t.Fatalf("track %d: expected stream index %d, got %d", i, wantIndices[i], track.StreamIndex)
		}
	}
	if list[0].Type != TypeVideo || list[2].Type != TypeAudio || list[3].Type != TypeSubtitle {
		t.Fatalf("unexpected track types: %+v", list)
	}
	if list[2].Language != "eng" {
		t.Fatalf("expected audio language eng, got %q", list[2].Language)
	}
	if list[3].Title != "Forced" {
		t.Fatalf("expected subtitle title Forced, got %q", list[3].Title)
	}
}

func TestBuildFailsWithoutUsableStreams(t *testing.T) {
	result := ffprobe.Result{Streams: []ffprobe.Stream{{Index: 0, CodecType: "attachment"}}}
	if _, err := Build(result); !errors.Is(err, ErrNoTracks) {
		t.Fatalf("expected ErrNoTracks, got %v", err)
	}
	if _, err := Build(ffprobe.Result{}); !errors.Is(err, ErrNoTracks) {
		t.Fatalf("expected ErrNoTracks for empty result, got %v", err)
	}
}

func TestDescribe(t *testing.T) {
	list, err := Build(sampleResult())
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}

	video := list[0].Describe()
	if !strings.Contains(video, "VIDEO - h264") || !strings.Contains(video, "1280x720") || !strings.Contains(video, "25.00fps") {
		t.Fatalf("unexpected video description: %q", video)
	}

	audio := list[2].Describe()
	if !strings.Contains(audio, "2ch") || !strings.Contains(audio, "48000Hz") || !strings.Contains(audio, "English") {
		t.Fatalf("unexpected audio description: %q", audio)
	}

	subtitle := list[3].Describe()
	if !strings.Contains(subtitle, "French") || !strings.Contains(subtitle, "Forced") {
		t.Fatalf("unexpected subtitle description: %q", subtitle)
	}
}

func TestCountByTypeAndHasAudio(t *testing.T) {
	list, err := Build(sampleResult())
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	v, a, s := CountByType(list)
	if v != 2 || a != 1 || s != 1 {
		t.Fatalf("unexpected counts: v=%d a=%d s=%d", v, a, s)
	}
	if !HasAudio(list) {
		t.Fatal("expected HasAudio to be true")
	}
	if HasAudio(list[:2]) {
		t.Fatal("expected HasAudio to be false for video-only slice")
	}
}
