package convert

import "fmt"

// AudioFormats lists the extraction targets offered by the audio menu.
var AudioFormats = []string{"mp3", "flac", "wav"}

// CompileExtractAudio strips the video and subtitle streams and encodes the
// audio into the requested container format.
func CompileExtractAudio(inputPath, outputPath, format string) (*CommandSpec, error) {
	var codecArgs []string
	switch format {
	case "mp3":
		codecArgs = []string{"-acodec", "libmp3lame", "-b:a", "192k"}
	case "flac":
		codecArgs = []string{"-acodec", "flac"}
	case "wav":
		codecArgs = []string{"-acodec", "pcm_s16le"}
	default:
		return nil, fmt.Errorf("unsupported audio format %q", format)
	}

	args := []string{"-i", inputPath, "-vn"}
	args = append(args, codecArgs...)
	args = append(args, "-y", outputPath)
	return newCommandSpec(args), nil
}
