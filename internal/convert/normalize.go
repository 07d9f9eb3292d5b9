package convert

import "strings"

// NormalizeCodecLabel reduces a UI codec selection to the token ffmpeg
// expects. Labels come in two shapes: "token (Description)" from the current
// catalog, and a legacy display form that is only the parenthesized
// description, e.g. "(SubRip)".
//
//	NormalizeCodecLabel("libx264 (H.264)") == "libx264"
//	NormalizeCodecLabel("(SubRip)") == "srt"
//	NormalizeCodecLabel("") == ""
//
// Unrecognized input passes through verbatim; validation is deferred to
// ffmpeg itself at execution time.
func NormalizeCodecLabel(label string) string {
	if label == "" {
		return label
	}

	cleaned := strings.TrimSpace(label)
	if strings.HasPrefix(cleaned, "(") && strings.HasSuffix(cleaned, ")") {
		inner := strings.ToLower(strings.TrimSpace(cleaned[1 : len(cleaned)-1]))
		switch {
		case strings.Contains(inner, "subrip"):
			return "srt"
		case inner == "ass":
			return "ass"
		case strings.Contains(inner, "mp4"):
			return "mov_text"
		default:
			return inner
		}
	}

	token, _, _ := strings.Cut(cleaned, " ")
	return strings.TrimSpace(token)
}
