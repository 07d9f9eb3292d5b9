package convert

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseTimestamp validates a user-entered position and normalizes it to the
// form ffmpeg accepts. Plain seconds ("90", "12.5") and clock notation
// ("1:30", "01:02:03", "01:02:03.250") are both allowed.
func ParseTimestamp(value string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", fmt.Errorf("timestamp is empty")
	}

	if !strings.Contains(trimmed, ":") {
		seconds, err := strconv.ParseFloat(trimmed, 64)
		if err != nil || seconds < 0 {
			return "", fmt.Errorf("invalid timestamp %q", value)
		}
		return trimmed, nil
	}

	parts := strings.Split(trimmed, ":")
	if len(parts) > 3 {
		return "", fmt.Errorf("invalid timestamp %q", value)
	}
	for i, part := range parts {
		if part == "" {
			return "", fmt.Errorf("invalid timestamp %q", value)
		}
		// Only the final component may carry a fraction.
		if i < len(parts)-1 {
			n, err := strconv.Atoi(part)
			if err != nil || n < 0 {
				return "", fmt.Errorf("invalid timestamp %q", value)
			}
			continue
		}
		n, err := strconv.ParseFloat(part, 64)
		if err != nil || n < 0 {
			return "", fmt.Errorf("invalid timestamp %q", value)
		}
	}
	return trimmed, nil
}

// TimestampSeconds converts a timestamp accepted by ParseTimestamp into
// seconds.
func TimestampSeconds(value string) (float64, error) {
	normalized, err := ParseTimestamp(value)
	if err != nil {
		return 0, err
	}
	total := 0.0
	for _, part := range strings.Split(normalized, ":") {
		n, _ := strconv.ParseFloat(part, 64)
		total = total*60 + n
	}
	return total, nil
}

// CompileTrim produces a stream-copy trim of the input between the two
// positions. Both bounds must already be validated with ParseTimestamp.
func CompileTrim(inputPath, outputPath, start, end string) *CommandSpec {
	return newCommandSpec([]string{
		"-i", inputPath,
		"-ss", start,
		"-to", end,
		"-c", "copy",
		"-y", outputPath,
	})
}
