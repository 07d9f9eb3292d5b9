package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// IsMediaFile reports whether the path carries one of the recognized media
// extensions.
func IsMediaFile(path string, extensions []string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return false
	}
	for _, candidate := range extensions {
		if ext == candidate {
			return true
		}
	}
	return false
}

// ScanMediaFiles lists the media files directly inside dir, sorted by name.
// Entries are full paths under dir so callers can hand them to collaborators
// that resolve relative to other directories. Subdirectories are not
// descended into.
func ScanMediaFiles(dir string, extensions []string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read directory %s: %w", dir, err)
	}
	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if IsMediaFile(entry.Name(), extensions) {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}

// Stem returns the base name of the path without its extension.
func Stem(path string) string {
	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if stem == "" {
		return base
	}
	return stem
}

// SuggestOutputName derives an output file name from the input, e.g.
// SuggestOutputName("movie.mkv", "_modified") == "movie_modified.mkv".
func SuggestOutputName(inputPath, suffix string) string {
	return Stem(inputPath) + suffix + filepath.Ext(inputPath)
}

// EnsureUnique returns path unchanged when nothing exists there, otherwise a
// numbered variant ("movie_modified (2).mkv") that does not collide.
func EnsureUnique(path string) string {
	if _, err := os.Stat(path); err != nil {
		return path
	}
	dir := filepath.Dir(path)
	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(filepath.Base(path), ext)
	for i := 2; ; i++ {
		candidate := filepath.Join(dir, fmt.Sprintf("%s (%d)%s", stem, i, ext))
		if _, err := os.Stat(candidate); err != nil {
			return candidate
		}
	}
}

// WriteConcatList writes an ffmpeg concat-demuxer list naming the provided
// files, in order, to a uniquely named file under dir. Single quotes inside
// paths are escaped the way the demuxer expects.
func WriteConcatList(paths []string, dir string) (string, error) {
	if len(paths) == 0 {
		return "", fmt.Errorf("no files to join")
	}
	var b strings.Builder
	for _, path := range paths {
		escaped := strings.ReplaceAll(path, "'", `'\''`)
		fmt.Fprintf(&b, "file '%s'\n", escaped)
	}
	listPath := filepath.Join(dir, fmt.Sprintf("pegthis-concat-%s.txt", uuid.NewString()))
	if err := os.WriteFile(listPath, []byte(b.String()), 0o644); err != nil {
		return "", fmt.Errorf("write concat list: %w", err)
	}
	return listPath, nil
}
