package testsupport

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"lingosub/internal/subtitle"
)

// WriteSRT renders cues to an SRT file at path, creating parent directories.
func WriteSRT(t testing.TB, path string, cues []subtitle.Cue) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := subtitle.WriteFile(path, cues); err != nil {
		t.Fatalf("write srt %s: %v", path, err)
	}
}

// WriteWordList writes a frequency list in "word count" format, most frequent
// first, matching the layout of downloaded lists.
func WriteWordList(t testing.TB, path string, words []string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	var sb strings.Builder
	for i, word := range words {
		fmt.Fprintf(&sb, "%s %d\n", word, len(words)-i)
	}
	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		t.Fatalf("write word list %s: %v", path, err)
	}
}
