package subtitle

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Parse reads SRT-formatted text: blank-line-delimited blocks of an index
// line, a "start --> end" timing line, and one or more text lines. Malformed
// blocks (no timing line, or nothing after it) are discarded rather than
// failing the whole file; a debug log notes each discard when a logger is
// supplied.
func Parse(data string, logger *slog.Logger) []Cue {
	data = strings.TrimPrefix(data, "\ufeff")
	data = strings.ReplaceAll(data, "\r\n", "\n")

	var cues []Cue
	for _, block := range strings.Split(data, "\n\n") {
		cue, ok := parseBlock(block)
		if !ok {
			if logger != nil && strings.TrimSpace(block) != "" {
				logger.Debug("discarding malformed subtitle block", slog.String("block", truncate(block, 80)))
			}
			continue
		}
		cues = append(cues, cue)
	}
	return cues
}

// ParseFile reads and parses one SRT file.
func ParseFile(path string, logger *slog.Logger) ([]Cue, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read subtitle file: %w", err)
	}
	return Parse(string(data), logger), nil
}

func parseBlock(block string) (Cue, bool) {
	lines := strings.Split(block, "\n")

	timing := -1
	for i, line := range lines {
		if strings.Contains(line, "-->") {
			timing = i
			break
		}
	}
	if timing == -1 || timing == len(lines)-1 {
		return Cue{}, false
	}

	startRaw, endRaw, ok := strings.Cut(lines[timing], "-->")
	if !ok {
		return Cue{}, false
	}

	var text []string
	for _, line := range lines[timing+1:] {
		if trimmed := strings.TrimRight(line, " \t"); trimmed != "" {
			text = append(text, trimmed)
		}
	}
	if len(text) == 0 {
		return Cue{}, false
	}

	return Cue{
		Start: ParseTimestamp(startRaw),
		End:   ParseTimestamp(endRaw),
		Text:  strings.Join(text, "\n"),
	}, true
}

// Render serializes cues as SRT using each cue's Index as its display label.
// Callers are expected to have assigned sequential indices already.
func Render(w io.Writer, cues []Cue) error {
	for i, cue := range cues {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		block := fmt.Sprintf("%d\n%s --> %s\n%s\n", cue.Index, FormatTimestamp(cue.Start), FormatTimestamp(cue.End), cue.Text)
		if _, err := io.WriteString(w, block); err != nil {
			return err
		}
	}
	return nil
}

// WriteFile renders cues to an SRT file.
func WriteFile(path string, cues []Cue) error {
	var b strings.Builder
	if err := Render(&b, cues); err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write subtitle file: %w", err)
	}
	return nil
}

func truncate(s string, n int) string {
	s = strings.TrimSpace(s)
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
