package vocab

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Set is an immutable collection of known lowercase lemmas.
type Set struct {
	words map[string]struct{}
}

// NewSet builds a set from the given words. Words are lowercased and
// NFC-normalized so lookups match regardless of the source encoding of
// accented characters.
func NewSet(words ...string) *Set {
	set := &Set{words: make(map[string]struct{}, len(words))}
	for _, word := range words {
		if key := normalizeWord(word); key != "" {
			set.words[key] = struct{}{}
		}
	}
	return set
}

// Contains reports whether the word's lowercase normalized form is known.
func (s *Set) Contains(word string) bool {
	if s == nil {
		return false
	}
	_, ok := s.words[normalizeWord(word)]
	return ok
}

// Len returns the number of distinct known lemmas.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.words)
}

// LoadSet reads a frequency list and keeps the first size entries as the
// known vocabulary. Lines hold a word optionally followed by a count
// ("word 12345"); only the first field matters since the list is already
// ordered by descending frequency. size <= 0 keeps everything.
func LoadSet(path string, size int) (*Set, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open frequency list: %w", err)
	}
	defer file.Close()

	set := &Set{words: make(map[string]struct{}, max(size, 0))}
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if key := normalizeWord(fields[0]); key != "" {
			set.words[key] = struct{}{}
		}
		if size > 0 && len(set.words) >= size {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read frequency list: %w", err)
	}
	return set, nil
}

func normalizeWord(word string) string {
	return norm.NFC.String(strings.ToLower(strings.TrimSpace(word)))
}
