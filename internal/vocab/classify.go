package vocab

import (
	"strings"
	"unicode"
)

// IsKnown reports whether a lemma counts as known vocabulary. Direct set
// membership wins; otherwise, for languages with contraction support, the
// word is expanded through the contraction table and counts as known only
// when every component is individually known. Partial comprehension of a
// multi-word contraction does not count.
func IsKnown(word string, known *Set, lang string) bool {
	if known.Contains(word) {
		return true
	}
	table, ok := Contractions(lang)
	if !ok {
		return false
	}
	parts, ok := table[normalizeApostrophes(normalizeWord(word))]
	if !ok || len(parts) == 0 {
		return false
	}
	for _, part := range parts {
		if !known.Contains(part) {
			return false
		}
	}
	return true
}

// IsNumeric reports whether the cleaned token consists entirely of digits.
// Numbers are excluded from the unknown-word count but never translated.
func IsNumeric(word string) bool {
	word = CleanToken(word)
	if word == "" {
		return false
	}
	for _, r := range word {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// IsProperNoun reports whether a word in its sentence reads as a name.
// The rules:
//   - a lowercase word is never a proper noun
//   - a capitalized word that opens the sentence is a proper noun only if
//     its lowercase form is unknown (a known sentence-initial word is an
//     ordinary capitalized sentence start)
//   - a capitalized word anywhere else is unconditionally a proper noun
func IsProperNoun(word, sentence string, known *Set) bool {
	clean := CleanToken(word)
	if clean == "" || !startsUpper(clean) {
		return false
	}
	if clean == firstToken(sentence) {
		return !known.Contains(clean)
	}
	return true
}

// CleanToken strips inline markup and leading/trailing punctuation from a
// whitespace token, leaving the bare word. Interior punctuation such as the
// apostrophe in "don't" survives.
func CleanToken(word string) string {
	word = StripMarkup(word)
	return strings.TrimFunc(word, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// StripMarkup removes <...> and {...} spans, the inline tag styles that
// survive SRT extraction.
func StripMarkup(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	depthAngle, depthBrace := 0, 0
	for _, r := range text {
		switch r {
		case '<':
			depthAngle++
		case '>':
			if depthAngle > 0 {
				depthAngle--
			}
		case '{':
			depthBrace++
		case '}':
			if depthBrace > 0 {
				depthBrace--
			}
		default:
			if depthAngle == 0 && depthBrace == 0 {
				b.WriteRune(r)
			}
		}
	}
	return b.String()
}

func startsUpper(word string) bool {
	for _, r := range word {
		return unicode.IsUpper(r)
	}
	return false
}

// firstToken returns the sentence's first token that still contains an
// alphanumeric character after markup and punctuation stripping.
func firstToken(sentence string) string {
	for _, field := range strings.Fields(StripMarkup(sentence)) {
		if clean := strings.TrimFunc(field, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		}); clean != "" {
			return clean
		}
	}
	return ""
}

func normalizeApostrophes(word string) string {
	return strings.NewReplacer("’", "'", "‘", "'").Replace(word)
}
