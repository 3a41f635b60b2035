package fusion

import (
	"context"
	"log/slog"
	"strings"
	"unicode"
	"unicode/utf8"

	"lingosub/internal/lemma"
	"lingosub/internal/logging"
	"lingosub/internal/subtitle"
	"lingosub/internal/vocab"
)

// Translator converts one word between languages. The engine issues calls
// one at a time and blocks until each resolves; per-call timeouts are the
// collaborator's responsibility.
type Translator interface {
	Translate(ctx context.Context, word, source, target, context string) (string, error)
}

// Lemmatizer reduces lines to lemma tokens positionally aligned with each
// line's whitespace tokens.
type Lemmatizer interface {
	Lemmatize(ctx context.Context, lang string, lines []string) ([][]string, error)
}

// DefaultContextWindow is how many neighboring cues on each side feed the
// context string for inline translation.
const DefaultContextWindow = 2

// Input carries everything one fusion run needs. Target and Native must
// already be overlap-merged, each in chronological order.
type Input struct {
	Target []subtitle.Cue
	Native []subtitle.Cue

	Known          *vocab.Set
	Language       string
	NativeLanguage string

	// InlineTranslation enables the single-unknown-word translation path.
	// It only takes effect when Translator is non-nil.
	InlineTranslation bool
	Translator        Translator

	// Lemmatizer may be nil, in which case surface words stand in for
	// their own lemmas.
	Lemmatizer Lemmatizer

	// ContextWindow overrides DefaultContextWindow when positive.
	ContextWindow int
}

// Counters tallies decision outcomes across one run.
type Counters struct {
	Kept              int
	Replaced          int
	Translated        int
	TranslationErrors int
}

// Result is the output of one fusion run. Cues carry display indices 1..N
// in emission order; replacement spans can make that order non-monotonic in
// start time, and it is preserved as emitted.
type Result struct {
	Cues          []subtitle.Cue
	Decisions     []Decision
	Counters      Counters
	WordFrequency map[string]int
}

// Engine runs fusion decisions. One engine may serve many runs; all mutable
// state lives in the run.
type Engine struct {
	logger *slog.Logger
}

// New creates an engine. logger may be nil.
func New(logger *slog.Logger) *Engine {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Engine{logger: logger}
}

// Fuse classifies every target cue and assembles the hybrid track. It never
// fails the run: translation errors downgrade to replace-or-keep and missing
// native coverage downgrades to keep, so the returned error is always nil
// today and reserved for future contract changes.
func (e *Engine) Fuse(ctx context.Context, in Input) (Result, error) {
	res := Result{WordFrequency: make(map[string]int)}
	if len(in.Target) == 0 {
		return res, nil
	}

	lemmas, aligned := e.lemmatizeAll(ctx, in)

	window := in.ContextWindow
	if window <= 0 {
		window = DefaultContextWindow
	}

	// Consumed cues were already folded into an emitted output cue.
	// Processing is strictly sequential because any iteration may mark
	// later cues consumed.
	consumed := make([]bool, len(in.Target))

	for i, cue := range in.Target {
		if consumed[i] {
			continue
		}

		if !aligned[i] {
			consumed[i] = true
			e.emit(&res, cue, Decision{Kind: DecisionKeptFallback, Cue: cue, Reason: ReasonLemmatizationUnavailable})
			res.Counters.Kept++
			continue
		}

		unknown := unknownWords(cue, lemmas[i], in.Known, in.Language)

		if len(unknown) == 0 {
			consumed[i] = true
			e.emit(&res, cue, Decision{Kind: DecisionKept, Cue: cue})
			res.Counters.Kept++
			continue
		}

		if len(unknown) == 1 && in.InlineTranslation && in.Translator != nil {
			word := unknown[0]
			contextText := contextWindow(in.Target, i, window)
			translation, err := in.Translator.Translate(ctx, word, in.Language, in.NativeLanguage, contextText)
			if err == nil && translation != "" {
				consumed[i] = true
				out := subtitle.Cue{Start: cue.Start, End: cue.End, Text: insertInline(cue.Text, word, translation)}
				e.emit(&res, out, Decision{Kind: DecisionTranslatedInline, Cue: cue, Word: word, Translation: translation})
				res.Counters.Translated++
				res.WordFrequency[strings.ToLower(word)]++
				continue
			}

			res.Counters.TranslationErrors++
			e.logger.Warn("inline translation failed",
				logging.String("word", word),
				logging.Error(err),
			)

			// Single-cue fallback: replace from the native track if it
			// covers this one cue, otherwise keep. Deliberately consumes
			// only the triggering cue, unlike the multi-cue path below.
			consumed[i] = true
			native := overlapping(in.Native, cue.Start, cue.End)
			if len(native) > 0 {
				out := subtitle.Cue{Start: cue.Start, End: cue.End, Text: subtitle.JoinTexts(native)}
				e.emit(&res, out, Decision{Kind: DecisionReplaced, Cue: cue, Group: []subtitle.Cue{cue}, NativeText: out.Text})
				res.Counters.Replaced++
			} else {
				e.emit(&res, cue, Decision{Kind: DecisionKeptFallback, Cue: cue, Reason: ReasonTranslationFailed})
				res.Counters.Kept++
			}
			continue
		}

		// Multi-cue replace: too many unknowns, or inline translation is
		// off. Build the combined native span, then fold in every
		// unconsumed target cue that span covers, so differently segmented
		// tracks reconcile without losing or duplicating time coverage.
		native := overlapping(in.Native, cue.Start, cue.End)
		if len(native) == 0 {
			consumed[i] = true
			e.emit(&res, cue, Decision{Kind: DecisionKeptFallback, Cue: cue, Reason: ReasonNoNativeOverlap})
			res.Counters.Kept++
			continue
		}

		spanStart, spanEnd := span(native)
		var group []subtitle.Cue
		for j := range in.Target {
			if consumed[j] {
				continue
			}
			candidate := in.Target[j]
			if subtitle.Overlaps(candidate.Start, candidate.End, spanStart, spanEnd) {
				consumed[j] = true
				group = append(group, candidate)
			}
		}
		groupStart, groupEnd := span(group)
		out := subtitle.Cue{Start: groupStart, End: groupEnd, Text: subtitle.JoinTexts(native)}
		e.emit(&res, out, Decision{Kind: DecisionReplaced, Cue: cue, Group: group, NativeText: out.Text})
		res.Counters.Replaced++
	}

	// Display indices follow emission order, not start time.
	for idx := range res.Cues {
		res.Cues[idx].Index = idx + 1
	}
	return res, nil
}

func (e *Engine) emit(res *Result, cue subtitle.Cue, decision Decision) {
	res.Cues = append(res.Cues, cue)
	res.Decisions = append(res.Decisions, decision)
	e.logger.Debug("fusion decision",
		logging.String("kind", decision.Kind.String()),
		logging.Int64("start_ms", cue.Start),
		logging.Int64("end_ms", cue.End),
	)
}

// lemmatizeAll runs the collaborator once over all target texts. A failed
// call, a line-count mismatch, or a per-line token misalignment marks the
// affected cues unaligned; those pass through unchanged instead of being
// classified against the wrong lemmas.
func (e *Engine) lemmatizeAll(ctx context.Context, in Input) ([][]string, []bool) {
	lemmas := make([][]string, len(in.Target))
	aligned := make([]bool, len(in.Target))

	lines := make([]string, len(in.Target))
	for i, cue := range in.Target {
		lines[i] = cue.Text
	}

	if in.Lemmatizer == nil {
		for i, line := range lines {
			lemmas[i] = strings.Fields(line)
			aligned[i] = true
		}
		return lemmas, aligned
	}

	out, err := in.Lemmatizer.Lemmatize(ctx, in.Language, lines)
	if err != nil || len(out) != len(lines) {
		e.logger.Warn("lemmatization unavailable; cues pass through unchanged",
			logging.Int("cues", len(lines)),
			logging.Error(err),
		)
		return lemmas, aligned
	}
	for i := range out {
		if lemma.Aligned(lines[i], out[i]) {
			lemmas[i] = out[i]
			aligned[i] = true
		} else {
			e.logger.Debug("lemma tokens misaligned; cue passes through",
				logging.Int("cue", i),
				logging.Int("tokens", len(strings.Fields(lines[i]))),
				logging.Int("lemmas", len(out[i])),
			)
		}
	}
	return lemmas, aligned
}

// unknownWords pairs each whitespace token with its lemma and returns the
// cleaned surface forms that count against the viewer: not known, not a
// number, not a proper noun.
func unknownWords(cue subtitle.Cue, lemmas []string, known *vocab.Set, lang string) []string {
	var unknown []string
	for pos, surface := range strings.Fields(cue.Text) {
		clean := vocab.CleanToken(surface)
		if clean == "" {
			continue
		}
		if vocab.IsNumeric(clean) {
			continue
		}
		if vocab.IsProperNoun(surface, cue.Text, known) {
			continue
		}
		lemma := clean
		if pos < len(lemmas) {
			if lc := vocab.CleanToken(lemmas[pos]); lc != "" {
				lemma = lc
			}
		}
		if vocab.IsKnown(lemma, known, lang) || vocab.IsKnown(clean, known, lang) {
			continue
		}
		unknown = append(unknown, clean)
	}
	return unknown
}

// overlapping returns the native cues overlapping [start, end], in native
// track order.
func overlapping(native []subtitle.Cue, start, end int64) []subtitle.Cue {
	var out []subtitle.Cue
	for _, cue := range native {
		if subtitle.Overlaps(start, end, cue.Start, cue.End) {
			out = append(out, cue)
		}
	}
	return out
}

// span returns [min start, max end] over the cues.
func span(cues []subtitle.Cue) (int64, int64) {
	if len(cues) == 0 {
		return 0, 0
	}
	start, end := cues[0].Start, cues[0].End
	for _, cue := range cues[1:] {
		if cue.Start < start {
			start = cue.Start
		}
		if cue.End > end {
			end = cue.End
		}
	}
	return start, end
}

// contextWindow flattens the texts of the cues around index i into one
// context string for the translator.
func contextWindow(cues []subtitle.Cue, i, window int) string {
	lo := max(0, i-window)
	hi := min(len(cues)-1, i+window)
	parts := make([]string, 0, hi-lo+1)
	for j := lo; j <= hi; j++ {
		text := strings.Join(strings.Fields(vocab.StripMarkup(cues[j].Text)), " ")
		if text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, " ")
}

// insertInline rewrites text so its first case-insensitive whole-word match
// of word reads "word (translation)", preserving the original casing of the
// matched segment. If no whole-word match survives markup splitting, the
// annotation is appended so the translation is never silently dropped.
func insertInline(text, word, translation string) string {
	if match := findWholeWord(text, word); match >= 0 {
		end := match + len(word)
		return text[:end] + " (" + translation + ")" + text[end:]
	}
	return text + " (" + translation + ")"
}

func findWholeWord(text, word string) int {
	if word == "" {
		return -1
	}
	lowerText := strings.ToLower(text)
	lowerWord := strings.ToLower(word)
	if len(lowerText) != len(text) || len(lowerWord) != len(word) {
		// Case folding changed byte offsets; fall back to the original
		// forms so indices stay valid.
		lowerText, lowerWord = text, word
	}
	for offset := 0; offset <= len(lowerText)-len(lowerWord); {
		idx := strings.Index(lowerText[offset:], lowerWord)
		if idx < 0 {
			return -1
		}
		pos := offset + idx
		end := pos + len(lowerWord)
		if isBoundary(text, pos, true) && isBoundary(text, end, false) {
			return pos
		}
		offset = pos + 1
	}
	return -1
}

// isBoundary reports whether the rune adjacent to the byte offset (before
// it when leading, after it when trailing) does not extend a word.
func isBoundary(text string, offset int, leading bool) bool {
	var r rune
	if leading {
		if offset == 0 {
			return true
		}
		r, _ = utf8.DecodeLastRuneInString(text[:offset])
	} else {
		if offset >= len(text) {
			return true
		}
		r, _ = utf8.DecodeRuneInString(text[offset:])
	}
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}
