package fusion

import "lingosub/internal/subtitle"

// DecisionKind classifies what the engine did with one target cue.
type DecisionKind int

const (
	// DecisionKept emits the target cue unchanged: every word is known.
	DecisionKept DecisionKind = iota
	// DecisionTranslatedInline emits the target cue with its single
	// unknown word annotated as "word (translation)".
	DecisionTranslatedInline
	// DecisionReplaced emits one cue carrying native text in place of one
	// or more target cues.
	DecisionReplaced
	// DecisionKeptFallback emits the target cue unchanged because a
	// preferable outcome was unavailable; Reason says why.
	DecisionKeptFallback
)

// String returns the log-friendly name of the decision kind.
func (k DecisionKind) String() string {
	switch k {
	case DecisionKept:
		return "kept"
	case DecisionTranslatedInline:
		return "translated_inline"
	case DecisionReplaced:
		return "replaced"
	case DecisionKeptFallback:
		return "kept_fallback"
	default:
		return "unknown"
	}
}

// Fallback reasons recorded on DecisionKeptFallback.
const (
	ReasonNoNativeOverlap          = "no overlapping native text"
	ReasonTranslationFailed        = "translation failed and no overlapping native text"
	ReasonLemmatizationUnavailable = "lemmatization unavailable"
)

// Decision records one outcome. Exactly one decision is produced per
// original target cue that triggers processing; cues folded into another
// cue's replacement group appear in that decision's Group instead.
type Decision struct {
	Kind DecisionKind

	// Cue is the triggering target cue.
	Cue subtitle.Cue

	// Word and Translation are set for DecisionTranslatedInline.
	Word        string
	Translation string

	// Group lists every target cue folded into a DecisionReplaced output,
	// including the triggering cue. NativeText is the replacement text.
	Group      []subtitle.Cue
	NativeText string

	// Reason is set for DecisionKeptFallback.
	Reason string
}
