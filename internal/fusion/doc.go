// Package fusion fuses a target-language subtitle track with a
// native-language fallback track into one hybrid track.
//
// The engine walks the merged target cues in original order and decides per
// cue whether the viewer can read it: cues made entirely of known vocabulary
// stay, a cue with exactly one unknown word can get that word translated
// inline, and anything harder is replaced with the overlapping native text.
// Replacement reconciles tracks segmented differently by consuming every
// target cue the combined native span covers, so time coverage is neither
// lost nor duplicated.
//
// Fusion is strictly sequential: a decision can mark later cues consumed,
// and later iterations must observe that. Nothing in here aborts a run;
// every failure path degrades to replacing or keeping the cue.
package fusion
