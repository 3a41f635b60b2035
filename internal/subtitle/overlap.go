package subtitle

// OverlapThresholdMS is the minimum shared duration, in milliseconds, for
// two intervals to count as temporally coincident. Cues that merely touch
// at a boundary (or share a few frames during a scene cut) must not be
// fused, so the predicate requires strictly more than this much overlap.
const OverlapThresholdMS int64 = 500

// Overlaps reports whether intervals [aStart, aEnd] and [bStart, bEnd]
// share strictly more than OverlapThresholdMS milliseconds.
func Overlaps(aStart, aEnd, bStart, bEnd int64) bool {
	return min(aEnd, bEnd)-max(aStart, bStart) > OverlapThresholdMS
}

// CueOverlaps reports whether two cues overlap per Overlaps.
func CueOverlaps(a, b Cue) bool {
	return Overlaps(a.Start, a.End, b.Start, b.End)
}
