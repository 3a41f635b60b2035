package subtitle

import (
	"sort"
	"strings"
)

// MergeOverlapping collapses transitively overlapping cues within one track
// into single cues, one per maximal connected component of the overlap
// graph. Pairwise overlap is not transitive (A overlaps B and B overlaps C
// without A overlapping C), yet all three belong together through B, so
// grouping must follow chains, not single comparisons.
//
// The implementation is an interval sweep: a cue overlapping another by more
// than OverlapThresholdMS is exactly a strict intersection of the shrunk
// open intervals (start, end-threshold), and the union of a chained set of
// intersecting intervals is contiguous, so components close as soon as the
// next start passes the furthest shrunk end seen. This produces the same
// components as the quadratic fixed-point scan while staying O(n log n).
//
// Each merged cue spans [min start, max end] over its members and carries
// the members' texts concatenated in chronological order. Cues too short to
// clear the threshold against anything (duration <= threshold) always come
// out as their own group. Running the merger on its own output is a no-op.
func MergeOverlapping(cues []Cue) []Cue {
	if len(cues) == 0 {
		return nil
	}

	order := make([]int, len(cues))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return cues[order[a]].Start < cues[order[b]].Start
	})

	var components [][]int
	var current []int
	var reach int64

	flush := func() {
		if current != nil {
			components = append(components, current)
			current = nil
		}
	}

	for _, idx := range order {
		cue := cues[idx]
		shrunk := cue.End - OverlapThresholdMS
		if shrunk <= cue.Start {
			// Cannot exceed the threshold against any neighbor.
			components = append(components, []int{idx})
			continue
		}
		if current == nil || cue.Start >= reach {
			flush()
			current = []int{idx}
			reach = shrunk
			continue
		}
		current = append(current, idx)
		if shrunk > reach {
			reach = shrunk
		}
	}
	flush()

	// Emit chronologically: members were appended in start order, so a
	// component's first member carries its earliest start.
	sort.SliceStable(components, func(a, b int) bool {
		return cues[components[a][0]].Start < cues[components[b][0]].Start
	})

	merged := make([]Cue, 0, len(components))
	for _, members := range components {
		merged = append(merged, mergeGroup(cues, members))
	}
	for i := range merged {
		merged[i].Index = i + 1
	}
	return merged
}

// mergeGroup builds the merged cue for one component. Members arrive sorted
// by start time.
func mergeGroup(cues []Cue, members []int) Cue {
	first := cues[members[0]]
	if len(members) == 1 {
		return first
	}
	end := first.End
	texts := make([]string, 0, len(members))
	for _, idx := range members {
		member := cues[idx]
		if member.End > end {
			end = member.End
		}
		if text := strings.TrimSpace(member.Text); text != "" {
			texts = append(texts, text)
		}
	}
	return Cue{
		Start: first.Start,
		End:   end,
		Text:  strings.Join(texts, " "),
	}
}

// JoinTexts concatenates cue texts in the given order, separated by single
// spaces, skipping empty entries. Replacement spans in the fusion engine use
// the same concatenation rule as the merger.
func JoinTexts(cues []Cue) string {
	texts := make([]string, 0, len(cues))
	for _, cue := range cues {
		if text := strings.TrimSpace(cue.Text); text != "" {
			texts = append(texts, text)
		}
	}
	return strings.Join(texts, " ")
}
