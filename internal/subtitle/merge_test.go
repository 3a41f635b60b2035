package subtitle

import (
	"reflect"
	"strings"
	"testing"
)

func TestMergeOverlappingEmpty(t *testing.T) {
	if got := MergeOverlapping(nil); got != nil {
		t.Errorf("MergeOverlapping(nil) = %v, want nil", got)
	}
}

func TestMergeOverlappingDisjoint(t *testing.T) {
	cues := []Cue{
		{Start: 0, End: 2000, Text: "first"},
		{Start: 3000, End: 5000, Text: "second"},
		{Start: 6000, End: 8000, Text: "third"},
	}

	merged := MergeOverlapping(cues)
	if len(merged) != 3 {
		t.Fatalf("got %d cues, want 3", len(merged))
	}
	for i, cue := range merged {
		if cue.Start != cues[i].Start || cue.End != cues[i].End || cue.Text != cues[i].Text {
			t.Errorf("cue %d changed: %+v", i, cue)
		}
	}
}

func TestMergeOverlappingChain(t *testing.T) {
	// A overlaps B and B overlaps C, but A does not overlap C. All three
	// must still merge through B.
	cues := []Cue{
		{Start: 0, End: 2000, Text: "a"},
		{Start: 1200, End: 4000, Text: "b"},
		{Start: 3200, End: 6000, Text: "c"},
	}
	if Overlaps(cues[0].Start, cues[0].End, cues[2].Start, cues[2].End) {
		t.Fatal("fixture broken: a and c should not overlap directly")
	}

	merged := MergeOverlapping(cues)
	if len(merged) != 1 {
		t.Fatalf("got %d cues, want 1", len(merged))
	}
	want := Cue{Index: 1, Start: 0, End: 6000, Text: "a b c"}
	if !reflect.DeepEqual(merged[0], want) {
		t.Errorf("merged = %+v, want %+v", merged[0], want)
	}
}

func TestMergeOverlappingBoundaryTouch(t *testing.T) {
	// Adjacent cues sharing only a boundary (or less than the threshold)
	// stay separate.
	cues := []Cue{
		{Start: 0, End: 2000, Text: "a"},
		{Start: 2000, End: 4000, Text: "b"},
		{Start: 3900, End: 6000, Text: "c"}, // 100ms shared with b
	}

	merged := MergeOverlapping(cues)
	if len(merged) != 3 {
		t.Fatalf("got %d cues, want 3", len(merged))
	}
}

func TestMergeOverlappingShortCueInsideLong(t *testing.T) {
	// A cue shorter than the threshold can never clear it against anything,
	// even when fully contained in a long cue.
	cues := []Cue{
		{Start: 0, End: 10_000, Text: "long"},
		{Start: 2000, End: 2400, Text: "short"},
	}

	merged := MergeOverlapping(cues)
	if len(merged) != 2 {
		t.Fatalf("got %d cues, want 2", len(merged))
	}
	if merged[0].Text != "long" || merged[1].Text != "short" {
		t.Errorf("unexpected order or grouping: %+v", merged)
	}
}

func TestMergeOverlappingSpanAndTextOrder(t *testing.T) {
	// Input order is not chronological; merged text must follow start times
	// and the span must cover [min start, max end].
	cues := []Cue{
		{Start: 1500, End: 5000, Text: "second"},
		{Start: 0, End: 2600, Text: "first"},
	}

	merged := MergeOverlapping(cues)
	if len(merged) != 1 {
		t.Fatalf("got %d cues, want 1", len(merged))
	}
	got := merged[0]
	if got.Start != 0 || got.End != 5000 {
		t.Errorf("span = [%d, %d], want [0, 5000]", got.Start, got.End)
	}
	if got.Text != "first second" {
		t.Errorf("text = %q, want %q", got.Text, "first second")
	}
}

func TestMergeOverlappingPartition(t *testing.T) {
	// Every input cue lands in exactly one group: total merged duration of
	// text content matches, and group spans cover every input interval.
	cues := []Cue{
		{Start: 0, End: 2000, Text: "w1"},
		{Start: 1000, End: 3000, Text: "w2"},
		{Start: 10_000, End: 12_000, Text: "w3"},
		{Start: 11_000, End: 13_000, Text: "w4"},
		{Start: 20_000, End: 21_000, Text: "w5"},
	}

	merged := MergeOverlapping(cues)
	if len(merged) != 3 {
		t.Fatalf("got %d groups, want 3", len(merged))
	}

	seen := map[string]int{}
	for _, group := range merged {
		for _, word := range []string{"w1", "w2", "w3", "w4", "w5"} {
			if containsWord(group.Text, word) {
				seen[word]++
			}
		}
	}
	for _, word := range []string{"w1", "w2", "w3", "w4", "w5"} {
		if seen[word] != 1 {
			t.Errorf("cue %q appears in %d groups, want 1", word, seen[word])
		}
	}

	for _, cue := range cues {
		covered := false
		for _, group := range merged {
			if group.Start <= cue.Start && cue.End <= group.End {
				covered = true
				break
			}
		}
		if !covered {
			t.Errorf("input cue [%d,%d] not covered by any group span", cue.Start, cue.End)
		}
	}
}

func TestMergeOverlappingIdempotent(t *testing.T) {
	cues := []Cue{
		{Start: 0, End: 2000, Text: "a"},
		{Start: 1200, End: 4000, Text: "b"},
		{Start: 3200, End: 6000, Text: "c"},
		{Start: 9000, End: 9300, Text: "short"},
		{Start: 10_000, End: 12_000, Text: "d"},
	}

	once := MergeOverlapping(cues)
	twice := MergeOverlapping(once)
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("merger not idempotent:\nonce:  %+v\ntwice: %+v", once, twice)
	}
}

func TestMergeOverlappingReindexes(t *testing.T) {
	cues := []Cue{
		{Index: 17, Start: 0, End: 2000, Text: "a"},
		{Index: 42, Start: 5000, End: 7000, Text: "b"},
	}
	merged := MergeOverlapping(cues)
	for i, cue := range merged {
		if cue.Index != i+1 {
			t.Errorf("cue %d has index %d, want %d", i, cue.Index, i+1)
		}
	}
}

func TestJoinTexts(t *testing.T) {
	cues := []Cue{
		{Text: "one"},
		{Text: "  "},
		{Text: "two"},
	}
	if got := JoinTexts(cues); got != "one two" {
		t.Errorf("JoinTexts = %q, want %q", got, "one two")
	}
}

func containsWord(text, word string) bool {
	for _, field := range strings.Fields(text) {
		if field == word {
			return true
		}
	}
	return false
}
