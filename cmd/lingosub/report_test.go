package main

import (
	"strings"
	"testing"
)

func TestCountTableRendersRows(t *testing.T) {
	out := countTable("Metric", "Count", []reportRow{
		{"Kept", "12"},
		{"Replaced", "3"},
	})
	for _, want := range []string{"Metric", "Count", "Kept", "12", "Replaced", "3"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
	if got := strings.Count(out, "\n"); got < 4 {
		t.Errorf("expected bordered multi-line table, got %d newlines:\n%s", got, out)
	}
}

func TestCountTableRightAlignsValues(t *testing.T) {
	out := countTable("Metric", "Count", []reportRow{
		{"Kept", "1"},
		{"Replaced", "100"},
	})
	lines := strings.Split(out, "\n")
	var kept, replaced string
	for _, line := range lines {
		if strings.Contains(line, "Kept") {
			kept = line
		}
		if strings.Contains(line, "Replaced") {
			replaced = line
		}
	}
	if kept == "" || replaced == "" {
		t.Fatalf("rows missing:\n%s", out)
	}
	// Right alignment puts the ones digits in the same column.
	if strings.LastIndex(kept, "1") != strings.LastIndex(replaced, "0") {
		t.Errorf("values not right-aligned:\nkept:     %q\nreplaced: %q", kept, replaced)
	}
}

func TestFieldTableLeftAlignsValues(t *testing.T) {
	out := fieldTable("Field", "Value", []reportRow{
		{"Language", "fr"},
		{"List path", "/data/vocab/fr.txt"},
	})
	lines := strings.Split(out, "\n")
	var short, long string
	for _, line := range lines {
		if strings.Contains(line, "Language") {
			short = line
		}
		if strings.Contains(line, "List path") {
			long = line
		}
	}
	if short == "" || long == "" {
		t.Fatalf("rows missing:\n%s", out)
	}
	if strings.Index(short, "fr") != strings.Index(long, "/data") {
		t.Errorf("values not left-aligned:\nshort: %q\nlong:  %q", short, long)
	}
}
