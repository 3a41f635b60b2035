package vocab

import "testing"

func TestIsKnownDirectMembership(t *testing.T) {
	known := NewSet("bonjour", "monde")

	if !IsKnown("Bonjour", known, "fr") {
		t.Error("expected case-insensitive match for known word")
	}
	if IsKnown("fromage", known, "fr") {
		t.Error("expected unknown word to stay unknown")
	}
}

func TestIsKnownContractionANDSemantics(t *testing.T) {
	tests := []struct {
		name  string
		known *Set
		word  string
		lang  string
		want  bool
	}{
		{"only one component known", NewSet("do"), "don't", "en", false},
		{"both components known", NewSet("do", "not"), "don't", "en", true},
		{"typographic apostrophe", NewSet("do", "not"), "don’t", "en", true},
		{"capitalized contraction", NewSet("do", "not"), "Don't", "en", true},
		{"three of a kind", NewSet("let", "us"), "let's", "en", true},
		{"unsupported language skips expansion", NewSet("do", "not"), "don't", "de", false},
		{"french elision", NewSet("ce", "être"), "c'est", "fr", true},
		{"french elision partial", NewSet("ce"), "c'est", "fr", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsKnown(tt.word, tt.known, tt.lang); got != tt.want {
				t.Errorf("IsKnown(%q, ..., %q) = %v, want %v", tt.word, tt.lang, got, tt.want)
			}
		})
	}
}

func TestIsProperNoun(t *testing.T) {
	known := NewSet("the", "paris")

	tests := []struct {
		name     string
		word     string
		sentence string
		want     bool
	}{
		{"lowercase never", "nice", "Paris is nice.", false},
		{"non-initial capitalized always", "Paris", "I love Paris.", true},
		{"sentence-initial known capitalized", "The", "The end.", false},
		{"markup-wrapped name", "<i>Paris</i>", "I love <i>Paris</i>.", true},
		{"trailing punctuation", "Paris,", "I love Paris, truly.", true},
		{"empty after cleaning", "...", "Wait... what?", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsProperNoun(tt.word, tt.sentence, known); got != tt.want {
				t.Errorf("IsProperNoun(%q, %q) = %v, want %v", tt.word, tt.sentence, got, tt.want)
			}
		})
	}
}

func TestIsProperNounSentenceInitial(t *testing.T) {
	// An unknown capitalized word opening the sentence reads as a name;
	// the same word with its lowercase form in the set is an ordinary
	// capitalized sentence start.
	if !IsProperNoun("Paris", "Paris is nice.", NewSet("is", "nice")) {
		t.Error("expected sentence-initial unknown capitalized word to be a proper noun")
	}
	if IsProperNoun("Paris", "Paris is nice.", NewSet("paris", "is", "nice")) {
		t.Error("expected known sentence-initial word not to be a proper noun")
	}
}

func TestIsNumeric(t *testing.T) {
	tests := []struct {
		word string
		want bool
	}{
		{"42", true},
		{"1984,", true},
		{"<i>7</i>", true},
		{"4th", false},
		{"seven", false},
		{"", false},
		{"...", false},
	}

	for _, tt := range tests {
		if got := IsNumeric(tt.word); got != tt.want {
			t.Errorf("IsNumeric(%q) = %v, want %v", tt.word, got, tt.want)
		}
	}
}

func TestCleanToken(t *testing.T) {
	tests := []struct {
		word string
		want string
	}{
		{"hello,", "hello"},
		{"<i>word</i>", "word"},
		{"{\\an8}note", "note"},
		{"don't!", "don't"},
		{"--", ""},
		{"(aside)", "aside"},
	}

	for _, tt := range tests {
		if got := CleanToken(tt.word); got != tt.want {
			t.Errorf("CleanToken(%q) = %q, want %q", tt.word, got, tt.want)
		}
	}
}

func TestContractionsCapability(t *testing.T) {
	if _, ok := Contractions("en"); !ok {
		t.Error("expected English to declare contraction support")
	}
	if _, ok := Contractions("fr"); !ok {
		t.Error("expected French to declare contraction support")
	}
	if _, ok := Contractions("ja"); ok {
		t.Error("expected Japanese not to declare contraction support")
	}
}
