package lemma

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestLemmatizeAlignsTokensPerLine(t *testing.T) {
	svc := NewService("python3", "/opt/lemmatizer.py")
	var gotStdin string
	svc.WithCommandRunner(func(ctx context.Context, stdin string, name string, args ...string) (string, error) {
		gotStdin = stdin
		if name != "python3" {
			t.Errorf("binary = %q, want python3", name)
		}
		if len(args) != 2 || args[0] != "/opt/lemmatizer.py" || args[1] != "fr" {
			t.Errorf("args = %v", args)
		}
		return "je avoir mangé\nle chat\n", nil
	})

	lemmas, err := svc.Lemmatize(context.Background(), "fr", []string{"J'ai mangé quelque", "Les chats"})
	if err != nil {
		t.Fatalf("Lemmatize: %v", err)
	}
	if len(lemmas) != 2 {
		t.Fatalf("got %d lines, want 2", len(lemmas))
	}
	if strings.Join(lemmas[0], " ") != "je avoir mangé" {
		t.Errorf("line 0 = %v", lemmas[0])
	}
	if strings.Join(lemmas[1], " ") != "le chat" {
		t.Errorf("line 1 = %v", lemmas[1])
	}
	if gotStdin != "J'ai mangé quelque\nLes chats" {
		t.Errorf("stdin = %q", gotStdin)
	}
}

func TestLemmatizeFlattensMultilineCues(t *testing.T) {
	svc := NewService("", "/opt/lemmatizer.py")
	svc.WithCommandRunner(func(ctx context.Context, stdin string, name string, args ...string) (string, error) {
		if strings.Count(stdin, "\n") != 0 {
			t.Errorf("expected one flattened line, got %q", stdin)
		}
		return "two word\n", nil
	})

	if _, err := svc.Lemmatize(context.Background(), "en", []string{"two\nword"}); err != nil {
		t.Fatalf("Lemmatize: %v", err)
	}
}

func TestLemmatizeLineCountMismatch(t *testing.T) {
	svc := NewService("", "/opt/lemmatizer.py")
	svc.WithCommandRunner(func(ctx context.Context, stdin string, name string, args ...string) (string, error) {
		return "only one line\n", nil
	})

	if _, err := svc.Lemmatize(context.Background(), "en", []string{"a", "b"}); err == nil {
		t.Error("expected error on line count mismatch")
	}
}

func TestLemmatizeSubprocessFailure(t *testing.T) {
	svc := NewService("", "/opt/lemmatizer.py")
	svc.WithCommandRunner(func(ctx context.Context, stdin string, name string, args ...string) (string, error) {
		return "", errors.New("interpreter missing")
	})

	if _, err := svc.Lemmatize(context.Background(), "en", []string{"a"}); err == nil {
		t.Error("expected subprocess failure to surface")
	}
}

func TestLemmatizeEmptyInput(t *testing.T) {
	svc := NewService("", "")
	lemmas, err := svc.Lemmatize(context.Background(), "en", nil)
	if err != nil {
		t.Fatalf("Lemmatize: %v", err)
	}
	if lemmas != nil {
		t.Errorf("got %v, want nil", lemmas)
	}
}

func TestAligned(t *testing.T) {
	if !Aligned("two words", []string{"two", "word"}) {
		t.Error("expected matching token counts to align")
	}
	if Aligned("three little words", []string{"three", "word"}) {
		t.Error("expected mismatched counts not to align")
	}
	if !Aligned("", nil) {
		t.Error("expected empty line to align with no lemmas")
	}
}
