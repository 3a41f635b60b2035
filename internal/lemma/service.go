package lemma

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

//go:embed lemmatizer.py
var embeddedScript string

// DefaultPythonBinary is used when the configuration does not name one.
const DefaultPythonBinary = "python3"

// Service shells out to the lemmatizer helper. All lines of a track go
// through a single subprocess invocation; spawning one interpreter per cue
// would dominate the runtime.
type Service struct {
	pythonBinary  string
	scriptPath    string
	commandRunner func(ctx context.Context, stdin string, name string, args ...string) (string, error)
}

// NewService creates a lemmatizer service. An empty pythonBinary falls back
// to DefaultPythonBinary; an empty scriptPath materializes the embedded
// helper script into the temp directory on first use.
func NewService(pythonBinary, scriptPath string) *Service {
	if strings.TrimSpace(pythonBinary) == "" {
		pythonBinary = DefaultPythonBinary
	}
	return &Service{
		pythonBinary: pythonBinary,
		scriptPath:   strings.TrimSpace(scriptPath),
	}
}

// WithCommandRunner sets a custom command runner (for testing).
func (s *Service) WithCommandRunner(runner func(ctx context.Context, stdin string, name string, args ...string) (string, error)) {
	s.commandRunner = runner
}

// Lemmatize returns one lemma-token slice per input line, split on
// whitespace exactly as the engine splits surface text. The subprocess sees
// newline-joined lines on stdin and must answer with the same number of
// lines.
func (s *Service) Lemmatize(ctx context.Context, lang string, lines []string) ([][]string, error) {
	if len(lines) == 0 {
		return nil, nil
	}
	script, err := s.ensureScript()
	if err != nil {
		return nil, err
	}

	// Cue texts can span multiple display lines; the helper works line by
	// line, so feed each cue as a single flattened line.
	flattened := make([]string, len(lines))
	for i, line := range lines {
		flattened[i] = strings.Join(strings.Fields(line), " ")
	}
	stdin := strings.Join(flattened, "\n")

	stdout, err := s.run(ctx, stdin, s.pythonBinary, script, lang)
	if err != nil {
		return nil, fmt.Errorf("lemmatizer: %w", err)
	}

	outLines := strings.Split(strings.TrimRight(stdout, "\n"), "\n")
	if len(outLines) != len(lines) {
		return nil, fmt.Errorf("lemmatizer: got %d lines, want %d", len(outLines), len(lines))
	}

	result := make([][]string, len(outLines))
	for i, line := range outLines {
		result[i] = strings.Fields(line)
	}
	return result, nil
}

func (s *Service) run(ctx context.Context, stdin string, name string, args ...string) (string, error) {
	if s.commandRunner != nil {
		return s.commandRunner(ctx, stdin, name, args...)
	}
	cmd := exec.CommandContext(ctx, name, args...) //nolint:gosec
	cmd.Stdin = strings.NewReader(stdin)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("%s: %w: %s", name, err, strings.TrimSpace(stderr.String()))
	}
	return stdout.String(), nil
}

func (s *Service) ensureScript() (string, error) {
	if s.scriptPath != "" {
		return s.scriptPath, nil
	}
	path := filepath.Join(os.TempDir(), "lingosub-lemmatizer.py")
	if err := os.WriteFile(path, []byte(embeddedScript), 0o644); err != nil {
		return "", fmt.Errorf("materialize lemmatizer script: %w", err)
	}
	s.scriptPath = path
	return path, nil
}

// Aligned pairs lemma tokens with a line's surface tokens. It returns false
// when the counts differ, which means the helper's tokenization diverged
// from ours and position-based pairing would silently misalign.
func Aligned(line string, lemmas []string) bool {
	return len(strings.Fields(line)) == len(lemmas)
}
