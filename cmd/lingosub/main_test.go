package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"lingosub/internal/testsupport"
)

// writeTestConfig writes a config whose directories live under a temp root so
// tests never touch the user's home directory.
func writeTestConfig(t *testing.T) string {
	t.Helper()
	cfg := testsupport.NewConfig(t)
	return testsupport.WriteConfig(t, cfg)
}

func writeFile(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

// runCommand executes the root command with args and returns stdout.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootHelpListsCommands(t *testing.T) {
	out, err := runCommand(t, "--help")
	if err != nil {
		t.Fatalf("help: %v", err)
	}
	for _, want := range []string{"fuse", "vocab", "config"} {
		if !bytes.Contains([]byte(out), []byte(want)) {
			t.Errorf("help output missing %q:\n%s", want, out)
		}
	}
}

func TestUnknownCommandFails(t *testing.T) {
	if _, err := runCommand(t, "bogus"); err == nil {
		t.Fatal("expected error for unknown command")
	}
}
