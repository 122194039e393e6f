package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runCLI(t *testing.T, args ...string) {
	t.Helper()
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("command %v failed: %v", args, err)
	}
}

func TestPipelineEndToEnd(t *testing.T) {
	vault := t.TempDir()

	runCLI(t, "init", "--vault", vault)
	runCLI(t, "write", "--vault", vault,
		"--id", "pipeline",
		"--content", "## Active\n\n### Acme\n- **Status**: applied",
		"--tag", "job-search")
	runCLI(t, "section", "append", "--vault", vault,
		"pipeline", "Active", "### Beta\n- **Status**: screening")
	runCLI(t, "move", "--vault", vault,
		"pipeline", "Active", "Done", "Acme", "--reason", "no reply")
	runCLI(t, "patch", "--vault", vault,
		"pipeline", "Active", "Beta", "--set", "Status=onsite")

	data, err := os.ReadFile(filepath.Join(vault, "pipeline.md"))
	if err != nil {
		t.Fatalf("note not written: %v", err)
	}
	text := string(data)

	for _, want := range []string{
		"## Done",
		"### Acme",
		"<!-- Moved from Active: no reply -->",
		"- **Status**: onsite",
		"job-search",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("note missing %q:\n%s", want, text)
		}
	}
	if strings.Count(text, "### Acme") != 1 {
		t.Errorf("moved item duplicated:\n%s", text)
	}
}
