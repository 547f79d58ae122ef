package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/fang"

	"github.com/gorewood/nextkit/internal/output"
)

// runCLI executes the root command with args and returns stdout, stderr and
// the exit code the process would report.
func runCLI(t *testing.T, args ...string) (string, string, int) {
	t.Helper()
	// Keep the developer's global config and env file out of the test.
	t.Setenv("NEXTKIT_CONFIG_HOME", t.TempDir())

	cmd := newRootCmd()
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetIn(strings.NewReader(""))
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), output.GetExitCode(err)
}

// writeProject creates files (relative path -> content) under a fresh temp root.
func writeProject(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(root, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("MkdirAll(%s) error = %v", rel, err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("WriteFile(%s) error = %v", rel, err)
		}
	}
	return root
}

func decodeJSON(t *testing.T, data string) map[string]any {
	t.Helper()
	var result map[string]any
	if err := json.Unmarshal([]byte(data), &result); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, data)
	}
	return result
}

func TestRootCommand_Version(t *testing.T) {
	version = "1.2.3"

	stdout, _, code := runCLI(t, "--version")
	if code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
	if !strings.Contains(stdout, "1.2.3") {
		t.Errorf("--version output should contain version: %q", stdout)
	}
	if !strings.Contains(stdout, "nextkit") {
		t.Errorf("--version output should contain 'nextkit': %q", stdout)
	}
}

func TestRootCommand_Help(t *testing.T) {
	stdout, _, code := runCLI(t, "--help")
	if code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}

	expectations := []string{
		"nextkit",
		"Usage:",
		"--json",
		"--dir",
		"--color",
		"check",
		"validate",
		"setup",
		"updates",
		"serve",
	}
	for _, expected := range expectations {
		if !strings.Contains(stdout, expected) {
			t.Errorf("--help output should contain %q: %q", expected, stdout)
		}
	}
}

func TestRootCommand_JSONFlag_NoSubcommand(t *testing.T) {
	stdout, _, code := runCLI(t, "--json")
	if code != output.ExitIssues {
		t.Fatalf("exit code = %d, want %d", code, output.ExitIssues)
	}

	result := decodeJSON(t, stdout)
	if _, ok := result["error"]; !ok {
		t.Errorf("JSON output should contain 'error' field: %v", result)
	}
}

func TestRootCommand_InvalidColor(t *testing.T) {
	_, stderr, code := runCLI(t, "check", "--dir", t.TempDir(), "--color", "sometimes")
	if code != output.ExitIssues {
		t.Fatalf("exit code = %d, want %d", code, output.ExitIssues)
	}
	if !strings.Contains(stderr, "invalid --color value") {
		t.Errorf("stderr should explain the bad flag: %q", stderr)
	}
}

func TestRootCommand_MissingDir(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope")

	_, stderr, code := runCLI(t, "validate", "--dir", missing)
	if code != output.ExitIssues {
		t.Fatalf("exit code = %d, want %d", code, output.ExitIssues)
	}
	if !strings.Contains(stderr, "project directory not found") {
		t.Errorf("stderr should name the problem: %q", stderr)
	}
}

func TestRootCommand_ProjectConfigFile(t *testing.T) {
	root := writeProject(t, map[string]string{
		".nextkit.yaml":     "check:\n  overview: docs/INDEX.md\n",
		"docs/INDEX.md":     "# Index\n",
		"docs/CHECKLIST.MD": "",
	})

	stdout, _, _ := runCLI(t, "check", "--dir", root, "--json")
	result := decodeJSON(t, stdout)
	links, _ := result["links"].(map[string]any)
	if links["overview"] != "docs/INDEX.md" {
		t.Errorf("links.overview = %v, want docs/INDEX.md", links["overview"])
	}
}

func TestHandleError_SkipsSilentErrors(t *testing.T) {
	buf := new(bytes.Buffer)
	handleError(buf, fang.Styles{}, output.NewIssuesError("already rendered"))
	if buf.Len() != 0 {
		t.Errorf("silent error should not be rendered: %q", buf.String())
	}

	handleError(buf, fang.Styles{}, output.NewUserError("bad input"))
	if !strings.Contains(buf.String(), "bad input") {
		t.Errorf("plain error should be rendered: %q", buf.String())
	}
}
