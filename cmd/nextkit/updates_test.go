package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gorewood/nextkit/internal/output"
	"github.com/gorewood/nextkit/internal/updates"
)

func TestUpdates_CriticalAvailable(t *testing.T) {
	root := writeProject(t, map[string]string{"package.json": `{"name": "app"}`})

	stdout, _, code := runCLI(t, "updates", "--dir", root)
	if code != output.ExitIssues {
		t.Fatalf("exit code = %d, want %d", code, output.ExitIssues)
	}
	for _, want := range []string{
		"No templateVersion found in package.json",
		"4 updates available:",
		"CRITICAL (1)",
		"RECOMMENDED (2)",
		"OPTIONAL (1)",
		"v1.0.1:",
		"1 CRITICAL update available.",
	} {
		if !strings.Contains(stdout, want) {
			t.Errorf("output should contain %q:\n%s", want, stdout)
		}
	}

	data, err := os.ReadFile(filepath.Join(root, ".temp", updates.InfoFile))
	if err != nil {
		t.Fatalf("update info not saved: %v", err)
	}
	var info updates.Info
	if err := json.Unmarshal(data, &info); err != nil {
		t.Fatalf("update info is not valid JSON: %v", err)
	}
	if info.Summary.Total != 4 || info.Summary.Critical != 1 {
		t.Errorf("summary = %+v, want 4 total and 1 critical", info.Summary)
	}
}

func TestUpdates_NoCriticalJSON(t *testing.T) {
	root := writeProject(t, map[string]string{"package.json": `{"templateVersion": "1.1.0"}`})

	stdout, _, code := runCLI(t, "updates", "--dir", root, "--json")
	if code != output.ExitSuccess {
		t.Fatalf("exit code = %d, want 0", code)
	}

	result := decodeJSON(t, stdout)
	if result["current_version"] != "1.1.0" {
		t.Errorf("current_version = %v, want 1.1.0", result["current_version"])
	}
	list, _ := result["updates"].([]any)
	if len(list) != 2 {
		t.Errorf("updates = %v, want 1.1.1 and 1.2.0", list)
	}
}

func TestUpdates_UpToDate(t *testing.T) {
	root := writeProject(t, map[string]string{"package.json": `{"templateVersion": "1.2.0"}`})

	stdout, _, code := runCLI(t, "updates", "--dir", root)
	if code != output.ExitSuccess {
		t.Fatalf("exit code = %d, want 0", code)
	}
	if !strings.Contains(stdout, "The template is up to date.") {
		t.Errorf("output should report no updates:\n%s", stdout)
	}
}

func TestUpdates_InvalidVersion(t *testing.T) {
	root := writeProject(t, map[string]string{"package.json": `{"templateVersion": "latest"}`})

	_, stderr, code := runCLI(t, "updates", "--dir", root)
	if code != output.ExitIssues {
		t.Fatalf("exit code = %d, want %d", code, output.ExitIssues)
	}
	if !strings.Contains(stderr, "invalid templateVersion") {
		t.Errorf("stderr should explain the version problem: %q", stderr)
	}
}
