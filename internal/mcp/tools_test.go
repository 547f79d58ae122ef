package mcp

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/nextkit/internal/docscheck"
	"github.com/gorewood/nextkit/internal/structure"
	"github.com/gorewood/nextkit/internal/updates"
)

// --- Test helpers ---

func makeProject(t *testing.T, files map[string]string) Project {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(root, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("creating dir: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatalf("writing %s: %v", rel, err)
		}
	}
	return Project{
		Root:     root,
		Check:    docscheck.DefaultOptions(),
		Validate: structure.DefaultOptions(),
		Updates:  updates.DefaultOptions(),
	}
}

func fixedNow() time.Time {
	return time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
}

// --- check_docs ---

func TestHandleCheckDocs_Issues(t *testing.T) {
	project := makeProject(t, map[string]string{
		"docs/OVERVIEW.MD": "[gone](missing.md)",
		"docs/stray.md":    "x",
	})

	_, out, err := handleCheckDocs(project)(context.Background(), &mcp.CallToolRequest{}, CheckDocsInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.OK {
		t.Error("OK = true, want false")
	}
	want := []string{
		"Broken link in docs/OVERVIEW.MD: missing.md",
		"Orphaned file: stray.md not referenced in docs/OVERVIEW.MD",
		"AI-WORKFLOWS/START-PROMPT.md is missing",
		"AI-WORKFLOWS/CONTEXT-KEEPER.md is missing",
	}
	if len(out.Issues) != len(want) {
		t.Fatalf("Issues = %v, want %v", out.Issues, want)
	}
	for i := range want {
		if out.Issues[i] != want[i] {
			t.Errorf("Issues[%d] = %q, want %q", i, out.Issues[i], want[i])
		}
	}
	if out.Report == nil || out.Report.Links.Broken != 1 {
		t.Errorf("Report.Links.Broken mismatch: %+v", out.Report)
	}
}

func TestHandleCheckDocs_Clean(t *testing.T) {
	project := makeProject(t, map[string]string{
		"docs/OVERVIEW.MD":               "# Overview\n",
		"AI-WORKFLOWS/START-PROMPT.md":   "docs/OVERVIEW.MD CHECKLIST.MD",
		"AI-WORKFLOWS/CONTEXT-KEEPER.md": "docs/OVERVIEW.MD WORKFLOWS.MD",
	})

	_, out, err := handleCheckDocs(project)(context.Background(), &mcp.CallToolRequest{}, CheckDocsInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.OK || len(out.Issues) != 0 {
		t.Errorf("expected clean result, got %v", out.Issues)
	}
}

// --- validate_project ---

func TestHandleValidateProject(t *testing.T) {
	project := makeProject(t, map[string]string{
		"docs/OVERVIEW.MD": "o",
		"package.json":     `{"scripts":{"dev":"next dev"}}`,
	})

	_, out, err := handleValidateProject(project)(context.Background(), &mcp.CallToolRequest{}, ValidateProjectInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.OK {
		t.Error("OK = true, want false")
	}
	if out.Summary.Failed != len(out.Failed) {
		t.Errorf("Summary.Failed = %d, len(Failed) = %d", out.Summary.Failed, len(out.Failed))
	}
	var sawScript bool
	for _, c := range out.Failed {
		if c.Name == "npm script: ai-check" {
			sawScript = true
		}
		if c.Status != structure.StatusFail {
			t.Errorf("Failed contains %s with status %s", c.Name, c.Status)
		}
	}
	if !sawScript {
		t.Error("missing ai-check script not reported")
	}
}

// --- check_updates ---

func TestHandleCheckUpdates(t *testing.T) {
	project := makeProject(t, map[string]string{
		"package.json": `{"templateVersion":"1.0.0"}`,
	})

	_, out, err := handleCheckUpdates(project, fixedNow)(context.Background(), &mcp.CallToolRequest{}, CheckUpdatesInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.CurrentVersion != "1.0.0" {
		t.Errorf("CurrentVersion = %q, want 1.0.0", out.CurrentVersion)
	}
	if !out.Critical {
		t.Error("Critical = false, want true")
	}
	if out.Summary.Total != 4 {
		t.Errorf("Summary.Total = %d, want 4", out.Summary.Total)
	}
	if out.CheckedAt != "2025-01-02T03:04:05Z" {
		t.Errorf("CheckedAt = %q", out.CheckedAt)
	}
	if len(out.Groups) != 3 || out.Groups[0].Category != updates.CategoryCritical {
		t.Errorf("Groups = %+v", out.Groups)
	}
	if _, err := os.Stat(filepath.Join(project.Root, ".temp")); !os.IsNotExist(err) {
		t.Error("check_updates must not write the update info")
	}
}

func TestHandleCheckUpdates_InvalidVersion(t *testing.T) {
	project := makeProject(t, map[string]string{
		"package.json": `{"templateVersion":"soon"}`,
	})

	_, _, err := handleCheckUpdates(project, fixedNow)(context.Background(), &mcp.CallToolRequest{}, CheckUpdatesInput{})
	if err == nil {
		t.Fatal("expected error for invalid templateVersion")
	}
}

func TestNewServer(t *testing.T) {
	if NewServer("1.0.0", makeProject(t, nil)) == nil {
		t.Fatal("NewServer returned nil")
	}
}
