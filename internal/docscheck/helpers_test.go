package docscheck

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// writeTree creates files (relative path -> content) under a fresh temp root.
func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(root, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return root
}

func newChecker(t *testing.T, root string) *Checker {
	t.Helper()
	return New(root, DefaultOptions(), zaptest.NewLogger(t))
}

// boxes returns n empty checkbox lines.
func boxes(n int) string {
	s := ""
	for i := 0; i < n; i++ {
		s += "- [ ] task\n"
	}
	return s
}

// healthyTree is a project whose documentation passes every scan.
func healthyTree() map[string]string {
	return map[string]string{
		"docs/OVERVIEW.MD": "# Overview\n\n" +
			"- [Checklist](CHECKLIST.MD)\n" +
			"- [Workflows](WORKFLOWS.MD)\n" +
			"- [Setup](PROJECT-SETUP.md)\n" +
			"- [Guide](guides/intro.md)\n" +
			"- [Site](https://example.com)\n",
		"docs/CHECKLIST.MD":              "# Checklist\n" + boxes(12) + "- [x] done\n",
		"docs/WORKFLOWS.MD":              "# Workflows\n",
		"docs/guides/intro.md":           "# Intro\n",
		"PROJECT-SETUP.md":               "# Setup\n",
		"AI-WORKFLOWS/START-PROMPT.md":   "Read docs/OVERVIEW.MD and CHECKLIST.MD first.\n",
		"AI-WORKFLOWS/CONTEXT-KEEPER.md": "Keep docs/OVERVIEW.MD, CHECKLIST.MD and WORKFLOWS.MD current.\n",
	}
}
