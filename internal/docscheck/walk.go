package docscheck

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/gorewood/nextkit/internal/output"
)

// MarkdownFile is a documentation file found under the docs root.
type MarkdownFile struct {
	// Rel is relative to the docs root.
	Rel string `json:"rel"`
	// Path is the docs root joined with Rel, as written relative to the project root.
	Path       string `json:"path"`
	Referenced bool   `json:"referenced"`

	abs string
}

// markdownFiles walks dir depth-first in lexical order and returns every file
// whose name ends with one of exts. The whole set is collected before any
// caller inspects it.
func markdownFiles(dir, display string, exts []string) ([]MarkdownFile, error) {
	var files []MarkdownFile
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !hasExtension(d.Name(), exts) {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		files = append(files, MarkdownFile{
			Rel:  rel,
			Path: filepath.Join(display, rel),
			abs:  path,
		})
		return nil
	})
	if err != nil {
		return nil, output.NewSystemErrorWithCause("walking "+display, err)
	}
	return files, nil
}

func hasExtension(name string, exts []string) bool {
	for _, ext := range exts {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}
