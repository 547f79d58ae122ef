package docscheck

import (
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// OrphanReport lists the markdown files under the docs root and whether the
// overview mentions each of them.
type OrphanReport struct {
	// Ran is false when the overview or the docs root is missing.
	Ran     bool           `json:"ran"`
	Files   []MarkdownFile `json:"files"`
	Orphans int            `json:"orphans"`
	Issues  []string       `json:"issues"`
}

// FindOrphans reports every markdown file under the docs root that the
// overview never mentions. A file counts as referenced when the raw overview
// text contains its docs-relative or project-relative path.
func (c *Checker) FindOrphans(overview string, found bool) (*OrphanReport, error) {
	report := &OrphanReport{Files: []MarkdownFile{}, Issues: []string{}}
	if !found {
		return report, nil
	}

	docsRoot := c.path(c.opts.DocsDir)
	ok, err := isDir(docsRoot)
	if err != nil {
		return nil, err
	}
	if !ok {
		c.logger.Debug("docs root missing, skipping orphan scan", zap.String("dir", c.opts.DocsDir))
		return report, nil
	}
	report.Ran = true

	files, err := markdownFiles(docsRoot, c.opts.DocsDir, c.opts.MarkdownExtensions)
	if err != nil {
		return nil, err
	}

	overviewPath := filepath.Clean(c.path(c.opts.Overview))
	for _, f := range files {
		if filepath.Clean(f.abs) == overviewPath {
			continue
		}
		f.Referenced = strings.Contains(overview, f.Rel) || strings.Contains(overview, f.Path)
		if !f.Referenced {
			report.Orphans++
			report.Issues = append(report.Issues,
				"Orphaned file: "+f.Rel+" not referenced in "+c.opts.Overview)
		}
		report.Files = append(report.Files, f)
	}

	c.logger.Debug("orphan scan complete",
		zap.Int("files", len(report.Files)),
		zap.Int("orphans", report.Orphans))
	return report, nil
}
