package docscheck

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// WorkflowResult is the reference scan of one workflow document.
type WorkflowResult struct {
	Path     string   `json:"path"`
	Exists   bool     `json:"exists"`
	Found    []string `json:"found"`
	Required int      `json:"required"`
	Total    int      `json:"total"`
	Pass     bool     `json:"pass"`
}

// WorkflowReport covers every configured workflow document.
type WorkflowReport struct {
	Files  []WorkflowResult `json:"files"`
	Issues []string         `json:"issues"`
}

// ContainedReferences returns the references that occur in text, in the
// order given.
func ContainedReferences(text string, refs []string) []string {
	found := []string{}
	for _, ref := range refs {
		if strings.Contains(text, ref) {
			found = append(found, ref)
		}
	}
	return found
}

// ScanWorkflows checks that each workflow document exists and mentions
// enough of the required references.
func (c *Checker) ScanWorkflows() (*WorkflowReport, error) {
	report := &WorkflowReport{Files: []WorkflowResult{}, Issues: []string{}}
	total := len(c.opts.RequiredReferences)

	for _, file := range c.opts.WorkflowFiles {
		result := WorkflowResult{
			Path:     file,
			Found:    []string{},
			Required: c.opts.MinReferences,
			Total:    total,
		}
		content, ok, err := readOptional(c.path(file), file)
		if err != nil {
			return nil, err
		}
		if !ok {
			report.Issues = append(report.Issues, file+" is missing")
			report.Files = append(report.Files, result)
			continue
		}

		result.Exists = true
		result.Found = ContainedReferences(content, c.opts.RequiredReferences)
		result.Pass = len(result.Found) >= c.opts.MinReferences
		if !result.Pass {
			report.Issues = append(report.Issues,
				fmt.Sprintf("%s missing important references (%d/%d)", file, len(result.Found), total))
		}
		c.logger.Debug("workflow scanned",
			zap.String("file", file),
			zap.Int("found", len(result.Found)),
			zap.Bool("pass", result.Pass))
		report.Files = append(report.Files, result)
	}
	return report, nil
}
