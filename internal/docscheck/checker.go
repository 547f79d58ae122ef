package docscheck

import (
	"path/filepath"

	"go.uber.org/zap"
)

// Checker runs the documentation scans against one project root.
type Checker struct {
	root   string
	opts   Options
	logger *zap.Logger
}

// Report is the combined result of a run. Issues holds every scan's issues
// in scan order.
type Report struct {
	Root      string           `json:"root"`
	OK        bool             `json:"ok"`
	Links     *LinkReport      `json:"links"`
	Orphans   *OrphanReport    `json:"orphans"`
	Workflows *WorkflowReport  `json:"workflows"`
	Checklist *ChecklistReport `json:"checklist"`
	Issues    []string         `json:"issues"`
}

// New creates a Checker. A nil logger discards output.
func New(root string, opts Options, logger *zap.Logger) *Checker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Checker{root: root, opts: opts, logger: logger}
}

// Options returns the options the checker was built with.
func (c *Checker) Options() Options {
	return c.opts
}

// Run performs the link, orphan, workflow and checklist scans in that order.
// The returned error is non-nil only for unexpected filesystem failures.
func (c *Checker) Run() (*Report, error) {
	c.logger.Debug("checking documentation", zap.String("root", c.root))

	overview, found, err := readOptional(c.path(c.opts.Overview), c.opts.Overview)
	if err != nil {
		return nil, err
	}

	report := &Report{Root: c.root, Issues: []string{}}

	if report.Links, err = c.CheckLinks(overview, found); err != nil {
		return nil, err
	}
	report.Issues = append(report.Issues, report.Links.Issues...)

	if report.Orphans, err = c.FindOrphans(overview, found); err != nil {
		return nil, err
	}
	report.Issues = append(report.Issues, report.Orphans.Issues...)

	if report.Workflows, err = c.ScanWorkflows(); err != nil {
		return nil, err
	}
	report.Issues = append(report.Issues, report.Workflows.Issues...)

	if report.Checklist, err = c.AuditChecklist(); err != nil {
		return nil, err
	}
	report.Issues = append(report.Issues, report.Checklist.Issues...)

	report.OK = len(report.Issues) == 0
	c.logger.Debug("documentation check finished", zap.Int("issues", len(report.Issues)))
	return report, nil
}

// path resolves p against the project root unless it is absolute.
func (c *Checker) path(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.root, p)
}
