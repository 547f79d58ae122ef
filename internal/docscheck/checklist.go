package docscheck

import (
	"regexp"

	"go.uber.org/zap"
)

var (
	emptyBox     = regexp.MustCompile(`- \[ \]`)
	checkedBox   = regexp.MustCompile(`- \[x\]`)
	// Any Unicode space counts as whitespace, not only the ASCII \s set.
	malformedBox = regexp.MustCompile(`- \[[^x\s\x{0B}\p{Z}\x{FEFF}]\]`)
)

// Tally counts checkbox markers by kind.
type Tally struct {
	Empty     int `json:"empty"`
	Checked   int `json:"checked"`
	Malformed int `json:"malformed"`
}

// ChecklistReport is the format audit of the checklist document.
type ChecklistReport struct {
	Path  string `json:"path"`
	Found bool   `json:"found"`
	Tally Tally  `json:"tally"`
	// LowCount is advisory only: fewer empty checkboxes than MinEmpty.
	LowCount bool     `json:"low_count"`
	MinEmpty int      `json:"min_empty"`
	Issues   []string `json:"issues"`
}

// TallyCheckboxes counts the checkbox markers in text. Uppercase X, like any
// character other than lowercase x or whitespace, is malformed.
func TallyCheckboxes(text string) Tally {
	return Tally{
		Empty:     len(emptyBox.FindAllStringIndex(text, -1)),
		Checked:   len(checkedBox.FindAllStringIndex(text, -1)),
		Malformed: len(malformedBox.FindAllStringIndex(text, -1)),
	}
}

// AuditChecklist tallies the checklist's checkboxes. A missing checklist is
// not a finding. Any number of malformed markers yields exactly one issue.
func (c *Checker) AuditChecklist() (*ChecklistReport, error) {
	report := &ChecklistReport{
		Path:     c.opts.Checklist,
		MinEmpty: c.opts.MinEmptyCheckboxes,
		Issues:   []string{},
	}
	content, ok, err := readOptional(c.path(c.opts.Checklist), c.opts.Checklist)
	if err != nil {
		return nil, err
	}
	if !ok {
		return report, nil
	}

	report.Found = true
	report.Tally = TallyCheckboxes(content)
	report.LowCount = report.Tally.Empty < c.opts.MinEmptyCheckboxes
	if report.Tally.Malformed > 0 {
		report.Issues = append(report.Issues, "Invalid checkbox format in "+c.opts.Checklist)
	}

	c.logger.Debug("checklist audited",
		zap.Int("empty", report.Tally.Empty),
		zap.Int("checked", report.Tally.Checked),
		zap.Int("malformed", report.Tally.Malformed))
	return report, nil
}
