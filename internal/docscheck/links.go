package docscheck

import (
	"path/filepath"
	"regexp"

	"go.uber.org/zap"
)

var (
	linkPattern   = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
	schemePattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.-]*:`)
)

// Link is one [text](target) occurrence in a markdown document.
type Link struct {
	Text   string `json:"text"`
	Target string `json:"target"`
}

// LinkResult is the resolution outcome for a single link.
type LinkResult struct {
	Link
	External bool `json:"external"`
	Valid    bool `json:"valid"`
	// Resolved is the path that satisfied the link, empty when broken or external.
	Resolved string `json:"resolved,omitempty"`
}

// LinkReport summarizes the link scan of the overview document.
type LinkReport struct {
	Overview      string       `json:"overview"`
	OverviewFound bool         `json:"overview_found"`
	Links         []LinkResult `json:"links"`
	Valid         int          `json:"valid"`
	Broken        int          `json:"broken"`
	External      int          `json:"external"`
	Issues        []string     `json:"issues"`
}

// Checked is the number of links resolved against the filesystem.
func (r *LinkReport) Checked() int {
	return r.Valid + r.Broken
}

// ExtractLinks returns every [text](target) occurrence in text, left to right.
// Neither part may be empty and the target cannot contain ')'.
func ExtractLinks(text string) []Link {
	matches := linkPattern.FindAllStringSubmatch(text, -1)
	links := make([]Link, 0, len(matches))
	for _, m := range matches {
		links = append(links, Link{Text: m[1], Target: m[2]})
	}
	return links
}

// IsExternal reports whether target points outside the filesystem:
// anything with a URL scheme (http:, https:, mailto:, ...) or a bare anchor.
func IsExternal(target string) bool {
	if len(target) > 0 && target[0] == '#' {
		return true
	}
	return schemePattern.MatchString(target)
}

// CheckLinks resolves every internal link of the overview document.
// found reports whether the overview exists; when it does not, the scan
// records the single missing-overview issue and stops.
func (c *Checker) CheckLinks(overview string, found bool) (*LinkReport, error) {
	report := &LinkReport{
		Overview:      c.opts.Overview,
		OverviewFound: found,
		Links:         []LinkResult{},
		Issues:        []string{},
	}
	if !found {
		report.Issues = append(report.Issues, c.opts.Overview+" is missing")
		return report, nil
	}

	for _, link := range ExtractLinks(overview) {
		result := LinkResult{Link: link}
		if IsExternal(link.Target) {
			result.External = true
			report.External++
			report.Links = append(report.Links, result)
			continue
		}

		resolved, ok, err := c.resolveLink(link.Target)
		if err != nil {
			return nil, err
		}
		if ok {
			result.Valid = true
			result.Resolved = resolved
			report.Valid++
		} else {
			report.Broken++
			report.Issues = append(report.Issues, "Broken link in "+c.opts.Overview+": "+link.Target)
		}
		report.Links = append(report.Links, result)
	}

	c.logger.Debug("link scan complete",
		zap.Int("valid", report.Valid),
		zap.Int("broken", report.Broken),
		zap.Int("external", report.External))
	return report, nil
}

// resolveLink tries the docs root first, then the project root.
func (c *Checker) resolveLink(target string) (string, bool, error) {
	candidates := []string{target}
	if !filepath.IsAbs(target) {
		candidates = []string{
			filepath.Join(c.path(c.opts.DocsDir), target),
			filepath.Join(c.root, target),
		}
	}
	for _, candidate := range candidates {
		ok, err := exists(candidate)
		if err != nil {
			return "", false, err
		}
		if ok {
			return candidate, true, nil
		}
	}
	return "", false, nil
}
