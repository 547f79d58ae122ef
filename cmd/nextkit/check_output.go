package main

import (
	"fmt"
	"strings"

	"github.com/gorewood/nextkit/internal/docscheck"
	"github.com/gorewood/nextkit/internal/output"
)

// checkHints are printed after the issue list of a failing check.
var checkHints = []string{
	"Update the overview with the missing references",
	"Remove orphaned files or link them from the overview",
	"Review the AI workflow documents for the key references",
	`Fix checkbox format to "- [ ]" or "- [x]"`,
}

// outputCheckHuman renders a documentation report.
func outputCheckHuman(printer *output.Printer, report *docscheck.Report, quiet bool) {
	printer.Heading("AI Documentation Check")

	if !quiet {
		printLinkSection(printer, report.Links)
		printOrphanSection(printer, report.Orphans)
		printWorkflowSection(printer, report.Workflows)
		printChecklistSection(printer, report.Checklist)
	}

	printer.Section("Result")
	if report.OK {
		printer.Banner(true, "All documentation checks passed.")
		return
	}

	printer.Banner(false, fmt.Sprintf("%d %s found:", len(report.Issues), plural(len(report.Issues), "issue", "issues")))
	printer.Println()
	printer.Numbered(report.Issues)
	printer.Bullets("Recommendations:", checkHints)
}

func printLinkSection(printer *output.Printer, links *docscheck.LinkReport) {
	printer.Section("Overview links")
	if !links.OverviewFound {
		printer.Status(output.StatusFail, links.Overview, "is missing")
		return
	}

	for _, link := range links.Links {
		label := fmt.Sprintf("%s -> %s", link.Text, link.Target)
		switch {
		case link.External:
			printer.Status(output.StatusInfo, label, "(external)")
		case link.Valid:
			printer.Status(output.StatusPass, label, "")
		default:
			printer.Status(output.StatusFail, label, "(broken)")
		}
	}
	printer.Println()
	printer.Print("  Links checked: %d (%d valid, %d broken, %d external skipped)\n",
		links.Checked(), links.Valid, links.Broken, links.External)
}

func printOrphanSection(printer *output.Printer, orphans *docscheck.OrphanReport) {
	printer.Section("Orphaned files")
	if !orphans.Ran {
		printer.Status(output.StatusInfo, "skipped", "(no overview or docs directory)")
		return
	}
	if len(orphans.Files) == 0 {
		printer.Status(output.StatusInfo, "no markdown files", "")
		return
	}
	for _, file := range orphans.Files {
		if file.Referenced {
			printer.Status(output.StatusPass, file.Rel, "is referenced")
		} else {
			printer.Status(output.StatusWarn, file.Rel, "is not referenced in the overview")
		}
	}
}

func printWorkflowSection(printer *output.Printer, workflows *docscheck.WorkflowReport) {
	printer.Section("AI workflow references")
	for _, file := range workflows.Files {
		switch {
		case !file.Exists:
			printer.Status(output.StatusFail, file.Path, "is missing")
		case file.Pass:
			printer.Status(output.StatusPass, file.Path, fmt.Sprintf("has enough references (%d/%d)", len(file.Found), file.Total))
		default:
			printer.Status(output.StatusWarn, file.Path, fmt.Sprintf("has few references (%d/%d)", len(file.Found), file.Total))
			printer.Hint("found: " + joinOrNone(file.Found))
		}
	}
}

func printChecklistSection(printer *output.Printer, checklist *docscheck.ChecklistReport) {
	printer.Section("Checkbox format")
	if !checklist.Found {
		printer.Status(output.StatusInfo, checklist.Path, "not found, skipped")
		return
	}

	tally := checklist.Tally
	printer.Status(output.StatusPass, "Empty checkboxes:", fmt.Sprint(tally.Empty))
	printer.Status(output.StatusPass, "Checked checkboxes:", fmt.Sprint(tally.Checked))
	if tally.Malformed > 0 {
		printer.Status(output.StatusFail, "Invalid checkboxes:", fmt.Sprint(tally.Malformed))
	}
	if checklist.LowCount {
		printer.Status(output.StatusWarn, "Few checkboxes found", fmt.Sprintf("(%d, expected at least %d)", tally.Empty, checklist.MinEmpty))
	}
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "none"
	}
	return strings.Join(items, ", ")
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
