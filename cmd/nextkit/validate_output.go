package main

import (
	"github.com/gorewood/nextkit/internal/output"
	"github.com/gorewood/nextkit/internal/structure"
)

// outputValidateHuman outputs the validation report in human-readable format.
func outputValidateHuman(printer *output.Printer, report *structure.Report, quiet bool) {
	printer.Heading("Project Structure Validation")

	printCheckSection(printer, "FILES", report.Files, quiet)
	printCheckSection(printer, "DIRS", report.Dirs, quiet)
	printCheckSection(printer, "SPECIAL", report.Special, quiet)

	// Summary
	printer.Println()
	printer.Print("%s %d passed  %s %d warnings  %s %d failed\n",
		printer.StatusIcon(output.StatusPass), report.Summary.Passed,
		printer.StatusIcon(output.StatusWarn), report.Summary.Warnings,
		printer.StatusIcon(output.StatusFail), report.Summary.Failed,
	)

	printer.Println()
	if report.OK {
		printer.Banner(true, "Project structure is valid.")
		return
	}
	printer.Banner(false, "Project structure has problems. Fix the failed checks above.")
}

// printCheckSection prints a section of checks.
func printCheckSection(printer *output.Printer, title string, checks []structure.Check, quiet bool) {
	// In quiet mode, skip sections with only passing checks
	if quiet && !hasNonPass(checks) {
		return
	}

	printer.Println()
	printer.Println(title)

	for _, check := range checks {
		if quiet && check.Status == structure.StatusPass {
			continue
		}
		printer.Status(output.Status(check.Status), check.Name, check.Message)
		if check.Hint != "" {
			printer.Hint(check.Hint)
		}
	}
}

func hasNonPass(checks []structure.Check) bool {
	for _, check := range checks {
		if check.Status != structure.StatusPass {
			return true
		}
	}
	return false
}
