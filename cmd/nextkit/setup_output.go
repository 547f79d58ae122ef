package main

import (
	"strings"

	"github.com/gorewood/nextkit/internal/output"
	"github.com/gorewood/nextkit/internal/scaffold"
)

// outputSetupHuman renders the scaffold steps and the next steps.
func outputSetupHuman(printer *output.Printer, result *scaffold.Result) {
	if result.DryRun {
		printer.Heading("Dry run: setup for " + result.Project)
	} else {
		printer.Heading("Setup for " + result.Project)
	}

	for _, step := range result.Steps {
		printSetupStep(printer, step, result.DryRun)
	}

	printer.Println()
	if !result.OK {
		printer.Banner(false, "Setup finished with errors. Fix the failed steps and run setup again.")
		return
	}
	if result.DryRun {
		printer.Banner(true, "Dry run complete. No files were written.")
		return
	}

	printer.Banner(true, "Setup complete!")
	printSetupNextSteps(printer)
}

func printSetupStep(printer *output.Printer, step scaffold.StepResult, dryRun bool) {
	status := output.StatusPass
	switch step.Status {
	case scaffold.StatusSkipped:
		status = output.StatusInfo
	case scaffold.StatusFailed:
		status = output.StatusFail
	}
	printer.Status(status, step.Name, step.Message)
	if dryRun && len(step.Files) > 0 {
		printer.Hint("would write " + strings.Join(step.Files, ", "))
	}
}

func printSetupNextSteps(printer *output.Printer) {
	styles := printer.Styles()

	printer.Println()
	printer.Print("Next steps:\n")
	printer.Print("  1. %s\n", styles.Dim.Render("Install dependencies:"))
	printer.Print("     %s\n", styles.Accent.Render("npm install"))
	printer.Println()
	printer.Print("  2. %s\n", styles.Dim.Render("Start development:"))
	printer.Print("     %s\n", styles.Accent.Render("npm run dev"))
	printer.Println()
	printer.Print("  3. %s\n", styles.Dim.Render("Open the AI chat in your editor and start with:"))
	printer.Print("     %s\n", styles.Accent.Render(`"@AI-WORKFLOWS/START-PROMPT.md - the project is set up, let's start developing"`))
	printer.Println()
	printer.Print("  4. %s\n", styles.Dim.Render("Keep the project healthy:"))
	printer.Print("     %s\n", styles.Accent.Render("nextkit validate"))
	printer.Print("     %s\n", styles.Accent.Render("nextkit check"))

	printer.Bullets("Important files:", []string{
		"docs/OVERVIEW.MD    master overview",
		"docs/WORKFLOWS.MD   standard workflows",
		"AI-WORKFLOWS/       AI chat guides",
	})
}
