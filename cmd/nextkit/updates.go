package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/gorewood/nextkit/internal/output"
	"github.com/gorewood/nextkit/internal/updates"
)

// newUpdatesCmd creates the updates command.
func newUpdatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "updates",
		Short: "Check for template updates",
		Long: `Compare the project's templateVersion in package.json with the built-in
update catalog and list every newer update by category.

The result is also saved to .temp/template-updates.json for follow-up
tooling. Exits 1 when a CRITICAL update is available.

Examples:
  nextkit updates             # List available updates
  nextkit updates --json      # Output the result as JSON`,
		Args: cobra.NoArgs,
		RunE: runUpdates,
	}
}

// runUpdates executes the updates command.
func runUpdates(cmd *cobra.Command, _ []string) error {
	rt, err := newRuntime(cmd)
	if err != nil {
		return err
	}

	result, err := updates.Check(rt.root, rt.cfg.Updates, time.Now(), rt.logger)
	if err != nil {
		return fail(rt.printer, err)
	}

	if rt.printer.IsJSON() {
		if err := rt.printer.WriteJSON(result); err != nil {
			return err
		}
	} else {
		outputUpdatesHuman(rt.printer, result)
	}

	if result.HasCritical() {
		return output.NewIssuesError(fmt.Sprintf("%d critical updates available", result.Summary.Critical))
	}
	return nil
}

// outputUpdatesHuman renders an update check.
func outputUpdatesHuman(printer *output.Printer, result *updates.Result) {
	printer.Heading("Template Update Check")

	if result.CurrentVersion == "" {
		printer.Status(output.StatusWarn, "No templateVersion found in package.json", "")
		printer.Hint(`Add "templateVersion": "1.0.0" to package.json`)
	} else {
		printer.KeyValue("Current template version", result.CurrentVersion)
	}

	if result.SaveError != "" {
		printer.Warn("could not save update info: %s", result.SaveError)
	}

	if len(result.Updates) == 0 {
		printer.Println()
		printer.Banner(true, "No updates available. The template is up to date.")
		return
	}

	printer.Println()
	printer.Print("%d %s available:\n", len(result.Updates), plural(len(result.Updates), "update", "updates"))

	for _, group := range result.Groups {
		printer.Section(fmt.Sprintf("%s (%d)", group.Category, len(group.Updates)))
		for _, update := range group.Updates {
			printer.Status(categoryStatus(group.Category), "v"+update.Version+":", update.Title)
			printer.Print("      %s\n", update.Description)
			printer.Print("      Files: %s\n", strings.Join(update.Files, ", "))
		}
	}

	printer.Bullets("Next steps:", []string{
		"Review the listed files against the template repository",
		"Apply the updates you want to take over",
	})

	if result.HasCritical() {
		printer.Println()
		printer.Banner(false, fmt.Sprintf("%d CRITICAL %s available. Installing right away is recommended.",
			result.Summary.Critical, plural(result.Summary.Critical, "update", "updates")))
	}
}

func categoryStatus(category updates.Category) output.Status {
	switch category {
	case updates.CategoryCritical:
		return output.StatusFail
	case updates.CategoryRecommended:
		return output.StatusWarn
	default:
		return output.StatusInfo
	}
}
