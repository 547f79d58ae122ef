package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gorewood/nextkit/internal/output"
	"github.com/gorewood/nextkit/internal/structure"
)

// validateFlags holds the command-line flags for the validate command.
type validateFlags struct {
	quiet bool
}

// newValidateCmd creates the validate command.
func newValidateCmd() *cobra.Command {
	flags := &validateFlags{}

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate the project structure",
		Long: `Validate that the project has the files and scripts the starter expects.

Runs checks across three categories:
  FILES    - Required documentation, workflow and manifest files
  DIRS     - Required directories
  SPECIAL  - Legacy checklist, npm scripts and the Next.js app structure

Each check reports:
  Pass    - Check passed successfully
  Warning - Non-critical issue found
  Fail    - Required item is missing

Examples:
  nextkit validate            # Run all checks
  nextkit validate --quiet    # Only show failures and warnings
  nextkit validate --json     # Output results as JSON`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runValidate(cmd, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.quiet, "quiet", "q", false, "Only show failures and warnings")

	return cmd
}

// runValidate executes the validate command.
func runValidate(cmd *cobra.Command, flags *validateFlags) error {
	rt, err := newRuntime(cmd)
	if err != nil {
		return err
	}

	report, err := structure.Validate(rt.root, rt.cfg.Structure, rt.logger)
	if err != nil {
		return fail(rt.printer, err)
	}

	if rt.printer.IsJSON() {
		if err := rt.printer.WriteJSON(report); err != nil {
			return err
		}
	} else {
		outputValidateHuman(rt.printer, report, flags.quiet)
	}

	if !report.OK {
		return output.NewIssuesError(fmt.Sprintf("%d checks failed", report.Summary.Failed))
	}
	return nil
}
