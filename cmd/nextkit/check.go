package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"slices"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gorewood/nextkit/internal/docscheck"
	"github.com/gorewood/nextkit/internal/output"
	"github.com/gorewood/nextkit/internal/watch"
)

// checkFlags holds the command-line flags for the check command.
type checkFlags struct {
	watch bool
	quiet bool
}

// newCheckCmd creates the check command.
func newCheckCmd() *cobra.Command {
	flags := &checkFlags{}

	cmd := &cobra.Command{
		Use:     "check",
		Aliases: []string{"ai-check"},
		Short:   "Check documentation consistency",
		Long: `Check that the project documentation is consistent.

Runs four scans in order and collects every issue:
  LINKS      - Every internal link in the overview resolves to a file
  ORPHANS    - Every markdown file under the docs root is referenced by the overview
  WORKFLOWS  - Each AI workflow document mentions enough of the core docs
  CHECKLIST  - Checkboxes use "- [ ]" or "- [x]"

Exits 0 when no issues are found, 1 when there are issues, and 2 when a
file cannot be read.

Examples:
  nextkit check              # Run all scans
  nextkit check --quiet      # Only print the result
  nextkit check --watch      # Re-run whenever a doc changes
  nextkit check --json       # Output the report as JSON`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCheck(cmd, flags)
		},
	}

	cmd.Flags().BoolVar(&flags.watch, "watch", false, "Re-run the check when documentation changes")
	cmd.Flags().BoolVarP(&flags.quiet, "quiet", "q", false, "Only print the result and issues")

	return cmd
}

// runCheck executes the check command.
func runCheck(cmd *cobra.Command, flags *checkFlags) error {
	rt, err := newRuntime(cmd)
	if err != nil {
		return err
	}

	checker := docscheck.New(rt.root, rt.cfg.Check, rt.logger)
	if flags.watch {
		return watchCheck(cmd.Context(), rt, checker, flags)
	}
	return checkOnce(rt.printer, checker, flags)
}

// checkOnce runs and renders one check.
func checkOnce(printer *output.Printer, checker *docscheck.Checker, flags *checkFlags) error {
	report, err := checker.Run()
	if err != nil {
		return fail(printer, err)
	}

	if printer.IsJSON() {
		if err := printer.WriteJSON(report); err != nil {
			return err
		}
	} else {
		outputCheckHuman(printer, report, flags.quiet)
	}

	if !report.OK {
		return output.NewIssuesError(fmt.Sprintf("%d documentation issues found", len(report.Issues)))
	}
	return nil
}

// watchCheck renders a check, then re-renders on every documentation change
// until interrupted. Interrupting the watch is a clean exit.
func watchCheck(ctx context.Context, rt *runtime, checker *docscheck.Checker, flags *checkFlags) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	run := func() {
		if err := checkOnce(rt.printer, checker, flags); err != nil && !output.IsSilent(err) {
			rt.printer.Error(err)
		}
	}
	run()

	watcher := newCheckWatcher(rt, checker.Options())
	if !rt.printer.IsJSON() {
		rt.printer.Println()
		rt.printer.Println(rt.printer.Styles().Dim.Render("Watching for documentation changes. Press Ctrl-C to stop."))
	}

	err := watcher.Run(ctx, func(path string) {
		rt.logger.Debug("documentation changed", zap.String("path", path))
		run()
	})
	if err != nil {
		return fail(rt.printer, output.NewSystemErrorWithCause("watching documentation", err))
	}
	return nil
}

// newCheckWatcher watches the docs root recursively plus the directories
// holding the overview, the workflow documents and the checklist.
func newCheckWatcher(rt *runtime, opts docscheck.Options) *watch.Watcher {
	resolve := func(p string) string {
		if filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(rt.root, p)
	}

	flat := []string{filepath.Dir(resolve(opts.Overview)), filepath.Dir(resolve(opts.Checklist))}
	for _, file := range opts.WorkflowFiles {
		flat = append(flat, filepath.Dir(resolve(file)))
	}
	slices.Sort(flat)

	return &watch.Watcher{
		Recursive:  []string{resolve(opts.DocsDir)},
		Flat:       slices.Compact(flat),
		Extensions: opts.MarkdownExtensions,
		Debounce:   watch.DefaultDebounce,
		Logger:     rt.logger,
	}
}
