// Package main provides the entry point for the nextkit CLI.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/gorewood/nextkit/internal/config"
	"github.com/gorewood/nextkit/internal/envfile"
	"github.com/gorewood/nextkit/internal/output"
)

// Build info set via ldflags at build time by goreleaser.
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123 -X main.date=2024-01-01"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// isJSONMode reads the --json persistent flag from the command hierarchy.
func isJSONMode(cmd *cobra.Command) bool {
	flag := cmd.Flags().Lookup("json")
	if flag == nil {
		// Walk up to root to find the persistent flag
		flag = cmd.Root().PersistentFlags().Lookup("json")
	}
	return flag != nil && flag.Value.String() == "true"
}

// buildVersion returns the full version string including commit and date.
func buildVersion() string {
	if commit == "none" && date == "unknown" {
		return version
	}
	shortCommit := commit
	if len(commit) > 7 {
		shortCommit = commit[:7]
	}
	return fmt.Sprintf("%s (%s, %s)", version, shortCommit, date)
}

func main() {
	code := run()
	os.Exit(code)
}

func run() int {
	cmd := newRootCmd()
	err := fang.Execute(context.Background(), cmd,
		fang.WithVersion(buildVersion()),
		fang.WithErrorHandler(handleError),
	)
	return output.GetExitCode(err)
}

// handleError renders errors fang receives, except those a command already
// printed itself.
func handleError(w io.Writer, styles fang.Styles, err error) {
	if output.IsSilent(err) {
		return
	}
	fang.DefaultErrorHandler(w, styles, err)
}

// newRootCmd creates the root command for the nextkit CLI.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "nextkit",
		Short: "Documentation and project tooling for the Next.js starter",
		Long: `nextkit - Documentation and project tooling for the Next.js starter template.

nextkit keeps a project built from the starter honest by:
  - Checking that the docs overview links resolve and every doc is referenced
  - Checking that the AI workflow documents mention the core docs
  - Auditing the checklist's checkbox format
  - Validating the project skeleton and npm scripts
  - Reporting template updates from the built-in catalog
  - Running the setup interview and scaffolding the project files

All report commands support --json for structured output.`,
		Version:       buildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// If --json flag is set but no subcommand, output JSON error
			if isJSONMode(cmd) {
				printer := output.NewPrinter(cmd.OutOrStdout(), true, false)
				return fail(printer, output.NewUserError("no command specified. Run 'nextkit --help' for usage"))
			}
			return cmd.Help()
		},
	}

	// Load .env.local (then .env) so NEXTKIT_* overrides can live in the project.
	// Environment variables always take precedence over file values.
	cmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		// A bad --dir is reported by the command itself.
		if root, err := projectRoot(cmd); err == nil {
			loadEnvFiles(root)
		}
		return nil
	}

	flags := cmd.PersistentFlags()
	flags.Bool("json", false, "Output in JSON format")
	flags.String("color", output.ColorAuto, "Colorize output: auto, always or never")
	flags.String("dir", ".", "Project root directory")
	flags.String("config", "", "Config file (default: global config, then <dir>/"+config.ProjectFile+")")
	flags.String("log-level", "", "Diagnostic log level: debug, info, warn or error")
	flags.String("log-format", "", "Diagnostic log format: console or structured")

	// Configure lipgloss for TTY detection
	lipgloss.SetHasDarkBackground(true)

	addCommandGroups(cmd)
	addCommands(cmd)

	return cmd
}

// loadEnvFiles loads env files in priority order. First match for each
// variable wins; environment variables already set always take precedence.
//
// Resolution order:
//  1. <dir>/.env.local          (per-project override, gitignored)
//  2. <dir>/.env                (per-project)
//  3. ~/.config/nextkit/env     (global fallback)
func loadEnvFiles(root string) {
	_ = envfile.Load(filepath.Join(root, ".env.local"))
	_ = envfile.Load(filepath.Join(root, ".env"))

	if dir := config.Dir(); dir != "" {
		_ = envfile.Load(filepath.Join(dir, "env"))
	}
}

// addCommandGroups defines the command groups for help output.
func addCommandGroups(cmd *cobra.Command) {
	cmd.AddGroup(&cobra.Group{ID: "docs", Title: "Documentation Commands:"})
	cmd.AddGroup(&cobra.Group{ID: "project", Title: "Project Commands:"})
	cmd.AddGroup(&cobra.Group{ID: "agent", Title: "Agent Commands:"})
}

// addCommands adds all subcommands with their group assignments.
func addCommands(cmd *cobra.Command) {
	addGroupedCommand(cmd, newCheckCmd(), "docs")

	addGroupedCommand(cmd, newValidateCmd(), "project")
	addGroupedCommand(cmd, newSetupCmd(), "project")
	addGroupedCommand(cmd, newUpdatesCmd(), "project")

	addGroupedCommand(cmd, newServeCmd(), "agent")
}

// addGroupedCommand adds a subcommand with a group assignment.
func addGroupedCommand(parent *cobra.Command, child *cobra.Command, groupID string) {
	child.GroupID = groupID
	parent.AddCommand(child)
}
