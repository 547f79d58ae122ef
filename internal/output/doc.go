// Package output provides structured output and error handling for the nextkit CLI.
//
// Every command renders either human-readable text or, with --json, a single
// JSON document on stdout:
//
//	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd))
//	printer.Section("Links")
//	printer.Status(output.StatusPass, "OVERVIEW.MD links", "12 valid")
//	printer.WriteJSON(report)
//
// Styles come from lipgloss and are disabled when the writer is not a
// terminal (or --color=never).
//
// # Exit Codes
//
//	output.ExitSuccess     // 0: nothing to report
//	output.ExitIssues      // 1: checks found issues, invalid input
//	output.ExitSystemError // 2: unreadable files, I/O failure
//
// Commands that print their own findings return output.NewIssuesError, a
// silent error that only carries the exit code.
package output
