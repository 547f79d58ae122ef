// Package docscheck verifies that a project's documentation tree is
// internally consistent.
//
// A run performs four independent, synchronous scans in fixed order:
//
//  1. Links: every [text](target) in the overview document must resolve,
//     either against the docs root or against the project root. Targets with
//     a URL scheme or a leading '#' are external and never resolved.
//  2. Orphans: every markdown file under the docs root must be mentioned
//     (as a literal substring of its docs-relative or project-relative path)
//     somewhere in the overview.
//  3. Workflows: each workflow document must exist and contain at least
//     MinReferences of the required reference strings.
//  4. Checklist: the checklist's checkbox markers are tallied; any malformed
//     marker yields a single issue.
//
// Each scan returns a structured sub-report with its own issues; the Checker
// concatenates them into Report.Issues. An empty issue list means the
// documentation passes. Scans never print.
//
// Missing inputs are findings, not errors. Only unexpected filesystem
// failures (permission denied, I/O errors) abort a run.
package docscheck
