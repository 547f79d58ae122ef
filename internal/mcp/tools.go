package mcp

import (
	"context"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/nextkit/internal/docscheck"
	"github.com/gorewood/nextkit/internal/structure"
	"github.com/gorewood/nextkit/internal/updates"
)

// --- check_docs ---

// CheckDocsInput is the input for the check_docs tool (no parameters needed).
type CheckDocsInput struct{}

// CheckDocsOutput is the output for the check_docs tool.
type CheckDocsOutput struct {
	OK     bool              `json:"ok"     jsonschema:"true when the documentation has no issues"`
	Issues []string          `json:"issues" jsonschema:"every issue in scan order"`
	Report *docscheck.Report `json:"report" jsonschema:"per-scan details"`
}

func handleCheckDocs(project Project) mcp.ToolHandlerFor[CheckDocsInput, CheckDocsOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, _ CheckDocsInput) (*mcp.CallToolResult, CheckDocsOutput, error) {
		report, err := docscheck.New(project.Root, project.Check, project.logger()).Run()
		if err != nil {
			return nil, CheckDocsOutput{}, err
		}
		return nil, CheckDocsOutput{OK: report.OK, Issues: report.Issues, Report: report}, nil
	}
}

// --- validate_project ---

// ValidateProjectInput is the input for the validate_project tool (no parameters needed).
type ValidateProjectInput struct{}

// ValidateProjectOutput is the output for the validate_project tool.
type ValidateProjectOutput struct {
	OK      bool              `json:"ok"      jsonschema:"true when no check failed"`
	Summary structure.Summary `json:"summary" jsonschema:"counts of passed, warning and failed checks"`
	Failed  []structure.Check `json:"failed"  jsonschema:"the failed checks"`
	Report  *structure.Report `json:"report"  jsonschema:"every check by section"`
}

func handleValidateProject(project Project) mcp.ToolHandlerFor[ValidateProjectInput, ValidateProjectOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, _ ValidateProjectInput) (*mcp.CallToolResult, ValidateProjectOutput, error) {
		report, err := structure.Validate(project.Root, project.Validate, project.logger())
		if err != nil {
			return nil, ValidateProjectOutput{}, err
		}
		failed := []structure.Check{}
		for _, section := range [][]structure.Check{report.Files, report.Dirs, report.Special} {
			for _, c := range section {
				if c.Status == structure.StatusFail {
					failed = append(failed, c)
				}
			}
		}
		return nil, ValidateProjectOutput{
			OK:      report.OK,
			Summary: report.Summary,
			Failed:  failed,
			Report:  report,
		}, nil
	}
}

// --- check_updates ---

// CheckUpdatesInput is the input for the check_updates tool (no parameters needed).
type CheckUpdatesInput struct{}

// CheckUpdatesOutput is the output for the check_updates tool.
type CheckUpdatesOutput struct {
	CurrentVersion string          `json:"current_version" jsonschema:"templateVersion from package.json, empty when unknown"`
	CheckedAt      string          `json:"checked_at"      jsonschema:"check timestamp (RFC3339)"`
	Critical       bool            `json:"critical"        jsonschema:"true when a critical update is available"`
	Summary        updates.Summary `json:"summary"         jsonschema:"counts per category"`
	Groups         []updates.Group `json:"groups"          jsonschema:"available updates grouped by category"`
}

func handleCheckUpdates(project Project, now func() time.Time) mcp.ToolHandlerFor[CheckUpdatesInput, CheckUpdatesOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, _ CheckUpdatesInput) (*mcp.CallToolResult, CheckUpdatesOutput, error) {
		result, err := updates.Evaluate(project.Root, project.Updates, project.logger())
		if err != nil {
			return nil, CheckUpdatesOutput{}, err
		}
		return nil, CheckUpdatesOutput{
			CurrentVersion: result.CurrentVersion,
			CheckedAt:      now().UTC().Format(time.RFC3339),
			Critical:       result.HasCritical(),
			Summary:        result.Summary,
			Groups:         result.Groups,
		}, nil
	}
}
